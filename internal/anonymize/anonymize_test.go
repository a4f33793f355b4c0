package anonymize

import (
	"regexp"
	"testing"
)

func TestUserIDStable(t *testing.T) {
	a := UserID("user123")
	b := UserID("user123")
	if a != b {
		t.Fatalf("same input must map to same pseudonym: %q vs %q", a, b)
	}
}

func TestUserIDShape(t *testing.T) {
	got := UserID("user123")
	if len(got) != 16 {
		t.Fatalf("pseudonym length: want=16 got=%d", len(got))
	}
	if !regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(got) {
		t.Fatalf("pseudonym should be lowercase hex: got=%q", got)
	}
}

func TestUserIDDistinctInputs(t *testing.T) {
	if UserID("user123") == UserID("user124") {
		t.Fatalf("distinct inputs should not collide")
	}
}
