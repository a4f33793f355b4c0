package emotions

import (
	"context"
	"strings"
	"sync"

	"github.com/mindease/mindease-backend/internal/platform/gemini"
)

// anchorNames is the stable registry order. Profile iteration, tie
// breaking and the anchors endpoint all follow it.
var anchorNames = []string{
	"anger",
	"sadness",
	"anxiety",
	"burnout",
	"loneliness",
	"overwhelm",
	"crisis",
}

// anchorPhrases are the reference expressions each emotion is measured
// against. Changing a phrase shifts every similarity score, so they are
// fixed.
var anchorPhrases = map[string]string{
	"anger":      "I am furious, I want to scream, everything is unfair.",
	"sadness":    "I feel empty, alone, and like I can't keep going.",
	"anxiety":    "My heart is racing, I can't breathe, I'm going to fail.",
	"burnout":    "I'm exhausted, nothing matters anymore, I can't do this.",
	"loneliness": "Nobody understands me, I'm completely isolated and invisible.",
	"overwhelm":  "Everything is too much, I'm drowning in responsibilities.",
	"crisis":     "I don't want to exist anymore, there's no way out of this pain.",
}

// AllEmotions returns the tracked emotion names in registry order.
func AllEmotions() []string {
	out := make([]string, len(anchorNames))
	copy(out, anchorNames)
	return out
}

// AnchorFor resolves an emotion name (case-insensitive) to its anchor
// phrase.
func AnchorFor(emotion string) (string, bool) {
	phrase, ok := anchorPhrases[strings.ToLower(strings.TrimSpace(emotion))]
	return phrase, ok
}

// AnchorPhrases returns a copy of the full name -> phrase registry.
func AnchorPhrases() map[string]string {
	out := make(map[string]string, len(anchorPhrases))
	for name, phrase := range anchorPhrases {
		out[name] = phrase
	}
	return out
}

// anchorCache is a read-through cache of anchor embeddings. Anchor
// phrases never change within a process, so each one is embedded at
// most once.
type anchorCache struct {
	embedder gemini.Client

	mu      sync.Mutex
	vectors map[string][]float32
}

func newAnchorCache(embedder gemini.Client) *anchorCache {
	return &anchorCache{
		embedder: embedder,
		vectors:  make(map[string][]float32, len(anchorNames)),
	}
}

func (c *anchorCache) vector(ctx context.Context, emotion string) ([]float32, error) {
	c.mu.Lock()
	if vec, ok := c.vectors[emotion]; ok {
		c.mu.Unlock()
		return vec, nil
	}
	c.mu.Unlock()

	phrase, ok := anchorPhrases[emotion]
	if !ok {
		return nil, errUnknownEmotion("anchor_embed", emotion)
	}

	embedded, err := c.embedder.Embed(ctx, []string{phrase})
	if err != nil {
		return nil, err
	}
	if len(embedded) != 1 {
		return nil, errEmbedding("anchor_embed", nil)
	}

	c.mu.Lock()
	c.vectors[emotion] = embedded[0]
	c.mu.Unlock()
	return embedded[0], nil
}
