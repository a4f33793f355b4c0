package emotions

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/mindease/mindease-backend/internal/platform/chroma"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

func TestIngestStoresEntryWithSystemMetadata(t *testing.T) {
	text := strings.Repeat("a", 60)
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		text: {1, 0, 0},
	}}
	store := newFakeStore()
	engine := newTestEngine(t, embedder, store)

	entryID, err := engine.Ingest(context.Background(), "hashed-user-1", "Engineering_2024", text, map[string]any{
		"user_id": "spoofed",
		"mood":    "anxious",
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if !strings.HasPrefix(entryID, "hashed-user-1_") {
		t.Fatalf("entry id prefix: got=%q", entryID)
	}

	if len(store.entries) != 1 {
		t.Fatalf("stored entries: want=1 got=%d", len(store.entries))
	}
	entry := store.entries[0]
	if entry.id != entryID {
		t.Fatalf("stored id: want=%q got=%q", entryID, entry.id)
	}
	if entry.document != text {
		t.Fatalf("stored document: want full text, got=%q", entry.document)
	}
	if entry.metadata["user_id"] != "hashed-user-1" {
		t.Fatalf("system user_id must win over caller metadata: got=%v", entry.metadata["user_id"])
	}
	if entry.metadata["cohort_id"] != "Engineering_2024" {
		t.Fatalf("cohort_id: got=%v", entry.metadata["cohort_id"])
	}
	if entry.metadata["mood"] != "anxious" {
		t.Fatalf("caller metadata dropped: got=%v", entry.metadata["mood"])
	}

	preview, _ := entry.metadata["text_preview"].(string)
	if preview != strings.Repeat("a", 50)+"..." {
		t.Fatalf("text preview: got=%q", preview)
	}

	ts, _ := entry.metadata["timestamp"].(string)
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Fatalf("timestamp not RFC3339: %q (%v)", ts, err)
	}
}

func TestIngestShortTextKeepsFullPreview(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"short vent": {1, 0, 0},
	}}
	store := newFakeStore()
	engine := newTestEngine(t, embedder, store)

	if _, err := engine.Ingest(context.Background(), "u1", "c1", "short vent", nil); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	preview, _ := store.entries[0].metadata["text_preview"].(string)
	if preview != "short vent" {
		t.Fatalf("text preview: want=%q got=%q", "short vent", preview)
	}
}

func TestIngestValidation(t *testing.T) {
	engine := newTestEngine(t, &fakeEmbedder{}, newFakeStore())

	cases := []struct {
		name     string
		userID   string
		cohortID string
		text     string
	}{
		{"missing user", "", "c1", "text"},
		{"missing cohort", "u1", "", "text"},
		{"missing text", "u1", "c1", "   "},
	}
	for _, tc := range cases {
		_, err := engine.Ingest(context.Background(), tc.userID, tc.cohortID, tc.text, nil)
		if CodeOf(err) != ErrorInvalidArgument {
			t.Fatalf("%s: want code=%q got err=%v", tc.name, ErrorInvalidArgument, err)
		}
	}
}

func TestIngestGatewayFailures(t *testing.T) {
	embedder := &fakeEmbedder{err: fmt.Errorf("quota exceeded")}
	engine := newTestEngine(t, embedder, newFakeStore())
	_, err := engine.Ingest(context.Background(), "u1", "c1", "text", nil)
	if CodeOf(err) != ErrorEmbeddingUnavailable {
		t.Fatalf("embed failure: want code=%q got err=%v", ErrorEmbeddingUnavailable, err)
	}

	store := newFakeStore()
	store.putErr = fmt.Errorf("connection refused")
	engine = newTestEngine(t, &fakeEmbedder{vectors: map[string][]float32{"text": {1}}}, store)
	_, err = engine.Ingest(context.Background(), "u1", "c1", "text", nil)
	if CodeOf(err) != ErrorStorageUnavailable {
		t.Fatalf("store failure: want code=%q got err=%v", ErrorStorageUnavailable, err)
	}
}

func TestSearchByEmotionThresholdAndRisk(t *testing.T) {
	engine, store := newSearchFixture(t)
	seedSearchEntries(store)

	matches, err := engine.SearchByEmotion(context.Background(), "anger", 0.8, 10)
	if err != nil {
		t.Fatalf("SearchByEmotion: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("matches: want=2 got=%d", len(matches))
	}

	if matches[0].UserID != "u-critical" || matches[0].RiskLevel != RiskCritical {
		t.Fatalf("match[0]: got=%+v", matches[0])
	}
	if matches[0].SimilarityScore != 1.0 {
		t.Fatalf("match[0] similarity: want=1.0 got=%v", matches[0].SimilarityScore)
	}
	if matches[1].UserID != "u-high" || matches[1].RiskLevel != RiskHigh {
		t.Fatalf("match[1]: got=%+v", matches[1])
	}
	if matches[1].CohortID != "Engineering_2024" {
		t.Fatalf("match[1] cohort: got=%q", matches[1].CohortID)
	}
}

func TestSearchByEmotionThresholdMonotonicity(t *testing.T) {
	engine, store := newSearchFixture(t)
	seedSearchEntries(store)

	counts := make([]int, 0, 3)
	for _, threshold := range []float64{0.5, 0.8, 0.95} {
		matches, err := engine.SearchByEmotion(context.Background(), "anger", threshold, 10)
		if err != nil {
			t.Fatalf("SearchByEmotion(threshold=%v): %v", threshold, err)
		}
		counts = append(counts, len(matches))
	}
	if counts[0] != 3 || counts[1] != 2 || counts[2] != 1 {
		t.Fatalf("result counts by rising threshold: got=%v", counts)
	}
}

func TestSearchByEmotionTopKAppliedBeforeThreshold(t *testing.T) {
	engine, store := newSearchFixture(t)
	seedSearchEntries(store)

	matches, err := engine.SearchByEmotion(context.Background(), "anger", 0.8, 1)
	if err != nil {
		t.Fatalf("SearchByEmotion: %v", err)
	}
	if len(matches) != 1 || matches[0].UserID != "u-critical" {
		t.Fatalf("topK=1 matches: got=%+v", matches)
	}
}

func TestSearchByEmotionValidation(t *testing.T) {
	engine, _ := newSearchFixture(t)

	if _, err := engine.SearchByEmotion(context.Background(), "jealousy", 0.8, 10); CodeOf(err) != ErrorUnknownEmotion {
		t.Fatalf("unknown emotion: got err=%v", err)
	}
	if _, err := engine.SearchByEmotion(context.Background(), "anger", 1.2, 10); CodeOf(err) != ErrorInvalidArgument {
		t.Fatalf("threshold out of range: got err=%v", err)
	}
	if _, err := engine.SearchByEmotion(context.Background(), "anger", 0.8, 0); CodeOf(err) != ErrorInvalidArgument {
		t.Fatalf("non-positive topK: got err=%v", err)
	}
}

func TestSearchByEmotionGatewayFailures(t *testing.T) {
	embedder := &fakeEmbedder{err: fmt.Errorf("quota exceeded")}
	engine := newTestEngine(t, embedder, newFakeStore())
	if _, err := engine.SearchByEmotion(context.Background(), "anger", 0.8, 10); CodeOf(err) != ErrorEmbeddingUnavailable {
		t.Fatalf("embed failure: got err=%v", err)
	}

	store := newFakeStore()
	store.queryErr = fmt.Errorf("connection refused")
	engine, _ = newSearchFixtureWithStore(t, store)
	if _, err := engine.SearchByEmotion(context.Background(), "anger", 0.8, 10); CodeOf(err) != ErrorStorageUnavailable {
		t.Fatalf("store failure: got err=%v", err)
	}
}

func TestAnchorEmbeddingCachedAcrossSearches(t *testing.T) {
	engine, store := newSearchFixture(t)
	seedSearchEntries(store)

	for i := 0; i < 3; i++ {
		if _, err := engine.SearchByEmotion(context.Background(), "anger", 0.8, 10); err != nil {
			t.Fatalf("SearchByEmotion #%d: %v", i+1, err)
		}
	}

	angerPhrase, _ := AnchorFor("anger")
	if got := engine.anchors.embedder.(*fakeEmbedder).callsFor(angerPhrase); got != 1 {
		t.Fatalf("anchor embed calls: want=1 got=%d", got)
	}
}

func TestIngestThenSearchRoundTrip(t *testing.T) {
	angerPhrase, _ := AnchorFor("anger")
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		angerPhrase:            {1, 0, 0},
		"I am absolutely livid": {0.95, 0.3122499, 0},
	}}
	store := newFakeStore()
	engine := newTestEngine(t, embedder, store)

	entryID, err := engine.Ingest(context.Background(), "u1", "Engineering_2024", "I am absolutely livid", nil)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	matches, err := engine.SearchByEmotion(context.Background(), "anger", 0, 10)
	if err != nil {
		t.Fatalf("SearchByEmotion: %v", err)
	}
	found := false
	for _, match := range matches {
		if match.UserID == "u1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ingested entry %q not found at threshold 0: got=%+v", entryID, matches)
	}
}

func TestAnalyzeCohortNoData(t *testing.T) {
	engine := newTestEngine(t, anchorBasisEmbedder(), newFakeStore())

	health, err := engine.AnalyzeCohort(context.Background(), "Ghost_2024")
	if err != nil {
		t.Fatalf("AnalyzeCohort: %v", err)
	}
	if health.Status != "no_data" {
		t.Fatalf("status: want=%q got=%q", "no_data", health.Status)
	}
	if health.CohortID != "Ghost_2024" {
		t.Fatalf("cohort id: got=%q", health.CohortID)
	}
	if health.Message == "" {
		t.Fatalf("message should be set for no_data")
	}

	raw, err := json.Marshal(health)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, absent := range []string{"emotion_profile", "total_entries", "dominant_emotion", "alert_level"} {
		if strings.Contains(string(raw), absent) {
			t.Fatalf("no_data response must omit %q: got=%s", absent, raw)
		}
	}
}

func TestAnalyzeCohortProfileAndDominant(t *testing.T) {
	store := newFakeStore()
	engine := newTestEngine(t, anchorBasisEmbedder(), store)

	angerVec := basisVector("anger")
	store.add("e-1", angerVec, "vent one", map[string]any{"cohort_id": "Engineering_2024", "user_id": "u1"})
	store.add("e-2", angerVec, "vent two", map[string]any{"cohort_id": "Engineering_2024", "user_id": "u2"})
	store.add("e-3", basisVector("sadness"), "vent three", map[string]any{"cohort_id": "Arts_2024", "user_id": "u3"})

	health, err := engine.AnalyzeCohort(context.Background(), "Engineering_2024")
	if err != nil {
		t.Fatalf("AnalyzeCohort: %v", err)
	}
	if health.TotalEntries != 2 {
		t.Fatalf("total entries: want=2 got=%d", health.TotalEntries)
	}
	if health.DominantEmotion != "anger" {
		t.Fatalf("dominant emotion: want=%q got=%q", "anger", health.DominantEmotion)
	}
	if len(health.EmotionProfile) != len(anchorNames) {
		t.Fatalf("profile size: want=%d got=%d", len(anchorNames), len(health.EmotionProfile))
	}
	if health.EmotionProfile["anger"] != 1.0 {
		t.Fatalf("anger similarity: want=1.0 got=%v", health.EmotionProfile["anger"])
	}
	if health.EmotionProfile["sadness"] != 0 {
		t.Fatalf("sadness similarity: want=0 got=%v", health.EmotionProfile["sadness"])
	}
	if health.AlertLevel != AlertWarning {
		t.Fatalf("alert level: want=%q got=%q", AlertWarning, health.AlertLevel)
	}
	if health.Timestamp == "" {
		t.Fatalf("timestamp should be set")
	}
}

func TestAnalyzeCohortDominantTieFollowsRegistryOrder(t *testing.T) {
	store := newFakeStore()
	engine := newTestEngine(t, anchorBasisEmbedder(), store)

	// Equidistant from anger and sadness; anger wins by registry order.
	mixed := make([]float32, len(anchorNames))
	mixed[0] = 0.70710678
	mixed[1] = 0.70710678
	store.add("e-1", mixed, "vent", map[string]any{"cohort_id": "Mixed_2024", "user_id": "u1"})

	health, err := engine.AnalyzeCohort(context.Background(), "Mixed_2024")
	if err != nil {
		t.Fatalf("AnalyzeCohort: %v", err)
	}
	if health.DominantEmotion != "anger" {
		t.Fatalf("dominant emotion: want=%q got=%q", "anger", health.DominantEmotion)
	}
	if health.EmotionProfile["anger"] != health.EmotionProfile["sadness"] {
		t.Fatalf("expected tie: anger=%v sadness=%v",
			health.EmotionProfile["anger"], health.EmotionProfile["sadness"])
	}
}

func TestAnalyzeCohortAcrossCohortsScenario(t *testing.T) {
	store := newFakeStore()
	embedder := anchorBasisEmbedder()
	embedder.vectors["I am furious, I want to scream"] = leanVector("anger")
	embedder.vectors["I feel empty and alone"] = leanVector("sadness")
	engine := newTestEngine(t, embedder, store)

	entries := []struct {
		user   string
		cohort string
		text   string
	}{
		{"u1", "C1", "I am furious, I want to scream"},
		{"u2", "C1", "I feel empty and alone"},
		{"u3", "C2", "I am furious, I want to scream"},
	}
	for _, e := range entries {
		if _, err := engine.Ingest(context.Background(), e.user, e.cohort, e.text, nil); err != nil {
			t.Fatalf("Ingest(%s): %v", e.user, err)
		}
	}

	health, err := engine.AnalyzeCohort(context.Background(), "C1")
	if err != nil {
		t.Fatalf("AnalyzeCohort: %v", err)
	}
	if health.TotalEntries != 2 {
		t.Fatalf("total entries: want=2 got=%d", health.TotalEntries)
	}
	profile := health.EmotionProfile
	if profile["anger"] <= profile["anxiety"] || profile["anger"] <= profile["loneliness"] {
		t.Fatalf("anger should outrank anxiety/loneliness: profile=%v", profile)
	}
	if profile["sadness"] <= profile["anxiety"] || profile["sadness"] <= profile["loneliness"] {
		t.Fatalf("sadness should outrank anxiety/loneliness: profile=%v", profile)
	}
}

func TestAnalyzeCohortValidation(t *testing.T) {
	engine := newTestEngine(t, anchorBasisEmbedder(), newFakeStore())
	if _, err := engine.AnalyzeCohort(context.Background(), "  "); CodeOf(err) != ErrorInvalidArgument {
		t.Fatalf("empty cohort id: got err=%v", err)
	}
}

func TestCheckCrisisFlagsStrictInequality(t *testing.T) {
	store := newFakeStore()
	store.cannedQuery = []chroma.QueryResult{
		{ID: "f-1", Distance: 0.25, Metadata: map[string]any{
			"user_id": "u-flagged", "cohort_id": "Arts_2024",
			"timestamp": "2026-08-25T10:00:00Z", "text_preview": "preview...",
		}},
		{ID: "f-2", Distance: 0.5, Metadata: map[string]any{
			"user_id": "u-at-threshold", "cohort_id": "Arts_2024",
		}},
	}
	engine := newTestEngine(t, anchorBasisEmbedder(), store)

	flags, err := engine.CheckCrisisFlags(context.Background(), 0.5)
	if err != nil {
		t.Fatalf("CheckCrisisFlags: %v", err)
	}
	if len(flags) != 1 {
		t.Fatalf("flags: want=1 got=%d", len(flags))
	}
	flag := flags[0]
	if flag.UserID != "u-flagged" {
		t.Fatalf("flagged user: got=%q", flag.UserID)
	}
	if flag.CrisisSimilarity != 0.75 {
		t.Fatalf("crisis similarity: want=0.75 got=%v", flag.CrisisSimilarity)
	}
	if !flag.InterventionRequired {
		t.Fatalf("intervention_required must be true")
	}
	if flag.FlaggedAt == "" {
		t.Fatalf("flagged_at should be set")
	}
	if flag.TextPreview != "preview..." {
		t.Fatalf("text preview: got=%q", flag.TextPreview)
	}

	if store.lastTopK != crisisPoolSize {
		t.Fatalf("crisis pool size: want=%d got=%d", crisisPoolSize, store.lastTopK)
	}
}

func TestCheckCrisisFlagsValidation(t *testing.T) {
	engine := newTestEngine(t, anchorBasisEmbedder(), newFakeStore())
	if _, err := engine.CheckCrisisFlags(context.Background(), 1.5); CodeOf(err) != ErrorInvalidArgument {
		t.Fatalf("threshold out of range: got err=%v", err)
	}
}

func TestCheckCrisisFlagsEmptyStore(t *testing.T) {
	engine := newTestEngine(t, anchorBasisEmbedder(), newFakeStore())
	flags, err := engine.CheckCrisisFlags(context.Background(), DefaultCrisisThreshold)
	if err != nil {
		t.Fatalf("CheckCrisisFlags: %v", err)
	}
	if flags == nil || len(flags) != 0 {
		t.Fatalf("flags: want empty non-nil slice, got=%v", flags)
	}
}

func TestListAnchors(t *testing.T) {
	engine := newTestEngine(t, &fakeEmbedder{}, newFakeStore())

	anchors := engine.ListAnchors()
	if len(anchors.Emotions) != 7 {
		t.Fatalf("emotions: want=7 got=%d", len(anchors.Emotions))
	}
	want := []string{"anger", "sadness", "anxiety", "burnout", "loneliness", "overwhelm", "crisis"}
	for i, name := range want {
		if anchors.Emotions[i] != name {
			t.Fatalf("emotions[%d]: want=%q got=%q", i, name, anchors.Emotions[i])
		}
	}
	if len(anchors.Anchors) != 7 {
		t.Fatalf("anchors: want=7 got=%d", len(anchors.Anchors))
	}
	if !strings.Contains(anchors.Anchors["anger"], "furious") {
		t.Fatalf("anger anchor phrase: got=%q", anchors.Anchors["anger"])
	}

	// Mutating the returned map must not leak into the registry.
	anchors.Anchors["anger"] = "changed"
	if engine.ListAnchors().Anchors["anger"] == "changed" {
		t.Fatalf("anchor registry mutated through returned map")
	}
}

func TestStats(t *testing.T) {
	store := newFakeStore()
	store.add("e-1", []float32{1}, "vent", map[string]any{"cohort_id": "c1", "user_id": "u1"})
	engine := newTestEngine(t, &fakeEmbedder{}, store)

	stats, err := engine.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalEntries != 1 {
		t.Fatalf("total entries: want=1 got=%d", stats.TotalEntries)
	}
	if stats.CollectionName != "MindEase_Emotions" {
		t.Fatalf("collection name: got=%q", stats.CollectionName)
	}
	if stats.DistanceMetric != "cosine" {
		t.Fatalf("distance metric: got=%q", stats.DistanceMetric)
	}
}

func newTestEngine(t *testing.T, embedder *fakeEmbedder, store *fakeStore) *Engine {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() {
		log.Sync()
	})
	engine := NewEngine(log, embedder, store)
	engine.now = func() time.Time {
		return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	}
	return engine
}

func newSearchFixture(t *testing.T) (*Engine, *fakeStore) {
	t.Helper()
	return newSearchFixtureWithStore(t, newFakeStore())
}

func newSearchFixtureWithStore(t *testing.T, store *fakeStore) (*Engine, *fakeStore) {
	t.Helper()
	angerPhrase, _ := AnchorFor("anger")
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		angerPhrase: {1, 0, 0},
	}}
	return newTestEngine(t, embedder, store), store
}

func seedSearchEntries(store *fakeStore) {
	store.add("e-1", []float32{1, 0, 0}, "vent one", map[string]any{
		"cohort_id": "Engineering_2024", "user_id": "u-critical",
		"timestamp": "2026-08-25T09:00:00Z", "text_preview": "vent one",
	})
	store.add("e-2", []float32{0.9, 0.43589, 0}, "vent two", map[string]any{
		"cohort_id": "Engineering_2024", "user_id": "u-high",
		"timestamp": "2026-08-25T09:05:00Z", "text_preview": "vent two",
	})
	store.add("e-3", []float32{0.6, 0.8, 0}, "vent three", map[string]any{
		"cohort_id": "Arts_2024", "user_id": "u-low",
		"timestamp": "2026-08-25T09:10:00Z", "text_preview": "vent three",
	})
}

// anchorBasisEmbedder maps each anchor phrase to its own basis vector,
// so anchor similarities are fully determined by test entry vectors.
func anchorBasisEmbedder() *fakeEmbedder {
	vectors := make(map[string][]float32, len(anchorNames))
	for _, name := range anchorNames {
		vectors[anchorPhrases[name]] = basisVector(name)
	}
	return &fakeEmbedder{vectors: vectors}
}

func basisVector(emotion string) []float32 {
	vec := make([]float32, len(anchorNames))
	for i, name := range anchorNames {
		if name == emotion {
			vec[i] = 1
		}
	}
	return vec
}

// leanVector is dominated by one anchor axis with a small uniform
// component on every other axis.
func leanVector(emotion string) []float32 {
	vec := make([]float32, len(anchorNames))
	for i, name := range anchorNames {
		if name == emotion {
			vec[i] = 0.95
		} else {
			vec[i] = 0.05
		}
	}
	return vec
}

type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   map[string]int
}

func (f *fakeEmbedder) Embed(_ context.Context, inputs []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	out := make([][]float32, 0, len(inputs))
	for _, input := range inputs {
		f.calls[input]++
		vec, ok := f.vectors[input]
		if !ok {
			return nil, fmt.Errorf("no fake vector for %q", input)
		}
		out = append(out, vec)
	}
	return out, nil
}

func (f *fakeEmbedder) callsFor(input string) int {
	return f.calls[input]
}

type fakeEntry struct {
	id       string
	vector   []float32
	document string
	metadata map[string]any
}

// fakeStore is an in-memory VectorStore with exact cosine-distance
// queries, nearest first.
type fakeStore struct {
	entries     []fakeEntry
	cannedQuery []chroma.QueryResult
	lastTopK    int

	putErr   error
	queryErr error
	getErr   error
	countErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) add(id string, vector []float32, document string, metadata map[string]any) {
	s.entries = append(s.entries, fakeEntry{id: id, vector: vector, document: document, metadata: metadata})
}

func (s *fakeStore) Put(_ context.Context, id string, vector []float32, document string, metadata map[string]any) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.add(id, vector, document, metadata)
	return nil
}

func (s *fakeStore) Query(_ context.Context, vector []float32, topK int) ([]chroma.QueryResult, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	s.lastTopK = topK
	if s.cannedQuery != nil {
		return s.cannedQuery, nil
	}

	results := make([]chroma.QueryResult, 0, len(s.entries))
	for _, entry := range s.entries {
		results = append(results, chroma.QueryResult{
			ID:       entry.id,
			Distance: 1 - cosineSimilarity(vector, entry.vector),
			Document: entry.document,
			Metadata: entry.metadata,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func (s *fakeStore) GetByFilter(_ context.Context, filter map[string]any) ([]chroma.StoredEntry, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	out := make([]chroma.StoredEntry, 0)
	for _, entry := range s.entries {
		match := true
		for key, want := range filter {
			if entry.metadata[key] != want {
				match = false
				break
			}
		}
		if match {
			out = append(out, chroma.StoredEntry{
				ID:        entry.id,
				Embedding: entry.vector,
				Metadata:  entry.metadata,
			})
		}
	}
	return out, nil
}

func (s *fakeStore) Count(_ context.Context) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return len(s.entries), nil
}

func (s *fakeStore) CollectionName() string {
	return "MindEase_Emotions"
}
