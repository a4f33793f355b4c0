package emotions

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mindease/mindease-backend/internal/platform/chroma"
	"github.com/mindease/mindease-backend/internal/platform/gemini"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const (
	DefaultSearchThreshold = 0.8
	DefaultSearchTopK      = 10
	DefaultCrisisThreshold = 0.9

	// crisisPoolSize bounds the candidate set scanned for crisis
	// signals on every check.
	crisisPoolSize = 50

	textPreviewLength = 50
)

type EmotionMatch struct {
	CohortID        string  `json:"cohort_id"`
	UserID          string  `json:"user_id"`
	SimilarityScore float64 `json:"similarity_score"`
	RiskLevel       string  `json:"risk_level"`
	Timestamp       string  `json:"timestamp"`
	TextPreview     string  `json:"text_preview"`
}

type CohortHealth struct {
	CohortID        string             `json:"cohort_id"`
	Status          string             `json:"status,omitempty"`
	Message         string             `json:"message,omitempty"`
	TotalEntries    int                `json:"total_entries,omitempty"`
	DominantEmotion string             `json:"dominant_emotion,omitempty"`
	EmotionProfile  map[string]float64 `json:"emotion_profile,omitempty"`
	AlertLevel      string             `json:"alert_level,omitempty"`
	Timestamp       string             `json:"timestamp,omitempty"`
}

type CrisisFlag struct {
	UserID               string  `json:"user_id"`
	CohortID             string  `json:"cohort_id"`
	CrisisSimilarity     float64 `json:"crisis_similarity"`
	Timestamp            string  `json:"timestamp"`
	TextPreview          string  `json:"text_preview"`
	InterventionRequired bool    `json:"intervention_required"`
	FlaggedAt            string  `json:"flagged_at"`
}

type AnchorSet struct {
	Emotions []string          `json:"emotions"`
	Anchors  map[string]string `json:"anchors"`
}

type StoreStats struct {
	TotalEntries   int    `json:"total_entries"`
	CollectionName string `json:"collection_name"`
	DistanceMetric string `json:"distance_metric"`
}

// Engine runs all emotional analytics on top of the embedding and
// vector store gateways. It only ever sees pseudonymous user ids; the
// HTTP boundary hashes raw identifiers before they reach Ingest.
type Engine struct {
	log      *logger.Logger
	store    chroma.VectorStore
	anchors  *anchorCache
	embedder gemini.Client
	now      func() time.Time
}

func NewEngine(log *logger.Logger, embedder gemini.Client, store chroma.VectorStore) *Engine {
	return &Engine{
		log:      log.With("service", "EmotionsEngine"),
		store:    store,
		anchors:  newAnchorCache(embedder),
		embedder: embedder,
		now:      time.Now,
	}
}

// Ingest embeds a vent and stores it with system metadata. The entry is
// written at most once; a storage failure is returned to the caller,
// never retried.
func (e *Engine) Ingest(ctx context.Context, userID, cohortID, text string, metadata map[string]any) (string, error) {
	const op = "ingest"

	if strings.TrimSpace(userID) == "" {
		return "", errInvalidArgument(op, "user id is required")
	}
	if strings.TrimSpace(cohortID) == "" {
		return "", errInvalidArgument(op, "cohort id is required")
	}
	if strings.TrimSpace(text) == "" {
		return "", errInvalidArgument(op, "text is required")
	}

	embedded, err := e.embedder.Embed(ctx, []string{text})
	if err != nil {
		return "", errEmbedding(op, err)
	}
	if len(embedded) != 1 {
		return "", errEmbedding(op, nil)
	}

	entryMeta := map[string]any{}
	for k, v := range metadata {
		entryMeta[k] = v
	}
	// System fields win over caller metadata.
	timestamp := e.now().UTC().Format(time.RFC3339)
	entryMeta["user_id"] = userID
	entryMeta["cohort_id"] = cohortID
	entryMeta["timestamp"] = timestamp
	entryMeta["text_preview"] = textPreview(text)

	entryID := userID + "_" + uuid.NewString()

	if err := e.store.Put(ctx, entryID, embedded[0], text, entryMeta); err != nil {
		return "", errStorage(op, err)
	}

	e.log.Info("Emotional entry stored",
		"user_id", userID,
		"cohort_id", cohortID,
		"entry_id", entryID,
	)
	return entryID, nil
}

// SearchByEmotion finds stored entries semantically close to an
// emotion anchor. topK bounds the nearest-neighbour pool before the
// threshold filter runs, so raising the threshold can only shrink the
// result set.
func (e *Engine) SearchByEmotion(ctx context.Context, emotion string, threshold float64, topK int) ([]EmotionMatch, error) {
	const op = "search_by_emotion"

	name := strings.ToLower(strings.TrimSpace(emotion))
	if _, ok := AnchorFor(name); !ok {
		return nil, errUnknownEmotion(op, emotion)
	}
	if threshold < 0 || threshold > 1 {
		return nil, errInvalidArgument(op, "threshold must be within [0, 1]")
	}
	if topK <= 0 {
		return nil, errInvalidArgument(op, "top_k must be positive")
	}

	anchorVec, err := e.anchors.vector(ctx, name)
	if err != nil {
		return nil, errEmbedding(op, err)
	}

	results, err := e.store.Query(ctx, anchorVec, topK)
	if err != nil {
		return nil, errStorage(op, err)
	}

	matches := make([]EmotionMatch, 0, len(results))
	for _, result := range results {
		similarity := 1 - result.Distance
		if similarity < threshold {
			continue
		}
		matches = append(matches, EmotionMatch{
			CohortID:        metaString(result.Metadata, "cohort_id"),
			UserID:          metaString(result.Metadata, "user_id"),
			SimilarityScore: round4(similarity),
			RiskLevel:       riskLevel(similarity),
			Timestamp:       metaString(result.Metadata, "timestamp"),
			TextPreview:     metaString(result.Metadata, "text_preview"),
		})
	}
	return matches, nil
}

// AnalyzeCohort reports the emotional centroid of a cohort against all
// anchors. An unknown or empty cohort is a no_data report, not an
// error.
func (e *Engine) AnalyzeCohort(ctx context.Context, cohortID string) (CohortHealth, error) {
	const op = "analyze_cohort"

	if strings.TrimSpace(cohortID) == "" {
		return CohortHealth{}, errInvalidArgument(op, "cohort id is required")
	}

	entries, err := e.store.GetByFilter(ctx, map[string]any{"cohort_id": cohortID})
	if err != nil {
		return CohortHealth{}, errStorage(op, err)
	}
	if len(entries) == 0 {
		return CohortHealth{
			CohortID: cohortID,
			Status:   "no_data",
			Message:  "No emotional data found for this cohort",
		}, nil
	}

	vectors := make([][]float32, 0, len(entries))
	for _, entry := range entries {
		vectors = append(vectors, entry.Embedding)
	}
	center := centroid(vectors)

	// One anchor per goroutine; each writes only its own slot.
	similarities := make([]float64, len(anchorNames))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, name := range anchorNames {
		group.Go(func() error {
			anchorVec, err := e.anchors.vector(groupCtx, name)
			if err != nil {
				return err
			}
			similarities[i] = round4(cosineSimilarity(center, anchorVec))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return CohortHealth{}, errEmbedding(op, err)
	}

	profile := make(map[string]float64, len(anchorNames))
	dominant := anchorNames[0]
	for i, name := range anchorNames {
		profile[name] = similarities[i]
		if similarities[i] > profile[dominant] {
			dominant = name
		}
	}

	return CohortHealth{
		CohortID:        cohortID,
		TotalEntries:    len(entries),
		DominantEmotion: dominant,
		EmotionProfile:  profile,
		AlertLevel:      cohortAlertLevel(profile),
		Timestamp:       e.now().UTC().Format(time.RFC3339),
	}, nil
}

// CheckCrisisFlags scans the nearest candidates to the crisis anchor
// and flags everyone strictly above the threshold. This is the only
// read path meant for human reviewers, so the gate is deliberately
// strict: similarity equal to the threshold does not flag.
func (e *Engine) CheckCrisisFlags(ctx context.Context, threshold float64) ([]CrisisFlag, error) {
	const op = "check_crisis_flags"

	if threshold < 0 || threshold > 1 {
		return nil, errInvalidArgument(op, "threshold must be within [0, 1]")
	}

	crisisVec, err := e.anchors.vector(ctx, "crisis")
	if err != nil {
		return nil, errEmbedding(op, err)
	}

	results, err := e.store.Query(ctx, crisisVec, crisisPoolSize)
	if err != nil {
		return nil, errStorage(op, err)
	}

	flaggedAt := e.now().UTC().Format(time.RFC3339)
	flagged := make([]CrisisFlag, 0)
	for _, result := range results {
		similarity := 1 - result.Distance
		if similarity <= threshold {
			continue
		}
		flagged = append(flagged, CrisisFlag{
			UserID:               metaString(result.Metadata, "user_id"),
			CohortID:             metaString(result.Metadata, "cohort_id"),
			CrisisSimilarity:     round4(similarity),
			Timestamp:            metaString(result.Metadata, "timestamp"),
			TextPreview:          metaString(result.Metadata, "text_preview"),
			InterventionRequired: true,
			FlaggedAt:            flaggedAt,
		})
	}

	if len(flagged) > 0 {
		e.log.Warn("Crisis flags raised",
			"count", len(flagged),
			"threshold", threshold,
		)
	}
	return flagged, nil
}

// ListAnchors is static registry introspection; it never touches the
// gateways.
func (e *Engine) ListAnchors() AnchorSet {
	return AnchorSet{
		Emotions: AllEmotions(),
		Anchors:  AnchorPhrases(),
	}
}

func (e *Engine) Stats(ctx context.Context) (StoreStats, error) {
	const op = "stats"

	count, err := e.store.Count(ctx)
	if err != nil {
		return StoreStats{}, errStorage(op, err)
	}
	return StoreStats{
		TotalEntries:   count,
		CollectionName: e.store.CollectionName(),
		DistanceMetric: "cosine",
	}, nil
}

func textPreview(text string) string {
	runes := []rune(text)
	if len(runes) <= textPreviewLength {
		return text
	}
	return string(runes[:textPreviewLength]) + "..."
}

func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}
