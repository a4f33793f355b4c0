package chroma

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mindease/mindease-backend/internal/platform/ctxutil"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

// VectorStore is the persistence boundary for emotional vent entries.
// The backing implementation talks to a Chroma server over REST; the
// collection is created on startup with cosine distance so that
// similarity = 1 - distance holds for every query result.
type VectorStore interface {
	Put(ctx context.Context, id string, vector []float32, document string, metadata map[string]any) error
	Query(ctx context.Context, vector []float32, topK int) ([]QueryResult, error)
	GetByFilter(ctx context.Context, filter map[string]any) ([]StoredEntry, error)
	Count(ctx context.Context) (int, error)
	CollectionName() string
}

type QueryResult struct {
	ID       string
	Distance float64
	Document string
	Metadata map[string]any
}

type StoredEntry struct {
	ID        string
	Embedding []float32
	Metadata  map[string]any
}

type vectorStore struct {
	log          *logger.Logger
	cfg          Config
	baseURL      string
	collectionID string
	httpClient   *http.Client
}

func NewVectorStore(log *logger.Logger, cfg Config) (VectorStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if err := ValidateConfig(cfg, true); err != nil {
		return nil, err
	}

	vs := &vectorStore{
		log:        log.With("service", "ChromaVectorStore", "collection", cfg.Collection),
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := vs.verifyReady(ctx); err != nil {
		return nil, err
	}

	vs.log.Info("Chroma collection ready",
		"collection_id", vs.collectionID,
		"vector_dim", cfg.VectorDim,
	)
	return vs, nil
}

type collectionResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Metadata map[string]any `json:"metadata"`
}

// verifyReady checks the server heartbeat, then get-or-creates the
// collection with cosine HNSW space. A pre-existing collection with a
// different space would silently break similarity math, so that is a
// hard validation error.
func (vs *vectorStore) verifyReady(ctx context.Context) error {
	if err := vs.doJSON(ctx, "heartbeat", http.MethodGet, "/api/v1/heartbeat", nil, nil); err != nil {
		return err
	}

	body := map[string]any{
		"name":          vs.cfg.Collection,
		"metadata":      map[string]any{"hnsw:space": "cosine"},
		"get_or_create": true,
	}
	var coll collectionResponse
	if err := vs.doJSON(ctx, "ensure_collection", http.MethodPost, "/api/v1/collections", body, &coll); err != nil {
		return err
	}
	if strings.TrimSpace(coll.ID) == "" {
		return opErr("ensure_collection", OperationErrorDecodeFailed, "collection response missing id", nil)
	}
	if space, ok := coll.Metadata["hnsw:space"].(string); ok && space != "cosine" {
		return opErr(
			"ensure_collection",
			OperationErrorValidation,
			fmt.Sprintf("collection %q uses hnsw:space=%q, expected cosine", vs.cfg.Collection, space),
			nil,
		)
	}

	vs.collectionID = coll.ID
	return nil
}

func (vs *vectorStore) CollectionName() string {
	return vs.cfg.Collection
}

func (vs *vectorStore) validateVector(op string, vector []float32) error {
	if len(vector) == 0 {
		return opErr(op, OperationErrorValidation, "vector is empty", nil)
	}
	if len(vector) != vs.cfg.VectorDim {
		return opErr(
			op,
			OperationErrorValidation,
			fmt.Sprintf("vector dimension mismatch: got=%d want=%d", len(vector), vs.cfg.VectorDim),
			nil,
		)
	}
	return nil
}

func (vs *vectorStore) Put(ctx context.Context, id string, vector []float32, document string, metadata map[string]any) error {
	if strings.TrimSpace(id) == "" {
		return opErr("put", OperationErrorValidation, "id is required", nil)
	}
	if err := vs.validateVector("put", vector); err != nil {
		return err
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	body := map[string]any{
		"ids":        []string{id},
		"embeddings": [][]float32{vector},
		"metadatas":  []map[string]any{metadata},
		"documents":  []string{document},
	}
	path := "/api/v1/collections/" + vs.collectionID + "/add"
	return vs.doJSON(ctx, "put", http.MethodPost, path, body, nil)
}

type queryResponse struct {
	IDs       [][]string         `json:"ids"`
	Distances [][]float64        `json:"distances"`
	Documents [][]*string        `json:"documents"`
	Metadatas [][]map[string]any `json:"metadatas"`
}

// Query returns up to topK nearest entries, closest first.
func (vs *vectorStore) Query(ctx context.Context, vector []float32, topK int) ([]QueryResult, error) {
	if err := vs.validateVector("query", vector); err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = 10
	}

	body := map[string]any{
		"query_embeddings": [][]float32{vector},
		"n_results":        topK,
		"include":          []string{"metadatas", "documents", "distances"},
	}
	path := "/api/v1/collections/" + vs.collectionID + "/query"

	var resp queryResponse
	if err := vs.doJSON(ctx, "query", http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	// Single query vector, so every response array is nested one deep.
	if len(resp.IDs) == 0 {
		return []QueryResult{}, nil
	}
	ids := resp.IDs[0]

	out := make([]QueryResult, 0, len(ids))
	for i, id := range ids {
		result := QueryResult{ID: id}
		if len(resp.Distances) > 0 && i < len(resp.Distances[0]) {
			result.Distance = resp.Distances[0][i]
		}
		if len(resp.Documents) > 0 && i < len(resp.Documents[0]) && resp.Documents[0][i] != nil {
			result.Document = *resp.Documents[0][i]
		}
		if len(resp.Metadatas) > 0 && i < len(resp.Metadatas[0]) {
			result.Metadata = resp.Metadatas[0][i]
		}
		out = append(out, result)
	}
	return out, nil
}

type getResponse struct {
	IDs        []string         `json:"ids"`
	Embeddings [][]float32      `json:"embeddings"`
	Metadatas  []map[string]any `json:"metadatas"`
}

// GetByFilter returns every stored entry whose metadata matches the
// filter, embeddings included. Used for cohort aggregation, where the
// engine needs the full vector set of a cohort.
func (vs *vectorStore) GetByFilter(ctx context.Context, filter map[string]any) ([]StoredEntry, error) {
	if len(filter) == 0 {
		return nil, opErr("get_by_filter", OperationErrorValidation, "filter is required", nil)
	}
	where, err := translateWhere(filter)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"where":   where,
		"include": []string{"embeddings", "metadatas"},
	}
	path := "/api/v1/collections/" + vs.collectionID + "/get"

	var resp getResponse
	if err := vs.doJSON(ctx, "get_by_filter", http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	out := make([]StoredEntry, 0, len(resp.IDs))
	for i, id := range resp.IDs {
		entry := StoredEntry{ID: id}
		if i < len(resp.Embeddings) {
			entry.Embedding = resp.Embeddings[i]
		}
		if i < len(resp.Metadatas) {
			entry.Metadata = resp.Metadatas[i]
		}
		out = append(out, entry)
	}
	return out, nil
}

func (vs *vectorStore) Count(ctx context.Context) (int, error) {
	path := "/api/v1/collections/" + vs.collectionID + "/count"
	var count int
	if err := vs.doJSON(ctx, "count", http.MethodGet, path, nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

type chromaErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (vs *vectorStore) doJSON(ctx context.Context, op, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return opErr(op, OperationErrorEncodeFailed, "failed to encode request body", err)
		}
	}

	req, err := http.NewRequestWithContext(ctxutil.Default(ctx), method, vs.baseURL+path, &buf)
	if err != nil {
		return opErr(op, OperationErrorEncodeFailed, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := vs.httpClient.Do(req)
	if err != nil {
		return classifyHTTPCallError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return opErr(op, OperationErrorTransportFailed, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := truncateBody(raw, 512)
		var eb chromaErrorBody
		if uErr := json.Unmarshal(raw, &eb); uErr == nil {
			if eb.Message != "" {
				msg = eb.Message
			} else if eb.Error != "" {
				msg = eb.Error
			}
		}
		return &OperationError{
			Code:       OperationErrorQueryFailed,
			Operation:  op,
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return opErr(op, OperationErrorDecodeFailed, "failed to decode response body", err)
	}
	return nil
}

func classifyHTTPCallError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return opErr(op, OperationErrorTimeout, "request deadline exceeded", err)
	}
	if errors.Is(err, context.Canceled) {
		return opErr(op, OperationErrorTimeout, "request canceled", err)
	}
	return opErr(op, OperationErrorTransportFailed, "request failed", err)
}

func truncateBody(raw []byte, limit int) string {
	s := strings.TrimSpace(string(raw))
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
