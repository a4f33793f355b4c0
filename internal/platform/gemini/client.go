package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mindease/mindease-backend/internal/pkg/httpx"
	"github.com/mindease/mindease-backend/internal/platform/ctxutil"
	"github.com/mindease/mindease-backend/internal/platform/envutil"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

// Client is the Google Generative Language API client used as the
// embedding provider for all anchor and vent text.
type Client interface {
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	embedModel string
	httpClient *http.Client

	maxRetries int
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}

	baseURL := envutil.String("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	baseURL = strings.TrimRight(baseURL, "/")

	embedModel := envutil.String("GEMINI_EMBED_MODEL", "embedding-001")
	embedModel = strings.TrimPrefix(embedModel, "models/")

	timeoutSec := envutil.Int("GEMINI_TIMEOUT_SECONDS", 30)
	if timeoutSec <= 0 {
		timeoutSec = 30
	}

	maxRetries := envutil.Int("GEMINI_MAX_RETRIES", 3)
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &client{
		log:        log.With("service", "GeminiClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		embedModel: embedModel,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: maxRetries,
	}, nil
}

type geminiHTTPError struct {
	StatusCode int
	Body       string
}

func (e *geminiHTTPError) Error() string {
	return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

func (e *geminiHTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

type embedContentPart struct {
	Text string `json:"text"`
}

type embedContent struct {
	Parts []embedContentPart `json:"parts"`
}

type embedRequest struct {
	Model   string       `json:"model"`
	Content embedContent `json:"content"`
}

type batchEmbedRequest struct {
	Requests []embedRequest `json:"requests"`
}

type batchEmbedResponse struct {
	Embeddings []struct {
		Values []float64 `json:"values"`
	} `json:"embeddings"`
}

func (c *client) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return [][]float32{}, nil
	}

	modelPath := "models/" + c.embedModel
	req := batchEmbedRequest{Requests: make([]embedRequest, 0, len(inputs))}
	for _, input := range inputs {
		text := strings.TrimSpace(input)
		if text == "" {
			text = " "
		}
		req.Requests = append(req.Requests, embedRequest{
			Model: modelPath,
			Content: embedContent{
				Parts: []embedContentPart{{Text: text}},
			},
		})
	}

	var resp batchEmbedResponse
	path := "/v1beta/" + modelPath + ":batchEmbedContents"
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Embeddings) != len(inputs) {
		return nil, fmt.Errorf(
			"gemini embeddings count mismatch: requested=%d returned=%d model=%s",
			len(inputs),
			len(resp.Embeddings),
			c.embedModel,
		)
	}

	out := make([][]float32, len(inputs))
	for i, e := range resp.Embeddings {
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("gemini embedding %d is empty (model=%s)", i, c.embedModel)
		}
		vec := make([]float32, len(e.Values))
		for j, f := range e.Values {
			vec[j] = float32(f)
		}
		out[i] = vec
	}
	return out, nil
}

func (c *client) doOnce(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctxutil.Default(ctx), method, c.baseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &geminiHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, raw, nil
}

func (c *client) do(ctx context.Context, method, path string, body any, out any) error {
	backoff := 1 * time.Second

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}

		resp, raw, err := c.doOnce(ctx, method, path, body)
		if err == nil {
			if out == nil {
				return nil
			}
			if uErr := json.Unmarshal(raw, out); uErr != nil {
				return fmt.Errorf("gemini decode error: %w", uErr)
			}
			return nil
		}

		if !httpx.IsRetryableError(err) || attempt == c.maxRetries {
			return err
		}

		sleepFor := httpx.RetryAfterDuration(resp, backoff, 10*time.Second)
		sleepFor = httpx.JitterSleep(sleepFor)

		c.log.Warn("Gemini request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		time.Sleep(sleepFor)
		backoff *= 2
	}

	return fmt.Errorf("unreachable retry loop")
}
