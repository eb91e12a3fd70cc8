// Package nlp talks to the NLP server that hosts the pretrained NER pipelines.
package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/newsner/newsner/config"
	"github.com/newsner/newsner/internal"
	"github.com/newsner/newsner/pkg/models"
)

var log = internal.GetLogger()

const maxErrorBody = 512

// Client calls the NLP server's /models and /entities endpoints.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewClient creates a Client for cfg. If httpClient is nil a retryable,
// traced client is built from cfg.
func NewClient(cfg *config.NLPConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewRetryableHTTPClient(cfg.MaxRetries, cfg.Timeout)
	}
	language := cfg.Language
	if language == "" {
		language = "en"
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.ServerURL, "/"),
		language:   language,
		httpClient: httpClient,
	}
}

// Models lists the pipelines the NLP server has loaded.
func (c *Client) Models(ctx context.Context) ([]models.ModelInfo, error) {
	var response models.ModelsResponse
	if err := c.do(ctx, http.MethodGet, "/models", nil, &response); err != nil {
		return nil, err
	}
	return response.Models, nil
}

// Extract runs model over text and returns its spans sorted by start offset,
// which is the order the pipeline reports entities in.
func (c *Client) Extract(ctx context.Context, model, text string) ([]models.Span, error) {
	recordID := uuid.NewString()
	request := models.EntityRequest{
		Model: model,
		Texts: []models.EntityRequestRecord{
			{
				UUID:     recordID,
				Text:     text,
				Language: c.language,
			},
		},
	}

	var response models.EntityResponse
	if err := c.do(ctx, http.MethodPost, "/entities", request, &response); err != nil {
		return nil, err
	}

	var record *models.EntityResponseRecord
	for i := range response.Texts {
		if response.Texts[i].UUID == recordID {
			record = &response.Texts[i]
			break
		}
	}
	if record == nil {
		return nil, fmt.Errorf("NLP server returned no result for record %s", recordID)
	}

	var spans []models.Span
	for _, entity := range record.Entities {
		for _, match := range entity.Matches {
			spans = append(spans, models.Span{
				Start: match.Start,
				End:   match.End,
				Text:  match.Text,
				Label: entity.Label,
			})
		}
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	log.Debugf("NLP model %s returned %d spans", model, len(spans))

	return spans, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal NLP request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create NLP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", models.ErrNLPUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf(
			"%w: %s %s returned %d: %s",
			models.ErrNLPUnavailable,
			method,
			path,
			resp.StatusCode,
			strings.TrimSpace(string(msg)),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode NLP response: %w", err)
	}

	return nil
}
