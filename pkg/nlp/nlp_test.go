package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsner/newsner/config"
	"github.com/newsner/newsner/pkg/models"
)

var testModels = []models.ModelInfo{
	{Name: "en_core_web_sm", Version: "3.7.1"},
	{Name: "en_core_web_lg", Version: "3.7.1"},
}

// fakeNLPServer mimics the NLP server. Entities are returned grouped by name,
// the way the server reports them, so clients must re-order by offset.
func fakeNLPServer(t *testing.T, available []models.ModelInfo) (*httptest.Server, *models.EntityRequest) {
	t.Helper()
	last := &models.EntityRequest{}

	mux := http.NewServeMux()
	mux.HandleFunc("/models", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode(models.ModelsResponse{Models: available})
	})
	mux.HandleFunc("/entities", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(last))

		records := make([]models.EntityResponseRecord, len(last.Texts))
		for i, text := range last.Texts {
			records[i] = models.EntityResponseRecord{
				UUID: text.UUID,
				Entities: []models.Entity{
					{
						Name:  "Apple",
						Label: "ORG",
						Matches: []models.EntityMatch{
							{Start: 0, End: 5, Text: "Apple"},
							{Start: 60, End: 65, Text: "Apple"},
						},
					},
					{
						Name:    "September",
						Label:   "DATE",
						Matches: []models.EntityMatch{{Start: 37, End: 46, Text: "September"}},
					},
				},
			}
		}
		_ = json.NewEncoder(w).Encode(models.EntityResponse{Texts: records})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, last
}

func testClient(url string) *Client {
	return NewClient(&config.NLPConfig{ServerURL: url + "/"}, NewRetryableHTTPClient(0, time.Second))
}

func TestClientExtract(t *testing.T) {
	server, last := fakeNLPServer(t, testModels)
	client := testClient(server.URL)

	spans, err := client.Extract(context.Background(), "en_core_web_sm", "Apple unveiled...")
	require.NoError(t, err)

	assert.Equal(t, "en_core_web_sm", last.Model)
	require.Len(t, last.Texts, 1)
	assert.Equal(t, "en", last.Texts[0].Language)
	assert.Equal(t, "Apple unveiled...", last.Texts[0].Text)

	assert.Equal(t, []models.Span{
		{Start: 0, End: 5, Text: "Apple", Label: "ORG"},
		{Start: 37, End: 46, Text: "September", Label: "DATE"},
		{Start: 60, End: 65, Text: "Apple", Label: "ORG"},
	}, spans)
}

func TestClientExtractServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Extract(context.Background(), "en_core_web_sm", "text")

	assert.ErrorIs(t, err, models.ErrNLPUnavailable)
	assert.Contains(t, err.Error(), "model exploded")
}

func TestClientExtractMissingRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.EntityResponse{
			Texts: []models.EntityResponseRecord{{UUID: "someone-else"}},
		})
	}))
	defer server.Close()

	_, err := testClient(server.URL).Extract(context.Background(), "en_core_web_sm", "text")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNLPUnavailable)
}

func TestLoad(t *testing.T) {
	server, _ := fakeNLPServer(t, testModels)

	pipelines, err := Load(context.Background(), testClient(server.URL), LoadOptions{
		Names:      []string{"en_core_web_sm", "en_core_web_lg"},
		MinVersion: "3.5.0",
	})
	require.NoError(t, err)

	require.Len(t, pipelines, 2)
	assert.Equal(t, "en_core_web_sm", pipelines[0].Name())
	assert.Equal(t, "en_core_web_lg", pipelines[1].Name())
	assert.Equal(t, "3.7.1", pipelines[1].Version())

	spans, err := pipelines[1].Entities(context.Background(), "Apple")
	require.NoError(t, err)
	assert.Len(t, spans, 3)
}

func TestLoadMissingModel(t *testing.T) {
	server, _ := fakeNLPServer(t, testModels[:1])

	_, err := Load(context.Background(), testClient(server.URL), LoadOptions{
		Names: []string{"en_core_web_sm", "en_core_web_lg"},
	})

	require.ErrorIs(t, err, models.ErrModelsNotFound)
	var notFound *models.ModelsNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"en_core_web_lg"}, notFound.Names)
}

func TestLoadModelTooOld(t *testing.T) {
	server, _ := fakeNLPServer(t, []models.ModelInfo{
		{Name: "en_core_web_sm", Version: "3.7.1"},
		{Name: "en_core_web_lg", Version: "2.3.0"},
	})

	_, err := Load(context.Background(), testClient(server.URL), LoadOptions{
		Names:      []string{"en_core_web_sm", "en_core_web_lg"},
		MinVersion: "3.0.0",
	})

	var notFound *models.ModelsNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Len(t, notFound.Names, 1)
	assert.Contains(t, notFound.Names[0], "en_core_web_lg")
}

func TestLoadInvalidMinVersion(t *testing.T) {
	server, _ := fakeNLPServer(t, testModels)

	_, err := Load(context.Background(), testClient(server.URL), LoadOptions{
		Names:      []string{"en_core_web_sm"},
		MinVersion: "not-a-version",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrModelsNotFound)
}

func TestLoadRetriesUntilServerReady(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "warming up", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(models.ModelsResponse{Models: testModels})
	}))
	defer server.Close()

	pipelines, err := Load(context.Background(), testClient(server.URL), LoadOptions{
		Names:   []string{"en_core_web_sm"},
		Retries: 2,
	})
	require.NoError(t, err)

	assert.Len(t, pipelines, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoadServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := Load(context.Background(), testClient(url), LoadOptions{
		Names: []string{"en_core_web_sm"},
	})

	assert.ErrorIs(t, err, models.ErrModelsNotFound)
	assert.ErrorIs(t, err, models.ErrNLPUnavailable)
}
