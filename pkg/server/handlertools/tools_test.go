package handlertools

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsner/newsner/pkg/models"
)

func TestIntFromQuery(t *testing.T) {
	req := httptest.NewRequest("GET", "/?param=123", nil)
	got, err := IntFromQuery[int](req, "param")
	assert.NoError(t, err)
	assert.Equal(t, 123, got)

	req = httptest.NewRequest("GET", "/", nil)
	got, err = IntFromQuery[int](req, "param")
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	req = httptest.NewRequest("GET", "/?param=abc", nil)
	_, err = IntFromQuery[int](req, "param")
	assert.Error(t, err)
}

type testRequest struct {
	Text  string `json:"text"  validate:"required"`
	Model string `json:"model" validate:"omitempty,oneof=small large both"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{"valid", `{"text": "Apple", "model": "small"}`, true},
		{"model optional", `{"text": "Apple"}`, true},
		{"missing text", `{"model": "small"}`, false},
		{"bad model", `{"text": "Apple", "model": "medium"}`, false},
		{"bad json", `{"text":`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var data testRequest
			err := DecodeJSON(httptest.NewRecorder(), req, &data)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, models.ErrBadRequest)
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(models.ErrBlankInput))
	assert.Equal(t, http.StatusBadRequest, StatusFor(fmt.Errorf("x: %w", models.ErrBadRequest)))
	assert.Equal(t, http.StatusNotFound, StatusFor(models.NewNotFoundError("model")))
	assert.Equal(t, http.StatusBadGateway, StatusFor(fmt.Errorf("x: %w", models.ErrNLPUnavailable)))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(fmt.Errorf("boom")))
}

func TestRenderError(t *testing.T) {
	res := httptest.NewRecorder()

	RenderError(res, models.ErrBlankInput)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "application/json", res.Header().Get("Content-Type"))
	var apiErr APIError
	require.NoError(t, json.NewDecoder(res.Body).Decode(&apiErr))
	assert.Equal(t, models.ErrBlankInput.Error(), apiErr.Message)
}
