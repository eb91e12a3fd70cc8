package models

import (
	"context"
	"html/template"
	"time"
)

// Pipeline is a pretrained NER pipeline hosted by the NLP server.
// Implementations are immutable and safe for concurrent use.
type Pipeline interface {
	Name() string
	Version() string
	// Entities returns the spans found in text, in document order.
	Entities(ctx context.Context, text string) ([]Span, error)
}

type ModelChoice string

const (
	ModelSmall ModelChoice = "small"
	ModelLarge ModelChoice = "large"
	ModelBoth  ModelChoice = "both"
)

// ModelDescriptor describes one selectable pipeline.
type ModelDescriptor struct {
	Choice  ModelChoice `json:"choice"`
	Label   string      `json:"label"`
	Name    string      `json:"name"`
	Version string      `json:"version"`
}

// EntityRow is one line of the entities table.
type EntityRow struct {
	Text     string `json:"text"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// Result is the output of one pipeline over one text.
type Result struct {
	ID            string        `json:"id"`
	ModelLabel    string        `json:"model"`
	ModelName     string        `json:"model_name"`
	// TextBytes is the input size in bytes. Span offsets are runes.
	TextBytes     int           `json:"text_bytes"`
	Entities      []EntityRow   `json:"entities"`
	Visualization template.HTML `json:"html"`
	Height        int           `json:"height"`
	Elapsed       time.Duration `json:"elapsed"`
}

// Recognizer runs the selected pipeline(s) over text.
type Recognizer interface {
	Run(ctx context.Context, text string, choice ModelChoice) ([]Result, error)
	Models() []ModelDescriptor
}
