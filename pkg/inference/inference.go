// Package inference runs the selected pretrained pipelines over user text and
// turns their spans into visualizations and entity tables.
package inference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/newsner/newsner/internal"
	"github.com/newsner/newsner/pkg/labels"
	"github.com/newsner/newsner/pkg/models"
	"github.com/newsner/newsner/pkg/render"
)

var log = internal.GetLogger()

var _ models.Recognizer = &Recognizer{}

// Recognizer holds the small and large pipelines, resolved once at startup.
type Recognizer struct {
	small models.Pipeline
	large models.Pipeline
}

func New(small, large models.Pipeline) *Recognizer {
	return &Recognizer{small: small, large: large}
}

// Label is the name a pipeline is shown under, e.g. "Small (en_core_web_sm)".
func Label(choice models.ModelChoice, name string) string {
	size := "Large"
	if choice == models.ModelSmall {
		size = "Small"
	}
	return fmt.Sprintf("%s (%s)", size, name)
}

// ParseChoice accepts "small", "large" or "both" in any case. An empty value
// selects both pipelines.
func ParseChoice(s string) (models.ModelChoice, error) {
	switch choice := models.ModelChoice(strings.ToLower(strings.TrimSpace(s))); choice {
	case "":
		return models.ModelBoth, nil
	case models.ModelSmall, models.ModelLarge, models.ModelBoth:
		return choice, nil
	default:
		return "", fmt.Errorf("%w: unknown model choice %q", models.ErrBadRequest, s)
	}
}

// Models describes the selectable pipelines, small first.
func (r *Recognizer) Models() []models.ModelDescriptor {
	return []models.ModelDescriptor{
		descriptor(models.ModelSmall, r.small),
		descriptor(models.ModelLarge, r.large),
	}
}

func descriptor(choice models.ModelChoice, p models.Pipeline) models.ModelDescriptor {
	return models.ModelDescriptor{
		Choice:  choice,
		Label:   Label(choice, p.Name()),
		Name:    p.Name(),
		Version: p.Version(),
	}
}

// Run runs the pipeline(s) named by choice over text, small before large.
// Blank text returns ErrBlankInput without calling any pipeline.
func (r *Recognizer) Run(
	ctx context.Context,
	text string,
	choice models.ModelChoice,
) ([]models.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.ErrBlankInput
	}

	var selected []models.ModelChoice
	switch choice {
	case models.ModelSmall, models.ModelLarge:
		selected = []models.ModelChoice{choice}
	case models.ModelBoth:
		selected = []models.ModelChoice{models.ModelSmall, models.ModelLarge}
	default:
		return nil, fmt.Errorf("%w: unknown model choice %q", models.ErrBadRequest, choice)
	}

	results := make([]models.Result, 0, len(selected))
	for _, c := range selected {
		result, err := r.runOne(ctx, text, c)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (r *Recognizer) runOne(
	ctx context.Context,
	text string,
	choice models.ModelChoice,
) (models.Result, error) {
	pipeline := r.small
	if choice == models.ModelLarge {
		pipeline = r.large
	}

	start := time.Now()
	spans, err := pipeline.Entities(ctx, text)
	if err != nil {
		return models.Result{}, fmt.Errorf("pipeline %s failed: %w", pipeline.Name(), err)
	}
	elapsed := time.Since(start)

	log.Debugf("pipeline %s found %d entities in %s", pipeline.Name(), len(spans), elapsed)

	return models.Result{
		ID:            uuid.NewString(),
		ModelLabel:    Label(choice, pipeline.Name()),
		ModelName:     pipeline.Name(),
		TextBytes:     len(text),
		Entities:      Rows(spans),
		Visualization: render.Entities(text, spans),
		Height:        render.Height(text),
		Elapsed:       elapsed,
	}, nil
}

// Rows lists spans with their display categories, keeping span order.
func Rows(spans []models.Span) []models.EntityRow {
	rows := make([]models.EntityRow, len(spans))
	for i, s := range spans {
		rows[i] = models.EntityRow{
			Text:     s.Text,
			Label:    s.Label,
			Category: labels.Display(s.Label),
			Start:    s.Start,
			End:      s.End,
		}
	}
	return rows
}
