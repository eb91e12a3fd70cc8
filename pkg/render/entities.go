// Package render produces displaCy-style "ent" markup for entity spans.
package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/newsner/newsner/internal"
	"github.com/newsner/newsner/pkg/labels"
	"github.com/newsner/newsner/pkg/models"
)

var log = internal.GetLogger()

const DefaultColor = "#ddd"

// Colors is the displaCy default palette, extended with the CoNLL-style PER.
var Colors = map[string]string{
	"ORG":         "#7aecec",
	"PRODUCT":     "#bfeeb7",
	"GPE":         "#feca74",
	"LOC":         "#ff9561",
	"PERSON":      "#aa9cfc",
	"PER":         "#aa9cfc",
	"NORP":        "#c887fb",
	"FAC":         "#9cc9cc",
	"EVENT":       "#ffeb80",
	"LAW":         "#ff8197",
	"LANGUAGE":    "#ff8197",
	"WORK_OF_ART": "#f0d0ff",
	"DATE":        "#bfe1d9",
	"TIME":        "#bfe1d9",
	"MONEY":       "#e4e7d2",
	"QUANTITY":    "#e4e7d2",
	"ORDINAL":     "#e4e7d2",
	"CARDINAL":    "#e4e7d2",
	"PERCENT":     "#e4e7d2",
}

const entTemplate = `<div class="entities" style="line-height: 2.5; direction: ltr">` +
	`{{- range . -}}` +
	`{{- if .Label -}}` +
	`<mark class="entity" data-label="{{ .Label }}" style="background: {{ .Color }}; padding: 0.45em 0.6em; margin: 0 0.25em; line-height: 1; border-radius: 0.35em;">` +
	`{{- template "lines" .Lines -}}` +
	`<span class="entity-label" style="font-size: 0.8em; font-weight: bold; line-height: 1; border-radius: 0.35em; vertical-align: middle; margin-left: 0.5rem">{{ .Label }}</span>` +
	`</mark>` +
	`{{- else -}}` +
	`{{- template "lines" .Lines -}}` +
	`{{- end -}}` +
	`{{- end -}}` +
	`</div>` +
	`{{- define "lines" -}}{{- range $i, $l := . -}}{{- if $i -}}<br>{{- end -}}{{- $l -}}{{- end -}}{{- end -}}`

var entTmpl = template.Must(template.New("ent").Parse(entTemplate))

type segment struct {
	Lines []string
	Label string
	Color template.CSS
}

// Entities renders text with spans highlighted. Labels are shown in their
// canonical form so GPE appears as LOC, matching the entities table. Spans
// that overlap an earlier span or fall outside text are skipped.
func Entities(text string, spans []models.Span) template.HTML {
	runes := []rune(text)
	segments := make([]segment, 0, 2*len(spans)+1)

	cursor := 0
	for _, s := range spans {
		if s.Start < cursor || s.End > len(runes) || s.Start >= s.End {
			log.Debugf("skipping span %q [%d:%d]", s.Text, s.Start, s.End)
			continue
		}
		if s.Start > cursor {
			segments = append(segments, segment{Lines: lines(runes[cursor:s.Start])})
		}
		segments = append(segments, segment{
			Lines: lines(runes[s.Start:s.End]),
			Label: labels.Canonical(s.Label),
			Color: template.CSS(color(s.Label)),
		})
		cursor = s.End
	}
	if cursor < len(runes) {
		segments = append(segments, segment{Lines: lines(runes[cursor:])})
	}

	var buf bytes.Buffer
	if err := entTmpl.Execute(&buf, segments); err != nil {
		// text and labels are plain strings, so this only fails on a broken template
		log.Errorf("failed to render entities: %s", err)
		return template.HTML(template.HTMLEscapeString(text)) //nolint:gosec
	}

	return template.HTML(buf.String()) //nolint:gosec
}

func lines(r []rune) []string {
	return strings.Split(string(r), "\n")
}

func color(label string) string {
	if c, ok := Colors[label]; ok {
		return c
	}
	return DefaultColor
}

// Height is the pixel height of the frame holding a visualization of text.
func Height(text string) int {
	return 150 + 30*(strings.Count(text, "\n")+1)
}
