package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsner/newsner/pkg/models"
)

type mark struct {
	Text  string
	Label string
	Style string
}

func parseMarks(t *testing.T, html string) (*goquery.Document, []mark) {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	var marks []mark
	doc.Find("div.entities mark.entity").Each(func(_ int, s *goquery.Selection) {
		label := s.Find(".entity-label").Text()
		style, _ := s.Attr("style")
		marks = append(marks, mark{
			Text:  strings.TrimSuffix(s.Text(), label),
			Label: label,
			Style: style,
		})
	})
	return doc, marks
}

func TestEntities(t *testing.T) {
	text := "Apple unveiled a new iPhone model in September, aiming to compete with Samsung."
	spans := []models.Span{
		{Start: 0, End: 5, Text: "Apple", Label: "ORG"},
		{Start: 37, End: 46, Text: "September", Label: "DATE"},
		{Start: 71, End: 78, Text: "Samsung", Label: "ORG"},
	}

	doc, marks := parseMarks(t, string(Entities(text, spans)))

	require.Len(t, marks, 3)
	assert.Equal(t, mark{Text: "Apple", Label: "ORG", Style: marks[0].Style}, marks[0])
	assert.Equal(t, "September", marks[1].Text)
	assert.Equal(t, "DATE", marks[1].Label)
	assert.Equal(t, "Samsung", marks[2].Text)
	assert.Contains(t, marks[0].Style, Colors["ORG"])
	assert.Contains(t, marks[1].Style, Colors["DATE"])

	// plain text survives around the marks
	full := doc.Find("div.entities").Text()
	full = strings.NewReplacer("ORG", "", "DATE", "").Replace(full)
	assert.Equal(t, text, full)
}

func TestEntitiesReplacesGPE(t *testing.T) {
	text := "Hans Schmidt will visit New York next week."
	spans := []models.Span{
		{Start: 0, End: 12, Text: "Hans Schmidt", Label: "PERSON"},
		{Start: 24, End: 32, Text: "New York", Label: "GPE"},
	}

	html := string(Entities(text, spans))
	_, marks := parseMarks(t, html)

	require.Len(t, marks, 2)
	assert.Equal(t, "LOC", marks[1].Label)
	assert.NotContains(t, html, ">GPE<")
	assert.Contains(t, html, ">LOC<")
	// colour still follows the pipeline's own label
	assert.Contains(t, marks[1].Style, Colors["GPE"])
}

func TestEntitiesEscapesAndBreaksLines(t *testing.T) {
	text := "<b>Bold</b>\nMicrosoft & co"
	spans := []models.Span{{Start: 12, End: 21, Text: "Microsoft", Label: "ORG"}}

	html := string(Entities(text, spans))

	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;b&gt;Bold&lt;/b&gt;<br>")
	assert.Contains(t, html, "&amp; co")
	_, marks := parseMarks(t, html)
	require.Len(t, marks, 1)
	assert.Equal(t, "Microsoft", marks[0].Text)
}

func TestEntitiesUsesCharacterOffsets(t *testing.T) {
	text := "Café owner Zoë met Łukasz in Kraków."
	spans := []models.Span{
		{Start: 11, End: 14, Text: "Zoë", Label: "PERSON"},
		{Start: 29, End: 35, Text: "Kraków", Label: "GPE"},
	}

	_, marks := parseMarks(t, string(Entities(text, spans)))

	require.Len(t, marks, 2)
	assert.Equal(t, "Zoë", marks[0].Text)
	assert.Equal(t, "Kraków", marks[1].Text)
}

func TestEntitiesSkipsInvalidSpans(t *testing.T) {
	text := "The European Union imposed sanctions on Russia."
	spans := []models.Span{
		{Start: 0, End: 18, Text: "The European Union", Label: "ORG"},
		{Start: 4, End: 12, Text: "European", Label: "NORP"}, // overlaps
		{Start: 40, End: 46, Text: "Russia", Label: "GPE"},
		{Start: 45, End: 99, Text: "out of range", Label: "MISC"},
		{Start: 10, End: 10, Text: "", Label: "MISC"},
	}

	_, marks := parseMarks(t, string(Entities(text, spans)))

	require.Len(t, marks, 2)
	assert.Equal(t, "The European Union", marks[0].Text)
	assert.Equal(t, "Russia", marks[1].Text)
}

func TestEntitiesNoSpans(t *testing.T) {
	doc, marks := parseMarks(t, string(Entities("nothing here", nil)))

	assert.Empty(t, marks)
	assert.Equal(t, "nothing here", doc.Find("div.entities").Text())
}

func TestUnknownLabelColor(t *testing.T) {
	_, marks := parseMarks(
		t,
		string(Entities("Olympics", []models.Span{{Start: 0, End: 8, Label: "MISC"}})),
	)

	require.Len(t, marks, 1)
	assert.Contains(t, marks[0].Style, DefaultColor)
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 180, Height("one line"))
	assert.Equal(t, 240, Height("one\ntwo\nthree"))
}
