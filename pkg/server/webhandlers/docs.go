package webhandlers

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/newsner/newsner/pkg/web"
)

const (
	docsPath  = "/docs"
	docsTitle = "Dataset Documentation"

	datasetSourceURL = "https://www.kaggle.com/datasets/alaakhaled/conll003-englishversion"
)

const iobExample = `John     B-PER
Smith    I-PER
works    O
at       O
Google   B-ORG
.        O`

const conllSample = `U.N.     NNP     I-NP     B-ORG
official NNP     I-NP     O
Ekeus    NNP     I-NP     B-PER
heads    VBZ     I-VP     O
for      IN      I-PP     O
Baghdad  NNP     I-NP     B-LOC
.        .       O        O`

const apiExample = `POST /api/v1/entities
{"text": "Apple unveiled a new iPhone model in September.", "model": "small"}

{
  "results": [
    {
      "model": "Small (en_core_web_sm)",
      "model_name": "en_core_web_sm",
      "entities": [
        {"text": "Apple", "label": "ORG", "category": "Organisation", "start": 0, "end": 5},
        {"text": "September", "label": "DATE", "category": "DATE", "start": 37, "end": 46}
      ]
    }
  ]
}`

var docsTemplates = []string{
	"templates/pages/docs.html",
}

type DocsData struct {
	EntityTypes *web.Table
	IOBTags     *web.Table
	Columns     *web.Table
	POSTags     *web.Table
	ChunkTags   *web.Table
	IOBExample  template.HTML
	Sample      template.HTML
	APIExample  template.HTML
	Explanation []string
	Files       []string
	SourceURL   string
}

var (
	docsOnce sync.Once
	docsData *DocsData
	docsErr  error
)

// loadDocsData builds the static page content once.
func loadDocsData() (*DocsData, error) {
	docsOnce.Do(func() {
		docsData, docsErr = buildDocsData()
	})
	return docsData, docsErr
}

func buildDocsData() (*DocsData, error) {
	iob, err := web.CodeHighlight(iobExample, "text")
	if err != nil {
		return nil, err
	}
	sample, err := web.CodeHighlight(conllSample, "text")
	if err != nil {
		return nil, err
	}
	api, err := web.CodeHighlight(apiExample, "json")
	if err != nil {
		return nil, err
	}

	return &DocsData{
		EntityTypes: web.NewTable("entity-types", "Entity Type", "Description", "Example").
			AddRow("PER", "Person", "Barack Obama").
			AddRow("ORG", "Organization", "Microsoft").
			AddRow("LOC", "Location", "Egypt").
			AddRow("MISC", "Miscellaneous (e.g., nationalities, events)", "Egyptian, Olympics"),
		IOBTags: web.NewTable("iob-tags", "Tag", "Meaning").
			AddRow("B-XXX", "Beginning of entity type XXX").
			AddRow("I-XXX", "Inside (continuation) of entity").
			AddRow("O", "Outside of any named entity"),
		Columns: web.NewTable("columns", "Column Index", "Description", "Example").
			AddRow("1", "Word/token", "London").
			AddRow("2", "POS tag (Part-of-speech)", "NNP").
			AddRow("3", "Chunk tag (phrase structure)", "I-NP").
			AddRow("4", "NER tag", "B-LOC"),
		POSTags: web.NewTable("pos-tags", "Tag", "Description").
			AddRow("NNP", "Proper noun, singular").
			AddRow("VBZ", "Verb, 3rd person singular").
			AddRow("DT", "Determiner").
			AddRow("IN", "Preposition").
			AddRow("JJ", "Adjective"),
		ChunkTags: web.NewTable("chunk-tags", "Tag", "Meaning").
			AddRow("B-NP", "Beginning of Noun Phrase").
			AddRow("I-NP", "Inside Noun Phrase").
			AddRow("B-VP", "Beginning of Verb Phrase").
			AddRow("O", "Outside any phrase"),
		IOBExample: iob,
		Sample:     sample,
		APIExample: api,
		Explanation: []string{
			"U.N. is an organization → B-ORG",
			"Ekeus is a person → B-PER",
			"Baghdad is a location → B-LOC",
			"official, heads, for, . → not part of named entities → O",
		},
		Files: []string{
			"train.txt → Training set",
			"valid.txt (or dev.txt) → Development/Validation set",
			"test.txt → Test set",
		},
		SourceURL: datasetSourceURL,
	}, nil
}

func GetDocsHandler(w http.ResponseWriter, r *http.Request) {
	data, err := loadDocsData()
	if err != nil {
		handleError(w, err, "failed to build documentation page")
		return
	}

	page := web.NewPage(
		docsTitle,
		"CoNLL-2003 dataset format",
		docsPath,
		docsTemplates,
		data,
	)

	page.Render(w, r)
}
