package webhandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/newsner/newsner/pkg/inference"
	"github.com/newsner/newsner/pkg/models"
	"github.com/newsner/newsner/pkg/server/handlertools"
	"github.com/newsner/newsner/pkg/web"
)

const (
	inferencePath  = "/"
	inferenceTitle = "NER Inference"

	idleMessage  = "Enter some text above and press 'Run NER' to see results."
	blankMessage = "Please enter some text before running the model."
)

var inferenceTemplates = []string{
	"templates/pages/inference.html",
}

// Examples are the preset sentences offered next to "Custom input" at index 0.
var Examples = []string{
	"Custom input",
	"The U.N. official Ekeus warned of a potential conflict in Iraq if Baghdad refuses weapons inspections.",
	"Germany's representative at the U.N., Hans Schmidt, will visit New York next week.",
	"Apple unveiled a new iPhone model in September, aiming to compete with Samsung.",
	"Prime Minister Tony Blair met with Microsoft executives in London to discuss technology investments.",
	"The European Union imposed sanctions on Russia following the annexation of Crimea.",
}

type ChoiceOption struct {
	Value   models.ModelChoice
	Label   string
	Checked bool
}

type ExampleOption struct {
	Index    int
	Text     string
	Selected bool
}

type InferenceData struct {
	Choices  []ChoiceOption
	Examples []ExampleOption
	Text     string
	Alert    *Alert
	Results  []models.Result
}

func newInferenceData(
	recognizer models.Recognizer,
	choice models.ModelChoice,
	example int,
	text string,
) *InferenceData {
	data := &InferenceData{Text: text}

	for _, m := range recognizer.Models() {
		data.Choices = append(data.Choices, ChoiceOption{
			Value:   m.Choice,
			Label:   m.Label,
			Checked: m.Choice == choice,
		})
	}
	data.Choices = append(data.Choices, ChoiceOption{
		Value:   models.ModelBoth,
		Label:   "Both",
		Checked: choice == models.ModelBoth,
	})

	for i, e := range Examples {
		data.Examples = append(data.Examples, ExampleOption{
			Index:    i,
			Text:     e,
			Selected: i == example,
		})
	}

	return data
}

func exampleIndex(i int) int {
	if i < 0 || i >= len(Examples) {
		return 0
	}
	return i
}

// lookupExample returns the preset at index i, or "" for "Custom input".
func lookupExample(i int) (string, error) {
	if i < 0 || i >= len(Examples) {
		return "", models.NewNotFoundError(fmt.Sprintf("example %d", i))
	}
	if i == 0 {
		return "", nil
	}
	return Examples[i], nil
}

// GetInferenceHandler renders the inference page. ?example=N pre-fills the
// text box with preset N; an unknown preset is a 404.
func GetInferenceHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		example, err := handlertools.IntFromQuery[int](r, "example")
		if err != nil {
			handleError(w, fmt.Errorf("%w: %w", models.ErrBadRequest, err), "invalid example")
			return
		}
		text, err := lookupExample(example)
		if err != nil {
			handleError(w, err, err.Error())
			return
		}

		choice, err := inference.ParseChoice(r.URL.Query().Get("model"))
		if err != nil {
			choice = models.ModelBoth
		}

		data := newInferenceData(appState.Recognizer, choice, example, text)
		data.Alert = infoAlert(idleMessage)

		renderInferencePage(w, r, data, "")
	}
}

// PostInferenceHandler runs NER over the submitted form. htmx requests get the
// results block only; plain form posts get the whole page back.
func PostInferenceHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, handlertools.MaxRequestSize)
		if err := r.ParseForm(); err != nil {
			handleError(w, fmt.Errorf("%w: %w", models.ErrBadRequest, err), "failed to parse form")
			return
		}

		text := r.PostFormValue("text")
		example, err := strconv.Atoi(r.PostFormValue("example"))
		if err != nil {
			example = 0
		}

		choice, err := inference.ParseChoice(r.PostFormValue("model"))
		data := newInferenceData(appState.Recognizer, choice, exampleIndex(example), text)
		if err != nil {
			data.Alert = errorAlert(err.Error())
			renderInferencePage(w, r, data, "Results")
			return
		}

		results, err := appState.Recognizer.Run(r.Context(), text, choice)
		switch {
		case errors.Is(err, models.ErrBlankInput):
			data.Alert = warningAlert(blankMessage)
		case err != nil:
			log.Errorf("NER failed: %s", err)
			data.Alert = errorAlert(fmt.Sprintf("Error running NER: %s", err))
		default:
			data.Results = results
		}

		renderInferencePage(w, r, data, "Results")
	}
}

func renderInferencePage(
	w http.ResponseWriter,
	r *http.Request,
	data *InferenceData,
	partial string,
) {
	page := web.NewPage(
		inferenceTitle,
		"",
		inferencePath,
		inferenceTemplates,
		data,
	).WithPartial(partial)

	page.Render(w, r)
}
