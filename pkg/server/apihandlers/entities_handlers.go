package apihandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/newsner/newsner/internal"
	"github.com/newsner/newsner/pkg/inference"
	"github.com/newsner/newsner/pkg/models"
	"github.com/newsner/newsner/pkg/server/handlertools"
)

var log = internal.GetLogger()

// EntitiesRequest is the body of POST /api/v1/entities. Blank text is
// rejected by the recognizer so every blank input gets the same message.
type EntitiesRequest struct {
	Text  string `json:"text"`
	Model string `json:"model" validate:"omitempty,oneof=small large both"`
}

type EntitiesResponse struct {
	Results []models.Result `json:"results"`
}

type ModelsResponse struct {
	Models []models.ModelDescriptor `json:"models"`
}

// PostEntitiesHandler godoc
//
//	@Summary		Extract named entities
//	@Description	Runs the selected pipeline(s) over text. model defaults to "both".
//	@Tags			entities
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EntitiesRequest					true	"Text and model choice"
//	@Success		200		{object}	EntitiesResponse
//	@Failure		400		{object}	handlertools.APIError	"Bad Request"
//	@Failure		502		{object}	handlertools.APIError	"NLP server error"
//	@Router			/api/v1/entities [post]
func PostEntitiesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request EntitiesRequest
		if err := handlertools.DecodeJSON(w, r, &request); err != nil {
			handlertools.RenderError(w, err)
			return
		}

		choice, err := inference.ParseChoice(request.Model)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}

		log.Debugf(
			"PostEntitiesHandler %s: %d bytes, model %s",
			middleware.GetReqID(r.Context()),
			len(request.Text),
			choice,
		)

		results, err := appState.Recognizer.Run(r.Context(), request.Text, choice)
		if err != nil {
			handlertools.RenderError(w, err)
			return
		}

		if err := handlertools.EncodeJSON(w, EntitiesResponse{Results: results}); err != nil {
			handlertools.RenderError(w, err)
			return
		}
	}
}

// GetModelsHandler godoc
//
//	@Summary		List pipelines
//	@Description	Lists the pipelines resolved on the NLP server at startup.
//	@Tags			entities
//	@Produce		json
//	@Success		200	{object}	ModelsResponse
//	@Router			/api/v1/models [get]
func GetModelsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handlertools.EncodeJSON(w, ModelsResponse{Models: appState.Recognizer.Models()}); err != nil {
			handlertools.RenderError(w, err)
			return
		}
	}
}
