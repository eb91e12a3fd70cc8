package webhandlers

import (
	"errors"
	"net/http"

	"github.com/newsner/newsner/internal"
	"github.com/newsner/newsner/pkg/models"
)

var log = internal.GetLogger()

func handleError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, message, http.StatusNotFound)
	case errors.Is(err, models.ErrBadRequest):
		http.Error(w, message, http.StatusBadRequest)
	default:
		http.Error(w, message, http.StatusInternalServerError)
	}
	log.Errorf("%s: %s", message, err)
}

// Alert is a message box shown above results.
type Alert struct {
	Kind    string
	Message string
}

func infoAlert(message string) *Alert {
	return &Alert{Kind: "info", Message: message}
}

func warningAlert(message string) *Alert {
	return &Alert{Kind: "warning", Message: message}
}

func errorAlert(message string) *Alert {
	return &Alert{Kind: "error", Message: message}
}
