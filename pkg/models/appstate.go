package models

import (
	"github.com/newsner/newsner/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Recognizer Recognizer
	Config     *config.Config
}
