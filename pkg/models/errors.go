package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrBadRequest     = errors.New("bad request")
	ErrBlankInput     = errors.New("please enter some text before running the model")
	ErrModelsNotFound = errors.New("required NLP models not found")
	ErrNLPUnavailable = errors.New("NLP server unavailable")
)

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ModelsNotFoundError lists the pipelines the NLP server could not provide.
type ModelsNotFoundError struct {
	Names []string
}

func (e *ModelsNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrModelsNotFound, strings.Join(e.Names, ", "))
}

func (e *ModelsNotFoundError) Unwrap() error {
	return ErrModelsNotFound
}

func NewModelsNotFoundError(names ...string) error {
	return &ModelsNotFoundError{Names: names}
}
