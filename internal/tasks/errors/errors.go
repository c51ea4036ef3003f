package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrEmptyTitle = NewValidationError("El título no puede estar vacío")
var ErrEmptyDescription = NewValidationError("La descripción no puede estar vacía")

// ReferenceError signals a mutation pointing at a category that does not
// exist. Distinct from NotFoundError so the boundary can tell a bad payload
// apart from a bad path id.
type ReferenceError struct {
	Msg string
}

func (e *ReferenceError) Error() string {
	return e.Msg
}

func NewCategoryReferenceError(categoryID int64) error {
	return &ReferenceError{Msg: fmt.Sprintf("La categoría con ID %d no existe", categoryID)}
}

func IsReferenceError(err error) bool {
	var referenceError *ReferenceError
	ok := errors.As(err, &referenceError)
	return ok
}

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewTaskNotFoundError(taskID int64) error {
	return &NotFoundError{Msg: fmt.Sprintf("La tarea con ID %d no existe", taskID)}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

// PersistenceError wraps a store-level failure with a user-facing message.
type PersistenceError struct {
	Msg string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(msg string, err error) error {
	return &PersistenceError{Msg: msg, Err: err}
}

func IsPersistenceError(err error) bool {
	var persistenceError *PersistenceError
	ok := errors.As(err, &persistenceError)
	return ok
}
