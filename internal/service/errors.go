package service

import (
	"errors"
	"fmt"
)

var (
	// ErrIncidentNotFound - переход запрошен для неизвестного id
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrInvalidTransition - переход из текущего статуса не разрешен таблицей
	// переходов. Состояние инцидента при этом не меняется.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError - ошибка валидации входных данных при создании инцидента
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Reason)
}

func newRequiredFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "value is required"}
}

// PersistenceError - сбой адаптера персистентности. Изменение в памяти при
// этом сохраняется: память авторитетна, система продолжает работу в
// деградированном (без durable-гарантий) режиме.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
