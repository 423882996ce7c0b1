package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField — обязательное поле отсутствует или не допускает пустое значение.
	ErrMissingField = errors.New("field is required")
	// ErrInvalidField — поле передано, но не прошло проверку типа.
	ErrInvalidField = errors.New("field value is invalid")
	// ErrNoCouple — ни одна из обязательных пар полей online_score не заполнена.
	ErrNoCouple = errors.New("no couple")
	// ErrStoreUnavailable — хранилище недоступно, ответа по запросу нет.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldError ошибка валидации одного поля схемы.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Message возвращает текст ошибки в формате ответа API.
func (e *FieldError) Message() string {
	return fmt.Sprintf("Incorrect %s value", e.Field)
}
