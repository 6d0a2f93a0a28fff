package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("constraint violation")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AppError pairs a sentinel with the user-facing message returned in the
// response envelope. Handlers match the sentinel with errors.Is to pick a
// status code.
type AppError struct {
	Err      error
	Mensagem string
	Field    string // optional: the field that failed validation
}

func (e *AppError) Error() string {
	return e.Mensagem
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:      ErrNotFound,
		Mensagem: fmt.Sprintf("%s não encontrado", resource),
	}
}

func ValidationFailed(field, mensagem string) *AppError {
	return &AppError{
		Err:      ErrValidation,
		Mensagem: mensagem,
		Field:    field,
	}
}

func Conflict(mensagem string) *AppError {
	return &AppError{
		Err:      ErrConflict,
		Mensagem: mensagem,
	}
}

func InvalidCredentials() *AppError {
	return &AppError{
		Err:      ErrInvalidCredentials,
		Mensagem: "Credenciais inválidas",
	}
}

// Mensagem extracts the user-facing message from any error, falling back
// to the raw error text for unwrapped store errors.
func Mensagem(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Mensagem
	}
	return err.Error()
}
