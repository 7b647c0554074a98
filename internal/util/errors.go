package util

import "errors"

// 错误类别：控制器根据类别映射 HTTP 状态码
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
)

var (
	ErrInvalidCredentials = NewUnauthorizedError("invalid credentials")
	ErrQuizNotFound       = NewNotFoundError("quiz not found")
	ErrQuestionNotFound   = NewNotFoundError("question not found or does not belong to this quiz")
	ErrOptionNotFound     = NewNotFoundError("option not found or does not belong to this question")
	ErrExportNotFound     = NewNotFoundError("export not found")

	ErrNoCorrectOption    = NewValidationError("at least one option must be correct")
	ErrLastCorrectOption  = NewValidationError("cannot delete the last correct answer")
	ErrTrueFalseOptionCap = NewValidationError("true/false questions can have at most 2 options")
	ErrInvalidOrder       = NewValidationError("order must be a non-negative integer")
	ErrInvalidBody        = NewValidationError("invalid request body")
)

// AppError 携带面向调用方的提示信息，并通过 Unwrap 暴露其类别
type AppError struct {
	kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.kind }

func NewValidationError(message string) error {
	return &AppError{kind: ErrValidation, Message: message}
}

func NewNotFoundError(message string) error {
	return &AppError{kind: ErrNotFound, Message: message}
}

func NewUnauthorizedError(message string) error {
	return &AppError{kind: ErrUnauthorized, Message: message}
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
