// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServer      = errors.New("internal server error") // 復旧した panic など
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("resource conflict") // 重複エラー用
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// AppError はクライアントに返してよいメッセージと、判定用の元エラーをまとめたものです。
type AppError struct {
	Code    string
	Message string
	Field   string
	Details []string // フィールドごとのメッセージ (バリデーションエラー時)
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
