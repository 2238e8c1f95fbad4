// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
)

// 学習エンジンのエラー
var (
	ErrInvalidRating       = errors.New("invalid rating")
	ErrInvalidXPAmount     = errors.New("invalid xp amount")
	ErrWordNotFound        = fmt.Errorf("word not found: %w", ErrNotFound)
	ErrLearnerNotFound     = fmt.Errorf("learner not found: %w", ErrNotFound)
	ErrSessionNotFound     = fmt.Errorf("session not found: %w", ErrNotFound)
	ErrNoWordsDue          = errors.New("no words due")
	ErrInvalidSessionState = errors.New("invalid session state")
	ErrAlreadyClaimedToday = errors.New("daily bonus already claimed today")
	ErrStoreUnavailable    = errors.New("store unavailable") // 永続化の失敗をラップする
)

// AppError はクライアントに返すエラー情報と、原因となったエラーを保持します
type AppError struct {
	Code    string
	Message string
	Field   string
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
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail はレスポンス用のエラー詳細を返します
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{
		Code:    e.Code,
		Message: e.Message,
		Field:   e.Field,
	}
}

// ErrorDetail はAPIエラーレスポンスの中身
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
