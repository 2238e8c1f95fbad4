// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word は学習者の単語と、その復習スケジュールを表します
type Word struct {
	WordID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	LearnerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Term           string         `gorm:"not null" json:"term"`       // 回答として入力する値
	Definition     string         `gorm:"not null" json:"definition"` // 出題時に表示する値
	ReviewCount    int            `gorm:"not null;default:0" json:"review_count"`
	CorrectCount   int            `gorm:"not null;default:0" json:"correct_count"`
	NextReviewAt   *time.Time     `gorm:"index" json:"next_review_at"` // nil は「今すぐ復習」
	LastReviewedAt *time.Time     `json:"last_reviewed_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// ReviewWordResponse は復習単語リストのレスポンスDTO
type ReviewWordResponse struct {
	WordID       uuid.UUID  `json:"word_id"`
	Term         string     `json:"term"`
	Definition   string     `json:"definition"` // 正解表示用に含める
	ReviewCount  int        `json:"review_count"`
	CorrectCount int        `json:"correct_count"`
	NextReviewAt *time.Time `json:"next_review_at"`
}

// SubmitReviewRequest は復習結果送信リクエストのDTO
type SubmitReviewRequest struct {
	Rating string `json:"rating" validate:"required,oneof=easy medium hard"`
}

// ReviewResultResponse は復習結果送信後のレスポンスDTO
type ReviewResultResponse struct {
	WordID         uuid.UUID  `json:"word_id"`
	ReviewCount    int        `json:"review_count"`
	CorrectCount   int        `json:"correct_count"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	NextReviewAt   *time.Time `json:"next_review_at"`
}

// DueCountResponse は復習対象数のレスポンスDTO
type DueCountResponse struct {
	Count int64 `json:"count"`
}
