// internal/model/learner.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Learner は学習者の基本情報
type Learner struct {
	LearnerID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"learner_id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// GORM用のリレーション (JSONには含めない)
	Words    []Word           `gorm:"foreignKey:LearnerID" json:"-"`
	Progress *LearnerProgress `gorm:"foreignKey:LearnerID" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)

// CreateLearnerRequest は学習者登録APIのリクエストボディの構造体 (DTO)
type CreateLearnerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// LearnerResponse はクライアントに返す学習者情報の構造体
type LearnerResponse struct {
	LearnerID uuid.UUID `json:"learner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
