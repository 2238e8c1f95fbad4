// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// 実績ID
const (
	AchievementStreakMaster      = "streak_master"
	AchievementDailyPractitioner = "daily_practitioner"
	AchievementLevelPrefix       = "level_" // level_2, level_3 ...
)

// LessonProgress はレッスンごとの進捗
type LessonProgress struct {
	Completed bool `json:"completed"`
	Attempts  int  `json:"attempts"`
	XPEarned  int  `json:"xp_earned"`
	Accuracy  int  `json:"accuracy"` // 0-100
}

// LearnerProgress は学習者ごとのゲーミフィケーション状態 (1学習者につき1レコード)
type LearnerProgress struct {
	LearnerID        uuid.UUID                                     `gorm:"type:uuid;primaryKey" json:"learner_id"`
	XP               int                                           `gorm:"not null;default:0" json:"xp"`
	Level            int                                           `gorm:"not null;default:1" json:"level"`
	Streak           int                                           `gorm:"not null;default:0" json:"streak"`
	LongestStreak    int                                           `gorm:"not null;default:0" json:"longest_streak"`
	LastPracticeDate *datatypes.Date                               `json:"last_practice_date"`
	Achievements     datatypes.JSONSlice[string]                   `json:"achievements"`
	LessonProgress   datatypes.JSONType[map[string]LessonProgress] `json:"lesson_progress"`
	CreatedAt        time.Time                                     `json:"created_at"`
	UpdatedAt        time.Time                                     `json:"updated_at"`
}

func (LearnerProgress) TableName() string {
	return "learner_progress"
}

// NewLearnerProgress は初回利用時の進捗レコードを作成します
func NewLearnerProgress(learnerID uuid.UUID) *LearnerProgress {
	return &LearnerProgress{
		LearnerID:      learnerID,
		Level:          1,
		Achievements:   datatypes.JSONSlice[string]{},
		LessonProgress: datatypes.NewJSONType(map[string]LessonProgress{}),
	}
}

// HasAchievement は実績が解除済みかどうかを返します
func (p *LearnerProgress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Unlock は実績を追加し、新規に追加された場合に true を返します (追記のみ)
func (p *LearnerProgress) Unlock(id string) bool {
	if p.HasAchievement(id) {
		return false
	}
	p.Achievements = append(p.Achievements, id)
	return true
}

// Lessons はレッスン進捗のコピーを返します
func (p *LearnerProgress) Lessons() map[string]LessonProgress {
	src := p.LessonProgress.Data()
	dst := make(map[string]LessonProgress, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ProgressResponse は進捗取得APIのレスポンスDTO
type ProgressResponse struct {
	LearnerID        uuid.UUID                 `json:"learner_id"`
	XP               int                       `json:"xp"`
	Level            int                       `json:"level"`
	XPIntoLevel      int                       `json:"xp_into_level"`
	XPToNextLevel    int                       `json:"xp_to_next_level"`
	Streak           int                       `json:"streak"`
	LongestStreak    int                       `json:"longest_streak"`
	LastPracticeDate *string                   `json:"last_practice_date"`
	Achievements     []string                  `json:"achievements"`
	LessonProgress   map[string]LessonProgress `json:"lesson_progress"`
}

// XPAward は経験値付与の結果
type XPAward struct {
	Amount        int      `json:"amount"`
	NewXP         int      `json:"new_xp"`
	PreviousLevel int      `json:"previous_level"`
	NewLevel      int      `json:"new_level"`
	LeveledUp     bool     `json:"leveled_up"`
	Unlocked      []string `json:"unlocked"`
}

// StreakResult はストリーク更新の結果
type StreakResult struct {
	Streak                 int      `json:"streak"`
	LongestStreak          int      `json:"longest_streak"`
	Changed                bool     `json:"changed"`
	LongestStreakIncreased bool     `json:"longest_streak_increased"`
	Unlocked               []string `json:"unlocked"`
}

// DailyBonusResponse はデイリーボーナス受け取りのレスポンスDTO
type DailyBonusResponse struct {
	Granted   bool     `json:"granted"`
	Amount    int      `json:"amount"`
	Streak    int      `json:"streak"`
	NewXP     int      `json:"new_xp"`
	NewLevel  int      `json:"new_level"`
	LeveledUp bool     `json:"leveled_up"`
	Unlocked  []string `json:"unlocked"`
}

// LessonResultRequest はレッスン結果送信リクエストのDTO
type LessonResultRequest struct {
	Correct *int `json:"correct" validate:"required,gte=0"`
	Total   int  `json:"total" validate:"required,gt=0"`
	XP      int  `json:"xp" validate:"gte=0,lte=10000"` // 1レッスンで付与できる上限
}

// LessonResultResponse はレッスン結果送信のレスポンスDTO
type LessonResultResponse struct {
	LessonID string         `json:"lesson_id"`
	Lesson   LessonProgress `json:"lesson"`
	XPAward  *XPAward       `json:"xp_award,omitempty"` // xp が 0 のときは nil
}
