// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionState は練習セッションの状態。セッションは in_progress で作成される。
type SessionState string

const (
	SessionInProgress SessionState = "in_progress"
	SessionComplete   SessionState = "complete" // 終端状態
)

// SessionScore はセッション中の得点
type SessionScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// PracticeSession はメモリ上にのみ存在する練習セッション (永続化しない)
type PracticeSession struct {
	ID             uuid.UUID
	LearnerID      uuid.UUID
	State          SessionState
	Queue          []uuid.UUID // 単語IDの値リスト。間違えた単語は末尾に再追加される
	Index          int
	Score          SessionScore
	Prompts        map[uuid.UUID]string
	Targets        map[uuid.UUID]string
	StartedAt      time.Time
	LastActivityAt time.Time
}

// Current は現在の出題単語IDを返します
func (s *PracticeSession) Current() (uuid.UUID, bool) {
	if s.Index < 0 || s.Index >= len(s.Queue) {
		return uuid.Nil, false
	}
	return s.Queue[s.Index], true
}

// Remaining は現在のスロットを含む残りの出題数を返します
func (s *PracticeSession) Remaining() int {
	if s.Index >= len(s.Queue) {
		return 0
	}
	return len(s.Queue) - s.Index
}

// Question は出題内容のDTO
type Question struct {
	WordID uuid.UUID `json:"word_id"`
	Prompt string    `json:"prompt"`
}

// SessionResponse はセッション状態のレスポンスDTO
type SessionResponse struct {
	SessionID uuid.UUID    `json:"session_id"`
	State     SessionState `json:"state"`
	Score     SessionScore `json:"score"`
	Remaining int          `json:"remaining"`
	Question  *Question    `json:"question,omitempty"`
}

// SubmitAnswerRequest は回答送信リクエストのDTO
type SubmitAnswerRequest struct {
	WordID uuid.UUID `json:"word_id" validate:"required"`
	Answer string    `json:"answer"`
}

// AnswerResult は回答の判定結果
type AnswerResult struct {
	Correct    bool         `json:"correct"`
	Expected   string       `json:"expected"`
	ScoreSoFar SessionScore `json:"score_so_far"`
	Requeued   bool         `json:"requeued"`
	State      SessionState `json:"state"`
	Next       *Question    `json:"next,omitempty"`
}

// SessionSummary はセッション完了時の結果
type SessionSummary struct {
	SessionID  uuid.UUID    `json:"session_id"`
	FinalScore SessionScore `json:"final_score"`
	XPAwarded  int          `json:"xp_awarded"`
	LeveledUp  bool         `json:"leveled_up"`
	NewLevel   int          `json:"new_level"`
	Streak     int          `json:"streak"`
	Unlocked   []string     `json:"unlocked"`
}
