package service

import (
	"context"
	"strings"
	"time"

	"go_4_vocab_progress/internal/config"
	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
)

// RewardPolicy はセッション完了時に付与する XP を決めます。0以下なら付与しない。
type RewardPolicy func(score model.SessionScore) int

// NewRewardPolicy は「正解数 × xpPerCorrect、全問正解ならさらに perfectBonus」を返すポリシーです
func NewRewardPolicy(xpPerCorrect, perfectBonus int) RewardPolicy {
	return func(score model.SessionScore) int {
		xp := score.Correct * xpPerCorrect
		if score.Total > 0 && score.Correct == score.Total {
			xp += perfectBonus
		}
		return xp
	}
}

// SessionService は練習セッション (出題・判定・再出題・完了) を扱います
type SessionService interface {
	StartSession(ctx context.Context, learnerID uuid.UUID) (*model.SessionResponse, error)
	GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.SessionResponse, error)
	SubmitAnswer(ctx context.Context, learnerID, sessionID, wordID uuid.UUID, answer string) (*model.AnswerResult, error)
	CompleteSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.SessionSummary, error)
	AbandonSession(ctx context.Context, learnerID, sessionID uuid.UUID) error
	// ExpireIdle は一定時間操作のないセッションを破棄し、破棄した件数を返します
	ExpireIdle(ctx context.Context) int
}

type sessionService struct {
	reviews     ReviewService
	progress    ProgressService
	store       *SessionStore
	reward      RewardPolicy
	idleTimeout time.Duration
	now         func() time.Time
}

// NewSessionService は reward が nil の場合、完了時に XP を付与しません
func NewSessionService(reviews ReviewService, progress ProgressService, store *SessionStore, cfg *config.Config, reward RewardPolicy) SessionService {
	return &sessionService{
		reviews:     reviews,
		progress:    progress,
		store:       store,
		reward:      reward,
		idleTimeout: cfg.Session.IdleTimeout,
		now:         time.Now,
	}
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sessionNotFound() *model.AppError {
	return model.NewAppError("SESSION_NOT_FOUND", "指定されたセッションが見つかりません。", "session_id", model.ErrSessionNotFound)
}

func invalidSessionState(message, field string) *model.AppError {
	return model.NewAppError("INVALID_SESSION_STATE", message, field, model.ErrInvalidSessionState)
}

// acquire はセッションのロックを取って返します。呼び出し側で e.mu.Unlock() すること。
func (s *sessionService) acquire(learnerID, sessionID uuid.UUID) (*sessionEntry, error) {
	e, ok := s.store.get(sessionID)
	if !ok {
		return nil, sessionNotFound()
	}
	e.mu.Lock()
	if e.removed || e.session.LearnerID != learnerID {
		e.mu.Unlock()
		return nil, sessionNotFound()
	}
	return e, nil
}

func currentQuestion(sess *model.PracticeSession) *model.Question {
	if sess.State != model.SessionInProgress {
		return nil
	}
	id, ok := sess.Current()
	if !ok {
		return nil
	}
	return &model.Question{WordID: id, Prompt: sess.Prompts[id]}
}

func toSessionResponse(sess *model.PracticeSession) *model.SessionResponse {
	return &model.SessionResponse{
		SessionID: sess.ID,
		State:     sess.State,
		Score:     sess.Score,
		Remaining: sess.Remaining(),
		Question:  currentQuestion(sess),
	}
}

func (s *sessionService) StartSession(ctx context.Context, learnerID uuid.UUID) (*model.SessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	// セッションには期限が来ている単語をすべて入れる
	words, err := s.reviews.GetAllDueWords(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		logger.Info("No words due, session not started")
		return nil, model.NewAppError("NO_WORDS_DUE", "復習対象の単語がありません。", "", model.ErrNoWordsDue)
	}

	now := s.now()
	sess := &model.PracticeSession{
		ID:             uuid.New(),
		LearnerID:      learnerID,
		State:          model.SessionInProgress,
		Queue:          make([]uuid.UUID, 0, len(words)),
		Prompts:        make(map[uuid.UUID]string, len(words)),
		Targets:        make(map[uuid.UUID]string, len(words)),
		StartedAt:      now,
		LastActivityAt: now,
	}
	for _, w := range words {
		sess.Queue = append(sess.Queue, w.WordID)
		sess.Prompts[w.WordID] = w.Definition
		sess.Targets[w.WordID] = w.Term
	}
	s.store.put(sess)

	logger.Info("Practice session started", "session_id", sess.ID, "words", len(sess.Queue))
	return toSessionResponse(sess), nil
}

func (s *sessionService) GetSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.SessionResponse, error) {
	e, err := s.acquire(learnerID, sessionID)
	if err != nil {
		middleware.GetLogger(ctx).Warn("Session not found", "learner_id", learnerID, "session_id", sessionID)
		return nil, err
	}
	defer e.mu.Unlock()
	return toSessionResponse(e.session), nil
}

func (s *sessionService) SubmitAnswer(ctx context.Context, learnerID, sessionID, wordID uuid.UUID, answer string) (*model.AnswerResult, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "session_id", sessionID, "word_id", wordID)

	e, err := s.acquire(learnerID, sessionID)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()
	sess := e.session

	if sess.State != model.SessionInProgress {
		logger.Warn("Answer submitted to inactive session", "state", sess.State)
		return nil, invalidSessionState("このセッションは回答を受け付けていません。", "")
	}
	current, ok := sess.Current()
	if !ok {
		return nil, invalidSessionState("出題中の問題がありません。", "")
	}
	if wordID != current {
		logger.Warn("Answer submitted for a word that is not the current question", "current_word_id", current)
		return nil, invalidSessionState("現在出題中の単語ではありません。", "word_id")
	}

	target := sess.Targets[current]
	correct := normalizeAnswer(answer) == normalizeAnswer(target)
	rating := model.RatingHard
	if correct {
		rating = model.RatingEasy
	}

	// 保存に失敗した場合はセッションを変更せずに返す (同じ回答で再送できる)
	if _, err := s.reviews.RecordReview(ctx, learnerID, current, rating); err != nil {
		logger.Error("Failed to record review for answer", "error", err)
		return nil, err
	}

	sess.Score.Total++
	requeued := false
	if correct {
		sess.Score.Correct++
	} else {
		sess.Queue = append(sess.Queue, current)
		requeued = true
	}

	sess.Index++
	if sess.Index >= len(sess.Queue) {
		sess.State = model.SessionComplete
	}
	sess.LastActivityAt = s.now()

	logger.Debug("Answer evaluated", "correct", correct, "requeued", requeued, "score", sess.Score)
	return &model.AnswerResult{
		Correct:    correct,
		Expected:   target,
		ScoreSoFar: sess.Score,
		Requeued:   requeued,
		State:      sess.State,
		Next:       currentQuestion(sess),
	}, nil
}

func (s *sessionService) CompleteSession(ctx context.Context, learnerID, sessionID uuid.UUID) (*model.SessionSummary, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "session_id", sessionID)

	e, err := s.acquire(learnerID, sessionID)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()
	sess := e.session

	if sess.State != model.SessionInProgress && sess.State != model.SessionComplete {
		return nil, invalidSessionState("このセッションは完了できません。", "")
	}

	summary := &model.SessionSummary{
		SessionID:  sess.ID,
		FinalScore: sess.Score,
		Unlocked:   []string{},
	}

	// 1問も回答していない場合は練習したとみなさない
	touched := false
	if sess.Score.Total > 0 {
		streak, err := s.progress.TouchStreak(ctx, learnerID)
		if err != nil {
			logger.Error("Failed to update streak on session completion", "error", err)
			return nil, err
		}
		touched = true
		summary.Streak = streak.Streak
		summary.Unlocked = append(summary.Unlocked, streak.Unlocked...)
	}

	awarded := false
	if s.reward != nil {
		if xp := s.reward(sess.Score); xp > 0 {
			award, err := s.progress.AwardXP(ctx, learnerID, xp, "session")
			if err != nil {
				logger.Error("Failed to award session XP", "error", err)
				return nil, err
			}
			awarded = true
			summary.XPAwarded = award.Amount
			summary.LeveledUp = award.LeveledUp
			summary.NewLevel = award.NewLevel
			summary.Unlocked = append(summary.Unlocked, award.Unlocked...)
		}
	}

	if !touched || !awarded {
		p, err := s.progress.GetProgress(ctx, learnerID)
		if err != nil {
			return nil, err
		}
		if !touched {
			summary.Streak = p.Streak
		}
		if !awarded {
			summary.NewLevel = p.Level
		}
	}

	sess.State = model.SessionComplete
	s.store.remove(sess.ID, e)

	logger.Info("Practice session completed",
		"correct", summary.FinalScore.Correct,
		"total", summary.FinalScore.Total,
		"xp_awarded", summary.XPAwarded,
		"leveled_up", summary.LeveledUp,
	)
	return summary, nil
}

func (s *sessionService) AbandonSession(ctx context.Context, learnerID, sessionID uuid.UUID) error {
	e, err := s.acquire(learnerID, sessionID)
	if err != nil {
		return err
	}
	defer e.mu.Unlock()

	s.store.remove(sessionID, e)
	middleware.GetLogger(ctx).Info("Practice session abandoned", "learner_id", learnerID, "session_id", sessionID)
	return nil
}

func (s *sessionService) ExpireIdle(ctx context.Context) int {
	cutoff := s.now().Add(-s.idleTimeout)
	expired := s.store.expireIdle(cutoff)
	if len(expired) > 0 {
		middleware.GetLogger(ctx).Info("Expired idle practice sessions", "count", len(expired), "remaining", s.store.Len())
	}
	return len(expired)
}
