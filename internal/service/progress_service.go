package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go_4_vocab_progress/internal/config"
	"go_4_vocab_progress/internal/gamification"
	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgressService は学習者の XP・レベル・ストリーク・実績を扱います
type ProgressService interface {
	GetProgress(ctx context.Context, learnerID uuid.UUID) (*model.ProgressResponse, error)
	AwardXP(ctx context.Context, learnerID uuid.UUID, amount int, source string) (*model.XPAward, error)
	// TouchStreak は今日の練習をストリークに反映します (同じ日に何度呼んでも1回分)
	TouchStreak(ctx context.Context, learnerID uuid.UUID) (*model.StreakResult, error)
	ClaimDailyBonus(ctx context.Context, learnerID uuid.UUID) (*model.DailyBonusResponse, error)
	RecordLessonResult(ctx context.Context, learnerID uuid.UUID, lessonID string, correct, total, xp int) (*model.LessonResultResponse, error)
	ResetProgress(ctx context.Context, learnerID uuid.UUID) (*model.ProgressResponse, error)
}

type progressService struct {
	db       *gorm.DB
	progRepo repository.ProgressRepository
	loc      *time.Location
	now      func() time.Time
}

func NewProgressService(db *gorm.DB, progRepo repository.ProgressRepository, cfg *config.Config) ProgressService {
	return &progressService{
		db:       db,
		progRepo: progRepo,
		loc:      cfg.Location(),
		now:      time.Now,
	}
}

func (s *progressService) today() time.Time {
	return gamification.Today(s.now(), s.loc)
}

// loadForUpdate は行ロック付きで進捗を取得し、無ければ作成します
func (s *progressService) loadForUpdate(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) (*model.LearnerProgress, error) {
	p, err := s.progRepo.FindByLearnerForUpdate(ctx, tx, learnerID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	p = model.NewLearnerProgress(learnerID)
	// セーブポイント内で作成し、同時作成で負けた場合は相手のレコードを読み直す
	err = tx.Transaction(func(sp *gorm.DB) error {
		return s.progRepo.Create(ctx, sp, p)
	})
	if errors.Is(err, model.ErrConflict) {
		return s.progRepo.FindByLearnerForUpdate(ctx, tx, learnerID)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// mutate は1トランザクションで進捗を読み込み、fn を適用して保存します。
// fn がエラーを返した場合は何も保存しません。
func (s *progressService) mutate(ctx context.Context, learnerID uuid.UUID, op string, fn func(p *model.LearnerProgress) (bool, error)) (*model.LearnerProgress, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "op", op)

	var result *model.LearnerProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.loadForUpdate(ctx, tx, learnerID)
		if err != nil {
			logger.Error("Error loading learner progress", "error", err)
			return storeUnavailable("学習進捗の取得に失敗しました。", err)
		}

		changed, err := fn(p)
		if err != nil {
			return err
		}
		if changed {
			if err := s.progRepo.Update(ctx, tx, p); err != nil {
				logger.Error("Error saving learner progress", "error", err)
				return storeUnavailable("学習進捗の保存に失敗しました。", err)
			}
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, txError("学習進捗の保存に失敗しました。", err)
	}
	return result, nil
}

// applyXP は XP を加算し、レベルとレベル実績を更新します。
// 加算後の XP が int に収まらない場合は何も変更せずエラーを返す。
func applyXP(p *model.LearnerProgress, amount int, field string) (model.XPAward, error) {
	if amount > math.MaxInt-p.XP {
		return model.XPAward{}, model.NewAppError("INVALID_XP_AMOUNT", "経験値の上限を超えるため付与できません。", field, model.ErrInvalidXPAmount)
	}
	prev := gamification.LevelForXP(p.XP)
	p.XP += amount
	p.Level = gamification.LevelForXP(p.XP)

	award := model.XPAward{
		Amount:        amount,
		NewXP:         p.XP,
		PreviousLevel: prev,
		NewLevel:      p.Level,
		LeveledUp:     p.Level > prev,
		Unlocked:      []string{},
	}
	for _, id := range gamification.LevelAchievements(prev, p.Level) {
		if p.Unlock(id) {
			award.Unlocked = append(award.Unlocked, id)
		}
	}
	return award, nil
}

// applyStreak は今日の練習を反映します。最長記録を更新したら streak_master を解除する。
func applyStreak(p *model.LearnerProgress, today time.Time) (model.StreakResult, gamification.StreakTransition) {
	state := gamification.StreakState{Streak: p.Streak, LongestStreak: p.LongestStreak}
	if p.LastPracticeDate != nil {
		last := time.Time(*p.LastPracticeDate)
		state.LastPracticeDate = &last
	}

	next, tr := gamification.ApplyStreak(state, today)
	res := model.StreakResult{Unlocked: []string{}}
	if tr.Changed {
		p.Streak = next.Streak
		p.LongestStreak = next.LongestStreak
		date := datatypes.Date(*next.LastPracticeDate)
		p.LastPracticeDate = &date
	}
	if tr.LongestIncreased && p.Unlock(model.AchievementStreakMaster) {
		res.Unlocked = append(res.Unlocked, model.AchievementStreakMaster)
	}
	res.Streak = p.Streak
	res.LongestStreak = p.LongestStreak
	res.Changed = tr.Changed
	res.LongestStreakIncreased = tr.LongestIncreased
	return res, tr
}

func (s *progressService) GetProgress(ctx context.Context, learnerID uuid.UUID) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	p, err := s.progRepo.FindByLearner(ctx, s.db, learnerID)
	if errors.Is(err, model.ErrNotFound) {
		// 初回アクセス時に作成する
		p, err = s.mutate(ctx, learnerID, "GetProgress", func(*model.LearnerProgress) (bool, error) { return false, nil })
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		logger.Error("Error finding learner progress", "error", err)
		return nil, storeUnavailable("学習進捗の取得に失敗しました。", err)
	}
	return toProgressResponse(p), nil
}

func (s *progressService) AwardXP(ctx context.Context, learnerID uuid.UUID, amount int, source string) (*model.XPAward, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "source", source)

	if amount <= 0 {
		logger.Warn("Rejected non-positive XP award", "amount", amount)
		return nil, model.NewAppError("INVALID_XP_AMOUNT", "付与する経験値は1以上で指定してください。", "amount", model.ErrInvalidXPAmount)
	}

	var award model.XPAward
	_, err := s.mutate(ctx, learnerID, "AwardXP", func(p *model.LearnerProgress) (bool, error) {
		var err error
		award, err = applyXP(p, amount, "amount")
		return err == nil, err
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidXPAmount) {
			logger.Warn("Rejected XP award exceeding the limit", "amount", amount)
		}
		return nil, err
	}

	logger.Info("XP awarded", "amount", amount, "new_xp", award.NewXP, "new_level", award.NewLevel, "leveled_up", award.LeveledUp)
	return &award, nil
}

func (s *progressService) TouchStreak(ctx context.Context, learnerID uuid.UUID) (*model.StreakResult, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)
	today := s.today()

	var res model.StreakResult
	_, err := s.mutate(ctx, learnerID, "TouchStreak", func(p *model.LearnerProgress) (bool, error) {
		var tr gamification.StreakTransition
		res, tr = applyStreak(p, today)
		return tr.Changed, nil
	})
	if err != nil {
		return nil, err
	}

	if res.Changed {
		logger.Info("Streak updated", "streak", res.Streak, "longest_streak", res.LongestStreak)
	}
	return &res, nil
}

func (s *progressService) ClaimDailyBonus(ctx context.Context, learnerID uuid.UUID) (*model.DailyBonusResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)
	today := s.today()

	var resp model.DailyBonusResponse
	_, err := s.mutate(ctx, learnerID, "ClaimDailyBonus", func(p *model.LearnerProgress) (bool, error) {
		streak, tr := applyStreak(p, today)
		if tr.Phase == gamification.PracticedToday {
			return false, model.NewAppError("ALREADY_CLAIMED_TODAY", "今日のボーナスは受け取り済みです。", "", model.ErrAlreadyClaimedToday)
		}

		// ボーナスは遷移後のストリークで計算する
		bonus := gamification.DailyBonus(streak.Streak)
		award, err := applyXP(p, bonus, "")
		if err != nil {
			return false, err
		}

		unlocked := append([]string{}, streak.Unlocked...)
		unlocked = append(unlocked, award.Unlocked...)
		if p.Unlock(model.AchievementDailyPractitioner) {
			unlocked = append(unlocked, model.AchievementDailyPractitioner)
		}

		resp = model.DailyBonusResponse{
			Granted:   true,
			Amount:    bonus,
			Streak:    streak.Streak,
			NewXP:     award.NewXP,
			NewLevel:  award.NewLevel,
			LeveledUp: award.LeveledUp,
			Unlocked:  unlocked,
		}
		return true, nil
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyClaimedToday) {
			logger.Info("Daily bonus already claimed today")
		}
		return nil, err
	}

	logger.Info("Daily bonus granted", "amount", resp.Amount, "streak", resp.Streak)
	return &resp, nil
}

func (s *progressService) RecordLessonResult(ctx context.Context, learnerID uuid.UUID, lessonID string, correct, total, xp int) (*model.LessonResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "lesson_id", lessonID)

	switch {
	case lessonID == "":
		return nil, model.NewAppError("INVALID_INPUT", "レッスンIDを指定してください。", "lesson_id", model.ErrInvalidInput)
	case total <= 0:
		return nil, model.NewAppError("INVALID_INPUT", "問題数は1以上で指定してください。", "total", model.ErrInvalidInput)
	case correct < 0 || correct > total:
		return nil, model.NewAppError("INVALID_INPUT", "正解数は0以上、問題数以下で指定してください。", "correct", model.ErrInvalidInput)
	case xp < 0:
		return nil, model.NewAppError("INVALID_XP_AMOUNT", "経験値は0以上で指定してください。", "xp", model.ErrInvalidXPAmount)
	}

	resp := model.LessonResultResponse{LessonID: lessonID}
	_, err := s.mutate(ctx, learnerID, "RecordLessonResult", func(p *model.LearnerProgress) (bool, error) {
		lessons := p.Lessons()
		lesson := lessons[lessonID]
		if xp > math.MaxInt-lesson.XPEarned {
			return false, model.NewAppError("INVALID_XP_AMOUNT", "経験値の上限を超えるため付与できません。", "xp", model.ErrInvalidXPAmount)
		}
		lesson.Attempts++
		lesson.Completed = true
		lesson.Accuracy = int(math.Round(float64(correct) * 100 / float64(total)))
		lesson.XPEarned += xp
		lessons[lessonID] = lesson
		p.LessonProgress = datatypes.NewJSONType(lessons)

		resp.Lesson = lesson
		if xp > 0 {
			award, err := applyXP(p, xp, "xp")
			if err != nil {
				return false, err
			}
			resp.XPAward = &award
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Lesson result recorded", "attempts", resp.Lesson.Attempts, "accuracy", resp.Lesson.Accuracy, "xp", xp)
	return &resp, nil
}

func (s *progressService) ResetProgress(ctx context.Context, learnerID uuid.UUID) (*model.ProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	fresh := model.NewLearnerProgress(learnerID)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.progRepo.Delete(ctx, tx, learnerID); err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error deleting learner progress", "error", err)
			return storeUnavailable("学習進捗のリセットに失敗しました。", err)
		}
		if err := s.progRepo.Create(ctx, tx, fresh); err != nil {
			logger.Error("Error recreating learner progress", "error", err)
			return storeUnavailable("学習進捗のリセットに失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		return nil, txError("学習進捗のリセットに失敗しました。", err)
	}

	logger.Info("Learner progress reset")
	return toProgressResponse(fresh), nil
}

func toProgressResponse(p *model.LearnerProgress) *model.ProgressResponse {
	level, into, toNext := gamification.LevelProgress(p.XP)
	resp := &model.ProgressResponse{
		LearnerID:      p.LearnerID,
		XP:             p.XP,
		Level:          level,
		XPIntoLevel:    into,
		XPToNextLevel:  toNext,
		Streak:         p.Streak,
		LongestStreak:  p.LongestStreak,
		Achievements:   append([]string{}, p.Achievements...),
		LessonProgress: p.Lessons(),
	}
	if p.LastPracticeDate != nil {
		d := time.Time(*p.LastPracticeDate).Format(time.DateOnly)
		resp.LastPracticeDate = &d
	}
	return resp
}
