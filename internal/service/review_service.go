package service

import (
	"context"
	"errors"
	"time"

	"go_4_vocab_progress/internal/config"
	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/repository"
	"go_4_vocab_progress/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は単語ごとの復習スケジュールを扱います
type ReviewService interface {
	// GetReviewWords は復習対象を最大 app.review_limit 件返します
	GetReviewWords(ctx context.Context, learnerID uuid.UUID) ([]*model.ReviewWordResponse, error)
	// GetAllDueWords は件数の上限なしで復習対象をすべて返します (練習セッション用)
	GetAllDueWords(ctx context.Context, learnerID uuid.UUID) ([]*model.ReviewWordResponse, error)
	GetDueCount(ctx context.Context, learnerID uuid.UUID) (int64, error)
	// RecordReview は1回分の評価を単語に反映し、更新後の単語を返します
	RecordReview(ctx context.Context, learnerID, wordID uuid.UUID, rating model.Rating) (*model.Word, error)
}

type reviewService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewReviewService(db *gorm.DB, wordRepo repository.WordRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:       db,
		wordRepo: wordRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *reviewService) GetReviewWords(ctx context.Context, learnerID uuid.UUID) ([]*model.ReviewWordResponse, error) {
	return s.findDue(ctx, learnerID, s.cfg.App.ReviewLimit)
}

func (s *reviewService) GetAllDueWords(ctx context.Context, learnerID uuid.UUID) ([]*model.ReviewWordResponse, error) {
	return s.findDue(ctx, learnerID, 0)
}

// findDue は limit 件まで (0以下なら全件) 復習対象を返します
func (s *reviewService) findDue(ctx context.Context, learnerID uuid.UUID, limit int) ([]*model.ReviewWordResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	now := s.now().UTC()
	words, err := s.wordRepo.FindDueByLearner(ctx, s.db, learnerID, now, limit)
	if err != nil {
		logger.Error("Failed to find due words from repository", "error", err)
		return nil, storeUnavailable("復習単語の取得に失敗しました。", err)
	}

	responses := make([]*model.ReviewWordResponse, 0, len(words))
	for _, w := range words {
		// クエリ条件と同じ判定で読み込み結果を確認する
		if !srs.IsDue(w, now) {
			logger.Warn("Skipping word that is not due", "word_id", w.WordID, "next_review_at", w.NextReviewAt)
			continue
		}
		responses = append(responses, &model.ReviewWordResponse{
			WordID:       w.WordID,
			Term:         w.Term,
			Definition:   w.Definition,
			ReviewCount:  w.ReviewCount,
			CorrectCount: w.CorrectCount,
			NextReviewAt: w.NextReviewAt,
		})
	}

	logger.Info("Successfully retrieved review words", "count", len(responses), "limit", limit)
	return responses, nil
}

func (s *reviewService) GetDueCount(ctx context.Context, learnerID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	count, err := s.wordRepo.CountDueByLearner(ctx, s.db, learnerID, s.now().UTC())
	if err != nil {
		logger.Error("Failed to count due words", "error", err)
		return 0, storeUnavailable("復習単語数の取得に失敗しました。", err)
	}
	return count, nil
}

func (s *reviewService) RecordReview(ctx context.Context, learnerID, wordID uuid.UUID, rating model.Rating) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "word_id", wordID)

	if !rating.Valid() {
		logger.Warn("Invalid rating", "rating", string(rating))
		return nil, model.NewAppError("INVALID_RATING", "評価は easy, medium, hard のいずれかで指定してください。", "rating", model.ErrInvalidRating)
	}

	var updated model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.wordRepo.FindByIDForUpdate(ctx, tx, learnerID, wordID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Word not found for review")
				return model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrWordNotFound)
			}
			logger.Error("Error finding word in transaction", "error", err)
			return storeUnavailable("単語の取得中にエラーが発生しました。", err)
		}

		updated, err = srs.ApplyReview(*word, rating, s.now().UTC())
		if err != nil {
			return model.NewAppError("INVALID_RATING", "評価が不正です。", "rating", err)
		}

		if err := s.wordRepo.Update(ctx, tx, &updated); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrWordNotFound)
			}
			logger.Error("Error updating word review state", "error", err)
			return storeUnavailable("復習結果の保存に失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		return nil, txError("復習結果の保存に失敗しました。", err)
	}

	logger.Info("Review recorded",
		"rating", string(rating),
		"review_count", updated.ReviewCount,
		"correct_count", updated.CorrectCount,
		"next_review_at", updated.NextReviewAt,
	)
	return &updated, nil
}
