//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WordRepository は単語と復習スケジュールの永続化を担当します
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	// FindByIDForUpdate はトランザクション内で行ロックを取って単語を取得します
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) (*model.Word, error)
	FindDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.Word, error)
	CountDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, word *model.Word) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"learner_id", word.LearnerID.String(),
			"term", word.Term,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	// SQLite はロック句を無視する (書き込みロックで直列化される)
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("learner_id = ? AND word_id = ?", learnerID, wordID).
		First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrWordNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByIDForUpdate: %w", result.Error)
	}
	return &word, nil
}

// dueScope は now 時点で復習対象の単語に絞り込みます (next_review_at が未設定のものを含む)
func dueScope(learnerID uuid.UUID, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("learner_id = ?", learnerID).
			Where("(next_review_at IS NULL OR next_review_at <= ?)", now)
	}
}

func (r *gormWordRepository) FindDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	query := db.WithContext(ctx).
		Scopes(dueScope(learnerID, now)).
		Order("next_review_at ASC NULLS FIRST").
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&words)
	if result.Error != nil {
		logger.Error("Error finding due words in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindDueByLearner: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) CountDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Scopes(dueScope(learnerID, now)).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting due words in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return 0, fmt.Errorf("gormWordRepository.CountDueByLearner: %w", result.Error)
	}
	return count, nil
}

// Update は復習スケジュールのカラムだけを書き戻します
func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Word{}).
		Where("learner_id = ? AND word_id = ?", word.LearnerID, word.WordID).
		Updates(map[string]interface{}{
			"review_count":     word.ReviewCount,
			"correct_count":    word.CorrectCount,
			"next_review_at":   word.NextReviewAt,
			"last_reviewed_at": word.LastReviewedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"learner_id", word.LearnerID.String(),
			"word_id", word.WordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrWordNotFound
	}
	return nil
}
