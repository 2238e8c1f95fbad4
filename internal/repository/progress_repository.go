//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository は学習者ごとの進捗レコード (1学習者1件) を扱います
type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.LearnerProgress) error
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.LearnerProgress, error)
	FindByLearnerForUpdate(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) (*model.LearnerProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.LearnerProgress) error
	Delete(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.LearnerProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			// 同時に get-or-create が走った場合
			return model.ErrConflict
		}
		logger.Error("Error creating learner progress in DB",
			"error", result.Error,
			"learner_id", progress.LearnerID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.LearnerProgress, error) {
	return r.find(ctx, db.WithContext(ctx), learnerID, "FindByLearner")
}

func (r *gormProgressRepository) FindByLearnerForUpdate(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) (*model.LearnerProgress, error) {
	return r.find(ctx, tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), learnerID, "FindByLearnerForUpdate")
}

func (r *gormProgressRepository) find(ctx context.Context, q *gorm.DB, learnerID uuid.UUID, op string) (*model.LearnerProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.LearnerProgress
	result := q.Where("learner_id = ?", learnerID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding learner progress in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.%s: %w", op, result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.LearnerProgress) error {
	logger := middleware.GetLogger(ctx)
	// Save はゼロ値も含めて全カラムを書き戻す
	result := tx.WithContext(ctx).Save(progress)
	if result.Error != nil {
		logger.Error("Error updating learner progress in DB",
			"error", result.Error,
			"learner_id", progress.LearnerID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("learner_id = ?", learnerID).Delete(&model.LearnerProgress{})
	if result.Error != nil {
		logger.Error("Error deleting learner progress in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
