//go:generate mockery --name LearnerRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnerRepository interface {
	Create(ctx context.Context, db *gorm.DB, learner *model.Learner) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error)
}

type gormLearnerRepository struct{}

func NewGormLearnerRepository() LearnerRepository {
	return &gormLearnerRepository{}
}

func (r *gormLearnerRepository) Create(ctx context.Context, db *gorm.DB, learner *model.Learner) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(learner)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn(
				"Duplicate key error on create learner",
				"error", result.Error,
				"email", learner.Email,
			)
			return model.ErrConflict
		}

		logger.Error(
			"Error creating learner in DB",
			"error", result.Error,
			"name", learner.Name,
		)
		return fmt.Errorf("gormLearnerRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormLearnerRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)
	var learner model.Learner

	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrLearnerNotFound
		}
		logger.Error(
			"Error finding learner by ID in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormLearnerRepository.FindByID: %w", result.Error)
	}
	return &learner, nil
}
