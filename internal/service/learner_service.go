package service

import (
	"context"
	"errors"
	"strings"

	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnerService interface {
	CreateLearner(ctx context.Context, req *model.CreateLearnerRequest) (*model.LearnerResponse, error)
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.LearnerResponse, error)
}

type learnerService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	progRepo    repository.ProgressRepository
}

func NewLearnerService(db *gorm.DB, learnerRepo repository.LearnerRepository, progRepo repository.ProgressRepository) LearnerService {
	return &learnerService{db: db, learnerRepo: learnerRepo, progRepo: progRepo}
}

// CreateLearner は学習者と空の進捗レコードを同じトランザクションで作成します
func (s *learnerService) CreateLearner(ctx context.Context, req *model.CreateLearnerRequest) (*model.LearnerResponse, error) {
	logger := middleware.GetLogger(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewAppError("INVALID_INPUT", "名前を入力してください。", "name", model.ErrInvalidInput)
	}
	learner := &model.Learner{
		LearnerID: uuid.New(),
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.learnerRepo.Create(ctx, tx, learner); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("EMAIL_ALREADY_EXISTS", "このメールアドレスは既に登録されています。", "email", model.ErrConflict)
			}
			return storeUnavailable("学習者の登録に失敗しました。", err)
		}
		if err := s.progRepo.Create(ctx, tx, model.NewLearnerProgress(learner.LearnerID)); err != nil {
			return storeUnavailable("学習進捗の作成に失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		logger.Warn("Failed to create learner", "error", err)
		return nil, txError("学習者の登録に失敗しました。", err)
	}

	logger.Info("Learner created", "learner_id", learner.LearnerID)
	return toLearnerResponse(learner), nil
}

func (s *learnerService) GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.LearnerResponse, error) {
	learner, err := s.learnerRepo.FindByID(ctx, s.db, learnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LEARNER_NOT_FOUND", "学習者が見つかりません。", "", model.ErrLearnerNotFound)
		}
		middleware.GetLogger(ctx).Error("Error finding learner", "learner_id", learnerID, "error", err)
		return nil, storeUnavailable("学習者の取得に失敗しました。", err)
	}
	return toLearnerResponse(learner), nil
}

func toLearnerResponse(l *model.Learner) *model.LearnerResponse {
	return &model.LearnerResponse{
		LearnerID: l.LearnerID,
		Name:      l.Name,
		Email:     l.Email,
		CreatedAt: l.CreatedAt,
	}
}
