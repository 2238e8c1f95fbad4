package repository

import (
	"context"
	"testing"
	"time"

	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestGormProgressRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormProgressRepository()
	learner := createLearner(t, db)

	t.Run("異常系: 未作成なら NotFound", func(t *testing.T) {
		_, err := repo.FindByLearner(ctx, db, learner.LearnerID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 作成して取得", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, db, model.NewLearnerProgress(learner.LearnerID)))

		got, err := repo.FindByLearner(ctx, db, learner.LearnerID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.XP)
		assert.Equal(t, 1, got.Level)
		assert.Nil(t, got.LastPracticeDate)
		assert.Empty(t, got.Achievements)
		assert.Empty(t, got.Lessons())
	})

	t.Run("異常系: 二重作成は Conflict", func(t *testing.T) {
		err := repo.Create(ctx, db, model.NewLearnerProgress(learner.LearnerID))
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("正常系: JSON カラムと日付を含めて更新", func(t *testing.T) {
		err := db.Transaction(func(tx *gorm.DB) error {
			p, err := repo.FindByLearnerForUpdate(ctx, tx, learner.LearnerID)
			if err != nil {
				return err
			}
			p.XP = 120
			p.Level = 2
			p.Streak = 3
			p.LongestStreak = 3
			date := datatypes.Date(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))
			p.LastPracticeDate = &date
			p.Unlock(model.AchievementStreakMaster)
			p.Unlock("level_2")
			lessons := p.Lessons()
			lessons["lesson-1"] = model.LessonProgress{Completed: true, Attempts: 1, XPEarned: 20, Accuracy: 80}
			p.LessonProgress = datatypes.NewJSONType(lessons)
			return repo.Update(ctx, tx, p)
		})
		require.NoError(t, err)

		got, err := repo.FindByLearner(ctx, db, learner.LearnerID)
		require.NoError(t, err)
		assert.Equal(t, 120, got.XP)
		assert.Equal(t, 2, got.Level)
		assert.Equal(t, 3, got.LongestStreak)
		require.NotNil(t, got.LastPracticeDate)
		assert.Equal(t, "2026-06-15", time.Time(*got.LastPracticeDate).Format("2006-01-02"))
		assert.Equal(t, []string{model.AchievementStreakMaster, "level_2"}, []string(got.Achievements))
		assert.Equal(t, model.LessonProgress{Completed: true, Attempts: 1, XPEarned: 20, Accuracy: 80}, got.Lessons()["lesson-1"])
	})

	t.Run("正常系: 削除", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, db, learner.LearnerID))
		_, err := repo.FindByLearner(ctx, db, learner.LearnerID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 存在しないレコードの削除", func(t *testing.T) {
		err := repo.Delete(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
