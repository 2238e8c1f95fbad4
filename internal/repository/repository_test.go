package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリ SQLite を用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := NewDB("file:"+uuid.NewString()+"?mode=memory&cache=shared", logger)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createLearner(t *testing.T, db *gorm.DB) *model.Learner {
	t.Helper()
	learner := &model.Learner{LearnerID: uuid.New(), Name: "tester", Email: uuid.NewString() + "@example.com"}
	require.NoError(t, NewGormLearnerRepository().Create(context.Background(), db, learner))
	return learner
}

func timePtr(t time.Time) *time.Time {
	return &t
}
