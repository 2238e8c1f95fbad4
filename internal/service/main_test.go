package service

import (
	"testing"
	"time"

	"go_4_vocab_progress/internal/config"
	"go_4_vocab_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite" // テスト用にsqliteを使用
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリ DB を用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for service testing")
	require.NoError(t, db.AutoMigrate(&model.Learner{}, &model.Word{}, &model.LearnerProgress{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			ReviewLimit: 10,
			Timezone:    "UTC",
		},
		Session: config.SessionConfig{
			IdleTimeout:    30 * time.Minute,
			XPPerCorrect:   10,
			PerfectBonusXP: 20,
		},
	}
}

// fixedClock はテスト用の時計。Advance で進められる
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }

func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
