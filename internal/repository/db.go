package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_4_vocab_progress/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/driver/sqlite"                 // ローカル開発・テスト用
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は URL のスキームに応じて Postgres か SQLite に接続します
//
//	postgres://... / postgresql://...  → Postgres
//	sqlite://<path> / file:<path>      → SQLite
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	dialector, err := openDialector(databaseURL)
	if err != nil {
		appLogger.Error("Unsupported database URL", slog.Any("error", err))
		return nil, err
	}

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         slogGormLogger.LogMode(gormLogLevel),
		TranslateError: true, // 一意制約違反を gorm.ErrDuplicatedKey に揃える
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if db.Dialector.Name() == "sqlite" {
		// SQLite は書き込みが直列化されるので接続は1本にする
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	appLogger.Info("Database connection established with GORM", "dialect", db.Dialector.Name())
	return db, nil
}

func openDialector(databaseURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://")), nil
	case strings.HasPrefix(databaseURL, "file:"):
		return sqlite.Open(databaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database url scheme: %q", databaseURL)
	}
}

// AutoMigrate はエンジンが使うテーブルを作成・更新します
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Learner{}, &model.Word{}, &model.LearnerProgress{})
}

// isDuplicateKey は一意制約違反かどうかを判定します
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
