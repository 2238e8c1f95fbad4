// cmd/seed/main.go
// 動作確認用に学習者を1人作り、すぐに復習できる単語を登録します。
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"go_4_vocab_progress/internal/config"
	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/repository"
	"go_4_vocab_progress/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var sampleWords = []struct {
	Term       string
	Definition string
}{
	{"apple", "りんご"},
	{"dog", "いぬ"},
	{"library", "図書館"},
	{"borrow", "借りる"},
	{"weather", "天気"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := &config.Cfg

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	ctx := context.Background()
	email := os.Getenv("SEED_EMAIL")
	if email == "" {
		email = fmt.Sprintf("sample-%s@example.com", uuid.NewString()[:8])
	}

	learnerService := service.NewLearnerService(db, repository.NewGormLearnerRepository(), repository.NewGormProgressRepository())
	learner, err := learnerService.CreateLearner(ctx, &model.CreateLearnerRequest{Name: "Sample Learner", Email: email})
	if err != nil {
		log.Fatalf("Failed to create learner: %v", err)
	}
	fmt.Printf("Created learner: ID=%s, Email=%s\n", learner.LearnerID, learner.Email)

	// 半分は未復習 (NextReviewAt=nil)、残りは期限切れにしておく
	wordRepo := repository.NewGormWordRepository()
	past := time.Now().UTC().Add(-time.Hour)
	for i, w := range sampleWords {
		word := &model.Word{
			WordID:     uuid.New(),
			LearnerID:  learner.LearnerID,
			Term:       w.Term,
			Definition: w.Definition,
		}
		if i%2 == 1 {
			word.NextReviewAt = &past
			word.ReviewCount = 1
		}
		if err := wordRepo.Create(ctx, db, word); err != nil {
			log.Fatalf("Failed to create word %q: %v", w.Term, err)
		}
		fmt.Printf("  word: %-8s -> %s\n", w.Definition, w.Term)
	}

	if cfg.Auth.Enabled {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   learner.LearnerID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		}).SignedString([]byte(cfg.JWT.SecretKey))
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}
		fmt.Printf("\nAuthorization: Bearer %s\n", token)
	} else {
		fmt.Printf("\nX-Learner-ID: %s\n", learner.LearnerID)
	}
}
