//go:build integration

package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go_4_vocab_progress/internal/config"
	"go_4_vocab_progress/internal/handlers"
	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/repository"
	"go_4_vocab_progress/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	testDB     *gorm.DB
	testLogger *slog.Logger
)

func TestMain(m *testing.M) {
	testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(testLogger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vocab_progress",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	// テスト実行環境によってはホスト名を差し替える (例: host.docker.internal)
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	connectionURL := fmt.Sprintf("postgres://user:secret@%s:%s/vocab_progress?sslmode=disable", host, resource.GetPort("5432/tcp"))
	testLogger.Info("PostgreSQL container started", slog.String("container_id_short", resource.Container.ID[:12]))

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = repository.NewDB(connectionURL, testLogger)
		if errRetry != nil {
			testLogger.Warn("Retry: DB connection attempt failed.", slog.Any("error", errRetry))
		}
		return errRetry
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource after connection retry failed: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container after retries: %s", err)
	}

	if err := repository.AutoMigrate(testDB); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()
	testLogger.Info("Tests finished.", slog.Int("exit_code", code))

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

// setupIntegrationServer は実DBにつないだ全スタックのルーターを起動します
func setupIntegrationServer(t *testing.T) *httptest.Server {
	t.Helper()
	require.NotNil(t, testDB, "TestDB should have been initialized in TestMain")

	cfg := &config.Config{
		App:     config.AppConfig{ReviewLimit: 10, Timezone: "UTC"},
		Session: config.SessionConfig{IdleTimeout: 30 * time.Minute, XPPerCorrect: 10, PerfectBonusXP: 20},
	}
	wordRepo := repository.NewGormWordRepository()
	progressRepo := repository.NewGormProgressRepository()
	learnerRepo := repository.NewGormLearnerRepository()

	reviewService := service.NewReviewService(testDB, wordRepo, cfg)
	progressService := service.NewProgressService(testDB, progressRepo, cfg)
	sessionService := service.NewSessionService(reviewService, progressService, service.NewSessionStore(), cfg,
		service.NewRewardPolicy(cfg.Session.XPPerCorrect, cfg.Session.PerfectBonusXP))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware(testLogger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(5 * time.Second))
	handlers.RegisterRoutes(r, handlers.Handlers{
		Learner:  handlers.NewLearnerHandler(service.NewLearnerService(testDB, learnerRepo, progressRepo)),
		Review:   handlers.NewReviewHandler(reviewService),
		Session:  handlers.NewSessionHandler(sessionService),
		Progress: handlers.NewProgressHandler(progressService),
		Health:   handlers.NewHealthHandler(testDB),
	}, middleware.DevLearnerContextMiddleware)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestAPI_PracticeFlow(t *testing.T) {
	server := setupIntegrationServer(t)
	email := fmt.Sprintf("learner-%s@example.com", uuid.NewString())

	body := sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/learners",
		Body:   map[string]string{"name": "Taro", "email": email},
	}, http.StatusCreated)
	var learner model.LearnerResponse
	require.NoError(t, json.Unmarshal(body, &learner))

	t.Run("異常系: メールアドレスの重複は409", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPost,
			Path:   "/api/v1/learners",
			Body:   map[string]string{"name": "Jiro", "email": email},
		}, http.StatusConflict)
		assert.Equal(t, "EMAIL_ALREADY_EXISTS", decodeError(t, body).Code)
	})

	// 復習対象の単語を2件用意
	wordRepo := repository.NewGormWordRepository()
	words := map[string]string{"apple": "りんご", "dog": "いぬ"}
	for term, def := range words {
		require.NoError(t, wordRepo.Create(context.Background(), testDB, &model.Word{
			WordID:     uuid.New(),
			LearnerID:  learner.LearnerID,
			Term:       term,
			Definition: def,
		}))
	}
	headers := learnerHeader(learner.LearnerID)

	body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/reviews/count", Headers: headers}, http.StatusOK)
	assert.JSONEq(t, `{"count":2}`, string(body))

	body = sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/sessions", Headers: headers}, http.StatusCreated)
	var session model.SessionResponse
	require.NoError(t, json.Unmarshal(body, &session))
	require.NotNil(t, session.Question)

	answersPath := "/api/v1/sessions/" + session.SessionID.String() + "/answers"
	answerByPrompt := map[string]string{"りんご": "apple", "いぬ": "dog"}
	question := session.Question
	for question != nil {
		body = sendRequest(t, server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    answersPath,
			Body:    map[string]string{"word_id": question.WordID.String(), "answer": "  " + answerByPrompt[question.Prompt] + " "},
			Headers: headers,
		}, http.StatusOK)
		var result model.AnswerResult
		require.NoError(t, json.Unmarshal(body, &result))
		assert.True(t, result.Correct)
		question = result.Next
	}

	body = sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodPost,
		Path:    "/api/v1/sessions/" + session.SessionID.String() + "/complete",
		Headers: headers,
	}, http.StatusOK)
	var summary model.SessionSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, model.SessionScore{Correct: 2, Total: 2}, summary.FinalScore)
	assert.Equal(t, 40, summary.XPAwarded, "2問正解 x 10 + 全問正解ボーナス 20")
	assert.Equal(t, 1, summary.Streak)

	// 正解した単語は先の日付に回るので、復習対象は0件
	body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/reviews/count", Headers: headers}, http.StatusOK)
	assert.JSONEq(t, `{"count":0}`, string(body))

	body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/progress", Headers: headers}, http.StatusOK)
	var progress model.ProgressResponse
	require.NoError(t, json.Unmarshal(body, &progress))
	assert.Equal(t, 40, progress.XP)
	assert.Equal(t, 1, progress.Streak)

	// 同じ日に練習済みなのでデイリーボーナスは受け取れない
	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/progress/daily-bonus", Headers: headers}, http.StatusConflict)

	sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/health"}, http.StatusOK)
}
