package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_vocab_progress/internal/handlers"
	"go_4_vocab_progress/internal/middleware"
	svc_mocks "go_4_vocab_progress/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// testServices はルーター経由のテストで使うモック一式
type testServices struct {
	learner  *svc_mocks.LearnerService
	review   *svc_mocks.ReviewService
	session  *svc_mocks.SessionService
	progress *svc_mocks.ProgressService
}

// newTestServer は開発用認証ミドルウェア付きのルーターでテストサーバーを起動します
func newTestServer(t *testing.T) (*httptest.Server, testServices) {
	t.Helper()
	svcs := testServices{
		learner:  svc_mocks.NewLearnerService(t),
		review:   svc_mocks.NewReviewService(t),
		session:  svc_mocks.NewSessionService(t),
		progress: svc_mocks.NewProgressService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(chimiddleware.Recoverer)

	handlers.RegisterRoutes(r, handlers.Handlers{
		Learner:  handlers.NewLearnerHandler(svcs.learner),
		Review:   handlers.NewReviewHandler(svcs.review),
		Session:  handlers.NewSessionHandler(svcs.session),
		Progress: handlers.NewProgressHandler(svcs.progress),
	}, middleware.DevLearnerContextMiddleware)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, svcs
}

func learnerHeader(id uuid.UUID) map[string]string {
	return map[string]string{middleware.LearnerIDHeader: id.String()}
}

func TestRouter_DevAuth(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("異常系: X-Learner-IDヘッダーなし", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/progress"}, http.StatusForbidden)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, body).Code)
	})

	t.Run("異常系: X-Learner-IDがUUIDではない", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{
			Method:  http.MethodGet,
			Path:    "/api/v1/progress",
			Headers: map[string]string{middleware.LearnerIDHeader: "learner-1"},
		}, http.StatusForbidden)
		assert.Equal(t, middleware.LearnerIDHeader, decodeError(t, body).Field)
	})

	t.Run("異常系: 未定義のルート", func(t *testing.T) {
		sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/words"}, http.StatusNotFound)
	})
}
