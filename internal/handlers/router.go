package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers はルーティングに登録するハンドラ一式
type Handlers struct {
	Learner  *LearnerHandler
	Review   *ReviewHandler
	Session  *SessionHandler
	Progress *ProgressHandler
	Health   *HealthHandler
}

// RegisterRoutes は /api/v1 以下のルートと /health を登録します。
// auth は学習者IDをコンテキストに設定するミドルウェア (JWT または開発用ヘッダー)。
func RegisterRoutes(r chi.Router, h Handlers, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/learners", h.Learner.CreateLearner)

		// --- Protected routes (require learner ID) ---
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/learners/me", h.Learner.GetMe)

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.Review.GetReviewWords)
				r.Get("/count", h.Review.GetDueCount)
				r.Put("/{word_id}/result", h.Review.SubmitReviewResult)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", h.Session.StartSession)
				r.Get("/{session_id}", h.Session.GetSession)
				r.Delete("/{session_id}", h.Session.AbandonSession)
				r.Post("/{session_id}/answers", h.Session.SubmitAnswer)
				r.Post("/{session_id}/complete", h.Session.CompleteSession)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Get("/", h.Progress.GetProgress)
				r.Delete("/", h.Progress.ResetProgress)
				r.Post("/daily-bonus", h.Progress.ClaimDailyBonus)
				r.Post("/lessons/{lesson_id}", h.Progress.RecordLessonResult)
			})
		})
	})

	if h.Health != nil {
		r.Get("/health", h.Health.Check)
	}
}
