package handlers

import (
	"net/http"

	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/service"
	"go_4_vocab_progress/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// ProgressHandler は経験値・レベル・ストリークなどの進捗を扱います
type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetProgress は GET /progress
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "GetProgress")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}

	progress, err := h.service.GetProgress(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress)
}

// ClaimDailyBonus は POST /progress/daily-bonus
// 同じ日に2回目を呼ぶと 409 を返す
func (h *ProgressHandler) ClaimDailyBonus(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "ClaimDailyBonus")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}

	bonus, err := h.service.ClaimDailyBonus(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if bonus.Unlocked == nil {
		bonus.Unlocked = []string{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, bonus)
}

// RecordLessonResult は POST /progress/lessons/{lesson_id}
func (h *ProgressHandler) RecordLessonResult(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "RecordLessonResult")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}
	lessonID := chi.URLParam(r, "lesson_id")

	var req model.LessonResultRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.RecordLessonResult(r.Context(), learnerID, lessonID, *req.Correct, req.Total, req.XP)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// ResetProgress は DELETE /progress
// 進捗を初期状態に戻し、リセット後の状態を返す
func (h *ProgressHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "ResetProgress")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}

	progress, err := h.service.ResetProgress(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress)
}
