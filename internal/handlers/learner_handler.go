package handlers

import (
	"net/http"

	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/service"
	"go_4_vocab_progress/internal/webutil"
)

// LearnerHandler は学習者の登録・取得を扱います
type LearnerHandler struct {
	service service.LearnerService
}

func NewLearnerHandler(s service.LearnerService) *LearnerHandler {
	return &LearnerHandler{service: s}
}

// CreateLearner は POST /learners (認証不要)
func (h *LearnerHandler) CreateLearner(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "CreateLearner")

	var req model.CreateLearnerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	learner, err := h.service.CreateLearner(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, learner)
}

// GetMe は GET /learners/me
func (h *LearnerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "GetMe")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}

	learner, err := h.service.GetLearner(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, learner)
}
