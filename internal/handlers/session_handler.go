package handlers

import (
	"net/http"

	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/service"
	"go_4_vocab_progress/internal/webutil"
)

// SessionHandler は練習セッションのエンドポイントを扱います
type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(s service.SessionService) *SessionHandler {
	return &SessionHandler{service: s}
}

// StartSession は POST /sessions
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "StartSession")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}

	session, err := h.service.StartSession(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, session)
}

// GetSession は GET /sessions/{session_id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "GetSession")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	session, err := h.service.GetSession(r.Context(), learnerID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, session)
}

// SubmitAnswer は POST /sessions/{session_id}/answers
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "SubmitAnswer")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), learnerID, sessionID, req.WordID, req.Answer)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

// CompleteSession は POST /sessions/{session_id}/complete
func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "CompleteSession")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	summary, err := h.service.CompleteSession(r.Context(), learnerID, sessionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if summary.Unlocked == nil {
		summary.Unlocked = []string{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary)
}

// AbandonSession は DELETE /sessions/{session_id}
func (h *SessionHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "AbandonSession")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	if err := h.service.AbandonSession(r.Context(), learnerID, sessionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithNoContent(w)
}
