// internal/handlers/review_handler.go
package handlers

import (
	"net/http"

	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/service"
	"go_4_vocab_progress/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// GetReviewWords は復習期限が来ている単語を返します (GET /reviews)
func (h *ReviewHandler) GetReviewWords(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "GetReviewWords")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}

	reviewWords, err := h.service.GetReviewWords(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if reviewWords == nil {
		reviewWords = []*model.ReviewWordResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, reviewWords)
}

// GetDueCount は復習対象の単語数を返します (GET /reviews/count)
func (h *ReviewHandler) GetDueCount(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "GetDueCount")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}

	count, err := h.service.GetDueCount(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.DueCountResponse{Count: count})
}

// SubmitReviewResult は自己評価 (easy/medium/hard) を単語に反映します (PUT /reviews/{word_id}/result)
func (h *ReviewHandler) SubmitReviewResult(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "SubmitReviewResult")
	learnerID, ok := requireLearnerID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := uuidParam(w, r, logger, "word_id")
	if !ok {
		return
	}

	var req model.SubmitReviewRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	rating, err := model.ParseRating(req.Rating)
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_RATING", "評価は easy, medium, hard のいずれかで指定してください。", "rating", err))
		return
	}

	word, err := h.service.RecordReview(r.Context(), learnerID, wordID, rating)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.ReviewResultResponse{
		WordID:         word.WordID,
		ReviewCount:    word.ReviewCount,
		CorrectCount:   word.CorrectCount,
		LastReviewedAt: word.LastReviewedAt,
		NextReviewAt:   word.NextReviewAt,
	})
}
