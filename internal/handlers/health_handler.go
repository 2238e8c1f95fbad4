package handlers

import (
	"net/http"

	"go_4_vocab_progress/internal/webutil"

	"gorm.io/gorm"
)

// HealthHandler は DB への疎通を確認します
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Check は GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "HealthCheck")

	sqlDB, err := h.db.DB()
	if err != nil {
		logger.Error("Health check failed: could not get DB object", "error", err)
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	if err := sqlDB.PingContext(r.Context()); err != nil {
		logger.Error("Health check failed: could not ping DB", "error", err)
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
