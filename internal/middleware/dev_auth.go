package middleware

import (
	"net/http"

	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/webutil"

	"github.com/google/uuid"
)

// LearnerIDHeader は開発時に学習者IDを渡すヘッダー
const LearnerIDHeader = "X-Learner-ID"

// DevLearnerContextMiddleware は開発時用ミドルウェアです (auth.enabled=false のときに使う)。
// X-Learner-ID ヘッダーのUUIDをそのままコンテキストに設定し、存在チェックは行いません。
func DevLearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(LearnerIDHeader)
		if raw == "" {
			logger.Warn("[DEV AUTH] X-Learner-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-IDヘッダーが必要です。", LearnerIDHeader, model.ErrForbidden))
			return
		}

		learnerID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Learner-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Learner-IDの形式が正しくありません。", LearnerIDHeader, model.ErrForbidden))
			return
		}

		logger.Debug("[DEV AUTH] Learner ID set to context (no validation)", "learner_id", learnerID)
		next.ServeHTTP(w, r.WithContext(withLearner(r.Context(), learnerID)))
	})
}
