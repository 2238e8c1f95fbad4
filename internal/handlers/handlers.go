// Package handlers は HTTP リクエストを受け取り、サービス層を呼び出してJSONで応答します。
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_vocab_progress/internal/middleware"
	"go_4_vocab_progress/internal/model"
	"go_4_vocab_progress/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requestLogger はリクエストスコープのロガーにハンドラ名を付けて返します
func requestLogger(r *http.Request, handler string) *slog.Logger {
	return middleware.GetLogger(r.Context()).With(slog.String("handler", handler))
}

// requireLearnerID は認証済みの学習者IDを取り出します。取れない場合はエラーレスポンスを書いて false を返す
func requireLearnerID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	id, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden))
		return uuid.Nil, false
	}
	return id, true
}

// uuidParam は URL パラメータを UUID として取り出します
func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID in URL", slog.String("param", name), slog.String("value", raw))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_PATH_PARAM", "URLのIDの形式が正しくありません。", name, model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return id, true
}
