package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// maxLoggedBody はデバッグログに載せるボディの最大バイト数
const maxLoggedBody = 4 << 10

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名 (小文字)
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// statusRecorder はステータスコードと書き込んだバイト数を記録します。
// ボディはデバッグレベルのときだけ保持する。
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
	body    *bytes.Buffer
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.body != nil && rec.body.Len() < maxLoggedBody {
		rec.body.Write(b)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.written += n
	return n, err
}

// LoggingMiddleware はリクエストごとのロガーをコンテキストに入れ、完了時に1行の概要ログを出します。
// chi の RequestID ミドルウェアより後ろに置くこと。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			debug := logger.Enabled(r.Context(), slog.LevelDebug)

			reqLogger := logger.With("req_id", chimiddleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), reqLogger))

			var reqBody []byte
			if debug && r.Body != nil {
				reqBody, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
				r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(reqBody), r.Body))
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			if debug {
				rec.body = new(bytes.Buffer)
			}

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}

			reqLogger.Log(r.Context(), level, "Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes_out", rec.written,
				"latency_ms", float64(time.Since(start).Microseconds())/1000,
			)

			if debug {
				reqLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", string(reqBody),
					"response_headers", formatHeaders(rec.Header()),
					"response_body", rec.body.String(),
				)
			}
		})
	}
}

// WithLogger はロガーをコンテキストに格納します (バックグラウンドジョブからも使う)
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。無ければ slog.Default()。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}
