// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_4_vocab_progress/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// sendRequest はHTTPリクエストを送信し、ステータスコードとボディを返します。
// ステータスコードのアサーションもここで行います。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	req, err := http.NewRequest(details.Method, server.URL+details.Path, jsonBody(t, details.Body))
	require.NoError(t, err, "Failed to create request")
	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch: %s", string(respBody))

	return respBody
}

// jsonBody は文字列ならそのまま、それ以外は JSON にエンコードしたボディを返します
func jsonBody(t *testing.T, body interface{}) io.Reader {
	t.Helper()
	switch b := body.(type) {
	case nil:
		return nil
	case string:
		return strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		return bytes.NewBuffer(data)
	}
}

// newRequest は学習者IDとURLパラメータを設定済みのリクエストを作ります (ハンドラを直接呼ぶテスト用)
func newRequest(t *testing.T, method, target string, body interface{}, learnerID *uuid.UUID, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, jsonBody(t, body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := req.Context()
	if learnerID != nil {
		ctx = context.WithValue(ctx, model.LearnerIDKey, *learnerID)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

// decodeError はエラーレスポンスのボディを読み取ります
func decodeError(t *testing.T, body []byte) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "error body: %s", string(body))
	return errResp.Error
}
