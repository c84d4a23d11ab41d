package predictor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
)

func TestHTTPBridge_PredictVisitors(t *testing.T) {
	ctx := context.Background()

	t.Run("정상 응답은 방문객 수를 반환한다", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 한국어 키 페이로드가 그대로 전달되어야 한다
			body, _ := io.ReadAll(r.Body)
			var received map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &received))
			assert.Equal(t, "부산광역시", received["광역자치단체"])
			assert.Equal(t, "해운대구", received["기초자치단체 시/군/구"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"predicted_visitors": 38500.7}`))
		}))
		defer server.Close()

		bridge := NewHTTPBridge(server.URL, zap.NewNop().Sugar())

		visitors, err := bridge.PredictVisitors(ctx, testPayload())

		require.NoError(t, err)
		assert.Equal(t, 38501, visitors)
	})

	t.Run("서버 오류 응답은 non_zero_exit 로 분류한다", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "모델 로드 실패"}`))
		}))
		defer server.Close()

		bridge := NewHTTPBridge(server.URL, zap.NewNop().Sugar())

		_, err := bridge.PredictVisitors(ctx, testPayload())

		var bridgeErr *model.BridgeError
		require.ErrorAs(t, err, &bridgeErr)
		assert.Equal(t, model.BridgeNonZeroExit, bridgeErr.Kind)
		assert.Contains(t, bridgeErr.Stderr, "모델 로드 실패")
	})

	t.Run("빈 응답은 empty_output 으로 분류한다", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		bridge := NewHTTPBridge(server.URL, zap.NewNop().Sugar())

		_, err := bridge.PredictVisitors(ctx, testPayload())

		var bridgeErr *model.BridgeError
		require.ErrorAs(t, err, &bridgeErr)
		assert.Equal(t, model.BridgeEmptyOutput, bridgeErr.Kind)
	})

	t.Run("필수 필드 누락은 malformed_output 으로 분류한다", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"visitors": 100}`))
		}))
		defer server.Close()

		bridge := NewHTTPBridge(server.URL, zap.NewNop().Sugar())

		_, err := bridge.PredictVisitors(ctx, testPayload())

		var bridgeErr *model.BridgeError
		require.ErrorAs(t, err, &bridgeErr)
		assert.Equal(t, model.BridgeMalformedOutput, bridgeErr.Kind)
	})

	t.Run("연결 불가 시 대상 주소를 담은 전송 오류를 반환한다", func(t *testing.T) {
		// 즉시 닫아 연결 거부를 유도한다
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		endpoint := server.URL
		server.Close()

		bridge := NewHTTPBridge(endpoint, zap.NewNop().Sugar())

		_, err := bridge.PredictVisitors(ctx, testPayload())

		var transportErr *model.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, endpoint, transportErr.Target)
		assert.Contains(t, transportErr.Error(), endpoint)
	})
}
