package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
)

// stubCongestionUseCase 는 준비된 결과 또는 오류를 반환한다
type stubCongestionUseCase struct {
	results *model.CongestionForecastResults
	err     error
}

func (s *stubCongestionUseCase) GetCongestionForecast(ctx context.Context, req *model.CongestionForecastRequest) (*model.CongestionForecastResults, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func setupCongestionRouter(uc *stubCongestionUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCongestionHandler(uc, zap.NewNop().Sugar())
	router.POST("/api/congestion-forecast", h.PostCongestionForecast)
	return router
}

func TestCongestionHandler_PostCongestionForecast(t *testing.T) {
	validBody := `{"region":"부산","municipality":"해운대구","date":"2026-10-09","festival_type":"문화관광","budget":"1,500"}`

	t.Run("성공 시 200과 congestionForecast 로 감싼 결과를 반환한다", func(t *testing.T) {
		uc := &stubCongestionUseCase{results: &model.CongestionForecastResults{
			CongestionForecast: &model.CongestionForecastOutput{TotalExpectedVisitors: 42000},
		}}
		router := setupCongestionRouter(uc)

		recorder := postJSON(router, "/api/congestion-forecast", validBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var result model.ActionResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.True(t, result.Success)

		// data 바로 아래에 congestionForecast 키가 있어야 한다
		data, err := json.Marshal(result.Data)
		require.NoError(t, err)
		var wrapped map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &wrapped))
		require.Contains(t, wrapped, "congestionForecast")

		var forecast model.CongestionForecastOutput
		require.NoError(t, json.Unmarshal(wrapped["congestionForecast"], &forecast))
		assert.Equal(t, 42000, forecast.TotalExpectedVisitors)
	})

	t.Run("브리지 실패는 502와 분류별 메시지를 반환한다", func(t *testing.T) {
		uc := &stubCongestionUseCase{err: model.NewBridgeError(model.BridgeNonZeroExit, "Traceback: model not found", nil)}
		router := setupCongestionRouter(uc)

		recorder := postJSON(router, "/api/congestion-forecast", validBody)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		var result model.ActionResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Equal(t, "예측 스크립트 실행에 실패했습니다.", result.Error)
		// stderr 발췌는 사용자 응답에 노출되지 않는다
		assert.NotContains(t, recorder.Body.String(), "Traceback")
	})

	t.Run("전송 오류는 502와 대상 주소를 반환한다", func(t *testing.T) {
		uc := &stubCongestionUseCase{err: &model.TransportError{Target: "http://localhost:5000/predict"}}
		router := setupCongestionRouter(uc)

		recorder := postJSON(router, "/api/congestion-forecast", validBody)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		var result model.ActionResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Contains(t, result.Error, "http://localhost:5000/predict")
	})

	t.Run("검증 오류는 400을 반환한다", func(t *testing.T) {
		uc := &stubCongestionUseCase{err: &model.ValidationError{Field: "festival_type", Message: "축제 종류를 선택해주세요."}}
		router := setupCongestionRouter(uc)

		recorder := postJSON(router, "/api/congestion-forecast", validBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var result model.ActionResult
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		assert.Equal(t, "축제 종류를 선택해주세요.", result.Error)
	})

	t.Run("바인딩 불가 바디는 400을 반환한다", func(t *testing.T) {
		router := setupCongestionRouter(&stubCongestionUseCase{})

		recorder := postJSON(router, "/api/congestion-forecast", `{not json}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
