package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/usecase"
)

// CongestionHandler 는 방문객 혼잡도 예측 API 의 핸들러
type CongestionHandler struct {
	congestionUseCase usecase.CongestionUseCase
	logger            *zap.SugaredLogger
}

// NewCongestionHandler 는 새 CongestionHandler 인스턴스를 생성한다
func NewCongestionHandler(congestionUseCase usecase.CongestionUseCase, logger *zap.SugaredLogger) *CongestionHandler {
	return &CongestionHandler{
		congestionUseCase: congestionUseCase,
		logger:            logger,
	}
}

// PostCongestionForecast 는 방문객 수 예측을 생성하는 엔드포인트
// POST /api/congestion-forecast
func (h *CongestionHandler) PostCongestionForecast(c *gin.Context) {
	var req model.CongestionForecastRequest

	// 요청 바디 바인딩
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.FailureResult("요청 형식이 올바르지 않습니다."))
		return
	}

	results, err := h.congestionUseCase.GetCongestionForecast(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// 성공 응답. data 는 congestionForecast 키로 감싸서 반환한다
	c.JSON(http.StatusOK, model.SuccessResult(results))
}

// respondError 는 태그된 오류를 HTTP 상태와 한국어 사용자 메시지로 번역한다.
// 브리지와 전송 오류는 외부 의존성 실패이므로 502 로 구분한다.
func (h *CongestionHandler) respondError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, model.FailureResult(validationErr.Message))
		return
	}

	var bridgeErr *model.BridgeError
	if errors.As(err, &bridgeErr) {
		// stderr 발췌는 운영 로그로만 남기고 사용자에게는 분류별 메시지만 반환한다
		h.logger.Errorw("예측 브리지 실패", "kind", bridgeErr.Kind, "stderr", bridgeErr.Stderr, "error", bridgeErr.Err)
		c.JSON(http.StatusBadGateway, model.FailureResult(bridgeErr.Error()))
		return
	}

	var transportErr *model.TransportError
	if errors.As(err, &transportErr) {
		c.JSON(http.StatusBadGateway, model.FailureResult(transportErr.Error()))
		return
	}

	var generationErr *model.GenerationError
	if errors.As(err, &generationErr) {
		h.logger.Errorw("혼잡도 예측 생성 실패", "reason", generationErr.Reason, "error", err)
		c.JSON(http.StatusInternalServerError, model.FailureResult("방문객 수 예측에 실패했습니다. 잠시 후 다시 시도해주세요."))
		return
	}

	h.logger.Errorw("혼잡도 예측 처리 중 오류", "error", err)
	c.JSON(http.StatusInternalServerError, model.FailureResult("요청 처리 중 오류가 발생했습니다."))
}
