package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/usecase"
)

// ConsultationHandler 는 AI 축제 컨설팅 API 의 핸들러
type ConsultationHandler struct {
	consultationUseCase usecase.ConsultationUseCase
	logger              *zap.SugaredLogger
}

// NewConsultationHandler 는 새 ConsultationHandler 인스턴스를 생성한다
func NewConsultationHandler(consultationUseCase usecase.ConsultationUseCase, logger *zap.SugaredLogger) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUseCase: consultationUseCase,
		logger:              logger,
	}
}

// PostConsultation 은 축제 컨설팅을 생성하는 엔드포인트
// POST /api/consultation
func (h *ConsultationHandler) PostConsultation(c *gin.Context) {
	var req model.FestivalConsultingRequest

	// 요청 바디 바인딩
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.FailureResult("요청 형식이 올바르지 않습니다."))
		return
	}

	// 유스케이스 호출. 상세 검증은 요청 빌더가 수행한다
	results, err := h.consultationUseCase.GetFestivalConsultation(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// 성공 응답. data 는 festivalPlanning 키로 감싸서 반환한다
	c.JSON(http.StatusOK, model.SuccessResult(results))
}

// respondError 는 태그된 오류를 HTTP 상태와 한국어 사용자 메시지로 번역한다
func (h *ConsultationHandler) respondError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, model.FailureResult(validationErr.Message))
		return
	}

	var transportErr *model.TransportError
	if errors.As(err, &transportErr) {
		c.JSON(http.StatusBadGateway, model.FailureResult(transportErr.Error()))
		return
	}

	var generationErr *model.GenerationError
	if errors.As(err, &generationErr) {
		h.logger.Errorw("컨설팅 생성 실패", "reason", generationErr.Reason, "error", err)
		c.JSON(http.StatusInternalServerError, model.FailureResult("축제 컨설팅 생성에 실패했습니다. 잠시 후 다시 시도해주세요."))
		return
	}

	h.logger.Errorw("컨설팅 처리 중 오류", "error", err)
	c.JSON(http.StatusInternalServerError, model.FailureResult("요청 처리 중 오류가 발생했습니다."))
}
