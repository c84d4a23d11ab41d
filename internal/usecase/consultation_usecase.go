package usecase

import (
	"context"

	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/helper"
	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/domain/repository"
	"FestaAI-Backend/internal/domain/service"
)

// ConsultationUseCase 는 AI 축제 컨설팅 플로우를 담당한다
type ConsultationUseCase interface {
	// GetFestivalConsultation 은 폼 요청을 정규화하고 추정→생성→검증→기본값 채움
	// 파이프라인을 거쳐 컨설팅 결과를 반환한다.
	GetFestivalConsultation(ctx context.Context, req *model.FestivalConsultingRequest) (*model.FestivalConsultationResults, error)
}

// consultationUseCaseImpl 은 ConsultationUseCase 의 구현
type consultationUseCaseImpl struct {
	weatherProvider service.WeatherProvider
	trafficProvider service.TrafficProvider
	planRepository  repository.PlanGenerationRepository
	logger          *zap.SugaredLogger
}

// NewConsultationUseCase 는 새 ConsultationUseCase 인스턴스를 생성한다
func NewConsultationUseCase(
	weatherProvider service.WeatherProvider,
	trafficProvider service.TrafficProvider,
	planRepository repository.PlanGenerationRepository,
	logger *zap.SugaredLogger,
) ConsultationUseCase {
	return &consultationUseCaseImpl{
		weatherProvider: weatherProvider,
		trafficProvider: trafficProvider,
		planRepository:  planRepository,
		logger:          logger,
	}
}

// GetFestivalConsultation 은 컨설팅 요청 하나를 끝까지 처리한다
func (u *consultationUseCaseImpl) GetFestivalConsultation(ctx context.Context, req *model.FestivalConsultingRequest) (*model.FestivalConsultationResults, error) {
	flow := newRequestFlow("consultation", u.logger)

	input, err := helper.BuildPlanningInput(req)
	if err != nil {
		return nil, flow.fail(err)
	}

	u.logger.Infow("🚀 축제 컨설팅 시작", "flow_id", flow.id, "region", input.Region, "date", input.Date)

	// 추정기는 생성 호출 전에 순차 실행되고, 출력은 생성 컨텍스트에 병합된다
	flow.transition(FlowEstimating)
	weather := u.weatherProvider.EstimateWeather(input.Date)
	if weather == nil || len(weather.HourlyForecasts) == 0 {
		// 요청 빌더 검증을 통과한 날짜가 추정기에서 거부되는 경우의 방어선
		reason := "날씨 추정 결과가 비어 있습니다."
		if weather != nil {
			reason = weather.DailySummary
		}
		return nil, flow.fail(&model.EstimationError{Stage: "weather",
			Err: &model.ValidationError{Field: "date", Message: reason}})
	}
	trafficScore := u.trafficProvider.EstimateTraffic(input.Date, input.Region)

	flow.transition(FlowGenerating)
	output, err := u.planRepository.GeneratePlan(ctx, input, weather, trafficScore)
	if err != nil {
		return nil, flow.fail(err)
	}

	// 스키마 검증을 통과하고도 비어 있는 필드에 대한 방어적 기본값 채움.
	// 호출자는 누락된 필수 필드를 절대 관찰하지 않는다.
	flow.transition(FlowValidated)
	applyPlanDefaults(output)

	flow.transition(FlowDone)
	u.logger.Infow("🎉 축제 컨설팅 완료", "flow_id", flow.id, "traffic_score", output.TrafficCongestionScore)

	return &model.FestivalConsultationResults{FestivalPlanning: output}, nil
}

// applyPlanDefaults 는 부분 채움 응답이 그대로 노출되지 않도록 안전한 대체값을 넣는다
func applyPlanDefaults(output *model.FestivalPlanningOutput) {
	if output.ThemeSuggestion == "" {
		output.ThemeSuggestion = "테마 제안 생성 중 오류 발생"
	}
	if output.DateRecommendation == "" {
		output.DateRecommendation = "날짜 추천 생성 중 오류 발생"
	}
	if output.PromotionStrategy == "" {
		output.PromotionStrategy = "홍보 전략 생성 중 오류 발생"
	}
	if output.DailyWeatherSummary == "" {
		output.DailyWeatherSummary = "날씨 요약 정보 없음"
	}
	if output.HourlyWeatherForecasts == nil {
		output.HourlyWeatherForecasts = []model.HourlyWeatherForecast{}
	}
	if output.TrafficCongestionScore < 1 || output.TrafficCongestionScore > 10 {
		output.TrafficCongestionScore = 5 // 중간값 대체
	}
}
