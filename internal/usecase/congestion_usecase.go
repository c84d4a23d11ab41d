package usecase

import (
	"context"

	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/helper"
	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/domain/repository"
	"FestaAI-Backend/internal/domain/service"
)

// 혼잡도 예측 변형. 배포당 하나만 활성화되며 동시에 쓰이지 않는다.
const (
	CongestionModeTabular = "tabular" // 외부 예측기 위임
	CongestionModeRich    = "rich"    // 포스터/슬로건 포함 LLM 추정
)

// CongestionUseCase 는 방문객 예측 플로우를 담당한다
type CongestionUseCase interface {
	// GetCongestionForecast 는 활성 변형에 따라 외부 예측기 또는 생성 플로우로
	// 방문객 수 예측을 수행한다.
	GetCongestionForecast(ctx context.Context, req *model.CongestionForecastRequest) (*model.CongestionForecastResults, error)
}

// congestionUseCaseImpl 은 CongestionUseCase 의 구현
type congestionUseCaseImpl struct {
	mode               string
	populationProvider service.PopulationProvider
	predictionRepo     repository.VisitorPredictionRepository
	generationRepo     repository.CongestionGenerationRepository
	logger             *zap.SugaredLogger
}

// NewCongestionUseCase 는 새 CongestionUseCase 인스턴스를 생성한다.
// mode 가 rich 가 아니면 tabular 로 동작한다.
func NewCongestionUseCase(
	mode string,
	populationProvider service.PopulationProvider,
	predictionRepo repository.VisitorPredictionRepository,
	generationRepo repository.CongestionGenerationRepository,
	logger *zap.SugaredLogger,
) CongestionUseCase {
	if mode != CongestionModeRich {
		mode = CongestionModeTabular
	}
	return &congestionUseCaseImpl{
		mode:               mode,
		populationProvider: populationProvider,
		predictionRepo:     predictionRepo,
		generationRepo:     generationRepo,
		logger:             logger,
	}
}

// GetCongestionForecast 는 혼잡도 예측 요청 하나를 끝까지 처리한다
func (u *congestionUseCaseImpl) GetCongestionForecast(ctx context.Context, req *model.CongestionForecastRequest) (*model.CongestionForecastResults, error) {
	if u.mode == CongestionModeRich {
		return u.forecastRich(ctx, req)
	}
	return u.forecastTabular(ctx, req)
}

// forecastTabular 는 외부 예측기에 위임한다.
// 요청마다 정확히 한 번 호출하고 재시도하지 않는다.
func (u *congestionUseCaseImpl) forecastTabular(ctx context.Context, req *model.CongestionForecastRequest) (*model.CongestionForecastResults, error) {
	flow := newRequestFlow("congestion_tabular", u.logger)

	payload, err := helper.BuildPredictionPayload(req)
	if err != nil {
		return nil, flow.fail(err)
	}

	u.logger.Infow("🚀 방문객 예측 시작 (tabular)", "flow_id", flow.id,
		"region", payload.RegionName, "municipality", payload.MunicipalityName)

	// 지역 특성은 외부 모델이 학습 데이터로 반영하므로 추정 단계는 비어 있다
	flow.transition(FlowEstimating)

	flow.transition(FlowGenerating)
	visitors, err := u.predictionRepo.PredictVisitors(ctx, payload)
	if err != nil {
		return nil, flow.fail(err)
	}

	flow.transition(FlowValidated)
	output := &model.CongestionForecastOutput{TotalExpectedVisitors: visitors}

	flow.transition(FlowDone)
	u.logger.Infow("🎉 방문객 예측 완료 (tabular)", "flow_id", flow.id, "total_visitors", visitors)

	return &model.CongestionForecastResults{CongestionForecast: output}, nil
}

// forecastRich 는 인구 추정치를 컨텍스트에 더해 생성 플로우로 예측한다
func (u *congestionUseCaseImpl) forecastRich(ctx context.Context, req *model.CongestionForecastRequest) (*model.CongestionForecastResults, error) {
	flow := newRequestFlow("congestion_rich", u.logger)

	input, err := helper.BuildRichInput(req)
	if err != nil {
		return nil, flow.fail(err)
	}

	u.logger.Infow("🚀 방문객 예측 시작 (rich)", "flow_id", flow.id,
		"region", input.RegionName, "municipality", input.MunicipalityName)

	flow.transition(FlowEstimating)
	population := u.populationProvider.EstimatePopulation(input.RegionName + " " + input.MunicipalityName)

	flow.transition(FlowGenerating)
	output, err := u.generationRepo.GenerateForecast(ctx, input, population)
	if err != nil {
		return nil, flow.fail(err)
	}

	flow.transition(FlowValidated)
	if output.TotalExpectedVisitors < 0 {
		output.TotalExpectedVisitors = 0
	}

	flow.transition(FlowDone)
	u.logger.Infow("🎉 방문객 예측 완료 (rich)", "flow_id", flow.id,
		"total_visitors", output.TotalExpectedVisitors)

	return &model.CongestionForecastResults{CongestionForecast: output}, nil
}
