package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
)

// fakePredictionRepo 는 외부 예측기 브리지를 흉내 낸다
type fakePredictionRepo struct {
	visitors   int
	err        error
	gotPayload *model.PredictionPayload
}

func (f *fakePredictionRepo) PredictVisitors(ctx context.Context, payload *model.PredictionPayload) (int, error) {
	f.gotPayload = payload
	if f.err != nil {
		return 0, f.err
	}
	return f.visitors, nil
}

// fakeCongestionRepo 는 rich 변형 생성 플로우를 흉내 낸다
type fakeCongestionRepo struct {
	output        *model.CongestionForecastOutput
	err           error
	gotInput      *model.RichCongestionInput
	gotPopulation int
}

func (f *fakeCongestionRepo) GenerateForecast(ctx context.Context, input *model.RichCongestionInput, population int) (*model.CongestionForecastOutput, error) {
	f.gotInput = input
	f.gotPopulation = population
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

// fakePopulationProvider 는 고정 인구 추정치를 반환한다
type fakePopulationProvider struct {
	population int
}

func (f *fakePopulationProvider) EstimatePopulation(area string) int {
	return f.population
}

func validForecastRequest() *model.CongestionForecastRequest {
	return &model.CongestionForecastRequest{
		Region:       "부산",
		Municipality: "해운대구",
		Date:         "2026-10-09",
		FestivalType: "문화관광",
		Budget:       "1,500",
	}
}

func TestCongestionUseCase_Tabular(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	t.Run("외부 예측기 결과를 그대로 반환한다", func(t *testing.T) {
		predictionRepo := &fakePredictionRepo{visitors: 42000}
		uc := NewCongestionUseCase(CongestionModeTabular, &fakePopulationProvider{}, predictionRepo, &fakeCongestionRepo{}, logger)

		results, err := uc.GetCongestionForecast(ctx, validForecastRequest())

		require.NoError(t, err)
		assert.Equal(t, 42000, results.CongestionForecast.TotalExpectedVisitors)
		// 와이어 페이로드는 한국어 라벨로 채워진다
		require.NotNil(t, predictionRepo.gotPayload)
		assert.Equal(t, "부산광역시", predictionRepo.gotPayload.RegionName)
		assert.Equal(t, "중동", predictionRepo.gotPayload.DongName)
	})

	t.Run("브리지 실패는 분류를 유지한 채 전파된다", func(t *testing.T) {
		bridgeErr := model.NewBridgeError(model.BridgeNonZeroExit, "traceback", nil)
		uc := NewCongestionUseCase(CongestionModeTabular, &fakePopulationProvider{},
			&fakePredictionRepo{err: bridgeErr}, &fakeCongestionRepo{}, logger)

		_, err := uc.GetCongestionForecast(ctx, validForecastRequest())

		var gotErr *model.BridgeError
		require.ErrorAs(t, err, &gotErr)
		assert.Equal(t, model.BridgeNonZeroExit, gotErr.Kind)
	})

	t.Run("허용되지 않은 축제 종류는 예측기 호출 전에 거부된다", func(t *testing.T) {
		predictionRepo := &fakePredictionRepo{visitors: 1}
		uc := NewCongestionUseCase(CongestionModeTabular, &fakePopulationProvider{}, predictionRepo, &fakeCongestionRepo{}, logger)

		req := validForecastRequest()
		req.FestivalType = "우주축제"
		_, err := uc.GetCongestionForecast(ctx, req)

		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Nil(t, predictionRepo.gotPayload)
	})

	t.Run("알 수 없는 모드는 tabular 로 동작한다", func(t *testing.T) {
		predictionRepo := &fakePredictionRepo{visitors: 100}
		uc := NewCongestionUseCase("unknown-mode", &fakePopulationProvider{}, predictionRepo, &fakeCongestionRepo{}, logger)

		results, err := uc.GetCongestionForecast(ctx, validForecastRequest())

		require.NoError(t, err)
		assert.Equal(t, 100, results.CongestionForecast.TotalExpectedVisitors)
	})
}

func TestCongestionUseCase_Rich(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	richRequest := func() *model.CongestionForecastRequest {
		req := validForecastRequest()
		req.Duration = 3
		req.Frequency = 1
		req.Slogan = "바다와 함께하는 가을 축제"
		return req
	}

	t.Run("인구 추정치가 생성 컨텍스트로 전달된다", func(t *testing.T) {
		posterScore := 85
		generationRepo := &fakeCongestionRepo{output: &model.CongestionForecastOutput{
			TotalExpectedVisitors: 52000,
			PosterScore:           &posterScore,
		}}
		uc := NewCongestionUseCase(CongestionModeRich, &fakePopulationProvider{population: 400000}, &fakePredictionRepo{}, generationRepo, logger)

		results, err := uc.GetCongestionForecast(ctx, richRequest())

		require.NoError(t, err)
		assert.Equal(t, 52000, results.CongestionForecast.TotalExpectedVisitors)
		assert.Equal(t, 400000, generationRepo.gotPopulation)
		require.NotNil(t, generationRepo.gotInput)
		assert.Equal(t, "부산광역시", generationRepo.gotInput.RegionName)
	})

	t.Run("음수 방문객 수는 0으로 보정된다", func(t *testing.T) {
		generationRepo := &fakeCongestionRepo{output: &model.CongestionForecastOutput{TotalExpectedVisitors: -500}}
		uc := NewCongestionUseCase(CongestionModeRich, &fakePopulationProvider{population: 50000}, &fakePredictionRepo{}, generationRepo, logger)

		results, err := uc.GetCongestionForecast(ctx, richRequest())

		require.NoError(t, err)
		assert.Equal(t, 0, results.CongestionForecast.TotalExpectedVisitors)
	})

	t.Run("rich 변형은 슬로건을 요구한다", func(t *testing.T) {
		generationRepo := &fakeCongestionRepo{output: &model.CongestionForecastOutput{}}
		uc := NewCongestionUseCase(CongestionModeRich, &fakePopulationProvider{population: 50000}, &fakePredictionRepo{}, generationRepo, logger)

		req := richRequest()
		req.Slogan = ""
		_, err := uc.GetCongestionForecast(ctx, req)

		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "slogan", validationErr.Field)
	})
}
