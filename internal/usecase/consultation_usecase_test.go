package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
)

// fakeWeatherProvider 는 고정된 날씨를 반환한다
type fakeWeatherProvider struct {
	weather *model.DailyWeather
}

func (f *fakeWeatherProvider) EstimateWeather(date string) *model.DailyWeather {
	return f.weather
}

// fakeTrafficProvider 는 고정된 혼잡도 점수를 반환한다
type fakeTrafficProvider struct {
	score int
}

func (f *fakeTrafficProvider) EstimateTraffic(date, region string) int {
	return f.score
}

// fakePlanRepo 는 생성 호출을 기록하고 준비된 결과를 반환한다
type fakePlanRepo struct {
	output     *model.FestivalPlanningOutput
	err        error
	gotInput   *model.FestivalPlanningInput
	gotWeather *model.DailyWeather
	gotTraffic int
}

func (f *fakePlanRepo) GeneratePlan(ctx context.Context, input *model.FestivalPlanningInput, weather *model.DailyWeather, trafficScore int) (*model.FestivalPlanningOutput, error) {
	f.gotInput = input
	f.gotWeather = weather
	f.gotTraffic = trafficScore
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func testWeather() *model.DailyWeather {
	return &model.DailyWeather{
		DailySummary: "맑고 쾌청한 날씨가 예상됩니다. (예측 정확도 80% 수준)",
		HourlyForecasts: []model.HourlyWeatherForecast{
			{Time: "00:00", Condition: "대체로 맑음 (밤)", Temperature: 16.2, PrecipitationChance: 10},
			{Time: "12:00", Condition: "맑음", Temperature: 22.5, PrecipitationChance: 5},
		},
	}
}

func validConsultingRequest() *model.FestivalConsultingRequest {
	return &model.FestivalConsultingRequest{
		Region:       "서울",
		Municipality: "강남구",
		Date:         "2026-10-09",
		Budget:       "1,000",
	}
}

func TestConsultationUseCase_GetFestivalConsultation(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	t.Run("추정기 출력이 생성 컨텍스트로 전달된다", func(t *testing.T) {
		planRepo := &fakePlanRepo{output: &model.FestivalPlanningOutput{
			ThemeSuggestion:        "가을 한강 미식 축제",
			DateRecommendation:     "10월 둘째 주 주말 개최를 추천합니다.",
			PromotionStrategy:      "SNS 해시태그 캠페인 중심 홍보",
			TrafficCongestionScore: 7,
		}}
		uc := NewConsultationUseCase(&fakeWeatherProvider{weather: testWeather()}, &fakeTrafficProvider{score: 7}, planRepo, logger)

		results, err := uc.GetFestivalConsultation(ctx, validConsultingRequest())

		require.NoError(t, err)
		require.NotNil(t, results.FestivalPlanning)
		assert.Equal(t, "서울특별시 강남구", planRepo.gotInput.Region)
		assert.Equal(t, 7, planRepo.gotTraffic)
		assert.Equal(t, testWeather().DailySummary, planRepo.gotWeather.DailySummary)
		assert.Equal(t, "가을 한강 미식 축제", results.FestivalPlanning.ThemeSuggestion)
	})

	t.Run("비어 있는 생성 필드는 기본값으로 채워진다", func(t *testing.T) {
		planRepo := &fakePlanRepo{output: &model.FestivalPlanningOutput{}}
		uc := NewConsultationUseCase(&fakeWeatherProvider{weather: testWeather()}, &fakeTrafficProvider{score: 4}, planRepo, logger)

		results, err := uc.GetFestivalConsultation(ctx, validConsultingRequest())

		require.NoError(t, err)
		planning := results.FestivalPlanning
		assert.Equal(t, "테마 제안 생성 중 오류 발생", planning.ThemeSuggestion)
		assert.Equal(t, "날짜 추천 생성 중 오류 발생", planning.DateRecommendation)
		assert.Equal(t, "홍보 전략 생성 중 오류 발생", planning.PromotionStrategy)
		assert.Equal(t, "날씨 요약 정보 없음", planning.DailyWeatherSummary)
		assert.NotNil(t, planning.HourlyWeatherForecasts)
		// 범위를 벗어난 혼잡도 점수는 중간값 5로 대체된다
		assert.Equal(t, 5, planning.TrafficCongestionScore)
	})

	t.Run("범위 밖 혼잡도 점수는 5로 보정된다", func(t *testing.T) {
		planRepo := &fakePlanRepo{output: &model.FestivalPlanningOutput{TrafficCongestionScore: 15}}
		uc := NewConsultationUseCase(&fakeWeatherProvider{weather: testWeather()}, &fakeTrafficProvider{score: 4}, planRepo, logger)

		results, err := uc.GetFestivalConsultation(ctx, validConsultingRequest())

		require.NoError(t, err)
		assert.Equal(t, 5, results.FestivalPlanning.TrafficCongestionScore)
	})

	t.Run("잘못된 날짜는 검증 오류로 거부된다", func(t *testing.T) {
		uc := NewConsultationUseCase(&fakeWeatherProvider{weather: testWeather()}, &fakeTrafficProvider{score: 4}, &fakePlanRepo{}, logger)

		req := validConsultingRequest()
		req.Date = "2026/10/09"
		_, err := uc.GetFestivalConsultation(ctx, req)

		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "date", validationErr.Field)
	})

	t.Run("생성 실패는 그대로 전파된다", func(t *testing.T) {
		genErr := &model.GenerationError{Reason: "응답 없음"}
		uc := NewConsultationUseCase(&fakeWeatherProvider{weather: testWeather()}, &fakeTrafficProvider{score: 4},
			&fakePlanRepo{err: genErr}, logger)

		_, err := uc.GetFestivalConsultation(ctx, validConsultingRequest())

		var generationErr *model.GenerationError
		require.ErrorAs(t, err, &generationErr)
		assert.Equal(t, "응답 없음", generationErr.Reason)
	})

	t.Run("빈 날씨 추정 결과는 추정 오류가 된다", func(t *testing.T) {
		empty := &model.DailyWeather{DailySummary: "유효하지 않은 날짜 형식입니다.", HourlyForecasts: []model.HourlyWeatherForecast{}}
		uc := NewConsultationUseCase(&fakeWeatherProvider{weather: empty}, &fakeTrafficProvider{score: 4}, &fakePlanRepo{}, logger)

		_, err := uc.GetFestivalConsultation(ctx, validConsultingRequest())

		var estimationErr *model.EstimationError
		require.ErrorAs(t, err, &estimationErr)
		assert.Equal(t, "weather", estimationErr.Stage)
		assert.False(t, errors.Is(err, context.Canceled))
	})
}
