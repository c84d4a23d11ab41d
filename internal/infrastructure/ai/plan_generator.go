package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/domain/repository"
)

// geminiPlanRepository 는 Gemini 구조화 생성으로 PlanGenerationRepository 를 구현한다
type geminiPlanRepository struct {
	client *GeminiClient
	logger *zap.SugaredLogger
}

// NewGeminiPlanRepository 는 새 geminiPlanRepository 인스턴스를 생성한다
func NewGeminiPlanRepository(client *GeminiClient, logger *zap.SugaredLogger) repository.PlanGenerationRepository {
	return &geminiPlanRepository{client: client, logger: logger}
}

// planPayload 는 모델 응답 파싱용 중간 구조체.
// 누락 필드를 구분하기 위해 포인터를 사용하고, 기본값 채움은 플로우 쪽에서 수행한다.
type planPayload struct {
	ThemeSuggestion        *string                       `json:"themeSuggestion"`
	DateRecommendation     *string                       `json:"dateRecommendation"`
	PromotionStrategy      *string                       `json:"promotionStrategy"`
	DailyWeatherSummary    *string                       `json:"dailyWeatherSummary"`
	HourlyWeatherForecasts []model.HourlyWeatherForecast `json:"hourlyWeatherForecasts"`
	TrafficCongestionScore *int                          `json:"trafficCongestionScore"`
}

// GeneratePlan 은 추정기 출력이 포함된 컨텍스트로 축제 컨설팅 결과를 생성한다
func (g *geminiPlanRepository) GeneratePlan(ctx context.Context, input *model.FestivalPlanningInput, weather *model.DailyWeather, trafficScore int) (*model.FestivalPlanningOutput, error) {
	prompt := g.buildPlanPrompt(input, weather, trafficScore)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	g.logger.Infow("🤖 축제 컨설팅 생성 시작", "region", input.Region, "date", input.Date)

	text, err := g.client.GenerateStructured(ctx, contents, planOutputSchema())
	if err != nil {
		return nil, &model.GenerationError{Reason: "모델이 출력을 반환하지 않았습니다", Err: err}
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		g.logger.Errorw("모델 응답 파싱 실패", "error", err, "excerpt", excerpt(text, 200))
		return nil, &model.GenerationError{Reason: "모델 출력이 선언된 스키마와 일치하지 않습니다", Err: err}
	}
	if payload.ThemeSuggestion == nil && payload.DateRecommendation == nil &&
		payload.PromotionStrategy == nil && payload.TrafficCongestionScore == nil {
		return nil, &model.GenerationError{Reason: "모델이 출력을 반환하지 않았습니다"}
	}

	output := &model.FestivalPlanningOutput{
		HourlyWeatherForecasts: payload.HourlyWeatherForecasts,
	}
	if payload.ThemeSuggestion != nil {
		output.ThemeSuggestion = *payload.ThemeSuggestion
	}
	if payload.DateRecommendation != nil {
		output.DateRecommendation = *payload.DateRecommendation
	}
	if payload.PromotionStrategy != nil {
		output.PromotionStrategy = *payload.PromotionStrategy
	}
	if payload.DailyWeatherSummary != nil {
		output.DailyWeatherSummary = *payload.DailyWeatherSummary
	}
	if payload.TrafficCongestionScore != nil {
		output.TrafficCongestionScore = *payload.TrafficCongestionScore
	}

	g.logger.Infow("✅ 축제 컨설팅 생성 완료", "region", input.Region)
	return output, nil
}

// buildPlanPrompt 는 사전 계산된 날씨/교통 추정치를 포함한 생성 프롬프트를 구성한다
func (g *geminiPlanRepository) buildPlanPrompt(input *model.FestivalPlanningInput, weather *model.DailyWeather, trafficScore int) string {
	var hourly strings.Builder
	for _, f := range weather.HourlyForecasts {
		fmt.Fprintf(&hourly, "- %s: %s, %.1f°C, 강수 확률 %d%%\n",
			f.Time, f.Condition, f.Temperature, f.PrecipitationChance)
	}

	return fmt.Sprintf(`당신은 AI 기반 지역 축제 기획 전문가입니다. 제공된 지역 데이터와 제약 조건을 바탕으로
축제 테마, 개최 날짜, 홍보 전략에 대한 최선의 제안을 한국어로 작성해주세요.

[기본 정보]
- 개최 지역: %s
- 희망 날짜: %s
- 예산: %.0f원
- 지역 데이터 요약: %s

[희망 날짜의 날씨 예보 (시뮬레이션)]
- 일일 요약: %s
- 시간대별 예보:
%s
[희망 날짜의 교통 혼잡도 (시뮬레이션)]
- 혼잡도 점수: %d/10 (1: 원활, 10: 매우 혼잡)

위 정보를 모두 고려하여:
1. 지역 주민의 호응을 얻을 수 있고 예보된 날씨에 적합한 축제 테마를 제안하세요.
2. 최적 개최 날짜를 추천하세요. 날씨나 교통이 불리하면 조정된 날짜를 제안하고 이유를
   간단히 밝히세요 (예: "우천 예상으로 하루 연기 제안", "교통 혼잡 심각하여 주중 제안").
3. 가장 효과적인 채널과 전술을 활용한 홍보 전략을 제시하세요.

'dailyWeatherSummary'에는 위 일일 요약을, 'hourlyWeatherForecasts'에는 위 시간대별 예보를,
'trafficCongestionScore'에는 위 혼잡도 점수를 그대로 반영하세요.
모든 필드를 채운 JSON 으로만 응답하세요.`,
		input.Region, input.Date, input.Budget, input.LocalData,
		weather.DailySummary, hourly.String(), trafficScore)
}

// planOutputSchema 는 축제 컨설팅 결과의 선언 스키마
func planOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"themeSuggestion":     {Type: genai.TypeString, Description: "AI 추천 축제 테마 (한국어)"},
			"dateRecommendation":  {Type: genai.TypeString, Description: "최적 개최 날짜 추천과 근거 (한국어)"},
			"promotionStrategy":   {Type: genai.TypeString, Description: "참여 극대화를 위한 홍보 전략 (한국어)"},
			"dailyWeatherSummary": {Type: genai.TypeString, Description: "추천 날짜의 전반적인 날씨 요약 (한국어)"},
			"hourlyWeatherForecasts": {
				Type:        genai.TypeArray,
				Description: "추천 날짜의 시간대별 날씨 예보 (3시간 간격 8건)",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"time":        {Type: genai.TypeString, Description: "예보 시간 (HH:mm)"},
						"condition":   {Type: genai.TypeString, Description: "날씨 상태 (한국어)"},
						"temperature": {Type: genai.TypeNumber, Description: "섭씨 온도"},
						"precipitationChance": {
							Type:        genai.TypeInteger,
							Description: "강수 확률 (0-100%)",
							Minimum:     genai.Ptr(0.0),
							Maximum:     genai.Ptr(100.0),
						},
					},
					Required: []string{"time", "condition", "temperature", "precipitationChance"},
				},
			},
			"trafficCongestionScore": {
				Type:        genai.TypeInteger,
				Description: "교통 혼잡도 점수 (1: 원활, 10: 매우 혼잡)",
				Minimum:     genai.Ptr(1.0),
				Maximum:     genai.Ptr(10.0),
			},
		},
		Required: []string{
			"themeSuggestion", "dateRecommendation", "promotionStrategy",
			"dailyWeatherSummary", "hourlyWeatherForecasts", "trafficCongestionScore",
		},
	}
}

// excerpt 는 운영 로그용으로 문자열을 상한 길이로 자른다
func excerpt(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
