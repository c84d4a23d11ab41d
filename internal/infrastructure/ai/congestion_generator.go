package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/domain/repository"
)

// geminiCongestionRepository 는 rich 변형 방문객 예측을 Gemini 로 수행한다
type geminiCongestionRepository struct {
	client *GeminiClient
	logger *zap.SugaredLogger
}

// NewGeminiCongestionRepository 는 새 geminiCongestionRepository 인스턴스를 생성한다
func NewGeminiCongestionRepository(client *GeminiClient, logger *zap.SugaredLogger) repository.CongestionGenerationRepository {
	return &geminiCongestionRepository{client: client, logger: logger}
}

// congestionPayload 는 모델 응답 파싱용 중간 구조체
type congestionPayload struct {
	TotalExpectedVisitors *int    `json:"totalExpectedVisitors"`
	PosterScore           *int    `json:"posterScore"`
	LocalVisitors         *int    `json:"localVisitors"`
	ExternalVisitors      *int    `json:"externalVisitors"`
	Analysis              *string `json:"analysis"`
}

// GenerateForecast 는 인구 추정치와 포스터 이미지를 포함한 컨텍스트로 방문객 예측을 생성한다.
// localVisitors + externalVisitors == totalExpectedVisitors 는 설명적 분해일 뿐 강제하지 않는다.
func (g *geminiCongestionRepository) GenerateForecast(ctx context.Context, input *model.RichCongestionInput, population int) (*model.CongestionForecastOutput, error) {
	prompt := g.buildForecastPrompt(input, population)

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if len(input.PosterImage) > 0 {
		mimeType := http.DetectContentType(input.PosterImage)
		parts = append(parts, genai.NewPartFromBytes(input.PosterImage, mimeType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	g.logger.Infow("🤖 방문객 예측 생성 시작 (rich)",
		"region", input.RegionName, "municipality", input.MunicipalityName,
		"poster_bytes", len(input.PosterImage))

	text, err := g.client.GenerateStructured(ctx, contents, congestionOutputSchema())
	if err != nil {
		return nil, &model.GenerationError{Reason: "모델이 출력을 반환하지 않았습니다", Err: err}
	}

	var payload congestionPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		g.logger.Errorw("모델 응답 파싱 실패", "error", err, "excerpt", excerpt(text, 200))
		return nil, &model.GenerationError{Reason: "모델 출력이 선언된 스키마와 일치하지 않습니다", Err: err}
	}
	if payload.TotalExpectedVisitors == nil {
		return nil, &model.GenerationError{Reason: "모델이 방문객 수를 반환하지 않았습니다"}
	}

	total := *payload.TotalExpectedVisitors
	if total < 0 {
		total = 0
	}

	output := &model.CongestionForecastOutput{
		TotalExpectedVisitors: total,
		PosterScore:           payload.PosterScore,
		LocalVisitors:         payload.LocalVisitors,
		ExternalVisitors:      payload.ExternalVisitors,
	}
	if payload.Analysis != nil {
		output.Analysis = *payload.Analysis
	}

	g.logger.Infow("✅ 방문객 예측 생성 완료 (rich)", "total_visitors", total)
	return output, nil
}

// buildForecastPrompt 는 rich 변형 예측 프롬프트를 구성한다
func (g *geminiCongestionRepository) buildForecastPrompt(input *model.RichCongestionInput, population int) string {
	dongLine := ""
	if input.DongName != "" {
		dongLine = fmt.Sprintf("- 개최 읍/면/동: %s\n", input.DongName)
	}
	posterLine := ""
	if len(input.PosterImage) > 0 {
		posterLine = "\n첨부된 포스터 이미지의 매력도를 0-100 점으로 평가해 'posterScore'에 담고, 방문객 유인 효과를 예측에 반영하세요."
	}

	return fmt.Sprintf(`당신은 대한민국 지역 축제의 방문객 수 예측 전문가입니다. 답변은 한국어로 작성하세요.

아래 축제 정보를 바탕으로 'totalExpectedVisitors'(예상 총 방문객 수)를 추정하세요.
위치의 인구 밀도와 접근성, 개최 시기(계절성), 축제 종류의 대중성, 예산 규모(홍보/규모 반영),
진행 기간과 연간 진행 횟수, 슬로건의 소구력을 모두 고려하세요.

[축제 정보]
- 개최 광역단체: %s
- 개최 기초단체: %s
%s- 축제 시작일: %s
- 축제 종류: %s
- 예산 (백만원): %.0f
- 진행 기간: %d일
- 연간 진행 횟수: %d회
- 슬로건: %s
- 개최지 추정 인구 (시뮬레이션): 약 %d명
%s
현실적으로 추정하세요. 예산이 적은 소규모 지역 축제는 대도시의 대형 축제보다 방문객이 훨씬 적습니다.
'localVisitors'(지역 방문객)와 'externalVisitors'(외지 방문객)로 나누어 추정하고,
'analysis'에 추정 근거를 2-3문장으로 설명하세요. 정의된 스키마의 JSON 으로만 응답하세요.`,
		input.RegionName, input.MunicipalityName, dongLine, input.Date, input.FestivalType,
		input.Budget, input.Duration, input.Frequency, input.Slogan, population, posterLine)
}

// congestionOutputSchema 는 rich 변형 예측 결과의 선언 스키마
func congestionOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"totalExpectedVisitors": {
				Type:        genai.TypeInteger,
				Description: "예상되는 총 방문객 수",
				Minimum:     genai.Ptr(0.0),
			},
			"posterScore": {
				Type:        genai.TypeInteger,
				Description: "포스터 매력도 점수 (0-100)",
				Minimum:     genai.Ptr(0.0),
				Maximum:     genai.Ptr(100.0),
			},
			"localVisitors":    {Type: genai.TypeInteger, Description: "예상 지역 방문객 수", Minimum: genai.Ptr(0.0)},
			"externalVisitors": {Type: genai.TypeInteger, Description: "예상 외지/관광 방문객 수", Minimum: genai.Ptr(0.0)},
			"analysis":         {Type: genai.TypeString, Description: "추정 근거 분석 (한국어)"},
		},
		Required: []string{"totalExpectedVisitors"},
	}
}
