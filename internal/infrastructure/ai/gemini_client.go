package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultGeminiModel 은 별도 설정이 없을 때 사용하는 생성 모델
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient 는 Gemini API 와의 구조화 생성 통신을 담당하는 클라이언트
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *zap.SugaredLogger
}

// NewGeminiClient 는 새로운 GeminiClient 인스턴스를 생성한다
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *zap.SugaredLogger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY가 설정되지 않았습니다")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini 클라이언트 생성 실패: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// GenerateStructured 는 선언된 출력 스키마를 강제하는 생성 호출을 수행하고
// 모델이 반환한 JSON 텍스트를 돌려준다. 응답이 비어 있으면 오류를 반환한다.
func (c *GeminiClient) GenerateStructured(ctx context.Context, contents []*genai.Content, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Gemini API 호출 실패: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("모델이 빈 응답을 반환했습니다")
	}

	c.logger.Debugw("구조화 생성 완료", "model", c.model, "response_bytes", len(text))
	return text, nil
}
