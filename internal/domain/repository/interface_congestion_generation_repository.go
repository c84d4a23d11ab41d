package repository

import (
	"context"

	"FestaAI-Backend/internal/domain/model"
)

// CongestionGenerationRepository 는 rich 변형 방문객 예측의 구조화 생성 책임을 갖는다
type CongestionGenerationRepository interface {
	// GenerateForecast 는 인구 추정치와 포스터를 포함한 컨텍스트로 방문객 예측을 생성한다
	GenerateForecast(ctx context.Context, input *model.RichCongestionInput, population int) (*model.CongestionForecastOutput, error)
}
