package repository

import (
	"context"

	"FestaAI-Backend/internal/domain/model"
)

// VisitorPredictionRepository 는 tabular 변형 방문객 예측을 외부 예측기에 위임한다.
// 구현체는 프로세스 스폰 브리지 또는 HTTP 브리지 중 하나다.
type VisitorPredictionRepository interface {
	// PredictVisitors 는 예상 총 방문객 수를 반환한다.
	// 실패는 BridgeError 또는 TransportError 로 번역되어 반환된다.
	PredictVisitors(ctx context.Context, payload *model.PredictionPayload) (int, error)
}
