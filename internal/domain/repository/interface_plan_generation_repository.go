package repository

import (
	"context"

	"FestaAI-Backend/internal/domain/model"
)

// PlanGenerationRepository 는 축제 컨설팅 결과의 구조화 생성 책임을 갖는다.
// 추정기 출력(날씨/교통)은 호출 전에 계산되어 생성 컨텍스트로 함께 전달된다.
type PlanGenerationRepository interface {
	// GeneratePlan 은 선언된 출력 스키마에 맞는 축제 컨설팅 결과를 생성한다.
	// 모델이 결과를 반환하지 않거나 스키마를 위반하면 GenerationError 를 반환한다.
	GeneratePlan(ctx context.Context, input *model.FestivalPlanningInput, weather *model.DailyWeather, trafficScore int) (*model.FestivalPlanningOutput, error)
}
