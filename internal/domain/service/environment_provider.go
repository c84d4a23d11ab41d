package service

import "FestaAI-Backend/internal/domain/model"

// 환경 추정기는 실데이터 소스가 없는 상태에서 규칙 기반 난수 근사를 제공한다.
// 인터페이스로 분리해 두어 실제 기상/교통/인구 API 로 교체할 때
// 오케스트레이션 플로우를 건드리지 않아도 된다.

// WeatherProvider 는 특정 날짜의 일일 요약과 3시간 간격 예보를 제공한다
type WeatherProvider interface {
	EstimateWeather(date string) *model.DailyWeather
}

// TrafficProvider 는 날짜와 지역에 대한 교통 혼잡도 점수(1-10)를 제공한다
type TrafficProvider interface {
	EstimateTraffic(date, region string) int
}

// PopulationProvider 는 지역명 기반 추정 인구수를 제공한다
type PopulationProvider interface {
	EstimatePopulation(area string) int
}
