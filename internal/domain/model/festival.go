package model

// FestivalConsultingRequest 는 축제 컨설팅 폼에서 제출되는 요청.
// 파싱된 예산 값은 FestivalPlanningInput.Budget 으로 전달된다.
type FestivalConsultingRequest struct {
	Region       string `json:"region" binding:"required"`       // 광역자치단체 코드 (예: "서울")
	Municipality string `json:"municipality" binding:"required"` // 기초자치단체 코드 (예: "강남구")
	Date         string `json:"date" binding:"required"`         // 개최 희망일 (YYYY-MM-DD)
	Budget       string `json:"budget" binding:"required"`       // 예산 (쉼표 포함 문자열 허용)
	LocalData    string `json:"local_data,omitempty"`            // 지역 데이터 요약 (선택)
}

// FestivalPlanningInput 은 오케스트레이션 플로우로 전달되는 정규화된 입력
type FestivalPlanningInput struct {
	Region    string  `json:"region"`    // 광역+기초 라벨 (예: "서울특별시 강남구")
	Date      string  `json:"date"`      // YYYY-MM-DD
	Budget    float64 `json:"budget"`    // 원 단위
	LocalData string  `json:"localData"` // 지역 데이터 종합 요약
}

// HourlyWeatherForecast 는 3시간 간격 시간대별 예보 1건
type HourlyWeatherForecast struct {
	Time                string  `json:"time"`                // HH:mm
	Condition           string  `json:"condition"`           // 한국어 날씨 상태 (맑음, 구름 조금, 흐림, 약한 비 등)
	Temperature         float64 `json:"temperature"`         // 섭씨
	PrecipitationChance int     `json:"precipitationChance"` // 강수 확률 0-100
}

// DailyWeather 는 일일 요약과 시간대별 예보 묶음 (추정기 출력)
type DailyWeather struct {
	DailySummary    string                  `json:"dailySummary"`
	HourlyForecasts []HourlyWeatherForecast `json:"hourlyForecasts"`
}

// FestivalPlanningOutput 은 AI 축제 컨설팅 결과
type FestivalPlanningOutput struct {
	ThemeSuggestion        string                  `json:"themeSuggestion"`
	DateRecommendation     string                  `json:"dateRecommendation"`
	PromotionStrategy      string                  `json:"promotionStrategy"`
	DailyWeatherSummary    string                  `json:"dailyWeatherSummary"`
	HourlyWeatherForecasts []HourlyWeatherForecast `json:"hourlyWeatherForecasts"`
	TrafficCongestionScore int                     `json:"trafficCongestionScore"` // 1(원활) - 10(매우 혼잡)
}

// FestivalConsultationResults 는 컨설팅 응답의 data 필드
type FestivalConsultationResults struct {
	FestivalPlanning *FestivalPlanningOutput `json:"festivalPlanning"`
}
