package service

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"FestaAI-Backend/internal/domain/model"
)

// 시뮬레이션에서 사용하는 날씨 상태 어휘 (한국어 고정)
const (
	ConditionClear        = "맑음"
	ConditionPartlyCloudy = "구름 조금"
	ConditionOvercast     = "흐림"
	ConditionLightRain    = "약한 비"
	ConditionClearNight   = "대체로 맑음 (밤)"
	ConditionFog          = "안개/엷은 안개"
	ConditionNoData       = "과거 데이터 없음"
)

const (
	invalidDateSummary = "유효하지 않은 날짜 형식입니다."
	pastDateSummary    = "과거 날짜에 대한 시뮬레이션된 날씨 정보는 제공되지 않습니다. 실제 API를 연동하세요."
)

// hourlySlotCount 는 하루를 3시간 간격으로 나눈 슬롯 수
const hourlySlotCount = 8

// SimulatedWeatherProvider 는 날짜 기준 규칙으로 날씨를 시뮬레이션한다.
// 예측 가능도(predictability)는 예보 시점이 멀어질수록 선형으로 감소하며 0.1 에서 바닥을 친다.
type SimulatedWeatherProvider struct {
	rng *rand.Rand
	now func() time.Time
}

// NewSimulatedWeatherProvider 는 새 SimulatedWeatherProvider 인스턴스를 생성한다
func NewSimulatedWeatherProvider() *SimulatedWeatherProvider {
	return &SimulatedWeatherProvider{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewSimulatedWeatherProviderForTest 는 시드와 현재 시각을 고정한 인스턴스를 생성한다
func NewSimulatedWeatherProviderForTest(seed int64, now func() time.Time) *SimulatedWeatherProvider {
	return &SimulatedWeatherProvider{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Predictability 는 오늘로부터 daysAhead 일 뒤 예보의 신뢰도 계수를 반환한다
func Predictability(daysAhead int) float64 {
	return math.Max(0.1, 1-float64(daysAhead)*0.05)
}

// EstimateWeather 는 대상 날짜의 일일 요약과 시간대별 예보 8건을 생성한다.
// 파싱 불가 날짜는 빈 예보와 함께 명시적 오류 요약을 반환하고,
// 과거 날짜는 0값 플레이스홀더 8건을 반환한다. 예외를 던지지 않는다.
func (p *SimulatedWeatherProvider) EstimateWeather(date string) *model.DailyWeather {
	target, err := time.Parse("2006-01-02", date)
	if err != nil {
		return &model.DailyWeather{
			DailySummary:    invalidDateSummary,
			HourlyForecasts: []model.HourlyWeatherForecast{},
		}
	}

	today := p.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	target = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, today.Location())
	daysDiff := int(target.Sub(today).Hours() / 24)

	if daysDiff < 0 {
		return p.pastDatePlaceholder(target)
	}

	predictability := Predictability(daysDiff)
	baseTemp := 15 + p.rng.Float64()*10 // 하루 기준 온도, 모든 슬롯에서 재사용

	forecasts := make([]model.HourlyWeatherForecast, 0, hourlySlotCount)
	var overallConditions []string

	for i := 0; i < hourlySlotCount; i++ {
		hour := i * 3 // 00:00, 03:00, ..., 21:00
		slotTime := target.Add(time.Duration(hour) * time.Hour)

		condition := ConditionClear
		precipitation := clampPercent(p.rng.Float64() * 20 * (1 / predictability))

		// 예측 가능도가 낮을수록 기본 상태에서 벗어날 확률이 높아진다
		if p.rng.Float64() > predictability*0.8 {
			condition = ConditionPartlyCloudy
		}
		if p.rng.Float64() > predictability*0.9 {
			condition = ConditionOvercast
			precipitation = clampPercent(p.rng.Float64()*30 + 30*(1/predictability))
		}
		if p.rng.Float64() > predictability*0.95 {
			condition = ConditionLightRain
			precipitation = clampPercent(p.rng.Float64()*40 + 50*(1/predictability))
		}

		if hour < 6 || hour >= 21 {
			if condition == ConditionClear {
				condition = ConditionClearNight
			}
		} else if hour < 12 {
			if condition == ConditionClear && p.rng.Float64() < 0.15/predictability {
				condition = ConditionFog
			}
		}

		temperature := baseTemp
		switch {
		case hour >= 6 && hour < 9:
			temperature += p.rng.Float64() * 2
		case hour >= 9 && hour < 15:
			temperature += p.rng.Float64()*4 + 1 // 한낮 최고
		case hour >= 15 && hour < 21:
			temperature -= p.rng.Float64() * 2
		default:
			temperature -= p.rng.Float64() * 4 // 심야 하강
		}
		temperature = math.Round(temperature*10) / 10

		forecasts = append(forecasts, model.HourlyWeatherForecast{
			Time:                slotTime.Format("15:04"),
			Condition:           condition,
			Temperature:         temperature,
			PrecipitationChance: precipitation,
		})

		if !containsString(overallConditions, condition) &&
			!strings.Contains(condition, "(밤)") && !strings.Contains(condition, "안개") {
			overallConditions = append(overallConditions, condition)
		}
	}

	return &model.DailyWeather{
		DailySummary:    buildDailySummary(overallConditions, predictability),
		HourlyForecasts: forecasts,
	}
}

// pastDatePlaceholder 는 과거 날짜용 0값 슬롯 8건을 생성한다
func (p *SimulatedWeatherProvider) pastDatePlaceholder(target time.Time) *model.DailyWeather {
	forecasts := make([]model.HourlyWeatherForecast, 0, hourlySlotCount)
	for i := 0; i < hourlySlotCount; i++ {
		slotTime := target.Add(time.Duration(i*3) * time.Hour)
		forecasts = append(forecasts, model.HourlyWeatherForecast{
			Time:                slotTime.Format("15:04"),
			Condition:           ConditionNoData,
			Temperature:         0,
			PrecipitationChance: 0,
		})
	}
	return &model.DailyWeather{
		DailySummary:    pastDateSummary,
		HourlyForecasts: forecasts,
	}
}

// buildDailySummary 는 관측된 상태 집합에서 우선순위(비 > 흐림 > 구름 > 맑음)로 요약을 만든다
func buildDailySummary(conditions []string, predictability float64) string {
	pct := int(math.Round(predictability * 100))

	var base string
	switch {
	case containsString(conditions, ConditionLightRain):
		base = "때때로 약한 비가 예상됩니다."
	case containsString(conditions, ConditionOvercast):
		base = "대체로 흐린 날씨가 예상됩니다."
	case containsString(conditions, ConditionPartlyCloudy):
		base = "가끔 구름이 끼는 날씨가 예상됩니다."
	default:
		base = "맑고 쾌청한 날씨가 예상됩니다."
	}
	return fmt.Sprintf("%s (예측 정확도 %d%% 수준)", base, pct)
}

func clampPercent(v float64) int {
	rounded := int(math.Round(v))
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
