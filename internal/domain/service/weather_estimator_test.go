package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
}

func TestSimulatedWeatherProvider_EstimateWeather(t *testing.T) {
	t.Run("미래 날짜는 3시간 간격 예보 8건을 반환한다", func(t *testing.T) {
		provider := NewSimulatedWeatherProviderForTest(42, fixedNow)

		weather := provider.EstimateWeather("2026-09-10")

		require.NotNil(t, weather)
		require.Len(t, weather.HourlyForecasts, 8)

		expectedTimes := []string{"00:00", "03:00", "06:00", "09:00", "12:00", "15:00", "18:00", "21:00"}
		for i, forecast := range weather.HourlyForecasts {
			assert.Equal(t, expectedTimes[i], forecast.Time)
			assert.NotEmpty(t, forecast.Condition)
			assert.GreaterOrEqual(t, forecast.PrecipitationChance, 0)
			assert.LessOrEqual(t, forecast.PrecipitationChance, 100)
			// 기준 온도 15-25도에 슬롯별 ±4도 변동
			assert.GreaterOrEqual(t, forecast.Temperature, 10.0)
			assert.LessOrEqual(t, forecast.Temperature, 31.0)
		}
		assert.Contains(t, weather.DailySummary, "예측 정확도")
	})

	t.Run("같은 시드는 같은 예보를 생성한다", func(t *testing.T) {
		first := NewSimulatedWeatherProviderForTest(7, fixedNow).EstimateWeather("2026-09-15")
		second := NewSimulatedWeatherProviderForTest(7, fixedNow).EstimateWeather("2026-09-15")

		assert.Equal(t, first.DailySummary, second.DailySummary)
		assert.Equal(t, first.HourlyForecasts, second.HourlyForecasts)
	})

	t.Run("유효하지 않은 날짜는 빈 예보와 오류 요약을 반환한다", func(t *testing.T) {
		provider := NewSimulatedWeatherProviderForTest(1, fixedNow)

		weather := provider.EstimateWeather("2026/09/10")

		require.NotNil(t, weather)
		assert.Equal(t, "유효하지 않은 날짜 형식입니다.", weather.DailySummary)
		assert.Empty(t, weather.HourlyForecasts)
	})

	t.Run("과거 날짜는 0값 플레이스홀더 8건을 반환한다", func(t *testing.T) {
		provider := NewSimulatedWeatherProviderForTest(1, fixedNow)

		weather := provider.EstimateWeather("2026-08-15")

		require.NotNil(t, weather)
		assert.Contains(t, weather.DailySummary, "과거 날짜")
		require.Len(t, weather.HourlyForecasts, 8)
		for _, forecast := range weather.HourlyForecasts {
			assert.Equal(t, ConditionNoData, forecast.Condition)
			assert.Equal(t, 0.0, forecast.Temperature)
			assert.Equal(t, 0, forecast.PrecipitationChance)
		}
	})

	t.Run("당일 날짜는 과거로 취급되지 않는다", func(t *testing.T) {
		provider := NewSimulatedWeatherProviderForTest(3, fixedNow)

		weather := provider.EstimateWeather("2026-09-01")

		assert.NotContains(t, weather.DailySummary, "과거 날짜")
		assert.Len(t, weather.HourlyForecasts, 8)
	})
}

func TestPredictability(t *testing.T) {
	t.Run("당일 예보의 신뢰도는 1이다", func(t *testing.T) {
		assert.InDelta(t, 1.0, Predictability(0), 1e-9)
	})

	t.Run("하루당 0.05씩 감소한다", func(t *testing.T) {
		assert.InDelta(t, 0.75, Predictability(5), 1e-9)
		assert.InDelta(t, 0.5, Predictability(10), 1e-9)
	})

	t.Run("0.1 아래로 내려가지 않는다", func(t *testing.T) {
		assert.InDelta(t, 0.1, Predictability(18), 1e-9)
		assert.InDelta(t, 0.1, Predictability(100), 1e-9)
	})

	t.Run("일수가 늘어나면 신뢰도는 증가하지 않는다", func(t *testing.T) {
		for days := 0; days < 60; days++ {
			assert.GreaterOrEqual(t, Predictability(days), Predictability(days+1))
		}
	})
}
