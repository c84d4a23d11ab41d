package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedPopulationProvider_EstimatePopulation(t *testing.T) {
	// 배율 [0.8, 1.2) 가 적용되므로 기준치별 구간으로 검증한다
	cases := []struct {
		name string
		area string
		min  int
		max  int
	}{
		{"대도시는 30만 기준", "서울특별시 종로구", 240000, 360000},
		{"부촌 구는 50만 기준", "서울특별시 강남구", 400000, 600000},
		{"해운대는 40만 기준", "부산광역시 해운대구", 320000, 480000},
		{"위성도시는 20만 기준", "경기도 수원시", 160000, 240000},
		{"군 단위는 2만 기준", "전라남도 함평군", 16000, 24000},
		{"대도시라도 군 단위가 우선한다", "부산광역시 기장군", 16000, 24000},
		{"매칭 토큰이 없으면 5만 기준", "세종특별자치시", 40000, 60000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(0); seed < 30; seed++ {
				provider := NewSimulatedPopulationProviderForTest(seed)
				population := provider.EstimatePopulation(tc.area)
				assert.GreaterOrEqual(t, population, tc.min, "seed=%d", seed)
				assert.Less(t, population, tc.max, "seed=%d", seed)
			}
		})
	}

	t.Run("같은 시드는 같은 추정치를 반환한다", func(t *testing.T) {
		first := NewSimulatedPopulationProviderForTest(5).EstimatePopulation("서울특별시 강남구")
		second := NewSimulatedPopulationProviderForTest(5).EstimatePopulation("서울특별시 강남구")

		assert.Equal(t, first, second)
	})
}
