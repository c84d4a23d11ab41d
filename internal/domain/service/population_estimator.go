package service

import (
	"math/rand"
	"strings"
	"time"
)

// 인구 기준치 결정용 토큰 집합.
// 기준치는 토큰 매칭만으로 결정되어 결정적이고, 최종 난수 배율만 비결정적이다.
var (
	metroCityTokens     = []string{"서울", "부산", "인천", "대구", "광주", "대전", "울산"}
	affluentGuTokens    = []string{"강남", "서초", "송파"}
	satelliteCityTokens = []string{"수원", "성남", "고양", "용인", "창원"}
	ruralUnitTokens     = []string{"군", "읍", "면"}
)

const coastalResortToken = "해운대"

// SimulatedPopulationProvider 는 지역명 토큰 규칙으로 인구를 시뮬레이션한다
type SimulatedPopulationProvider struct {
	rng *rand.Rand
}

// NewSimulatedPopulationProvider 는 새 SimulatedPopulationProvider 인스턴스를 생성한다
func NewSimulatedPopulationProvider() *SimulatedPopulationProvider {
	return &SimulatedPopulationProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSimulatedPopulationProviderForTest 는 시드를 고정한 인스턴스를 생성한다
func NewSimulatedPopulationProviderForTest(seed int64) *SimulatedPopulationProvider {
	return &SimulatedPopulationProvider{rng: rand.New(rand.NewSource(seed))}
}

// EstimatePopulation 는 "광역 기초" 결합 문자열에서 추정 인구수를 계산한다.
// 기준치 5만에서 시작해 토큰 매칭으로 덮어쓴 뒤 [0.8, 1.2) 균등 배율을 곱해 내림한다.
// 요청마다 새로 계산하며 어떤 상태도 공유하지 않는다.
func (p *SimulatedPopulationProvider) EstimatePopulation(area string) int {
	base := 50000

	if containsAnyToken(area, metroCityTokens) {
		base = 300000
	}
	if containsAnyToken(area, affluentGuTokens) {
		base = 500000
	} else if strings.Contains(area, coastalResortToken) {
		base = 400000
	}
	if containsAnyToken(area, satelliteCityTokens) {
		base = 200000
	}
	if containsAnyToken(area, ruralUnitTokens) {
		base = 20000
	}

	factor := 0.8 + p.rng.Float64()*0.4
	return int(float64(base) * factor)
}
