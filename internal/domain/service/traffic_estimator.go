package service

import (
	"math/rand"
	"strings"
	"time"
)

// majorCityTokens 는 혼잡도 가산 대상 주요 도시 토큰
var majorCityTokens = []string{
	"서울", "부산", "인천", "대구", "광주", "대전", "울산",
	"수원", "성남", "고양", "용인", "창원",
}

// busyDistrictTokens 는 추가 가산 대상 상습 혼잡 지역 토큰
var busyDistrictTokens = []string{"강남", "해운대", "종로"}

// SimulatedTrafficProvider 는 날짜/지역 규칙으로 혼잡도 점수를 시뮬레이션한다
type SimulatedTrafficProvider struct {
	rng *rand.Rand
}

// NewSimulatedTrafficProvider 는 새 SimulatedTrafficProvider 인스턴스를 생성한다
func NewSimulatedTrafficProvider() *SimulatedTrafficProvider {
	return &SimulatedTrafficProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSimulatedTrafficProviderForTest 는 시드를 고정한 인스턴스를 생성한다
func NewSimulatedTrafficProviderForTest(seed int64) *SimulatedTrafficProvider {
	return &SimulatedTrafficProvider{rng: rand.New(rand.NewSource(seed))}
}

// EstimateTraffic 는 교통 혼잡도 점수를 반환한다 (1: 원활, 10: 매우 혼잡).
// 기본 점수 1-6 에 주말, 출퇴근 시간대, 주요 도시, 상습 혼잡 지역 가산을 적용하고
// 항상 [1,10] 으로 클램프한다.
func (p *SimulatedTrafficProvider) EstimateTraffic(date, region string) int {
	score := p.rng.Intn(6) + 1

	if parsed, err := time.Parse("2006-01-02", date); err == nil {
		weekday := parsed.Weekday()
		if weekday == time.Friday || weekday == time.Saturday || weekday == time.Sunday {
			score += p.rng.Intn(2) + 1
		}
		// 날짜만 입력되면 0시라 미적용. 시각 포함 입력 대비 유지.
		hour := parsed.Hour()
		if (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19) {
			score++
		}
	}

	if containsAnyToken(region, majorCityTokens) {
		score += p.rng.Intn(2) + 1
	}
	if containsAnyToken(region, busyDistrictTokens) {
		score++
	}

	if score > 10 {
		return 10
	}
	if score < 1 {
		return 1
	}
	return score
}

func containsAnyToken(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
