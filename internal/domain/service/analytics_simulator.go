package service

import (
	"fmt"
	"math/rand"
	"time"
)

// 실시간 현황판과 사후 만족도 리포트용 시뮬레이션 지표.
// 실데이터 수집 전 단계의 스탠드인으로, 모든 스냅샷은 요청 시점에 새로 생성되며
// 요청 간 어떤 상태도 공유하지 않는다.

// TrendPoint 는 시계열 차트의 한 점
type TrendPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SocialPost 는 소셜 미디어 반응 피드 1건
type SocialPost struct {
	Platform  string `json:"platform"`
	User      string `json:"user"`
	Text      string `json:"text"`
	Likes     int    `json:"likes"`
	Timestamp string `json:"timestamp"`
}

// RealtimeSnapshot 은 축제 현장 실시간 현황 스냅샷
type RealtimeSnapshot struct {
	TotalVisitors    int          `json:"totalVisitors"`
	LocalVisitors    int          `json:"localVisitors"`
	ExternalVisitors int          `json:"externalVisitors"`
	TicketSales      int          `json:"ticketSales"`      // 원
	MerchandiseSales int          `json:"merchandiseSales"` // 원
	FoodSales        int          `json:"foodSales"`        // 원
	ExperienceSales  int          `json:"experienceSales"`  // 원
	CongestionGrid   [][]int      `json:"congestionGrid"`   // 5x5, 0(원활)-2(혼잡)
	SocialTrend      []TrendPoint `json:"socialTrend"`
	SocialPosts      []SocialPost `json:"socialPosts"`
	SafetyAlert      string       `json:"safetyAlert,omitempty"`
}

// EvaluationItem 은 종합평가 스코어카드 1행
type EvaluationItem struct {
	Category string `json:"category"`
	Score    string `json:"score"` // "8.2/10" 형식
	Basis    string `json:"basis"`
}

// SatisfactionReport 는 축제 종료 후 만족도 분석 리포트
type SatisfactionReport struct {
	SurveyRespondents   int              `json:"surveyRespondents"`
	DailyVisitors       []TrendPoint     `json:"dailyVisitors"`
	DailyAccidents      []TrendPoint     `json:"dailyAccidents"`
	OverallSatisfaction []TrendPoint     `json:"overallSatisfaction"` // % 분포
	RevisitIntention    []TrendPoint     `json:"revisitIntention"`    // % 분포
	SatisfyingPrograms  []TrendPoint     `json:"satisfyingPrograms"`  // % 분포
	TotalRevenue        int              `json:"totalRevenue"`        // 원
	RevenueBreakdown    []TrendPoint     `json:"revenueBreakdown"`    // % 분포
	Scorecard           []EvaluationItem `json:"scorecard"`
	OverallSummary      string           `json:"overallSummary"`
}

var (
	satisfactionLabels = []string{"매우 만족", "만족", "보통", "불만족", "매우 불만족"}
	programLabels      = []string{"메인 공연", "체험 부스", "먹거리 장터", "전시 프로그램", "불꽃놀이"}
	revenueLabels      = []string{"입장권", "먹거리", "기념품", "체험 프로그램"}
	alertZones         = []string{"A구역", "B구역", "중앙무대 앞"}
)

// AnalyticsSimulator 는 현황판 지표를 난수로 생성한다
type AnalyticsSimulator struct {
	rng *rand.Rand
}

// NewAnalyticsSimulator 는 새 AnalyticsSimulator 인스턴스를 생성한다
func NewAnalyticsSimulator() *AnalyticsSimulator {
	return &AnalyticsSimulator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewAnalyticsSimulatorForTest 는 시드를 고정한 인스턴스를 생성한다
func NewAnalyticsSimulatorForTest(seed int64) *AnalyticsSimulator {
	return &AnalyticsSimulator{rng: rand.New(rand.NewSource(seed))}
}

// between 은 [min, max] 범위의 난수를 반환한다
func (s *AnalyticsSimulator) between(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// percentageDistribution 은 합이 정확히 100 이 되는 n 개 백분율을 생성한다
func (s *AnalyticsSimulator) percentageDistribution(n int) []int {
	values := make([]int, n)
	remaining := 100
	for i := 0; i < n-1; i++ {
		v := s.rng.Intn(remaining + 1)
		values[i] = v
		remaining -= v
	}
	values[n-1] = remaining
	return values
}

// RealtimeSnapshot 은 실시간 현황 스냅샷을 새로 생성한다
func (s *AnalyticsSimulator) RealtimeSnapshot() *RealtimeSnapshot {
	total := s.between(500, 1000)
	local := total * 6 / 10

	grid := make([][]int, 5)
	highZones := 0
	for i := range grid {
		grid[i] = make([]int, 5)
		for j := range grid[i] {
			grid[i][j] = s.rng.Intn(3)
			if grid[i][j] == 2 {
				highZones++
			}
		}
	}

	trend := make([]TrendPoint, 0, 10)
	for i := 9; i >= 0; i-- {
		trend = append(trend, TrendPoint{
			Label: fmt.Sprintf("T-%d", i),
			Value: s.between(5, 30),
		})
	}

	posts := []SocialPost{
		{Platform: "Instagram", User: "festival_lover", Text: "여기 너무 신나요! #축제 #꿀잼", Likes: s.between(50, 200), Timestamp: "방금 전"},
		{Platform: "X", User: "travelholic", Text: "오늘 날씨도 좋고 축제 분위기 최고!", Likes: s.between(30, 150), Timestamp: "2분 전"},
		{Platform: "Facebook", User: "김철수", Text: "가족들이랑 왔는데 아이들이 너무 좋아하네요 ^^", Likes: s.between(20, 100), Timestamp: "5분 전"},
	}

	alert := ""
	if highZones > 8 && s.rng.Float64() > 0.7 {
		zone := alertZones[s.rng.Intn(len(alertZones))]
		alert = fmt.Sprintf("주의: %s 혼잡도 매우 높음. 안전 요원 추가 배치 필요.", zone)
	}

	return &RealtimeSnapshot{
		TotalVisitors:    total,
		LocalVisitors:    local,
		ExternalVisitors: total - local,
		TicketSales:      s.between(1000000, 5000000),
		MerchandiseSales: s.between(500000, 3000000),
		FoodSales:        s.between(2000000, 8000000),
		ExperienceSales:  s.between(300000, 2000000),
		CongestionGrid:   grid,
		SocialTrend:      trend,
		SocialPosts:      posts,
		SafetyAlert:      alert,
	}
}

// SatisfactionReport 는 사후 분석 리포트를 새로 생성한다
func (s *AnalyticsSimulator) SatisfactionReport() *SatisfactionReport {
	respondents := s.between(300, 1500)

	dailyVisitors := make([]TrendPoint, 0, 3)
	dailyAccidents := make([]TrendPoint, 0, 3)
	totalVisitors := 0
	totalAccidents := 0
	for day := 1; day <= 3; day++ {
		visitors := s.between(3000, 20000)
		accidents := s.rng.Intn(4)
		totalVisitors += visitors
		totalAccidents += accidents
		dailyVisitors = append(dailyVisitors, TrendPoint{Label: fmt.Sprintf("%d일차", day), Value: visitors})
		dailyAccidents = append(dailyAccidents, TrendPoint{Label: fmt.Sprintf("%d일차", day), Value: accidents})
	}

	satisfaction := toTrendPoints(satisfactionLabels, s.percentageDistribution(len(satisfactionLabels)))
	revisit := toTrendPoints([]string{"재방문 의향 있음", "재방문 의향 없음"}, s.percentageDistribution(2))
	programs := toTrendPoints(programLabels, s.percentageDistribution(len(programLabels)))

	totalRevenue := s.between(50000000, 250000000)
	revenue := toTrendPoints(revenueLabels, s.percentageDistribution(len(revenueLabels)))

	// 설문/소비/안전/인터넷 지표는 10점 만점 가중 점수로 환산한다
	positive := float64(valueOf(satisfaction, "매우 만족"))*1.0 + float64(valueOf(satisfaction, "만족"))*0.7
	revisitPositive := float64(valueOf(revisit, "재방문 의향 있음"))
	surveyScore := positive/100*6 + revisitPositive/100*4
	consumptionScore := float64(totalRevenue)/250000000*8 + 2
	safetyScore := 10 - float64(totalAccidents)*0.5
	if safetyScore < 0 {
		safetyScore = 0
	}
	buzzScore := 2 + s.rng.Float64()*8

	scorecard := []EvaluationItem{
		{Category: "설문조사 지표", Score: fmt.Sprintf("%.1f/10", surveyScore),
			Basis: fmt.Sprintf("응답자 %d명 기준, 전반적 만족도 및 재방문 의사 반영", respondents)},
		{Category: "소비 데이터 지표", Score: fmt.Sprintf("%.1f/10", consumptionScore),
			Basis: fmt.Sprintf("총 매출액 %d원 및 부문별 기여도 분석", totalRevenue)},
		{Category: "방문 데이터 및 안전 지표", Score: fmt.Sprintf("%.1f/10", safetyScore),
			Basis: fmt.Sprintf("일별 방문객 추이 및 사고 발생 건수 %d건 고려", totalAccidents)},
		{Category: "인터넷 데이터 지표", Score: fmt.Sprintf("%.1f/10", buzzScore),
			Basis: "소셜 미디어 및 뉴스 언급량, 플랫폼별 반응 분석"},
	}

	summary := fmt.Sprintf(
		"이번 축제는 총 %d명의 설문 응답을 바탕으로 분석한 결과, 전반적으로 %.1f점의 만족도를 보였습니다. "+
			"축제 기간 총 방문객은 %d명으로 집계되었으며, 총 매출액은 %d원, 사고 발생 건수는 %d건입니다.",
		respondents, surveyScore, totalVisitors, totalRevenue, totalAccidents)

	return &SatisfactionReport{
		SurveyRespondents:   respondents,
		DailyVisitors:       dailyVisitors,
		DailyAccidents:      dailyAccidents,
		OverallSatisfaction: satisfaction,
		RevisitIntention:    revisit,
		SatisfyingPrograms:  programs,
		TotalRevenue:        totalRevenue,
		RevenueBreakdown:    revenue,
		Scorecard:           scorecard,
		OverallSummary:      summary,
	}
}

func toTrendPoints(labels []string, values []int) []TrendPoint {
	points := make([]TrendPoint, len(labels))
	for i, label := range labels {
		points[i] = TrendPoint{Label: label, Value: values[i]}
	}
	return points
}

func valueOf(points []TrendPoint, label string) int {
	for _, p := range points {
		if p.Label == label {
			return p.Value
		}
	}
	return 0
}
