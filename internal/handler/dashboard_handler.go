package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/domain/service"
)

// DashboardHandler 는 시뮬레이션 현황판 API 와 차트 페이지의 핸들러.
// 스냅샷은 요청마다 새로 생성되므로 새로고침할 때마다 값이 달라진다.
type DashboardHandler struct {
	simulator *service.AnalyticsSimulator
	logger    *zap.SugaredLogger
}

// NewDashboardHandler 는 새 DashboardHandler 인스턴스를 생성한다
func NewDashboardHandler(simulator *service.AnalyticsSimulator, logger *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{
		simulator: simulator,
		logger:    logger,
	}
}

// GetRealtimeSnapshot 은 실시간 현황 스냅샷을 JSON 으로 반환한다
// GET /api/dashboard/realtime
func (h *DashboardHandler) GetRealtimeSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, model.SuccessResult(h.simulator.RealtimeSnapshot()))
}

// GetSatisfactionReport 는 사후 만족도 리포트를 JSON 으로 반환한다
// GET /api/dashboard/report
func (h *DashboardHandler) GetSatisfactionReport(c *gin.Context) {
	c.JSON(http.StatusOK, model.SuccessResult(h.simulator.SatisfactionReport()))
}

// GetRealtimePage 는 실시간 현황을 차트 HTML 로 렌더링한다
// GET /dashboard/realtime
func (h *DashboardHandler) GetRealtimePage(c *gin.Context) {
	snapshot := h.simulator.RealtimeSnapshot()

	// 부문별 매출 막대 차트
	sales := charts.NewBar()
	sales.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "실시간 축제 현황"}),
		charts.WithTitleOpts(opts.Title{Title: "부문별 매출 (원)"}),
	)
	sales.SetXAxis([]string{"입장권", "기념품", "먹거리", "체험"}).
		AddSeries("매출", []opts.BarData{
			{Value: snapshot.TicketSales},
			{Value: snapshot.MerchandiseSales},
			{Value: snapshot.FoodSales},
			{Value: snapshot.ExperienceSales},
		})

	// 소셜 언급량 추이 라인 차트
	trend := charts.NewLine()
	trend.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "소셜 미디어 언급량 추이"}))
	trendLabels := make([]string, 0, len(snapshot.SocialTrend))
	trendValues := make([]opts.LineData, 0, len(snapshot.SocialTrend))
	for _, point := range snapshot.SocialTrend {
		trendLabels = append(trendLabels, point.Label)
		trendValues = append(trendValues, opts.LineData{Value: point.Value})
	}
	trend.SetXAxis(trendLabels).AddSeries("언급 건수", trendValues)

	// 방문객 구성 파이 차트
	visitors := charts.NewPie()
	visitors.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "방문객 구성"}))
	visitors.AddSeries("방문객", []opts.PieData{
		{Name: "지역 주민", Value: snapshot.LocalVisitors},
		{Name: "외부 방문객", Value: snapshot.ExternalVisitors},
	})

	page := components.NewPage()
	page.AddCharts(sales, trend, visitors)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		h.logger.Errorw("실시간 현황 차트 렌더링 실패", "error", err)
	}
}

// GetReportPage 는 사후 리포트를 차트 HTML 로 렌더링한다
// GET /dashboard/report
func (h *DashboardHandler) GetReportPage(c *gin.Context) {
	report := h.simulator.SatisfactionReport()

	// 일별 방문객 막대 차트
	daily := charts.NewBar()
	daily.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "축제 결과 리포트"}),
		charts.WithTitleOpts(opts.Title{Title: "일별 방문객 수"}),
	)
	daily.SetXAxis(trendLabels(report.DailyVisitors)).
		AddSeries("방문객", barValues(report.DailyVisitors))

	// 전반적 만족도 분포 막대 차트
	satisfaction := charts.NewBar()
	satisfaction.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "전반적 만족도 분포 (%)",
	}))
	satisfaction.SetXAxis(trendLabels(report.OverallSatisfaction)).
		AddSeries("비율", barValues(report.OverallSatisfaction))

	// 매출 구성 파이 차트
	revenue := charts.NewPie()
	revenue.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "매출 구성 (%)"}))
	revenueValues := make([]opts.PieData, 0, len(report.RevenueBreakdown))
	for _, point := range report.RevenueBreakdown {
		revenueValues = append(revenueValues, opts.PieData{Name: point.Label, Value: point.Value})
	}
	revenue.AddSeries("매출", revenueValues)

	// 만족 프로그램 파이 차트
	programs := charts.NewPie()
	programs.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "만족 프로그램 (%)"}))
	programValues := make([]opts.PieData, 0, len(report.SatisfyingPrograms))
	for _, point := range report.SatisfyingPrograms {
		programValues = append(programValues, opts.PieData{Name: point.Label, Value: point.Value})
	}
	programs.AddSeries("프로그램", programValues)

	page := components.NewPage()
	page.AddCharts(daily, satisfaction, revenue, programs)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		h.logger.Errorw("리포트 차트 렌더링 실패", "error", err)
	}
}

func trendLabels(points []service.TrendPoint) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	return labels
}

func barValues(points []service.TrendPoint) []opts.BarData {
	values := make([]opts.BarData, len(points))
	for i, p := range points {
		values[i] = opts.BarData{Value: p.Value}
	}
	return values
}
