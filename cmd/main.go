package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"FestaAI-Backend/internal/config"
	"FestaAI-Backend/internal/domain/repository"
	"FestaAI-Backend/internal/domain/service"
	"FestaAI-Backend/internal/handler"
	"FestaAI-Backend/internal/infrastructure/ai"
	"FestaAI-Backend/internal/infrastructure/predictor"
	"FestaAI-Backend/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("로거 초기화 실패: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	cfg := config.Load()
	if cfg.GeminiAPIKey == "" {
		fmt.Println("⚠️  환경 변수가 설정되지 않았습니다:")
		fmt.Println("필요한 환경 변수: GEMINI_API_KEY")
		fmt.Println("\n.env 파일을 생성하거나 환경 변수를 설정해주세요")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	fmt.Println("Initializing Gemini client...")
	geminiClient, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		log.Fatalf("Gemini 클라이언트 초기화 실패: %v", err)
	}
	fmt.Println("✅ Gemini client ready!")

	// 외부 방문객 예측기 브리지 선택
	var predictionRepo repository.VisitorPredictionRepository
	if cfg.UseHTTPBridge() {
		logger.Infow("예측 브리지 구성", "mode", "http", "endpoint", cfg.PythonAPIURL)
		predictionRepo = predictor.NewHTTPBridge(cfg.PythonAPIURL, logger)
	} else {
		logger.Infow("예측 브리지 구성", "mode", "process",
			"executable", cfg.PythonExecutable, "script", cfg.PredictScript)
		predictionRepo = predictor.NewProcessBridge(cfg.PythonExecutable, []string{cfg.PredictScript}, "", logger)
	}

	// 환경 추정기
	weatherProvider := service.NewSimulatedWeatherProvider()
	trafficProvider := service.NewSimulatedTrafficProvider()
	populationProvider := service.NewSimulatedPopulationProvider()

	// 유스케이스
	consultationUseCase := usecase.NewConsultationUseCase(
		weatherProvider,
		trafficProvider,
		ai.NewGeminiPlanRepository(geminiClient, logger),
		logger,
	)
	congestionUseCase := usecase.NewCongestionUseCase(
		cfg.CongestionMode,
		populationProvider,
		predictionRepo,
		ai.NewGeminiCongestionRepository(geminiClient, logger),
		logger,
	)

	// 핸들러
	consultationHandler := handler.NewConsultationHandler(consultationUseCase, logger)
	congestionHandler := handler.NewCongestionHandler(congestionUseCase, logger)
	dashboardHandler := handler.NewDashboardHandler(service.NewAnalyticsSimulator(), logger)

	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/consultation", consultationHandler.PostConsultation)
		api.POST("/congestion-forecast", congestionHandler.PostCongestionForecast)
		api.GET("/dashboard/realtime", dashboardHandler.GetRealtimeSnapshot)
		api.GET("/dashboard/report", dashboardHandler.GetSatisfactionReport)
		api.GET("/health", healthHandler)
	}

	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/realtime", dashboardHandler.GetRealtimePage)
		dashboard.GET("/report", dashboardHandler.GetReportPage)
	}

	fmt.Printf("FestaAI-Backend server starting on :%s...\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("서버 기동 실패: %v", err)
	}
}

// healthHandler 는 상태 확인 엔드포인트
// GET /api/health
func healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": "FestaAI-Backend"})
}
