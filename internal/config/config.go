package config

import (
	"os"
	"strings"
)

// Config 는 서버 기동에 필요한 환경 설정.
// 전부 환경 변수에서 읽으며 서버 수명 동안 변하지 않는다.
type Config struct {
	Port             string
	GeminiAPIKey     string
	GeminiModel      string
	PythonExecutable string // 프로세스 브리지용 인터프리터
	PredictScript    string // 예측 스크립트 경로
	PythonAPIURL     string // 설정 시 프로세스 대신 HTTP 브리지 사용
	CongestionMode   string // "tabular" 또는 "rich"
}

// Load 는 환경 변수에서 설정을 읽는다
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		PythonExecutable: getEnv("PYTHON_EXECUTABLE", "python3"),
		PredictScript:    getEnv("PREDICT_SCRIPT", "scripts/predict.py"),
		PythonAPIURL:     os.Getenv("PYTHON_API_URL"),
		CongestionMode:   strings.ToLower(getEnv("CONGESTION_MODE", "tabular")),
	}
}

// UseHTTPBridge 는 외부 예측기를 HTTP 로 호출할지 여부
func (c *Config) UseHTTPBridge() bool {
	return c.PythonAPIURL != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
