package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/domain/repository"
)

// DefaultPredictEndpoint 는 별도 설정이 없을 때의 예측 서버 주소
const DefaultPredictEndpoint = "http://localhost:5000/predict"

// HTTPBridge 는 프로세스 스폰 대신 HTTP 로 예측 서버를 호출하는 브리지.
// 자체 타임아웃은 두지 않고 호출자의 컨텍스트(요청 수명)가 한계를 정한다.
type HTTPBridge struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewHTTPBridge 는 새 HTTPBridge 인스턴스를 생성한다
func NewHTTPBridge(endpoint string, logger *zap.SugaredLogger) repository.VisitorPredictionRepository {
	if endpoint == "" {
		endpoint = DefaultPredictEndpoint
	}
	return &HTTPBridge{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// errorResponse 는 예측 서버의 오류 응답 형태
type errorResponse struct {
	Error string `json:"error"`
}

// PredictVisitors 는 페이로드를 예측 서버에 POST 하고 응답을 파싱한다
func (b *HTTPBridge) PredictVisitors(ctx context.Context, payload *model.PredictionPayload) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, model.NewBridgeError(model.BridgeSpawnFailed, "", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(data))
	if err != nil {
		return 0, model.NewBridgeError(model.BridgeSpawnFailed, "", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		// 연결 자체가 불가능한 경우는 브리지 오류와 구분해 대상 주소를 명시한다
		b.logger.Errorw("예측 서버 연결 실패", "endpoint", b.endpoint, "error", err)
		return 0, &model.TransportError{Target: b.endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, model.NewBridgeError(model.BridgeMalformedOutput, "", err)
	}

	if resp.StatusCode != http.StatusOK {
		diagnostic := string(body)
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			diagnostic = errResp.Error
		}
		b.logger.Errorw("예측 서버 오류 응답", "status", resp.StatusCode, "excerpt", truncate(diagnostic, 500))
		return 0, model.NewBridgeError(model.BridgeNonZeroExit, diagnostic,
			fmt.Errorf("예측 서버 상태 코드 %d", resp.StatusCode))
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return 0, model.NewBridgeError(model.BridgeEmptyOutput, "", nil)
	}

	var output predictionOutput
	if err := json.Unmarshal([]byte(trimmed), &output); err != nil {
		return 0, model.NewBridgeError(model.BridgeMalformedOutput, truncate(trimmed, 500), err)
	}
	if output.PredictedVisitors == nil {
		return 0, model.NewBridgeError(model.BridgeMalformedOutput, truncate(trimmed, 500), nil)
	}

	visitors := int(math.Round(*output.PredictedVisitors))
	if visitors < 0 {
		visitors = 0
	}

	b.logger.Infow("✅ 외부 예측 완료 (HTTP)", "predicted_visitors", visitors)
	return visitors, nil
}
