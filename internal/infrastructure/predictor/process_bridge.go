package predictor

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	"FestaAI-Backend/internal/domain/model"
	"FestaAI-Backend/internal/domain/repository"
)

// ProcessBridge 는 요청마다 외부 예측 스크립트를 한 번 실행해 방문객 수를 얻는다.
// 프로세스 핸들은 해당 호출이 단독 소유하며 풀링이나 재사용은 하지 않는다.
type ProcessBridge struct {
	executable string
	args       []string
	workDir    string
	logger     *zap.SugaredLogger
}

// NewProcessBridge 는 새 ProcessBridge 인스턴스를 생성한다
func NewProcessBridge(executable string, args []string, workDir string, logger *zap.SugaredLogger) repository.VisitorPredictionRepository {
	return &ProcessBridge{
		executable: executable,
		args:       args,
		workDir:    workDir,
		logger:     logger,
	}
}

// predictionOutput 은 외부 예측기의 기대 출력 형태
type predictionOutput struct {
	PredictedVisitors *float64 `json:"predicted_visitors"`
}

// PredictVisitors 는 페이로드를 stdin 으로 전달하고 stdout 의 JSON 을 파싱한다.
// 종료 코드 0 그리고 숫자 predicted_visitors 필드, 두 조건을 모두 만족해야 성공이다.
// 컨텍스트 취소 시 자식 프로세스도 함께 종료된다.
func (b *ProcessBridge) PredictVisitors(ctx context.Context, payload *model.PredictionPayload) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, model.NewBridgeError(model.BridgeSpawnFailed, "", err)
	}

	cmd := exec.CommandContext(ctx, b.executable, b.args...)
	if b.workDir != "" {
		cmd.Dir = b.workDir
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return 0, model.NewBridgeError(model.BridgeSpawnFailed, "", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, model.NewBridgeError(model.BridgeSpawnFailed, "", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 0, model.NewBridgeError(model.BridgeSpawnFailed, "", err)
	}

	if err := cmd.Start(); err != nil {
		b.logger.Errorw("예측 프로세스 시작 실패", "executable", b.executable, "error", err)
		return 0, model.NewBridgeError(model.BridgeSpawnFailed, "", err)
	}

	// stdout 과 stderr 를 동시에 드레인한다.
	// 한쪽만 읽으면 자식 프로세스가 버퍼 가득참으로 무기한 멈출 수 있다.
	var (
		wg        sync.WaitGroup
		outBytes  []byte
		errBytes  []byte
		outErr    error
		stderrErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		defer stdin.Close()
		_, _ = stdin.Write(data)
	}()
	go func() {
		defer wg.Done()
		outBytes, outErr = io.ReadAll(stdout)
	}()
	go func() {
		defer wg.Done()
		errBytes, stderrErr = io.ReadAll(stderr)
	}()
	wg.Wait()

	waitErr := cmd.Wait()
	stderrText := string(errBytes)
	if stderrText != "" {
		b.logger.Warnw("예측 프로세스 stderr", "excerpt", truncate(stderrText, 500))
	}
	if outErr != nil || stderrErr != nil {
		b.logger.Warnw("예측 프로세스 스트림 읽기 오류", "stdout_err", outErr, "stderr_err", stderrErr)
	}

	if waitErr != nil {
		b.logger.Errorw("예측 프로세스 비정상 종료", "error", waitErr)
		return 0, model.NewBridgeError(model.BridgeNonZeroExit, stderrText, waitErr)
	}

	trimmed := strings.TrimSpace(string(outBytes))
	if trimmed == "" {
		return 0, model.NewBridgeError(model.BridgeEmptyOutput, stderrText, nil)
	}

	var output predictionOutput
	if err := json.Unmarshal([]byte(trimmed), &output); err != nil {
		return 0, model.NewBridgeError(model.BridgeMalformedOutput, stderrText, err)
	}
	if output.PredictedVisitors == nil {
		return 0, model.NewBridgeError(model.BridgeMalformedOutput, stderrText, nil)
	}

	visitors := int(math.Round(*output.PredictedVisitors))
	if visitors < 0 {
		visitors = 0
	}

	b.logger.Infow("✅ 외부 예측 완료", "predicted_visitors", visitors)
	return visitors, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
