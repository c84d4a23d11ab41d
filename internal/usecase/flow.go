package usecase

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlowState 는 요청 하나의 수명 동안만 존재하는 오케스트레이션 상태.
// CREATED → ESTIMATING → GENERATING → VALIDATED → (DONE | FAILED)
// 어느 전이에서든 FAILED 로 단락될 수 있다.
type FlowState string

const (
	FlowCreated    FlowState = "CREATED"
	FlowEstimating FlowState = "ESTIMATING"
	FlowGenerating FlowState = "GENERATING"
	FlowValidated  FlowState = "VALIDATED"
	FlowDone       FlowState = "DONE"
	FlowFailed     FlowState = "FAILED"
)

// requestFlow 는 요청 단위 플로우의 상태와 상관 ID 를 묶는다.
// 저장되지 않으며 호출 한 번의 수명만 가진다.
type requestFlow struct {
	id     string
	name   string
	state  FlowState
	logger *zap.SugaredLogger
}

func newRequestFlow(name string, logger *zap.SugaredLogger) *requestFlow {
	f := &requestFlow{
		id:     uuid.NewString(),
		name:   name,
		state:  FlowCreated,
		logger: logger,
	}
	f.logger.Debugw("플로우 시작", "flow", f.name, "flow_id", f.id, "state", f.state)
	return f
}

// transition 은 다음 상태로 전이하고 로그를 남긴다
func (f *requestFlow) transition(next FlowState) {
	f.state = next
	f.logger.Debugw("플로우 상태 전이", "flow", f.name, "flow_id", f.id, "state", next)
}

// fail 은 FAILED 로 전이하고 받은 오류를 그대로 돌려준다.
// 오류는 태그된 타입 그대로 핸들러 경계까지 전달되어 사용자 메시지로 번역된다.
func (f *requestFlow) fail(err error) error {
	f.state = FlowFailed
	f.logger.Warnw("플로우 실패", "flow", f.name, "flow_id", f.id, "error", err)
	return err
}
