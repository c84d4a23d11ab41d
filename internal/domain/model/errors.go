package model

import "fmt"

// ValidationError 는 잘못되었거나 누락된 입력 필드를 나타낸다
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// EstimationError 는 환경 추정기가 예상치 못한 상태를 만난 경우
type EstimationError struct {
	Stage string // "weather" / "traffic" / "population"
	Err   error
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("추정 단계(%s) 실패: %v", e.Stage, e.Err)
}

func (e *EstimationError) Unwrap() error { return e.Err }

// GenerationError 는 구조화 생성 백엔드가 결과를 반환하지 못했거나
// 스키마 검증에 실패한 경우. 백엔드 내부 상세는 사용자에게 노출하지 않는다.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("생성 실패(%s): %v", e.Reason, e.Err)
	}
	return "생성 실패: " + e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }

// BridgeErrorKind 는 외부 예측기 브리지 실패의 세부 분류
type BridgeErrorKind string

const (
	BridgeSpawnFailed     BridgeErrorKind = "spawn_failed"     // 프로세스 시작 실패
	BridgeNonZeroExit     BridgeErrorKind = "non_zero_exit"    // 0이 아닌 종료 코드
	BridgeEmptyOutput     BridgeErrorKind = "empty_output"     // 출력 없음
	BridgeMalformedOutput BridgeErrorKind = "malformed_output" // JSON 파싱 불가 또는 필드 누락
)

// stderrExcerptLimit 는 운영 로그에 남기는 진단 출력의 상한
const stderrExcerptLimit = 500

// BridgeError 는 외부 예측기 호출 실패.
// Stderr 은 운영자용 로그 전용이며 사용자 메시지에는 포함하지 않는다.
type BridgeError struct {
	Kind   BridgeErrorKind
	Stderr string
	Err    error
}

// NewBridgeError 는 진단 출력을 상한 길이로 잘라 BridgeError 를 만든다
func NewBridgeError(kind BridgeErrorKind, stderr string, err error) *BridgeError {
	if len(stderr) > stderrExcerptLimit {
		stderr = stderr[:stderrExcerptLimit]
	}
	return &BridgeError{Kind: kind, Stderr: stderr, Err: err}
}

func (e *BridgeError) Error() string {
	switch e.Kind {
	case BridgeSpawnFailed:
		return "예측 프로세스를 시작할 수 없습니다."
	case BridgeNonZeroExit:
		return "예측 스크립트 실행에 실패했습니다."
	case BridgeEmptyOutput:
		return "예측 스크립트가 출력을 반환하지 않았습니다."
	case BridgeMalformedOutput:
		return "예측 스크립트가 유효하지 않은 응답을 반환했습니다."
	}
	return "예측 브리지 오류가 발생했습니다."
}

func (e *BridgeError) Unwrap() error { return e.Err }

// TransportError 는 외부 대상 자체에 도달할 수 없는 경우 (연결 거부 등).
// 사용자 메시지에 도달 불가 대상을 명시한다.
type TransportError struct {
	Target string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("AI 서버(%s)에 연결할 수 없습니다. 서버가 실행 중인지 확인해주세요.", e.Target)
}

func (e *TransportError) Unwrap() error { return e.Err }
