package model

// ActionResult 는 모든 공개 엔드포인트의 공통 응답 형태.
// 실패 시 Error 에는 한국어 사용자 메시지만 담고 내부 상세는 로그로만 남긴다.
type ActionResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResult 는 성공 응답을 만든다
func SuccessResult(data interface{}) *ActionResult {
	return &ActionResult{Success: true, Data: data}
}

// FailureResult 는 실패 응답을 만든다
func FailureResult(message string) *ActionResult {
	return &ActionResult{Success: false, Error: message}
}
