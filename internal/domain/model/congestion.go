package model

// FestivalTypes 는 선택 가능한 축제 종류
var FestivalTypes = []string{
	"문화관광", "문화예술", "생태자연", "전통역사", "주민화합", "지역특산물", "체험", "기타",
}

// IsValidFestivalType 은 축제 종류가 허용된 값인지 판정한다
func IsValidFestivalType(t string) bool {
	for _, ft := range FestivalTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// CongestionForecastRequest 는 혼잡도(방문객) 예측 폼 요청.
// 배포 설정에 따라 tabular 변형(기본 필드만) 또는 rich 변형(기간/횟수/슬로건/포스터 포함)으로 동작한다.
type CongestionForecastRequest struct {
	Region       string `json:"region" binding:"required"`       // 광역자치단체 코드
	Municipality string `json:"municipality" binding:"required"` // 기초자치단체 코드
	Date         string `json:"date" binding:"required"`         // 축제 시작일 (YYYY-MM-DD)
	FestivalType string `json:"festival_type" binding:"required"`
	Budget       string `json:"budget" binding:"required"` // 백만원 단위 (쉼표 포함 문자열 허용)

	// rich 변형 전용
	Duration    int    `json:"duration,omitempty"`     // 진행 기간 (일)
	Frequency   int    `json:"frequency,omitempty"`    // 연간 진행 횟수
	Slogan      string `json:"slogan,omitempty"`       // 축제 슬로건 (100자 이내)
	PosterImage string `json:"poster_image,omitempty"` // base64 인코딩 포스터 (5MB 이내)
}

// PredictionPayload 는 외부 예측기로 전달되는 고정 키 JSON.
// 키는 학습 데이터셋 컬럼과 바이트 단위로 일치해야 한다.
type PredictionPayload struct {
	RegionName       string  `json:"광역자치단체"`
	MunicipalityName string  `json:"기초자치단체 시/군/구"`
	DongName         string  `json:"읍/면/동"`
	StartDate        string  `json:"축제 시작일"` // YYYY-MM-DD
	FestivalType     string  `json:"축제 종류"`
	Budget           float64 `json:"예산"` // 백만원 단위
}

// RichCongestionInput 은 rich 변형 플로우로 전달되는 정규화된 입력
type RichCongestionInput struct {
	RegionName       string  `json:"regionName"`
	MunicipalityName string  `json:"municipalityName"`
	DongName         string  `json:"dongName,omitempty"`
	Date             string  `json:"date"`
	FestivalType     string  `json:"festivalType"`
	Budget           float64 `json:"budget"` // 백만원 단위
	Duration         int     `json:"duration"`
	Frequency        int     `json:"frequency"`
	Slogan           string  `json:"slogan"`
	PosterImage      []byte  `json:"-"` // 디코딩된 포스터 바이트
}

// CongestionForecastOutput 은 방문객 예측 결과.
// tabular 변형은 TotalExpectedVisitors 만 채워진다.
type CongestionForecastOutput struct {
	TotalExpectedVisitors int `json:"totalExpectedVisitors"`

	// rich 변형 전용. LocalVisitors+ExternalVisitors 는 총합의 설명적 분해일 뿐
	// 산술 일치가 보장되지는 않는다.
	PosterScore      *int   `json:"posterScore,omitempty"` // 포스터 매력도 0-100
	LocalVisitors    *int   `json:"localVisitors,omitempty"`
	ExternalVisitors *int   `json:"externalVisitors,omitempty"`
	Analysis         string `json:"analysis,omitempty"`
}

// CongestionForecastResults 는 혼잡도 응답의 data 필드
type CongestionForecastResults struct {
	CongestionForecast *CongestionForecastOutput `json:"congestionForecast"`
}
