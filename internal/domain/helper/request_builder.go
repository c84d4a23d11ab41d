package helper

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"FestaAI-Backend/internal/domain/model"
)

// 폼 입력을 정규화해 오케스트레이션 플로우가 소비하는 폐쇄형 요청 객체로 변환한다.
// 조회 테이블에 없는 지역 코드는 실패 대신 코드 자체를 라벨로 사용한다 (표시용 치환).

const (
	maxSloganLength    = 100
	maxPosterImageSize = 5 * 1024 * 1024 // 5MB
)

// ParseBudget 는 쉼표가 섞인 예산 문자열을 숫자로 변환한다
func ParseBudget(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &model.ValidationError{Field: "budget", Message: "예산은 유효한 숫자여야 합니다."}
	}
	if value <= 0 {
		return 0, &model.ValidationError{Field: "budget", Message: "예산은 0보다 커야 합니다."}
	}
	return value, nil
}

// ParseDate 는 날짜 문자열을 검증하고 YYYY-MM-DD 형식으로 정규화한다
func ParseDate(raw string) (string, error) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return "", &model.ValidationError{Field: "date", Message: "유효한 날짜를 선택해주세요. (YYYY-MM-DD)"}
	}
	return parsed.Format("2006-01-02"), nil
}

// BuildPlanningInput 는 축제 컨설팅 폼 요청을 플로우 입력으로 정규화한다
func BuildPlanningInput(req *model.FestivalConsultingRequest) (*model.FestivalPlanningInput, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	budget, err := ParseBudget(req.Budget)
	if err != nil {
		return nil, err
	}

	regionLabel := model.GetRegionLabel(req.Region)
	municipalityLabel := model.GetMunicipalityLabel(req.Region, req.Municipality)
	fullRegionInfo := regionLabel + " " + municipalityLabel // 예: "서울특별시 강남구"

	localData := strings.TrimSpace(req.LocalData)
	if localData == "" {
		localData = fmt.Sprintf(
			"대한민국 %s 지역의 일반적인 민원 사항, 소셜 미디어 동향, 주민 관심사, 기후 데이터, 교통 정보 및 주요 특산물 판매 데이터를 종합적으로 고려합니다.",
			fullRegionInfo)
	}

	return &model.FestivalPlanningInput{
		Region:    fullRegionInfo,
		Date:      date,
		Budget:    budget,
		LocalData: localData,
	}, nil
}

// validateCommon 은 혼잡도 예측 두 변형이 공유하는 필드를 검증한다
func validateCommon(req *model.CongestionForecastRequest) (date string, budget float64, err error) {
	date, err = ParseDate(req.Date)
	if err != nil {
		return "", 0, err
	}
	budget, err = ParseBudget(req.Budget)
	if err != nil {
		return "", 0, err
	}
	if !model.IsValidFestivalType(req.FestivalType) {
		return "", 0, &model.ValidationError{Field: "festival_type", Message: "축제 종류를 선택해주세요."}
	}
	return date, budget, nil
}

// BuildPredictionPayload 는 tabular 변형 요청을 외부 예측기 와이어 페이로드로 변환한다.
// 키는 한국어 라벨로 고정되어 있으며 외부 모델의 학습 컬럼과 일치해야 한다.
func BuildPredictionPayload(req *model.CongestionForecastRequest) (*model.PredictionPayload, error) {
	date, budget, err := validateCommon(req)
	if err != nil {
		return nil, err
	}

	regionLabel := model.GetRegionLabel(req.Region)
	municipalityLabel := model.GetMunicipalityLabel(req.Region, req.Municipality)
	dongName := model.GetDongForMunicipality(req.Region, req.Municipality)
	if dongName == "" {
		// 대표 읍면동 정보가 없으면 기초단체명으로 대체한다
		dongName = municipalityLabel
	}

	return &model.PredictionPayload{
		RegionName:       regionLabel,
		MunicipalityName: municipalityLabel,
		DongName:         dongName,
		StartDate:        date,
		FestivalType:     req.FestivalType,
		Budget:           budget, // 백만원 단위
	}, nil
}

// BuildRichInput 는 rich 변형 요청을 생성 플로우 입력으로 변환한다
func BuildRichInput(req *model.CongestionForecastRequest) (*model.RichCongestionInput, error) {
	date, budget, err := validateCommon(req)
	if err != nil {
		return nil, err
	}
	if req.Duration < 1 {
		return nil, &model.ValidationError{Field: "duration", Message: "진행 기간은 최소 1일 이상이어야 합니다."}
	}
	if req.Frequency < 1 {
		return nil, &model.ValidationError{Field: "frequency", Message: "진행 횟수는 최소 1회 이상이어야 합니다."}
	}
	if strings.TrimSpace(req.Slogan) == "" {
		return nil, &model.ValidationError{Field: "slogan", Message: "축제 슬로건을 입력해주세요."}
	}
	if utf8.RuneCountInString(req.Slogan) > maxSloganLength {
		return nil, &model.ValidationError{Field: "slogan", Message: "슬로건은 100자 이내로 입력해주세요."}
	}

	var poster []byte
	if req.PosterImage != "" {
		poster, err = base64.StdEncoding.DecodeString(req.PosterImage)
		if err != nil {
			return nil, &model.ValidationError{Field: "poster_image", Message: "포스터 이미지 인코딩이 올바르지 않습니다."}
		}
		if len(poster) > maxPosterImageSize {
			return nil, &model.ValidationError{Field: "poster_image", Message: "포스터 이미지는 5MB 이내여야 합니다."}
		}
	}

	return &model.RichCongestionInput{
		RegionName:       model.GetRegionLabel(req.Region),
		MunicipalityName: model.GetMunicipalityLabel(req.Region, req.Municipality),
		DongName:         model.GetDongForMunicipality(req.Region, req.Municipality),
		Date:             date,
		FestivalType:     req.FestivalType,
		Budget:           budget,
		Duration:         req.Duration,
		Frequency:        req.Frequency,
		Slogan:           req.Slogan,
		PosterImage:      poster,
	}, nil
}
