package model

// Region 은 광역자치단체 선택지
type Region struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Municipality 는 기초자치단체 선택지
type Municipality struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Dong  string `json:"dong,omitempty"` // 대표 읍/면/동 (법정동 기준)
}

// Regions 는 프로세스 시작 시 한 번 로드되는 정적 조회 테이블.
// 절대 변경하지 않는다.
var Regions = []Region{
	{Value: "서울", Label: "서울특별시"},
	{Value: "부산", Label: "부산광역시"},
	{Value: "대구", Label: "대구광역시"},
	{Value: "인천", Label: "인천광역시"},
	{Value: "광주", Label: "광주광역시"},
	{Value: "대전", Label: "대전광역시"},
	{Value: "울산", Label: "울산광역시"},
	{Value: "세종", Label: "세종특별자치시"},
	{Value: "경기", Label: "경기도"},
	{Value: "강원", Label: "강원특별자치도"},
	{Value: "충북", Label: "충청북도"},
	{Value: "충남", Label: "충청남도"},
	{Value: "전북", Label: "전북특별자치도"},
	{Value: "전남", Label: "전라남도"},
	{Value: "경북", Label: "경상북도"},
	{Value: "경남", Label: "경상남도"},
	{Value: "제주", Label: "제주특별자치도"},
}

// Municipalities 는 광역자치단체 코드별 기초자치단체 목록
var Municipalities = map[string][]Municipality{
	"서울": {
		{Value: "종로구", Label: "종로구", Dong: "동숭동"}, {Value: "중구", Label: "중구", Dong: "태평로"},
		{Value: "용산구", Label: "용산구", Dong: "이촌동"}, {Value: "성동구", Label: "성동구", Dong: "왕십리도선동"},
		{Value: "마포구", Label: "마포구", Dong: "서교동"}, {Value: "영등포구", Label: "영등포구", Dong: "여의도동"},
		{Value: "서초구", Label: "서초구", Dong: "반포동"}, {Value: "강남구", Label: "강남구", Dong: "역삼동"},
		{Value: "송파구", Label: "송파구", Dong: "방이동"}, {Value: "강서구", Label: "강서구", Dong: "가양동"},
	},
	"부산": {
		{Value: "중구", Label: "중구", Dong: "중앙동"}, {Value: "부산진구", Label: "부산진구", Dong: "서면"},
		{Value: "동래구", Label: "동래구", Dong: "명륜동"}, {Value: "해운대구", Label: "해운대구", Dong: "중동"},
		{Value: "수영구", Label: "수영구", Dong: "광안동"}, {Value: "기장군", Label: "기장군", Dong: "기장읍"},
	},
	"대구": {
		{Value: "중구", Label: "중구", Dong: "동성로"}, {Value: "수성구", Label: "수성구", Dong: "두산동"},
		{Value: "달성군", Label: "달성군", Dong: "유가읍"}, {Value: "군위군", Label: "군위군", Dong: "고로면"},
	},
	"인천": {
		{Value: "중구", Label: "중구", Dong: "신포동"}, {Value: "연수구", Label: "연수구", Dong: "송도동"},
		{Value: "부평구", Label: "부평구", Dong: "부평동"}, {Value: "강화군", Label: "강화군", Dong: "강화읍"},
	},
	"광주": {
		{Value: "동구", Label: "동구", Dong: "충장로"}, {Value: "서구", Label: "서구", Dong: "치평동"},
		{Value: "광산구", Label: "광산구", Dong: "월곡동"},
	},
	"대전": {
		{Value: "동구", Label: "동구", Dong: "중앙로"}, {Value: "서구", Label: "서구", Dong: "갈마동"},
		{Value: "유성구", Label: "유성구", Dong: "도룡동"},
	},
	"울산": {
		{Value: "중구", Label: "중구", Dong: "태화동"}, {Value: "남구", Label: "남구", Dong: "삼산동"},
		{Value: "울주군", Label: "울주군", Dong: "삼남읍"},
	},
	"세종": {
		{Value: "세종시", Label: "세종시 전체", Dong: "조치원읍"}, {Value: "조치원읍", Label: "조치원읍", Dong: "조치원읍"},
	},
	"경기": {
		{Value: "수원시", Label: "수원시", Dong: "팔달구"}, {Value: "성남시", Label: "성남시", Dong: "수정구"},
		{Value: "고양시", Label: "고양시", Dong: "덕양구"}, {Value: "용인시", Label: "용인시", Dong: "처인구"},
		{Value: "부천시", Label: "부천시", Dong: "상동"}, {Value: "화성시", Label: "화성시", Dong: "전곡항"},
		{Value: "가평군", Label: "가평군", Dong: "달전리"}, {Value: "양평군", Label: "양평군", Dong: "용문면"},
	},
	"강원": {
		{Value: "춘천시", Label: "춘천시", Dong: "근화동"}, {Value: "강릉시", Label: "강릉시", Dong: "주문진읍"},
		{Value: "속초시", Label: "속초시", Dong: "교동"}, {Value: "평창군", Label: "평창군", Dong: "봉평면"},
		{Value: "화천군", Label: "화천군", Dong: "화천읍"},
	},
	"충북": {
		{Value: "청주시", Label: "청주시", Dong: "상당구"}, {Value: "충주시", Label: "충주시", Dong: "수안보면"},
		{Value: "단양군", Label: "단양군", Dong: "영춘면"},
	},
	"충남": {
		{Value: "천안시", Label: "천안시", Dong: "서북구"}, {Value: "공주시", Label: "공주시", Dong: "금흥동"},
		{Value: "보령시", Label: "보령시", Dong: "웅천읍"},
	},
	"전북": {
		{Value: "전주시", Label: "전주시", Dong: "완산구"}, {Value: "남원시", Label: "남원시", Dong: "운봉읍"},
		{Value: "김제시", Label: "김제시", Dong: "부량면"},
	},
	"전남": {
		{Value: "여수시", Label: "여수시", Dong: "돌산읍"}, {Value: "순천시", Label: "순천시", Dong: "낙안면"},
		{Value: "함평군", Label: "함평군", Dong: "함평읍"},
	},
	"경북": {
		{Value: "포항시", Label: "포항시", Dong: "북구"}, {Value: "경주시", Label: "경주시", Dong: "황남동"},
		{Value: "안동시", Label: "안동시", Dong: "풍천면"},
	},
	"경남": {
		{Value: "창원시", Label: "창원시", Dong: "의창구"}, {Value: "진주시", Label: "진주시", Dong: "판문동"},
		{Value: "남해군", Label: "남해군", Dong: "남해읍"},
	},
	"제주": {
		{Value: "제주시", Label: "제주시", Dong: "연동"}, {Value: "서귀포시", Label: "서귀포시", Dong: "중문동"},
	},
}

// GetRegionLabel 은 광역자치단체 코드의 표시 라벨을 반환한다.
// 알 수 없는 코드는 실패 대신 코드 자체를 반환한다 (표시용 치환).
func GetRegionLabel(regionValue string) string {
	for _, r := range Regions {
		if r.Value == regionValue {
			return r.Label
		}
	}
	return regionValue
}

// GetMunicipalitiesForRegion 은 광역자치단체의 기초자치단체 목록을 반환한다
func GetMunicipalitiesForRegion(regionValue string) []Municipality {
	return Municipalities[regionValue]
}

// GetMunicipalityLabel 은 기초자치단체 코드의 표시 라벨을 반환한다.
// 알 수 없는 코드는 코드 자체를 반환한다.
func GetMunicipalityLabel(regionValue, municipalityValue string) string {
	for _, m := range Municipalities[regionValue] {
		if m.Value == municipalityValue {
			return m.Label
		}
	}
	return municipalityValue
}

// GetDongForMunicipality 는 기초자치단체의 대표 읍/면/동을 반환한다.
// 정보가 없으면 빈 문자열을 반환한다.
func GetDongForMunicipality(regionValue, municipalityValue string) string {
	for _, m := range Municipalities[regionValue] {
		if m.Value == municipalityValue {
			return m.Dong
		}
	}
	return ""
}
