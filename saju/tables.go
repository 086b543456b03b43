package saju

// 고정 명리 데이터 테이블.
// 천간/지지의 오행 배속, 지장간 비율, 시두법 조견표는 계산되는 값이 아니라
// 전해지는 고정 온톨로지이므로 전부 정적 데이터로 둔다.

// 십천간 (순서 고정: 갑을병정무기경신임계)
var stems = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

// 십이지지 (순서 고정: 자축인묘진사오미신유술해)
var branches = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

// 천간 → 오행
var stemElements = map[string]Element{
	"갑": Wood, "을": Wood,
	"병": Fire, "정": Fire,
	"무": Earth, "기": Earth,
	"경": Metal, "신": Metal,
	"임": Water, "계": Water,
}

// 천간의 음양 (양간 여부)
var stemYang = map[string]bool{
	"갑": true, "을": false,
	"병": true, "정": false,
	"무": true, "기": false,
	"경": true, "신": false,
	"임": true, "계": false,
}

// 지지 → 대표(정기) 오행. 일진 보정처럼 거친 배속이 필요할 때 사용
var branchElements = map[string]Element{
	"자": Water, "축": Earth, "인": Wood, "묘": Wood,
	"진": Earth, "사": Fire, "오": Fire, "미": Earth,
	"신": Metal, "유": Metal, "술": Earth, "해": Water,
}

// hiddenStem 지장간 구성 요소: 숨은 천간과 월률분야 일수 비율
type hiddenStem struct {
	Stem    string
	Element Element
	Rate    float64
}

// 지지 → 지장간 (여기/중기/정기, 비율은 월률분야 일수 기준)
var branchHiddenStems = map[string][]hiddenStem{
	"자": {{"임", Water, 10}, {"계", Water, 20}},
	"축": {{"계", Water, 9}, {"신", Metal, 3}, {"기", Earth, 18}},
	"인": {{"무", Earth, 7}, {"병", Fire, 7}, {"갑", Wood, 16}},
	"묘": {{"갑", Wood, 10}, {"을", Wood, 20}},
	"진": {{"을", Wood, 9}, {"계", Water, 3}, {"무", Earth, 18}},
	"사": {{"무", Earth, 7}, {"경", Metal, 7}, {"병", Fire, 16}},
	"오": {{"병", Fire, 10}, {"기", Earth, 9}, {"정", Fire, 11}},
	"미": {{"정", Fire, 9}, {"을", Wood, 3}, {"기", Earth, 18}},
	"신": {{"무", Earth, 7}, {"임", Water, 7}, {"경", Metal, 16}},
	"유": {{"경", Metal, 10}, {"신", Metal, 20}},
	"술": {{"신", Metal, 9}, {"정", Fire, 3}, {"무", Earth, 18}},
	"해": {{"무", Earth, 7}, {"갑", Wood, 7}, {"임", Water, 16}},
}

// timeSlot 시진(時辰) 구간. 분 단위(0~1439)로 비교한다
type timeSlot struct {
	Branch   string
	StartMin int // 구간 시작 (포함)
	EndMin   int // 구간 끝 (포함)
}

// 십이시진 구간표. 자시(23:30~01:29)는 자정을 넘어 감싸는 유일한 구간
var timeSlots = [12]timeSlot{
	{"자", 23*60 + 30, 1*60 + 29},
	{"축", 1*60 + 30, 3*60 + 29},
	{"인", 3*60 + 30, 5*60 + 29},
	{"묘", 5*60 + 30, 7*60 + 29},
	{"진", 7*60 + 30, 9*60 + 29},
	{"사", 9*60 + 30, 11*60 + 29},
	{"오", 11*60 + 30, 13*60 + 29},
	{"미", 13*60 + 30, 15*60 + 29},
	{"신", 15*60 + 30, 17*60 + 29},
	{"유", 17*60 + 30, 19*60 + 29},
	{"술", 19*60 + 30, 21*60 + 29},
	{"해", 21*60 + 30, 23*60 + 29},
}

// 시두법: 일간 → 자시의 시작 천간 인덱스
// 갑기일은 갑자시, 을경일은 병자시, 병신일은 무자시, 정임일은 경자시, 무계일은 임자시
var timeStemStart = map[string]int{
	"갑": 0, "기": 0,
	"을": 2, "경": 2,
	"병": 4, "신": 4,
	"정": 6, "임": 6,
	"무": 8, "계": 8,
}

// StemElement 천간의 오행을 반환
func StemElement(stem string) (Element, bool) {
	e, ok := stemElements[stem]
	return e, ok
}

// BranchElement 지지의 대표 오행을 반환
func BranchElement(branch string) (Element, bool) {
	e, ok := branchElements[branch]
	return e, ok
}
