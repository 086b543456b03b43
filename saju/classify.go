package saju

// 분류 임계값. 최솟값이 5% 미만이면 해당 오행이 사실상 없는 사주(무형),
// 최대-최소 차이가 10%p 이내면 균형 사주로 본다
const (
	deficientThreshold = 5.0
	balancedSpread     = 10.0
)

// Category 오행 분포의 분류 결과
type Category string

const (
	CategoryDeficient Category = "deficient" // 무형: 특정 오행이 거의 없음
	CategoryBalanced  Category = "balanced"  // 균형
	CategorySkewed    Category = "skewed"    // 편중
)

// Classification 오행 분포 분석 결과. 요청마다 현재 프로필에서 다시
// 계산하는 일시 데이터이며 저장하지 않는다
type Classification struct {
	Category    Category
	Lacking     []Element // 최솟값 오행 (동률 모두 포함)
	Strong      []Element // 최댓값 오행 (동률 모두 포함)
	Suppressors []Element // 강한 오행을 눌러주는 상극 오행 (중복 제거)
	Profile     Profile
}

// Classify 오행 백분율 분포를 무형/균형/편중으로 분류한다.
// 잘 구성된 프로필에 대해 절대 실패하지 않으며, 전부 0인 퇴화 입력도
// 편차 0의 균형으로 분류한다
func Classify(profile Profile) Classification {
	min, lacking := profile.Min()
	max, strong := profile.Max()
	spread := max - min

	var category Category
	switch {
	case max == 0:
		// 전부 0인 프로필: 편차 0의 균형으로 처리
		category = CategoryBalanced
	case min < deficientThreshold:
		category = CategoryDeficient
	case spread <= balancedSpread:
		category = CategoryBalanced
	default:
		category = CategorySkewed
	}

	seen := make(map[Element]bool)
	suppressors := make([]Element, 0, len(strong))
	for _, e := range strong {
		s := e.Suppressor()
		if !seen[s] {
			suppressors = append(suppressors, s)
			seen[s] = true
		}
	}

	return Classification{
		Category:    category,
		Lacking:     lacking,
		Strong:      strong,
		Suppressors: suppressors,
		Profile:     profile,
	}
}
