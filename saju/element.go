package saju

// Element 오행(五行)의 다섯 기운
type Element int

const (
	Wood Element = iota // 목(木)
	Fire                // 화(火)
	Earth               // 토(土)
	Metal               // 금(金)
	Water               // 수(水)
)

// Elements 오행 순회용 고정 순서 (목 → 화 → 토 → 금 → 수)
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

// 한글(한자) 표기. 채팅/응답 메시지에서 이 형태를 사용한다
var elementKorean = [5]string{"목(木)", "화(火)", "토(土)", "금(金)", "수(水)"}

// 한글 단독 표기
var elementHangul = [5]string{"목", "화", "토", "금", "수"}

// Korean 한글(한자) 표기를 반환. 예: "목(木)"
func (e Element) Korean() string {
	if e < 0 || int(e) >= len(elementKorean) {
		return ""
	}
	return elementKorean[e]
}

// Hangul 한글 표기를 반환. 예: "목"
func (e Element) Hangul() string {
	if e < 0 || int(e) >= len(elementHangul) {
		return ""
	}
	return elementHangul[e]
}

func (e Element) String() string {
	return e.Korean()
}

// 상극(相剋) 관계: 각 오행의 과한 기운을 눌러주는 오행
// 금극목, 수극화, 목극토, 화극금, 토극수
var suppressorOf = [5]Element{
	Wood:  Metal,
	Fire:  Water,
	Earth: Wood,
	Metal: Fire,
	Water: Earth,
}

// Suppressor 해당 오행의 과잉을 조절해주는 상극 오행을 반환
func (e Element) Suppressor() Element {
	return suppressorOf[e]
}

// 상생(相生) 관계: 목생화, 화생토, 토생금, 금생수, 수생목
var generatesOf = [5]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// Generates 해당 오행이 낳는(생하는) 오행을 반환
func (e Element) Generates() Element {
	return generatesOf[e]
}

// 상극 관계의 주체 방향: 목극토, 화극금, 토극수, 금극목, 수극화
var controlsOf = [5]Element{
	Wood:  Earth,
	Fire:  Metal,
	Earth: Water,
	Metal: Wood,
	Water: Fire,
}

// Controls 해당 오행이 누르는(극하는) 오행을 반환
func (e Element) Controls() Element {
	return controlsOf[e]
}

// KoreanNames 오행 목록을 한글(한자) 표기 목록으로 변환
func KoreanNames(elements []Element) []string {
	names := make([]string, 0, len(elements))
	for _, e := range elements {
		names = append(names, e.Korean())
	}
	return names
}
