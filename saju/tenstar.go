package saju

// 십신(十神): 일간을 기준으로 다른 천간이 갖는 관계 분류.
// 오행의 생극 관계와 음양 동이(同異)로 결정된다

// TenStar 일간(daySky) 기준으로 다른 천간(otherSky)의 십신 이름을 반환한다.
// 조견표에 없는 글자가 들어오면 두 번째 반환값이 false다
func TenStar(daySky, otherSky string) (string, bool) {
	dayElement, ok := stemElements[daySky]
	if !ok {
		return "", false
	}
	otherElement, ok := stemElements[otherSky]
	if !ok {
		return "", false
	}
	samePolarity := stemYang[daySky] == stemYang[otherSky]

	switch {
	case dayElement == otherElement:
		// 비겁: 같은 오행
		if samePolarity {
			return "비견", true
		}
		return "겁재", true
	case dayElement.Generates() == otherElement:
		// 식상: 일간이 생하는 오행
		if samePolarity {
			return "식신", true
		}
		return "상관", true
	case dayElement.Controls() == otherElement:
		// 재성: 일간이 극하는 오행
		if samePolarity {
			return "편재", true
		}
		return "정재", true
	case otherElement.Controls() == dayElement:
		// 관성: 일간을 극하는 오행
		if samePolarity {
			return "편관", true
		}
		return "정관", true
	default:
		// 인성: 일간을 생하는 오행
		if samePolarity {
			return "편인", true
		}
		return "정인", true
	}
}
