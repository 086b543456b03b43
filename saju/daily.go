package saju

// DailyWeights 일진 보정 가중치. 원전에서 20/20으로 쓰이지만 유도 근거가
// 문서화된 값이 아니므로 조정 가능한 파라미터로 둔다
type DailyWeights struct {
	Sky    float64 // 오늘의 일간 오행에 더하는 가중치
	Ground float64 // 오늘의 일지 오행에 더하는 가중치
}

// DefaultDailyWeights 기본 일진 보정 가중치
var DefaultDailyWeights = DailyWeights{Sky: 20, Ground: 20}

// AdjustForToday 저장된 기본 오행 비율에 오늘의 일진(일간/일지) 가중치를
// 더해 다시 정규화한다. 일간은 천간 배속 오행으로, 일지는 지장간 전체가
// 아닌 대표 오행으로만 반영한다 — 구조 계산이 아닌 하루 단위의 거친
// 보정이기 때문이다. 일간과 일지가 같은 오행이면 두 가중치가 모두 쌓인다.
//
// 결과는 해당 날짜 하루만 유효하다. 캐싱은 호출자 책임이며 날짜가 바뀌면
// 반드시 다시 계산해야 한다
func AdjustForToday(base Profile, todaySky, todayGround string, weights DailyWeights) Profile {
	adjusted := base

	if element, ok := stemElements[todaySky]; ok {
		adjusted[element] += weights.Sky
	}
	if element, ok := branchElements[todayGround]; ok {
		adjusted[element] += weights.Ground
	}

	return adjusted.normalize()
}
