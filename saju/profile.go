package saju

import "math"

// Profile 오행별 백분율 분포. Element를 인덱스로 쓰는 고정 배열이라
// 순회 순서가 항상 목→화→토→금→수로 일정하다.
// 정규화된 프로필은 합이 100(±반올림 오차) 이어야 한다
type Profile [5]float64

// Sum 다섯 값의 합
func (p Profile) Sum() float64 {
	var total float64
	for _, v := range p {
		total += v
	}
	return total
}

// Min 최솟값과 해당 오행 목록 (동률 포함)
func (p Profile) Min() (float64, []Element) {
	min := p[0]
	for _, v := range p[1:] {
		if v < min {
			min = v
		}
	}
	var elements []Element
	for _, e := range Elements {
		if p[e] == min {
			elements = append(elements, e)
		}
	}
	return min, elements
}

// Max 최댓값과 해당 오행 목록 (동률 포함)
func (p Profile) Max() (float64, []Element) {
	max := p[0]
	for _, v := range p[1:] {
		if v > max {
			max = v
		}
	}
	var elements []Element
	for _, e := range Elements {
		if p[e] == max {
			elements = append(elements, e)
		}
	}
	return max, elements
}

// normalize 합이 100이 되도록 정규화하고 소수점 첫째 자리로 반올림한다.
// 합이 0이면 모두 0인 프로필을 그대로 반환한다
func (p Profile) normalize() Profile {
	total := p.Sum()
	if total == 0 {
		return Profile{}
	}
	var out Profile
	for i, v := range p {
		out[i] = round1(v / total * 100)
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
