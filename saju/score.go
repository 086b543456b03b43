package saju

// ScoreWeights 오행 점수 가중치.
// 월지 보너스 비율은 명리 관례상 0.3으로 전해지지만 독립적으로 유도되는
// 값이 아니므로 상수 대신 설정 가능한 파라미터로 둔다
type ScoreWeights struct {
	StemMass       float64 // 천간 4자가 나눠 갖는 총 질량
	BranchMass     float64 // 지지 4자가 나눠 갖는 총 질량
	MonthBonusRate float64 // 월지에 더해지는 지지 질량 대비 보너스 비율
}

// DefaultScoreWeights 기본 가중치: 천간 30, 지지 70, 월지 보너스 30%
var DefaultScoreWeights = ScoreWeights{
	StemMass:       30,
	BranchMass:     70,
	MonthBonusRate: 0.3,
}

// Score 사주 기둥에서 오행 백분율 분포를 계산한다. 순수 함수이며
// 같은 입력에 대해 항상 같은 결과를 낸다
func Score(pillars PillarSet) (Profile, error) {
	return ScoreWith(pillars, DefaultScoreWeights)
}

// ScoreWith 지정한 가중치로 오행 백분율 분포를 계산한다.
//
// 천간은 4자 기준 균등 분할(기본 7.5씩)로 배속 오행에 전량 기여하고,
// 지지는 4자 기준 균등 분할(기본 17.5씩)에 월지만 보너스를 더해
// 지장간 비율대로 나눠 기여한다. 없는 기둥의 몫은 재분배하지 않는다
func ScoreWith(pillars PillarSet, weights ScoreWeights) (Profile, error) {
	if pillars.Day.Sky == "" {
		return Profile{}, ErrDayStemMissing
	}

	stemUnit := weights.StemMass / 4
	branchUnit := weights.BranchMass / 4
	monthBonus := weights.MonthBonusRate * weights.BranchMass

	var raw Profile

	skies := []string{pillars.Year.Sky, pillars.Month.Sky, pillars.Day.Sky}
	grounds := []struct {
		branch  string
		isMonth bool
	}{
		{pillars.Year.Ground, false},
		{pillars.Month.Ground, true},
		{pillars.Day.Ground, false},
	}
	if pillars.HasTime {
		skies = append(skies, pillars.Time.Sky)
		grounds = append(grounds, struct {
			branch  string
			isMonth bool
		}{pillars.Time.Ground, false})
	}

	for _, sky := range skies {
		if sky == "" {
			continue
		}
		if element, ok := stemElements[sky]; ok {
			raw[element] += stemUnit
		}
	}

	for _, g := range grounds {
		if g.branch == "" {
			continue
		}
		components, ok := branchHiddenStems[g.branch]
		if !ok {
			continue
		}
		weight := branchUnit
		if g.isMonth {
			weight += monthBonus
		}
		distributeHidden(&raw, components, weight)
	}

	return raw.normalize(), nil
}

// distributeHidden 지지 하나의 몫을 지장간 비율대로 오행에 나눠 더한다
func distributeHidden(profile *Profile, components []hiddenStem, weight float64) {
	var rateSum float64
	for _, c := range components {
		rateSum += c.Rate
	}
	if rateSum == 0 {
		return
	}
	for _, c := range components {
		profile[c.Element] += weight * c.Rate / rateSum
	}
}
