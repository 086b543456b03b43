package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 갑자년 병인월 무오일 임자시 기준 사주
func fourPillars() PillarSet {
	return PillarSet{
		Year:    Pillar{Sky: "갑", Ground: "자"},
		Month:   Pillar{Sky: "병", Ground: "인"},
		Day:     Pillar{Sky: "무", Ground: "오"},
		Time:    Pillar{Sky: "임", Ground: "자"},
		HasTime: true,
	}
}

func TestScoreFourPillars(t *testing.T) {
	profile, err := Score(fourPillars())
	require.NoError(t, err)

	// 천간 30 / 지지 70 / 월지 보너스 21 모델로 손계산한 기대값
	assert.InDelta(t, 23.2, profile[Wood], 0.05)
	assert.InDelta(t, 23.7, profile[Fire], 0.05)
	assert.InDelta(t, 18.0, profile[Earth], 0.05)
	assert.InDelta(t, 0.0, profile[Metal], 0.05)
	assert.InDelta(t, 35.1, profile[Water], 0.05)

	assert.InDelta(t, 100.0, profile.Sum(), 0.5)
}

func TestScoreDeterministic(t *testing.T) {
	first, err := Score(fourPillars())
	require.NoError(t, err)
	second, err := Score(fourPillars())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScoreThreePillars(t *testing.T) {
	pillars := fourPillars()
	pillars.Time = Pillar{}
	pillars.HasTime = false

	profile, err := Score(pillars)
	require.NoError(t, err)

	// 시주 없는 삼주도 합은 100으로 정규화된다
	assert.InDelta(t, 100.0, profile.Sum(), 0.5)

	// 임자시가 빠졌으니 수 비중이 사주 계산보다 낮아야 한다
	full, err := Score(fourPillars())
	require.NoError(t, err)
	assert.Less(t, profile[Water], full[Water])
}

func TestScoreMonthBonus(t *testing.T) {
	weights := DefaultScoreWeights
	weights.MonthBonusRate = 0

	noBonus, err := ScoreWith(fourPillars(), weights)
	require.NoError(t, err)
	withBonus, err := Score(fourPillars())
	require.NoError(t, err)

	// 월지가 인(寅)이므로 보너스가 빠지면 목 비중이 내려간다
	assert.Less(t, noBonus[Wood], withBonus[Wood])
	assert.InDelta(t, 100.0, noBonus.Sum(), 0.5)
}

func TestScoreDayStemMissing(t *testing.T) {
	pillars := fourPillars()
	pillars.Day.Sky = ""

	_, err := Score(pillars)
	assert.ErrorIs(t, err, ErrDayStemMissing)
}

func TestScoreMissingPillarNotRedistributed(t *testing.T) {
	// 년주 천간이 빈 경우 그 몫은 다른 천간으로 재분배되지 않는다:
	// 원래 천간 몫을 가진 오행의 절대 질량이 줄어든 채 정규화된다
	pillars := fourPillars()
	pillars.Year.Sky = ""

	profile, err := Score(pillars)
	require.NoError(t, err)
	full, err := Score(fourPillars())
	require.NoError(t, err)

	assert.InDelta(t, 100.0, profile.Sum(), 0.5)
	assert.Less(t, profile[Wood], full[Wood])
}
