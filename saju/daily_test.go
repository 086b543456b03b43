package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustForTodaySameElement(t *testing.T) {
	base := Profile{20, 20, 20, 20, 20}

	// 갑(목) + 인(대표 목): 목에 40이 쌓인다 → 60/140
	adjusted := AdjustForToday(base, "갑", "인", DefaultDailyWeights)
	assert.InDelta(t, 42.9, adjusted[Wood], 0.05)
	assert.InDelta(t, 14.3, adjusted[Fire], 0.05)
	assert.InDelta(t, 100.0, adjusted.Sum(), 0.5)
}

func TestAdjustForTodayDistinctElements(t *testing.T) {
	base := Profile{20, 20, 20, 20, 20}

	// 갑(목) + 자(대표 수): 목 40/140, 수 40/140
	adjusted := AdjustForToday(base, "갑", "자", DefaultDailyWeights)
	assert.InDelta(t, 28.6, adjusted[Wood], 0.05)
	assert.InDelta(t, 28.6, adjusted[Water], 0.05)
	assert.InDelta(t, 14.3, adjusted[Earth], 0.05)
}

func TestAdjustForTodayUnknownGanji(t *testing.T) {
	base := Profile{20, 20, 20, 20, 20}

	// 조견표에 없는 글자는 무시하고 기본 분포가 유지된다
	adjusted := AdjustForToday(base, "?", "?", DefaultDailyWeights)
	assert.Equal(t, base, adjusted)
}

func TestAdjustForTodayBaseUnchanged(t *testing.T) {
	base := Profile{50, 10, 10, 10, 20}
	_ = AdjustForToday(base, "갑", "자", DefaultDailyWeights)

	// 입력 프로필은 변형되지 않는다
	assert.Equal(t, Profile{50, 10, 10, 10, 20}, base)
}
