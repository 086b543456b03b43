package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDeficient(t *testing.T) {
	c := Classify(Profile{3, 24, 24, 24, 25})
	assert.Equal(t, CategoryDeficient, c.Category)
	assert.Equal(t, []Element{Wood}, c.Lacking)
	assert.Equal(t, []Element{Water}, c.Strong)
	assert.Equal(t, []Element{Earth}, c.Suppressors)
}

func TestClassifyBalanced(t *testing.T) {
	c := Classify(Profile{18, 19, 20, 21, 22})
	assert.Equal(t, CategoryBalanced, c.Category)
	assert.Equal(t, []Element{Wood}, c.Lacking)
	assert.Equal(t, []Element{Water}, c.Strong)
}

func TestClassifySkewed(t *testing.T) {
	c := Classify(Profile{5, 5, 5, 5, 80})
	assert.Equal(t, CategorySkewed, c.Category)
	// 동률 최솟값은 모두 부족 목록에 들어간다
	assert.Equal(t, []Element{Wood, Fire, Earth, Metal}, c.Lacking)
	assert.Equal(t, []Element{Water}, c.Strong)
	// 수의 상극은 토
	assert.Equal(t, []Element{Earth}, c.Suppressors)
}

func TestClassifyAllZero(t *testing.T) {
	// 전부 0인 퇴화 입력도 실패하지 않고 편차 0의 균형으로 처리한다
	c := Classify(Profile{})
	assert.Equal(t, CategoryBalanced, c.Category)
	assert.Len(t, c.Lacking, 5)
	assert.Len(t, c.Strong, 5)
}

func TestSuppressorCycle(t *testing.T) {
	// 금극목, 수극화, 목극토, 화극금, 토극수
	assert.Equal(t, Metal, Wood.Suppressor())
	assert.Equal(t, Water, Fire.Suppressor())
	assert.Equal(t, Wood, Earth.Suppressor())
	assert.Equal(t, Fire, Metal.Suppressor())
	assert.Equal(t, Earth, Water.Suppressor())

	// 모든 오행은 상극을 가지며 자기 자신은 아니다
	for _, e := range Elements {
		assert.NotEqual(t, e, e.Suppressor())
	}
}
