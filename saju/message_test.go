package saju

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendDeficient(t *testing.T) {
	c := Classify(Profile{3, 24, 24, 24, 25})
	rec := Recommend(c)

	assert.Contains(t, rec.Headline, "목(木)")
	assert.Contains(t, rec.Headline, "많이 부족한")
	assert.Contains(t, rec.Advice, "부족한 목(木) 기운")
	assert.Equal(t, []string{"목(木)"}, rec.Lacking)
}

func TestRecommendSkewedWithSuppressor(t *testing.T) {
	// 강한 수(水)의 상극은 토(土)
	c := Classify(Profile{15, 15, 12, 8, 50})
	rec := Recommend(c)

	assert.Equal(t, CategorySkewed, c.Category)
	assert.Contains(t, rec.Headline, "수(水) 기운이 강하고")
	assert.Contains(t, rec.Advice, "금(金)")
	assert.Contains(t, rec.Advice, "토(土) 기운의 음식")
	assert.Equal(t, []string{"토(土)"}, rec.Suppressors)
}

func TestRecommendOverlapMerged(t *testing.T) {
	// 부족한 수(水)가 강한 화(火)의 상극인 겹침 특례:
	// 보충과 조절을 한 문장으로 합친다
	c := Classify(Profile{18, 45, 15, 12, 10})
	assert.Equal(t, []Element{Water}, c.Lacking)
	assert.Equal(t, []Element{Fire}, c.Strong)

	rec := Recommend(c)
	assert.Contains(t, rec.Advice, "상극 오행이기도 해")
	assert.Contains(t, rec.Advice, "수(水)")
	assert.Contains(t, rec.Advice, "화(火)")
	// 합쳐진 한 문장이므로 별도의 조절 문장은 없다
	assert.NotContains(t, rec.Advice, "눌러줄 수 있어")
}

func TestRecommendBalancedWeakFocus(t *testing.T) {
	c := Classify(Profile{14, 19, 21, 22, 24})
	assert.Equal(t, CategoryBalanced, c.Category)

	rec := Recommend(c)
	// 최약 목(14, 편차 6)이 최강 수(24, 편차 4)보다 기준에서 멀다
	assert.Contains(t, rec.Headline, "목(木) 기운이 조금 약한 편이야")
	assert.Contains(t, rec.Advice, "목(木) 기운")
}

func TestRecommendBalancedStrongFocus(t *testing.T) {
	c := Classify(Profile{17, 19, 20, 19, 25})
	assert.Equal(t, CategoryBalanced, c.Category)

	rec := Recommend(c)
	// 최강 수(25, 편차 5)가 최약 목(17, 편차 3)보다 기준에서 멀다
	assert.Contains(t, rec.Headline, "수(水) 기운이 조금 강한 편이야")
	// 수의 상극인 토 음식을 권한다
	assert.Contains(t, rec.Advice, "토(土) 기운의 음식")
}

func TestRecommendFullTie(t *testing.T) {
	rec := Recommend(Classify(Profile{20, 20, 20, 20, 20}))
	assert.Contains(t, rec.Headline, "고르게 균형")
	assert.True(t, strings.Contains(rec.Advice, "먹고 싶은 메뉴"))
}
