package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenStarFromGapDay(t *testing.T) {
	// 갑(양목) 일간 기준 십신 조견
	cases := []struct {
		other string
		want  string
	}{
		{"갑", "비견"},
		{"을", "겁재"},
		{"병", "식신"},
		{"정", "상관"},
		{"무", "편재"},
		{"기", "정재"},
		{"경", "편관"},
		{"신", "정관"},
		{"임", "편인"},
		{"계", "정인"},
	}
	for _, c := range cases {
		got, ok := TenStar("갑", c.other)
		require.True(t, ok, c.other)
		assert.Equal(t, c.want, got, "갑 일간, 타간 %s", c.other)
	}
}

func TestTenStarFromYinDay(t *testing.T) {
	// 음간 일간도 음양 동이 판정이 맞아야 한다: 계(음수) 기준
	got, ok := TenStar("계", "계")
	require.True(t, ok)
	assert.Equal(t, "비견", got)

	got, ok = TenStar("계", "임")
	require.True(t, ok)
	assert.Equal(t, "겁재", got)

	// 계(음수)가 생하는 목 중 양간 갑은 상관
	got, ok = TenStar("계", "갑")
	require.True(t, ok)
	assert.Equal(t, "상관", got)
}

func TestTenStarUnknownStem(t *testing.T) {
	_, ok := TenStar("갑", "?")
	assert.False(t, ok)
	_, ok = TenStar("?", "갑")
	assert.False(t, ok)
}
