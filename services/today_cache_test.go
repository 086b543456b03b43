package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saju_food_chat/models"
)

func TestTodayCacheDateRollover(t *testing.T) {
	cache := newTodayCache()

	entry := models.TodayIljinResponse{UserDaySky: "갑"}
	cache.set("uid-1", "2026-08-29", entry)

	got, ok := cache.get("uid-1", "2026-08-29")
	assert.True(t, ok)
	assert.Equal(t, "갑", got.UserDaySky)

	// 날짜가 다르면 무조건 미스
	_, ok = cache.get("uid-1", "2026-08-30")
	assert.False(t, ok)

	// 다음 날짜를 저장하면 이전 날짜 항목은 버려진다
	cache.set("uid-2", "2026-08-30", entry)
	_, ok = cache.get("uid-1", "2026-08-30")
	assert.False(t, ok)
}

func TestTodayCacheInvalidate(t *testing.T) {
	cache := newTodayCache()
	cache.set("uid-1", "2026-08-29", models.TodayIljinResponse{})
	cache.invalidate("uid-1")

	_, ok := cache.get("uid-1", "2026-08-29")
	assert.False(t, ok)
}

func TestTodayCachePurgeIfStale(t *testing.T) {
	cache := newTodayCache()
	cache.set("uid-1", "2026-08-29", models.TodayIljinResponse{})
	cache.set("uid-2", "2026-08-29", models.TodayIljinResponse{})

	// 같은 날짜면 아무것도 지우지 않는다
	assert.Equal(t, 0, cache.purgeIfStale("2026-08-29"))

	// 날짜가 넘어가면 전체를 비운다
	assert.Equal(t, 2, cache.purgeIfStale("2026-08-30"))
	_, ok := cache.get("uid-1", "2026-08-30")
	assert.False(t, ok)
}
