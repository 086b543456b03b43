package services

import (
	"sync"

	"saju_food_chat/models"
)

// 일진 보정 결과의 메모리 캐시. 결과는 해당 날짜 하루만 유효하므로
// 키에 날짜를 포함하고, 날짜가 넘어가면 통째로 버린다

type todayCache struct {
	mu      sync.RWMutex
	date    string // 현재 담고 있는 날짜 (YYYY-MM-DD)
	entries map[string]models.TodayIljinResponse
}

func newTodayCache() *todayCache {
	return &todayCache{entries: make(map[string]models.TodayIljinResponse)}
}

var iljinCache = newTodayCache()

// get 해당 날짜의 캐시 항목을 찾는다. 날짜가 다르면 무조건 미스
func (c *todayCache) get(uid, date string) (models.TodayIljinResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.date != date {
		return models.TodayIljinResponse{}, false
	}
	entry, ok := c.entries[uid]
	return entry, ok
}

// set 항목을 저장한다. 날짜가 바뀌어 있으면 이전 날짜 항목을 모두 버린다
func (c *todayCache) set(uid, date string, value models.TodayIljinResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.date != date {
		c.date = date
		c.entries = make(map[string]models.TodayIljinResponse)
	}
	c.entries[uid] = value
}

// invalidate 특정 사용자의 캐시를 지운다 (생년월일 변경, 재계산 등)
func (c *todayCache) invalidate(uid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, uid)
}

// purgeIfStale 오늘 날짜가 아니면 전체를 비우고 지운 항목 수를 반환한다
func (c *todayCache) purgeIfStale(today string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.date == today {
		return 0
	}
	purged := len(c.entries)
	c.date = today
	c.entries = make(map[string]models.TodayIljinResponse)
	return purged
}

// PurgeStaleIljinCache 날짜가 넘어간 일진 캐시를 비운다. 스케줄러가 호출한다
func PurgeStaleIljinCache(today string) int {
	return iljinCache.purgeIfStale(today)
}
