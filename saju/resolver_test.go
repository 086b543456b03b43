package saju

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeManseStore 테스트용 메모리 만세력 저장소
type fakeManseStore struct {
	bySolar map[string]*ManseRecord
	byLunar map[string]*ManseRecord
}

func newFakeManseStore(records ...*ManseRecord) *fakeManseStore {
	s := &fakeManseStore{
		bySolar: make(map[string]*ManseRecord),
		byLunar: make(map[string]*ManseRecord),
	}
	for _, r := range records {
		s.bySolar[r.SolarDate.Format("2006-01-02")] = r
		key := r.LunarDate.Format("2006-01-02")
		if r.LeapMonth {
			key += "+leap"
		}
		s.byLunar[key] = r
	}
	return s
}

func (s *fakeManseStore) BySolarDate(date time.Time) (*ManseRecord, error) {
	return s.bySolar[date.Format("2006-01-02")], nil
}

func (s *fakeManseStore) ByLunarDate(date time.Time, leapMonth bool) (*ManseRecord, error) {
	key := date.Format("2006-01-02")
	if leapMonth {
		key += "+leap"
	}
	return s.byLunar[key], nil
}

func (s *fakeManseStore) LatestBefore(solarDate time.Time) (*ManseRecord, error) {
	var latest *ManseRecord
	for _, r := range s.bySolar {
		if r.SolarDate.Before(solarDate) && (latest == nil || r.SolarDate.After(latest.SolarDate)) {
			latest = r
		}
	}
	return latest, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveSolar(t *testing.T) {
	record := &ManseRecord{
		SolarDate: day(1995, 3, 10),
		LunarDate: day(1995, 2, 10),
		DaySky:    "갑", DayGround: "자",
	}
	resolver := NewResolver(newFakeManseStore(record))

	resolved, err := resolver.Resolve(day(1995, 3, 10), NewClock(10, 0), CalendarSolar)
	require.NoError(t, err)
	assert.Equal(t, "갑", resolved.DaySky)
}

func TestResolveLunarAndLeap(t *testing.T) {
	plain := &ManseRecord{
		SolarDate: day(1995, 3, 10),
		LunarDate: day(1995, 2, 10),
		DaySky:    "갑", DayGround: "자",
	}
	leap := &ManseRecord{
		SolarDate: day(1995, 4, 9),
		LunarDate: day(1995, 2, 10),
		LeapMonth: true,
		DaySky:    "을", DayGround: "축",
	}
	resolver := NewResolver(newFakeManseStore(plain, leap))

	resolved, err := resolver.Resolve(day(1995, 2, 10), nil, CalendarLunar)
	require.NoError(t, err)
	assert.Equal(t, "갑", resolved.DaySky)

	resolved, err = resolver.Resolve(day(1995, 2, 10), nil, CalendarLunarLeap)
	require.NoError(t, err)
	assert.Equal(t, "을", resolved.DaySky)
}

func TestResolveMidnightShift(t *testing.T) {
	// 23:30 이후 출생은 다음 날짜의 기록으로 조회한다
	today := &ManseRecord{SolarDate: day(1995, 3, 10), DaySky: "갑"}
	tomorrow := &ManseRecord{SolarDate: day(1995, 3, 11), DaySky: "을"}
	resolver := NewResolver(newFakeManseStore(today, tomorrow))

	resolved, err := resolver.Resolve(day(1995, 3, 10), NewClock(23, 45), CalendarSolar)
	require.NoError(t, err)
	assert.Equal(t, "을", resolved.DaySky)

	// 23:29는 그대로 당일
	resolved, err = resolver.Resolve(day(1995, 3, 10), NewClock(23, 29), CalendarSolar)
	require.NoError(t, err)
	assert.Equal(t, "갑", resolved.DaySky)
}

func TestResolveSeasonCorrection(t *testing.T) {
	seasonStart := time.Date(1995, 3, 10, 10, 0, 0, 0, time.UTC)
	previous := &ManseRecord{
		SolarDate: day(1995, 3, 9),
		YearSky:   "갑", YearGround: "술",
		MonthSky: "병", MonthGround: "인",
		DaySky: "계",
	}
	record := &ManseRecord{
		SolarDate:       day(1995, 3, 10),
		SeasonStartTime: &seasonStart,
		YearSky:         "을", YearGround: "해",
		MonthSky: "기", MonthGround: "묘",
		DaySky: "갑", DayGround: "자",
	}
	resolver := NewResolver(newFakeManseStore(previous, record))

	// 절입 전 출생: 년주/월주는 직전 절기 기록을 따르고 일주는 그대로
	resolved, err := resolver.Resolve(day(1995, 3, 10), NewClock(8, 0), CalendarSolar)
	require.NoError(t, err)
	assert.Equal(t, "갑", resolved.YearSky)
	assert.Equal(t, "병", resolved.MonthSky)
	assert.Equal(t, "인", resolved.MonthGround)
	assert.Equal(t, "갑", resolved.DaySky)

	// 절입 후 출생: 보정 없음
	resolved, err = resolver.Resolve(day(1995, 3, 10), NewClock(12, 0), CalendarSolar)
	require.NoError(t, err)
	assert.Equal(t, "을", resolved.YearSky)
	assert.Equal(t, "기", resolved.MonthSky)
}

func TestResolveSeasonCorrectionNoPrevious(t *testing.T) {
	// 직전 절기 기록이 없으면 보정 없이 원래 기둥을 유지한다
	seasonStart := time.Date(1995, 3, 10, 10, 0, 0, 0, time.UTC)
	record := &ManseRecord{
		SolarDate:       day(1995, 3, 10),
		SeasonStartTime: &seasonStart,
		YearSky:         "을", MonthSky: "기", DaySky: "갑",
	}
	resolver := NewResolver(newFakeManseStore(record))

	resolved, err := resolver.Resolve(day(1995, 3, 10), NewClock(8, 0), CalendarSolar)
	require.NoError(t, err)
	assert.Equal(t, "을", resolved.YearSky)
	assert.Equal(t, "기", resolved.MonthSky)
}

func TestResolveSeasonCorrectionNeedsBirthTime(t *testing.T) {
	// 생시를 모르면 절입 시각 비교를 할 수 없으므로 보정하지 않는다
	seasonStart := time.Date(1995, 3, 10, 10, 0, 0, 0, time.UTC)
	previous := &ManseRecord{SolarDate: day(1995, 3, 9), YearSky: "갑", MonthSky: "병"}
	record := &ManseRecord{
		SolarDate:       day(1995, 3, 10),
		SeasonStartTime: &seasonStart,
		YearSky:         "을", MonthSky: "기", DaySky: "갑",
	}
	resolver := NewResolver(newFakeManseStore(previous, record))

	resolved, err := resolver.Resolve(day(1995, 3, 10), nil, CalendarSolar)
	require.NoError(t, err)
	assert.Equal(t, "을", resolved.YearSky)
}

func TestResolveErrors(t *testing.T) {
	resolver := NewResolver(newFakeManseStore())

	_, err := resolver.Resolve(day(1995, 3, 10), nil, CalendarType("gregorian"))
	assert.ErrorIs(t, err, ErrInvalidCalendar)

	_, err = resolver.Resolve(day(1800, 1, 1), nil, CalendarSolar)
	assert.ErrorIs(t, err, ErrManseNotFound)
}

func TestResolveToday(t *testing.T) {
	record := &ManseRecord{SolarDate: day(2026, 8, 29), DaySky: "병", DayGround: "오"}
	resolver := NewResolver(newFakeManseStore(record))

	resolved, err := resolver.ResolveToday(day(2026, 8, 29))
	require.NoError(t, err)
	assert.Equal(t, "병", resolved.DaySky)

	_, err = resolver.ResolveToday(day(2026, 8, 30))
	assert.ErrorIs(t, err, ErrManseNotFound)
}
