package saju

import "time"

// CalendarType 생년월일의 음양력 구분
type CalendarType string

const (
	CalendarSolar     CalendarType = "solar"      // 양력
	CalendarLunar     CalendarType = "lunar"      // 음력 (평달)
	CalendarLunarLeap CalendarType = "lunar_leap" // 음력 윤달
)

// Clock 시각(시/분). 생시는 모를 수 있으므로 *Clock으로 전달한다
type Clock struct {
	Hour   int
	Minute int
}

// NewClock 시/분으로 Clock을 생성
func NewClock(hour, minute int) *Clock {
	return &Clock{Hour: hour, Minute: minute}
}

// MinuteOfDay 하루 기준 분 단위 값 (0~1439)
func (c Clock) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// 자시 일주 보정 기준: 23:30 이후 출생은 다음 날의 일주로 본다
const lateNightStartMin = 23*60 + 30

// ManseRecord 만세력 한 줄: 양력 날짜 하나에 대한 간지 정보.
// 읽기 전용 참조 데이터이며 보정 시에는 복사본의 년주/월주만 바꾼다
type ManseRecord struct {
	ID              int64      `db:"id"`
	SolarDate       time.Time  `db:"solarDate"`
	LunarDate       time.Time  `db:"lunarDate"`
	Season          string     `db:"season"`
	SeasonStartTime *time.Time `db:"seasonStartTime"` // 절입 시각 (없을 수 있음)
	LeapMonth       bool       `db:"leapMonth"`
	YearSky         string     `db:"yearSky"`
	YearGround      string     `db:"yearGround"`
	MonthSky        string     `db:"monthSky"`
	MonthGround     string     `db:"monthGround"`
	DaySky          string     `db:"daySky"`
	DayGround       string     `db:"dayGround"`
}

// ManseStore 만세력 참조 데이터 조회 인터페이스.
// 기록이 없으면 (nil, nil)을 반환하고, 오류는 실제 저장소 장애일 때만 반환한다
type ManseStore interface {
	// BySolarDate 양력 날짜로 조회
	BySolarDate(date time.Time) (*ManseRecord, error)

	// ByLunarDate 음력 날짜와 윤달 여부로 조회
	ByLunarDate(date time.Time, leapMonth bool) (*ManseRecord, error)

	// LatestBefore 주어진 양력 날짜보다 앞선 것 중 가장 최신 기록을 조회
	LatestBefore(solarDate time.Time) (*ManseRecord, error)
}
