package models

import "time"

// User Users 테이블의 사주 계산에 필요한 부분.
// 오행 점수와 일간은 생년월일 정보가 저장/변경될 때 다시 계산되어 채워진다
type User struct {
	ID            int64     `db:"id" json:"id"`
	FirebaseUID   string    `db:"firebase_uid" json:"firebase_uid"`
	Email         string    `db:"email" json:"email"`
	Nickname      string    `db:"nickname" json:"nickname"`
	Gender        string    `db:"gender" json:"gender"`
	BirthDate     time.Time `db:"birth_date" json:"birth_date"`
	BirthTime     *string   `db:"birth_time" json:"birth_time,omitempty"` // "15:04:05", 모르면 NULL
	BirthCalendar string    `db:"birth_calendar" json:"birth_calendar"`   // solar / lunar / lunar_leap
	OhengWood     *float64  `db:"oheng_wood" json:"oheng_wood,omitempty"`
	OhengFire     *float64  `db:"oheng_fire" json:"oheng_fire,omitempty"`
	OhengEarth    *float64  `db:"oheng_earth" json:"oheng_earth,omitempty"`
	OhengMetal    *float64  `db:"oheng_metal" json:"oheng_metal,omitempty"`
	OhengWater    *float64  `db:"oheng_water" json:"oheng_water,omitempty"`
	DaySky        *string   `db:"day_sky" json:"day_sky,omitempty"` // 일간 한 글자
}

// HasOhengScores 다섯 오행 점수가 하나라도 저장되어 있는지
func (u *User) HasOhengScores() bool {
	return u.OhengWood != nil || u.OhengFire != nil || u.OhengEarth != nil ||
		u.OhengMetal != nil || u.OhengWater != nil
}

// BirthUpdate 생년월일 정보 수정 요청 본문
type BirthUpdate struct {
	BirthDate     string `json:"birth_date" example:"1999-03-21"` // YYYY-MM-DD
	BirthHour     *int   `json:"birth_hour,omitempty" example:"14"`
	BirthMinute   *int   `json:"birth_minute,omitempty" example:"30"`
	TimeUnknown   bool   `json:"time_unknown" example:"false"`
	BirthCalendar string `json:"birth_calendar" example:"solar"` // solar / lunar / lunar_leap
}
