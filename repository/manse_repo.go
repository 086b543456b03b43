package repository

import (
	"database/sql"
	"errors"
	"time"

	"saju_food_chat/db"
	"saju_food_chat/saju"
)

// 만세력(manses) 참조 테이블 조회.
// 정적 참조 데이터라서 쓰기 경로가 없고, 기록이 없으면 (nil, nil)을 반환한다

const manseColumns = `id, solarDate, lunarDate, season, seasonStartTime, leapMonth,
	yearSky, yearGround, monthSky, monthGround, daySky, dayGround`

// scanManse 한 행을 saju.ManseRecord로 읽는다. 행이 없으면 (nil, nil)
func scanManse(row *sql.Row) (*saju.ManseRecord, error) {
	var (
		rec         saju.ManseRecord
		season      sql.NullString
		seasonStart sql.NullTime
		leapMonth   sql.NullBool
	)
	err := row.Scan(
		&rec.ID, &rec.SolarDate, &rec.LunarDate, &season, &seasonStart, &leapMonth,
		&rec.YearSky, &rec.YearGround, &rec.MonthSky, &rec.MonthGround, &rec.DaySky, &rec.DayGround,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rec.Season = season.String
	if seasonStart.Valid {
		t := seasonStart.Time
		rec.SeasonStartTime = &t
	}
	rec.LeapMonth = leapMonth.Valid && leapMonth.Bool
	return &rec, nil
}

// GetManseBySolarDate 양력 날짜로 만세력 기록 조회
func GetManseBySolarDate(date time.Time) (*saju.ManseRecord, error) {
	row := db.DB.QueryRow(
		`SELECT `+manseColumns+` FROM manses WHERE solarDate = ?`,
		date.Format("2006-01-02"),
	)
	return scanManse(row)
}

// GetManseByLunarDate 음력 날짜와 윤달 여부로 만세력 기록 조회
func GetManseByLunarDate(date time.Time, leapMonth bool) (*saju.ManseRecord, error) {
	row := db.DB.QueryRow(
		`SELECT `+manseColumns+` FROM manses WHERE lunarDate = ? AND leapMonth = ?`,
		date.Format("2006-01-02"), leapMonth,
	)
	return scanManse(row)
}

// GetManseLatestBefore 주어진 양력 날짜보다 앞선 것 중 가장 최신 기록 조회.
// 절입 보정에서 직전 절기의 년주/월주를 가져올 때 쓴다
func GetManseLatestBefore(solarDate time.Time) (*saju.ManseRecord, error) {
	row := db.DB.QueryRow(
		`SELECT `+manseColumns+` FROM manses WHERE solarDate < ? ORDER BY solarDate DESC LIMIT 1`,
		solarDate.Format("2006-01-02"),
	)
	return scanManse(row)
}

// ManseStore saju.ManseStore 구현체. 사주 코어가 이 타입을 통해서만
// 만세력 데이터를 본다
type ManseStore struct{}

func (ManseStore) BySolarDate(date time.Time) (*saju.ManseRecord, error) {
	return GetManseBySolarDate(date)
}

func (ManseStore) ByLunarDate(date time.Time, leapMonth bool) (*saju.ManseRecord, error) {
	return GetManseByLunarDate(date, leapMonth)
}

func (ManseStore) LatestBefore(solarDate time.Time) (*saju.ManseRecord, error) {
	return GetManseLatestBefore(solarDate)
}
