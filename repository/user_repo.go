package repository

import (
	"database/sql"
	"errors"

	"saju_food_chat/db"
	"saju_food_chat/models"
)

// Users 테이블의 사주 관련 필드 접근

const userColumns = `id, firebase_uid, email, nickname, gender,
	birth_date, birth_time, birth_calendar,
	oheng_wood, oheng_fire, oheng_earth, oheng_metal, oheng_water, day_sky`

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u         models.User
		nickname  sql.NullString
		birthTime sql.NullString
		daySky    sql.NullString
		wood      sql.NullFloat64
		fire      sql.NullFloat64
		earth     sql.NullFloat64
		metal     sql.NullFloat64
		water     sql.NullFloat64
	)
	err := row.Scan(
		&u.ID, &u.FirebaseUID, &u.Email, &nickname, &u.Gender,
		&u.BirthDate, &birthTime, &u.BirthCalendar,
		&wood, &fire, &earth, &metal, &water, &daySky,
	)
	if err != nil {
		return nil, err
	}
	u.Nickname = nickname.String
	if birthTime.Valid {
		t := birthTime.String
		u.BirthTime = &t
	}
	if daySky.Valid {
		s := daySky.String
		u.DaySky = &s
	}
	assignFloat := func(dst **float64, v sql.NullFloat64) {
		if v.Valid {
			f := v.Float64
			*dst = &f
		}
	}
	assignFloat(&u.OhengWood, wood)
	assignFloat(&u.OhengFire, fire)
	assignFloat(&u.OhengEarth, earth)
	assignFloat(&u.OhengMetal, metal)
	assignFloat(&u.OhengWater, water)
	return &u, nil
}

// GetUserByUID Firebase UID로 사용자 조회. 없으면 sql.ErrNoRows
func GetUserByUID(uid string) (*models.User, error) {
	row := db.DB.QueryRow(`SELECT `+userColumns+` FROM Users WHERE firebase_uid = ?`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return user, nil
}

// UpdateUserOheng 계산된 오행 점수 다섯 개와 일간을 저장한다
func UpdateUserOheng(userID int64, scores models.OhengScores, daySky string) error {
	_, err := db.DB.Exec(`
        UPDATE Users
        SET oheng_wood=?, oheng_fire=?, oheng_earth=?, oheng_metal=?, oheng_water=?, day_sky=?
        WHERE id=?
    `, scores.Wood, scores.Fire, scores.Earth, scores.Metal, scores.Water, daySky, userID)
	return err
}

// UpdateUserDaySky 일간만 복구 저장한다 (기존 사용자 데이터 자가 치유 경로)
func UpdateUserDaySky(userID int64, daySky string) error {
	_, err := db.DB.Exec(`UPDATE Users SET day_sky=? WHERE id=?`, daySky, userID)
	return err
}

// ClearUserOheng 만세력 기록이 없어 계산이 불가능해진 경우 저장값을 비운다
func ClearUserOheng(userID int64) error {
	_, err := db.DB.Exec(`
        UPDATE Users
        SET oheng_wood=NULL, oheng_fire=NULL, oheng_earth=NULL, oheng_metal=NULL, oheng_water=NULL, day_sky=NULL
        WHERE id=?
    `, userID)
	return err
}

// UpdateUserBirth 생년월일 정보를 수정한다. birthTime이 nil이면 생시 모름
func UpdateUserBirth(userID int64, birthDate string, birthTime *string, calendar string) error {
	var bt interface{}
	if birthTime != nil {
		bt = *birthTime
	}
	_, err := db.DB.Exec(`
        UPDATE Users SET birth_date=?, birth_time=?, birth_calendar=? WHERE id=?
    `, birthDate, bt, calendar, userID)
	return err
}
