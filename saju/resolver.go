package saju

import (
	"fmt"
	"time"
)

// Resolver 생년월일(+생시, 음양력 구분)을 만세력 기록으로 해석한다.
// 자시 일주 보정과 절입 시각에 따른 년주/월주 보정을 적용한다
type Resolver struct {
	Store ManseStore
}

// NewResolver 만세력 저장소 위에 Resolver를 생성
func NewResolver(store ManseStore) Resolver {
	return Resolver{Store: store}
}

// Resolve 생년월일을 만세력 기록으로 해석한다.
//
// 1단계(자시 보정): 생시가 23:30 이후이면 하루 뒤의 날짜로 조회한다.
// 2단계(조회): 양력은 solarDate로, 음력/윤달은 (lunarDate, leapMonth)로 찾는다.
// 3단계(절입 보정): 기록에 절입 시각이 있고 생시를 아는 경우, 보정 전의 실제
// 출생 시각이 절입 시각보다 빠르면 직전 절기 기록의 년주/월주로 바꾼다.
// 일주/시주는 절입 보정의 영향을 받지 않는다.
func (r Resolver) Resolve(birthDate time.Time, birthTime *Clock, calendar CalendarType) (ManseRecord, error) {
	searchDate := birthDate
	if birthTime != nil && birthTime.MinuteOfDay() >= lateNightStartMin {
		searchDate = searchDate.AddDate(0, 0, 1)
	}

	var (
		record *ManseRecord
		err    error
	)
	switch calendar {
	case CalendarSolar:
		record, err = r.Store.BySolarDate(searchDate)
	case CalendarLunar:
		record, err = r.Store.ByLunarDate(searchDate, false)
	case CalendarLunarLeap:
		record, err = r.Store.ByLunarDate(searchDate, true)
	default:
		return ManseRecord{}, fmt.Errorf("%w: %q", ErrInvalidCalendar, calendar)
	}
	if err != nil {
		return ManseRecord{}, fmt.Errorf("만세력 조회 실패: %w", err)
	}
	if record == nil {
		return ManseRecord{}, fmt.Errorf("%w (date=%s, calendar=%s)",
			ErrManseNotFound, searchDate.Format("2006-01-02"), calendar)
	}

	resolved := *record

	// 절입 시각 비교는 자시 보정 전의 실제 출생 시각 기준
	if record.SeasonStartTime != nil && birthTime != nil {
		birthInstant := combine(birthDate, *birthTime, record.SeasonStartTime.Location())
		if birthInstant.Before(*record.SeasonStartTime) {
			previous, err := r.Store.LatestBefore(record.SolarDate)
			if err != nil {
				return ManseRecord{}, fmt.Errorf("직전 절기 조회 실패: %w", err)
			}
			// 직전 기록이 없으면 보정 없이 원래 년주/월주 유지
			if previous != nil {
				resolved.YearSky = previous.YearSky
				resolved.YearGround = previous.YearGround
				resolved.MonthSky = previous.MonthSky
				resolved.MonthGround = previous.MonthGround
			}
		}
	}

	return resolved, nil
}

// ResolveToday 오늘 날짜의 만세력 기록(일진)을 조회한다
func (r Resolver) ResolveToday(now time.Time) (ManseRecord, error) {
	record, err := r.Store.BySolarDate(now)
	if err != nil {
		return ManseRecord{}, fmt.Errorf("일진 조회 실패: %w", err)
	}
	if record == nil {
		return ManseRecord{}, fmt.Errorf("%w (오늘 날짜=%s)", ErrManseNotFound, now.Format("2006-01-02"))
	}
	return *record, nil
}

func combine(date time.Time, clock Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = date.Location()
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour, clock.Minute, 0, 0, loc)
}
