package saju

// Pillar 간지 한 쌍 (천간 + 지지)
type Pillar struct {
	Sky    string // 천간
	Ground string // 지지
}

// PillarSet 사주 기둥 묶음. 생시를 모르면 시주 없이 삼주로 계산한다
type PillarSet struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Time  Pillar
	// HasTime 시주 존재 여부. 시주 없음은 오류가 아니라 삼주 계산 모드
	HasTime bool
}

// NewPillarSet 만세력 기록과 시주로 PillarSet을 구성한다
func NewPillarSet(record ManseRecord, timePillar Pillar, hasTime bool) PillarSet {
	ps := PillarSet{
		Year:  Pillar{Sky: record.YearSky, Ground: record.YearGround},
		Month: Pillar{Sky: record.MonthSky, Ground: record.MonthGround},
		Day:   Pillar{Sky: record.DaySky, Ground: record.DayGround},
	}
	if hasTime {
		ps.Time = timePillar
		ps.HasTime = true
	}
	return ps
}

// DeriveTimePillar 일간과 생시로 시주를 계산한다.
// 생시가 없거나 시두법 조견표에 일간이 없으면 (Pillar{}, false)를 반환하며,
// 이는 오류가 아니라 삼주 계산으로 이어지는 정상 경로다
func DeriveTimePillar(daySky string, birthTime *Clock) (Pillar, bool) {
	if birthTime == nil {
		return Pillar{}, false
	}

	slotIdx := findTimeSlot(birthTime.MinuteOfDay())
	if slotIdx < 0 {
		return Pillar{}, false
	}

	start, ok := timeStemStart[daySky]
	if !ok {
		return Pillar{}, false
	}

	return Pillar{
		Sky:    stems[(start+slotIdx)%len(stems)],
		Ground: timeSlots[slotIdx].Branch,
	}, true
}

// findTimeSlot 분 단위 시각이 속하는 시진 인덱스를 찾는다.
// 자시는 자정을 감싸므로 범위 검사 대신 OR 검사를 쓴다.
// 하루 범위(0~1439)를 벗어난 값은 자시 OR 검사에 잘못 걸리므로 먼저 거른다
func findTimeSlot(minuteOfDay int) int {
	if minuteOfDay < 0 || minuteOfDay >= 24*60 {
		return -1
	}
	for i, slot := range timeSlots {
		if slot.StartMin > slot.EndMin {
			// 자정을 넘는 구간 (23:30~01:29)
			if minuteOfDay >= slot.StartMin || minuteOfDay <= slot.EndMin {
				return i
			}
			continue
		}
		if minuteOfDay >= slot.StartMin && minuteOfDay <= slot.EndMin {
			return i
		}
	}
	return -1
}
