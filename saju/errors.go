package saju

import "errors"

var (
	// ErrInvalidCalendar 지원하지 않는 음양력 구분값 (요청 검증 실패)
	ErrInvalidCalendar = errors.New("지원하지 않는 음양력 구분입니다")

	// ErrManseNotFound 만세력 참조 데이터에 해당 날짜의 기록이 없음.
	// 사용자 입력 오류가 아니라 참조 데이터 공백이므로 구분해서 다룬다
	ErrManseNotFound = errors.New("만세력 데이터에서 해당 기록을 찾을 수 없습니다")

	// ErrDayStemMissing 일간 없이 오행 점수 계산이 호출됨 (상류 데이터 손상)
	ErrDayStemMissing = errors.New("일간(day sky)이 없어 오행 점수를 계산할 수 없습니다")

	// ErrNoBaseProfile 저장된 오행 비율 없이 일진 보정이 호출됨 (상류 데이터 손상)
	ErrNoBaseProfile = errors.New("저장된 오행 비율이 없어 일진 보정을 할 수 없습니다")
)
