package models

// 응답 코드 정의
const (
	// 성공
	CodeSuccess = 0

	// 클라이언트 오류 (1000-1999)
	CodeInvalidParams    = 1000 // 잘못된 파라미터
	CodeMissingParams    = 1001 // 필수 파라미터 누락
	CodeUserNotFound     = 1002 // 사용자 없음
	CodeMissingBirthInfo = 1003 // 생년월일 정보 부족
	CodeInvalidCalendar  = 1004 // 잘못된 음양력 구분

	// 서버/데이터 오류 (2000-2999)
	CodeServerError   = 2000 // 서버 내부 오류
	CodeDatabaseError = 2001 // 데이터베이스 오류
	CodeManseNotFound = 2002 // 만세력 데이터 없음 (참조 데이터 공백)
	CodeSajuCalcError = 2003 // 사주 계산 오류
)

// 응답 코드별 메시지
var CodeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeInvalidParams:    "잘못된 파라미터입니다",
	CodeMissingParams:    "필수 파라미터가 누락되었습니다",
	CodeUserNotFound:     "사용자를 찾을 수 없습니다",
	CodeMissingBirthInfo: "사주 계산에 필요한 생년월일 정보가 부족합니다",
	CodeInvalidCalendar:  "지원하지 않는 음양력 구분입니다",
	CodeServerError:      "서버 내부 오류가 발생했습니다",
	CodeDatabaseError:    "데이터베이스 오류가 발생했습니다",
	CodeManseNotFound:    "만세력 데이터에서 해당 기록을 찾을 수 없습니다",
	CodeSajuCalcError:    "사주 계산 중 오류가 발생했습니다",
}

// NewSuccessResponse 성공 응답 생성
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse 코드 테이블 기반 오류 응답 생성
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "알 수 없는 오류"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse 메시지를 직접 지정한 오류 응답 생성
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
