package utils

import (
	"database/sql"
	"errors"
)

// IsSQLNoRowsError 조회 결과 없음 오류인지 확인
func IsSQLNoRowsError(err error) bool {
	return err != nil && errors.Is(err, sql.ErrNoRows)
}
