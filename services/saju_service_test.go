package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saju_food_chat/config"
	"saju_food_chat/logger"
	"saju_food_chat/models"
	"saju_food_chat/saju"
)

func TestMain(m *testing.M) {
	// 서비스 코드가 전역 로거를 쓰므로 기본 설정으로 초기화해 둔다
	_ = logger.Init(&config.Config{})
	os.Exit(m.Run())
}

func intPtr(v int) *int           { return &v }
func strPtr(s string) *string     { return &s }
func floatPtr(v float64) *float64 { return &v }

func TestUpdateBirthInfoRejectsOutOfRangeTime(t *testing.T) {
	// MySQL TIME은 25:30 같은 값도 받아주므로 요청 단계에서 막아야 한다.
	// 안 막으면 자시 보정과 시진 판정이 다음 날 기둥으로 흘러간다
	cases := []models.BirthUpdate{
		{BirthDate: "1995-03-10", BirthCalendar: "solar", BirthHour: intPtr(25), BirthMinute: intPtr(30)},
		{BirthDate: "1995-03-10", BirthCalendar: "solar", BirthHour: intPtr(-1), BirthMinute: intPtr(0)},
		{BirthDate: "1995-03-10", BirthCalendar: "solar", BirthHour: intPtr(12), BirthMinute: intPtr(60)},
	}
	for _, c := range cases {
		_, err := UpdateBirthInfo(nil, "uid-1", c)
		assert.ErrorIs(t, err, ErrInvalidBirthTime, "%02d:%02d", *c.BirthHour, *c.BirthMinute)
	}
}

func TestUpdateBirthInfoRejectsBadDateAndCalendar(t *testing.T) {
	_, err := UpdateBirthInfo(nil, "uid-1", models.BirthUpdate{
		BirthDate: "1995/03/10", BirthCalendar: "solar",
	})
	assert.ErrorIs(t, err, ErrMissingBirthInfo)

	_, err = UpdateBirthInfo(nil, "uid-1", models.BirthUpdate{
		BirthDate: "1995-03-10", BirthCalendar: "gregorian",
	})
	assert.ErrorIs(t, err, saju.ErrInvalidCalendar)
}

func TestParseBirthTimeRange(t *testing.T) {
	assert.Nil(t, parseBirthTime(nil))
	assert.Nil(t, parseBirthTime(strPtr("nonsense")))
	// 범위를 벗어난 저장값은 삼주 모드로 떨어뜨린다
	assert.Nil(t, parseBirthTime(strPtr("25:30:00")))
	assert.Nil(t, parseBirthTime(strPtr("12:60:00")))

	clock := parseBirthTime(strPtr("23:45:00"))
	require.NotNil(t, clock)
	assert.Equal(t, 23, clock.Hour)
	assert.Equal(t, 45, clock.Minute)
}

func TestEnsureUserSajuDataNoRecoverySource(t *testing.T) {
	// 저장된 오행 점수도, 다시 계산할 생년월일도 없으면 일진 보정 불가
	err := ensureUserSajuData(nil, &models.User{})
	assert.ErrorIs(t, err, saju.ErrNoBaseProfile)

	// 점수는 있는데 일간만 없는 경우: 복구에는 생년월일이 필요하다
	user := &models.User{OhengWood: floatPtr(20)}
	assert.ErrorIs(t, ensureUserSajuData(nil, user), ErrMissingBirthInfo)
}

func TestEnsureUserSajuDataComplete(t *testing.T) {
	// 저장값이 온전하면 생년월일 없이도 그대로 통과한다
	user := &models.User{DaySky: strPtr("갑"), OhengWood: floatPtr(20)}
	assert.NoError(t, ensureUserSajuData(nil, user))
}

func TestMainTenStarSentinel(t *testing.T) {
	assert.Equal(t, "정인", mainTenStar("갑", "계"))
	// 조견표에 없는 글자는 빈 값 대신 매핑 오류 표시값을 내려보낸다
	assert.Equal(t, "데이터 매핑 오류", mainTenStar("갑", "?"))
}
