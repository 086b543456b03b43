package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"saju_food_chat/config"
	"saju_food_chat/logger"
	"saju_food_chat/models"
	"saju_food_chat/repository"
	"saju_food_chat/saju"
)

// ErrMissingBirthInfo 사주 계산에 필요한 생년월일 정보가 없음
var ErrMissingBirthInfo = errors.New("사주 계산에 필요한 생년월일 정보가 부족합니다")

// ErrInvalidBirthTime 범위를 벗어난 생시 (시 0-23, 분 0-59).
// MySQL TIME 타입은 25:30 같은 값도 받아주므로 저장 전에 막아야 한다
var ErrInvalidBirthTime = errors.New("생시가 올바른 범위가 아닙니다 (시 0-23, 분 0-59)")

// manseResolver 만세력 저장소 위의 해석기. 상태가 없으므로 공유해도 안전
var manseResolver = saju.NewResolver(repository.ManseStore{})

// parseBirthTime DB의 TIME 문자열("15:04:05")을 Clock으로 변환.
// 생시 모름(NULL)이나 형식 오류는 nil로 처리해 삼주 계산으로 이어진다.
// 범위를 벗어난 저장값(25:30 등)도 시진 계산을 망가뜨리지 않게 버린다
func parseBirthTime(birthTime *string) *saju.Clock {
	if birthTime == nil {
		return nil
	}
	parts := strings.Split(*birthTime, ":")
	if len(parts) < 2 {
		return nil
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil
	}
	return saju.NewClock(hour, minute)
}

// scoreWeights 설정값으로 오행 점수 가중치 구성
func scoreWeights(cfg *config.Config) saju.ScoreWeights {
	weights := saju.DefaultScoreWeights
	if cfg != nil && cfg.Saju.MonthBonusRate > 0 {
		weights.MonthBonusRate = cfg.Saju.MonthBonusRate
	}
	return weights
}

// dailyWeights 설정값으로 일진 보정 가중치 구성
func dailyWeights(cfg *config.Config) saju.DailyWeights {
	weights := saju.DefaultDailyWeights
	if cfg != nil && cfg.Saju.WeightSky > 0 {
		weights.Sky = cfg.Saju.WeightSky
	}
	if cfg != nil && cfg.Saju.WeightGround > 0 {
		weights.Ground = cfg.Saju.WeightGround
	}
	return weights
}

// profileToScores 코어 프로필을 응답/저장용 구조로 변환
func profileToScores(p saju.Profile) models.OhengScores {
	return models.OhengScores{
		Wood:  p[saju.Wood],
		Fire:  p[saju.Fire],
		Earth: p[saju.Earth],
		Metal: p[saju.Metal],
		Water: p[saju.Water],
	}
}

// storedProfile 사용자 레코드의 저장값으로 기본 프로필을 복원한다.
// NULL 필드는 0으로 읽는다 (원 구현과 동일)
func storedProfile(user *models.User) saju.Profile {
	value := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}
	var p saju.Profile
	p[saju.Wood] = value(user.OhengWood)
	p[saju.Fire] = value(user.OhengFire)
	p[saju.Earth] = value(user.OhengEarth)
	p[saju.Metal] = value(user.OhengMetal)
	p[saju.Water] = value(user.OhengWater)
	return p
}

// CalculateSajuForUser 생년월일시로 사주팔자를 구성해 오행 비율을 계산하고
// Users 테이블에 저장한다. 회원가입/생년월일 변경 시 호출된다
func CalculateSajuForUser(cfg *config.Config, user *models.User) (models.OhengScores, error) {
	if user.BirthDate.IsZero() || user.BirthCalendar == "" {
		return models.OhengScores{}, ErrMissingBirthInfo
	}

	birthTime := parseBirthTime(user.BirthTime)

	// 1. 만세력 조회 및 보정 (삼주 확보)
	record, err := manseResolver.Resolve(user.BirthDate, birthTime, saju.CalendarType(user.BirthCalendar))
	if err != nil {
		return models.OhengScores{}, err
	}

	// 2. 시주 계산 (생시 없으면 삼주 모드)
	timePillar, hasTime := saju.DeriveTimePillar(record.DaySky, birthTime)
	pillars := saju.NewPillarSet(record, timePillar, hasTime)

	// 3. 오행 비율 계산
	profile, err := saju.ScoreWith(pillars, scoreWeights(cfg))
	if err != nil {
		return models.OhengScores{}, err
	}
	scores := profileToScores(profile)

	// 4. Users 테이블에 오행 비율과 일간 저장
	if err := repository.UpdateUserOheng(user.ID, scores, record.DaySky); err != nil {
		return models.OhengScores{}, fmt.Errorf("오행 점수 저장 실패: %w", err)
	}

	// 메모리의 사용자 레코드도 맞춰둔다 (호출자가 이어서 쓰는 경우)
	daySky := record.DaySky
	user.DaySky = &daySky
	user.OhengWood = &scores.Wood
	user.OhengFire = &scores.Fire
	user.OhengEarth = &scores.Earth
	user.OhengMetal = &scores.Metal
	user.OhengWater = &scores.Water

	iljinCache.invalidate(user.FirebaseUID)

	logger.Info("사용자 오행 계산 완료", "uid", user.FirebaseUID, "day_sky", record.DaySky, "has_time", hasTime)
	return scores, nil
}

// ensureUserSajuData 일진 보정에 필요한 저장값(일간, 오행 비율)이 없으면
// 생년월일시에서 복구한다 (기존 사용자 자가 치유 경로)
func ensureUserSajuData(cfg *config.Config, user *models.User) error {
	needsDaySky := user.DaySky == nil || *user.DaySky == ""
	needsScores := !user.HasOhengScores()
	if !needsDaySky && !needsScores {
		return nil
	}

	// 복구에는 생년월일이 필요하다
	if user.BirthDate.IsZero() || user.BirthCalendar == "" {
		if needsScores {
			return fmt.Errorf("%w (생년월일 정보도 없어 다시 계산할 수 없습니다)", saju.ErrNoBaseProfile)
		}
		return ErrMissingBirthInfo
	}

	if needsDaySky {
		birthTime := parseBirthTime(user.BirthTime)
		record, err := manseResolver.Resolve(user.BirthDate, birthTime, saju.CalendarType(user.BirthCalendar))
		if err != nil {
			return err
		}
		if err := repository.UpdateUserDaySky(user.ID, record.DaySky); err != nil {
			return fmt.Errorf("일간 복구 저장 실패: %w", err)
		}
		daySky := record.DaySky
		user.DaySky = &daySky
		logger.Info("사용자 일간 복구", "uid", user.FirebaseUID, "day_sky", daySky)
	}

	if needsScores {
		if _, err := CalculateSajuForUser(cfg, user); err != nil {
			return err
		}
	}
	return nil
}

// tenStarMappingError 십신 조견표에서 찾지 못했을 때의 표시값.
// 빈 값("데이터 없음")과 구분해서 내려보낸다
const tenStarMappingError = "데이터 매핑 오류"

// mainTenStar 사용자 일간 기준 오늘 일간의 십신 이름
func mainTenStar(userDaySky, todayDaySky string) string {
	name, ok := saju.TenStar(userDaySky, todayDaySky)
	if !ok {
		logger.Warn("십신 조견표에 없는 천간", "user_day_sky", userDaySky, "today_day_sky", todayDaySky)
		return tenStarMappingError
	}
	return name
}

// TodayIljin 오늘의 일진(일간/일지)으로 저장된 기본 오행 비율을 보정한다.
// 결과는 (사용자, 오늘 날짜) 키로 캐시되며 자정이 지나면 무효가 된다
func TodayIljin(cfg *config.Config, uid string) (*models.TodayIljinResponse, error) {
	user, err := repository.GetUserByUID(uid)
	if err != nil {
		return nil, err
	}

	if err := ensureUserSajuData(cfg, user); err != nil {
		return nil, err
	}

	now := time.Now()
	dateKey := now.Format("2006-01-02")
	if cached, ok := iljinCache.get(uid, dateKey); ok {
		logger.Debug("일진 캐시 적중", "uid", uid, "date", dateKey)
		return &cached, nil
	}

	// 오늘의 간지. 참조 데이터에 오늘 날짜가 없으면 운영/데이터 공백 장애다
	todayRecord, err := manseResolver.ResolveToday(now)
	if err != nil {
		return nil, err
	}

	base := storedProfile(user)
	adjusted := saju.AdjustForToday(base, todayRecord.DaySky, todayRecord.DayGround, dailyWeights(cfg))

	tenStar := mainTenStar(*user.DaySky, todayRecord.DaySky)

	result := models.TodayIljinResponse{
		TodayIljinPillars: models.IljinPillars{
			DaySky:    todayRecord.DaySky,
			DayGround: todayRecord.DayGround,
		},
		MainTenStar:           tenStar,
		TodayOhengPercentages: profileToScores(adjusted),
		UserDaySky:            *user.DaySky,
	}
	iljinCache.set(uid, dateKey, result)
	return &result, nil
}

// TodayAnalysis 오늘의 보정 프로필을 분류하고 추천 문구까지 구성한다.
// 분류 결과는 저장하지 않고 요청마다 다시 계산한다
func TodayAnalysis(cfg *config.Config, uid string) (*models.SajuAnalysisResponse, error) {
	iljin, err := TodayIljin(cfg, uid)
	if err != nil {
		return nil, err
	}

	classification := saju.Classify(scoresToProfile(iljin.TodayOhengPercentages))
	recommendation := saju.Recommend(classification)

	return &models.SajuAnalysisResponse{
		Headline:     recommendation.Headline,
		Advice:       recommendation.Advice,
		Category:     string(classification.Category),
		LackingOheng: recommendation.Lacking,
		StrongOheng:  recommendation.Strong,
		ControlOheng: recommendation.Suppressors,
		OhengScores:  iljin.TodayOhengPercentages,
	}, nil
}

func scoresToProfile(s models.OhengScores) saju.Profile {
	var p saju.Profile
	p[saju.Wood] = s.Wood
	p[saju.Fire] = s.Fire
	p[saju.Earth] = s.Earth
	p[saju.Metal] = s.Metal
	p[saju.Water] = s.Water
	return p
}

// RecalculateForUser 생년월일 정보가 바뀐 사용자의 사주를 강제로 다시
// 계산한다. 만세력 기록이 없어진 경우 저장값을 비우고 데이터 공백으로 보고한다
func RecalculateForUser(cfg *config.Config, uid string) (models.OhengScores, error) {
	user, err := repository.GetUserByUID(uid)
	if err != nil {
		return models.OhengScores{}, err
	}

	scores, err := CalculateSajuForUser(cfg, user)
	if err != nil {
		if errors.Is(err, saju.ErrManseNotFound) {
			// 계산 불가: 오래된 점수를 남겨두면 안 된다
			logger.Error("만세력 기록 없음, 저장된 오행 점수 비움", "uid", uid, "birth_date", user.BirthDate.Format("2006-01-02"))
			if clearErr := repository.ClearUserOheng(user.ID); clearErr != nil {
				logger.Error("오행 점수 비우기 실패", "uid", uid, "error", clearErr)
			}
			iljinCache.invalidate(uid)
		}
		return models.OhengScores{}, err
	}
	return scores, nil
}

// UpdateBirthInfo 생년월일 정보를 저장하고 사주를 다시 계산한다.
// 요청 검증이 전부 끝난 뒤에만 DB를 만진다
func UpdateBirthInfo(cfg *config.Config, uid string, update models.BirthUpdate) (models.OhengScores, error) {
	if _, err := time.Parse("2006-01-02", update.BirthDate); err != nil {
		return models.OhengScores{}, fmt.Errorf("%w: birth_date=%q", ErrMissingBirthInfo, update.BirthDate)
	}
	switch saju.CalendarType(update.BirthCalendar) {
	case saju.CalendarSolar, saju.CalendarLunar, saju.CalendarLunarLeap:
	default:
		return models.OhengScores{}, fmt.Errorf("%w: %q", saju.ErrInvalidCalendar, update.BirthCalendar)
	}

	var birthTime *string
	if !update.TimeUnknown && update.BirthHour != nil && update.BirthMinute != nil {
		hour, minute := *update.BirthHour, *update.BirthMinute
		if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return models.OhengScores{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidBirthTime, hour, minute)
		}
		t := fmt.Sprintf("%02d:%02d:00", hour, minute)
		birthTime = &t
	}

	user, err := repository.GetUserByUID(uid)
	if err != nil {
		return models.OhengScores{}, err
	}

	if err := repository.UpdateUserBirth(user.ID, update.BirthDate, birthTime, update.BirthCalendar); err != nil {
		return models.OhengScores{}, fmt.Errorf("생년월일 정보 저장 실패: %w", err)
	}

	iljinCache.invalidate(uid)
	return RecalculateForUser(cfg, uid)
}
