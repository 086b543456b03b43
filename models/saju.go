package models

// OhengScores 오행 백분율 응답 필드 (원 API와 같은 카멜케이스 키)
type OhengScores struct {
	Wood  float64 `json:"ohengWood" example:"23.5"`
	Fire  float64 `json:"ohengFire" example:"18.2"`
	Earth float64 `json:"ohengEarth" example:"31.0"`
	Metal float64 `json:"ohengMetal" example:"12.4"`
	Water float64 `json:"ohengWater" example:"14.9"`
}

// SajuAnalysisResponse 오늘의 사주 오행 분석 결과
type SajuAnalysisResponse struct {
	Headline     string      `json:"headline"`
	Advice       string      `json:"advice"`
	Category     string      `json:"category" example:"skewed"` // deficient / balanced / skewed
	LackingOheng []string    `json:"lacking_oheng"`
	StrongOheng  []string    `json:"strong_oheng"`
	ControlOheng []string    `json:"control_oheng"`
	OhengScores  OhengScores `json:"oheng_scores"`
}

// IljinPillars 오늘의 일진 간지
type IljinPillars struct {
	DaySky    string `json:"day_sky" example:"갑"`
	DayGround string `json:"day_ground" example:"자"`
}

// TodayIljinResponse 일진 보정 결과
type TodayIljinResponse struct {
	TodayIljinPillars     IljinPillars `json:"today_iljin_pillars"`
	MainTenStar           string       `json:"main_ten_star" example:"정재"`
	TodayOhengPercentages OhengScores  `json:"today_oheng_percentages"`
	UserDaySky            string       `json:"user_day_sky" example:"갑"`
}

// ChatMessageResponse 채팅 부트스트랩 메시지
type ChatMessageResponse struct {
	Message string `json:"message"`
}
