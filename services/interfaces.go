package services

import (
	"saju_food_chat/config"
	"saju_food_chat/models"
)

// SajuService 사주 오행 계산/조회 서비스 인터페이스
type SajuService interface {
	// 생년월일시로 오행 비율을 계산해 저장
	CalculateSajuForUser(cfg *config.Config, user *models.User) (models.OhengScores, error)

	// 오늘의 일진으로 보정한 오행 비율
	TodayIljin(cfg *config.Config, uid string) (*models.TodayIljinResponse, error)

	// 오늘의 보정 프로필 분류 + 추천 문구
	TodayAnalysis(cfg *config.Config, uid string) (*models.SajuAnalysisResponse, error)

	// 강제 재계산 (생년월일 변경 등)
	RecalculateForUser(cfg *config.Config, uid string) (models.OhengScores, error)

	// 생년월일 정보 수정 후 재계산
	UpdateBirthInfo(cfg *config.Config, uid string, update models.BirthUpdate) (models.OhengScores, error)
}

// ChatService 채팅 부트스트랩 메시지 서비스 인터페이스
type ChatService interface {
	// 채팅방 입장 시 첫 추천 메시지
	InitialChatMessage(cfg *config.Config, uid string) (string, error)

	// 오행 추천 원리 설명 메시지
	OhengExplanation(cfg *config.Config, uid string) (string, error)
}
