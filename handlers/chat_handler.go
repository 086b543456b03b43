package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"saju_food_chat/config"
	"saju_food_chat/models"
	"saju_food_chat/services"
	"saju_food_chat/utils"
)

// InitialChatMessageHandler godoc
// @Summary 채팅방 첫 추천 메시지 조회
// @Description 오늘의 오행 상태 기반 첫 추천 메시지를 생성 (음식 예시는 매번 달라짐)
// @Tags 채팅
// @Accept json
// @Produce json
// @Param uid path string true "Firebase UID"
// @Success 200 {object} models.APIResponse{data=models.ChatMessageResponse} "성공"
// @Failure 400 {object} models.APIResponse "파라미터 오류"
// @Failure 500 {object} models.APIResponse "서버/데이터 오류"
// @Router /api/chat/initial/{uid} [get]
func InitialChatMessageHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	uid := chi.URLParam(r, "uid")
	if !utils.ValidateUID(w, uid) {
		return
	}

	message, err := services.InitialChatMessage(cfg, uid)
	if err != nil {
		writeSajuError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, models.ChatMessageResponse{Message: message})
}

// OhengExplanationHandler godoc
// @Summary 오행 추천 원리 설명 메시지 조회
// @Description "왜 이 메뉴를 추천해?"에 대한 오행 기반 설명 메시지를 생성
// @Tags 채팅
// @Accept json
// @Produce json
// @Param uid path string true "Firebase UID"
// @Success 200 {object} models.APIResponse{data=models.ChatMessageResponse} "성공"
// @Failure 400 {object} models.APIResponse "파라미터 오류"
// @Failure 500 {object} models.APIResponse "서버/데이터 오류"
// @Router /api/chat/oheng-explanation/{uid} [get]
func OhengExplanationHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	uid := chi.URLParam(r, "uid")
	if !utils.ValidateUID(w, uid) {
		return
	}

	message, err := services.OhengExplanation(cfg, uid)
	if err != nil {
		writeSajuError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, models.ChatMessageResponse{Message: message})
}
