package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"saju_food_chat/config"
	_ "saju_food_chat/docs" // swagger 문서
	"saju_food_chat/models"
	"saju_food_chat/saju"
	"saju_food_chat/services"
	"saju_food_chat/utils"
)

// writeSajuError 서비스 오류를 응답 코드로 변환한다.
// 만세력 데이터 공백은 사용자 입력 오류가 아니라 참조 데이터 장애로 구분한다
func writeSajuError(w http.ResponseWriter, err error) {
	switch {
	case utils.IsSQLNoRowsError(err):
		utils.WriteErrorResponse(w, models.CodeUserNotFound, map[string]interface{}{})
	case errors.Is(err, services.ErrMissingBirthInfo):
		utils.WriteErrorResponse(w, models.CodeMissingBirthInfo, map[string]interface{}{})
	case errors.Is(err, services.ErrInvalidBirthTime):
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
	case errors.Is(err, saju.ErrInvalidCalendar):
		utils.WriteErrorResponse(w, models.CodeInvalidCalendar, map[string]interface{}{})
	case errors.Is(err, saju.ErrManseNotFound):
		utils.WriteCustomErrorResponse(w, models.CodeManseNotFound, err.Error(), map[string]interface{}{})
	case errors.Is(err, saju.ErrDayStemMissing), errors.Is(err, saju.ErrNoBaseProfile):
		utils.WriteCustomErrorResponse(w, models.CodeSajuCalcError, err.Error(), map[string]interface{}{})
	default:
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
	}
}

// GetSajuAnalysisHandler godoc
// @Summary 오늘의 사주 오행 분석 결과 조회
// @Description 저장된 오행 비율에 오늘의 일진 보정을 적용하고 분류/추천 문구를 반환
// @Tags 사주
// @Accept json
// @Produce json
// @Param uid path string true "Firebase UID"
// @Success 200 {object} models.APIResponse{data=models.SajuAnalysisResponse} "성공"
// @Failure 400 {object} models.APIResponse "파라미터 오류"
// @Failure 500 {object} models.APIResponse "서버/데이터 오류"
// @Router /api/saju/{uid} [get]
func GetSajuAnalysisHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	uid := chi.URLParam(r, "uid")
	if !utils.ValidateUID(w, uid) {
		return
	}

	analysis, err := services.TodayAnalysis(cfg, uid)
	if err != nil {
		writeSajuError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, analysis)
}

// GetTodayIljinHandler godoc
// @Summary 오늘의 일진 보정 결과 조회
// @Description 오늘의 일간/일지, 십신, 보정된 오행 비율을 반환
// @Tags 사주
// @Accept json
// @Produce json
// @Param uid path string true "Firebase UID"
// @Success 200 {object} models.APIResponse{data=models.TodayIljinResponse} "성공"
// @Failure 400 {object} models.APIResponse "파라미터 오류"
// @Failure 500 {object} models.APIResponse "서버/데이터 오류"
// @Router /api/saju/iljin/{uid} [get]
func GetTodayIljinHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	uid := chi.URLParam(r, "uid")
	if !utils.ValidateUID(w, uid) {
		return
	}

	iljin, err := services.TodayIljin(cfg, uid)
	if err != nil {
		writeSajuError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, iljin)
}

// RecalculateSajuHandler godoc
// @Summary 사주 오행 강제 재계산
// @Description 생년월일시 기준으로 오행 비율을 다시 계산해 저장
// @Tags 사주
// @Accept json
// @Produce json
// @Param uid path string true "Firebase UID"
// @Success 200 {object} models.APIResponse{data=models.OhengScores} "성공"
// @Failure 400 {object} models.APIResponse "파라미터 오류"
// @Failure 500 {object} models.APIResponse "서버/데이터 오류"
// @Router /api/saju/recalculate/{uid} [post]
func RecalculateSajuHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	uid := chi.URLParam(r, "uid")
	if !utils.ValidateUID(w, uid) {
		return
	}

	scores, err := services.RecalculateForUser(cfg, uid)
	if err != nil {
		writeSajuError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, scores)
}

// UpdateBirthInfoHandler godoc
// @Summary 생년월일 정보 수정
// @Description 생년월일/생시/음양력 구분을 수정하고 사주를 다시 계산
// @Tags 사용자
// @Accept json
// @Produce json
// @Param uid path string true "Firebase UID"
// @Param body body models.BirthUpdate true "생년월일 정보"
// @Success 200 {object} models.APIResponse{data=models.OhengScores} "성공"
// @Failure 400 {object} models.APIResponse "파라미터 오류"
// @Failure 500 {object} models.APIResponse "서버/데이터 오류"
// @Router /api/users/{uid}/birth [put]
func UpdateBirthInfoHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	uid := chi.URLParam(r, "uid")
	if !utils.ValidateUID(w, uid) {
		return
	}

	var update models.BirthUpdate
	if !utils.DecodeJSONBody(w, r, &update) {
		return
	}

	scores, err := services.UpdateBirthInfo(cfg, uid, update)
	if err != nil {
		writeSajuError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, scores)
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config) {
	// Swagger 문서
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/api/saju/{uid}", func(w http.ResponseWriter, r *http.Request) {
		GetSajuAnalysisHandler(w, r, cfg)
	})

	r.Get("/api/saju/iljin/{uid}", func(w http.ResponseWriter, r *http.Request) {
		GetTodayIljinHandler(w, r, cfg)
	})

	r.Post("/api/saju/recalculate/{uid}", func(w http.ResponseWriter, r *http.Request) {
		RecalculateSajuHandler(w, r, cfg)
	})

	r.Put("/api/users/{uid}/birth", func(w http.ResponseWriter, r *http.Request) {
		UpdateBirthInfoHandler(w, r, cfg)
	})

	r.Get("/api/chat/initial/{uid}", func(w http.ResponseWriter, r *http.Request) {
		InitialChatMessageHandler(w, r, cfg)
	})

	r.Get("/api/chat/oheng-explanation/{uid}", func(w http.ResponseWriter, r *http.Request) {
		OhengExplanationHandler(w, r, cfg)
	})
}
