package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag" // swag 의존

	"saju_food_chat/config"
	"saju_food_chat/db"
	_ "saju_food_chat/docs" // swagger 문서
	"saju_food_chat/handlers"
	"saju_food_chat/logger"
	"saju_food_chat/scheduler"
)

func main() {
	cfg := config.Load()

	// 로그 시스템 초기화
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("로그 시스템 초기화 성공", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	if err := db.InitMySQLWithConfig(cfg); err != nil {
		logger.Error("MySQL 초기화 실패", "error", err)
		os.Exit(1)
	}
	logger.Info("MySQL 연결 성공",
		"max_open_conns", cfg.DB.MaxOpenConns,
		"max_idle_conns", cfg.DB.MaxIdleConns,
		"conn_max_lifetime", cfg.DB.ConnMaxLifetime)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg)

	// 일진 점검 스케줄러 기동
	scheduler.Start(cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("서버 시작", "address", serverAddr)
	logger.Info("Swagger 문서", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port), r))
}
