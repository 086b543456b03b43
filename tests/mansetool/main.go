package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"saju_food_chat/config"
	"saju_food_chat/db"
	"saju_food_chat/repository"
)

// 만세력 데이터 점검용 수동 도구.
// 날짜를 인자로 주면 해당 날짜의 만세력 기록을 조회해 출력한다.
// 데이터 적재 후 공백이 없는지 손으로 확인할 때 쓴다
func main() {
	// .env 파일 로드 (DB 접속 정보)
	_ = godotenv.Load()

	date := time.Now()
	if len(os.Args) > 1 {
		parsed, err := time.Parse("2006-01-02", os.Args[1])
		if err != nil {
			log.Fatalf("날짜 형식 오류 (YYYY-MM-DD): %v", err)
		}
		date = parsed
	}

	cfg := config.Load()
	if err := db.InitMySQLWithConfig(cfg); err != nil {
		log.Fatalf("MySQL 초기화 실패: %v", err)
	}

	record, err := repository.GetManseBySolarDate(date)
	if err != nil {
		log.Fatalf("만세력 조회 실패: %v", err)
	}
	if record == nil {
		fmt.Printf("%s: 만세력 기록 없음\n", date.Format("2006-01-02"))
		os.Exit(1)
	}

	fmt.Printf("양력: %s\n", record.SolarDate.Format("2006-01-02"))
	fmt.Printf("음력: %s (윤달: %v)\n", record.LunarDate.Format("2006-01-02"), record.LeapMonth)
	fmt.Printf("년주: %s%s\n", record.YearSky, record.YearGround)
	fmt.Printf("월주: %s%s\n", record.MonthSky, record.MonthGround)
	fmt.Printf("일주: %s%s\n", record.DaySky, record.DayGround)
	if record.Season != "" {
		fmt.Printf("절기: %s", record.Season)
		if record.SeasonStartTime != nil {
			fmt.Printf(" (절입: %s)", record.SeasonStartTime.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
}
