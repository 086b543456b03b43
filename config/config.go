package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 설정 파일이 아니라 로드 후 계산
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 로드 후 계산
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 최대 연결 수
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 최대 유휴 연결 수
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 연결 최대 수명(분)
	} `yaml:"database"`
	Saju struct {
		// 월지 보너스 비율. 명리 관례값 0.3이지만 근거가 유도되는 값이
		// 아니라 파라미터로 둔다
		MonthBonusRate float64 `yaml:"month_bonus_rate"`
		// 일진 보정 가중치 (일간/일지)
		WeightSky    float64 `yaml:"weight_sky"`
		WeightGround float64 `yaml:"weight_ground"`
	} `yaml:"saju"`
	Cron struct {
		IljinHour int `yaml:"iljin_hour"` // 일진 점검 실행 시각 (시, 0-23)
		IljinMin  int `yaml:"iljin_min"`  // 일진 점검 실행 시각 (분, 0-59)
	} `yaml:"cron"`
	Scheduler struct {
		CheckIntervalSec int `yaml:"check_interval_sec"` // 스케줄러 점검 간격(초)
		DefaultHour      int `yaml:"default_hour"`       // 기본 실행 시각 (시)
		DefaultMinute    int `yaml:"default_minute"`     // 기본 실행 시각 (분)
	} `yaml:"scheduler"`
	Debug struct {
		Enabled      bool `yaml:"enabled"`        // debug 모드 여부
		IljinFreqSec int  `yaml:"iljin_freq_sec"` // debug 모드 일진 점검 간격(초)
	} `yaml:"debug"`
}

func Load() *Config {
	// .env 파일 우선 로드. 없으면 시스템 환경 변수 그대로 사용
	_ = godotenv.Load()

	var cfg Config

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")

		cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

		// 민감 정보는 환경 변수가 우선
		if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
			cfg.DB.Username = envUsername
		}
		if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
			cfg.DB.Password = envPassword
		}

		applySajuDefaults(&cfg)
		buildDSN(&cfg)
		return &cfg
	}

	// config.yaml이 없으면 환경 변수로만 구성
	return loadFromEnv()
}

// applySajuDefaults 사주 가중치 기본값 (천간 30 / 지지 70 모델 기준)
func applySajuDefaults(cfg *Config) {
	if cfg.Saju.MonthBonusRate <= 0 {
		cfg.Saju.MonthBonusRate = 0.3
	}
	if cfg.Saju.WeightSky <= 0 {
		cfg.Saju.WeightSky = 20
	}
	if cfg.Saju.WeightGround <= 0 {
		cfg.Saju.WeightGround = 20
	}
}

func buildDSN(cfg *Config) {
	if cfg.DB.DSN != "" {
		return
	}
	if cfg.DB.Charset == "" {
		cfg.DB.Charset = "utf8mb4"
	}

	parseTime := ""
	if cfg.DB.ParseTime {
		parseTime = "&parseTime=true"
	}

	cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Database,
		cfg.DB.Charset,
		parseTime)
}

func loadFromEnv() *Config {
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	} else if cfg.DB.Host != "" {
		buildDSN(&cfg)
	}

	applySajuDefaults(&cfg)

	log.Println("설정을 환경 변수에서 로드했습니다. 일부 설정이 비어 있을 수 있습니다")
	return &cfg
}
