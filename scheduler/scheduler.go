package scheduler

import (
	"fmt"
	"sync"
	"time"

	"saju_food_chat/config"
	"saju_food_chat/logger"
	"saju_food_chat/repository"
	"saju_food_chat/services"
)

// 하루 한 번 일진 점검 작업을 돌리는 스케줄러.
// 자정 직후 오늘 날짜의 만세력 기록이 있는지 확인하고(없으면 데이터 공백을
// 미리 크게 알린다), 날짜가 지난 일진 캐시를 비운다

// 시/분 값 검증
func validateHourMinute(cfg *config.Config, hour, minute int) (int, int) {
	defaultHour := cfg.Scheduler.DefaultHour
	defaultMinute := cfg.Scheduler.DefaultMinute

	if hour < 0 || hour > 23 {
		logger.Warn("잘못된 시 값", "hour", hour, "default", defaultHour)
		hour = defaultHour
	}
	if minute < 0 || minute > 59 {
		logger.Warn("잘못된 분 값", "minute", minute, "default", defaultMinute)
		minute = defaultMinute
	}
	return hour, minute
}

// 다음 실행 시각 계산
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// 작업 종류
type TaskType int

const (
	TaskIljinCheck TaskType = iota
)

// 작업 상태
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// 작업 스케줄러
type Scheduler struct {
	cfg   *config.Config
	tasks map[TaskType]*TaskStatus
	mutex sync.Mutex
}

// NewScheduler 스케줄러 생성
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		tasks: make(map[TaskType]*TaskStatus),
	}
}

// Start 스케줄러 기동
func Start(cfg *config.Config) {
	scheduler := NewScheduler(cfg)
	scheduler.initTasks()
	go scheduler.run()

	checkInterval := cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60
	}
	logger.Info("스케줄러 시작", "check_interval_sec", checkInterval)
}

// initTasks 작업 초기화
func (s *Scheduler) initTasks() {
	now := time.Now()

	if s.cfg.Debug.Enabled {
		// Debug 모드: 짧은 간격으로 일진 점검 반복
		freqSeconds := s.cfg.Debug.IljinFreqSec
		if freqSeconds <= 0 {
			freqSeconds = 300
		}
		interval := time.Duration(freqSeconds) * time.Second

		s.tasks[TaskIljinCheck] = &TaskStatus{
			LastRun:     now.Add(-interval),
			NextRun:     now.Add(interval),
			Description: fmt.Sprintf("일진 점검 (Debug 모드: %d초마다)", freqSeconds),
		}
		logger.Info("Debug 모드 활성화", "frequency_seconds", freqSeconds)
	} else {
		// 정상 모드: 매일 지정 시각 (기본은 자정 직후)
		hour, minute := validateHourMinute(s.cfg, s.cfg.Cron.IljinHour, s.cfg.Cron.IljinMin)
		nextRun := getNextTimePoint(now, hour, minute)

		s.tasks[TaskIljinCheck] = &TaskStatus{
			LastRun:     nextRun.Add(-24 * time.Hour),
			NextRun:     nextRun,
			Description: fmt.Sprintf("일진 점검 (%02d:%02d)", hour, minute),
		}
		logger.Info("정상 모드", "schedule_time", fmt.Sprintf("%02d:%02d", hour, minute))
	}

	logger.Info("스케줄 작업 초기화 완료", "task_count", len(s.tasks))
}

// run 주기 점검 루프
func (s *Scheduler) run() {
	checkInterval := s.cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60
	}
	ticker := time.NewTicker(time.Duration(checkInterval) * time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

// checkTasks 실행 시각이 된 작업을 찾는다
func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		if status.IsRunning {
			continue
		}
		if status.NextRun.IsZero() {
			continue
		}
		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

// runTask 작업 실행
func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		switch taskType {
		case TaskIljinCheck:
			if s.cfg.Debug.Enabled {
				freqSeconds := s.cfg.Debug.IljinFreqSec
				if freqSeconds <= 0 {
					freqSeconds = 300
				}
				status.NextRun = now.Add(time.Duration(freqSeconds) * time.Second)
			} else {
				hour, minute := validateHourMinute(s.cfg, s.cfg.Cron.IljinHour, s.cfg.Cron.IljinMin)
				status.NextRun = getNextTimePoint(now, hour, minute)
			}
		}

		logger.Info("작업 실행 완료", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskIljinCheck:
		s.runIljinCheck(now)
	}
}

// runIljinCheck 오늘 날짜의 만세력 기록 확인 + 지난 날짜 캐시 정리
func (s *Scheduler) runIljinCheck(now time.Time) {
	today := now.Format("2006-01-02")
	logger.Info("일진 점검 시작", "date", today)

	record, err := repository.GetManseBySolarDate(now)
	if err != nil {
		logger.Error("일진 점검: 만세력 조회 실패", "date", today, "error", err)
		return
	}
	if record == nil {
		// 참조 데이터 공백: 오늘 모든 일진 요청이 실패하게 되므로 크게 알린다
		logger.Error("일진 점검: 오늘 날짜의 만세력 기록이 없습니다", "date", today)
		return
	}

	purged := services.PurgeStaleIljinCache(today)
	logger.Info("일진 점검 완료",
		"date", today,
		"day_sky", record.DaySky,
		"day_ground", record.DayGround,
		"purged_cache_entries", purged,
	)
}
