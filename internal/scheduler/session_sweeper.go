package scheduler

import (
	"context"
	"time"

	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/pkg/logger"
	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// SessionSweeper 만료된 세션 정리 스케줄러
type SessionSweeper struct {
	cron     *cron.Cron
	schedule string
	repo     repository.SessionRepository
}

// NewSessionSweeper 세션 정리 스케줄러 생성 (schedule: cron 표현식 또는 "@every 5m")
func NewSessionSweeper(repo repository.SessionRepository, schedule string) *SessionSweeper {
	return &SessionSweeper{
		cron:     cron.New(),
		schedule: schedule,
		repo:     repo,
	}
}

// Start 스케줄러 시작
func (s *SessionSweeper) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		s.Sweep(ctx)
	})
	if err != nil {
		logger.Error("Failed to add cron job for session sweep", err, map[string]interface{}{
			"schedule": s.schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Session sweeper started", map[string]interface{}{
		"schedule": s.schedule,
	})
	return nil
}

// Sweep 만료 세션 삭제 후 삭제 건수 반환
func (s *SessionSweeper) Sweep(ctx context.Context) int {
	removed, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		logger.Error("Failed to sweep expired sessions", err)
		return 0
	}

	if removed > 0 {
		logger.Info("Expired sessions swept", map[string]interface{}{
			"removed": removed,
		})
	}
	return removed
}

// Stop 스케줄러 중지 (실행 중인 작업 완료 대기)
func (s *SessionSweeper) Stop() {
	logger.Info("Stopping session sweeper...", nil)
	<-s.cron.Stop().Done()
	logger.Info("Session sweeper stopped", nil)
}
