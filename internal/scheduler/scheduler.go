package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task는 스케줄러가 실행할 작업을 정의하는 인터페이스입니다
type Task interface {
	Execute(ctx context.Context) error
}

// TaskFunc는 함수를 Task로 사용하기 위한 어댑터입니다
type TaskFunc func(ctx context.Context) error

// Execute는 f(ctx)를 호출합니다
func (f TaskFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// Scheduler는 interval 경계마다 작업을 실행하는 스케줄러입니다
type Scheduler struct {
	interval time.Duration
	task     Task
	logger   *zap.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewScheduler는 새로운 스케줄러를 생성합니다
func NewScheduler(interval time.Duration, task Task, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		interval: interval,
		task:     task,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start는 ctx가 끝나거나 Stop이 호출될 때까지 작업을 반복 실행합니다.
// 실행 시점은 interval로 자른 다음 경계(예: 1시간이면 매 정시)입니다.
func (s *Scheduler) Start(ctx context.Context) error {
	timer := time.NewTimer(s.untilNext())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-s.stopCh:
			return nil

		case <-timer.C:
			// 에러가 발생해도 계속 실행
			if err := s.task.Execute(ctx); err != nil {
				s.logger.Error("작업 실행 실패", zap.Error(err))
			}
			timer.Reset(s.untilNext())
		}
	}
}

// untilNext는 다음 실행 시점까지 남은 시간을 계산합니다
func (s *Scheduler) untilNext() time.Duration {
	now := time.Now()
	nextRun := now.Truncate(s.interval).Add(s.interval)
	wait := nextRun.Sub(now)

	s.logger.Debug("다음 실행 대기",
		zap.Duration("wait", wait.Round(time.Millisecond)),
		zap.Time("next", nextRun),
	)
	return wait
}

// Stop은 스케줄러를 중지합니다. 여러 번 호출해도 안전합니다.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}
