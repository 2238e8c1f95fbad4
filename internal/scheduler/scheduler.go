// Package scheduler はバックグラウンドで定期実行するジョブを管理します
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go_4_vocab_progress/internal/middleware"

	"github.com/go-co-op/gocron"
)

// SessionReaper は放置された練習セッションを破棄します
type SessionReaper interface {
	ExpireIdle(ctx context.Context) int
}

// Scheduler は定期ジョブ (現在はセッションの掃除のみ) を実行します
type Scheduler struct {
	scheduler *gocron.Scheduler
	reaper    SessionReaper
	interval  time.Duration
	logger    *slog.Logger
}

func New(reaper SessionReaper, interval time.Duration, logger *slog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	// 前回のジョブが終わっていなければ次回はスキップする
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		reaper:    reaper,
		interval:  interval,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start はジョブを登録し、非同期で実行を開始します
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.reapIdleSessions); err != nil {
		return fmt.Errorf("scheduler.Start: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "reap_interval", s.interval.String())
	return nil
}

// Stop はスケジューラを止めます
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) reapIdleSessions() {
	jobLogger := s.logger.With("job", "reap_idle_sessions")
	ctx := middleware.WithLogger(context.Background(), jobLogger)

	if n := s.reaper.ExpireIdle(ctx); n > 0 {
		jobLogger.Info("Idle sessions expired", "count", n)
	} else {
		jobLogger.Debug("No idle sessions")
	}
}
