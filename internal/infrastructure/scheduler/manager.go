// Package scheduler runs periodic portal jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"skylink/internal/shared/logger"
)

// JobFunc is one run of a scheduled job. ctx is cancelled when the
// manager stops.
type JobFunc func(ctx context.Context) error

// SchedulerManager owns one cron instance. Overlapping runs of the same
// job are skipped and panics are recovered and logged.
type SchedulerManager struct {
	cron   *cron.Cron
	logger logger.Interface

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	names map[cron.EntryID]string
}

func NewSchedulerManager(log logger.Interface) *SchedulerManager {
	cl := cronLogger{log: log}
	ctx, cancel := context.WithCancel(context.Background())
	return &SchedulerManager{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: log,
		ctx:    ctx,
		cancel: cancel,
		names:  make(map[cron.EntryID]string),
	}
}

// ValidateSpec checks a standard five-field cron expression or a
// descriptor such as "@every 1m".
func ValidateSpec(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// Register adds job under name. Failures are logged and the job stays
// scheduled.
func (m *SchedulerManager) Register(name, spec string, job JobFunc) (cron.EntryID, error) {
	if err := ValidateSpec(spec); err != nil {
		return 0, err
	}
	id, err := m.cron.AddFunc(spec, func() {
		start := time.Now()
		if err := job(m.ctx); err != nil {
			m.logger.Errorw("scheduled job failed", "job", name, "error", err)
			return
		}
		m.logger.Debugw("scheduled job finished", "job", name, "duration", time.Since(start))
	})
	if err != nil {
		return 0, fmt.Errorf("register %s: %w", name, err)
	}

	m.mu.Lock()
	m.names[id] = name
	m.mu.Unlock()

	m.logger.Infow("job registered", "job", name, "schedule", spec)
	return id, nil
}

// NextRun reports when the entry fires next. It is zero before Start.
func (m *SchedulerManager) NextRun(id cron.EntryID) time.Time {
	return m.cron.Entry(id).Next
}

func (m *SchedulerManager) Start() {
	m.cron.Start()
	m.logger.Infow("scheduler started", "jobs", len(m.cron.Entries()))
}

// Stop prevents new runs, cancels the job context and waits for running
// jobs until ctx is done.
func (m *SchedulerManager) Stop(ctx context.Context) error {
	m.cancel()
	done := m.cron.Stop()
	select {
	case <-done.Done():
		m.logger.Infow("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// cronLogger adapts logger.Interface to cron.Logger.
type cronLogger struct {
	log logger.Interface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
