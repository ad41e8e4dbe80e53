package jobs

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yungbote/blogbridge-backend/internal/data/repos"
	"github.com/yungbote/blogbridge-backend/internal/observability"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

// BlacklistPurger deletes blacklist rows whose tokens have expired on their own.
// An expired token fails verification regardless, so the rows carry no information.
type BlacklistPurger struct {
	log      *logger.Logger
	repo     repos.BlacklistedTokenRepo
	metrics  *observability.Metrics
	schedule string
	now      func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

func NewBlacklistPurger(log *logger.Logger, repo repos.BlacklistedTokenRepo, metrics *observability.Metrics, schedule string) *BlacklistPurger {
	return &BlacklistPurger{
		log:      log.With("job", "BlacklistPurger"),
		repo:     repo,
		metrics:  metrics,
		schedule: strings.TrimSpace(schedule),
		now:      func() time.Time { return time.Now().UTC() },
		cron:     cron.New(),
	}
}

// PurgeOnce runs a single purge and reports how many rows were removed.
func (p *BlacklistPurger) PurgeOnce(ctx context.Context) (int64, error) {
	n, err := p.repo.DeleteExpired(dbctx.Context{Ctx: ctx}, p.now())
	if err != nil {
		return 0, fmt.Errorf("purge blacklist: %w", err)
	}
	p.metrics.AddBlacklistPurged(n)
	return n, nil
}

// Start schedules the purge. An empty schedule disables it. The scheduler
// stops on its own when ctx is cancelled.
func (p *BlacklistPurger) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.schedule == "" {
		p.log.Info("Blacklist purge schedule not configured, skipping")
		return nil
	}
	if _, err := cron.ParseStandard(p.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", p.schedule, err)
	}
	if _, err := p.cron.AddFunc(p.schedule, func() { p.run(ctx) }); err != nil {
		return fmt.Errorf("schedule blacklist purge: %w", err)
	}
	p.cron.Start()
	p.running = true
	p.log.Info("Blacklist purge scheduled", "schedule", p.schedule)

	go func() {
		<-ctx.Done()
		p.Stop()
	}()
	return nil
}

func (p *BlacklistPurger) run(ctx context.Context) {
	n, err := p.PurgeOnce(ctx)
	if err != nil {
		p.log.Error("Blacklist purge failed", "error", err)
		return
	}
	if n > 0 {
		p.log.Info("Blacklist purge completed", "deleted", n)
	} else {
		p.log.Debug("Blacklist purge completed, nothing expired")
	}
}

// Stop waits for an in-flight purge to finish.
func (p *BlacklistPurger) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	<-p.cron.Stop().Done()
	p.running = false
	p.log.Info("Blacklist purge stopped")
}

func (p *BlacklistPurger) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
