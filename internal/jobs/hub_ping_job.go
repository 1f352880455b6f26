package jobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

const DefaultHubPingSchedule = "@every 30s"

// Pinger keeps realtime connections alive and reports how many are open.
type Pinger interface {
	Ping(ctx context.Context) int
}

// HubPingJob pings every websocket connection on a schedule so that proxies keep
// idle connections open and dead peers are noticed.
type HubPingJob struct {
	pinger   Pinger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu        sync.Mutex
	lastCount int
}

func NewHubPingJob(pinger Pinger, schedule string, logger *slog.Logger) *HubPingJob {
	if schedule == "" {
		schedule = DefaultHubPingSchedule
	}

	return &HubPingJob{
		pinger:    pinger,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "hub_ping_job"),
		lastCount: -1,
	}
}

func (j *HubPingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hub ping job started", "schedule", j.schedule)
	return nil
}

// Run performs one ping round. Connection counts are logged only when they change.
func (j *HubPingJob) Run() {
	ctx := context.Background()
	count := j.pinger.Ping(ctx)

	j.mu.Lock()
	changed := count != j.lastCount
	j.lastCount = count
	j.mu.Unlock()

	if changed {
		j.logger.InfoContext(ctx, "Realtime connections", "count", count)
	}
}

func (j *HubPingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Hub ping job stopped")
}
