package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the scheduled jobs of the application.
type JobManager struct {
	hubPingJob *HubPingJob
}

func NewJobManager(pinger Pinger, hubPingSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		hubPingJob: NewHubPingJob(pinger, hubPingSchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.hubPingJob.Start(); err != nil {
		return fmt.Errorf("failed to start hub ping job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.hubPingJob.Stop()
}
