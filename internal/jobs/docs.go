// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// The only job today is HubPingJob, which pings every realtime connection. Its
// schedule accepts six-field cron expressions (with seconds) as well as descriptors
// such as "@every 30s".
//
//	jobManager := jobs.NewJobManager(hub, cfg.HubPingSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
package jobs
