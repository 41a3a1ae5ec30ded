package main

import (
	"log"

	"b2b-showcase-backend/internal/shared"
	"b2b-showcase-backend/pkg/container"

	"github.com/hibiken/asynq"
)

// asynqScheduler wraps asynq.Scheduler with additional functionality
type asynqScheduler struct {
	*asynq.Scheduler
}

// setupScheduler registers the periodic cache-mirror refresh and starts
// the scheduler.
func setupScheduler(c *container.Container) *asynqScheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		nil,
	)

	// Hourly by default; JOB_CACHE_MIRROR_CRON overrides.
	_, err := scheduler.Register(
		c.Config.Jobs.CacheMirrorSchedule,
		asynq.NewTask(shared.TypeCatalogCacheMirror, nil),
		asynq.Queue(shared.QueueCatalog),
	)
	if err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	// Start scheduler in goroutine
	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown gracefully shuts down the scheduler
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] ✓ Stopped")
}
