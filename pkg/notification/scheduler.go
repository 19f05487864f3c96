package notification

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the daily reminder pass. A failed run is logged and the
// next scheduled run proceeds unaffected.
type Scheduler struct {
	cron    *cron.Cron
	service NotificationService
}

func NewScheduler(service NotificationService, spec string) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		if err := service.Run(context.Background(), time.Now()); err != nil {
			log.Printf("Reminder run failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c, service: service}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
