package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the digest on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	digest *Digest
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that delivers a digest every interval.
func NewScheduler(d *Digest, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		digest: d,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runDigest); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled digests.
func (s *Scheduler) Start() {
	s.log.Info("digest scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for a running digest to
// finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("digest scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runDigest() {
	ctx := context.Background()
	s.log.Info("scheduled digest starting")
	if err := s.digest.Run(ctx); err != nil {
		s.log.Error("scheduled digest failed", "error", err)
	}
}
