package auth

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Sweeper periodically deletes expired refresh tokens. Rotation already
// rejects expired tokens, so this is storage hygiene, not enforcement.
type Sweeper struct {
	DB      *gorm.DB
	Service *RefreshService
	cron    *cron.Cron
}

func NewSweeper(db *gorm.DB, svc *RefreshService) *Sweeper {
	return &Sweeper{DB: db, Service: svc}
}

// Run performs one purge pass.
func (s *Sweeper) Run() {
	n, err := s.Service.PurgeExpired(s.DB)
	if err != nil {
		log.Printf("[SWEEPER] purge failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[SWEEPER] purged %d expired refresh tokens", n)
	}
}

// Start schedules a daily purge at 03:00.
func (s *Sweeper) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc("0 3 * * *", s.Run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
