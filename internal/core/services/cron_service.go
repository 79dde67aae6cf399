package services

import (
	"context"
	"log"

	"tabaro3-api/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

// Start schedules the maintenance jobs and runs the scheduler
func (s *CronService) Start() {
	// Purge expired/revoked refresh tokens nightly at 03:30
	_, err := s.cron.AddFunc("30 3 * * *", s.purgeTokens)
	if err != nil {
		log.Printf("Failed to schedule token cleanup: %v", err)
		return
	}

	s.cron.Start()
	log.Println("Cron service started")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("Cron service stopped")
}

func (s *CronService) purgeTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("Token cleanup failed: %v", err)
		return
	}
	log.Println("Expired refresh tokens purged")
}
