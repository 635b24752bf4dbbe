package scheduler

import (
	"context"
	"os"
	"strings"
	"time"

	"locaequip/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultStatusSchedule = "0 6 * * *"

// Scheduler advances rental statuses on a cron schedule, so contracts become
// Ativo on their start date and Concluído after their end date without any
// operator action. STATUS_CRON_SCHEDULE overrides the default daily run.
type Scheduler struct {
	cron    *cron.Cron
	rentals usecase.IRentalUseCase
	logger  *zap.Logger
}

func New(rentals usecase.IRentalUseCase, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:    cron.New(),
		rentals: rentals,
		logger:  logger,
	}
}

func (s *Scheduler) Start() error {
	schedule := strings.TrimSpace(os.Getenv("STATUS_CRON_SCHEDULE"))
	if schedule == "" {
		schedule = defaultStatusSchedule
	}

	_, err := s.cron.AddFunc(schedule, s.rollStatuses)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("status scheduler started", zap.String("schedule", schedule))
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) rollStatuses() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	changed, err := s.rentals.RollStatuses(ctx, time.Now())
	if err != nil {
		s.logger.Error("status roll failed", zap.Error(err))
		return
	}
	s.logger.Info("status roll finished", zap.Int("changed", changed))
}
