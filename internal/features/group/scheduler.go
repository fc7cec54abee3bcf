package group

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// StatusScheduler rolls group statuses forward once a day based on the
// group's date range: upcoming before the start date, active inside it,
// completed after the end date. Cancelled groups are left alone.
type StatusScheduler struct {
	repo      GroupRepository
	logger    *zap.Logger
	scheduler *cron.Cron
}

func NewStatusScheduler(repo GroupRepository, logger *zap.Logger) *StatusScheduler {
	return &StatusScheduler{
		repo:   repo,
		logger: logger,
	}
}

func (s *StatusScheduler) Start(ctx context.Context) error {
	s.scheduler = cron.New()
	if _, err := s.scheduler.AddFunc("@daily", s.rollStatuses); err != nil {
		return err
	}
	s.scheduler.Start()

	// Catch up immediately so a restart does not wait a day
	go s.rollStatuses()
	return nil
}

func (s *StatusScheduler) Stop() error {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	return nil
}

func (s *StatusScheduler) rollStatuses() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	groups, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("status rollover: failed to list groups", zap.Error(err))
		return
	}

	now := time.Now().UTC()
	for _, g := range groups {
		next, ok := nextStatus(g.Status, g.StartDate, g.EndDate, now)
		if !ok {
			continue
		}
		if err := s.repo.UpdateStatus(ctx, g.ID, next); err != nil {
			s.logger.Error("status rollover: failed to update group",
				zap.String("group_id", g.ID), zap.Error(err))
			continue
		}
		s.logger.Info("status rollover: group transitioned",
			zap.String("group_id", g.ID),
			zap.String("from", g.Status),
			zap.String("to", next))
	}
}

// nextStatus computes the status a group should have at now. The second
// return value is false when no transition applies, including when the
// group is cancelled or a date fails to parse.
func nextStatus(current, startDate, endDate string, now time.Time) (string, bool) {
	if current == StatusCancelled {
		return "", false
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return "", false
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return "", false
	}

	var want string
	switch {
	case now.Before(start):
		want = StatusUpcoming
	case now.After(end.Add(24 * time.Hour)):
		want = StatusCompleted
	default:
		want = StatusActive
	}

	if want == current {
		return "", false
	}
	return want, true
}
