package pillar

import (
	"fmt"
	"log/slog"
	"time"
)

// Scheduler advances through the catalog once per calendar day. The boundary is
// midnight in the process's local timezone; within a day every call returns the
// same pillar and performs no further writes.
type Scheduler struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

func NewScheduler(store Store, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:  store,
		now:    time.Now,
		logger: logger.With("component", "scheduler"),
	}
}

// WithClock overrides the time source. Tests use this to cross day boundaries.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// ActivePillar returns today's pillar, rotating and persisting first if today
// differs from the stored date. The state is written before the pillar is
// returned, so a crash after the write still leaves a consistent record.
func (s *Scheduler) ActivePillar() (Pillar, error) {
	st, err := s.store.Load()
	if err != nil {
		// Stores are expected to fail open, but guard anyway.
		st = DefaultState()
	}

	today := s.now().Format("2006-01-02")

	if st.LastDate == today {
		s.logger.Debug("pillar already rotated today", "date", today, "index", st.CurrentIndex)
		return catalog[st.CurrentIndex], nil
	}

	next := (st.CurrentIndex + 1) % Count
	st.LastDate = today
	st.CurrentIndex = next
	if err := s.store.Save(st); err != nil {
		return catalog[next], fmt.Errorf("persist rotation state: %w", err)
	}

	s.logger.Info("rotated to new pillar", "date", today, "index", next, "pillar", catalog[next].Name)
	return catalog[next], nil
}
