package hospitalstats

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, st *Stats) error {
	if st.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if st.TotalBeds <= 0 {
		return fmt.Errorf("totalBeds must be positive")
	}
	if st.OccupiedBeds < 0 || st.OccupiedBeds > st.TotalBeds {
		return fmt.Errorf("occupiedBeds must be between 0 and totalBeds")
	}
	return s.repo.Create(ctx, st)
}

func (s *Service) GetByDate(ctx context.Context, date time.Time) (*Stats, error) {
	return s.repo.GetByDate(ctx, date)
}

func (s *Service) Latest(ctx context.Context) (*Stats, error) {
	return s.repo.Latest(ctx)
}

func (s *Service) Update(ctx context.Context, date time.Time, patch *Patch) (*Stats, error) {
	return s.repo.Update(ctx, date, patch)
}
