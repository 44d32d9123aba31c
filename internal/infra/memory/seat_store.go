package memory

import (
	"context"
	"sync"

	"github.com/mj-jones15/pastProjects/internal/domain"
	"golang.org/x/sync/semaphore"
)

// SeatStore admits a single drill per process.
type SeatStore struct {
	sem *semaphore.Weighted
}

func NewSeatStore() *SeatStore {
	return &SeatStore{sem: semaphore.NewWeighted(1)}
}

func (s *SeatStore) Acquire(_ context.Context) (func(), error) {
	if !s.sem.TryAcquire(1) {
		return nil, domain.ErrSeatTaken
	}
	var once sync.Once
	return func() { once.Do(func() { s.sem.Release(1) }) }, nil
}
