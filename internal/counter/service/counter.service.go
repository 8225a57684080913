package service

import (
	"demoapps/internal/counter/repository"

	"github.com/prometheus/client_golang/prometheus"
)

// Publisher receives every new count after it is persisted.
type Publisher interface {
	PublishCount(count int)
}

type CounterService struct {
	Repo   *repository.CounterRepository
	Feed   Publisher
	Visits prometheus.Counter
}

func NewCounterService(repo *repository.CounterRepository, feed Publisher, visits prometheus.Counter) *CounterService {
	return &CounterService{Repo: repo, Feed: feed, Visits: visits}
}

// Visit records one hit on the root page and returns the new count.
func (s *CounterService) Visit() (int, error) {
	count, err := s.Repo.IncrementCount()
	if err != nil {
		return 0, err
	}
	if s.Visits != nil {
		s.Visits.Inc()
	}
	if s.Feed != nil {
		s.Feed.PublishCount(count)
	}
	return count, nil
}

// Current returns the stored count without changing it.
func (s *CounterService) Current() (int, error) {
	return s.Repo.ReadCount()
}
