package service

import (
	"context"

	"demoapps/internal/message/repository"

	"github.com/prometheus/client_golang/prometheus"
)

type MessageService struct {
	Repo  *repository.MessageRepository
	Added prometheus.Counter
}

func NewMessageService(repo *repository.MessageRepository, added prometheus.Counter) *MessageService {
	return &MessageService{Repo: repo, Added: added}
}

func (s *MessageService) ListMessages(ctx context.Context) ([]string, error) {
	return s.Repo.ListMessages(ctx)
}

// AddMessage stores text as given. No sanitizing happens here; pages escape
// it when rendering.
func (s *MessageService) AddMessage(ctx context.Context, text string) error {
	if err := s.Repo.AddMessage(ctx, text); err != nil {
		return err
	}
	if s.Added != nil {
		s.Added.Inc()
	}
	return nil
}

func (s *MessageService) InitDB(ctx context.Context) error {
	return s.Repo.InitializeSchema(ctx)
}
