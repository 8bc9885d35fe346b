package history

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListEntries(ctx context.Context, raffleID uuid.UUID) ([]*Entry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns a raffle's audit entries, oldest first.
func (s *Service) List(ctx context.Context, raffleID uuid.UUID) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, raffleID)
}
