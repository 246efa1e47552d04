package settings

import (
	"context"

	"github.com/Mr-Vicky-01/billing-software/internal/events"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settings
type Repository interface {
	// GetSettings returns the singleton record, creating the empty default
	// if none exists yet.
	GetSettings(ctx context.Context) (*Settings, error)

	// SaveSettings upserts the singleton. Implementations must keep the
	// at-most-one-record invariant under concurrent savers.
	SaveSettings(ctx context.Context, s *Settings) error
}

type Service struct {
	repo Repository
	bus  *events.Bus
}

func NewService(repo Repository, bus *events.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.GetSettings(ctx)
}

func (s *Service) Save(ctx context.Context, settings *Settings) error {
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return err
	}

	s.bus.Notify(events.TopicSettings)

	return nil
}
