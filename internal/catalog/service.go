package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Mr-Vicky-01/billing-software/internal/events"
)

// ErrInvalid is returned when caller-supplied item fields fail validation.
var ErrInvalid = errors.New("invalid catalog item")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	ListItems(ctx context.Context) ([]*Item, error)
	CreateItem(ctx context.Context, item *Item) error
	UpdateItem(ctx context.Context, id string, params UpdateParams) (*Item, error)
	DeleteItem(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo Repository
	bus  *events.Bus
}

func NewService(repo Repository, bus *events.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

// List returns all catalog items. A store observed empty is seeded with the
// default catalog first, so every deployment starts with something to sell.
func (s *Service) List(ctx context.Context) ([]*Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		return items, nil
	}

	seed := DefaultItems()
	for _, item := range seed {
		err := s.repo.CreateItem(ctx, item)
		if errors.Is(err, ErrDuplicate) {
			// A concurrent List already seeded this item.
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("seeding default catalog: %w", err)
		}
	}

	return seed, nil
}

func (s *Service) Add(ctx context.Context, item *Item) (*Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if item.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.bus.Notify(events.TopicCatalog)

	return item, nil
}

// Update merges only the supplied fields into the stored item.
// It never creates: a missing id surfaces ErrNotFound.
func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalid)
	}

	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}

	if params.Price != nil && *params.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}

	item, err := s.repo.UpdateItem(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.bus.Notify(events.TopicCatalog)

	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: id is required", ErrInvalid)
	}

	deleted, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.bus.Notify(events.TopicCatalog)
	}

	return deleted, nil
}
