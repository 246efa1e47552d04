package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mr-Vicky-01/billing-software/internal/events"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	AppendTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)
}

type Service struct {
	repo Repository
	bus  *events.Bus
}

func NewService(repo Repository, bus *events.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

// Append durably stores the transaction. A caller-supplied id is preserved;
// an empty id gets a fresh one. Id collisions surface ErrDuplicate.
func (s *Service) Append(ctx context.Context, tx *Transaction) (*Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	if err := s.repo.AppendTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("appending transaction: %w", err)
	}

	s.bus.Notify(events.TopicTransactions)

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

// List returns all transactions, newest first.
func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// ListByMonth returns the transactions whose timestamp falls in the given
// local-time calendar month. Month is zero-based (0 = January).
func (s *Service) ListByMonth(ctx context.Context, year, month int) ([]*Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*Transaction

	for _, tx := range txs {
		if tx.InMonth(year, month) {
			matched = append(matched, tx)
		}
	}

	return matched, nil
}
