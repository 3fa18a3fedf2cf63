// Package account coordinates loading, changing and saving accounts, and
// computes the summary figures collaborators display.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrAlreadyExists = errors.New("account already exists")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Load(ctx context.Context, id string) (*ledger.Account, error)
	Save(ctx context.Context, acc *ledger.Account) error
}

type Service struct {
	repo        Repository
	locks       *accountLocks
	now         func() time.Time
	warnPercent int
}

type Option func(*Service)

// WithClock sets the source of "today" for monthly figures.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithWarningThreshold sets the budget share, in percent, that triggers a warning.
func WithWarningThreshold(percent int) Option {
	return func(s *Service) { s.warnPercent = percent }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		locks:       newAccountLocks(),
		now:         time.Now,
		warnPercent: report.DefaultWarningPercent,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) today() time.Time {
	return ledger.DateOf(s.now())
}

type EntryParams struct {
	Type   ledger.Type
	Name   string
	Amount decimal.Decimal
	Label  string
	// Date defaults to today when zero.
	Date time.Time
}

func (s *Service) Register(ctx context.Context, username, password string) (*ledger.Account, error) {
	acc, err := ledger.NewAccount(username, password)
	if err != nil {
		return nil, err
	}

	defer s.locks.lock(acc.Username())()

	exists, err := s.repo.Exists(ctx, acc.Username())
	if err != nil {
		return nil, fmt.Errorf("checking account: %w", err)
	}

	if exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, acc.Username())
	}

	if err := s.repo.Save(ctx, acc); err != nil {
		return nil, fmt.Errorf("saving account: %w", err)
	}

	slog.InfoContext(ctx, "account registered", "account", acc.Username())

	return acc, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ledger.Account, error) {
	defer s.locks.lock(id)()

	return s.repo.Load(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) Save(ctx context.Context, acc *ledger.Account) error {
	defer s.locks.lock(acc.Username())()

	return s.repo.Save(ctx, acc)
}

// update loads id, applies fn and saves the result while holding the
// account's lock. Nothing is written when fn fails.
func (s *Service) update(ctx context.Context, id string, fn func(acc *ledger.Account) error) (*ledger.Account, error) {
	defer s.locks.lock(id)()

	acc, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}

	if err := fn(acc); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, acc); err != nil {
		return nil, fmt.Errorf("saving account: %w", err)
	}

	return acc, nil
}

// AddEntry records a new entry and returns it with its stored position.
func (s *Service) AddEntry(ctx context.Context, id string, params EntryParams) (ledger.Entry, int, error) {
	date := params.Date
	if date.IsZero() {
		date = s.today()
	}

	e, err := ledger.NewEntry(params.Type, params.Name, params.Amount, params.Label, date)
	if err != nil {
		return ledger.Entry{}, 0, err
	}

	index := 0

	_, err = s.update(ctx, id, func(acc *ledger.Account) error {
		acc.AddEntry(e)
		index = len(acc.Entries()) - 1

		return nil
	})
	if err != nil {
		return ledger.Entry{}, 0, err
	}

	return e, index, nil
}

// RemoveEntry deletes the entry at stored position index and returns it.
func (s *Service) RemoveEntry(ctx context.Context, id string, index int) (ledger.Entry, error) {
	var removed ledger.Entry

	_, err := s.update(ctx, id, func(acc *ledger.Account) error {
		entries := acc.Entries()
		if err := acc.RemoveEntryAt(index); err != nil {
			return err
		}

		removed = entries[index]

		return nil
	})
	if err != nil {
		return ledger.Entry{}, err
	}

	return removed, nil
}

func (s *Service) SetMonthlyBudget(ctx context.Context, id string, budget decimal.Decimal) error {
	_, err := s.update(ctx, id, func(acc *ledger.Account) error {
		return acc.SetMonthlyBudget(budget)
	})

	return err
}

// SetSavingsGoal sets the goal and replaces its horizon.
func (s *Service) SetSavingsGoal(ctx context.Context, id string, goal decimal.Decimal, horizon ledger.Horizon) error {
	_, err := s.update(ctx, id, func(acc *ledger.Account) error {
		if err := acc.SetSavingsGoal(goal); err != nil {
			return err
		}

		acc.SetHorizon(horizon)

		return nil
	})

	return err
}

// Import appends entries to the account and saves once. Entries already
// recorded with identical values are skipped, each existing entry absorbing
// at most one incoming duplicate. It returns how many were added.
func (s *Service) Import(ctx context.Context, id string, entries []ledger.Entry) (int, error) {
	added := 0

	_, err := s.update(ctx, id, func(acc *ledger.Account) error {
		existing := acc.Entries()
		used := make([]bool, len(existing))

		for _, e := range entries {
			if matchUnused(existing, used, e) {
				continue
			}

			acc.AddEntry(e)
			added++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "entries imported", "account", id, "added", added, "skipped", len(entries)-added)

	return added, nil
}

func matchUnused(existing []ledger.Entry, used []bool, e ledger.Entry) bool {
	for i, x := range existing {
		if !used[i] && x.Equal(e) {
			used[i] = true
			return true
		}
	}

	return false
}
