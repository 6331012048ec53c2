package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"gorm.io/gorm"
)

// LedgerService is the single source of truth for per-number status and
// ownership. Every transition is a conditional bulk update whose affected
// row count is compared against the requested set, so concurrent writers
// cannot both move the same number out of its current status.
type LedgerService interface {
	List(ctx context.Context) ([]model.RaffleNumber, error)
	Get(ctx context.Context, number int) (*model.RaffleNumber, error)
	Select(ctx context.Context, numbers []int) error
	MarkProcessing(ctx context.Context, numbers []int) error
	MarkSold(ctx context.Context, numbers []int, buyerID string, sellerID *string) error
	Release(ctx context.Context, numbers []int) error
	AssignSeller(ctx context.Context, numbers []int, sellerID string) error
	AssignRange(ctx context.Context, start, end int, sellerID string) (int64, error)
}

type ledgerService struct {
	db   *gorm.DB
	repo repository.NumberRepository
}

func NewLedgerService(db *gorm.DB) LedgerService {
	return &ledgerService{db: db, repo: repository.NewNumberRepository(db)}
}

func (s *ledgerService) List(ctx context.Context) ([]model.RaffleNumber, error) {
	return s.repo.List(ctx)
}

func (s *ledgerService) Get(ctx context.Context, number int) (*model.RaffleNumber, error) {
	row, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("number %d: %w", number, ErrNotFound)
		}
		return nil, fmt.Errorf("load number: %w", err)
	}
	return row, nil
}

// Select validates that every number exists and is available. It never
// mutates; selection is a client-local concept until a request is created.
func (s *ledgerService) Select(ctx context.Context, numbers []int) error {
	if len(numbers) == 0 {
		return ErrEmptySelection
	}
	return checkAvailable(ctx, s.repo, dedupeNumbers(numbers))
}

func (s *ledgerService) MarkProcessing(ctx context.Context, numbers []int) error {
	if len(numbers) == 0 {
		return ErrEmptySelection
	}
	numbers = dedupeNumbers(numbers)
	return s.db.Transaction(func(tx *gorm.DB) error {
		return markProcessing(ctx, tx, numbers)
	})
}

func (s *ledgerService) MarkSold(ctx context.Context, numbers []int, buyerID string, sellerID *string) error {
	if len(numbers) == 0 {
		return ErrEmptySelection
	}
	numbers = dedupeNumbers(numbers)
	from := []model.NumberStatus{model.NumberStatusAvailable, model.NumberStatusProcessing}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return markSold(ctx, tx, numbers, from, buyerID, sellerID)
	})
}

func (s *ledgerService) Release(ctx context.Context, numbers []int) error {
	if len(numbers) == 0 {
		return ErrEmptySelection
	}
	numbers = dedupeNumbers(numbers)
	return s.db.Transaction(func(tx *gorm.DB) error {
		return release(ctx, tx, numbers)
	})
}

// AssignSeller attributes the given numbers to a seller without touching
// their status. Unlike AssignRange, every number must exist.
func (s *ledgerService) AssignSeller(ctx context.Context, numbers []int, sellerID string) error {
	if len(numbers) == 0 {
		return ErrEmptySelection
	}
	if sellerID == "" {
		return fmt.Errorf("seller id is required: %w", ErrInvalidArgument)
	}
	rows, err := s.repo.FindByNumbers(ctx, numbers)
	if err != nil {
		return fmt.Errorf("load numbers: %w", err)
	}
	if len(rows) != len(dedupeNumbers(numbers)) {
		existing := make(map[int]bool, len(rows))
		for _, row := range rows {
			existing[row.Number] = true
		}
		for _, n := range numbers {
			if !existing[n] {
				return fmt.Errorf("number %d: %w", n, ErrNotFound)
			}
		}
	}
	if _, err := s.repo.AssignSeller(ctx, numbers, sellerID); err != nil {
		return fmt.Errorf("assign seller: %w", err)
	}
	return nil
}

// AssignRange assigns every existing number in [start, end] to the seller,
// silently skipping numbers outside the ledger, and returns the count of
// rows actually updated.
func (s *ledgerService) AssignRange(ctx context.Context, start, end int, sellerID string) (int64, error) {
	if start > end {
		return 0, ErrInvalidRange
	}
	if sellerID == "" {
		return 0, fmt.Errorf("seller id is required: %w", ErrInvalidArgument)
	}
	numbers := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		numbers = append(numbers, n)
	}
	count, err := s.repo.AssignSeller(ctx, numbers, sellerID)
	if err != nil {
		return 0, fmt.Errorf("assign range: %w", err)
	}
	return count, nil
}

// checkAvailable reports the first number that is missing or not available.
func checkAvailable(ctx context.Context, repo repository.NumberRepository, numbers []int) error {
	rows, err := repo.FindByNumbers(ctx, numbers)
	if err != nil {
		return fmt.Errorf("load numbers: %w", err)
	}
	byNumber := make(map[int]model.RaffleNumber, len(rows))
	for _, row := range rows {
		byNumber[row.Number] = row
	}
	for _, n := range numbers {
		row, ok := byNumber[n]
		if !ok || row.Status != model.NumberStatusAvailable {
			return &NumberUnavailableError{Number: n}
		}
	}
	return nil
}

// markProcessing claims available numbers inside tx. A shortfall in affected
// rows means another writer won the race for at least one number.
func markProcessing(ctx context.Context, tx *gorm.DB, numbers []int) error {
	repo := repository.NewNumberRepository(tx)
	affected, err := repo.MarkProcessing(ctx, numbers)
	if err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}
	if affected != int64(len(numbers)) {
		from := []model.NumberStatus{model.NumberStatusAvailable}
		return firstTransitionConflict(ctx, repo, numbers, from, model.NumberStatusProcessing)
	}
	return nil
}

func markSold(ctx context.Context, tx *gorm.DB, numbers []int, from []model.NumberStatus, buyerID string, sellerID *string) error {
	repo := repository.NewNumberRepository(tx)
	affected, err := repo.MarkSold(ctx, numbers, from, buyerID, sellerID)
	if err != nil {
		return fmt.Errorf("mark sold: %w", err)
	}
	if affected != int64(len(numbers)) {
		return firstTransitionConflict(ctx, repo, numbers, from, model.NumberStatusSold)
	}
	return nil
}

func release(ctx context.Context, tx *gorm.DB, numbers []int) error {
	repo := repository.NewNumberRepository(tx)
	affected, err := repo.Release(ctx, numbers)
	if err != nil {
		return fmt.Errorf("release: %w", err)
	}
	if affected != int64(len(numbers)) {
		from := []model.NumberStatus{model.NumberStatusProcessing}
		return firstTransitionConflict(ctx, repo, numbers, from, model.NumberStatusAvailable)
	}
	return nil
}

func firstTransitionConflict(ctx context.Context, repo repository.NumberRepository, numbers []int, from []model.NumberStatus, to model.NumberStatus) error {
	rows, err := repo.FindByNumbers(ctx, numbers)
	if err != nil {
		return fmt.Errorf("load numbers: %w", err)
	}
	byNumber := make(map[int]model.RaffleNumber, len(rows))
	for _, row := range rows {
		byNumber[row.Number] = row
	}
	allowed := make(map[model.NumberStatus]bool, len(from))
	for _, st := range from {
		allowed[st] = true
	}
	for _, n := range numbers {
		row, ok := byNumber[n]
		if !ok {
			return fmt.Errorf("number %d: %w", n, ErrNotFound)
		}
		// Rows the bulk update already moved read back as the target status
		// inside this tx; they are not conflicts.
		if row.Status == to || allowed[row.Status] {
			continue
		}
		return &InvalidTransitionError{Number: n, Status: row.Status}
	}
	return &InvalidTransitionError{Number: numbers[0], Status: to}
}

func dedupeNumbers(numbers []int) []int {
	seen := make(map[int]bool, len(numbers))
	out := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
