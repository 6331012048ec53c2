package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/repository"
	"gorm.io/gorm"
)

// BuyerInput carries the form fields a buyer fills in when submitting a
// request or when staff record a direct sale.
type BuyerInput struct {
	Name          string
	Phone         string
	Email         *string
	PaymentMethod string
	PaymentProof  *string
	Notes         *string
}

func (in BuyerInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("buyer name is required: %w", ErrInvalidArgument)
	}
	if in.Phone == "" {
		return fmt.Errorf("buyer phone is required: %w", ErrInvalidArgument)
	}
	return nil
}

func (in BuyerInput) toModel() *model.Buyer {
	method := in.PaymentMethod
	if method == "" {
		method = "Efectivo"
	}
	return &model.Buyer{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		PaymentMethod: method,
		PaymentProof:  in.PaymentProof,
		Notes:         in.Notes,
	}
}

// RequestService orchestrates the purchase-request lifecycle: creation
// claims numbers as processing, approval sells them, rejection releases
// them. Ledger and request updates always land in the same transaction.
type RequestService interface {
	Create(ctx context.Context, in BuyerInput, numbers []int) (*model.RaffleRequest, error)
	Approve(ctx context.Context, requestID string) (*model.RaffleRequest, error)
	Reject(ctx context.Context, requestID string) (*model.RaffleRequest, error)
	ListForViewer(ctx context.Context, role model.Role, viewerID string) ([]model.RaffleRequest, error)
}

type requestService struct {
	db     *gorm.DB
	repo   repository.RequestRepository
	notify NotificationService
}

func NewRequestService(db *gorm.DB, notify NotificationService) RequestService {
	return &requestService{db: db, repo: repository.NewRequestRepository(db), notify: notify}
}

func (s *requestService) Create(ctx context.Context, in BuyerInput, numbers []int) (*model.RaffleRequest, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptySelection
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	numbers = dedupeNumbers(numbers)

	buyer := in.toModel()
	req := &model.RaffleRequest{
		ID:      uuid.NewString(),
		BuyerID: buyer.ID,
		Status:  model.RequestStatusPending,
	}
	for _, n := range numbers {
		req.Numbers = append(req.Numbers, model.RequestNumber{RequestID: req.ID, Number: n})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkAvailable(ctx, repository.NewNumberRepository(tx), numbers); err != nil {
			return err
		}
		if err := repository.NewBuyerRepository(tx).Create(ctx, buyer); err != nil {
			return fmt.Errorf("create buyer: %w", err)
		}
		if err := repository.NewRequestRepository(tx).Create(ctx, req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		return markProcessing(ctx, tx, numbers)
	})
	if err != nil {
		return nil, err
	}

	req.Buyer = *buyer
	s.notify.Notify(ctx, model.NotificationInfo, fmt.Sprintf("Nueva solicitud de %s por %d número(s)", buyer.Name, len(numbers)), &req.ID)
	return req, nil
}

func (s *requestService) Approve(ctx context.Context, requestID string) (*model.RaffleRequest, error) {
	req, err := s.resolve(ctx, requestID, model.RequestStatusApproved)
	if err != nil {
		return nil, err
	}
	s.notify.Notify(ctx, model.NotificationSuccess, fmt.Sprintf("Solicitud de %s aprobada", req.Buyer.Name), &req.ID)
	return req, nil
}

func (s *requestService) Reject(ctx context.Context, requestID string) (*model.RaffleRequest, error) {
	req, err := s.resolve(ctx, requestID, model.RequestStatusRejected)
	if err != nil {
		return nil, err
	}
	s.notify.Notify(ctx, model.NotificationInfo, fmt.Sprintf("Solicitud de %s rechazada", req.Buyer.Name), &req.ID)
	return req, nil
}

// resolve finalizes a pending request. The conditional status update and
// the ledger transition share one transaction, so a crash between them
// cannot strand a pending request with sold numbers or vice versa.
func (s *requestService) resolve(ctx context.Context, requestID string, to model.RequestStatus) (*model.RaffleRequest, error) {
	req, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load request: %w", err)
	}
	if req.Status != model.RequestStatusPending {
		return nil, ErrAlreadyResolved
	}

	numbers := req.NumberList()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		affected, err := repository.NewRequestRepository(tx).MarkResolvedIfPending(ctx, requestID, to)
		if err != nil {
			return fmt.Errorf("resolve request: %w", err)
		}
		if affected == 0 {
			return ErrAlreadyResolved
		}
		if to == model.RequestStatusApproved {
			from := []model.NumberStatus{model.NumberStatusProcessing}
			return markSold(ctx, tx, numbers, from, req.BuyerID, nil)
		}
		return release(ctx, tx, numbers)
	})
	if err != nil {
		return nil, err
	}

	req.Status = to
	return req, nil
}

func (s *requestService) ListForViewer(ctx context.Context, role model.Role, viewerID string) ([]model.RaffleRequest, error) {
	if role == model.RoleAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListBySeller(ctx, viewerID)
}
