package repository

import (
	"context"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, req *model.RaffleRequest) error
	FindByID(ctx context.Context, id string) (*model.RaffleRequest, error)
	MarkResolvedIfPending(ctx context.Context, id string, to model.RequestStatus) (int64, error)
	ListAll(ctx context.Context) ([]model.RaffleRequest, error)
	ListBySeller(ctx context.Context, sellerID string) ([]model.RaffleRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create persists the request together with its owned number rows. The
// buyer is created separately and only referenced here.
func (r *requestRepository) Create(ctx context.Context, req *model.RaffleRequest) error {
	return r.db.WithContext(ctx).Omit("Buyer").Create(req).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id string) (*model.RaffleRequest, error) {
	var req model.RaffleRequest
	if err := r.db.WithContext(ctx).
		Preload("Buyer").
		Preload("Numbers").
		First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// MarkResolvedIfPending finalizes a pending request. The conditional update
// makes resolution race-safe: a second approve/reject sees zero rows.
func (r *requestRepository) MarkResolvedIfPending(ctx context.Context, id string, to model.RequestStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.RaffleRequest{}).
		Where("id = ? AND status = ?", id, model.RequestStatusPending).
		Update("status", to)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *requestRepository) ListAll(ctx context.Context) ([]model.RaffleRequest, error) {
	var list []model.RaffleRequest
	if err := r.db.WithContext(ctx).
		Preload("Buyer").
		Preload("Numbers").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListBySeller returns requests touching at least one number currently
// assigned to the given seller.
func (r *requestRepository) ListBySeller(ctx context.Context, sellerID string) ([]model.RaffleRequest, error) {
	var list []model.RaffleRequest
	if err := r.db.WithContext(ctx).
		Distinct("raffle_requests.*").
		Joins("JOIN request_numbers ON request_numbers.request_id = raffle_requests.id").
		Joins("JOIN raffle_numbers ON raffle_numbers.number = request_numbers.number").
		Where("raffle_numbers.seller_id = ?", sellerID).
		Preload("Buyer").
		Preload("Numbers").
		Order("raffle_requests.created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
