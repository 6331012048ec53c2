package repository

import (
	"context"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"gorm.io/gorm"
)

type BuyerRepository interface {
	Create(ctx context.Context, b *model.Buyer) error
	FindByID(ctx context.Context, id string) (*model.Buyer, error)
	List(ctx context.Context) ([]model.Buyer, error)
}

type buyerRepository struct {
	db *gorm.DB
}

func NewBuyerRepository(db *gorm.DB) BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, b *model.Buyer) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *buyerRepository) FindByID(ctx context.Context, id string) (*model.Buyer, error) {
	var b model.Buyer
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *buyerRepository) List(ctx context.Context) ([]model.Buyer, error) {
	var list []model.Buyer
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
