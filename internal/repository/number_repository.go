package repository

import (
	"context"

	"github.com/jspsoluciones/raffle-backend/internal/model"
	"gorm.io/gorm"
)

// PaymentMethodCount is a stats row: sold numbers grouped by the buyer's
// payment method.
type PaymentMethodCount struct {
	PaymentMethod string `gorm:"column:payment_method"`
	Count         int64  `gorm:"column:count"`
}

// SellerTally is a stats row: per-seller assigned and sold counters.
type SellerTally struct {
	SellerID string `gorm:"column:seller_id"`
	Assigned int64  `gorm:"column:assigned"`
	Sold     int64  `gorm:"column:sold"`
}

type NumberRepository interface {
	List(ctx context.Context) ([]model.RaffleNumber, error)
	FindByNumber(ctx context.Context, number int) (*model.RaffleNumber, error)
	FindByNumbers(ctx context.Context, numbers []int) ([]model.RaffleNumber, error)
	MarkProcessing(ctx context.Context, numbers []int) (int64, error)
	MarkSold(ctx context.Context, numbers []int, from []model.NumberStatus, buyerID string, sellerID *string) (int64, error)
	Release(ctx context.Context, numbers []int) (int64, error)
	AssignSeller(ctx context.Context, numbers []int, sellerID string) (int64, error)
	CountByStatus(ctx context.Context) (map[model.NumberStatus]int64, error)
	SoldByPaymentMethod(ctx context.Context) ([]PaymentMethodCount, error)
	SellerTallies(ctx context.Context) ([]SellerTally, error)
}

type numberRepository struct {
	db *gorm.DB
}

func NewNumberRepository(db *gorm.DB) NumberRepository {
	return &numberRepository{db: db}
}

func (r *numberRepository) List(ctx context.Context) ([]model.RaffleNumber, error) {
	var list []model.RaffleNumber
	if err := r.db.WithContext(ctx).
		Order("number ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *numberRepository) FindByNumber(ctx context.Context, number int) (*model.RaffleNumber, error) {
	var n model.RaffleNumber
	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *numberRepository) FindByNumbers(ctx context.Context, numbers []int) ([]model.RaffleNumber, error) {
	var list []model.RaffleNumber
	if err := r.db.WithContext(ctx).
		Where("number IN ?", numbers).
		Order("number ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// MarkProcessing flips available numbers to processing. The WHERE clause on
// the current status is the serialization point: of two concurrent requests
// claiming the same number, only one sees its row affected.
func (r *numberRepository) MarkProcessing(ctx context.Context, numbers []int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.RaffleNumber{}).
		Where("number IN ? AND status = ?", numbers, model.NumberStatusAvailable).
		Update("status", model.NumberStatusProcessing)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *numberRepository) MarkSold(ctx context.Context, numbers []int, from []model.NumberStatus, buyerID string, sellerID *string) (int64, error) {
	updates := map[string]interface{}{
		"status":   model.NumberStatusSold,
		"buyer_id": buyerID,
	}
	if sellerID != nil {
		updates["seller_id"] = *sellerID
	}
	res := r.db.WithContext(ctx).
		Model(&model.RaffleNumber{}).
		Where("number IN ? AND status IN ?", numbers, from).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *numberRepository) Release(ctx context.Context, numbers []int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.RaffleNumber{}).
		Where("number IN ? AND status = ?", numbers, model.NumberStatusProcessing).
		Updates(map[string]interface{}{
			"status":   model.NumberStatusAvailable,
			"buyer_id": nil,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *numberRepository) AssignSeller(ctx context.Context, numbers []int, sellerID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.RaffleNumber{}).
		Where("number IN ?", numbers).
		Update("seller_id", sellerID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *numberRepository) CountByStatus(ctx context.Context) (map[model.NumberStatus]int64, error) {
	var rows []struct {
		Status model.NumberStatus `gorm:"column:status"`
		Count  int64              `gorm:"column:count"`
	}
	if err := r.db.WithContext(ctx).
		Model(&model.RaffleNumber{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[model.NumberStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *numberRepository) SoldByPaymentMethod(ctx context.Context) ([]PaymentMethodCount, error) {
	var rows []PaymentMethodCount
	if err := r.db.WithContext(ctx).
		Model(&model.RaffleNumber{}).
		Select("buyers.payment_method AS payment_method, COUNT(*) AS count").
		Joins("JOIN buyers ON buyers.id = raffle_numbers.buyer_id").
		Where("raffle_numbers.status = ?", model.NumberStatusSold).
		Group("buyers.payment_method").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *numberRepository) SellerTallies(ctx context.Context) ([]SellerTally, error) {
	var rows []SellerTally
	if err := r.db.WithContext(ctx).
		Model(&model.RaffleNumber{}).
		Select("seller_id, COUNT(*) AS assigned, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS sold", model.NumberStatusSold).
		Where("seller_id IS NOT NULL").
		Group("seller_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
