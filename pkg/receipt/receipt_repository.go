package receipt

import (
	"context"

	"gorm.io/gorm"

	"Expronix-Backend/entities"
)

type (
	ReceiptRepository interface {
		CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error
		GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *receiptRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var scan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *receiptRepository) UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}
