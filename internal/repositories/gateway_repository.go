package repositories

import (
	"context"
	"errors"
	"fmt"

	"equifund/internal/models"

	"gorm.io/gorm"
)

type GatewayRepository interface {
	GetByID(ctx context.Context, id uint) (*models.PaymentGateway, error)
	Create(ctx context.Context, gateway *models.PaymentGateway) error
}

type gatewayRepository struct {
	db *gorm.DB
}

func NewGatewayRepository(db *gorm.DB) GatewayRepository {
	return &gatewayRepository{db: db}
}

func (r *gatewayRepository) GetByID(ctx context.Context, id uint) (*models.PaymentGateway, error) {
	var gateway models.PaymentGateway
	if err := r.db.WithContext(ctx).First(&gateway, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGatewayNotFound
		}
		return nil, fmt.Errorf("failed to get payment gateway: %w", err)
	}
	return &gateway, nil
}

func (r *gatewayRepository) Create(ctx context.Context, gateway *models.PaymentGateway) error {
	if err := r.db.WithContext(ctx).Create(gateway).Error; err != nil {
		return fmt.Errorf("failed to create payment gateway: %w", err)
	}
	return nil
}
