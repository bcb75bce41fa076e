package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.OrderCancellationRepository = (*GormOrderCancellationRepository)(nil)

type GormOrderCancellationRepository struct {
	db *gorm.DB
}

func NewGormOrderCancellationRepository(db *gorm.DB) *GormOrderCancellationRepository {
	return &GormOrderCancellationRepository{db: db}
}

func (r *GormOrderCancellationRepository) Add(ctx context.Context, cancellation *order.Cancellation) error {
	dto := cancellationFromDomain(cancellation)
	return translateError(
		r.db.WithContext(ctx).Create(&dto).Error, "order cancellation", cancellation.OrderID, "insert")
}

// GetByOrder returns nil without error when the order has no cancellation.
func (r *GormOrderCancellationRepository) GetByOrder(
	ctx context.Context,
	orderID uuid.UUID,
) (*order.Cancellation, error) {
	var dto OrderCancellationDTO
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err, "order cancellation", orderID, "select")
	}
	return cancellationToDomain(dto), nil
}
