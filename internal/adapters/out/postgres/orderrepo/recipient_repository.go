package orderrepo

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.OrderRecipientRepository = (*GormOrderRecipientRepository)(nil)

type GormOrderRecipientRepository struct {
	db *gorm.DB
}

func NewGormOrderRecipientRepository(db *gorm.DB) *GormOrderRecipientRepository {
	return &GormOrderRecipientRepository{db: db}
}

func (r *GormOrderRecipientRepository) Add(ctx context.Context, recipient *order.Recipient) error {
	dto := recipientFromDomain(recipient)
	return translateError(r.db.WithContext(ctx).Create(&dto).Error, "order recipient", recipient.OrderID, "insert")
}

func (r *GormOrderRecipientRepository) GetByOrder(ctx context.Context, orderID uuid.UUID) (*order.Recipient, error) {
	var dto OrderRecipientDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Take(&dto).Error; err != nil {
		return nil, translateError(err, "order recipient", orderID, "select")
	}
	return recipientToDomain(dto), nil
}

func (r *GormOrderRecipientRepository) ListByOrders(
	ctx context.Context,
	orderIDs []uuid.UUID,
) ([]*order.Recipient, error) {
	if len(orderIDs) == 0 {
		return []*order.Recipient{}, nil
	}

	var dtos []OrderRecipientDTO
	if err := r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Find(&dtos).Error; err != nil {
		return nil, translateError(err, "order recipients", orderIDs, "select")
	}

	recipients := make([]*order.Recipient, 0, len(dtos))
	for _, dto := range dtos {
		recipients = append(recipients, recipientToDomain(dto))
	}
	return recipients, nil
}
