package orderrepo

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.OrderItemRepository = (*GormOrderItemRepository)(nil)

// GormOrderItemRepository implements ports.OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db *gorm.DB
}

func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// AddAll inserts items in one statement.
func (r *GormOrderItemRepository) AddAll(ctx context.Context, items []*order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemFromDomain(item))
	}
	return translateError(r.db.WithContext(ctx).Create(&dtos).Error, "order item", items[0].OrderID, "insert")
}

func (r *GormOrderItemRepository) ListByOrder(
	ctx context.Context,
	orderID uuid.UUID,
	deleted bool,
) ([]*order.Item, error) {
	return r.ListByOrders(ctx, []uuid.UUID{orderID}, deleted)
}

func (r *GormOrderItemRepository) ListByOrders(
	ctx context.Context,
	orderIDs []uuid.UUID,
	deleted bool,
) ([]*order.Item, error) {
	if len(orderIDs) == 0 {
		return []*order.Item{}, nil
	}

	var dtos []OrderItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id IN ? AND deleted = ?", orderIDs, deleted).
		Order("created_at ASC").
		Order("id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, translateError(err, "order items", orderIDs, "select")
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, itemToDomain(dto))
	}
	return items, nil
}

// Update patches one non-deleted item of the order.
func (r *GormOrderItemRepository) Update(
	ctx context.Context,
	orderID, itemID uuid.UUID,
	patch order.ItemPatch,
) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Where("id = ? AND order_id = ? AND deleted = ?", itemID, orderID, false).
		Updates(itemColumns(patch))
	if result.Error != nil {
		return translateError(result.Error, "order item", itemID, "update")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order item", itemID)
	}
	return nil
}

// UpdateByIDs patches the listed items and checks that all of them changed.
func (r *GormOrderItemRepository) UpdateByIDs(
	ctx context.Context,
	orderID uuid.UUID,
	itemIDs []uuid.UUID,
	patch order.ItemPatch,
) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("item ids")
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	ids := distinct(itemIDs)
	result := r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Where("id IN ? AND order_id = ? AND deleted = ?", ids, orderID, false).
		Updates(itemColumns(patch))
	if result.Error != nil {
		return translateError(result.Error, "order items", orderID, "update")
	}
	if result.RowsAffected != int64(len(ids)) {
		return errs.NewConcurrentModificationError("order", orderID)
	}
	return nil
}

// UpdateByOrder patches every non-deleted item of the order.
func (r *GormOrderItemRepository) UpdateByOrder(
	ctx context.Context,
	orderID uuid.UUID,
	patch order.ItemPatch,
) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Where("order_id = ? AND deleted = ?", orderID, false).
		Updates(itemColumns(patch)).Error
	return translateError(err, "order items", orderID, "update")
}

func itemColumns(patch order.ItemPatch) map[string]any {
	columns := map[string]any{"updated_at": time.Now().UTC()}
	if v, ok := patch.Status(); ok {
		columns["status"] = int(v)
	}
	if v, ok := patch.Quantity(); ok {
		columns["quantity"] = v
	}
	if v, ok := patch.Price(); ok {
		columns["price"] = v
	}
	if v, ok := patch.PayAmount(); ok {
		columns["pay_amount"] = v
	}
	if v, ok := patch.DeliveryType(); ok {
		columns["delivery_type"] = int(v)
	}
	if v, ok := patch.LogisticsID(); ok {
		columns["logistics_id"] = v
	}
	if v, ok := patch.Deleted(); ok {
		columns["deleted"] = v
	}
	if v, ok := patch.PaymentTime(); ok {
		columns["payment_time"] = v
	}
	if v, ok := patch.DeliveryTime(); ok {
		columns["delivery_time"] = v
	}
	if v, ok := patch.ClosingTime(); ok {
		columns["closing_time"] = v
	}
	return columns
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
