package orderrepo

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := orderFromDomain(o)
	return translateError(r.db.WithContext(ctx).Create(&dto).Error, "order", o.ID, "insert")
}

// Get retrieves a non-deleted order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.take(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves the order and takes a row lock on it.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.take(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) take(db *gorm.DB, id uuid.UUID) (*order.Order, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	if err := db.Where("id = ? AND deleted = ?", id, false).Take(&dto).Error; err != nil {
		return nil, translateError(err, "order", id, "select")
	}
	return orderToDomain(dto)
}

// Update writes the fields set in patch and increments the version.
func (r *GormOrderRepository) Update(ctx context.Context, id uuid.UUID, patch order.OrderPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	query := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ? AND deleted = ?", id, false)
	expected, hasExpected := patch.ExpectedVersion()
	if hasExpected {
		query = query.Where("version = ?", expected)
	}

	result := query.Updates(orderColumns(patch))
	if result.Error != nil {
		return translateError(result.Error, "order", id, "update")
	}
	if result.RowsAffected == 0 {
		if hasExpected {
			return errs.NewConcurrentModificationError("order", id)
		}
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}

func orderColumns(patch order.OrderPatch) map[string]any {
	columns := map[string]any{
		"version":    gorm.Expr("version + 1"),
		"updated_at": time.Now().UTC(),
	}
	if v, ok := patch.Status(); ok {
		columns["status"] = int(v)
	}
	if v, ok := patch.PayAmount(); ok {
		columns["pay_amount"] = v
	}
	if v, ok := patch.Remark(); ok {
		columns["remark"] = v
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

// Count returns the number of non-deleted orders matching filter.
func (r *GormOrderRepository) Count(ctx context.Context, filter ports.OrderFilter) (int64, error) {
	var total int64
	err := applyFilter(r.db.WithContext(ctx).Model(&OrderDTO{}), filter).Count(&total).Error
	if err != nil {
		return 0, translateError(err, "orders", filter, "count")
	}
	return total, nil
}

// Find returns one page of orders, newest first.
func (r *GormOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&OrderDTO{}), filter).
		Order("created_at DESC").
		Order("id DESC")
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, translateError(err, "orders", filter, "select")
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// FindExpiredUnpaid returns ids of orders created before createdBefore that
// are still waiting for payment.
func (r *GormOrderRepository) FindExpiredUnpaid(
	ctx context.Context,
	createdBefore time.Time,
	limit int,
) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND deleted = ? AND created_at < ?", int(order.WaitingPayment), false, createdBefore).
		Order("created_at ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translateError(err, "orders", createdBefore, "select expired")
	}
	return ids, nil
}

func applyFilter(query *gorm.DB, filter ports.OrderFilter) *gorm.DB {
	query = query.Where("deleted = ?", false)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}
	if filter.Number != "" {
		query = query.Where("number = ?", filter.Number)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at < ?", *filter.CreatedTo)
	}
	return query
}
