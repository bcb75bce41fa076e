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

var _ ports.OrderLogisticsRepository = (*GormOrderLogisticsRepository)(nil)

type GormOrderLogisticsRepository struct {
	db *gorm.DB
}

func NewGormOrderLogisticsRepository(db *gorm.DB) *GormOrderLogisticsRepository {
	return &GormOrderLogisticsRepository{db: db}
}

func (r *GormOrderLogisticsRepository) Add(ctx context.Context, logistics *order.Logistics) error {
	dto := logisticsFromDomain(logistics)
	return translateError(r.db.WithContext(ctx).Create(&dto).Error, "order logistics", logistics.ID, "insert")
}

func (r *GormOrderLogisticsRepository) Get(ctx context.Context, id uuid.UUID) (*order.Logistics, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("logistics id")
	}

	var dto OrderLogisticsDTO
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&dto).Error; err != nil {
		return nil, translateError(err, "order logistics", id, "select")
	}
	return logisticsToDomain(dto), nil
}

func (r *GormOrderLogisticsRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*order.Logistics, error) {
	var dtos []OrderLogisticsDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, translateError(err, "order logistics", orderID, "select")
	}

	shipments := make([]*order.Logistics, 0, len(dtos))
	for _, dto := range dtos {
		shipments = append(shipments, logisticsToDomain(dto))
	}
	return shipments, nil
}

func (r *GormOrderLogisticsRepository) Update(ctx context.Context, id uuid.UUID, patch order.LogisticsPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	columns := map[string]any{"updated_at": time.Now().UTC()}
	if v, ok := patch.Carrier(); ok {
		columns["carrier"] = v
	}
	if v, ok := patch.TrackingNumber(); ok {
		columns["tracking_number"] = v
	}
	if v, ok := patch.Name(); ok {
		columns["name"] = v
	}
	if v, ok := patch.Mobile(); ok {
		columns["mobile"] = v
	}
	if v, ok := patch.Address(); ok {
		columns["address"] = v
	}

	result := r.db.WithContext(ctx).Model(&OrderLogisticsDTO{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return translateError(result.Error, "order logistics", id, "update")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order logistics", id)
	}
	return nil
}
