package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrUpdateLogisticsCommandIsNotConstructed = errors.New(
	"UpdateLogisticsCommand must be created via NewUpdateLogisticsCommand constructor",
)

// UpdateLogisticsCommand corrects a shipment record, e.g. a mistyped tracking
// number or receiver address.
type UpdateLogisticsCommand struct { //nolint:recvcheck //using for validation
	logisticsID uuid.UUID
	patch       order.LogisticsPatch

	guard guard.ConstructorGuard
}

func NewUpdateLogisticsCommand(logisticsID uuid.UUID, patch order.LogisticsPatch) (UpdateLogisticsCommand, error) {
	cmd := UpdateLogisticsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("logistics id", logisticsID),
		patch.Validate(),
	); err != nil {
		return UpdateLogisticsCommand{}, err
	}
	cmd.logisticsID = logisticsID
	cmd.patch = patch

	return cmd, nil
}

func (c UpdateLogisticsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLogisticsCommandIsNotConstructed)
}

func (c UpdateLogisticsCommand) LogisticsID() uuid.UUID {
	return c.logisticsID
}

func (c UpdateLogisticsCommand) Patch() order.LogisticsPatch {
	return c.patch
}
