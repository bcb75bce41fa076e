package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// Clock returns the current time. Handlers default to UTC wall time.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// lockOrder loads the order and holds its row lock until the unit of work
// ends. Every handler changing an existing order goes through it before
// reading items, which serializes concurrent changes of one order.
func lockOrder(ctx context.Context, repo ports.OrderRepository, orderID uuid.UUID) (*order.Order, error) {
	o, err := repo.GetForUpdate(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("order %s: %w", orderID, order.ErrOrderNotFound)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// asNotFound replaces a store-level not-found error by a business code.
func asNotFound(err error, code error, format string, args ...any) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf(format+": %w", append(args, code)...)
	}
	return err
}

func requireID(name string, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireIDs(name string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError(name)
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return errs.NewValueIsInvalidErrorWithCause(name, errors.New("contains an empty id"))
		}
	}
	return nil
}
