package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("must be positive"))

		assert.Equal(t, "value is invalid: quantity (cause: must be positive)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("pageSize", 500, 1, 100)

		assert.Equal(t, 500, err.Value)
		assert.Equal(t, "value is invalid: 500 is pageSize, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("page", -5, 1, 1000, errors.New("negative"))

		assert.Equal(t,
			"value is invalid: -5 is page, min value is 1, max value is 1000 (cause: negative)",
			err.Error())
	})

	t.Run("should replace newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("carrier")
	assert.Equal(t, "value is required: carrier", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("carrier", errors.New("empty"))
	assert.Equal(t, "value is required: carrier (cause: empty)", withCause.Error())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateErrorWithCause("status", errors.New("CLOSED is not a valid status to cancel"))

	assert.Equal(t, "invalid state: status (cause: CLOSED is not a valid status to cancel)", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCollaboratorFailureError(t *testing.T) {
	err := errs.NewCollaboratorFailureError("catalog", errors.New("timeout"))

	assert.Equal(t, "collaborator failure: catalog (cause: timeout)", err.Error())
	require.ErrorIs(t, err, errs.ErrCollaboratorFailure)
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("order", "42")
	assert.Equal(t, "concurrent modification: order 42", err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrentModification)

	withCause := errs.NewConcurrentModificationErrorWithCause("order", "42", errors.New("deadlock detected"))
	assert.Equal(t, "concurrent modification: order 42 (cause: deadlock detected)", withCause.Error())
}

func TestCodedError(t *testing.T) {
	errNegative := errs.NewCodedError(errs.ErrValueIsInvalid, "NEGATIVE_AMOUNT", "pay amount must not be negative")

	t.Run("should classify by kind and by code", func(t *testing.T) {
		wrapped := fmt.Errorf("item 7: %w", errNegative)

		require.ErrorIs(t, wrapped, errNegative)
		require.ErrorIs(t, wrapped, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, wrapped, errs.ErrInvalidState)
		assert.Equal(t, "item 7: pay amount must not be negative", wrapped.Error())
	})

	t.Run("should extract code from chain", func(t *testing.T) {
		code, ok := errs.Code(fmt.Errorf("ctx: %w", errNegative))
		require.True(t, ok)
		assert.Equal(t, "NEGATIVE_AMOUNT", code)

		_, ok = errs.Code(errors.New("plain"))
		assert.False(t, ok)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
	assert.Equal(t, "collaborator failure", errs.ErrCollaboratorFailure.Error())
	assert.Equal(t, "concurrent modification", errs.ErrConcurrentModification.Error())
}
