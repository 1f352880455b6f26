package order_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("01001000", "Praça da Sé", "10", "Sé", "São Paulo", "SP")
	require.NoError(t, err)
	return addr
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	addr := validAddress(t)
	value := decimal.RequireFromString("10.50")

	t.Run("should create order in Created status", func(t *testing.T) {
		before := time.Now().UTC()

		o, err := order.NewOrder(validID, " PED-1 ", " Notebook ", value, addr)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "PED-1", o.OrderNumber())
		assert.Equal(t, "Notebook", o.Description())
		assert.True(t, value.Equal(o.Value()))
		assert.Equal(t, addr, o.Address())
		assert.Equal(t, order.Created, o.Status())
		assert.False(t, o.CreatedAt().Before(before))
	})

	t.Run("should fail with zero value", func(t *testing.T) {
		o, err := order.NewOrder(validID, "PED-1", "Notebook", decimal.Zero, addr)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative value", func(t *testing.T) {
		_, err := order.NewOrder(validID, "PED-1", "Notebook", decimal.NewFromInt(-5), addr)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-5 is not greater than 0")
	})

	t.Run("should fail with sub-cent value", func(t *testing.T) {
		o, err := order.NewOrder(validID, "PED-1", "Notebook", decimal.RequireFromString("0.001"), addr)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "0.001 has more than 2 decimal places")
	})

	t.Run("should fail with value above the stored range", func(t *testing.T) {
		o, err := order.NewOrder(validID, "PED-1", "Notebook", decimal.New(1, 16), addr)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, o)
		assert.Equal(t, errs.Validation, errs.KindOf(err))
	})

	t.Run("should fail with blank order number", func(t *testing.T) {
		_, err := order.NewOrder(validID, "   ", "Notebook", value, addr)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "orderNumber")
	})

	t.Run("should fail with blank description", func(t *testing.T) {
		_, err := order.NewOrder(validID, "PED-1", "", value, addr)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "", "", decimal.Zero, kernel.Address{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "orderNumber")
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "value")
		assert.Contains(t, err.Error(), "address must be created")
	})
}

func TestRestoreOrder(t *testing.T) {
	addr := validAddress(t)
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should keep stored status and creation time", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "PED-1", "Notebook", decimal.NewFromInt(3), addr,
			order.Delivered, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "PED-1", "Notebook", decimal.NewFromInt(3), addr,
			order.Unknown, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "status")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for struct literal", func(t *testing.T) {
		o := &order.Order{}

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	addr := validAddress(t)

	t.Run("should move Created to Delivered", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "PED-1", "Notebook", decimal.NewFromInt(1), addr)

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should refuse a second delivery and keep status", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "PED-1", "Notebook", decimal.NewFromInt(1), addr)
		require.NoError(t, o.MarkDelivered())

		err := o.MarkDelivered()

		require.ErrorIs(t, err, order.ErrOrderAlreadyDelivered)
		assert.Contains(t, err.Error(), "PED-1")
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, errs.Unexpected, errs.KindOf(err))
	})
}

func TestOrder_IsEqual(t *testing.T) {
	addr := validAddress(t)
	id := kernel.NewUUID()
	a, _ := order.NewOrder(id, "PED-1", "Notebook", decimal.NewFromInt(1), addr)
	b, _ := order.NewOrder(id, "PED-2", "Mouse", decimal.NewFromInt(2), addr)
	c, _ := order.NewOrder(kernel.NewUUID(), "PED-1", "Notebook", decimal.NewFromInt(1), addr)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
