package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type postalCode struct {
		digits string
		guard  guard.ConstructorGuard
	}
	errNotConstructed := errors.New("postalCode must be created via newPostalCode")

	newPostalCode := func(digits string) (postalCode, error) {
		if len(digits) != 8 {
			return postalCode{}, errors.New("postal code must have 8 digits")
		}
		return postalCode{digits: digits, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_passes", func(t *testing.T) {
		pc, err := newPostalCode("01001000")

		require.NoError(t, err)
		require.NoError(t, pc.guard.Validate(errNotConstructed))
	})

	t.Run("struct_literal_fails", func(t *testing.T) {
		pc := postalCode{digits: "01001000"}

		assert.Equal(t, errNotConstructed, pc.guard.Validate(errNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		pc, err := newPostalCode("123")

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, pc.guard.Validate(errNotConstructed))
	})
}
