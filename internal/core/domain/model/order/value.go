package order

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ValueScale is the number of decimal places an order value may carry.
const ValueScale = 2

var (
	// MinValue and MaxValue bound an order value. MaxValue is the largest amount the
	// order store keeps without loss (numeric(18,2)).
	MinValue = decimal.New(1, -ValueScale)
	MaxValue = decimal.RequireFromString("9999999999999999.99")
)

// ValidateValue accepts strictly positive amounts with at most ValueScale decimal
// places that fit in [MinValue, MaxValue].
func ValidateValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%s is not greater than 0", value.String()))
	}
	if !value.Equal(value.Truncate(ValueScale)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"value", fmt.Errorf("%s has more than %d decimal places", value.String(), ValueScale))
	}
	if value.GreaterThan(MaxValue) {
		return errs.NewValueIsOutOfRangeError(
			"value", value.String(), MinValue.StringFixed(ValueScale), MaxValue.String())
	}
	return nil
}
