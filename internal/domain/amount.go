package domain

import (
	"fmt"
	"math"
)

// AddAmount returns a+b, or ErrInvalidArgument when the sum leaves the int64 range.
func AddAmount(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: amount overflow", ErrInvalidArgument)
	}
	return a + b, nil
}

// Credit adds amount to the account balance and, when earned is set, to its
// lifetime earnings. Nothing changes if either sum overflows.
func (a *Account) Credit(amount int64, earned bool) error {
	balance, err := AddAmount(a.Balance, amount)
	if err != nil {
		return err
	}
	total := a.TotalEarned
	if earned {
		if total, err = AddAmount(a.TotalEarned, amount); err != nil {
			return err
		}
	}
	a.Balance, a.TotalEarned = balance, total
	return nil
}
