package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/account-policies/src/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Render formats an account as the multi-line details block. Savings accounts add the
// interest rate as a percentage, current accounts add the overdraft limit.
func Render(a *domain.Account) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Account Details for %s:\n", a.Number())
	fmt.Fprintf(&b, "   Holder: %s\n", a.Holder())
	fmt.Fprintf(&b, "   Balance: $%s\n", a.Balance().StringFixed(2))

	switch a.Kind() {
	case domain.AccountKindSavings:
		fmt.Fprintf(&b, "   Interest Rate: %s%%\n", a.InterestRate().Mul(hundred).String())
	case domain.AccountKindCurrent:
		fmt.Fprintf(&b, "   Overdraft Limit: $%s\n", a.OverdraftLimit().StringFixed(2))
	}

	return b.String()
}

// Notice is the single console line reported for a rejected operation.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrMinimumBalance):
		return "Insufficient balance (minimum balance requirement)."
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "Insufficient balance."
	case errors.Is(err, domain.ErrOverdraftLimitExceeded):
		return "Overdraft limit exceeded."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Invalid amount."
	case errors.Is(err, domain.ErrMergeNotSupported):
		return "Merge is only supported from a savings account into a current account."
	default:
		return err.Error()
	}
}
