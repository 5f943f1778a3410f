package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func ParseAccountKind(raw string) (AccountKind, error) {
	switch AccountKind(strings.ToUpper(strings.TrimSpace(raw))) {
	case AccountKindBase:
		return AccountKindBase, nil
	case AccountKindSavings:
		return AccountKindSavings, nil
	case AccountKindCurrent:
		return AccountKindCurrent, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountKind, raw)
	}
}

// Deposit credits amount to the account. Zero is accepted and changes nothing.
func Deposit(a *Account, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: deposit amount cannot be negative", ErrInvalidAmount)
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw applies the withdrawal rule of the account's kind. A rejected withdrawal
// returns one of ErrInsufficientBalance, ErrMinimumBalance or ErrOverdraftLimitExceeded
// and leaves the balance untouched.
func Withdraw(a *Account, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: withdrawal amount cannot be negative", ErrInvalidAmount)
	}

	switch a.kind {
	case AccountKindBase:
		return withdrawFromBalance(a, amount)
	case AccountKindSavings:
		if a.balance.Sub(amount).LessThan(MinimumSavingsBalance) {
			return ErrMinimumBalance
		}
		return withdrawFromBalance(a, amount)
	case AccountKindCurrent:
		if a.balance.Add(a.overdraftLimit).LessThan(amount) {
			return ErrOverdraftLimitExceeded
		}
		a.balance = a.balance.Sub(amount)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAccountKind, a.kind)
	}
}

func withdrawFromBalance(a *Account, amount decimal.Decimal) error {
	if a.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// MergeInto credits the source balance to target and returns target. Only a savings
// source merging into a current target is allowed. The source is not debited.
func MergeInto(target *Account, source *Account) (*Account, error) {
	if target.kind != AccountKindCurrent {
		return nil, fmt.Errorf("%w: target %s is %s, want %s", ErrMergeNotSupported, target.number, target.kind, AccountKindCurrent)
	}
	if source.kind != AccountKindSavings {
		return nil, fmt.Errorf("%w: source %s is %s, want %s", ErrMergeNotSupported, source.number, source.kind, AccountKindSavings)
	}

	target.balance = target.balance.Add(source.balance)
	return target, nil
}

// WithdrawalFloor is the lowest balance a successful withdrawal can leave behind.
func WithdrawalFloor(a *Account) decimal.Decimal {
	switch a.kind {
	case AccountKindSavings:
		return MinimumSavingsBalance
	case AccountKindCurrent:
		return a.overdraftLimit.Neg()
	default:
		return decimal.Zero
	}
}
