package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	AccountKindBase    AccountKind = "BASE"
	AccountKindSavings AccountKind = "SAVINGS"
	AccountKindCurrent AccountKind = "CURRENT"
)

// MinimumSavingsBalance is the floor a savings balance must not cross after a withdrawal.
var MinimumSavingsBalance = decimal.NewFromInt(500)

// Account is one of the closed set of account kinds. Number and holder are fixed at
// creation; only the balance moves, through Deposit, Withdraw and MergeInto.
type Account struct {
	kind           AccountKind
	number         string
	holder         string
	balance        decimal.Decimal
	interestRate   decimal.Decimal
	overdraftLimit decimal.Decimal
}

func NewAccount(number string, holder string, balance decimal.Decimal) (*Account, error) {
	return newAccount(AccountKindBase, number, holder, balance, decimal.Zero, decimal.Zero)
}

// NewSavingsAccount opens a savings account. The interest rate is a fraction (0.02 is 2%)
// and is informational only; nothing accrues it.
func NewSavingsAccount(number string, holder string, balance decimal.Decimal, interestRate decimal.Decimal) (*Account, error) {
	return newAccount(AccountKindSavings, number, holder, balance, interestRate, decimal.Zero)
}

func NewCurrentAccount(number string, holder string, balance decimal.Decimal, overdraftLimit decimal.Decimal) (*Account, error) {
	return newAccount(AccountKindCurrent, number, holder, balance, decimal.Zero, overdraftLimit)
}

func newAccount(
	kind AccountKind,
	number string,
	holder string,
	balance decimal.Decimal,
	interestRate decimal.Decimal,
	overdraftLimit decimal.Decimal,
) (*Account, error) {
	number = strings.TrimSpace(number)
	holder = strings.TrimSpace(holder)

	if number == "" {
		return nil, fmt.Errorf("%w: account number is required", ErrInvalidAccount)
	}
	if holder == "" {
		return nil, fmt.Errorf("%w: holder is required", ErrInvalidAccount)
	}
	if interestRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", ErrInvalidAmount)
	}
	if overdraftLimit.IsNegative() {
		return nil, fmt.Errorf("%w: overdraft limit cannot be negative", ErrInvalidAmount)
	}

	account := &Account{
		kind:           kind,
		number:         number,
		holder:         holder,
		balance:        balance,
		interestRate:   interestRate,
		overdraftLimit: overdraftLimit,
	}

	if balance.LessThan(account.openingFloor()) {
		return nil, fmt.Errorf("%w: opening balance %s is below %s", ErrInvalidAmount, balance.StringFixed(2), account.openingFloor().StringFixed(2))
	}

	return account, nil
}

func (a *Account) Kind() AccountKind {
	return a.kind
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Holder() string {
	return a.holder
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// InterestRate is zero for every kind except savings.
func (a *Account) InterestRate() decimal.Decimal {
	return a.interestRate
}

// OverdraftLimit is zero for every kind except current.
func (a *Account) OverdraftLimit() decimal.Decimal {
	return a.overdraftLimit
}

// openingFloor is the lowest balance an account of this kind may be opened with. A savings
// account may open below the withdrawal minimum; the minimum only gates withdrawals.
func (a *Account) openingFloor() decimal.Decimal {
	if a.kind == AccountKindCurrent {
		return a.overdraftLimit.Neg()
	}
	return decimal.Zero
}
