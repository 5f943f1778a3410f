package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/account-policies/src/internal/domain"
)

type OpenAccountRequest struct {
	Kind           string `json:"kind"`
	AccountNumber  string `json:"accountNumber"`
	HolderName     string `json:"holderName"`
	OpeningBalance string `json:"openingBalance,omitempty"`
	InterestRate   string `json:"interestRate,omitempty"`
	OverdraftLimit string `json:"overdraftLimit,omitempty"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	kind, err := domain.ParseAccountKind(r.Kind)
	if err != nil {
		errs = append(errs, "kind must be one of BASE, SAVINGS, CURRENT")
	}
	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holderName is required")
	}
	if _, err := parseOptional(r.OpeningBalance); err != nil {
		errs = append(errs, "openingBalance must be numeric")
	}

	if strings.TrimSpace(r.InterestRate) != "" && kind != domain.AccountKindSavings {
		errs = append(errs, "interestRate only applies to savings accounts")
	} else if rate, err := parseOptional(r.InterestRate); err != nil {
		errs = append(errs, "interestRate must be numeric")
	} else if rate.IsNegative() {
		errs = append(errs, "interestRate cannot be negative")
	}

	if strings.TrimSpace(r.OverdraftLimit) != "" && kind != domain.AccountKindCurrent {
		errs = append(errs, "overdraftLimit only applies to current accounts")
	} else if limit, err := parseOptional(r.OverdraftLimit); err != nil {
		errs = append(errs, "overdraftLimit must be numeric")
	} else if limit.IsNegative() {
		errs = append(errs, "overdraftLimit cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Account builds the domain account described by a validated request.
func (r OpenAccountRequest) Account() (*domain.Account, error) {
	kind, err := domain.ParseAccountKind(r.Kind)
	if err != nil {
		return nil, err
	}

	balance, _ := parseOptional(r.OpeningBalance)
	rate, _ := parseOptional(r.InterestRate)
	limit, _ := parseOptional(r.OverdraftLimit)

	switch kind {
	case domain.AccountKindSavings:
		return domain.NewSavingsAccount(r.AccountNumber, r.HolderName, balance, rate)
	case domain.AccountKindCurrent:
		return domain.NewCurrentAccount(r.AccountNumber, r.HolderName, balance, limit)
	default:
		return domain.NewAccount(r.AccountNumber, r.HolderName, balance)
	}
}

type AccountResponse struct {
	Kind           string `json:"kind"`
	AccountNumber  string `json:"accountNumber"`
	HolderName     string `json:"holderName"`
	Balance        string `json:"balance"`
	InterestRate   string `json:"interestRate,omitempty"`
	OverdraftLimit string `json:"overdraftLimit,omitempty"`
}

func NewAccountResponse(a *domain.Account) AccountResponse {
	response := AccountResponse{
		Kind:          string(a.Kind()),
		AccountNumber: a.Number(),
		HolderName:    a.Holder(),
		Balance:       a.Balance().StringFixed(2),
	}

	switch a.Kind() {
	case domain.AccountKindSavings:
		response.InterestRate = a.InterestRate().String()
	case domain.AccountKindCurrent:
		response.OverdraftLimit = a.OverdraftLimit().StringFixed(2)
	}

	return response
}

func parseOptional(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimSpace(raw))
}
