package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r AmountRequest) Validate() error {
	if r.Amount.IsNegative() {
		return errors.New("amount cannot be negative")
	}
	return nil
}

// ParseAmount reads a decimal amount such as "500" or "1000.25".
func ParseAmount(raw string) (AmountRequest, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AmountRequest{}, errors.New("amount is required")
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return AmountRequest{}, fmt.Errorf("amount must be numeric: %w", err)
	}

	return AmountRequest{Amount: amount}, nil
}

type BalanceResponse struct {
	Reference       string `json:"reference"`
	AccountNumber   string `json:"accountNumber"`
	Amount          string `json:"amount"`
	PreviousBalance string `json:"previousBalance"`
	Balance         string `json:"balance"`
}

type MergeResponse struct {
	Reference           string `json:"reference"`
	TargetAccountNumber string `json:"targetAccountNumber"`
	SourceAccountNumber string `json:"sourceAccountNumber"`
	MergedAmount        string `json:"mergedAmount"`
	TargetBalance       string `json:"targetBalance"`
	SourceBalance       string `json:"sourceBalance"`
}
