package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/account-policies/src/internal/commons"
	"github.com/api-sage/account-policies/src/internal/domain"
	"github.com/api-sage/account-policies/src/internal/logger"
	"github.com/api-sage/account-policies/src/internal/models"
)

var errNilAccount = fmt.Errorf("%w: account is required", domain.ErrInvalidAccount)

type AccountService struct {
	newReference func() string
}

func NewAccountService() *AccountService {
	return &AccountService{
		newReference: uuid.NewString,
	}
}

// NewAccountServiceWithReferences is NewAccountService with a fixed reference source.
func NewAccountServiceWithReferences(next func() string) *AccountService {
	return &AccountService{newReference: next}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (*domain.Account, error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAccount, err.Error())
	}

	account, err := req.Account()
	if err != nil {
		logger.Error("account service open account failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return nil, err
	}

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": account.Number(),
		"kind":          account.Kind(),
		"balance":       account.Balance().StringFixed(2),
	})

	return account, nil
}

func (s *AccountService) Describe(ctx context.Context, account *domain.Account) commons.Response[models.AccountResponse] {
	_ = ctx
	if account == nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", errNilAccount.Error())
	}

	return commons.SuccessResponse("account fetched successfully", models.NewAccountResponse(account))
}

func (s *AccountService) Deposit(ctx context.Context, account *domain.Account, req models.AmountRequest) (commons.Response[models.BalanceResponse], error) {
	return s.move(ctx, "deposit", account, req, domain.Deposit)
}

func (s *AccountService) Withdraw(ctx context.Context, account *domain.Account, req models.AmountRequest) (commons.Response[models.BalanceResponse], error) {
	return s.move(ctx, "withdraw", account, req, domain.Withdraw)
}

func (s *AccountService) move(
	ctx context.Context,
	operation string,
	account *domain.Account,
	req models.AmountRequest,
	apply func(*domain.Account, decimal.Decimal) error,
) (commons.Response[models.BalanceResponse], error) {
	_ = ctx
	reference := s.newReference()

	if account == nil {
		logger.Error("account service "+operation+" validation failed", errNilAccount, logger.Fields{"reference": reference})
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", errNilAccount.Error()), errNilAccount
	}

	logger.Info("account service "+operation+" request", logger.Fields{
		"reference":     reference,
		"accountNumber": account.Number(),
		"amount":        req.Amount.StringFixed(2),
	})

	if err := req.Validate(); err != nil {
		err = fmt.Errorf("%w: %s", domain.ErrInvalidAmount, err.Error())
		logger.Error("account service "+operation+" validation failed", err, logger.Fields{
			"reference":     reference,
			"accountNumber": account.Number(),
		})
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}

	previous := account.Balance()
	if err := apply(account, req.Amount); err != nil {
		logger.Error("account service "+operation+" rejected", err, logger.Fields{
			"reference":     reference,
			"accountNumber": account.Number(),
			"balance":       previous.StringFixed(2),
		})
		return commons.RejectedResponse[models.BalanceResponse](operation+" rejected", err), err
	}

	response := models.BalanceResponse{
		Reference:       reference,
		AccountNumber:   account.Number(),
		Amount:          req.Amount.StringFixed(2),
		PreviousBalance: previous.StringFixed(2),
		Balance:         account.Balance().StringFixed(2),
	}

	logger.Info("account service "+operation+" success", logger.Fields{
		"reference":     response.Reference,
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse(operation+" successful", response), nil
}

func (s *AccountService) Merge(ctx context.Context, target *domain.Account, source *domain.Account) (commons.Response[models.MergeResponse], error) {
	_ = ctx
	reference := s.newReference()

	if target == nil || source == nil {
		logger.Error("account service merge validation failed", errNilAccount, logger.Fields{"reference": reference})
		return commons.ErrorResponse[models.MergeResponse]("validation failed", errNilAccount.Error()), errNilAccount
	}

	logger.Info("account service merge request", logger.Fields{
		"reference":           reference,
		"targetAccountNumber": target.Number(),
		"sourceAccountNumber": source.Number(),
	})

	merged, err := domain.MergeInto(target, source)
	if err != nil {
		logger.Error("account service merge rejected", err, logger.Fields{
			"reference":           reference,
			"targetAccountNumber": target.Number(),
			"sourceAccountNumber": source.Number(),
		})
		return commons.RejectedResponse[models.MergeResponse]("merge rejected", err), err
	}

	response := models.MergeResponse{
		Reference:           reference,
		TargetAccountNumber: merged.Number(),
		SourceAccountNumber: source.Number(),
		MergedAmount:        source.Balance().StringFixed(2),
		TargetBalance:       merged.Balance().StringFixed(2),
		SourceBalance:       source.Balance().StringFixed(2),
	}

	logger.Info("account service merge success", logger.Fields{
		"reference":     response.Reference,
		"targetBalance": response.TargetBalance,
		"sourceBalance": response.SourceBalance,
	})

	return commons.SuccessResponse("merge successful", response), nil
}
