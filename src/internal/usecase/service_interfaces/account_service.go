package service_interfaces

import (
	"context"

	"github.com/api-sage/account-policies/src/internal/commons"
	"github.com/api-sage/account-policies/src/internal/domain"
	"github.com/api-sage/account-policies/src/internal/models"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (*domain.Account, error)
	Describe(ctx context.Context, account *domain.Account) commons.Response[models.AccountResponse]
	Deposit(ctx context.Context, account *domain.Account, req models.AmountRequest) (commons.Response[models.BalanceResponse], error)
	Withdraw(ctx context.Context, account *domain.Account, req models.AmountRequest) (commons.Response[models.BalanceResponse], error)
	Merge(ctx context.Context, target *domain.Account, source *domain.Account) (commons.Response[models.MergeResponse], error)
}
