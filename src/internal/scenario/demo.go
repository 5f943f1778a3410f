package scenario

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/api-sage/account-policies/src/internal/adapter/console"
	"github.com/api-sage/account-policies/src/internal/domain"
	"github.com/api-sage/account-policies/src/internal/models"
	"github.com/api-sage/account-policies/src/internal/usecase/service_interfaces"
)

// RunDemo opens a savings and a current account, deposits into savings, withdraws from
// current, merges savings into current and prints both accounts after each step.
// Rejected operations print their notice; only setup failures and write errors are returned.
func RunDemo(ctx context.Context, svc service_interfaces.AccountService, w io.Writer) error {
	savings, err := svc.OpenAccount(ctx, models.OpenAccountRequest{
		Kind:           string(domain.AccountKindSavings),
		AccountNumber:  "S123",
		HolderName:     "John Doe",
		OpeningBalance: "1000",
		InterestRate:   "0.02",
	})
	if err != nil {
		return fmt.Errorf("open savings account: %w", err)
	}

	current, err := svc.OpenAccount(ctx, models.OpenAccountRequest{
		Kind:           string(domain.AccountKindCurrent),
		AccountNumber:  "C456",
		HolderName:     "Jane Doe",
		OpeningBalance: "2000",
		OverdraftLimit: "500",
	})
	if err != nil {
		return fmt.Errorf("open current account: %w", err)
	}

	p := &printer{w: w}
	p.accounts(savings, current)

	_, err = svc.Deposit(ctx, savings, models.AmountRequest{Amount: decimal.NewFromInt(500)})
	p.notice(err)
	_, err = svc.Withdraw(ctx, current, models.AmountRequest{Amount: decimal.NewFromInt(1000)})
	p.notice(err)

	p.line("\nAccount Details after deposit and withdrawal:")
	p.accounts(savings, current)

	_, err = svc.Merge(ctx, current, savings)
	p.notice(err)

	p.line("\nAccount Details after transfer:")
	p.accounts(savings, current)

	return p.err
}

// printer keeps the first write error so the scenario reads as a straight sequence.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) accounts(accounts ...*domain.Account) {
	for _, a := range accounts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, console.Render(a))
	}
}

func (p *printer) notice(err error) {
	if err == nil {
		return
	}
	p.line(console.Notice(err))
}
