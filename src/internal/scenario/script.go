package scenario

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/api-sage/account-policies/src/internal/domain"
	"github.com/api-sage/account-policies/src/internal/models"
	"github.com/api-sage/account-policies/src/internal/usecase/service_interfaces"
)

type OperationKind string

const (
	OperationDeposit  OperationKind = "deposit"
	OperationWithdraw OperationKind = "withdraw"
)

type Operation struct {
	Kind   OperationKind
	Amount models.AmountRequest
}

// ParseOperation reads "deposit:<amount>" or "withdraw:<amount>".
func ParseOperation(raw string) (Operation, error) {
	name, value, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return Operation{}, fmt.Errorf("operation %q must look like deposit:<amount> or withdraw:<amount>", raw)
	}

	kind := OperationKind(strings.ToLower(strings.TrimSpace(name)))
	if kind != OperationDeposit && kind != OperationWithdraw {
		return Operation{}, fmt.Errorf("unknown operation %q", name)
	}

	amount, err := models.ParseAmount(value)
	if err != nil {
		return Operation{}, fmt.Errorf("operation %q: %w", raw, err)
	}

	return Operation{Kind: kind, Amount: amount}, nil
}

// RunScript applies ops to account in order, printing the account before and after and
// a notice line for every rejected operation. It reports how many operations were rejected.
func RunScript(ctx context.Context, svc service_interfaces.AccountService, account *domain.Account, ops []Operation, w io.Writer) (int, error) {
	p := &printer{w: w}
	p.accounts(account)

	rejected := 0
	for _, op := range ops {
		var err error
		switch op.Kind {
		case OperationDeposit:
			_, err = svc.Deposit(ctx, account, op.Amount)
		case OperationWithdraw:
			_, err = svc.Withdraw(ctx, account, op.Amount)
		default:
			err = fmt.Errorf("unknown operation %q", op.Kind)
		}
		if err != nil {
			rejected++
			p.notice(err)
		}
	}

	p.line("\nAccount Details after operations:")
	p.accounts(account)

	return rejected, p.err
}
