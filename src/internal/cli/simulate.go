package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/api-sage/account-policies/src/internal/models"
	"github.com/api-sage/account-policies/src/internal/scenario"
	"github.com/api-sage/account-policies/src/internal/usecase/service_interfaces"
)

type simulateFlags struct {
	kind           string
	number         string
	holder         string
	balance        string
	interestRate   string
	overdraftLimit string
	ops            []string
}

func newSimulateCmd(svc service_interfaces.AccountService) *cobra.Command {
	var f simulateFlags

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Open one account and apply deposits and withdrawals to it",
		Example: "  bank simulate --kind savings --balance 1000 --rate 0.02 --op withdraw:500 --op withdraw:1\n" +
			"  bank simulate --kind current --balance 0 --limit 500 --op withdraw:600",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops := make([]scenario.Operation, 0, len(f.ops))
			for _, raw := range f.ops {
				op, err := scenario.ParseOperation(raw)
				if err != nil {
					return err
				}
				ops = append(ops, op)
			}

			account, err := svc.OpenAccount(cmd.Context(), models.OpenAccountRequest{
				Kind:           f.kind,
				AccountNumber:  f.number,
				HolderName:     f.holder,
				OpeningBalance: f.balance,
				InterestRate:   f.interestRate,
				OverdraftLimit: f.overdraftLimit,
			})
			if err != nil {
				return fmt.Errorf("open account: %w", err)
			}

			_, err = scenario.RunScript(cmd.Context(), svc, account, ops, cmd.OutOrStdout())
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.kind, "kind", "base", "account kind: base, savings or current")
	flags.StringVar(&f.number, "number", "A001", "account number")
	flags.StringVar(&f.holder, "holder", "John Doe", "account holder name")
	flags.StringVar(&f.balance, "balance", "0", "opening balance")
	flags.StringVar(&f.interestRate, "rate", "", "interest rate as a fraction (savings only)")
	flags.StringVar(&f.overdraftLimit, "limit", "", "overdraft limit (current only)")
	flags.StringArrayVar(&f.ops, "op", nil, "operation to apply, deposit:<amount> or withdraw:<amount>; repeatable")

	return cmd
}
