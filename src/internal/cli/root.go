package cli

import (
	"github.com/spf13/cobra"

	"github.com/api-sage/account-policies/src/internal/usecase/service_interfaces"
)

// NewRoot builds the bank command tree. Running it without a subcommand runs the demo.
func NewRoot(svc service_interfaces.AccountService) *cobra.Command {
	demo := newDemoCmd(svc)

	root := &cobra.Command{
		Use:           "bank",
		Short:         "Savings and current account policies",
		Long:          "Opens toy accounts and applies deposit, withdrawal and merge policies to them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          demo.RunE,
	}

	root.AddCommand(demo, newSimulateCmd(svc))
	return root
}
