package cli

import (
	"github.com/spf13/cobra"

	"github.com/api-sage/account-policies/src/internal/scenario"
	"github.com/api-sage/account-policies/src/internal/usecase/service_interfaces"
)

func newDemoCmd(svc service_interfaces.AccountService) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the savings/current walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return scenario.RunDemo(cmd.Context(), svc, cmd.OutOrStdout())
		},
	}
}
