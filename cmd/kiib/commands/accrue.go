package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kiib/internal/domain"
)

func accrueCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "accrue <username> <amount>",
		Short: "Credit points to a student (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("amount must be an integer: %w", err)
			}

			result, err := wire.Ledger.Accrue(cmd.Context(), domain.AccrueRequest{
				Username: args[0],
				Amount:   amount,
				Reason:   reason,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Credited %+d K to %s (new balance: %d)\n",
				amount, args[0], result.NewBalance)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "what the points are for")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}
