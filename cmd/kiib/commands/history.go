package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kiib/internal/domain"
)

func historyCmd() *cobra.Command {
	var (
		offline  bool
		verify   bool
		adminKey string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				txs []domain.Transaction
				err error
			)
			if offline {
				txs, err = wire.Ledger.CachedHistory(cmd.Context())
			} else {
				if err := requireLogin(); err != nil {
					return err
				}
				txs, err = wire.Ledger.History(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(txs) == 0 {
				fmt.Fprintln(out, "History is empty")
				return nil
			}

			var results []error
			if verify {
				if adminKey == "" {
					return fmt.Errorf("--verify needs --admin-key <hex>")
				}
				results = wire.Ledger.Verify(txs, adminKey)
			}

			for i, tx := range txs {
				line := fmt.Sprintf("%+d K\t%s\t%s", tx.Amount, tx.Reason,
					tx.CreatedAt.Format("2006-01-02 15:04"))
				if verify {
					if results[i] == nil {
						line += "\t[signature ok]"
					} else {
						line += fmt.Sprintf("\t[UNVERIFIED: %v]", results[i])
					}
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "read the last fetched history instead of the backend")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify each row's Ed25519 signature")
	cmd.Flags().StringVar(&adminKey, "admin-key", "", "hex-encoded admin public key for --verify")
	return cmd
}
