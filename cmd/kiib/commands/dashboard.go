package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kiib/internal/domain"
)

// dashboard fetches the profile, history and posts concurrently; the three
// calls are independent, so completion order does not matter.
func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your balance, recent transactions and announcements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			var (
				profile domain.UserProfile
				txs     []domain.Transaction
				list    []domain.Post
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				profile, err = wire.Account.Profile(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				txs, err = wire.Ledger.History(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				list, err = wire.Posts.List(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s — %s\n", profile.FullName, profile.Username)
			fmt.Fprintf(out, "Balance: %d Kiib\n\n", profile.Balance)

			fmt.Fprintln(out, "Recent transactions:")
			if len(txs) == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for i, tx := range txs {
				if i == 5 {
					break
				}
				fmt.Fprintf(out, "  %+d K\t%s\n", tx.Amount, tx.Reason)
			}

			fmt.Fprintln(out, "\nAnnouncements:")
			if len(list) == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for i, p := range list {
				if i == 3 {
					break
				}
				fmt.Fprintf(out, "  #%d %s\n", p.ID, p.Title)
			}
			return nil
		},
	}
}
