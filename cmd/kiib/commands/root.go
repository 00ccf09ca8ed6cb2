package commands

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"kiib/internal/api"
	"kiib/internal/app"
)

var (
	home       string
	serverURL  string
	passphrase string
	timeout    time.Duration

	wire *app.Wire
)

// Execute runs the kiib CLI with the given root context.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "kiib",
		Short: "Campus points client",
		Long: "kiib is a command-line client for the campus points system: " +
			"log in, check your balance and transaction history, upload " +
			"achievement files, and read announcements. Administrators can " +
			"additionally publish announcements and credit points.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".kiib")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg := app.Config{
				Home:       home,
				ServerURL:  serverURL,
				Passphrase: passphrase,
				HTTP:       &http.Client{Timeout: timeout},
			}.FromEnv()

			var err error
			wire, err = app.NewWire(cfg)
			if err != nil {
				return err
			}

			// One synchronous restore per process; everything after this
			// sees either anonymous or authenticated, never restoring.
			wire.Session.Restore()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire != nil {
				return wire.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.kiib)")
	root.PersistentFlags().StringVar(&serverURL, "server", "",
		"backend base URL (default "+api.DefaultBaseURL+", env KIIB_SERVER)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "",
		"passphrase sealing the stored credential (env KIIB_PASSPHRASE)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "per-request timeout")

	root.AddCommand(
		loginCmd(), logoutCmd(), whoamiCmd(), registerCmd(),
		profileCmd(), historyCmd(), accrueCmd(), postsCmd(),
		uploadCmd(), dashboardCmd(),
	)
	return root.ExecuteContext(ctx)
}
