package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !wire.Session.IsAuthenticated() {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}
			role, _ := wire.Session.Role()
			fmt.Fprintf(out, "Logged in (%s)\n", role)

			claims, err := wire.Session.Claims()
			if err != nil {
				// The token is opaque to us then; the backend still decides.
				return nil
			}
			if claims.Subject != "" {
				fmt.Fprintf(out, "Username: %s\n", claims.Subject)
			}
			if !claims.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "Token expires: %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
				if claims.Expired() {
					fmt.Fprintln(out, "Token has expired; the next request will log you out")
				}
			}
			return nil
		},
	}
}
