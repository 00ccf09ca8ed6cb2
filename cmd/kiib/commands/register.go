package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kiib/internal/domain"
)

func registerCmd() *cobra.Command {
	var (
		password    string
		fullName    string
		groupNumber string
	)

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new student account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = promptPassword(cmd); err != nil {
					return err
				}
			}

			profile, err := wire.Account.Register(cmd.Context(), domain.Registration{
				Username:    args[0],
				Password:    password,
				FullName:    fullName,
				GroupNumber: groupNumber,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created; log in with: kiib login %s\n",
				profile.Username, profile.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "your full name")
	cmd.Flags().StringVar(&groupNumber, "group", "", "your group number")
	_ = cmd.MarkFlagRequired("full-name")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
