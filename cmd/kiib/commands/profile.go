package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kiib/internal/domain"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			profile, err := wire.Account.Profile(cmd.Context())
			if err != nil {
				return err
			}
			printProfile(cmd, profile)
			return nil
		},
	}

	cmd.AddCommand(profileUpdateCmd())
	return cmd
}

func profileUpdateCmd() *cobra.Command {
	var (
		fullName string
		password string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			if fullName == "" && password == "" {
				return fmt.Errorf("nothing to update; pass --full-name and/or --password")
			}

			var update domain.ProfileUpdate
			if fullName != "" {
				update.FullName = &fullName
			}
			if password != "" {
				update.Password = &password
			}

			profile, err := wire.Account.Update(cmd.Context(), update)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			printProfile(cmd, profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "new full name")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	return cmd
}

func printProfile(cmd *cobra.Command, p domain.UserProfile) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Username: %s\n", p.Username)
	fmt.Fprintf(out, "Name:     %s\n", p.FullName)
	if p.GroupNumber != "" {
		fmt.Fprintf(out, "Group:    %s\n", p.GroupNumber)
	}
	fmt.Fprintf(out, "Role:     %s\n", p.Role)
	fmt.Fprintf(out, "Balance:  %d Kiib\n", p.Balance)
}
