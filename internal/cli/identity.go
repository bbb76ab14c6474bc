package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIdentityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Identity registration",
	}

	cmd.AddCommand(newIdentityRegisterCmd())

	return cmd
}

func newIdentityRegisterCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || email == "" || password == "" {
				return fmt.Errorf("--username, --email, and --password are required")
			}

			req := map[string]string{
				"username": username,
				"email":    email,
				"password": password,
			}
			var result Identity

			if err := client.Post(cmd.Context(), "/api/v1/identities/register", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
