package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Login, logout and the active identity",
	}

	cmd.AddCommand(newSessionLoginCmd())
	cmd.AddCommand(newSessionLogoutCmd())
	cmd.AddCommand(newSessionWhoamiCmd())

	return cmd
}

func newSessionLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a registered identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			req := map[string]string{"email": email, "password": password}
			var result Session

			if err := client.Post(cmd.Context(), "/api/v1/session/login", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSessionLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(cmd.Context(), "/api/v1/session/logout", nil, nil); err != nil {
				return err
			}

			output(cmd).PrintMessage("Logged out")
			return nil
		},
	}
}

func newSessionWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get(cmd.Context(), "/api/v1/session", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
