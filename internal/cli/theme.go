package cli

import (
	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Presentation theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Theme
			if err := client.Get(cmd.Context(), "/api/v1/theme", &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Change the theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Theme
			if err := client.Put(cmd.Context(), "/api/v1/theme", map[string]string{"theme": args[0]}, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Theme
			if err := client.Post(cmd.Context(), "/api/v1/theme/toggle", nil, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
