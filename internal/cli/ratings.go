package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRatingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratings",
		Short: "Votes of the active identity",
	}

	cmd.AddCommand(newRatingsListCmd())
	cmd.AddCommand(newRatingsGetCmd())
	cmd.AddCommand(newRatingsVoteCmd())

	return cmd
}

func newRatingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List votes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Ratings

			if err := client.Get(cmd.Context(), "/api/v1/ratings", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRatingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <movie-id>",
		Short: "Show the vote for a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMovieID(args[0])
			if err != nil {
				return err
			}

			var result Vote
			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/v1/ratings/%d", id), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRatingsVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <movie-id> <value>",
		Short: "Rate a movie, replacing any earlier vote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMovieID(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid vote %q", args[1])
			}

			var result Vote
			req := map[string]float64{"value": value}
			if err := client.Put(cmd.Context(), fmt.Sprintf("/api/v1/ratings/%d", id), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
