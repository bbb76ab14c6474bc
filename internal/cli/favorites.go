package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Favorites of the active identity",
	}

	cmd.AddCommand(newFavoritesListCmd())
	cmd.AddCommand(newFavoritesAddCmd())
	cmd.AddCommand(newFavoritesRemoveCmd())
	cmd.AddCommand(newFavoritesCheckCmd())

	return cmd
}

func parseMovieID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid movie id %q", arg)
	}
	return id, nil
}

func newFavoritesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorites",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Favorites

			if err := client.Get(cmd.Context(), "/api/v1/favorites", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newFavoritesAddCmd() *cobra.Command {
	var fav Favorite

	cmd := &cobra.Command{
		Use:   "add <movie-id>",
		Short: "Add a movie to favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMovieID(args[0])
			if err != nil {
				return err
			}
			fav.ID = id

			var result Favorites
			if err := client.Post(cmd.Context(), "/api/v1/favorites", fav, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&fav.Title, "title", "", "Movie title")
	cmd.Flags().StringVar(&fav.PosterPath, "poster", "", "Poster path")
	cmd.Flags().Float64Var(&fav.VoteAverage, "vote-average", 0, "Catalog vote average")
	cmd.Flags().StringVar(&fav.ReleaseDate, "release-date", "", "Release date (YYYY-MM-DD)")

	return cmd
}

func newFavoritesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <movie-id>",
		Short: "Remove a movie from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMovieID(args[0])
			if err != nil {
				return err
			}

			var result Favorites
			if err := client.Delete(cmd.Context(), fmt.Sprintf("/api/v1/favorites/%d", id), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newFavoritesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <movie-id>",
		Short: "Check whether a movie is a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMovieID(args[0])
			if err != nil {
				return err
			}

			var result FavoriteStatus
			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/v1/favorites/%d", id), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
