package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newMoviesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Browse the catalog",
	}

	cmd.AddCommand(newMovieListingCmd("popular", "Popular movies", "/films"))
	cmd.AddCommand(newMovieListingCmd("trending", "Trending movies this week", "/tendances"))
	cmd.AddCommand(newMovieListingCmd("upcoming", "Upcoming releases", "/a-venir"))
	cmd.AddCommand(newMoviesGenresCmd())
	cmd.AddCommand(newMoviesGenreCmd())
	cmd.AddCommand(newMoviesSearchCmd())

	return cmd
}

func pageQuery(page int) string {
	if page <= 0 {
		return ""
	}
	return "?page=" + strconv.Itoa(page)
}

func newMovieListingCmd(use, short, path string) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MoviePage
			if err := client.Get(cmd.Context(), path+pageQuery(page), &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	return cmd
}

func newMoviesGenresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List genres",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Genres
			if err := client.Get(cmd.Context(), "/genres", &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newMoviesGenreCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "genre <genre-id>",
		Short: "Movies of a genre, most popular first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MoviePage
			path := "/genres/" + url.PathEscape(args[0]) + pageQuery(page)
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	return cmd
}

func newMoviesSearchCmd() *cobra.Command {
	var (
		title, date string
		note        float64
		page        int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search by title, release date or rating",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			switch {
			case title != "":
				q.Set("titre", title)
			case date != "":
				q.Set("date", date)
			case cmd.Flags().Changed("note"):
				q.Set("note", strconv.FormatFloat(note, 'f', -1, 64))
			default:
				return fmt.Errorf("one of --title, --date or --note is required")
			}
			if page > 0 {
				q.Set("page", strconv.Itoa(page))
			}

			var result MoviePage
			if err := client.Get(cmd.Context(), "/recherche?"+q.Encode(), &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title to search for")
	cmd.Flags().StringVar(&date, "date", "", "Release date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&note, "note", 0, "Vote average")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	return cmd
}
