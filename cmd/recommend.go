package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flickscope/flickscope/pkg/format"
	"github.com/flickscope/flickscope/pkg/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print recommendations for named titles or music genres",
	RunE: func(cmd *cobra.Command, args []string) error {
		movies, _ := cmd.Flags().GetStringSlice("movies")
		series, _ := cmd.Flags().GetStringSlice("series")
		musicGenres, _ := cmd.Flags().GetStringSlice("genres")

		req := recommend.Request{}
		switch {
		case len(musicGenres) > 0:
			req.Mode = recommend.ModeGenres
			req.Data.MusicGenres = musicGenres
		case len(movies) > 0 || len(series) > 0:
			req.Mode = recommend.ModeNames
			req.Data.Movies = movies
			req.Data.Series = series
		default:
			return errors.New("provide --movies, --series or --genres")
		}

		svc, err := recommenderFromConfig()
		if err != nil {
			return err
		}

		res, err := svc.Recommend(context.Background(), req)
		if err != nil {
			return err
		}

		printSection("Movies", res.Movies)
		printSection("Series", res.Series)
		printSection("Soundtracks", res.Music)
		return nil
	},
}

func printSection(heading string, items []format.Item) {
	fmt.Println(heading + ":")
	for _, item := range items {
		rating := "unrated"
		if item.Rating != nil {
			rating = *item.Rating
		}
		fmt.Printf("  %s (%s) %s\n", item.Title, item.Year, rating)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringSlice("movies", nil, "Movie titles you like (comma separated)")
	recommendCmd.Flags().StringSlice("series", nil, "Series titles you like (comma separated)")
	recommendCmd.Flags().StringSlice("genres", nil, "Music genres you listen to (comma separated)")
}
