package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flickscope/flickscope/pkg/tmdb"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <title>",
	Short: "Generate quiz questions about a movie or series",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		kind := tmdb.KindMovie
		if isSeries, _ := cmd.Flags().GetBool("series"); isSeries {
			kind = tmdb.KindSeries
		}

		gen, err := triviaFromConfig()
		if err != nil {
			return err
		}

		canonical, questions, err := gen.Questions(context.Background(), kind, title)
		if err != nil {
			return err
		}

		fmt.Printf("Quiz for %q:\n\n", canonical)
		for i, q := range questions {
			fmt.Printf("%d. %s\n", i+1, q.Question)
			for _, opt := range q.Options {
				fmt.Printf("   - %s\n", opt)
			}
			fmt.Printf("   Answer: %s\n\n", q.Answer)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().Bool("series", false, "Quiz about a series instead of a movie")
}
