package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flickscope/flickscope/pkg/format"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Print movies and series released around today's date, any year",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := archiveFromConfig()
		if err != nil {
			return err
		}

		res := agg.ArchiveAroundToday(context.Background())

		fmt.Printf("Released %s:\n\n", res.Window)
		printArchiveSection("Movies", format.ArchiveItems(res.Movies))
		printArchiveSection("Series", format.ArchiveItems(res.Series))
		return nil
	},
}

func printArchiveSection(heading string, items []format.ArchiveItem) {
	fmt.Println(heading + ":")
	for _, item := range items {
		rating := "unrated"
		if item.Rating != nil {
			rating = *item.Rating
		}
		fmt.Printf("  %s  %s (%s)\n", item.ReleaseDate, item.Title, rating)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
