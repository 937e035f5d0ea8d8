package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flickscope/flickscope/pkg/news"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Print the latest entertainment news headlines",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := news.NewClient(viper.GetString("news.feedurl"))

		articles := client.Headlines(context.Background())
		if len(articles) == 0 {
			fmt.Println("No headlines available right now.")
			return nil
		}

		for _, a := range articles {
			fmt.Println(a.Title)
			if a.Summary != "" {
				fmt.Println("  " + a.Summary)
			}
			fmt.Println("  " + a.URL)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newsCmd)
}
