package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flickscope/flickscope/internal/server"
	"github.com/flickscope/flickscope/pkg/news"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flickscope API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")

		rec, err := recommenderFromConfig()
		if err != nil {
			return err
		}
		arch, err := archiveFromConfig()
		if err != nil {
			return err
		}
		triv, err := triviaFromConfig()
		if err != nil {
			return err
		}

		srv := server.New(
			rec,
			arch,
			triv,
			news.NewClient(viper.GetString("news.feedurl")),
			viper.GetString("server.username"),
			viper.GetString("server.password"),
		)
		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
}
