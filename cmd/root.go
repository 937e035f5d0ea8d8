package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flickscope/flickscope/internal/utils"
	"github.com/flickscope/flickscope/pkg/archive"
	"github.com/flickscope/flickscope/pkg/discover"
	"github.com/flickscope/flickscope/pkg/recommend"
	"github.com/flickscope/flickscope/pkg/resolve"
	"github.com/flickscope/flickscope/pkg/tmdb"
	"github.com/flickscope/flickscope/pkg/trivia"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	  __ _ _      _
	 / _| (_) ___| | _____  ___ ___  _ __   ___
	| |_| | |/ __| |/ / __|/ __/ _ \| '_ \ / _ \
	|  _| | | (__|   <\__ \ (_| (_) | |_) |  __/
	|_| |_|_|\___|_|\_\___/\___\___/| .__/ \___|
	                                |_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flickscope",
	Short: "Movie and series recommendations from your music taste.",
	Long: LOGO + `flickscope turns the titles you love, or the music you listen to, into
movie, series and soundtrack recommendations, plus a this-day-in-history
release archive, quizzes and entertainment news.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.flickscope.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".flickscope")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.flickscope.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("tmdb.apikey", "")
	viper.SetDefault("news.feedurl", "")
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// catalogFromConfig builds the catalog client from the configured API key.
func catalogFromConfig() (*tmdb.Client, error) {
	apiKey := viper.GetString("tmdb.apikey")
	if apiKey == "" {
		apiKey = os.Getenv("TMDB_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("no catalog API key: set tmdb.apikey in the config file or TMDB_API_KEY in the environment")
	}
	return tmdb.NewClient(apiKey), nil
}

func recommenderFromConfig() (*recommend.Service, error) {
	catalog, err := catalogFromConfig()
	if err != nil {
		return nil, err
	}
	return recommend.New(resolve.New(catalog), discover.New(catalog)), nil
}

func archiveFromConfig() (*archive.Aggregator, error) {
	catalog, err := catalogFromConfig()
	if err != nil {
		return nil, err
	}
	return archive.New(catalog), nil
}

func triviaFromConfig() (*trivia.Generator, error) {
	catalog, err := catalogFromConfig()
	if err != nil {
		return nil, err
	}
	return trivia.New(resolve.New(catalog)), nil
}
