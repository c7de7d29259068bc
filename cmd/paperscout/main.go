// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperscout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paperscout/paperscout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperscout CLI.
var rootCmd = &cobra.Command{
	Use:   "paperscout",
	Short: "Find relevant arXiv papers from listings, search, or mail digests",
	Long: `paperscout retrieves arXiv papers through three channels: the daily
new-submissions listing page, the public search API, and a locally saved
mailing digest file.

Each channel is a subcommand: daily, search, and mail. All three share
keyword, author, and category filters and the same relevance ranking.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperscout.yaml or ~/.config/paperscout/config.yaml)")
	rootCmd.PersistentFlags().String("theme", "", "color theme (classic, nordic, solarized, vibrant)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperscout"))
		}
	}

	viper.SetEnvPrefix("PAPERSCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig layers config-file and flag overrides on the defaults.
func loadConfig() types.Config {
	cfg := types.Default()

	if v := viper.GetDuration("http.timeout"); v > 0 {
		cfg.Listing.Timeout = v
		cfg.Search.Timeout = v
	}
	if v := viper.GetString("listing.user_agent"); v != "" {
		cfg.Listing.UserAgent = v
	}
	if v := viper.GetString("search.user_agent"); v != "" {
		cfg.Search.UserAgent = v
	}
	if v := viper.GetInt("search.max_results"); v > 0 {
		cfg.Search.MaxResults = v
	}
	if v := viper.GetString("digest.path"); v != "" {
		cfg.Digest.Path = v
	}
	if v := viper.GetString("digest.strategy"); v != "" {
		cfg.Digest.Strategy = v
	}
	if v := viper.GetString("digest.fetch_script"); v != "" {
		cfg.Digest.FetchScript = v
	}
	if v := viper.GetString("scoring.policy"); v != "" {
		cfg.Scoring.Policy = types.ScoringPolicy(v)
	}
	if v := viper.GetFloat64("scoring.title_weight"); v > 0 {
		cfg.Scoring.TitleWeight = v
	}
	if v := viper.GetString("render.theme"); v != "" {
		cfg.Render.Theme = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("theme"); v != "" {
		cfg.Render.Theme = v
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
