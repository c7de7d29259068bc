// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/paperscout/paperscout/internal/digest"
	"github.com/paperscout/paperscout/internal/filter"
)

var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Filter papers from a saved arXiv mailing digest",
	Long: `Mail parses the locally saved arXiv mailing digest text file and applies
the keyword and author filters. Keywords also match against author names.
The digest carries no category information, so category filters do not
apply here.

With --fetch N the mail-automation script is run first to regenerate the
digest file from the newest N messages; if that fails, the existing file
is still parsed.`,
	RunE: runMail,
}

func init() {
	addFilterFlags(mailCmd)
	mailCmd.Flags().Int("fetch", 0, "regenerate the digest from the newest N mail messages first")
	mailCmd.Flags().String("strategy", "", "extraction strategy: regex or linescan")

	rootCmd.AddCommand(mailCmd)
}

func runMail(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	p := filterParams(cmd, allCapDaily)
	p.SearchAuthors = true
	if p.IsEmpty() {
		return fmt.Errorf("provide at least one keyword (-k) or author (-a) to filter the digest")
	}

	if count, _ := cmd.Flags().GetInt("fetch"); count > 0 {
		if cfg.Digest.FetchScript == "" {
			return fmt.Errorf("--fetch requires digest.fetch_script to be configured")
		}
		if err := digest.Fetch(cfg.Digest.FetchScript, count); err != nil {
			log.Warn().Err(err).Msg("mail fetch failed, parsing existing digest")
		}
	}

	if s, _ := cmd.Flags().GetString("strategy"); s != "" {
		cfg.Digest.Strategy = s
	}

	papers, err := digest.ParseFile(cfg.Digest.Path, digest.StrategyFor(cfg.Digest.Strategy))
	if err != nil {
		return err
	}

	return emit(cmd, cfg, p, filter.Apply(papers, p, cfg.Scoring))
}
