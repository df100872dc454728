package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	handhistory "github.com/lox/handhistory"
)

// ExportCmd writes parsed hands out as a TOML document, one [[hand]]
// table per hand.
type ExportCmd struct {
	File   string `arg:"" help:"Hand history file"`
	Site   string `default:"ladbrokes" help:"Site dialect: ladbrokes or pokerstars"`
	Hero   string `help:"Hero's screen name (auto-detected for PokerStars when empty)"`
	Output string `short:"o" help:"Output file (stdout when empty)"`
}

type exportDoc struct {
	Hands []*handhistory.HandHistory `toml:"hand"`
}

func (cmd ExportCmd) Run(cli *CLI) error {
	logger, parserLog := setupLoggers(cli.Verbose)

	res, cfg, err := parseInput(cli, cmd.File, cmd.Site, cmd.Hero, parserLog)
	if err != nil {
		return err
	}

	out := os.Stdout
	if cmd.Output != "" {
		path := cmd.Output
		if !filepath.IsAbs(path) && cfg.Export.OutputDir != "" {
			path = filepath.Join(cfg.Export.OutputDir, path)
		}
		f, err := os.Create(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	if err := toml.NewEncoder(out).Encode(exportDoc{Hands: res.Hands}); err != nil {
		return fmt.Errorf("encoding hands: %w", err)
	}
	logger.Info("exported hands", "hands", len(res.Hands), "skipped", res.Skipped)
	return nil
}
