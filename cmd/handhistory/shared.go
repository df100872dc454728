package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"

	"github.com/lox/handhistory/internal/config"
	"github.com/lox/handhistory/parser"
)

// setupLoggers builds the CLI logger and the parser's structured logger.
// The parser only logs per-hand skip diagnostics, so it stays silent
// unless verbose is set.
func setupLoggers(verbose bool) (*log.Logger, zerolog.Logger) {
	cliLevel := log.InfoLevel
	parserLog := zerolog.Nop()
	if verbose {
		cliLevel = log.DebugLevel
		parserLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Logger()
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: cliLevel}), parserLog
}

// parseInput runs the shared front half of every subcommand: load config,
// read the transcript and parse the batch.
func parseInput(cli *CLI, file, siteName, heroFlag string, parserLog zerolog.Logger) (*parser.Result, *config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, nil, err
	}

	site, err := parser.SiteFromString(siteName)
	if err != nil {
		return nil, nil, err
	}

	alias := heroFlag
	if alias == "" {
		alias = cfg.HeroAliasFor(site.String())
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", file, err)
	}

	res, err := parser.Parse(string(data), site, &parser.Options{
		HeroAlias: alias,
		Workers:   cfg.Parser.Workers,
		Logger:    parserLog,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	return res, cfg, nil
}
