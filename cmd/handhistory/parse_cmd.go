package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// ParseCmd parses a transcript and prints one line per hand.
type ParseCmd struct {
	File string `arg:"" help:"Hand history file"`
	Site string `default:"ladbrokes" help:"Site dialect: ladbrokes or pokerstars"`
	Hero string `help:"Hero's screen name (auto-detected for PokerStars when empty)"`
}

func (cmd ParseCmd) Run(cli *CLI) error {
	logger, parserLog := setupLoggers(cli.Verbose)

	res, _, err := parseInput(cli, cmd.File, cmd.Site, cmd.Hero, parserLog)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HAND\tCARDS\tPOS\tROLE\tVPIP\tNET\tBB")
	for _, h := range res.Hands {
		cards := strings.TrimSpace(h.HeroCard1 + " " + h.HeroCard2)
		if cards == "" {
			cards = "--"
		}
		role := string(h.Preflop.Role)
		if role == "" {
			role = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%+.2f\t%+.2f\n",
			h.HandID, cards, h.HeroPosition, role, h.VPIP, h.HeroNetChips, h.HeroNetBB)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logger.Info("parsed transcript", "hands", len(res.Hands), "skipped", res.Skipped)
	for _, reason := range res.SkipReasons {
		logger.Debug("skipped hand", "reason", reason)
	}
	return nil
}
