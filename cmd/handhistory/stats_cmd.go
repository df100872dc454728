package main

import (
	"fmt"

	handhistory "github.com/lox/handhistory"
	"github.com/lox/handhistory/stats"
)

// StatsCmd aggregates a transcript into session statistics.
type StatsCmd struct {
	File string `arg:"" help:"Hand history file"`
	Site string `default:"ladbrokes" help:"Site dialect: ladbrokes or pokerstars"`
	Hero string `help:"Hero's screen name (auto-detected for PokerStars when empty)"`
}

var positionOrder = []handhistory.Position{
	handhistory.UTG, handhistory.MP, handhistory.CO,
	handhistory.BTN, handhistory.SB, handhistory.BB,
}

func (cmd StatsCmd) Run(cli *CLI) error {
	logger, parserLog := setupLoggers(cli.Verbose)

	res, _, err := parseInput(cli, cmd.File, cmd.Site, cmd.Hero, parserLog)
	if err != nil {
		return err
	}

	summary := stats.Collect(res.Hands)
	if err := summary.Validate(); err != nil {
		logger.Warn("summary accounting is inconsistent", "err", err)
	}

	lo, hi := summary.ConfidenceInterval95()
	fmt.Printf("Hands:        %d (%d skipped)\n", summary.Hands, res.Skipped)
	fmt.Printf("Winrate:      %+.2f bb/hand (95%% CI %+.2f to %+.2f)\n", summary.Mean(), lo, hi)
	fmt.Printf("Std dev:      %.2f bb\n", summary.StdDev())
	fmt.Printf("Median:       %+.2f bb\n", summary.Median())
	fmt.Printf("VPIP:         %.1f%%\n", summary.VPIPRate()*100)
	fmt.Printf("Open raise:   %.1f%%\n", summary.OpenRate()*100)
	fmt.Printf("3-bet:        %.1f%% (%d/%d)\n", summary.ThreeBetRate()*100, summary.ThreeBets, summary.ThreeBetOpps)
	fmt.Printf("4-bet:        %.1f%% (%d/%d)\n", summary.FourBetRate()*100, summary.FourBets, summary.FourBetOpps)
	fmt.Printf("Showdown:     %+.2f bb over %d wins\n", summary.ShowdownBB, summary.ShowdownWins)
	fmt.Printf("Non-showdown: %+.2f bb over %d wins\n", summary.NonShowdownBB, summary.NonShowdownWins)

	fmt.Println("\nBy position:")
	for _, pos := range positionOrder {
		ps := summary.Positions[pos]
		if ps == nil || ps.Hands == 0 {
			continue
		}
		fmt.Printf("  %-3s %5d hands  %+.2f bb/hand  VPIP %.1f%%\n",
			pos, ps.Hands, summary.PositionMean(pos), summary.PositionVPIPRate(pos)*100)
	}
	return nil
}
