package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nrmHeaderRe  = regexp.MustCompile(`^PokerStars Hand #(\d+):\s*(.+?)\s*\(\$?([\d.]+)/\$?([\d.]+)[^)]*\)\s*-\s*(.+)$`)
	nrmButtonRe  = regexp.MustCompile(`Seat #(\d+) is the button`)
	nrmChipsRe   = regexp.MustCompile(`^(Seat \d+: .+?) \(\$?([\d.]+) in chips\)`)
	nrmDealtRe   = regexp.MustCompile(`^Dealt to (.+?) \[(\S+) (\S+)\]`)
	nrmFlopRe    = regexp.MustCompile(`^\*\*\* FLOP \*\*\* \[(\S+) (\S+) (\S+)\]`)
	nrmTurnRe    = regexp.MustCompile(`^\*\*\* TURN \*\*\* \[[^\]]+\] \[(\S+)\]`)
	nrmRiverRe   = regexp.MustCompile(`^\*\*\* RIVER \*\*\* \[[^\]]+\] \[(\S+)\]`)
	nrmActionRe  = regexp.MustCompile(`^(.+?): (posts small blind|posts big blind|calls|bets) \$?([\d.]+)`)
	nrmRaiseRe   = regexp.MustCompile(`^(.+?): raises \$?([\d.]+) to \$?([\d.]+)`)
	nrmPassiveRe = regexp.MustCompile(`^(.+?): (folds|checks)`)
)

// NormalizeToLadbrokes rewrites one PokerStars hand block into the
// Ladbrokes text shape: marker lines, bracket style, parenthesized action
// amounts and an injected player-count line. The result parses through
// the Ladbrokes dialect, which is useful for tooling that only speaks the
// older format.
func NormalizeToLadbrokes(hand string) string {
	lines := strings.Split(strings.TrimSpace(hand), "\n")
	out := make([]string, 0, len(lines)+2)
	var seatCount int
	for _, line := range lines {
		if nrmChipsRe.MatchString(strings.TrimSpace(line)) && !strings.Contains(line, "is sitting out") {
			seatCount++
		}
	}

	seatsEmitted := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "*** SHOW DOWN ***"):
			continue
		case strings.HasPrefix(line, "*** HOLE CARDS ***"):
			out = append(out, lbDealMarker)
			continue
		case strings.HasPrefix(line, "*** SUMMARY ***"):
			out = append(out, lbSummaryMarker)
			continue
		}

		if m := nrmHeaderRe.FindStringSubmatch(line); m != nil {
			out = append(out,
				fmt.Sprintf("***** Hand History For Game %s *****", m[1]),
				fmt.Sprintf("$%s/$%s Texas Holdem Game Table (NL) - %s", m[3], m[4], m[5]))
			continue
		}
		if m := nrmButtonRe.FindStringSubmatch(line); m != nil {
			rewritten := nrmButtonRe.ReplaceAllString(line, "Seat $1 is the button")
			out = append(out, rewritten)
			continue
		}
		if m := nrmChipsRe.FindStringSubmatch(line); m != nil {
			if !seatsEmitted {
				out = append(out, fmt.Sprintf("Total number of players : %d/%d", seatCount, seatCount))
				seatsEmitted = true
			}
			out = append(out, fmt.Sprintf("%s ( $%s )", m[1], m[2]))
			continue
		}
		if m := nrmDealtRe.FindStringSubmatch(line); m != nil {
			out = append(out, fmt.Sprintf("Dealt to %s [ %s, %s ]", m[1], m[2], m[3]))
			continue
		}
		if m := nrmFlopRe.FindStringSubmatch(line); m != nil {
			out = append(out, fmt.Sprintf("%s [ %s, %s, %s ]", lbFlopMarker, m[1], m[2], m[3]))
			continue
		}
		if m := nrmTurnRe.FindStringSubmatch(line); m != nil {
			out = append(out, fmt.Sprintf("%s [ %s ]", lbTurnMarker, m[1]))
			continue
		}
		if m := nrmRiverRe.FindStringSubmatch(line); m != nil {
			out = append(out, fmt.Sprintf("%s [ %s ]", lbRiverMarker, m[1]))
			continue
		}
		if m := nrmRaiseRe.FindStringSubmatch(line); m != nil {
			out = append(out, withAllInTag(line, fmt.Sprintf("%s raises $%s to $%s", m[1], m[2], m[3])))
			continue
		}
		if m := nrmActionRe.FindStringSubmatch(line); m != nil {
			out = append(out, withAllInTag(line, fmt.Sprintf("%s %s ($%s)", m[1], m[2], m[3])))
			continue
		}
		if m := nrmPassiveRe.FindStringSubmatch(line); m != nil {
			out = append(out, fmt.Sprintf("%s %s", m[1], m[2]))
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}

func withAllInTag(src, rewritten string) string {
	if strings.Contains(src, "and is all-in") {
		return rewritten + " [all-In]"
	}
	return rewritten
}
