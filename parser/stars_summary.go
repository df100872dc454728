package parser

import (
	"regexp"
	"strings"

	handhistory "github.com/lox/handhistory"
)

var (
	psTotalPotRe = regexp.MustCompile(`Total pot \$?([\d.]+)`)
	psRakeRe     = regexp.MustCompile(`Rake \$?([\d.]+)`)
	psSidePotRe  = regexp.MustCompile(`Side pot(?:-\d+)?\s*\$?([\d.]+)`)
	psCollectRe  = regexp.MustCompile(`(?m)^(.+?) collected \$?([\d.]+) from`)
	psSumSeatRe  = regexp.MustCompile(`(?m)^Seat \d+: (.+?)(?: \((?:button|small blind|big blind)\))? (folded|showed|mucked|collected|won|lost)`)
	psShowedRe   = regexp.MustCompile(`showed \[([^\]]+)\]`)
	psMuckedRe   = regexp.MustCompile(`mucked \[([^\]]+)\]`)
	psHandDescRe = regexp.MustCompile(`with (.+)$`)
)

func (d *starsDialect) ParseSummary(hand string, h *handhistory.HandHistory) {
	idx := strings.Index(hand, psSummaryMarker)
	if idx < 0 {
		return
	}
	body, summary := hand[:idx], hand[idx+len(psSummaryMarker):]

	if m := psTotalPotRe.FindStringSubmatch(summary); m != nil {
		h.FinalPot = mustAmount(m[1])
	}
	if m := psRakeRe.FindStringSubmatch(summary); m != nil {
		h.Rake = mustAmount(m[1])
	}
	for _, m := range psSidePotRe.FindAllStringSubmatch(summary, -1) {
		h.SidePots = append(h.SidePots, mustAmount(m[1]))
	}

	contributed := starsContributions(body, h)
	collected := make(map[string]float64, len(h.Seats))
	for _, m := range psCollectRe.FindAllStringSubmatch(hand, -1) {
		collected[strings.TrimSpace(m[1])] += mustAmount(m[2])
	}

	starting := make(map[string]float64, len(h.Seats))
	for _, s := range h.Seats {
		starting[s.Name] = s.Stack
	}

	seen := make(map[string]bool, len(h.Seats))
	for _, line := range strings.Split(summary, "\n") {
		m := psSumSeatRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		start, ok := starting[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true

		net := collected[name] - contributed[name]
		pr := handhistory.PlayerResult{
			Name:        name,
			EndingStack: start + net,
			Net:         net,
			Contributed: contributed[name],
			WonPot:      collected[name] > 0,
		}
		if sm := psShowedRe.FindStringSubmatch(line); sm != nil {
			pr.ShowedDown = true
			pr.Cards = splitCards(sm[1])
		} else if mm := psMuckedRe.FindStringSubmatch(line); mm != nil {
			pr.Cards = splitCards(mm[1])
		}
		if dm := psHandDescRe.FindStringSubmatch(strings.TrimSpace(line)); dm != nil {
			pr.HandDesc = strings.TrimSpace(dm[1])
		}
		h.PlayerResults = append(h.PlayerResults, pr)
	}
}

// starsContributions replays the pre-summary action text and totals each
// player's money across streets, netting out uncalled returns. This is
// independent of the reconstructed Actions so summary results hold even
// when action parsing degrades.
func starsContributions(body string, h *handhistory.HandHistory) map[string]float64 {
	seated := make(map[string]bool, len(h.Seats))
	for _, s := range h.Seats {
		seated[s.Name] = true
	}
	total := make(map[string]float64, len(h.Seats))
	street := make(map[string]float64, len(h.Seats))

	add := func(name string, amt float64) {
		if seated[name] {
			total[name] += amt
			street[name] += amt
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(line, psFlopMarker),
			strings.Contains(line, psTurnMarker),
			strings.Contains(line, psRiverMarker):
			street = make(map[string]float64, len(h.Seats))
			continue
		}
		if m := psUncalledRe.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[2])
			if seated[name] {
				amt := mustAmount(m[1])
				total[name] -= amt
				street[name] -= amt
			}
			continue
		}
		if m := psPostSBRe.FindStringSubmatch(line); m != nil {
			add(strings.TrimSpace(m[1]), mustAmount(m[2]))
			continue
		}
		if m := psPostBBRe.FindStringSubmatch(line); m != nil {
			add(strings.TrimSpace(m[1]), mustAmount(m[2]))
			continue
		}
		if m := psCallRe.FindStringSubmatch(line); m != nil {
			add(strings.TrimSpace(m[1]), mustAmount(m[2]))
			continue
		}
		if m := psRaiseRe.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if seated[name] {
				raiseTo := mustAmount(m[3])
				newMoney := raiseTo - street[name]
				if newMoney < 0 {
					newMoney = 0
				}
				total[name] += newMoney
				street[name] = raiseTo
			}
			continue
		}
		if m := psBetRe.FindStringSubmatch(line); m != nil {
			add(strings.TrimSpace(m[1]), mustAmount(m[2]))
			continue
		}
	}
	return total
}
