package parser

import (
	"regexp"
	"strings"

	handhistory "github.com/lox/handhistory"
)

var (
	lbMainPotRe = regexp.MustCompile(`Main Pot:\s*\$?([\d.]+)`)
	lbRakeRe    = regexp.MustCompile(`Rake:\s*\$?([\d.]+)`)
	lbSidePotRe = regexp.MustCompile(`Side [Pp]ot(?:-\d+)?\s*:?\s*\$?([\d.]+)`)

	lbBalanceRe  = regexp.MustCompile(`^(\S+)\s+balance\s+\$?([\d.]+)`)
	lbNetRe      = regexp.MustCompile(`net\s+([+-])\s*\$?([\d.]+)`)
	lbBetPartRe  = regexp.MustCompile(`bet\s+\$?([\d.]+)`)
	lbCollectRe  = regexp.MustCompile(`collected\s+\$?([\d.]+)`)
	lbLostRe     = regexp.MustCompile(`lost\s+\$?([\d.]+)`)
	lbBracketRe  = regexp.MustCompile(`\[([^\]]+)\]`)
	lbDidntBetRe = regexp.MustCompile(`didn'?t bet`)
)

func (d *ladbrokesDialect) ParseSummary(hand string, h *handhistory.HandHistory) {
	idx := strings.Index(hand, lbSummaryMarker)
	if idx < 0 {
		return
	}
	summary := hand[idx+len(lbSummaryMarker):]

	if m := lbMainPotRe.FindStringSubmatch(summary); m != nil {
		h.FinalPot = mustAmount(m[1])
	}
	if m := lbRakeRe.FindStringSubmatch(summary); m != nil {
		h.Rake = mustAmount(m[1])
	}
	for _, m := range lbSidePotRe.FindAllStringSubmatch(summary, -1) {
		h.SidePots = append(h.SidePots, mustAmount(m[1]))
	}

	seen := make(map[string]bool, len(h.Seats))
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		pr, ok := parseBalanceLine(line)
		if !ok || seen[pr.Name] {
			continue
		}
		seen[pr.Name] = true
		h.PlayerResults = append(h.PlayerResults, pr)
	}

	reparseHeroBalance(summary, h)
}

// parseBalanceLine applies the per-player summary grammar: a balance,
// then one of (net +/-X), (bet B [collected C]), (lost L) or "didn't
// bet". Bracketed card and hand-description suffixes are optional.
func parseBalanceLine(line string) (handhistory.PlayerResult, bool) {
	m := lbBalanceRe.FindStringSubmatch(line)
	if m == nil {
		return handhistory.PlayerResult{}, false
	}
	pr := handhistory.PlayerResult{
		Name:        m[1],
		EndingStack: mustAmount(m[2]),
	}

	switch {
	case lbNetRe.MatchString(line):
		nm := lbNetRe.FindStringSubmatch(line)
		pr.Net = mustAmount(nm[2])
		if nm[1] == "-" {
			pr.Net = -pr.Net
		}
		if bm := lbBetPartRe.FindStringSubmatch(line); bm != nil {
			pr.Contributed = mustAmount(bm[1])
		}
	case lbBetPartRe.MatchString(line):
		pr.Contributed = mustAmount(lbBetPartRe.FindStringSubmatch(line)[1])
		if cm := lbCollectRe.FindStringSubmatch(line); cm != nil {
			pr.Net = mustAmount(cm[1]) - pr.Contributed
		} else {
			pr.Net = -pr.Contributed
		}
	case lbLostRe.MatchString(line):
		pr.Contributed = mustAmount(lbLostRe.FindStringSubmatch(line)[1])
		pr.Net = -pr.Contributed
	case lbDidntBetRe.MatchString(line):
		// zero net, nothing contributed
	}
	pr.WonPot = pr.Net > 0

	brackets := lbBracketRe.FindAllStringSubmatch(line, 2)
	if len(brackets) > 0 {
		pr.ShowedDown = true
		pr.Cards = splitCards(brackets[0][1])
	}
	if len(brackets) > 1 {
		pr.HandDesc = strings.TrimSpace(brackets[1][1])
	}
	return pr, true
}

// reparseHeroBalance re-reads Hero's own summary line and replaces the
// generic entry with it. Generic per-line parsing and the hero path share
// one grammar, so this only matters when duplicate or mangled lines put a
// stale Hero entry first.
func reparseHeroBalance(summary string, h *handhistory.HandHistory) {
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, handhistory.HeroName+" ") {
			continue
		}
		pr, ok := parseBalanceLine(line)
		if !ok || pr.Name != handhistory.HeroName {
			continue
		}
		kept := h.PlayerResults[:0]
		for _, existing := range h.PlayerResults {
			if existing.Name != handhistory.HeroName {
				kept = append(kept, existing)
			}
		}
		h.PlayerResults = append(kept, pr)
		return
	}
}
