package parser

import (
	"regexp"
	"strings"

	handhistory "github.com/lox/handhistory"
)

var (
	psPostSBRe   = regexp.MustCompile(`^(.+?): posts small blind \$?([\d.]+)`)
	psPostBBRe   = regexp.MustCompile(`^(.+?): posts big blind \$?([\d.]+)`)
	psFoldRe     = regexp.MustCompile(`^(.+?): folds`)
	psCheckRe    = regexp.MustCompile(`^(.+?): checks`)
	psCallRe     = regexp.MustCompile(`^(.+?): calls \$?([\d.]+)`)
	psBetRe      = regexp.MustCompile(`^(.+?): bets \$?([\d.]+)`)
	psRaiseRe    = regexp.MustCompile(`^(.+?): raises \$?([\d.]+) to \$?([\d.]+)`)
	psUncalledRe = regexp.MustCompile(`^Uncalled bet \(\$?([\d.]+)\) returned to (.+)`)
)

func (d *starsDialect) ParseActions(hand string, h *handhistory.HandHistory) {
	st := newActionState(h)
	street := handhistory.Street("")

	for _, line := range strings.Split(hand, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.Contains(line, psHoleMarker):
			street = handhistory.Preflop
			continue
		case strings.Contains(line, psFlopMarker):
			street = handhistory.Flop
			st.newStreet()
			continue
		case strings.Contains(line, psTurnMarker):
			street = handhistory.Turn
			st.newStreet()
			continue
		case strings.Contains(line, psRiverMarker):
			street = handhistory.River
			st.newStreet()
			continue
		case strings.Contains(line, psShowdownMarker), strings.Contains(line, psSummaryMarker):
			return
		}

		// Blinds post before the hole-cards marker.
		if street == "" {
			if m := psPostSBRe.FindStringSubmatch(line); m != nil && st.seated(strings.TrimSpace(m[1])) {
				amt := mustAmount(m[2])
				st.record(handhistory.Preflop, strings.TrimSpace(m[1]), handhistory.ActionPostSB, amt, 0, 0, false)
				if amt > st.current {
					st.current = amt
				}
			} else if m := psPostBBRe.FindStringSubmatch(line); m != nil && st.seated(strings.TrimSpace(m[1])) {
				amt := mustAmount(m[2])
				st.record(handhistory.Preflop, strings.TrimSpace(m[1]), handhistory.ActionPostBB, amt, 0, 0, false)
				if amt > st.current {
					st.current = amt
				}
			}
			continue
		}

		if m := psUncalledRe.FindStringSubmatch(line); m != nil {
			st.returnUncalled(strings.TrimSpace(m[2]), mustAmount(m[1]))
			continue
		}
		st.applyStarsLine(street, line)
	}
}

// returnUncalled hands an unmatched bet back to its owner so the pot seen
// by later actions (and the final conservation check) excludes it.
func (st *actionState) returnUncalled(actor string, amount float64) {
	if !st.seated(actor) {
		return
	}
	st.stacks[actor] += amount
	st.pot -= amount
	if st.invested[actor] >= amount {
		st.invested[actor] -= amount
	}
}

func (st *actionState) applyStarsLine(street handhistory.Street, line string) {
	allInSuffix := strings.Contains(line, "and is all-in")

	if m := psFoldRe.FindStringSubmatch(line); m != nil && st.seated(strings.TrimSpace(m[1])) {
		actor := strings.TrimSpace(m[1])
		toCall := st.current - st.invested[actor]
		if toCall < 0 {
			toCall = 0
		}
		st.record(street, actor, handhistory.ActionFold, 0, toCall, 0, false)
		return
	}
	if m := psCheckRe.FindStringSubmatch(line); m != nil && st.seated(strings.TrimSpace(m[1])) {
		st.record(street, strings.TrimSpace(m[1]), handhistory.ActionCheck, 0, 0, 0, false)
		st.current = 0
		return
	}
	if m := psCallRe.FindStringSubmatch(line); m != nil && st.seated(strings.TrimSpace(m[1])) {
		actor := strings.TrimSpace(m[1])
		amt := mustAmount(m[2])
		toCall := st.current - st.invested[actor]
		if toCall < 0 {
			toCall = 0
		}
		st.record(street, actor, handhistory.ActionCall, amt, toCall, 0, allInSuffix || st.stacks[actor]-amt <= 0)
		return
	}
	if m := psRaiseRe.FindStringSubmatch(line); m != nil && st.seated(strings.TrimSpace(m[1])) {
		st.applyRaiseTo(street, strings.TrimSpace(m[1]), mustAmount(m[3]), line)
		return
	}
	if m := psBetRe.FindStringSubmatch(line); m != nil && st.seated(strings.TrimSpace(m[1])) {
		actor := strings.TrimSpace(m[1])
		amt := mustAmount(m[2])
		allIn := allInSuffix || st.stacks[actor]-amt <= 0
		kind := handhistory.ActionBet
		if allIn {
			kind = handhistory.ActionAllIn
		}
		st.record(street, actor, kind, amt, 0, amt, allIn)
		if tot := st.invested[actor]; tot > st.current {
			st.current = tot
		}
		return
	}
}
