package analysis

import (
	"math"
	"strings"

	handhistory "github.com/lox/handhistory"
)

// blindTolerance is the fraction of the blind within which a negative net
// result is treated as an uncontested blind loss rather than VPIP.
const blindTolerance = 0.05

// vpipContext carries everything the rules need. The position is Hero's
// original computed position: correcting it first (e.g. after a confirmed
// blind post) risks silently reclassifying a legitimate early-position
// raise as a blind-only fold.
type vpipContext struct {
	hand     *handhistory.HandHistory
	position handhistory.Position
}

// vpipRule is one step of the cascade. decided=false means the rule has no
// opinion and the next rule runs.
type vpipRule struct {
	name string
	eval func(*vpipContext) (decided, vpip bool)
}

// vpipRules is the ordered cascade; the first rule that decides wins. No
// single signal is reliable across all card-room text variants, hence the
// chain.
var vpipRules = []vpipRule{
	{name: "voluntary_preflop_action", eval: ruleVoluntaryAction},
	{name: "saw_flop", eval: ruleSawFlop},
	{name: "net_result", eval: ruleNetResult},
}

// ClassifyVPIP labels the hand as voluntarily played or not. Requires the
// preflop roles, street metrics, raw position and Hero net result to be
// derived already.
func ClassifyVPIP(h *handhistory.HandHistory) bool {
	ctx := &vpipContext{hand: h, position: h.HeroPositionRaw}
	for _, rule := range vpipRules {
		if decided, vpip := rule.eval(ctx); decided {
			return vpip
		}
	}
	return false
}

// ruleVoluntaryAction checks the role flags with position-specific scope:
// under the gun can only limp or open, later positions can also 3-bet or
// 4-bet, and the big blind additionally counts calling a raise.
func ruleVoluntaryAction(ctx *vpipContext) (bool, bool) {
	flags := ctx.hand.Preflop
	switch ctx.position {
	case handhistory.UTG:
		if flags.OpenedPot || flags.Limped {
			return true, true
		}
	case handhistory.MP, handhistory.CO, handhistory.BTN, handhistory.SB:
		if flags.OpenedPot || flags.Limped || flags.Did3Bet || flags.Did4Bet {
			return true, true
		}
	case handhistory.BB:
		if flags.OpenedPot || flags.Limped || flags.Did3Bet || flags.Did4Bet {
			return true, true
		}
		if flags.FacedOpenRaise && heroCalledRaise(ctx.hand) {
			return true, true
		}
	}
	return false, false
}

// ruleSawFlop: seeing the flop implies preflop money was committed. The
// big blind is excluded: checking the option sees the flop for free, so
// the net-result rule decides instead.
func ruleSawFlop(ctx *vpipContext) (bool, bool) {
	if ctx.position != handhistory.BB && ctx.hand.FlopMetrics.HeroSaw {
		return true, true
	}
	return false, false
}

// ruleNetResult falls back on the summary-derived net, guarding against
// blind-only losses whose magnitude matches the blind within tolerance.
func ruleNetResult(ctx *vpipContext) (bool, bool) {
	h := ctx.hand
	result := h.HeroNetChips
	if result == 0 {
		return false, false
	}
	flags := h.Preflop
	tookAction := flags.OpenedPot || flags.Limped || flags.Did3Bet || flags.Did4Bet

	switch ctx.position {
	case handhistory.UTG:
		// Tiny results on a fold are usually parse noise, not chips played.
		if math.Abs(result) > 0.01 && (flags.OpenedPot || flags.Limped || h.FlopMetrics.HeroSaw) {
			return true, true
		}
		if h.StakesBB > 0 && math.Abs(result) > h.StakesBB*0.5 {
			return true, true
		}
		return false, false
	case handhistory.BB:
		return blindGuardedResult(result, h.StakesBB, h.StakesBB, tookAction || h.FlopMetrics.HeroSaw)
	case handhistory.SB:
		return blindGuardedResult(result, h.StakesSB, h.StakesBB, tookAction || h.FlopMetrics.HeroSaw)
	default:
		// MP/CO/BTN cannot have a non-zero net without putting chips in.
		return true, true
	}
}

// blindGuardedResult decides VPIP for a blind seat: a loss within tolerance
// of the posted blind is an uncontested blind loss, not VPIP.
func blindGuardedResult(result, blind, bb float64, tookAction bool) (bool, bool) {
	if blind > 0 && math.Abs(result+blind) <= blind*blindTolerance {
		return true, false
	}
	if tookAction {
		return true, true
	}
	if bb > 0 && math.Abs(result) > bb*0.5 {
		return true, true
	}
	return true, false
}

// heroCalledRaise reports whether Hero flat-called facing more than the big
// blind preflop.
func heroCalledRaise(h *handhistory.HandHistory) bool {
	for _, a := range h.StreetActions(handhistory.Preflop) {
		if a.Actor == handhistory.HeroName && a.Kind == handhistory.ActionCall && a.ToCallBefore > h.StakesBB {
			return true
		}
	}
	return false
}

// HeroPostedBlind reports whether Hero posted the small or big blind,
// preferring the reconstructed actions and falling back to the raw text.
func HeroPostedBlind(h *handhistory.HandHistory) (postedSB, postedBB bool) {
	for _, a := range h.StreetActions(handhistory.Preflop) {
		if a.Actor != handhistory.HeroName {
			continue
		}
		switch a.Kind {
		case handhistory.ActionPostSB:
			postedSB = true
		case handhistory.ActionPostBB:
			postedBB = true
		}
	}
	if !postedSB && !postedBB && h.RawHand != "" {
		if strings.Contains(h.RawHand, "Hero posts small blind") {
			postedSB = true
		} else if strings.Contains(h.RawHand, "Hero posts big blind") {
			postedBB = true
		}
	}
	return postedSB, postedBB
}

// CorrectedPosition returns the display position: when Hero demonstrably
// posted a blind, the computed position is overridden to SB/BB. VPIP
// classification always runs on the uncorrected position first.
func CorrectedPosition(h *handhistory.HandHistory) handhistory.Position {
	postedSB, postedBB := HeroPostedBlind(h)
	switch {
	case postedSB:
		return handhistory.SB
	case postedBB:
		return handhistory.BB
	default:
		return h.HeroPositionRaw
	}
}
