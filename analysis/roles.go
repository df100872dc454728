package analysis

import (
	handhistory "github.com/lox/handhistory"
)

// raiseEntry records one preflop bet/raise in order.
type raiseEntry struct {
	actor string
	index int // action index within the hand
}

// PreflopRoles derives Hero's preflop opportunity/actuation flags and
// resolves the single role label. Only preflop actions are consulted.
func PreflopRoles(h *handhistory.HandHistory) handhistory.PreflopRoles {
	var roles handhistory.PreflopRoles

	pre := h.StreetActions(handhistory.Preflop)
	if len(pre) == 0 {
		return roles
	}

	// First bet/raise by anyone other than Hero.
	for _, a := range pre {
		if a.Kind.IsAggressive() && a.Actor != handhistory.HeroName {
			roles.FacedOpenRaise = true
			break
		}
	}

	roles.Limped = heroLimped(pre, h.StakesBB)
	roles.OpenedPot = heroOpenedPot(pre)

	raises := preflopRaises(pre)
	if len(raises) > 0 {
		roles.Aggressor = raises[len(raises)-1].actor
	}
	roles.Faced3Bet = len(raises) >= 2
	roles.Faced4Bet = len(raises) >= 3

	heroLast := -1
	for i, r := range raises {
		if r.actor == handhistory.HeroName {
			heroLast = i
		}
	}
	switch {
	case heroLast == 1:
		roles.Did3Bet = true
	case heroLast == 2:
		roles.Did4Bet = true
	case heroLast == -1:
		if len(raises) >= 1 {
			roles.Had3BetOpportunity = true
		}
		if len(raises) >= 2 {
			roles.Had4BetOpportunity = true
		}
	}

	roles.Role = resolveRole(pre, raises, &roles, h.StakesBB)
	return roles
}

// heroLimped reports whether Hero's first voluntary preflop action was a
// flat call into an unraised pot. ToCallBefore is net of chips already in,
// so a small-blind complete shows up as a call of bb−sb and still counts.
func heroLimped(pre []handhistory.Action, bb float64) bool {
	for _, a := range pre {
		if a.Kind == handhistory.ActionPostSB || a.Kind == handhistory.ActionPostBB {
			continue
		}
		if a.Actor != handhistory.HeroName {
			if a.Kind.IsAggressive() {
				return false // a raise arrived before Hero acted
			}
			continue
		}
		return a.Kind == handhistory.ActionCall && a.ToCallBefore <= bb
	}
	return false
}

// heroOpenedPot reports whether Hero made the very first preflop bet/raise.
func heroOpenedPot(pre []handhistory.Action) bool {
	for _, a := range pre {
		if a.Kind.IsAggressive() {
			return a.Actor == handhistory.HeroName
		}
	}
	return false
}

// preflopRaises collects every preflop bet/raise in acting order. Blind
// posts are not raises.
func preflopRaises(pre []handhistory.Action) []raiseEntry {
	var out []raiseEntry
	for _, a := range pre {
		if a.Kind.IsAggressive() {
			out = append(out, raiseEntry{actor: a.Actor, index: a.Index})
		}
	}
	return out
}

// resolveRole picks the single role label. The checks run strictly in
// priority order and the first match wins, which keeps the labels mutually
// exclusive by construction.
func resolveRole(pre []handhistory.Action, raises []raiseEntry, roles *handhistory.PreflopRoles, bb float64) handhistory.Role {
	switch {
	case roles.Did4Bet:
		return handhistory.RoleFourBettor
	case roles.Did3Bet:
		if callerBetween(pre, heroFirstRaiseIndex(pre)) {
			return handhistory.RoleSqueezer
		}
		return handhistory.RoleThreeBettor
	case roles.OpenedPot:
		if limperBefore(pre, bb) {
			return handhistory.RoleIsoRaiser
		}
		return handhistory.RoleOpenRaiser
	}

	// Hero never raised; classify each call by how many raises it faced.
	// Calling the open outranks calling a re-raise, so a Hero who called
	// the open and later also called a 3-bet is still a cold caller.
	calledOpen, called3Bet := false, false
	for _, a := range pre {
		if a.Actor != handhistory.HeroName || a.Kind != handhistory.ActionCall {
			continue
		}
		n := 0
		for _, r := range raises {
			if r.index < a.Index {
				n++
			}
		}
		switch {
		case n == 1:
			calledOpen = true
		case n >= 2:
			called3Bet = true
		}
	}
	switch {
	case calledOpen && roles.FacedOpenRaise:
		return handhistory.RoleColdCaller
	case called3Bet:
		return handhistory.RoleCallerVs3Bet
	}
	return ""
}

// heroFirstRaiseIndex returns the action index of Hero's first preflop
// bet/raise, or -1.
func heroFirstRaiseIndex(pre []handhistory.Action) int {
	for _, a := range pre {
		if a.Actor == handhistory.HeroName && a.Kind.IsAggressive() {
			return a.Index
		}
	}
	return -1
}

// callerBetween reports whether any non-Hero call landed before Hero's
// raise at heroIndex. A 3-bet over an open plus callers is a squeeze.
func callerBetween(pre []handhistory.Action, heroIndex int) bool {
	if heroIndex < 0 {
		return false
	}
	for _, a := range pre {
		if a.Index >= heroIndex {
			break
		}
		if a.Kind == handhistory.ActionCall && a.Actor != handhistory.HeroName {
			return true
		}
	}
	return false
}

// limperBefore reports whether any player limped into an unraised pot
// before Hero's first action. A small-blind complete (net call of bb−sb)
// is a limp too.
func limperBefore(pre []handhistory.Action, bb float64) bool {
	for _, a := range pre {
		if a.Actor == handhistory.HeroName &&
			a.Kind != handhistory.ActionPostSB && a.Kind != handhistory.ActionPostBB {
			break
		}
		if a.Kind == handhistory.ActionCall && a.ToCallBefore <= bb {
			return true
		}
	}
	return false
}
