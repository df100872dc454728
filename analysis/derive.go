package analysis

import (
	handhistory "github.com/lox/handhistory"
)

// Derive fills every derived field of the hand in place: Hero's position,
// preflop roles, street participation, the reconciled Hero result and the
// VPIP label. It is the assembly step described by the processing pipeline;
// parsing must be complete before it runs.
func Derive(h *handhistory.HandHistory) {
	h.HeroPositionRaw = HeroPosition(h)

	h.Preflop = PreflopRoles(h)

	h.FlopMetrics = StreetParticipation(h, handhistory.Flop)
	h.TurnMetrics = StreetParticipation(h, handhistory.Turn)
	h.RiverMetrics = StreetParticipation(h, handhistory.River)

	ReconcileHeroResult(h)

	// VPIP runs on the raw position; the corrected position is display-only.
	h.VPIP = ClassifyVPIP(h)
	h.HeroPosition = CorrectedPosition(h)
}

// ReconcileHeroResult overwrites Hero's result fields from the summary's
// PlayerResult entry. Hero's figures always come from the dedicated Hero
// re-parse, never from name-matching against other players' lines.
func ReconcileHeroResult(h *handhistory.HandHistory) {
	res := h.HeroResult()
	if res == nil {
		h.HeroNetChips = 0
		h.HeroNetBB = 0
		return
	}
	h.HeroNetChips = res.Net
	if h.StakesBB > 0 {
		h.HeroNetBB = res.Net / h.StakesBB
	} else {
		h.HeroNetBB = 0
	}
	h.HeroWentToShowdown = res.ShowedDown
	h.HeroWonAtShowdown = res.WonPot && res.ShowedDown
	h.HeroWonWithoutShowdown = res.WonPot && !res.ShowedDown
}
