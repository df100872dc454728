package analysis

import (
	handhistory "github.com/lox/handhistory"
)

// StreetParticipation derives who saw and who was active on one postflop
// street, plus Hero's acting order. A street nobody reached yields empty
// metrics with order indices of -1, never an error.
func StreetParticipation(h *handhistory.HandHistory, street handhistory.Street) handhistory.StreetMetrics {
	m := handhistory.StreetMetrics{HeroOrderIndex: -1, HeroOrderCount: -1}

	actions := h.StreetActions(street)
	if len(actions) == 0 {
		return m
	}

	saw := make(map[string]bool)
	var active []string
	seen := make(map[string]bool)
	for _, a := range actions {
		if a.Kind != handhistory.ActionFold {
			saw[a.Actor] = true
		}
		if !seen[a.Actor] {
			seen[a.Actor] = true
			active = append(active, a.Actor)
		}
	}

	m.PlayersSaw = len(saw)
	m.HeroSaw = saw[handhistory.HeroName]
	m.Active = active
	m.HeroActive = seen[handhistory.HeroName]
	if !m.HeroActive {
		return m
	}

	heroFirst := -1
	for _, a := range actions {
		if a.Actor == handhistory.HeroName {
			heroFirst = a.Index
			break
		}
	}

	before := make(map[string]bool)
	for _, a := range actions {
		if a.Index < heroFirst {
			before[a.Actor] = true
		}
	}

	m.HeroOrderIndex = len(before)
	m.HeroOrderCount = len(active)
	switch {
	case m.HeroOrderIndex == 0:
		m.RelativeOrder = "first_to_act"
		m.PositionVsPFR = "OOP"
	case m.HeroOrderIndex == m.HeroOrderCount-1:
		m.RelativeOrder = "last_to_act"
		m.PositionVsPFR = "IP"
	default:
		m.RelativeOrder = "MP"
		m.PositionVsPFR = "MP"
	}
	return m
}
