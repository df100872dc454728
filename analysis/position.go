// Package analysis derives Hero-centric analytics from an assembled
// HandHistory: button-relative positions, preflop roles, street
// participation and the VPIP classification.
package analysis

import (
	"sort"

	handhistory "github.com/lox/handhistory"
)

// positionNames returns the canonical position array for a table size.
// Supported sizes are 2 through 6; anything else returns nil.
func positionNames(size int) []handhistory.Position {
	switch size {
	case 2:
		return []handhistory.Position{handhistory.SB, handhistory.BB}
	case 3:
		return []handhistory.Position{handhistory.BTN, handhistory.SB, handhistory.BB}
	case 4:
		return []handhistory.Position{handhistory.CO, handhistory.BTN, handhistory.SB, handhistory.BB}
	case 5:
		return []handhistory.Position{handhistory.MP, handhistory.CO, handhistory.BTN, handhistory.SB, handhistory.BB}
	case 6:
		return []handhistory.Position{handhistory.UTG, handhistory.MP, handhistory.CO, handhistory.BTN, handhistory.SB, handhistory.BB}
	default:
		return nil
	}
}

// buttonNameIndex returns the button's index within the position array for
// a table size: heads-up the button is the SB (index 0), 3-handed the BTN
// is first (index 0), otherwise the BTN sits at size-3.
func buttonNameIndex(size int) int {
	if size <= 3 {
		return 0
	}
	return size - 3
}

// Positions maps every seated player to a button-relative position. This is
// the only implementation of the seat-to-position formula; Hero's own
// position is looked up from the same map rather than recomputed.
// Returns nil when the button seat is unknown or the table size is
// unsupported.
func Positions(seats []handhistory.SeatInfo, buttonSeat int) map[string]handhistory.Position {
	if buttonSeat == 0 || len(seats) == 0 {
		return nil
	}

	sorted := make([]handhistory.SeatInfo, len(seats))
	copy(sorted, seats)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Seat < sorted[j].Seat })

	size := len(sorted)
	names := positionNames(size)
	if names == nil {
		return nil
	}

	buttonIndex := -1
	for i, s := range sorted {
		if s.Seat == buttonSeat {
			buttonIndex = i
			break
		}
	}
	if buttonIndex == -1 {
		return nil
	}

	base := buttonNameIndex(size)
	out := make(map[string]handhistory.Position, size)
	for i, s := range sorted {
		offset := ((i - buttonIndex) % size + size) % size
		out[s.Name] = names[(base+offset)%size]
	}
	return out
}

// HeroPosition returns Hero's button-relative position for the hand, or ""
// when it cannot be computed (no button, no Hero, unsupported table size).
func HeroPosition(h *handhistory.HandHistory) handhistory.Position {
	hero := h.Hero()
	if hero == nil {
		return ""
	}
	positions := Positions(h.Seats, h.ButtonSeat)
	return positions[hero.Name]
}
