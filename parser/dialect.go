// Package parser turns raw hand-history transcripts into normalized
// HandHistory records. Two text dialects are supported behind one parsing
// contract; all derived analytics are shared and live in the analysis
// package.
package parser

import (
	"fmt"

	handhistory "github.com/lox/handhistory"
)

// Site identifies a supported hand-history text dialect.
type Site int

const (
	// SiteLadbrokes is the "Hand History For Game" dialect.
	SiteLadbrokes Site = iota
	// SitePokerStars is the "PokerStars Hand #" dialect.
	SitePokerStars
)

// String returns the site name used in HandHistory.Site.
func (s Site) String() string {
	switch s {
	case SiteLadbrokes:
		return "Ladbrokes"
	case SitePokerStars:
		return "PokerStars"
	default:
		return "Unknown"
	}
}

// SiteFromString resolves a site name (case-sensitive short names accepted
// by the CLI and config file).
func SiteFromString(name string) (Site, error) {
	switch name {
	case "ladbrokes", "Ladbrokes":
		return SiteLadbrokes, nil
	case "pokerstars", "PokerStars", "stars":
		return SitePokerStars, nil
	default:
		return 0, fmt.Errorf("unknown site %q", name)
	}
}

// Dialect is the parsing surface a card-room text format implements. The
// eight operations mirror the processing pipeline: split, validate, then
// the five independent section parsers. Derivation (position, roles,
// streets, VPIP) is dialect-independent and not part of this interface.
type Dialect interface {
	// Site names the dialect for HandHistory.Site.
	Site() Site

	// SplitHands cuts a transcript into hand blocks, each with the
	// dialect's start marker re-attached. Empty fragments are dropped.
	SplitHands(raw string) []string

	// Validate returns nil for a parseable hand block, or the reason it
	// must be skipped.
	Validate(hand string) error

	// ParseHeader fills the hand-level metadata fields.
	ParseHeader(hand string, h *handhistory.HandHistory)

	// ParseSeats extracts the seat listing, skipping sitting-out seats.
	ParseSeats(hand string) []handhistory.SeatInfo

	// ParseHoleCards returns Hero's hole cards, or empty strings.
	ParseHoleCards(hand string) (card1, card2 string)

	// ParseBoard fills the per-street and cumulative board fields.
	ParseBoard(hand string, h *handhistory.HandHistory)

	// ParseActions reconstructs the ordered action sequence with pot and
	// stack bookkeeping. Seats and stakes must be parsed first.
	ParseActions(hand string, h *handhistory.HandHistory)

	// ParseSummary fills final pot, rake, side pots, the authoritative
	// board and the per-player results.
	ParseSummary(hand string, h *handhistory.HandHistory)
}

// newDialect builds the dialect implementation for a site. heroAlias is
// only meaningful for PokerStars, which renames that player to the
// canonical Hero alias before parsing.
func newDialect(site Site, heroAlias string) Dialect {
	switch site {
	case SitePokerStars:
		return &starsDialect{heroAlias: heroAlias}
	default:
		return &ladbrokesDialect{}
	}
}
