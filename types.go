// Package handhistory defines the normalized per-hand record produced by
// parsing raw poker hand-history transcripts, along with the derived
// Hero-centric analytics attached to each hand.
package handhistory

import "time"

// HeroName is the canonical alias every dialect maps the tracked player to.
const HeroName = "Hero"

// Street identifies a betting round.
type Street string

const (
	Preflop Street = "preflop"
	Flop    Street = "flop"
	Turn    Street = "turn"
	River   Street = "river"
)

// PostflopStreets lists the postflop streets in order.
var PostflopStreets = []Street{Flop, Turn, River}

// ActionKind classifies a single betting action.
type ActionKind string

const (
	ActionFold   ActionKind = "fold"
	ActionCheck  ActionKind = "check"
	ActionCall   ActionKind = "call"
	ActionBet    ActionKind = "bet"
	ActionRaise  ActionKind = "raise"
	ActionAllIn  ActionKind = "all_in"
	ActionPostSB ActionKind = "post_sb"
	ActionPostBB ActionKind = "post_bb"
)

// IsAggressive reports whether the kind puts new pressure on the pot
// (bets, raises and all-ins, but not blind posts).
func (k ActionKind) IsAggressive() bool {
	return k == ActionBet || k == ActionRaise || k == ActionAllIn
}

// Position is a button-relative seat name.
type Position string

const (
	UTG Position = "UTG"
	MP  Position = "MP"
	CO  Position = "CO"
	BTN Position = "BTN"
	SB  Position = "SB"
	BB  Position = "BB"
)

// Role is Hero's preflop role label. Empty when no role applies.
type Role string

const (
	RoleOpenRaiser   Role = "open_raiser"
	RoleIsoRaiser    Role = "iso_raiser"
	RoleThreeBettor  Role = "3_bettor"
	RoleSqueezer     Role = "squeezer"
	RoleFourBettor   Role = "4_bettor"
	RoleColdCaller   Role = "cold_caller"
	RoleCallerVs3Bet Role = "caller_vs_3bet"
)

// SeatInfo describes one seat at hand start. Built once per hand from the
// seat listing and never mutated.
type SeatInfo struct {
	Seat   int     `toml:"seat"`
	Name   string  `toml:"name"`
	Stack  float64 `toml:"stack"`
	IsHero bool    `toml:"is_hero"`
}

// Action is one reconstructed betting action with pot and stack snapshots.
// Index is globally unique and monotonically increasing within the hand,
// across street boundaries, so acting order is always comparable by plain
// integer ordering.
type Action struct {
	Street       Street     `toml:"street"`
	Index        int        `toml:"index"`
	Actor        string     `toml:"actor"`
	Kind         ActionKind `toml:"kind"`
	Amount       float64    `toml:"amount"`         // new money contributed by this action
	ToCallBefore float64    `toml:"to_call_before"` // outstanding bet before this action
	BetSizeTotal float64    `toml:"bet_size_total,omitempty"` // raise-to / bet total, 0 when n/a
	StackBefore  float64    `toml:"stack_before"`
	StackAfter   float64    `toml:"stack_after"`
	PotBefore    float64    `toml:"pot_before"`
	PotAfter     float64    `toml:"pot_after"`
	AllIn        bool       `toml:"all_in"`
	PctPot       float64    `toml:"pct_pot,omitempty"` // bet/raise size as % of pot before
}

// PlayerResult is one player's outcome from the summary section.
type PlayerResult struct {
	Name        string   `toml:"name"`
	EndingStack float64  `toml:"ending_stack"`
	Net         float64  `toml:"net"` // ending - starting, derived independently
	Contributed float64  `toml:"contributed"`
	WonPot      bool     `toml:"won_pot"`
	ShowedDown  bool     `toml:"showed_down"`
	Cards       []string `toml:"cards,omitempty"`
	HandDesc    string   `toml:"hand_desc,omitempty"`
}

// StreetMetrics holds per-street participation data derived from actions.
// HeroOrderIndex and HeroOrderCount are -1 when Hero did not act on the
// street (or nobody reached it).
type StreetMetrics struct {
	PlayersSaw     int      `toml:"players_saw"`     // actors with a non-fold action
	HeroSaw        bool     `toml:"hero_saw"`
	Active         []string `toml:"active,omitempty"` // every actor on the street
	HeroActive     bool     `toml:"hero_active"`
	HeroOrderIndex int      `toml:"hero_order_index"` // distinct actors before Hero's first action
	HeroOrderCount int      `toml:"hero_order_count"` // total active players
	RelativeOrder  string   `toml:"relative_order,omitempty"`  // first_to_act / MP / last_to_act
	PositionVsPFR  string   `toml:"position_vs_pfr,omitempty"` // OOP / MP / IP
}

// PreflopRoles bundles the preflop opportunity and actuation flags plus the
// single resolved role label.
type PreflopRoles struct {
	OpenedPot          bool   `toml:"opened_pot"`
	Limped             bool   `toml:"limped"`
	Had3BetOpportunity bool   `toml:"had_3bet_opportunity"`
	Did3Bet            bool   `toml:"did_3bet"`
	Had4BetOpportunity bool   `toml:"had_4bet_opportunity"`
	Did4Bet            bool   `toml:"did_4bet"`
	FacedOpenRaise     bool   `toml:"faced_open_raise"`
	Faced3Bet          bool   `toml:"faced_3bet"`
	Faced4Bet          bool   `toml:"faced_4bet"`
	Role               Role   `toml:"role,omitempty"`
	Aggressor          string `toml:"aggressor,omitempty"` // last preflop raiser
}

// HandHistory is the hand-level aggregate: everything parsed from one hand
// block plus all derived fields. Built once per valid hand; never mutated
// after assembly except for the Hero result reconciliation step.
type HandHistory struct {
	// Header
	HandID         string    `toml:"hand_id"`
	Site           string    `toml:"site"`
	TableName      string    `toml:"table_name"`
	StakesSB       float64   `toml:"stakes_sb"` // 0 means "stakes unknown", not freeroll
	StakesBB       float64   `toml:"stakes_bb"`
	Currency       string    `toml:"currency"`
	GameType       string    `toml:"game_type"`
	LimitType      string    `toml:"limit_type"`
	MaxPlayers     int       `toml:"max_players"`
	PlayersDealtIn int       `toml:"players_dealt_in"`
	ButtonSeat     int       `toml:"button_seat"` // 0 when absent
	Timestamp      time.Time `toml:"timestamp,omitempty"` // zero when unparseable
	RawHeaderLine  string    `toml:"raw_header_line,omitempty"`

	// Seats and hole cards
	Seats     []SeatInfo `toml:"seats"`
	HeroCard1 string     `toml:"hero_card_1,omitempty"`
	HeroCard2 string     `toml:"hero_card_2,omitempty"`

	// Board, per-street and cumulative
	FlopCards  []string `toml:"flop_cards,omitempty"`
	TurnCard   string   `toml:"turn_card,omitempty"`
	RiverCard  string   `toml:"river_card,omitempty"`
	BoardAll   []string `toml:"board_all,omitempty"`
	BoardFinal []string `toml:"board_final,omitempty"` // authoritative summary board

	// Actions
	Actions []Action `toml:"actions"`

	// Summary
	FinalPot      float64        `toml:"final_pot"`
	Rake          float64        `toml:"rake"`
	SidePots      []float64      `toml:"side_pots,omitempty"` // recorded, not reconciled
	PlayerResults []PlayerResult `toml:"player_results"`

	// Derived: Hero position. Position is the display position (corrected
	// to SB/BB when Hero demonstrably posted a blind); PositionRaw is the
	// original button-relative computation the VPIP cascade is keyed on.
	HeroPosition    Position `toml:"hero_position,omitempty"`
	HeroPositionRaw Position `toml:"hero_position_raw,omitempty"`

	// Derived: preflop roles and postflop participation
	Preflop PreflopRoles  `toml:"preflop"`
	FlopMetrics  StreetMetrics `toml:"flop"`
	TurnMetrics  StreetMetrics `toml:"turn"`
	RiverMetrics StreetMetrics `toml:"river"`

	// Derived: Hero outcome, reconciled against PlayerResults
	VPIP                   bool    `toml:"vpip"`
	HeroNetChips           float64 `toml:"hero_net_chips"`
	HeroNetBB              float64 `toml:"hero_net_bb"`
	HeroWentToShowdown     bool    `toml:"hero_went_to_showdown"`
	HeroWonAtShowdown      bool    `toml:"hero_won_at_showdown"`
	HeroWonWithoutShowdown bool    `toml:"hero_won_without_showdown"`

	// Original text of the block this hand was parsed from.
	RawHand string `toml:"-"`
}

// Hero returns Hero's seat entry, or nil if Hero was not dealt in.
func (h *HandHistory) Hero() *SeatInfo {
	for i := range h.Seats {
		if h.Seats[i].IsHero {
			return &h.Seats[i]
		}
	}
	return nil
}

// HeroResult returns Hero's summary result, or nil when missing.
func (h *HandHistory) HeroResult() *PlayerResult {
	for i := range h.PlayerResults {
		if h.PlayerResults[i].Name == HeroName {
			return &h.PlayerResults[i]
		}
	}
	return nil
}

// StreetActions returns the hand's actions on one street, in order.
func (h *HandHistory) StreetActions(street Street) []Action {
	var out []Action
	for _, a := range h.Actions {
		if a.Street == street {
			out = append(out, a)
		}
	}
	return out
}

// Metrics returns the participation metrics for a postflop street.
func (h *HandHistory) Metrics(street Street) *StreetMetrics {
	switch street {
	case Flop:
		return &h.FlopMetrics
	case Turn:
		return &h.TurnMetrics
	case River:
		return &h.RiverMetrics
	default:
		return nil
	}
}
