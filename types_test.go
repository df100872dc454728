package handhistory

import (
	"testing"
)

func TestHeroLookup(t *testing.T) {
	h := &HandHistory{Seats: []SeatInfo{
		{Seat: 1, Name: "alice"},
		{Seat: 2, Name: HeroName, IsHero: true},
	}}

	hero := h.Hero()
	if hero == nil || hero.Seat != 2 {
		t.Fatalf("expected hero in seat 2, got %+v", hero)
	}

	empty := &HandHistory{}
	if empty.Hero() != nil {
		t.Error("expected nil hero for empty seat list")
	}
}

func TestHeroResult(t *testing.T) {
	h := &HandHistory{PlayerResults: []PlayerResult{
		{Name: "alice", Net: -1},
		{Name: HeroName, Net: 2.5},
	}}

	res := h.HeroResult()
	if res == nil || res.Net != 2.5 {
		t.Fatalf("expected hero net of 2.5, got %+v", res)
	}
	if (&HandHistory{}).HeroResult() != nil {
		t.Error("expected nil result without a hero entry")
	}
}

func TestStreetActions(t *testing.T) {
	h := &HandHistory{Actions: []Action{
		{Street: Preflop, Actor: "a", Index: 0},
		{Street: Flop, Actor: "b", Index: 1},
		{Street: Flop, Actor: "c", Index: 2},
	}}

	flop := h.StreetActions(Flop)
	if len(flop) != 2 {
		t.Fatalf("expected 2 flop actions, got %d", len(flop))
	}
	if flop[0].Actor != "b" || flop[1].Actor != "c" {
		t.Errorf("flop actions out of order: %+v", flop)
	}
	if len(h.StreetActions(River)) != 0 {
		t.Error("expected no river actions")
	}
}

func TestMetricsLookup(t *testing.T) {
	h := &HandHistory{}
	h.TurnMetrics.PlayersSaw = 3

	if m := h.Metrics(Turn); m == nil || m.PlayersSaw != 3 {
		t.Errorf("expected turn metrics with 3 players, got %+v", m)
	}
	if h.Metrics(Preflop) != nil {
		t.Error("expected nil metrics for preflop")
	}
}

func TestIsAggressive(t *testing.T) {
	aggressive := []ActionKind{ActionBet, ActionRaise, ActionAllIn}
	passive := []ActionKind{ActionFold, ActionCheck, ActionCall, ActionPostSB, ActionPostBB}

	for _, k := range aggressive {
		if !k.IsAggressive() {
			t.Errorf("expected %s to be aggressive", k)
		}
	}
	for _, k := range passive {
		if k.IsAggressive() {
			t.Errorf("expected %s to be passive", k)
		}
	}
}
