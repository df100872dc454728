package stats

import (
	"math"
	"testing"

	handhistory "github.com/lox/handhistory"
)

func handResult(netBB float64, pos handhistory.Position, showdown bool) *handhistory.HandHistory {
	return &handhistory.HandHistory{
		HeroNetBB:          netBB,
		HeroPosition:       pos,
		HeroWentToShowdown: showdown,
		VPIP:               netBB != 0,
	}
}

func TestSummary_Empty(t *testing.T) {
	s := NewSummary()

	if s.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty summary, got %f", s.Mean())
	}
	if s.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty summary, got %f", s.Variance())
	}
	if s.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty summary, got %f", s.StdDev())
	}
	if s.Median() != 0 {
		t.Errorf("Expected median of 0 for empty summary, got %f", s.Median())
	}
	if s.VPIPRate() != 0 {
		t.Errorf("Expected VPIP rate of 0 for empty summary, got %f", s.VPIPRate())
	}
}

func TestSummary_SingleHand(t *testing.T) {
	s := NewSummary()
	s.Add(handResult(2.5, handhistory.BTN, true))

	if s.Hands != 1 {
		t.Errorf("Expected 1 hand, got %d", s.Hands)
	}
	if s.Mean() != 2.5 {
		t.Errorf("Expected mean of 2.5, got %f", s.Mean())
	}
	if s.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single hand, got %f", s.Variance())
	}
	if s.ShowdownWins != 1 {
		t.Errorf("Expected 1 showdown win, got %d", s.ShowdownWins)
	}
	if s.NonShowdownWins != 0 {
		t.Errorf("Expected 0 non-showdown wins, got %d", s.NonShowdownWins)
	}
	if s.PositionMean(handhistory.BTN) != 2.5 {
		t.Errorf("Expected BTN mean of 2.5, got %f", s.PositionMean(handhistory.BTN))
	}
}

func TestSummary_ShowdownSplit(t *testing.T) {
	s := NewSummary()
	s.Add(handResult(3.0, handhistory.CO, true))
	s.Add(handResult(-1.0, handhistory.CO, true))
	s.Add(handResult(1.5, handhistory.BB, false))
	s.Add(handResult(-0.5, handhistory.SB, false))

	if s.ShowdownBB != 2.0 {
		t.Errorf("Expected showdown BB of 2.0, got %f", s.ShowdownBB)
	}
	if s.NonShowdownBB != 1.0 {
		t.Errorf("Expected non-showdown BB of 1.0, got %f", s.NonShowdownBB)
	}
	if !s.IsLedgerBalanced() {
		t.Error("Expected ledger to balance")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Expected valid summary, got error: %v", err)
	}
}

func TestSummary_Statistics(t *testing.T) {
	s := NewSummary()
	values := []float64{1, 2, 3, 4, 5}
	for _, v := range values {
		s.Add(handResult(v, handhistory.MP, false))
	}

	if s.Mean() != 3 {
		t.Errorf("Expected mean of 3, got %f", s.Mean())
	}
	if math.Abs(s.Variance()-2.5) > 1e-9 {
		t.Errorf("Expected variance of 2.5, got %f", s.Variance())
	}
	if s.Median() != 3 {
		t.Errorf("Expected median of 3, got %f", s.Median())
	}
	if s.Percentile(0) != 1 || s.Percentile(1) != 5 {
		t.Errorf("Expected percentile bounds 1 and 5, got %f and %f",
			s.Percentile(0), s.Percentile(1))
	}

	lo, hi := s.ConfidenceInterval95()
	if lo >= s.Mean() || hi <= s.Mean() {
		t.Errorf("Expected CI to bracket the mean, got [%f, %f]", lo, hi)
	}
}

func TestSummary_PreflopRates(t *testing.T) {
	s := NewSummary()

	open := handResult(1.0, handhistory.CO, false)
	open.Preflop.OpenedPot = true
	s.Add(open)

	threeBet := handResult(2.0, handhistory.BTN, false)
	threeBet.Preflop.Had3BetOpportunity = true
	threeBet.Preflop.Did3Bet = true
	s.Add(threeBet)

	folded := handResult(0, handhistory.UTG, false)
	folded.Preflop.Had3BetOpportunity = true
	s.Add(folded)

	if s.OpenRate() != 1.0/3 {
		t.Errorf("Expected open rate of 1/3, got %f", s.OpenRate())
	}
	if s.ThreeBetRate() != 0.5 {
		t.Errorf("Expected 3-bet rate of 0.5, got %f", s.ThreeBetRate())
	}
	if s.VPIPRate() != 2.0/3 {
		t.Errorf("Expected VPIP rate of 2/3, got %f", s.VPIPRate())
	}
}

func TestSummary_ValidateCatchesMismatch(t *testing.T) {
	s := NewSummary()
	s.Add(handResult(1.0, handhistory.CO, false))
	s.ShowdownBB = 99 // corrupt the ledger

	if err := s.Validate(); err == nil {
		t.Error("Expected validation error for corrupted ledger")
	}
}
