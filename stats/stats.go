// Package stats aggregates parsed hand histories into session-level
// summaries: winrate in big blinds with uncertainty bounds, showdown
// splits and preflop frequency metrics keyed by position.
package stats

import (
	"fmt"
	"math"
	"sort"

	handhistory "github.com/lox/handhistory"
)

// PositionStats tracks winrate accumulators for one table position.
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	VPIP   int
	Opens  int
}

// Summary tracks comprehensive statistics over a batch of hands.
type Summary struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // sum of squares for variance calculation
	Values []float64 // all values, for median/percentile calculation

	// Preflop frequencies
	VPIPHands     int // hands where Hero voluntarily put money in
	OpenRaises    int // hands where Hero open-raised or iso-raised
	ThreeBets     int
	ThreeBetOpps  int
	FourBets      int
	FourBetOpps   int
	LimpedHands   int

	// Track ALL results, not just wins
	ShowdownWins    int     // hands won at showdown
	NonShowdownWins int     // hands won without showdown (fold equity)
	ShowdownBB      float64 // BB from showdown (wins AND losses)
	NonShowdownBB   float64 // BB from fold equity (wins AND losses)
	AllBB           float64 // total BB for sanity check

	// Position analytics, keyed by corrected position
	Positions map[handhistory.Position]*PositionStats
}

// NewSummary builds an empty summary.
func NewSummary() *Summary {
	return &Summary{Positions: make(map[handhistory.Position]*PositionStats)}
}

// Collect aggregates a whole batch.
func Collect(hands []*handhistory.HandHistory) *Summary {
	s := NewSummary()
	for _, h := range hands {
		s.Add(h)
	}
	return s
}

// Add incorporates one parsed hand into the summary.
func (s *Summary) Add(h *handhistory.HandHistory) {
	netBB := h.HeroNetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if h.VPIP {
		s.VPIPHands++
	}
	if h.Preflop.OpenedPot {
		s.OpenRaises++
	}
	if h.Preflop.Limped {
		s.LimpedHands++
	}
	// Taking the action implies having had the opportunity.
	if h.Preflop.Had3BetOpportunity || h.Preflop.Did3Bet {
		s.ThreeBetOpps++
		if h.Preflop.Did3Bet {
			s.ThreeBets++
		}
	}
	if h.Preflop.Had4BetOpportunity || h.Preflop.Did4Bet {
		s.FourBetOpps++
		if h.Preflop.Did4Bet {
			s.FourBets++
		}
	}

	if netBB > 0 {
		if h.HeroWentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if h.HeroWentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if pos := h.HeroPosition; pos != "" {
		ps := s.Positions[pos]
		if ps == nil {
			ps = &PositionStats{}
			s.Positions[pos] = ps
		}
		ps.Hands++
		ps.SumBB += netBB
		ps.SumBB2 += netBB * netBB
		if h.VPIP {
			ps.VPIP++
		}
		if h.Preflop.OpenedPot {
			ps.Opens++
		}
	}
}

// Mean returns the arithmetic mean winrate in big blinds per hand.
func (s *Summary) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of the per-hand results.
func (s *Summary) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Summary) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-hand result.
func (s *Summary) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// linearly interpolated.
func (s *Summary) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// VPIPRate returns the fraction of hands Hero voluntarily entered.
func (s *Summary) VPIPRate() float64 { return rate(s.VPIPHands, s.Hands) }

// OpenRate returns the fraction of hands Hero opened the pot.
func (s *Summary) OpenRate() float64 { return rate(s.OpenRaises, s.Hands) }

// ThreeBetRate returns 3-bets per 3-bet opportunity.
func (s *Summary) ThreeBetRate() float64 { return rate(s.ThreeBets, s.ThreeBetOpps) }

// FourBetRate returns 4-bets per 4-bet opportunity.
func (s *Summary) FourBetRate() float64 { return rate(s.FourBets, s.FourBetOpps) }

func rate(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of)
}

// PositionVPIPRate returns the VPIP frequency for one position.
func (s *Summary) PositionVPIPRate(pos handhistory.Position) float64 {
	ps := s.Positions[pos]
	if ps == nil {
		return 0
	}
	return rate(ps.VPIP, ps.Hands)
}

// PositionOpenRate returns the raise-first-in frequency for one position.
// Meaningless for the big blind, which can never open.
func (s *Summary) PositionOpenRate(pos handhistory.Position) float64 {
	ps := s.Positions[pos]
	if ps == nil {
		return 0
	}
	return rate(ps.Opens, ps.Hands)
}

// PositionMean returns the mean winrate for one position.
func (s *Summary) PositionMean(pos handhistory.Position) float64 {
	ps := s.Positions[pos]
	if ps == nil || ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced checks that the showdown split accounts for the total.
func (s *Summary) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks the summary's internal accounting.
func (s *Summary) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if totalWins := s.ShowdownWins + s.NonShowdownWins; totalWins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", totalWins, s.Hands)
	}
	if s.VPIPHands > s.Hands {
		return fmt.Errorf("VPIP hands (%d) exceeds total hands (%d)", s.VPIPHands, s.Hands)
	}
	positionHands := 0
	for _, ps := range s.Positions {
		positionHands += ps.Hands
	}
	if positionHands > s.Hands {
		return fmt.Errorf("position hands total (%d) exceeds total hands (%d)", positionHands, s.Hands)
	}
	return nil
}
