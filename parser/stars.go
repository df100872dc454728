package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	handhistory "github.com/lox/handhistory"
)

const (
	psHandStart      = "PokerStars Hand #"
	psHoleMarker     = "*** HOLE CARDS ***"
	psFlopMarker     = "*** FLOP ***"
	psTurnMarker     = "*** TURN ***"
	psRiverMarker    = "*** RIVER ***"
	psShowdownMarker = "*** SHOW DOWN ***"
	psSummaryMarker  = "*** SUMMARY ***"
)

const psTimestampLayout = "2006/01/02 15:04:05"

var (
	psHandIDRe    = regexp.MustCompile(`PokerStars Hand #(\d+)`)
	psStakesRe    = regexp.MustCompile(`\(\s*\$?([\d.]+)\s*/\s*\$?([\d.]+)\s*(USD|EUR|GBP)?\s*\)`)
	psTimestampRe = regexp.MustCompile(`(\d{4}/\d{2}/\d{2})\s+(\d{1,2}:\d{2}:\d{2})`)
	psTableRe     = regexp.MustCompile(`Table '([^']+)'\s+(\d+)-max`)
	psButtonRe    = regexp.MustCompile(`Seat #(\d+) is the button`)
	psSeatRe      = regexp.MustCompile(`(?m)^Seat (\d+): (.+?) \(\$?([\d.]+) in chips\)`)
	psDealtRe     = regexp.MustCompile(`Dealt to (.+?) \[`)
	psHoleRe      = regexp.MustCompile(`Dealt to Hero \[(\S+)\s+(\S+)\]`)
	psFlopRe      = regexp.MustCompile(`\*\*\* FLOP \*\*\* \[(\S+)\s+(\S+)\s+(\S+)\]`)
	psTurnRe      = regexp.MustCompile(`\*\*\* TURN \*\*\* \[[^\]]+\] \[(\S+)\]`)
	psRiverRe     = regexp.MustCompile(`\*\*\* RIVER \*\*\* \[[^\]]+\] \[(\S+)\]`)
	psBoardRe     = regexp.MustCompile(`Board \[([^\]]+)\]`)
)

// starsDialect parses the PokerStars cash-game format. The named hero
// player is substituted for the canonical Hero alias before any section
// runs, so downstream parsing is alias-free.
type starsDialect struct {
	heroAlias string
}

func (d *starsDialect) Site() Site { return SitePokerStars }

// DetectHeroAlias finds the player the transcript was dealt to. Used when
// no alias is configured.
func DetectHeroAlias(raw string) (string, bool) {
	m := psDealtRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func (d *starsDialect) SplitHands(raw string) []string {
	parts := strings.Split(raw, psHandStart)
	hands := make([]string, 0, len(parts))
	for i, p := range parts {
		// parts[0] is whatever precedes the first marker, not a hand.
		if i == 0 || strings.TrimSpace(p) == "" {
			continue
		}
		hand := psHandStart + p
		if d.heroAlias != "" && d.heroAlias != handhistory.HeroName {
			hand = strings.ReplaceAll(hand, d.heroAlias, handhistory.HeroName)
		}
		hands = append(hands, hand)
	}
	return hands
}

func (d *starsDialect) Validate(hand string) error {
	header, _, _ := strings.Cut(hand, "\n")
	if strings.Contains(header, "Tournament") {
		return fmt.Errorf("tournament hands are not supported")
	}
	if m := psTableRe.FindStringSubmatch(hand); m == nil {
		return fmt.Errorf("missing table line")
	} else if max, _ := strconv.Atoi(m[2]); max > 6 {
		return fmt.Errorf("table larger than 6-max (%d seats)", max)
	}
	if !strings.Contains(hand, psHoleMarker) {
		return fmt.Errorf("hand never reached the deal")
	}
	if !strings.Contains(hand, psSummaryMarker) {
		return fmt.Errorf("hand has no summary section")
	}
	if !strings.Contains(hand, "Dealt to "+handhistory.HeroName+" ") {
		return fmt.Errorf("hero was not dealt in")
	}
	return nil
}

func (d *starsDialect) ParseHeader(hand string, h *handhistory.HandHistory) {
	h.Site = d.Site().String()
	h.GameType = "Texas Hold'em"
	h.Currency = "USD"
	h.LimitType = "NL"
	h.RawHeaderLine, _, _ = strings.Cut(strings.TrimSpace(hand), "\n")

	if m := psHandIDRe.FindStringSubmatch(hand); m != nil {
		h.HandID = m[1]
	}
	if m := psStakesRe.FindStringSubmatch(hand); m != nil {
		h.StakesSB = mustAmount(m[1])
		h.StakesBB = mustAmount(m[2])
		if m[3] != "" {
			h.Currency = m[3]
		}
	}
	if m := psTimestampRe.FindStringSubmatch(hand); m != nil {
		if ts, err := time.Parse(psTimestampLayout, m[1]+" "+m[2]); err == nil {
			h.Timestamp = ts
		}
	}
	if m := psTableRe.FindStringSubmatch(hand); m != nil {
		h.TableName = m[1]
		h.MaxPlayers, _ = strconv.Atoi(m[2])
	}
	if m := psButtonRe.FindStringSubmatch(hand); m != nil {
		h.ButtonSeat, _ = strconv.Atoi(m[1])
	}
	if !strings.Contains(h.RawHeaderLine, "No Limit") {
		if strings.Contains(h.RawHeaderLine, "Pot Limit") {
			h.LimitType = "PL"
		} else if strings.Contains(h.RawHeaderLine, "Limit") {
			h.LimitType = "FL"
		}
	}
	h.PlayersDealtIn = len(d.ParseSeats(hand))
}

func (d *starsDialect) ParseSeats(hand string) []handhistory.SeatInfo {
	// Only the pre-summary seat listing counts; summary seat lines use a
	// different shape and never match "in chips".
	seats := make([]handhistory.SeatInfo, 0, 6)
	for _, line := range strings.Split(hand, "\n") {
		if strings.Contains(line, "is sitting out") || strings.Contains(line, "out of hand") {
			continue
		}
		m := psSeatRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		seat, _ := strconv.Atoi(m[1])
		name := strings.TrimSpace(m[2])
		seats = append(seats, handhistory.SeatInfo{
			Seat:   seat,
			Name:   name,
			Stack:  mustAmount(m[3]),
			IsHero: name == handhistory.HeroName,
		})
	}
	return seats
}

func (d *starsDialect) ParseHoleCards(hand string) (string, string) {
	if m := psHoleRe.FindStringSubmatch(hand); m != nil {
		return m[1], m[2]
	}
	return "", ""
}

func (d *starsDialect) ParseBoard(hand string, h *handhistory.HandHistory) {
	if m := psFlopRe.FindStringSubmatch(hand); m != nil {
		h.FlopCards = []string{m[1], m[2], m[3]}
	}
	if m := psTurnRe.FindStringSubmatch(hand); m != nil {
		h.TurnCard = m[1]
	}
	if m := psRiverRe.FindStringSubmatch(hand); m != nil {
		h.RiverCard = m[1]
	}
	h.BoardAll = append([]string{}, h.FlopCards...)
	if h.TurnCard != "" {
		h.BoardAll = append(h.BoardAll, h.TurnCard)
	}
	if h.RiverCard != "" {
		h.BoardAll = append(h.BoardAll, h.RiverCard)
	}
	if m := psBoardRe.FindStringSubmatch(hand); m != nil {
		h.BoardFinal = splitCards(m[1])
	} else if len(h.BoardAll) > 0 {
		h.BoardFinal = append([]string{}, h.BoardAll...)
	}
}
