package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	handhistory "github.com/lox/handhistory"
)

// Section markers of the Ladbrokes dialect.
const (
	lbHandStart     = "***** Hand History For Game"
	lbDealMarker    = "** Dealing down cards **"
	lbFlopMarker    = "** Dealing Flop **"
	lbTurnMarker    = "** Dealing Turn **"
	lbRiverMarker   = "** Dealing River **"
	lbSummaryMarker = "** Summary **"
)

// lbTimestampLayout matches "Sat Aug 29 21:14:03 CEST 2026" style lines.
const lbTimestampLayout = "Mon Jan 2 15:04:05 MST 2006"

var (
	lbHandIDRe    = regexp.MustCompile(`\*{5} Hand History For Game (\S+)`)
	lbTimestampRe = regexp.MustCompile(`\w{3} \w{3} \d{1,2} \d{2}:\d{2}:\d{2} \w+ \d{4}`)
	lbGameLineRe  = regexp.MustCompile(`(?m)^\$?(\d+(?:\.\d+)?)/\$?(\d+(?:\.\d+)?)\s+(.+?)\s+Game Table\s+\(([A-Z]+)\)`)
	lbTableRe     = regexp.MustCompile(`(?m)^Table\s+(\S+)`)
	lbPlayersRe   = regexp.MustCompile(`Total number of players\s*:\s*(\d+)\s*/\s*(\d+)`)
	lbButtonRe    = regexp.MustCompile(`Seat (\d+) is the button`)
	lbSeatRe      = regexp.MustCompile(`(?m)^Seat (\d+):\s*(\S+)\s*\(\s*\$?([\d.]+)\s*\)`)
	lbHoleRe      = regexp.MustCompile(`Dealt to Hero\s*\[\s*([^\s,\]]+)\s*,\s*([^\s,\]]+)\s*\]`)
	lbFlopRe      = regexp.MustCompile(`\*\* Dealing Flop \*\*\s*:?\s*\[\s*([^\s,\]]+)\s*,\s*([^\s,\]]+)\s*,\s*([^\s,\]]+)\s*\]`)
	lbTurnRe      = regexp.MustCompile(`\*\* Dealing Turn \*\*\s*:?\s*\[\s*([^\s,\]]+)\s*\]`)
	lbRiverRe     = regexp.MustCompile(`\*\* Dealing River \*\*\s*:?\s*\[\s*([^\s,\]]+)\s*\]`)
	lbBoardRe     = regexp.MustCompile(`Board:\s*\[([^\]]+)\]`)
)

type ladbrokesDialect struct{}

func (d *ladbrokesDialect) Site() Site { return SiteLadbrokes }

func (d *ladbrokesDialect) SplitHands(raw string) []string {
	parts := strings.Split(raw, lbHandStart)
	hands := make([]string, 0, len(parts))
	for i, p := range parts {
		// parts[0] is whatever precedes the first marker, not a hand.
		if i == 0 || strings.TrimSpace(p) == "" {
			continue
		}
		hands = append(hands, lbHandStart+p)
	}
	return hands
}

func (d *ladbrokesDialect) Validate(hand string) error {
	if !strings.Contains(hand, lbDealMarker) {
		return fmt.Errorf("hand never reached the deal")
	}
	if !strings.Contains(hand, lbSummaryMarker) {
		return fmt.Errorf("hand has no summary section")
	}
	if !lbGameLineRe.MatchString(hand) {
		return fmt.Errorf("missing or malformed game line")
	}
	m := lbPlayersRe.FindStringSubmatch(hand)
	if m == nil {
		return fmt.Errorf("missing player-count line")
	}
	if max, _ := strconv.Atoi(m[2]); max > 6 {
		return fmt.Errorf("table larger than 6-max (%d seats)", max)
	}
	return nil
}

func (d *ladbrokesDialect) ParseHeader(hand string, h *handhistory.HandHistory) {
	h.Site = d.Site().String()
	h.Currency = "USD"

	if m := lbHandIDRe.FindStringSubmatch(hand); m != nil {
		h.HandID = m[1]
	}
	if m := lbTimestampRe.FindString(hand); m != "" {
		if ts, err := time.Parse(lbTimestampLayout, m); err == nil {
			h.Timestamp = ts
		}
	}
	if m := lbGameLineRe.FindStringSubmatch(hand); m != nil {
		h.StakesSB = mustAmount(m[1])
		h.StakesBB = mustAmount(m[2])
		if strings.Contains(m[3], "Texas Holdem") {
			h.GameType = "Texas Hold'em"
		} else {
			h.GameType = m[3]
		}
		switch m[4] {
		case "FL":
			h.LimitType = "FL"
		case "PL":
			h.LimitType = "PL"
		default:
			h.LimitType = "NL"
		}
		h.RawHeaderLine = strings.TrimSpace(lbGameLineRe.FindString(hand))
	}
	if m := lbTableRe.FindStringSubmatch(hand); m != nil {
		h.TableName = m[1]
	}
	h.PlayersDealtIn, h.MaxPlayers = 6, 6
	if m := lbPlayersRe.FindStringSubmatch(hand); m != nil {
		h.PlayersDealtIn, _ = strconv.Atoi(m[1])
		h.MaxPlayers, _ = strconv.Atoi(m[2])
	}
	if m := lbButtonRe.FindStringSubmatch(hand); m != nil {
		h.ButtonSeat, _ = strconv.Atoi(m[1])
	}
}

func (d *ladbrokesDialect) ParseSeats(hand string) []handhistory.SeatInfo {
	seats := make([]handhistory.SeatInfo, 0, 6)
	for _, line := range strings.Split(hand, "\n") {
		if strings.Contains(line, "is sitting out") {
			continue
		}
		m := lbSeatRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		seat, _ := strconv.Atoi(m[1])
		seats = append(seats, handhistory.SeatInfo{
			Seat:   seat,
			Name:   m[2],
			Stack:  mustAmount(m[3]),
			IsHero: m[2] == handhistory.HeroName,
		})
	}
	return seats
}

func (d *ladbrokesDialect) ParseHoleCards(hand string) (string, string) {
	if m := lbHoleRe.FindStringSubmatch(hand); m != nil {
		return m[1], m[2]
	}
	return "", ""
}

func (d *ladbrokesDialect) ParseBoard(hand string, h *handhistory.HandHistory) {
	if m := lbFlopRe.FindStringSubmatch(hand); m != nil {
		h.FlopCards = []string{m[1], m[2], m[3]}
	}
	if m := lbTurnRe.FindStringSubmatch(hand); m != nil {
		h.TurnCard = m[1]
	}
	if m := lbRiverRe.FindStringSubmatch(hand); m != nil {
		h.RiverCard = m[1]
	}
	h.BoardAll = append([]string{}, h.FlopCards...)
	if h.TurnCard != "" {
		h.BoardAll = append(h.BoardAll, h.TurnCard)
	}
	if h.RiverCard != "" {
		h.BoardAll = append(h.BoardAll, h.RiverCard)
	}
	if m := lbBoardRe.FindStringSubmatch(hand); m != nil {
		h.BoardFinal = splitCards(m[1])
	} else if len(h.BoardAll) > 0 {
		h.BoardFinal = append([]string{}, h.BoardAll...)
	}
}

// streetSection is one dealt street's slice of the hand text.
type streetSection struct {
	street handhistory.Street
	text   string
}

// lbSections cuts the hand into per-street action sections. A street that
// was never dealt simply does not appear.
func lbSections(hand string) []streetSection {
	type marker struct {
		street handhistory.Street
		tag    string
	}
	markers := []marker{
		{handhistory.Preflop, lbDealMarker},
		{handhistory.Flop, lbFlopMarker},
		{handhistory.Turn, lbTurnMarker},
		{handhistory.River, lbRiverMarker},
	}
	var sections []streetSection
	rest := hand
	for i, mk := range markers {
		idx := strings.Index(rest, mk.tag)
		if idx < 0 {
			continue
		}
		body := rest[idx+len(mk.tag):]
		end := len(body)
		for _, next := range markers[i+1:] {
			if j := strings.Index(body, next.tag); j >= 0 && j < end {
				end = j
			}
		}
		if j := strings.Index(body, lbSummaryMarker); j >= 0 && j < end {
			end = j
		}
		sections = append(sections, streetSection{mk.street, body[:end]})
		rest = body
	}
	return sections
}
