package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handhistory "github.com/lox/handhistory"
)

const ladbrokesHand = `***** Hand History For Game 1234567890 *****
$0.05/$0.10 Texas Holdem Game Table (NL) - Sat Aug 29 21:14:03 GMT 2026
Table Dublin (Real Money)
Seat 3 is the button
Total number of players : 6/6
Seat 1: alice ( $10.00 )
Seat 2: bob ( $9.50 )
Seat 3: carol ( $12.25 )
Seat 4: dave ( $10.00 )
Seat 5: Hero ( $10.00 )
Seat 6: frank ( $8.00 )
dave posts small blind ($0.05)
Hero posts big blind ($0.10)
** Dealing down cards **
Dealt to Hero [ Ah, Kh ]
frank folds
alice calls ($0.10)
bob folds
carol folds
dave folds
Hero raises $0.40 to $0.50
alice calls ($0.40)
** Dealing Flop ** [ Ad, 7c, 2s ]
Hero bets ($0.60)
alice calls ($0.60)
** Dealing Turn ** [ Qh ]
Hero checks
alice checks
** Dealing River ** [ 2d ]
Hero bets ($1.20)
alice calls ($1.20)
** Summary **
Main Pot: $4.65 | Rake: $0.20
Board: [ Ad, 7c, 2s, Qh, 2d ]
alice balance $7.70, lost $2.30 [ Qs, Jd ] [ a pair of queens ]
bob balance $9.50, didn't bet (folded)
carol balance $12.25, didn't bet (folded)
dave balance $9.95, lost $0.05
Hero balance $12.15, bet $2.30, collected $4.45, net +$2.15 [ Ah, Kh ] [ two pairs, aces and deuces ]
frank balance $8.00, didn't bet (folded)
`

func parseOneLadbrokes(t *testing.T, raw string) *handhistory.HandHistory {
	t.Helper()
	res, err := Parse(raw, SiteLadbrokes, nil)
	require.NoError(t, err)
	require.Len(t, res.Hands, 1)
	return res.Hands[0]
}

func TestLadbrokesHeader(t *testing.T) {
	h := parseOneLadbrokes(t, ladbrokesHand)

	assert.Equal(t, "1234567890", h.HandID)
	assert.Equal(t, "Ladbrokes", h.Site)
	assert.Equal(t, "Dublin", h.TableName)
	assert.Equal(t, "Texas Hold'em", h.GameType)
	assert.Equal(t, "NL", h.LimitType)
	assert.Equal(t, "USD", h.Currency)
	assert.InDelta(t, 0.05, h.StakesSB, 1e-9)
	assert.InDelta(t, 0.10, h.StakesBB, 1e-9)
	assert.Equal(t, 3, h.ButtonSeat)
	assert.Equal(t, 6, h.PlayersDealtIn)
	assert.Equal(t, 6, h.MaxPlayers)
	require.False(t, h.Timestamp.IsZero())
	assert.Equal(t, 2026, h.Timestamp.Year())
}

func TestLadbrokesSeatsAndCards(t *testing.T) {
	h := parseOneLadbrokes(t, ladbrokesHand)

	require.Len(t, h.Seats, 6)
	hero := h.Hero()
	require.NotNil(t, hero)
	assert.Equal(t, 5, hero.Seat)
	assert.InDelta(t, 10.00, hero.Stack, 1e-9)

	assert.Equal(t, "Ah", h.HeroCard1)
	assert.Equal(t, "Kh", h.HeroCard2)
	assert.Equal(t, []string{"Ad", "7c", "2s"}, h.FlopCards)
	assert.Equal(t, "Qh", h.TurnCard)
	assert.Equal(t, "2d", h.RiverCard)
	assert.Equal(t, []string{"Ad", "7c", "2s", "Qh", "2d"}, h.BoardFinal)
}

func TestLadbrokesActionAccounting(t *testing.T) {
	h := parseOneLadbrokes(t, ladbrokesHand)

	require.Len(t, h.Actions, 15)

	// Indices are globally monotonic and bookkeeping chains exactly.
	for i, a := range h.Actions {
		assert.Equal(t, i, a.Index)
		assert.InDelta(t, a.PotBefore+a.Amount, a.PotAfter, 1e-9, "action %d", i)
		assert.InDelta(t, a.StackBefore-a.Amount, a.StackAfter, 1e-9, "action %d", i)
		if i > 0 {
			assert.InDelta(t, h.Actions[i-1].PotAfter, a.PotBefore, 1e-9, "action %d", i)
		}
	}

	// Hero's raise-to 0.50 on top of the posted big blind is 0.40 new
	// money, and with only a limp in front there was nothing left to call.
	var raise *handhistory.Action
	for i := range h.Actions {
		if h.Actions[i].Kind == handhistory.ActionRaise {
			raise = &h.Actions[i]
			break
		}
	}
	require.NotNil(t, raise)
	assert.Equal(t, handhistory.HeroName, raise.Actor)
	assert.InDelta(t, 0.40, raise.Amount, 1e-9)
	assert.InDelta(t, 0.50, raise.BetSizeTotal, 1e-9)
	assert.InDelta(t, 0, raise.ToCallBefore, 1e-9)

	// Pot conservation: the reconstructed pot equals the summary pot.
	last := h.Actions[len(h.Actions)-1]
	assert.InDelta(t, h.FinalPot, last.PotAfter, 1e-6)
}

func TestLadbrokesSummary(t *testing.T) {
	h := parseOneLadbrokes(t, ladbrokesHand)

	assert.InDelta(t, 4.65, h.FinalPot, 1e-9)
	assert.InDelta(t, 0.20, h.Rake, 1e-9)
	require.Len(t, h.PlayerResults, 6)

	res := h.HeroResult()
	require.NotNil(t, res)
	assert.InDelta(t, 2.15, res.Net, 1e-9)
	assert.InDelta(t, 2.30, res.Contributed, 1e-9)
	assert.InDelta(t, 12.15, res.EndingStack, 1e-9)
	assert.True(t, res.WonPot)
	assert.True(t, res.ShowedDown)
	assert.Equal(t, []string{"Ah", "Kh"}, res.Cards)
	assert.Equal(t, "two pairs, aces and deuces", res.HandDesc)
}

func TestLadbrokesDerived(t *testing.T) {
	h := parseOneLadbrokes(t, ladbrokesHand)

	assert.Equal(t, handhistory.BB, h.HeroPosition)
	assert.Equal(t, handhistory.BB, h.HeroPositionRaw)

	// Hero raised over a single limper: iso-raise, not a plain open.
	assert.True(t, h.Preflop.OpenedPot)
	assert.Equal(t, handhistory.RoleIsoRaiser, h.Preflop.Role)
	assert.Equal(t, handhistory.HeroName, h.Preflop.Aggressor)

	assert.True(t, h.VPIP)
	assert.InDelta(t, 2.15, h.HeroNetChips, 1e-9)
	assert.InDelta(t, 21.5, h.HeroNetBB, 1e-6)
	assert.True(t, h.HeroWentToShowdown)
	assert.True(t, h.HeroWonAtShowdown)
	assert.False(t, h.HeroWonWithoutShowdown)

	assert.True(t, h.FlopMetrics.HeroSaw)
	assert.Equal(t, 2, h.FlopMetrics.PlayersSaw)
	assert.Equal(t, "first_to_act", h.FlopMetrics.RelativeOrder)
	assert.True(t, h.RiverMetrics.HeroSaw)
}

func TestLadbrokesBalanceGrammars(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		net         float64
		contributed float64
		showedDown  bool
	}{
		{
			name: "explicit net",
			line: "alice balance $12.00, bet $1.00, collected $3.00, net +$2.00",
			net:  2.00, contributed: 1.00,
		},
		{
			name: "negative net",
			line: "alice balance $9.00, net -$1.00",
			net:  -1.00,
		},
		{
			name: "bet and collected",
			line: "alice balance $11.50, bet $0.50, collected $2.00",
			net:  1.50, contributed: 0.50,
		},
		{
			name: "bet only",
			line: "alice balance $9.40, bet $0.60",
			net:  -0.60, contributed: 0.60,
		},
		{
			name: "lost",
			line: "alice balance $8.00, lost $2.00",
			net:  -2.00, contributed: 2.00,
		},
		{
			name: "didn't bet",
			line: "alice balance $10.00, didn't bet (folded)",
			net:  0,
		},
		{
			name: "showdown cards",
			line: "alice balance $8.00, lost $2.00 [ Qs, Jd ] [ a pair of queens ]",
			net:  -2.00, contributed: 2.00, showedDown: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr, ok := parseBalanceLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, "alice", pr.Name)
			assert.InDelta(t, tt.net, pr.Net, 1e-9)
			assert.InDelta(t, tt.contributed, pr.Contributed, 1e-9)
			assert.Equal(t, tt.showedDown, pr.ShowedDown)
		})
	}
}

func TestLadbrokesValidate(t *testing.T) {
	d := &ladbrokesDialect{}

	assert.NoError(t, d.Validate(ladbrokesHand))

	noSummary := "***** Hand History For Game 1 *****\n$0.05/$0.10 Texas Holdem Game Table (NL) - x\nTotal number of players : 6/6\n** Dealing down cards **\n"
	err := d.Validate(noSummary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summary")

	noDeal := "***** Hand History For Game 1 *****\n$0.05/$0.10 Texas Holdem Game Table (NL) - x\nTotal number of players : 6/6\n** Summary **\n"
	err = d.Validate(noDeal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deal")
}

func TestLadbrokesSplitHands(t *testing.T) {
	d := &ladbrokesDialect{}
	hands := d.SplitHands(ladbrokesHand + "\n" + ladbrokesHand)
	assert.Len(t, hands, 2)
	assert.Empty(t, d.SplitHands("no markers here"))
}
