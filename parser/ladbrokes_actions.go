package parser

import (
	"regexp"
	"strings"

	handhistory "github.com/lox/handhistory"
)

var (
	lbSmallBlindRe = regexp.MustCompile(`(\S+)\s+posts small blind\s*[\[(]\s*\$?([\d.]+)\s*[\])]`)
	lbBigBlindRe   = regexp.MustCompile(`(\S+)\s+posts big blind\s*[\[(]\s*\$?([\d.]+)\s*[\])]`)
	lbFoldRe       = regexp.MustCompile(`^(\S+)\s+folds`)
	lbCheckRe      = regexp.MustCompile(`^(\S+)\s+checks`)
	lbCallRe       = regexp.MustCompile(`^(\S+)\s+calls\s*\(\s*\$?([\d.]+)\s*\)`)
	lbBetRe        = regexp.MustCompile(`^(\S+)\s+bets\s*\(\s*\$?([\d.]+)\s*\)`)
	lbRaiseRe      = regexp.MustCompile(`^(\S+)\s+raises\s+\$?([\d.]+)\s+to\s+\$?([\d.]+)`)
	lbAllInRe      = regexp.MustCompile(`(?i)all[ -]?in`)
)

// actionState carries the pot and stack bookkeeping threaded through the
// action reconstruction of a single hand.
type actionState struct {
	h        *handhistory.HandHistory
	stacks   map[string]float64
	invested map[string]float64 // per-player money put in on the current street
	pot      float64
	current  float64 // outstanding bet on the current street
	index    int     // globally monotonic action index
}

func newActionState(h *handhistory.HandHistory) *actionState {
	st := &actionState{
		h:        h,
		stacks:   make(map[string]float64, len(h.Seats)),
		invested: make(map[string]float64, len(h.Seats)),
	}
	for _, s := range h.Seats {
		st.stacks[s.Name] = s.Stack
	}
	return st
}

func (st *actionState) seated(name string) bool {
	_, ok := st.stacks[name]
	return ok
}

// newStreet clears the street-scoped bet state. The pot and stacks carry.
func (st *actionState) newStreet() {
	st.current = 0
	st.invested = make(map[string]float64, len(st.stacks))
}

// record appends one action with full before/after bookkeeping. amount is
// the new money the action puts in the pot.
func (st *actionState) record(street handhistory.Street, actor string, kind handhistory.ActionKind, amount, toCall, betTotal float64, allIn bool) {
	a := handhistory.Action{
		Street:       street,
		Index:        st.index,
		Actor:        actor,
		Kind:         kind,
		Amount:       amount,
		ToCallBefore: toCall,
		BetSizeTotal: betTotal,
		StackBefore:  st.stacks[actor],
		PotBefore:    st.pot,
		AllIn:        allIn,
	}
	if kind == handhistory.ActionBet || kind == handhistory.ActionRaise || kind == handhistory.ActionAllIn {
		a.PctPot = pctOfPot(amount, st.pot)
	}
	st.stacks[actor] -= amount
	st.pot += amount
	st.invested[actor] += amount
	a.StackAfter = st.stacks[actor]
	a.PotAfter = st.pot
	st.index++
	st.h.Actions = append(st.h.Actions, a)
}

// postBlinds scans the whole hand for blind posts before any street is
// walked, so the preflop bet level is established regardless of where the
// dialect prints the posts.
func (st *actionState) postBlinds(hand string) {
	if m := lbSmallBlindRe.FindStringSubmatch(hand); m != nil && st.seated(m[1]) {
		amt := mustAmount(m[2])
		st.record(handhistory.Preflop, m[1], handhistory.ActionPostSB, amt, 0, 0, false)
		if amt > st.current {
			st.current = amt
		}
	}
	if m := lbBigBlindRe.FindStringSubmatch(hand); m != nil && st.seated(m[1]) {
		amt := mustAmount(m[2])
		st.record(handhistory.Preflop, m[1], handhistory.ActionPostBB, amt, 0, 0, false)
		if amt > st.current {
			st.current = amt
		}
	}
}

func (d *ladbrokesDialect) ParseActions(hand string, h *handhistory.HandHistory) {
	st := newActionState(h)
	st.postBlinds(hand)

	for _, sec := range lbSections(hand) {
		// Blind state carries into the preflop section only.
		if sec.street != handhistory.Preflop {
			st.newStreet()
		}
		for _, line := range strings.Split(sec.text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.Contains(line, "posts small blind") || strings.Contains(line, "posts big blind") {
				continue
			}
			st.applyLadbrokesLine(sec.street, line)
		}
	}
}

// applyLadbrokesLine matches one action line against the dialect grammar
// and folds it into the state. Non-action lines fall through silently.
func (st *actionState) applyLadbrokesLine(street handhistory.Street, line string) {
	if m := lbFoldRe.FindStringSubmatch(line); m != nil && st.seated(m[1]) {
		toCall := st.current - st.invested[m[1]]
		if toCall < 0 {
			toCall = 0
		}
		st.record(street, m[1], handhistory.ActionFold, 0, toCall, 0, false)
		return
	}
	if m := lbCheckRe.FindStringSubmatch(line); m != nil && st.seated(m[1]) {
		st.record(street, m[1], handhistory.ActionCheck, 0, 0, 0, false)
		st.current = 0
		return
	}
	if m := lbCallRe.FindStringSubmatch(line); m != nil && st.seated(m[1]) {
		amt := mustAmount(m[2])
		toCall := st.current - st.invested[m[1]]
		if toCall < 0 {
			toCall = 0
		}
		st.record(street, m[1], handhistory.ActionCall, amt, toCall, 0, st.stacks[m[1]]-amt <= 0)
		return
	}
	if m := lbRaiseRe.FindStringSubmatch(line); m != nil && st.seated(m[1]) {
		st.applyRaiseTo(street, m[1], mustAmount(m[3]), line)
		return
	}
	if m := lbBetRe.FindStringSubmatch(line); m != nil && st.seated(m[1]) {
		amt := mustAmount(m[2])
		allIn := lbAllInRe.MatchString(line) || st.stacks[m[1]]-amt <= 0
		kind := handhistory.ActionBet
		if allIn {
			kind = handhistory.ActionAllIn
		}
		st.record(street, m[1], kind, amt, 0, amt, allIn)
		if tot := st.invested[m[1]]; tot > st.current {
			st.current = tot
		}
		return
	}
}

// applyRaiseTo books a raise expressed as a total street commitment. The
// new money is the total minus what the raiser already has in on this
// street, which keeps blind posts and prior calls from double-counting.
func (st *actionState) applyRaiseTo(street handhistory.Street, actor string, raiseTo float64, line string) {
	newMoney := raiseTo - st.invested[actor]
	if newMoney < 0 {
		newMoney = 0
	}
	toCall := st.current - st.invested[actor]
	if toCall < 0 {
		toCall = 0
	}
	allIn := lbAllInRe.MatchString(line) || st.stacks[actor]-newMoney <= 0
	kind := handhistory.ActionRaise
	if allIn {
		kind = handhistory.ActionAllIn
	}
	st.record(street, actor, kind, newMoney, toCall, raiseTo, allIn)
	if raiseTo > st.current {
		st.current = raiseTo
	}
}
