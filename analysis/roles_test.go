package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	handhistory "github.com/lox/handhistory"
)

// preflopHand builds a hand whose preflop actions are the given sequence,
// with indices assigned in order and stakes of 0.05/0.10.
func preflopHand(actions ...handhistory.Action) *handhistory.HandHistory {
	h := &handhistory.HandHistory{StakesSB: 0.05, StakesBB: 0.10}
	for i := range actions {
		actions[i].Street = handhistory.Preflop
		actions[i].Index = i
	}
	h.Actions = actions
	return h
}

func act(actor string, kind handhistory.ActionKind) handhistory.Action {
	return handhistory.Action{Actor: actor, Kind: kind}
}

func call(actor string, toCall float64) handhistory.Action {
	return handhistory.Action{Actor: actor, Kind: handhistory.ActionCall, ToCallBefore: toCall}
}

func TestPreflopRoleScenarios(t *testing.T) {
	hero := handhistory.HeroName
	tests := []struct {
		name string
		hand *handhistory.HandHistory
		role handhistory.Role
	}{
		{
			name: "open raiser",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				act("utg", handhistory.ActionFold),
				act(hero, handhistory.ActionRaise),
			),
			role: handhistory.RoleOpenRaiser,
		},
		{
			name: "iso raiser over a limper",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				call("utg", 0.10),
				act(hero, handhistory.ActionRaise),
			),
			role: handhistory.RoleIsoRaiser,
		},
		{
			name: "3-bettor",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				act("utg", handhistory.ActionRaise),
				act(hero, handhistory.ActionRaise),
			),
			role: handhistory.RoleThreeBettor,
		},
		{
			name: "squeezer",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				act("utg", handhistory.ActionRaise),
				call("mp", 0.30),
				act(hero, handhistory.ActionRaise),
			),
			role: handhistory.RoleSqueezer,
		},
		{
			name: "4-bettor",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				act(hero, handhistory.ActionRaise),
				act("btn", handhistory.ActionRaise),
				act(hero, handhistory.ActionRaise),
			),
			role: handhistory.RoleFourBettor,
		},
		{
			name: "cold caller",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				act("utg", handhistory.ActionRaise),
				call(hero, 0.30),
			),
			role: handhistory.RoleColdCaller,
		},
		{
			// Calling the open outranks the later call of the 3-bet.
			name: "cold caller who also calls a 3-bet",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				act("utg", handhistory.ActionRaise),
				call(hero, 0.30),
				act("btn", handhistory.ActionRaise),
				call(hero, 0.60),
			),
			role: handhistory.RoleColdCaller,
		},
		{
			name: "caller vs 3-bet",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				act("utg", handhistory.ActionRaise),
				act("btn", handhistory.ActionRaise),
				call(hero, 0.90),
			),
			role: handhistory.RoleCallerVs3Bet,
		},
		{
			name: "limper gets no role",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				call(hero, 0.10),
			),
			role: "",
		},
		{
			name: "folding gets no role",
			hand: preflopHand(
				act("sb", handhistory.ActionPostSB),
				act("bb", handhistory.ActionPostBB),
				act("utg", handhistory.ActionRaise),
				act(hero, handhistory.ActionFold),
			),
			role: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := PreflopRoles(tt.hand)
			assert.Equal(t, tt.role, roles.Role)
		})
	}
}

func TestPreflopFlags(t *testing.T) {
	hero := handhistory.HeroName

	t.Run("3-bet sets did flags", func(t *testing.T) {
		roles := PreflopRoles(preflopHand(
			act("utg", handhistory.ActionRaise),
			act(hero, handhistory.ActionRaise),
		))
		assert.True(t, roles.Did3Bet)
		assert.False(t, roles.Did4Bet)
		assert.True(t, roles.FacedOpenRaise)
		assert.Equal(t, hero, roles.Aggressor)
	})

	t.Run("folding to a raise records the opportunity", func(t *testing.T) {
		roles := PreflopRoles(preflopHand(
			act("utg", handhistory.ActionRaise),
			act(hero, handhistory.ActionFold),
		))
		assert.True(t, roles.Had3BetOpportunity)
		assert.False(t, roles.Had4BetOpportunity)
		assert.False(t, roles.Did3Bet)
	})

	t.Run("facing a 3-bet records the 4-bet opportunity", func(t *testing.T) {
		roles := PreflopRoles(preflopHand(
			act("utg", handhistory.ActionRaise),
			act("btn", handhistory.ActionRaise),
			act(hero, handhistory.ActionFold),
		))
		assert.True(t, roles.Faced3Bet)
		assert.True(t, roles.Had4BetOpportunity)
	})

	t.Run("limp is detected only without a raise in front", func(t *testing.T) {
		limp := PreflopRoles(preflopHand(call(hero, 0.10)))
		assert.True(t, limp.Limped)

		noLimp := PreflopRoles(preflopHand(
			act("utg", handhistory.ActionRaise),
			call(hero, 0.30),
		))
		assert.False(t, noLimp.Limped)
	})

	t.Run("small blind completing the blind is a limp", func(t *testing.T) {
		roles := PreflopRoles(preflopHand(
			act(hero, handhistory.ActionPostSB),
			act("bb", handhistory.ActionPostBB),
			call(hero, 0.05),
		))
		assert.True(t, roles.Limped)
	})

	t.Run("empty preflop yields zero flags", func(t *testing.T) {
		roles := PreflopRoles(&handhistory.HandHistory{})
		assert.Equal(t, handhistory.PreflopRoles{}, roles)
	})
}

// Exactly one role (or none) may apply, whatever the action sequence.
func TestRoleExclusivity(t *testing.T) {
	hero := handhistory.HeroName
	hands := []*handhistory.HandHistory{
		preflopHand(act(hero, handhistory.ActionRaise)),
		preflopHand(call("utg", 0.10), act(hero, handhistory.ActionRaise)),
		preflopHand(act("utg", handhistory.ActionRaise), act(hero, handhistory.ActionRaise)),
		preflopHand(act("utg", handhistory.ActionRaise), call("mp", 0.30), act(hero, handhistory.ActionRaise)),
		preflopHand(act(hero, handhistory.ActionRaise), act("btn", handhistory.ActionRaise), act(hero, handhistory.ActionRaise)),
		preflopHand(act("utg", handhistory.ActionRaise), call(hero, 0.30)),
		preflopHand(act("utg", handhistory.ActionRaise), act("btn", handhistory.ActionRaise), call(hero, 0.90)),
		preflopHand(act("utg", handhistory.ActionRaise), call(hero, 0.30), act("btn", handhistory.ActionRaise), call(hero, 0.60)),
	}
	valid := map[handhistory.Role]bool{
		"": true,
		handhistory.RoleOpenRaiser:   true,
		handhistory.RoleIsoRaiser:    true,
		handhistory.RoleThreeBettor:  true,
		handhistory.RoleSqueezer:     true,
		handhistory.RoleFourBettor:   true,
		handhistory.RoleColdCaller:   true,
		handhistory.RoleCallerVs3Bet: true,
	}
	for i, h := range hands {
		roles := PreflopRoles(h)
		assert.True(t, valid[roles.Role], "hand %d produced unknown role %q", i, roles.Role)
	}
}
