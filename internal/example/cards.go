// Package example is a minimal rules client exercising the engine
// end-to-end: a two-card duel game with creatures, an equipment
// attachment, and a handful of actions that move, attach, and detach
// cards across every zone the engine knows about.
package example

import "card-movement-simulator"

// Creature is a base card with a name and a starting power. It has no
// built-in attachment.
type Creature struct {
	Name       string
	StartPower int
}

func (c Creature) Attachment() cardgame.BaseCard { return nil }

func (c Creature) NewCardState(parent cardgame.CardState) cardgame.CardState {
	return &CreatureState{Power: c.StartPower}
}

// Equipped is a base card whose every instance is born with a Charm
// attachment riding on it, exercising NewCard's attachment-allocation
// path.
type Equipped struct {
	Name       string
	StartPower int
}

func (c Equipped) Attachment() cardgame.BaseCard { return Charm{} }

func (c Equipped) NewCardState(parent cardgame.CardState) cardgame.CardState {
	return &CreatureState{Power: c.StartPower}
}

// Charm is an attachment base card: a flat power bonus granted to
// whatever it rides on. Its NewCardState reads the parent's power at
// creation time, exercising the parent-state-aware constructor hook.
type Charm struct{}

func (c Charm) Attachment() cardgame.BaseCard { return nil }

func (c Charm) NewCardState(parent cardgame.CardState) cardgame.CardState {
	bonus := 1
	if p, ok := parent.(*CreatureState); ok {
		bonus = p.Power/2 + 1
	}
	return &CharmState{Bonus: bonus}
}

// CreatureState is the mutable power of a Creature or Equipped instance.
type CreatureState struct {
	Power int
}

func (s *CreatureState) Equal(other cardgame.CardState) bool {
	o, ok := other.(*CreatureState)
	return ok && o.Power == s.Power
}

// CharmState is the mutable bonus of a Charm instance.
type CharmState struct {
	Bonus int
}

func (s *CharmState) Equal(other cardgame.CardState) bool {
	o, ok := other.(*CharmState)
	return ok && o.Bonus == s.Bonus
}
