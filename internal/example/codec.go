package example

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	cardgame "card-movement-simulator"
)

// baseCardKind and cardStateKind tag which concrete type a CBOR payload
// decodes to; the engine's Codec only ever sees bytes, so the rules
// client is the only place that needs to know this mapping.
type baseCardKind string

const (
	kindCreature baseCardKind = "creature"
	kindEquipped baseCardKind = "equipped"
	kindCharm    baseCardKind = "charm"
)

type baseCardEnvelope struct {
	Kind     baseCardKind
	Creature *Creature `cbor:",omitempty"`
	Equipped *Equipped `cbor:",omitempty"`
	Charm    *Charm    `cbor:",omitempty"`
}

type cardStateEnvelope struct {
	Creature *CreatureState `cbor:",omitempty"`
	Charm    *CharmState    `cbor:",omitempty"`
}

// Codec returns the cardgame.Codec this package's GameState uses to
// (de)serialize its opaque base cards, card states, and global state.
func Codec() cardgame.Codec {
	return cardgame.Codec{
		MarshalBaseCard:   marshalBaseCard,
		UnmarshalBaseCard: unmarshalBaseCard,

		MarshalCardState:   marshalCardState,
		UnmarshalCardState: unmarshalCardState,

		MarshalState:   marshalState,
		UnmarshalState: unmarshalState,
	}
}

func marshalBaseCard(base cardgame.BaseCard) ([]byte, error) {
	var env baseCardEnvelope
	switch b := base.(type) {
	case Creature:
		env = baseCardEnvelope{Kind: kindCreature, Creature: &b}
	case Equipped:
		env = baseCardEnvelope{Kind: kindEquipped, Equipped: &b}
	case Charm:
		env = baseCardEnvelope{Kind: kindCharm, Charm: &b}
	default:
		return nil, fmt.Errorf("example: unknown base card type %T", base)
	}
	return cbor.Marshal(env)
}

func unmarshalBaseCard(data []byte) (cardgame.BaseCard, error) {
	var env baseCardEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Kind {
	case kindCreature:
		return *env.Creature, nil
	case kindEquipped:
		return *env.Equipped, nil
	case kindCharm:
		return *env.Charm, nil
	default:
		return nil, fmt.Errorf("example: unknown base card kind %q", env.Kind)
	}
}

func marshalCardState(state cardgame.CardState) ([]byte, error) {
	var env cardStateEnvelope
	switch s := state.(type) {
	case *CreatureState:
		env.Creature = s
	case *CharmState:
		env.Charm = s
	default:
		return nil, fmt.Errorf("example: unknown card state type %T", state)
	}
	return cbor.Marshal(env)
}

func unmarshalCardState(data []byte) (cardgame.CardState, error) {
	var env cardStateEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch {
	case env.Creature != nil:
		return env.Creature, nil
	case env.Charm != nil:
		return env.Charm, nil
	default:
		return nil, fmt.Errorf("example: empty card state envelope")
	}
}

func marshalState(state cardgame.State) ([]byte, error) {
	s, ok := state.(*DuelState)
	if !ok {
		return nil, fmt.Errorf("example: unknown game state type %T", state)
	}
	return cbor.Marshal(s)
}

func unmarshalState(data []byte) (cardgame.State, error) {
	var s DuelState
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
