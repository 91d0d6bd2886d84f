package cardgame

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Codec bridges the engine's opaque BaseCard/CardState/State interfaces
// to concrete, rules-client-owned types for serialization. The engine
// itself never knows what a BaseCard or CardState actually is, so
// (de)serializing one is necessarily the rules client's job; Codec is
// the seam where that happens, and GameState.Serialize/Deserialize do
// the CBOR framing around it.
type Codec struct {
	MarshalBaseCard   func(BaseCard) ([]byte, error)
	UnmarshalBaseCard func([]byte) (BaseCard, error)

	MarshalCardState   func(CardState) ([]byte, error)
	UnmarshalCardState func([]byte) (CardState, error)

	MarshalState   func(State) ([]byte, error)
	UnmarshalState func([]byte) (State, error)
}

// cardInstanceWire is the CBOR-on-the-wire shape of a CardInstance: the
// opaque base/state payloads are pre-encoded bytes, framed by the codec.
type cardInstanceWire struct {
	ID         InstanceID
	Base       []byte
	Attachment *InstanceID
	State      []byte
}

type poolEntryWire struct {
	IsInstance bool
	Instance   *cardInstanceWire `cbor:",omitempty"`
	Owner      Player            `cbor:",omitempty"`
}

type playerCardsWire struct {
	Deck          int
	Hand          []*InstanceID
	Field         []InstanceID
	Graveyard     []InstanceID
	Dust          []InstanceID
	Limbo         []*InstanceID
	Casting       []InstanceID
	CardSelection int
	Pointers      int
}

// gameStateWire matches spec.md §6's persisted layout: the public pool,
// then each player's PlayerCards in field order, then the
// shuffle-on-insert flag, then the game-specific state.
type gameStateWire struct {
	Pool                []poolEntryWire
	Players             [2]playerCardsWire
	ShuffleDeckOnInsert bool
	State               []byte
}

// Serialize encodes the complete public GameState as CBOR, using codec
// to encode every opaque BaseCard/CardState/State payload it contains.
func (g *GameState) Serialize(codec Codec) ([]byte, error) {
	wire := gameStateWire{
		Pool:                make([]poolEntryWire, len(g.pool)),
		ShuffleDeckOnInsert: g.shuffleDeckOnInsert,
	}

	for i, slot := range g.pool {
		if inst, ok := slot.instance(); ok {
			baseBytes, err := codec.MarshalBaseCard(inst.Base())
			if err != nil {
				return nil, fmt.Errorf("cardgame: marshal base card %d: %w", i, err)
			}
			stateBytes, err := codec.MarshalCardState(inst.State())
			if err != nil {
				return nil, fmt.Errorf("cardgame: marshal card state %d: %w", i, err)
			}
			var attachment *InstanceID
			if att, ok := inst.Attachment(); ok {
				attachment = &att
			}
			wire.Pool[i] = poolEntryWire{
				IsInstance: true,
				Instance: &cardInstanceWire{
					ID:         inst.ID(),
					Base:       baseBytes,
					Attachment: attachment,
					State:      stateBytes,
				},
			}
			continue
		}

		owner, _ := slot.owner()
		wire.Pool[i] = poolEntryWire{IsInstance: false, Owner: owner}
	}

	for p := Player0; p <= Player1; p++ {
		cards := g.Cards(p)
		wire.Players[p] = playerCardsWire{
			Deck:          cards.deck,
			Hand:          cards.hand,
			Field:         cards.field,
			Graveyard:     cards.graveyard,
			Dust:          cards.dust,
			Limbo:         cards.limbo,
			Casting:       cards.casting,
			CardSelection: cards.cardSelection,
			Pointers:      cards.pointers,
		}
	}

	stateBytes, err := codec.MarshalState(g.state)
	if err != nil {
		return nil, fmt.Errorf("cardgame: marshal game state: %w", err)
	}
	wire.State = stateBytes

	return cbor.Marshal(wire)
}

// Deserialize decodes a GameState previously produced by Serialize,
// using codec to decode every opaque payload.
func Deserialize(data []byte, codec Codec) (*GameState, error) {
	var wire gameStateWire
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("cardgame: unmarshal game state: %w", err)
	}

	state, err := codec.UnmarshalState(wire.State)
	if err != nil {
		return nil, fmt.Errorf("cardgame: unmarshal game state payload: %w", err)
	}

	gs := &GameState{
		pool:                make([]instanceSlot, len(wire.Pool)),
		shuffleDeckOnInsert: wire.ShuffleDeckOnInsert,
		state:               state,
	}

	for i, entry := range wire.Pool {
		if !entry.IsInstance {
			gs.pool[i] = secretSlot(entry.Owner)
			continue
		}

		base, err := codec.UnmarshalBaseCard(entry.Instance.Base)
		if err != nil {
			return nil, fmt.Errorf("cardgame: unmarshal base card %d: %w", i, err)
		}
		cardState, err := codec.UnmarshalCardState(entry.Instance.State)
		if err != nil {
			return nil, fmt.Errorf("cardgame: unmarshal card state %d: %w", i, err)
		}

		gs.pool[i] = publicSlot(CardInstance{
			id:         entry.Instance.ID,
			base:       base,
			attachment: entry.Instance.Attachment,
			state:      cardState,
		})
	}

	for p := Player0; p <= Player1; p++ {
		w := wire.Players[p]
		gs.players[p] = PlayerCards{
			deck:          w.Deck,
			hand:          w.Hand,
			field:         w.Field,
			graveyard:     w.Graveyard,
			dust:          w.Dust,
			limbo:         w.Limbo,
			casting:       w.Casting,
			cardSelection: w.CardSelection,
			pointers:      w.Pointers,
		}
	}

	return gs, nil
}
