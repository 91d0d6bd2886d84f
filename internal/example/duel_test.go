package example_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardgame "card-movement-simulator"
	"card-movement-simulator/internal/example"
)

func newDuel(seed int64) (*cardgame.CardGame, *example.LocalGame) {
	transport := example.NewLocalGame(seed)
	state := cardgame.NewGameState(example.NewDuelState(), false)
	game := cardgame.NewCardGame(state, transport, cardgame.NewConfig())
	return game, transport
}

func TestDuelRulesApplyDraw(t *testing.T) {
	game, transport := newDuel(1)
	rules := example.DuelRules{}

	id := game.NewCard(cardgame.Player0, example.Creature{Name: "squire", StartPower: 2})
	_, _, err := game.MoveCard(cardgame.CardID(id), cardgame.Player0, cardgame.ZoneDeck())
	require.NoError(t, err)

	err = rules.Apply(context.Background(), game, ptr(cardgame.Player0), example.DrawAction())
	require.NoError(t, err)
	require.NoError(t, game.Ok([2]*cardgame.PlayerSecret{transport.Secret(cardgame.Player0), transport.Secret(cardgame.Player1)}))

	zone, _, ok := transport.Secret(cardgame.Player0).Location(id)
	require.True(t, ok)
	assert.True(t, zone.IsSecretHand())
}

func TestDuelRulesApplyMove(t *testing.T) {
	game, transport := newDuel(2)
	rules := example.DuelRules{}

	err := rules.Apply(context.Background(), game, ptr(cardgame.Player0),
		example.MoveAction(example.Creature{Name: "squire", StartPower: 2}, cardgame.Player0, cardgame.ZoneField()))
	require.NoError(t, err)
	require.NoError(t, game.Ok([2]*cardgame.PlayerSecret{transport.Secret(cardgame.Player0), transport.Secret(cardgame.Player1)}))

	field := game.State().Cards(cardgame.Player0).Field()
	require.Len(t, field, 1)
}

func TestDuelRulesApplyAttachAndDetach(t *testing.T) {
	game, transport := newDuel(3)
	rules := example.DuelRules{}

	parentID := game.NewCard(cardgame.Player0, example.Creature{Name: "knight", StartPower: 3})
	childID := game.NewCard(cardgame.Player0, example.Charm{})

	err := rules.Apply(context.Background(), game, ptr(cardgame.Player0),
		example.AttachAction(cardgame.CardID(parentID), cardgame.CardID(childID)))
	require.NoError(t, err)
	require.NoError(t, game.Ok([2]*cardgame.PlayerSecret{transport.Secret(cardgame.Player0), transport.Secret(cardgame.Player1)}))

	attachment := cardgame.RevealFromCard(game, cardgame.CardID(parentID), func(info cardgame.CardInfo) *cardgame.CardInstance {
		return info.Attachment
	})
	require.NotNil(t, attachment)
	assert.Equal(t, childID, attachment.ID())

	err = rules.Apply(context.Background(), game, ptr(cardgame.Player0),
		example.DetachAction(cardgame.CardID(parentID), cardgame.Player0, cardgame.ZoneGraveyard()))
	require.NoError(t, err)
	require.NoError(t, game.Ok([2]*cardgame.PlayerSecret{transport.Secret(cardgame.Player0), transport.Secret(cardgame.Player1)}))

	attachment = cardgame.RevealFromCard(game, cardgame.CardID(parentID), func(info cardgame.CardInfo) *cardgame.CardInstance {
		return info.Attachment
	})
	assert.Nil(t, attachment)

	zone, ok := game.State().Cards(cardgame.Player0).Zone(childID)
	require.True(t, ok)
	assert.True(t, zone.IsGraveyard())
}

func TestDuelRulesApplyRejectsWrongActionType(t *testing.T) {
	game, _ := newDuel(4)
	rules := example.DuelRules{}

	err := rules.Apply(context.Background(), game, ptr(cardgame.Player0), "not an action")
	assert.Error(t, err)

	err = rules.Verify(game.State(), ptr(cardgame.Player0), 42)
	assert.Error(t, err)
}

func TestEquippedBornWithCharm(t *testing.T) {
	game, transport := newDuel(5)

	id := game.NewCard(cardgame.Player0, example.Equipped{Name: "lancer", StartPower: 4})
	require.NoError(t, game.Ok([2]*cardgame.PlayerSecret{transport.Secret(cardgame.Player0), transport.Secret(cardgame.Player1)}))

	attachment := cardgame.RevealFromCard(game, cardgame.CardID(id), func(info cardgame.CardInfo) *cardgame.CardInstance {
		return info.Attachment
	})
	require.NotNil(t, attachment)

	state, ok := attachment.State().(*example.CharmState)
	require.True(t, ok)
	// Charm.NewCardState sets bonus from the parent's starting power: 4/2+1.
	assert.Equal(t, 3, state.Bonus)
}

func TestCodecRoundTripsState(t *testing.T) {
	codec := example.Codec()
	game, _ := newDuel(6)

	id := game.NewCard(cardgame.Player0, example.Creature{Name: "squire", StartPower: 2})
	_, _, err := game.MoveCard(cardgame.CardID(id), cardgame.Player0, cardgame.ZoneField())
	require.NoError(t, err)

	data, err := game.State().Serialize(codec)
	require.NoError(t, err)

	decoded, err := cardgame.Deserialize(data, codec)
	require.NoError(t, err)

	field := decoded.Cards(cardgame.Player0).Field()
	require.Len(t, field, 1)
	inst, ok := decoded.PublicInstance(field[0])
	require.True(t, ok)

	base, ok := inst.Base().(example.Creature)
	require.True(t, ok)
	assert.Equal(t, "squire", base.Name)

	cstate, ok := inst.State().(*example.CreatureState)
	require.True(t, ok)
	assert.Equal(t, 2, cstate.Power)
}

func TestMovePointerRepointsToADifferentInstance(t *testing.T) {
	game, transport := newDuel(7)

	cards := game.NewSecretCards(cardgame.Player0, func(info cardgame.SecretInfo) {
		info.NewInstance(example.Creature{Name: "squire", StartPower: 2}, &example.CreatureState{Power: 2})
		info.NewInstance(example.Creature{Name: "knight", StartPower: 4}, &example.CreatureState{Power: 4})
	})
	require.Len(t, cards, 2)

	pointer, ok := cards[0].Pointer()
	require.True(t, ok)

	other := cardgame.RevealFromCard(game, cards[1], func(info cardgame.CardInfo) cardgame.InstanceID {
		return info.Instance.ID()
	})

	transport.MovePointer(cardgame.Player0, pointer.Index, other)

	resolved := cardgame.RevealFromCard(game, cards[0], func(info cardgame.CardInfo) cardgame.InstanceID {
		return info.Instance.ID()
	})
	assert.Equal(t, other, resolved)
}

func ptr(p cardgame.Player) *cardgame.Player { return &p }
