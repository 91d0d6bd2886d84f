package cardgame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardgame "card-movement-simulator"
)

func newGame(seed int64) (*cardgame.CardGame, *memoryContext) {
	ctx := newMemoryContext(seed)
	state := cardgame.NewGameState(nil, false)
	game := cardgame.NewCardGame(state, ctx, cardgame.NewConfig())
	return game, ctx
}

func assertConsistent(t *testing.T, game *cardgame.CardGame, ctx *memoryContext) {
	t.Helper()
	require.NoError(t, game.Ok(ctx.secrets))
}

// zonePairs enumerates every public/secret zone pair MoveCard must be
// able to move a freshly created card through, matching the scenario
// space the move-engine test suite in original_source's integration
// tests walks for Move actions.
func zonePairs(t *testing.T) []struct {
	name string
	zone cardgame.Zone
} {
	t.Helper()
	return []struct {
		name string
		zone cardgame.Zone
	}{
		{"deck", cardgame.ZoneDeck()},
		{"public hand", cardgame.ZoneHand(true)},
		{"secret hand", cardgame.ZoneHand(false)},
		{"field", cardgame.ZoneField()},
		{"graveyard", cardgame.ZoneGraveyard()},
		{"public dust", cardgame.ZoneDust(true)},
		{"secret dust", cardgame.ZoneDust(false)},
		{"public limbo", cardgame.ZoneLimbo(true)},
		{"secret limbo", cardgame.ZoneLimbo(false)},
		{"casting", cardgame.ZoneCasting()},
		{"card selection", cardgame.ZoneCardSelection()},
	}
}

func TestMoveCardAcrossEveryZonePair(t *testing.T) {
	for _, from := range zonePairs(t) {
		for _, to := range zonePairs(t) {
			from, to := from, to
			t.Run(from.name+"->"+to.name, func(t *testing.T) {
				game, ctx := newGame(1)

				id := game.NewCard(cardgame.Player0, testBase{name: "pawn"})
				_, _, err := game.MoveCard(cardgame.CardID(id), cardgame.Player0, from.zone)
				require.NoError(t, err)
				assertConsistent(t, game, ctx)

				_, zone, err := game.MoveCard(cardgame.CardID(id), cardgame.Player0, to.zone)
				if from.zone.IsDust() {
					// A dusted card can never be moved again.
					var dusted *cardgame.ErrDustedCard
					require.ErrorAs(t, err, &dusted)
					assertConsistent(t, game, ctx)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, zone)
				assertConsistent(t, game, ctx)
			})
		}
	}
}

func TestMoveCardDustedSourceErrors(t *testing.T) {
	game, _ := newGame(1)

	id := game.NewCard(cardgame.Player0, testBase{name: "pawn"})
	_, _, err := game.MoveCard(cardgame.CardID(id), cardgame.Player0, cardgame.ZoneDust(true))
	require.NoError(t, err)

	_, _, err = game.MoveCard(cardgame.CardID(id), cardgame.Player0, cardgame.ZoneField())
	require.Error(t, err)
	var dusted *cardgame.ErrDustedCard
	assert.ErrorAs(t, err, &dusted)
}

func TestMoveCardAttachDisplacesExisting(t *testing.T) {
	game, ctx := newGame(2)

	parent := game.NewCard(cardgame.Player0, testBase{name: "knight"})
	first := game.NewCard(cardgame.Player0, testBase{name: "shield"})
	second := game.NewCard(cardgame.Player0, testBase{name: "sword"})

	_, _, err := game.MoveCard(cardgame.CardID(first), cardgame.Player0, cardgame.ZoneAttachment(cardgame.CardID(parent)))
	require.NoError(t, err)
	assertConsistent(t, game, ctx)

	attachment := cardgame.RevealFromCard(game, cardgame.CardID(parent), func(info cardgame.CardInfo) *cardgame.CardInstance {
		return info.Attachment
	})
	require.NotNil(t, attachment)
	assert.Equal(t, first, attachment.ID())

	_, _, err = game.MoveCard(cardgame.CardID(second), cardgame.Player0, cardgame.ZoneAttachment(cardgame.CardID(parent)))
	require.NoError(t, err)
	assertConsistent(t, game, ctx)

	attachment = cardgame.RevealFromCard(game, cardgame.CardID(parent), func(info cardgame.CardInfo) *cardgame.CardInstance {
		return info.Attachment
	})
	require.NotNil(t, attachment)
	assert.Equal(t, second, attachment.ID())

	// The displaced attachment was dusted, not left dangling.
	zone, ok := game.State().Cards(cardgame.Player0).Zone(first)
	require.True(t, ok)
	assert.True(t, zone.IsPublicDust())
}

func TestMoveCardBuiltInAttachmentMigratesWithParent(t *testing.T) {
	game, ctx := newGame(3)

	parent := game.NewCard(cardgame.Player0, withAttachment())
	assertConsistent(t, game, ctx)

	inst, ok := game.State().PublicInstance(parent)
	require.True(t, ok)
	attID, ok := inst.Attachment()
	require.True(t, ok)

	_, _, err := game.MoveCard(cardgame.CardID(parent), cardgame.Player0, cardgame.ZoneHand(false))
	require.NoError(t, err)
	assertConsistent(t, game, ctx)

	// The attachment's body must have migrated to secret alongside its
	// parent, since an attachment is only visible when its parent is.
	_, secret := game.State().Owner(attID)
	assert.True(t, secret)
}

func TestMoveCardDetachFromSecretParent(t *testing.T) {
	game, ctx := newGame(9)

	parent := game.NewCard(cardgame.Player0, withAttachment())
	assertConsistent(t, game, ctx)

	inst, ok := game.State().PublicInstance(parent)
	require.True(t, ok)
	attID, ok := inst.Attachment()
	require.True(t, ok)

	_, _, err := game.MoveCard(cardgame.CardID(parent), cardgame.Player0, cardgame.ZoneHand(false))
	require.NoError(t, err)
	assertConsistent(t, game, ctx)

	// Both parent and attachment now live in player 0's secret. Detaching
	// the attachment must resolve its zone via attachment-parent scanning
	// on the secret side, not just the public pool, which previously made
	// this move fail with ErrMissingInstance.
	_, _, err = game.MoveCard(cardgame.CardID(attID), cardgame.Player0, cardgame.ZoneDust(true))
	require.NoError(t, err)
	assertConsistent(t, game, ctx)

	zone, ok := game.State().Cards(cardgame.Player0).Zone(attID)
	require.True(t, ok)
	assert.True(t, zone.IsPublicDust())

	// The old parent no longer points at the detached attachment.
	parentInst := parent.Instance(game.State(), ctx.secrets[0], ctx.secrets[1])
	require.NotNil(t, parentInst)
	_, hasAttachment := parentInst.Attachment()
	assert.False(t, hasAttachment)
}

func TestDrawCardMovesIntoSecretHand(t *testing.T) {
	game, ctx := newGame(4)

	id := game.NewCard(cardgame.Player0, testBase{name: "pawn"})
	_, _, err := game.MoveCard(cardgame.CardID(id), cardgame.Player0, cardgame.ZoneDeck())
	require.NoError(t, err)
	assertConsistent(t, game, ctx)

	card, ok := game.DrawCard(cardgame.Player0)
	require.True(t, ok)
	assertConsistent(t, game, ctx)

	zone, _, ok := ctx.secrets[cardgame.Player0].Location(idOf(t, game, card))
	require.True(t, ok)
	assert.True(t, zone.IsSecretHand())
}

func TestNewSecretCardsReturnsUsablePointers(t *testing.T) {
	game, ctx := newGame(5)

	cards := game.NewSecretCards(cardgame.Player0, func(info cardgame.SecretInfo) {
		info.NewInstance(testBase{name: "pawn"}, &testState{power: 1})
		info.NewInstance(testBase{name: "rook"}, &testState{power: 1})
	})
	require.Len(t, cards, 2)

	for _, card := range cards {
		_, ok := card.ID()
		assert.False(t, ok, "a secret-created card must be named by a pointer, not an id")
	}

	_, _, err := game.MoveCard(cards[0], cardgame.Player0, cardgame.ZoneLimbo(false))
	require.NoError(t, err)
	assertConsistent(t, game, ctx)

	_, _, err = game.MoveCard(cards[1], cardgame.Player0, cardgame.ZoneDeck())
	require.NoError(t, err)
	assertConsistent(t, game, ctx)
}

func TestNewSecretCardsEmptyBatchLeavesPointersUnchanged(t *testing.T) {
	game, ctx := newGame(6)

	pointersBefore := game.State().Cards(cardgame.Player0).Pointers()

	cards := game.NewSecretCards(cardgame.Player0, func(cardgame.SecretInfo) {})
	require.Empty(t, cards)

	assert.Equal(t, pointersBefore, game.State().Cards(cardgame.Player0).Pointers())
	assertConsistent(t, game, ctx)
}

func TestSortFieldReordersAndRecordsOldIndices(t *testing.T) {
	game, ctx := newGame(7)

	ids := make([]cardgame.InstanceID, 3)
	for i, name := range []string{"a", "b", "c"} {
		id := game.NewCard(cardgame.Player0, testBase{name: name})
		_, _, err := game.MoveCard(cardgame.CardID(id), cardgame.Player0, cardgame.ZoneField())
		require.NoError(t, err)
		ids[i] = id
	}
	require.Equal(t, []cardgame.InstanceID{ids[0], ids[1], ids[2]}, game.State().Cards(cardgame.Player0).Field())

	// Reverse the field.
	permutation := game.SortField(cardgame.Player0, func(a, b cardgame.InstanceID) bool {
		return a > b
	})

	assert.Equal(t, []cardgame.InstanceID{ids[2], ids[1], ids[0]}, game.State().Cards(cardgame.Player0).Field())
	assert.Equal(t, []int{2, 1, 0}, permutation)
	assertConsistent(t, game, ctx)

	player, gotPermutation, ok := ctx.events[len(ctx.events)-1].AsSortField()
	require.True(t, ok)
	assert.Equal(t, cardgame.Player0, player)
	assert.Equal(t, permutation, gotPermutation)
}

// idOf resolves card to its InstanceID for assertions, tolerating either
// representation.
func idOf(t *testing.T, game *cardgame.CardGame, card cardgame.Card) cardgame.InstanceID {
	t.Helper()
	if id, ok := card.ID(); ok {
		return id
	}
	return cardgame.RevealFromCard(game, card, func(info cardgame.CardInfo) cardgame.InstanceID {
		return info.Instance.ID()
	})
}
