package cardgame_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	cardgame "card-movement-simulator"
)

// matrixBases enumerates the two base-card shapes spec.md §8 scenario 1
// calls for: a card with no attachment, and one whose attachment is
// created alongside it by CardGame.NewCard.
func matrixBases() []struct {
	name string
	base cardgame.BaseCard
} {
	return []struct {
		name string
		base cardgame.BaseCard
	}{
		{"Basic", testBase{name: "pawn"}},
		{"WithAttachment", withAttachment()},
	}
}

// matrixBuckets enumerates the three pointer-bucket kinds scenario 1
// calls for: a card living in the public pool, and one living in each
// player's secret (referenced everywhere after creation by an opaque
// pointer, never an id).
func matrixBuckets() []struct {
	name   string
	owner  cardgame.Player
	secret bool
} {
	return []struct {
		name   string
		owner  cardgame.Player
		secret bool
	}{
		{"public", cardgame.Player0, false},
		{"secret owned by player 0", cardgame.Player0, true},
		{"secret owned by player 1", cardgame.Player1, true},
	}
}

// bucketCard creates base in owner's public limbo, then, for a secret
// bucket, migrates it into owner's secret limbo and hands back an
// opaque pointer obtained the same way any other caller would — via
// CardGame.SecretLimboCard — rather than reaching into PlayerSecret
// directly, so this matrix exercises the same publication path as a
// real rules client.
func bucketCard(t *testing.T, game *cardgame.CardGame, ctx *memoryContext, bucket struct {
	name   string
	owner  cardgame.Player
	secret bool
}, base cardgame.BaseCard) cardgame.Card {
	t.Helper()

	id := game.NewCard(bucket.owner, base)
	if !bucket.secret {
		return cardgame.CardID(id)
	}

	_, _, err := game.MoveCard(cardgame.CardID(id), bucket.owner, cardgame.ZoneLimbo(false))
	require.NoError(t, err)

	index := len(ctx.secrets[bucket.owner].Limbo()) - 1
	return game.SecretLimboCard(bucket.owner, index)
}

// TestMoveCardMatrix is the generated exhaustive test matrix component
// (spec.md §2 component K, scenario 1 of §8): every (from-zone, to-zone)
// pair, crossed with both base-card shapes, all three pointer-bucket
// provenances, and whether the destination player is the card's current
// owner or its opponent. Every move must succeed and leave the state
// consistent, except that moving a card out of a dust zone must fail with
// ErrDustedCard.
func TestMoveCardMatrix(t *testing.T) {
	zones := zonePairs(t)
	bases := matrixBases()
	buckets := matrixBuckets()
	destClasses := []string{"same player", "other player"}

	for _, from := range zones {
		for _, to := range zones {
			from, to := from, to
			for _, base := range bases {
				base := base
				for _, bucket := range buckets {
					bucket := bucket
					for _, destClass := range destClasses {
						destClass := destClass
						name := fmt.Sprintf("%s/%s->%s/%s/%s", base.name, from.name, to.name, bucket.name, destClass)
						t.Run(name, func(t *testing.T) {
							game, ctx := newGame(7)

							card := bucketCard(t, game, ctx, bucket, base.base)

							toPlayer := bucket.owner
							if destClass == "other player" {
								toPlayer = bucket.owner.Other()
							}

							_, _, err := game.MoveCard(card, toPlayer, from.zone)
							require.NoError(t, err)
							assertConsistent(t, game, ctx)

							_, zone, err := game.MoveCard(card, toPlayer, to.zone)
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
		}
	}
}
