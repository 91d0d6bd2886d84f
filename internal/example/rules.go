package example

import (
	"context"
	"fmt"

	cardgame "card-movement-simulator"
)

// DuelRules is the minimal cardgame.Rules implementation this package
// exists to exercise: it knows nothing but how to apply the four Action
// shapes declared above.
type DuelRules struct{}

// Version implements cardgame.Rules.
func (DuelRules) Version() []byte { return []byte("example-duel/1") }

// Challenge implements cardgame.Rules, following the sign-to-play message
// shape the original protocol's wallet-backed identities use.
func (DuelRules) Challenge(address string) string {
	return fmt.Sprintf("Sign to play a duel!\n\n%s\n", address)
}

// Verify implements cardgame.Rules. This demo game has no turn order or
// resource enforcement to check; every well-typed action is legal.
func (DuelRules) Verify(state *cardgame.GameState, player *cardgame.Player, action any) error {
	if _, ok := action.(Action); !ok {
		return fmt.Errorf("example: action has wrong type %T", action)
	}
	return nil
}

// Apply implements cardgame.Rules, dispatching each Action to the
// CardGame operations it composes.
func (DuelRules) Apply(ctx context.Context, game *cardgame.CardGame, player *cardgame.Player, action any) error {
	act, ok := action.(Action)
	if !ok {
		return fmt.Errorf("example: action has wrong type %T", action)
	}

	actor := cardgame.Player0
	if player != nil {
		actor = *player
	}

	switch act.kind {
	case actionDraw:
		game.DrawCard(actor)
		return nil

	case actionMove:
		id := game.NewCard(actor, act.base)
		_, _, err := game.MoveCard(cardgame.CardID(id), act.toPlayer, act.toZone)
		return err

	case actionAttach:
		_, _, err := game.MoveCard(act.child, actor, cardgame.ZoneAttachment(act.parent))
		return err

	case actionDetach:
		attachment := cardgame.RevealFromCard(game, act.parent, func(info cardgame.CardInfo) *cardgame.CardInstance {
			return info.Attachment
		})
		if attachment == nil {
			return nil
		}
		_, _, err := game.MoveCard(cardgame.CardID(attachment.ID()), act.toPlayer, act.toZone)
		return err
	}

	return fmt.Errorf("example: unknown action kind %d", act.kind)
}
