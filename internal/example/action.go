package example

import cardgame "card-movement-simulator"

// actionKind discriminates Action, following the root package's own
// tagged-union idiom rather than an interface, since there is a small,
// closed, known set of action shapes.
type actionKind int

const (
	actionDraw actionKind = iota
	actionMove
	actionAttach
	actionDetach
)

// Action is everything a client can submit to DuelRules.Apply. It mirrors
// the Move/Attach/Detach scenario shapes exercised by this codebase's own
// move-engine test suite, plus a Draw action exercising CardGame.DrawCard.
type Action struct {
	kind actionKind

	base cardgame.BaseCard

	card     cardgame.Card
	toPlayer cardgame.Player
	toZone   cardgame.Zone

	parent cardgame.Card
	child  cardgame.Card
}

// DrawAction draws one card from player's deck into their hand.
func DrawAction() Action {
	return Action{kind: actionDraw}
}

// MoveAction creates a fresh base card in owner's limbo and immediately
// moves it to (toPlayer, toZone), the same new-then-move shape the
// engine's own move-scenario tests use to exercise every zone pair.
func MoveAction(base cardgame.BaseCard, toPlayer cardgame.Player, toZone cardgame.Zone) Action {
	return Action{kind: actionMove, base: base, toPlayer: toPlayer, toZone: toZone}
}

// AttachAction moves child onto parent's attachment zone, displacing
// whatever was already attached there.
func AttachAction(parent, child cardgame.Card) Action {
	return Action{kind: actionAttach, parent: parent, child: child}
}

// DetachAction moves whatever is attached to parent into (toPlayer,
// toZone), leaving parent with no attachment.
func DetachAction(parent cardgame.Card, toPlayer cardgame.Player, toZone cardgame.Zone) Action {
	return Action{kind: actionDetach, parent: parent, toPlayer: toPlayer, toZone: toZone}
}
