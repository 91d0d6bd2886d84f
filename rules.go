package cardgame

import "context"

// Rules is the contract a rules client implements on top of the engine.
// Where the original protocol expresses this as a trait with associated
// ID/Nonce/Action/Secret/BaseCard/Event types bound at compile time, Go has
// no equivalent associated-type mechanism; Action and the verify/apply
// payloads are passed as `any` and it is the rules client's job to type-
// assert them back to its own concrete action type.
type Rules interface {
	// Version reports the ABI version of this rules implementation, so a
	// transport can refuse to connect mismatched clients.
	Version() []byte

	// Challenge returns the message a client must sign to certify a
	// session key for address, e.g. for a wallet-backed identity.
	// Implementations with no such concept can return an empty string.
	Challenge(address string) string

	// Verify reports whether action is legal for player to submit against
	// state, without applying it. player is nil for actions not
	// attributed to either player (e.g. a clock timeout).
	Verify(state *GameState, player *Player, action any) error

	// Apply performs action's effects against game on behalf of player,
	// suspending at the engine's transport boundaries (random, reveal,
	// reveal_unique, log, mutate_secret) exactly as CardGame's own methods
	// do. Rules clients should build Apply out of calls to CardGame's
	// methods rather than mutating GameState directly.
	Apply(ctx context.Context, game *CardGame, player *Player, action any) error
}
