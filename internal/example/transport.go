package example

import (
	"math/rand"

	"github.com/google/uuid"

	cardgame "card-movement-simulator"
)

// LocalGame is a single-process stand-in for a networked transport: both
// players' secrets live in the same memory, nothing is actually hidden
// from this process, and every event is appended to a log slice instead
// of pushed to a client. It exists to drive the engine in tests and in
// this package's demo, the same role original_source's integration-test
// harness plays for the Rust implementation.
type LocalGame struct {
	// ID identifies this match for logging and for Rules.Challenge's
	// address-binding message; the engine itself never looks at it.
	ID uuid.UUID

	secrets [2]*cardgame.PlayerSecret
	rng     *rand.Rand
	events  []cardgame.Event
}

// NewLocalGame seeds a deterministic RNG from seed so demo runs and tests
// are reproducible, and allocates both players' empty secrets.
func NewLocalGame(seed int64) *LocalGame {
	return &LocalGame{
		ID:      uuid.New(),
		secrets: [2]*cardgame.PlayerSecret{cardgame.NewPlayerSecret(), cardgame.NewPlayerSecret()},
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Secret exposes a player's secret for assertions in tests; production
// transports would never expose both players' secrets to one caller.
func (g *LocalGame) Secret(player cardgame.Player) *cardgame.PlayerSecret {
	return g.secrets[player]
}

// Events returns every event logged so far.
func (g *LocalGame) Events() []cardgame.Event {
	return g.events
}

// MovePointer reassigns owner's opaque pointer at index to target, for
// test scenarios that need a pointer parked on a specific bucket before
// exercising it. It is a debug-only escape hatch exposed on this local,
// single-process transport; a networked transport has no business
// letting a caller reach across the reveal boundary like this.
func (g *LocalGame) MovePointer(owner cardgame.Player, index int, target cardgame.InstanceID) {
	g.secrets[owner].DebugSetPointer(index, target)
}

// MutateSecret implements cardgame.Context.
func (g *LocalGame) MutateSecret(player cardgame.Player, mutate func(*cardgame.PlayerSecret, *rand.Rand, func(cardgame.Event))) {
	mutate(g.secrets[player], g.rng, func(e cardgame.Event) { g.events = append(g.events, e) })
}

// RevealRaw implements cardgame.Context. Locally there is no transport
// round-trip to simulate, so reveal just runs and the RNG is reseeded to
// mirror the real protocol's anti-trial-and-error reseed.
func (g *LocalGame) RevealRaw(player cardgame.Player, reveal func(*cardgame.PlayerSecret) any, verify func(any) bool) any {
	value := reveal(g.secrets[player])
	if !verify(value) {
		panic("example: reveal failed verification")
	}
	g.rng = rand.New(rand.NewSource(g.rng.Int63()))
	return value
}

// RevealUniqueRaw implements cardgame.Context, without the reseed.
func (g *LocalGame) RevealUniqueRaw(player cardgame.Player, reveal func(*cardgame.PlayerSecret) any, verify func(any) bool) any {
	value := reveal(g.secrets[player])
	if !verify(value) {
		panic("example: reveal_unique failed verification")
	}
	return value
}

// Random implements cardgame.Context.
func (g *LocalGame) Random() *rand.Rand {
	return g.rng
}

// Log implements cardgame.Context.
func (g *LocalGame) Log(event cardgame.Event) {
	g.events = append(g.events, event)
}
