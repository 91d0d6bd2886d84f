package cardgame

import "math/rand"

// Context is the transport: the external collaborator that actually
// holds each player's PlayerSecret and brokers disclosure between them.
// The engine only ever touches secrets through this interface, so a
// transport can implement it with real cryptographic commit-reveal, or
// (as in tests) by simply holding both secrets in memory.
//
// This interface is deliberately narrow. It does not decide what to
// reveal or how much — that policy lives in this package, built on top
// of Reveal/RevealUnique.
type Context interface {
	// MutateSecret runs mutate against player's live PlayerSecret. The
	// rng passed to mutate is reseeded before every call to prevent a
	// player from influencing randomness via trial and error.
	MutateSecret(player Player, mutate func(secret *PlayerSecret, rng *rand.Rand, log func(Event)))

	// RevealRaw discloses whatever reveal derives from player's secret,
	// re-running it only until verify accepts one candidate value. The
	// rng shared with player is reseeded afterward, since multiple
	// candidate values may have been tried.
	RevealRaw(player Player, reveal func(*PlayerSecret) any, verify func(any) bool) any

	// RevealUniqueRaw is RevealRaw without reseeding: the caller must
	// guarantee that verify accepts exactly one possible value, or
	// trial-and-error against this call can leak information about the
	// secret's randomness.
	RevealUniqueRaw(player Player, reveal func(*PlayerSecret) any, verify func(any) bool) any

	// Random returns a generator seeded via commit-reveal, unobservable
	// by either player in advance.
	Random() *rand.Rand

	// Log appends event to the externally visible event stream.
	Log(event Event)
}

// Reveal is the typed convenience wrapper around Context.RevealRaw.
func Reveal[T any](ctx Context, player Player, reveal func(*PlayerSecret) T, verify func(T) bool) T {
	result := ctx.RevealRaw(player,
		func(s *PlayerSecret) any { return reveal(s) },
		func(v any) bool { return verify(v.(T)) },
	)
	return result.(T)
}

// RevealUnique is the typed convenience wrapper around
// Context.RevealUniqueRaw.
func RevealUnique[T any](ctx Context, player Player, reveal func(*PlayerSecret) T, verify func(T) bool) T {
	result := ctx.RevealUniqueRaw(player,
		func(s *PlayerSecret) any { return reveal(s) },
		func(v any) bool { return verify(v.(T)) },
	)
	return result.(T)
}

func alwaysTrue[T any](T) bool { return true }
