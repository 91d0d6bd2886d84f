package cardgame_test

import (
	"math/rand"

	cardgame "card-movement-simulator"
)

// memoryContext is a single-process cardgame.Context used across this
// package's tests: both players' secrets live in the same memory, and
// reveal/reveal_unique behave exactly as the production contract
// specifies (reveal reseeds, reveal_unique does not) without any actual
// transport round-trip to simulate.
type memoryContext struct {
	secrets [2]*cardgame.PlayerSecret
	rng     *rand.Rand
	events  []cardgame.Event
}

func newMemoryContext(seed int64) *memoryContext {
	return &memoryContext{
		secrets: [2]*cardgame.PlayerSecret{cardgame.NewPlayerSecret(), cardgame.NewPlayerSecret()},
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (m *memoryContext) MutateSecret(player cardgame.Player, mutate func(*cardgame.PlayerSecret, *rand.Rand, func(cardgame.Event))) {
	mutate(m.secrets[player], m.rng, func(e cardgame.Event) { m.events = append(m.events, e) })
}

// DebugSecrets opts memoryContext into CardGame's debug-only
// Config.DebugConsistencyChecks gate: a real transport has no business
// handing out both players' secrets at once, but this in-memory test
// harness holds both already, exactly like original_source's test-only
// `Tester` binding.
func (m *memoryContext) DebugSecrets() [2]*cardgame.PlayerSecret {
	return m.secrets
}

func (m *memoryContext) RevealRaw(player cardgame.Player, reveal func(*cardgame.PlayerSecret) any, verify func(any) bool) any {
	value := reveal(m.secrets[player])
	if !verify(value) {
		panic("memoryContext: reveal failed verification")
	}
	m.rng = rand.New(rand.NewSource(m.rng.Int63()))
	return value
}

func (m *memoryContext) RevealUniqueRaw(player cardgame.Player, reveal func(*cardgame.PlayerSecret) any, verify func(any) bool) any {
	value := reveal(m.secrets[player])
	if !verify(value) {
		panic("memoryContext: reveal_unique failed verification")
	}
	return value
}

func (m *memoryContext) Random() *rand.Rand { return m.rng }

func (m *memoryContext) Log(event cardgame.Event) { m.events = append(m.events, event) }

// testBase and testState are the smallest BaseCard/CardState pair that
// can exercise every move/attach/detach scenario without pulling in
// internal/example.
type testBase struct {
	name       string
	attachment *testBase
}

func (b testBase) Attachment() cardgame.BaseCard {
	if b.attachment == nil {
		return nil
	}
	return *b.attachment
}

func (b testBase) NewCardState(parent cardgame.CardState) cardgame.CardState {
	return &testState{power: 1}
}

type testState struct {
	power int
}

func (s *testState) Equal(other cardgame.CardState) bool {
	o, ok := other.(*testState)
	return ok && o.power == s.power
}

func withAttachment() testBase {
	child := testBase{name: "charm"}
	return testBase{name: "knight", attachment: &child}
}
