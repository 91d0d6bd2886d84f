package cardgame

import (
	"fmt"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"card-movement-simulator/internal/obslog"
)

// CardGame is the engine: the public GameState plus the transport used
// to reach into each player's secret. It is the sole entry point the
// rules layer talks to; nothing else in this package is exported for
// mutation.
type CardGame struct {
	state  *GameState
	ctx    Context
	config Config
}

// NewCardGame wires a GameState to a transport with the given Config.
// It also (re)initializes the package's debug logger at config.LogLevel,
// matching how the donor application's constructors own their logger's
// lifecycle rather than requiring a separate init call.
func NewCardGame(state *GameState, ctx Context, config Config) *CardGame {
	if err := obslog.Init(&config.LogLevel); err != nil {
		// obslog.Get falls back to a development logger, so a bad level
		// string is not fatal to the engine, only to its debug tracing.
		obslog.Get().Warn("cardgame: obslog init failed, using development logger",
			zap.Error(err))
	}
	return &CardGame{state: state, ctx: ctx, config: config}
}

// debugSecrets is the optional capability a Context can implement to
// hand the engine both players' secrets for CardGame.Ok, gating
// Config.DebugConsistencyChecks the way spec.md §4.I's "debug-only"
// property is meant to be used: by a test or local-dev transport, never
// by a production transport that has no business handing out both
// players' secrets at once.
type debugSecrets interface {
	DebugSecrets() [2]*PlayerSecret
}

// checkConsistencyIfEnabled runs Ok after a mutating operation when
// Config.DebugConsistencyChecks is set and ctx opts into debugSecrets.
// A failure here is a programmer-facing invariant violation (spec.md
// §7), not a recoverable error, so it panics rather than returning one.
func (g *CardGame) checkConsistencyIfEnabled(op string) {
	if !g.config.DebugConsistencyChecks {
		return
	}
	debug, ok := g.ctx.(debugSecrets)
	if !ok {
		return
	}
	if err := g.Ok(debug.DebugSecrets()); err != nil {
		obslog.Get().Error("cardgame: consistency check failed", zap.String("op", op), zap.Error(err))
		panic(fmt.Sprintf("cardgame: inconsistent state after %s: %v", op, err))
	}
}

// State exposes the public GameState. Callers must not retain pointers
// derived from it across a mutating operation.
func (g *CardGame) State() *GameState { return g.state }

// DebugDump logs the public pool's size and both players' PlayerCards
// catalogues at debug level. It is a debug-only aid, never
// a production API, so it writes to obslog rather than returning a
// value or touching the transport's event log. It never looks at
// either player's secret, so it is safe to call regardless of
// Config.DebugConsistencyChecks or what the Context implements.
func (g *CardGame) DebugDump() {
	logger := obslog.Get()
	logger.Debug("cardgame: pool", zap.Int("size", len(g.state.pool)))
	for p := Player0; p <= Player1; p++ {
		cards := g.state.Cards(p)
		logger.Debug("cardgame: player",
			zap.Int("player", int(p)),
			zap.Int("deck", cards.Deck()),
			zap.Int("hand", len(cards.Hand())),
			zap.Any("field", cards.Field()),
			zap.Any("graveyard", cards.Graveyard()),
			zap.Any("dust", cards.Dust()),
			zap.Int("limbo", len(cards.Limbo())),
			zap.Any("casting", cards.Casting()),
			zap.Int("card_selection", cards.CardSelection()),
			zap.Int("pointers", cards.Pointers()),
		)
	}
}

// SecretInfo is handed to callbacks that populate a new secret card:
// direct write access to the owning player's secret, a per-call
// commit-reveal rng, and the event sink.
type SecretInfo struct {
	Secret *PlayerSecret
	Random *rand.Rand
	Log    func(Event)

	// NewInstance allocates a fresh, globally unique InstanceID for a
	// card living entirely in this secret, inserting it into Secret's
	// instance table, placing it in Secret's limbo (with a matching hole
	// in the public limbo), and allocating a pointer to it.
	NewInstance func(base BaseCard, state CardState) InstanceID
}

// CardInfo is handed to read-only callbacks over a resolved card: its
// instance, owner, zone, and attachment instance (if any), read from the
// same bucket as the card itself.
type CardInfo struct {
	Instance   CardInstance
	Owner      Player
	Zone       Zone
	Attachment *CardInstance
}

// NewCard creates a card (and, if base has one, its attachment) directly
// in public state, placed in the owner's public limbo. Returns the new
// card's id.
func (g *CardGame) NewCard(player Player, base BaseCard) InstanceID {
	state := base.NewCardState(nil)

	var attachment *CardInstance
	if attBase := base.Attachment(); attBase != nil {
		attID := g.state.allocate(instanceSlot{})
		att := CardInstance{id: attID, base: attBase, state: attBase.NewCardState(state)}
		g.state.setInstance(attID, att)
		attachment = &att
	}

	id := g.state.allocate(instanceSlot{})
	inst := CardInstance{id: id, base: base, state: state}
	if attachment != nil {
		attID := attachment.ID()
		inst.attachment = &attID
		g.emit(NewCardEvent(*attachment, ExactCardLocation{Player: player, Zone: ZoneAttachment(CardID(id))}))
	}
	g.state.setInstance(id, inst)

	index := g.insertIntoZone(player, true, ZoneLimbo(true), id)
	loc := ExactCardLocation{Player: player, Zone: ZoneLimbo(true), Index: index}
	g.emit(NewCardEvent(inst, loc))

	return id
}

func (g *CardGame) allocatePointer(player Player, id InstanceID) Card {
	var ptr OpaquePointer
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		ptr = secret.allocatePointer(id)
	})
	index := g.state.Cards(player).incrementPointers()
	ptr.Owner = player
	ptr.Index = index
	return CardPointer(ptr)
}

// DeckCard allocates an opaque pointer to the card at index in player's
// (secret) deck.
func (g *CardGame) DeckCard(player Player, index int) Card {
	var id InstanceID
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		id = secret.deck[index]
	})
	return g.allocatePointer(player, id)
}

// HandCard returns the card at index in player's hand: directly, if the
// hand slot is public; otherwise an opaque pointer.
func (g *CardGame) HandCard(player Player, index int) Card {
	if id := g.state.Cards(player).hand[index]; id != nil {
		return CardID(*id)
	}
	var id InstanceID
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		id = *secret.hand[index]
	})
	return g.allocatePointer(player, id)
}

// FieldCard returns the id of the card at index on player's field.
func (g *CardGame) FieldCard(player Player, index int) InstanceID {
	return g.state.Cards(player).field[index]
}

// GraveyardCard returns the id of the card at index in player's
// graveyard.
func (g *CardGame) GraveyardCard(player Player, index int) InstanceID {
	return g.state.Cards(player).graveyard[index]
}

// PublicDustCard returns the id of the card at index in player's public
// dust.
func (g *CardGame) PublicDustCard(player Player, index int) InstanceID {
	return g.state.Cards(player).dust[index]
}

// SecretDustCard allocates an opaque pointer to the card at index in
// player's secret dust.
func (g *CardGame) SecretDustCard(player Player, index int) Card {
	var id InstanceID
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		id = secret.dust[index]
	})
	return g.allocatePointer(player, id)
}

// PublicLimboCard returns the id of the card at index in player's public
// limbo.
func (g *CardGame) PublicLimboCard(player Player, index int) InstanceID {
	if id := g.state.Cards(player).limbo[index]; id != nil {
		return *id
	}
	return 0
}

// SecretLimboCard allocates an opaque pointer to the card at index in
// player's secret limbo.
func (g *CardGame) SecretLimboCard(player Player, index int) Card {
	var id InstanceID
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		id = secret.limbo[index]
	})
	return g.allocatePointer(player, id)
}

// CastingCard returns the id of the card at index in player's casting
// zone.
func (g *CardGame) CastingCard(player Player, index int) InstanceID {
	return g.state.Cards(player).casting[index]
}

// CardSelectionCard allocates an opaque pointer to the card at index in
// player's card-selection pile.
func (g *CardGame) CardSelectionCard(player Player, index int) Card {
	var id InstanceID
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		id = secret.cardSelection[index]
	})
	return g.allocatePointer(player, id)
}

// DeckCards allocates pointers to every card in player's deck.
func (g *CardGame) DeckCards(player Player) []Card {
	var n int
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		secret.appendDeckToPointers()
		n = len(secret.pointers)
	})
	return g.pointerRange(player, n)
}

// HandCards lifts HandCard across every slot in player's hand: the
// obvious per-element lift spec.md §9 calls for. Each public slot is
// disclosed directly; each secret slot costs one pointer allocation, so
// calling this discloses the hand's size even though no bodies are
// revealed.
func (g *CardGame) HandCards(player Player) []Card {
	hand := g.state.Cards(player).hand
	cards := make([]Card, len(hand))
	for i := range hand {
		cards[i] = g.HandCard(player, i)
	}
	return cards
}

func (g *CardGame) pointerRange(player Player, newTotal int) []Card {
	cards := g.pointerRangeFrom(player, newTotal)
	pc := g.state.Cards(player)
	for pc.pointers < newTotal {
		pc.incrementPointers()
	}
	return cards
}

func (g *CardGame) pointerRangeFrom(player Player, newTotal int) []Card {
	start := g.state.Cards(player).pointers
	cards := make([]Card, 0, newTotal-start)
	for i := start; i < newTotal; i++ {
		cards = append(cards, CardPointer(OpaquePointer{Owner: player, Index: i}))
	}
	return cards
}

// SecretDustCards reveals the size of player's secret dust, then
// allocates pointers to every card in it.
func (g *CardGame) SecretDustCards(player Player) []Card {
	var n int
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		secret.appendDustToPointers()
		n = len(secret.pointers)
	})
	return g.pointerRange(player, n)
}

// SecretLimboCards reveals the size of player's secret limbo, then
// allocates pointers to every card in it.
func (g *CardGame) SecretLimboCards(player Player) []Card {
	var n int
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		secret.appendLimboToPointers()
		n = len(secret.pointers)
	})
	return g.pointerRange(player, n)
}

// CardSelectionCards allocates pointers to every card in player's
// card-selection pile.
func (g *CardGame) CardSelectionCards(player Player) []Card {
	var n int
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		secret.appendCardSelectionToPointers()
		n = len(secret.pointers)
	})
	return g.pointerRange(player, n)
}

// RevealIfCardsEqual reports whether a and b name the same card,
// disclosing as little as possible: two pointers held by the same
// player are compared inside their own secret without ever naming the
// underlying id to the engine.
func (g *CardGame) RevealIfCardsEqual(a, b Card) bool {
	if eq, err := a.Equal(b); err == nil {
		return eq
	}

	aPtr, aIsPtr := a.Pointer()
	bPtr, bIsPtr := b.Pointer()
	if aIsPtr && bIsPtr && aPtr.Owner == bPtr.Owner {
		return RevealUnique(g.ctx, aPtr.Owner,
			func(s *PlayerSecret) bool {
				idA, _ := s.derefPointer(aPtr)
				idB, _ := s.derefPointer(bPtr)
				return idA == idB
			},
			alwaysTrue[bool],
		)
	}

	resolve := func(c Card) InstanceID {
		if id, ok := c.ID(); ok {
			return id
		}
		ptr, _ := c.Pointer()
		return RevealUnique(g.ctx, ptr.Owner,
			func(s *PlayerSecret) InstanceID { id, _ := s.derefPointer(ptr); return id },
			alwaysTrue[InstanceID],
		)
	}

	return resolve(a) == resolve(b)
}

// RevealIfCardsNotEqual is the negation of RevealIfCardsEqual.
func (g *CardGame) RevealIfCardsNotEqual(a, b Card) bool {
	return !g.RevealIfCardsEqual(a, b)
}

// ResetCard replaces a card's state with a freshly built base state,
// leaving its attachment in place but resetting it independently.
func (g *CardGame) ResetCard(card Card) error {
	id, owner, public, err := g.resolveSource(card)
	if err != nil {
		return err
	}

	// resetWith rebuilds inst's own state, using attachmentState (the
	// current state of inst's attachment, if any) as the contextual
	// parent state for the rebuild.
	resetWith := func(inst CardInstance, attachmentState CardState) CardInstance {
		return inst.setState(inst.Base().NewCardState(attachmentState))
	}
	resetAlone := func(inst CardInstance) CardInstance {
		return inst.setState(inst.Base().NewCardState(nil))
	}

	if public {
		inst, ok := g.state.PublicInstance(id)
		if !ok {
			return &ErrMissingInstance{Card: CardID(id)}
		}
		var attachmentState CardState
		if attID, ok := inst.Attachment(); ok {
			if att, ok := g.state.PublicInstance(attID); ok {
				attachmentState = att.State()
				g.state.setInstance(attID, resetAlone(att))
			}
		}
		inst = resetWith(inst, attachmentState)
		g.state.setInstance(id, inst)
		g.emit(ResetCardEvent(inst))
		return nil
	}

	g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		inst, ok := secret.Instance(id)
		if !ok {
			return
		}
		var attachmentState CardState
		if attID, ok := inst.Attachment(); ok {
			if att, ok := secret.Instance(attID); ok {
				attachmentState = att.State()
				secret.insertInstance(resetAlone(att))
			}
		}
		inst = resetWith(inst, attachmentState)
		secret.insertInstance(inst)
	})
	return nil
}

// CopyCard clones card (and, if deep, its attachment), allocating new
// InstanceIDs and placing the clone in the source's own visibility
// bucket, in the owner's limbo. It returns a pointer if the source was
// secret, or an id if it was public.
func (g *CardGame) CopyCard(card Card, deep bool) (Card, error) {
	id, owner, public, err := g.resolveSource(card)
	if err != nil {
		return Card{}, err
	}

	if public {
		inst, ok := g.state.PublicInstance(id)
		if !ok {
			return Card{}, &ErrMissingInstance{Card: CardID(id)}
		}
		newID := g.cloneInstance(owner, inst, deep, true)
		return CardID(newID), nil
	}

	var inst CardInstance
	var found bool
	g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		inst, found = secret.Instance(id)
	})
	if !found {
		return Card{}, &ErrMissingInstance{Card: CardID(id)}
	}
	newID := g.cloneInstance(owner, inst, deep, false)
	return g.allocatePointer(owner, newID), nil
}

func (g *CardGame) cloneInstance(owner Player, src CardInstance, deep, public bool) InstanceID {
	var newAttachment *InstanceID
	if deep {
		if attID, ok := src.Attachment(); ok {
			if public {
				if att, ok := g.state.PublicInstance(attID); ok {
					id := g.newInstanceLike(att, public, owner, att.State())
					newAttachment = &id
				}
			} else {
				g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
					if att, ok := secret.Instance(attID); ok {
						id := g.newInstanceLike(att, public, owner, att.State())
						newAttachment = &id
					}
				})
			}
		}
	}

	state := src.Base().NewCardState(src.State())
	id := g.newInstanceLike(src, public, owner, state)
	if newAttachment != nil {
		if public {
			if inst, ok := g.state.PublicInstance(id); ok {
				g.state.setInstance(id, inst.setAttachment(newAttachment))
			}
		} else {
			g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
				if inst, ok := secret.Instance(id); ok {
					secret.insertInstance(inst.setAttachment(newAttachment))
				}
			})
		}
	}
	return id
}

func (g *CardGame) newInstanceLike(src CardInstance, public bool, owner Player, state CardState) InstanceID {
	if public {
		id := g.state.allocate(instanceSlot{})
		inst := CardInstance{id: id, base: src.Base(), state: state}
		g.state.setInstance(id, inst)
		index := g.insertIntoZone(owner, true, ZoneLimbo(true), id)
		g.emit(NewCardEvent(inst, ExactCardLocation{Player: owner, Zone: ZoneLimbo(true), Index: index}))
		return id
	}

	id := g.state.allocate(secretSlot(owner))
	g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		inst := CardInstance{id: id, base: src.Base(), state: state}
		secret.insertInstance(inst)
	})
	g.insertIntoZone(owner, false, ZoneLimbo(false), id)
	return id
}

// NewSecretCards lets f build any number of cards entirely inside
// player's secret via SecretInfo.NewInstance, then allocates a pointer
// to each new card. Nothing about the cards' bases or states is
// disclosed — only their count, via the returned pointer range.
func (g *CardGame) NewSecretCards(player Player, f func(SecretInfo)) []Card {
	var endPointers int
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, rng *rand.Rand, log func(Event)) {
		f(SecretInfo{
			Secret: secret,
			Random: rng,
			Log:    log,
			NewInstance: func(base BaseCard, state CardState) InstanceID {
				id := g.state.allocate(secretSlot(player))
				secret.insertInstance(CardInstance{id: id, base: base, state: state})
				secret.pushLimbo(id)
				g.state.Cards(player).pushLimboSecretHole()
				secret.allocatePointer(id)
				return id
			},
		})
		endPointers = len(secret.pointers)
	})
	return g.pointerRange(player, endPointers)
}

// NewSecretPointers lets f allocate pointers directly against player's
// secret (e.g. to cards it just inspected), then returns the new
// pointers.
func (g *CardGame) NewSecretPointers(player Player, f func(SecretInfo)) []Card {
	var endPointers int
	g.ctx.MutateSecret(player, func(secret *PlayerSecret, rng *rand.Rand, log func(Event)) {
		f(SecretInfo{Secret: secret, Random: rng, Log: log})
		endPointers = len(secret.pointers)
	})
	return g.pointerRange(player, endPointers)
}

// DrawCard draws a single card from player's deck into their secret
// hand, returning it if the deck was non-empty.
func (g *CardGame) DrawCard(player Player) (Card, bool) {
	cards := g.DrawCards(player, 1)
	if len(cards) == 0 {
		return Card{}, false
	}
	return cards[0], true
}

// DrawCards draws up to count uniformly random cards from player's deck
// into their secret hand.
func (g *CardGame) DrawCards(player Player, count int) []Card {
	deck := g.DeckCards(player)
	rng := g.ctx.Random()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	if count > len(deck) {
		count = len(deck)
	}
	chosen := deck[:count]

	g.MoveCards(chosen, player, ZoneHand(false))

	return chosen
}

// MoveCards is the per-element lift of MoveCard.
func (g *CardGame) MoveCards(cards []Card, toPlayer Player, toZone Zone) []error {
	errs := make([]error, len(cards))
	for i, c := range cards {
		_, _, err := g.MoveCard(c, toPlayer, toZone)
		errs[i] = err
	}
	return errs
}

// SortField reorders player's field in place according to less, a
// standard less-than comparator over the ids currently on the field, and
// emits a SortField event recording the permutation a public observer
// needs to replay the reordering: permutation[i] is the old index of the
// card now sitting at slot i. Field order is entirely public, so no
// reveal or bucket check is needed here.
func (g *CardGame) SortField(player Player, less func(a, b InstanceID) bool) []int {
	cards := g.state.Cards(player)
	field := cards.Field()
	permutation := make([]int, len(field))
	for i := range permutation {
		permutation[i] = i
	}
	sort.SliceStable(permutation, func(i, j int) bool {
		return less(field[permutation[i]], field[permutation[j]])
	})
	sorted := make([]InstanceID, len(field))
	for i, old := range permutation {
		sorted[i] = field[old]
	}
	cards.setField(sorted)
	g.emit(SortFieldEvent(player, permutation))
	return permutation
}

// cardInfoFor resolves card to a read-only CardInfo snapshot, calling
// reveal to learn as little as possible about a secret body.
func (g *CardGame) cardInfoFor(id InstanceID, owner Player, public bool) CardInfo {
	if public {
		inst, _ := g.state.PublicInstance(id)
		info := CardInfo{Instance: inst, Owner: owner, Zone: ZoneField()}
		if zone, ok := g.state.Cards(owner).Zone(id); ok {
			info.Zone = zone
		}
		if attID, ok := inst.Attachment(); ok {
			if att, ok := g.state.PublicInstance(attID); ok {
				info.Attachment = &att
			}
		}
		return info
	}

	return RevealUnique(g.ctx, owner,
		func(s *PlayerSecret) CardInfo {
			inst, _ := s.Instance(id)
			info := CardInfo{Instance: inst, Owner: owner}
			if zone, ok := s.Zone(id); ok {
				info.Zone = zone
			}
			if attID, ok := inst.Attachment(); ok {
				if att, ok := s.Instance(attID); ok {
					info.Attachment = &att
				}
			}
			return info
		},
		alwaysTrue[CardInfo],
	)
}

// RevealFromCard derives a value from card's CardInfo, disclosing
// nothing beyond what f's result necessarily reveals.
func RevealFromCard[T any](g *CardGame, card Card, f func(CardInfo) T) T {
	id, owner, public, _ := g.resolveSource(card)
	return f(g.cardInfoFor(id, owner, public))
}

// RevealFromCards is the per-element lift of RevealFromCard.
func RevealFromCards[T any](g *CardGame, cards []Card, f func(CardInfo) T) []T {
	results := make([]T, len(cards))
	for i, c := range cards {
		results[i] = RevealFromCard(g, c, f)
	}
	return results
}

// RevealParent reveals the parent card that card is attached to, if card
// is currently in an attachment zone. The parent is returned by its
// InstanceID, also when the parent is secret.
func (g *CardGame) RevealParent(card Card) (Card, bool) {
	id, owner, public, _ := g.resolveSource(card)
	parentID, ok := g.locationOwnerParent(id, owner, public)
	if !ok {
		return Card{}, false
	}
	return CardID(parentID), true
}

func (g *CardGame) locationOwnerParent(id InstanceID, owner Player, public bool) (InstanceID, bool) {
	if public {
		if loc, ok := g.state.Location(id); ok {
			if parent, ok := loc.Zone.Parent(); ok {
				if parentID, ok := parent.ID(); ok {
					return parentID, true
				}
			}
		}
		return 0, false
	}

	result := RevealUnique(g.ctx, owner,
		func(s *PlayerSecret) zoneIndex {
			if zone, _, ok := s.Location(id); ok {
				if parent, ok := zone.Parent(); ok {
					if parentID, ok := parent.ID(); ok {
						return zoneIndex{Index: int(parentID), Found: true}
					}
				}
			}
			return zoneIndex{}
		},
		alwaysTrue[zoneIndex],
	)
	if !result.Found {
		return 0, false
	}
	return InstanceID(result.Index), true
}

// RevealParents is the per-element lift of RevealParent.
func (g *CardGame) RevealParents(cards []Card) []Card {
	results := make([]Card, 0, len(cards))
	for _, c := range cards {
		if parent, ok := g.RevealParent(c); ok {
			results = append(results, parent)
		}
	}
	return results
}

// FilterCards keeps only the cards for which f's CardInfo predicate
// holds, at the cost of one reveal per card (the obvious per-element
// lift spec.md §9 calls for; no attempt is made to batch reveals, so
// each candidate's disclosure is independent).
func (g *CardGame) FilterCards(cards []Card, f func(CardInfo) bool) []Card {
	kept := make([]Card, 0, len(cards))
	for _, c := range cards {
		if RevealFromCard(g, c, f) {
			kept = append(kept, c)
		}
	}
	return kept
}

// CardInfoMut is handed to ModifyCard's callback: the same read-only
// view as CardInfo, plus a setter for the instance's CardState.
type CardInfoMut struct {
	CardInfo
	SetState func(CardState)
}

// ModifyCard mutates card's CardState in place via f, wherever its body
// currently lives, and emits ModifyCard (if public).
func (g *CardGame) ModifyCard(card Card, f func(CardInfoMut)) error {
	id, owner, public, err := g.resolveSource(card)
	if err != nil {
		return err
	}

	if public {
		inst, ok := g.state.PublicInstance(id)
		if !ok {
			return &ErrMissingInstance{Card: CardID(id)}
		}
		info := g.cardInfoFor(id, owner, public)
		var newState CardState
		f(CardInfoMut{CardInfo: info, SetState: func(s CardState) { newState = s }})
		if newState != nil {
			inst = inst.setState(newState)
			g.state.setInstance(id, inst)
			g.emit(ModifyCardEvent(inst))
		}
		return nil
	}

	g.ctx.MutateSecret(owner, func(secret *PlayerSecret, _ *rand.Rand, _ func(Event)) {
		inst, ok := secret.Instance(id)
		if !ok {
			return
		}
		info := g.cardInfoFor(id, owner, public)
		var newState CardState
		f(CardInfoMut{CardInfo: info, SetState: func(s CardState) { newState = s }})
		if newState != nil {
			secret.insertInstance(inst.setState(newState))
		}
	})
	return nil
}

// ModifyCards is the per-element lift of ModifyCard.
func (g *CardGame) ModifyCards(cards []Card, f func(CardInfoMut)) []error {
	errs := make([]error, len(cards))
	for i, c := range cards {
		errs[i] = g.ModifyCard(c, f)
	}
	return errs
}
