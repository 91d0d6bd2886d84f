package cardgame

// PlayerSecret is a player's private zone catalogue: the actual card
// bodies and orderings that this player's opponent cannot see. A
// PlayerSecret is never serialized or transmitted to the other player; it
// is held by the transport on that player's behalf.
type PlayerSecret struct {
	deck          []InstanceID
	hand          []*InstanceID
	dust          []InstanceID
	limbo         []InstanceID
	cardSelection []InstanceID
	pointers      []InstanceID

	instances    map[InstanceID]CardInstance
	instanceKeys []InstanceID // insertion order, since map iteration order is not stable
}

func newPlayerSecret() *PlayerSecret {
	return &PlayerSecret{instances: make(map[InstanceID]CardInstance)}
}

// NewPlayerSecret returns an empty PlayerSecret, for transports and tests
// constructing a fresh game's secret state from outside this package.
func NewPlayerSecret() *PlayerSecret {
	return newPlayerSecret()
}

// Deck returns the player's deck list. Without shuffle-on-insert new
// cards are appended at the end; DrawCards picks uniformly at random
// rather than from either end.
func (s *PlayerSecret) Deck() []InstanceID { return append([]InstanceID(nil), s.deck...) }

// Hand returns the player's secret hand slots; a nil entry is a hole held
// publicly at the paired index of PlayerCards.Hand.
func (s *PlayerSecret) Hand() []*InstanceID { return append([]*InstanceID(nil), s.hand...) }

// Dust returns the player's secret dust pile, in order.
func (s *PlayerSecret) Dust() []InstanceID { return append([]InstanceID(nil), s.dust...) }

// Limbo returns the player's secret limbo cards. This list is not
// index-paired with PlayerCards.Limbo; only their sizes relate (see the
// consistency checker).
func (s *PlayerSecret) Limbo() []InstanceID { return append([]InstanceID(nil), s.limbo...) }

// CardSelection returns the player's secret card-selection pile, in
// order.
func (s *PlayerSecret) CardSelection() []InstanceID {
	return append([]InstanceID(nil), s.cardSelection...)
}

// Pointers returns the player's opaque pointer table: index i is the
// InstanceID that OpaquePointer{Owner: player, Index: i} currently
// dereferences to.
func (s *PlayerSecret) Pointers() []InstanceID { return append([]InstanceID(nil), s.pointers...) }

// Instance looks up a CardInstance by id among this player's secret
// bodies.
func (s *PlayerSecret) Instance(id InstanceID) (CardInstance, bool) {
	inst, ok := s.instances[id]
	return inst, ok
}

// Zone reports the zone of id among this player's secret catalogues,
// including attachments (whose parent may itself be public or secret).
func (s *PlayerSecret) Zone(id InstanceID) (Zone, bool) {
	z, _, ok := s.Location(id)
	return z, ok
}

// Location reports the zone and index of id among this player's secret
// catalogues: deck, hand, dust, limbo, card_selection, then (mirroring
// original_source's player_secret.rs::location) attachment parenthood
// across this player's own secret instances. Unlike the public side's
// deck (size only), the secret deck is a real ordered list of ids and so
// is searchable here.
func (s *PlayerSecret) Location(id InstanceID) (Zone, int, bool) {
	for i, did := range s.deck {
		if did == id {
			return ZoneDeck(), i, true
		}
	}
	for i, slot := range s.hand {
		if slot != nil && *slot == id {
			return ZoneHand(false), i, true
		}
	}
	for i, did := range s.dust {
		if did == id {
			return ZoneDust(false), i, true
		}
	}
	for i, lid := range s.limbo {
		if lid == id {
			return ZoneLimbo(false), i, true
		}
	}
	for i, cid := range s.cardSelection {
		if cid == id {
			return ZoneCardSelection(), i, true
		}
	}
	if parentID, ok := s.attachmentParent(id); ok {
		return ZoneAttachment(CardID(parentID)), 0, true
	}
	return Zone{}, 0, false
}

// attachmentParent scans this player's own secret instances for one whose
// attachment is id, mirroring GameState.attachmentParent's public-side
// scan.
func (s *PlayerSecret) attachmentParent(id InstanceID) (InstanceID, bool) {
	for _, key := range s.instanceKeys {
		inst := s.instances[key]
		if att, ok := inst.Attachment(); ok && att == id {
			return inst.ID(), true
		}
	}
	return 0, false
}

func (s *PlayerSecret) removeFrom(zone Zone, index int) {
	switch {
	case zone.IsDeck():
		s.deck = append(s.deck[:index], s.deck[index+1:]...)
	case zone.IsHand():
		s.hand = append(s.hand[:index], s.hand[index+1:]...)
	case zone.IsSecretDust():
		s.dust = append(s.dust[:index], s.dust[index+1:]...)
	case zone.IsSecretLimbo():
		s.limbo = append(s.limbo[:index], s.limbo[index+1:]...)
	case zone.IsCardSelection():
		s.cardSelection = append(s.cardSelection[:index], s.cardSelection[index+1:]...)
	}
}

func (s *PlayerSecret) insertInstance(inst CardInstance) {
	if _, exists := s.instances[inst.ID()]; !exists {
		s.instanceKeys = append(s.instanceKeys, inst.ID())
	}
	s.instances[inst.ID()] = inst
}

func (s *PlayerSecret) removeInstance(id InstanceID) {
	if _, exists := s.instances[id]; !exists {
		return
	}
	delete(s.instances, id)
	for i, k := range s.instanceKeys {
		if k == id {
			s.instanceKeys = append(s.instanceKeys[:i], s.instanceKeys[i+1:]...)
			break
		}
	}
}

func (s *PlayerSecret) pushDeck(id InstanceID) {
	s.deck = append(s.deck, id)
}

func (s *PlayerSecret) insertDeckAt(index int, id InstanceID) {
	s.deck = append(s.deck, 0)
	copy(s.deck[index+1:], s.deck[index:])
	s.deck[index] = id
}

func (s *PlayerSecret) pushHandSecret(id InstanceID) {
	s.hand = append(s.hand, &id)
}

func (s *PlayerSecret) pushHandPublicHole() {
	s.hand = append(s.hand, nil)
}

func (s *PlayerSecret) pushDust(id InstanceID) {
	s.dust = append(s.dust, id)
}

func (s *PlayerSecret) pushLimbo(id InstanceID) {
	s.limbo = append(s.limbo, id)
}

func (s *PlayerSecret) pushCardSelection(id InstanceID) {
	s.cardSelection = append(s.cardSelection, id)
}

func (s *PlayerSecret) allocatePointer(id InstanceID) OpaquePointer {
	index := len(s.pointers)
	s.pointers = append(s.pointers, id)
	return OpaquePointer{Index: index}
}

func (s *PlayerSecret) derefPointer(ptr OpaquePointer) (InstanceID, bool) {
	if ptr.Index < 0 || ptr.Index >= len(s.pointers) {
		return 0, false
	}
	return s.pointers[ptr.Index], true
}

// DebugSetPointer reassigns which InstanceID an already-allocated pointer
// slot resolves to, without touching the public pointer count or any
// zone catalogue. A debug-only escape hatch used by test harnesses to
// park a pointer on whichever bucket (public, this player's secret, the
// other player's secret) a scenario needs to exercise, not a production
// operation callers are meant to reach for. index must already be
// within range; it panics otherwise.
func (s *PlayerSecret) DebugSetPointer(index int, id InstanceID) {
	if index < 0 || index >= len(s.pointers) {
		panic("cardgame: DebugSetPointer index out of range")
	}
	s.pointers[index] = id
}

// appendDeckToPointers allocates one pointer per card currently in the
// deck, in deck order.
func (s *PlayerSecret) appendDeckToPointers() {
	s.pointers = append(s.pointers, s.deck...)
}

// appendDustToPointers allocates one pointer per card currently in
// secret dust, in dust order.
func (s *PlayerSecret) appendDustToPointers() {
	s.pointers = append(s.pointers, s.dust...)
}

// appendLimboToPointers allocates one pointer per card currently in
// secret limbo, in limbo order.
func (s *PlayerSecret) appendLimboToPointers() {
	s.pointers = append(s.pointers, s.limbo...)
}

// appendCardSelectionToPointers allocates one pointer per card currently
// in the card-selection pile, in pile order.
func (s *PlayerSecret) appendCardSelectionToPointers() {
	s.pointers = append(s.pointers, s.cardSelection...)
}
