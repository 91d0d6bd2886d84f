package cardgame

// PlayerCards is a player's public zone catalogue: what every observer
// can see about where that player's cards sit, with holes standing in for
// cards whose body currently lives in that player's secret.
type PlayerCards struct {
	deck          int
	hand          []*InstanceID
	field         []InstanceID
	graveyard     []InstanceID
	dust          []InstanceID
	limbo         []*InstanceID
	casting       []InstanceID
	cardSelection int
	pointers      int
}

// Deck returns the size of the player's deck; its contents are never
// public.
func (p *PlayerCards) Deck() int { return p.deck }

// Hand returns the player's public hand slots; a nil entry is a hole held
// secretly at the paired index of that player's PlayerSecret.Hand.
func (p *PlayerCards) Hand() []*InstanceID { return append([]*InstanceID(nil), p.hand...) }

// Field returns the player's field, in order.
func (p *PlayerCards) Field() []InstanceID { return append([]InstanceID(nil), p.field...) }

// Graveyard returns the player's graveyard, in order.
func (p *PlayerCards) Graveyard() []InstanceID { return append([]InstanceID(nil), p.graveyard...) }

// Dust returns the player's public dust pile, in order.
func (p *PlayerCards) Dust() []InstanceID { return append([]InstanceID(nil), p.dust...) }

// Limbo returns the player's public limbo slots; a nil entry is a hole
// whose body sits in that player's secret limbo (not index-paired — see
// PlayerSecret.Limbo).
func (p *PlayerCards) Limbo() []*InstanceID { return append([]*InstanceID(nil), p.limbo...) }

// Casting returns the player's casting zone, in order.
func (p *PlayerCards) Casting() []InstanceID { return append([]InstanceID(nil), p.casting...) }

// CardSelection returns the size of the player's card-selection zone; its
// contents are never public.
func (p *PlayerCards) CardSelection() int { return p.cardSelection }

// Pointers returns the size of this player's opaque pointer table.
func (p *PlayerCards) Pointers() int { return p.pointers }

// Zone reports the zone of id among this player's public catalogues, if
// any.
func (p *PlayerCards) Zone(id InstanceID) (Zone, bool) {
	z, _, ok := p.Location(id)
	return z, ok
}

// Location reports the zone and index of id among this player's public,
// non-attachment catalogues, scanning hand, field, graveyard, dust, limbo,
// then casting.
func (p *PlayerCards) Location(id InstanceID) (Zone, int, bool) {
	for i, slot := range p.hand {
		if slot != nil && *slot == id {
			return ZoneHand(true), i, true
		}
	}
	for i, fid := range p.field {
		if fid == id {
			return ZoneField(), i, true
		}
	}
	for i, gid := range p.graveyard {
		if gid == id {
			return ZoneGraveyard(), i, true
		}
	}
	for i, did := range p.dust {
		if did == id {
			return ZoneDust(true), i, true
		}
	}
	for i, slot := range p.limbo {
		if slot != nil && *slot == id {
			return ZoneLimbo(true), i, true
		}
	}
	for i, cid := range p.casting {
		if cid == id {
			return ZoneCasting(), i, true
		}
	}
	return Zone{}, 0, false
}

// removeFrom removes the card at index from zone: a decrement for the
// sized-only zones (Deck, CardSelection), a splice for ordered zones.
func (p *PlayerCards) removeFrom(zone Zone, index int) {
	switch {
	case zone.IsDeck():
		p.deck--
	case zone.IsHand():
		p.hand = append(p.hand[:index], p.hand[index+1:]...)
	case zone.IsField():
		p.field = append(p.field[:index], p.field[index+1:]...)
	case zone.IsGraveyard():
		p.graveyard = append(p.graveyard[:index], p.graveyard[index+1:]...)
	case zone.IsPublicDust():
		p.dust = append(p.dust[:index], p.dust[index+1:]...)
	case zone.IsPublicLimbo():
		p.limbo = append(p.limbo[:index], p.limbo[index+1:]...)
	case zone.IsCasting():
		p.casting = append(p.casting[:index], p.casting[index+1:]...)
	case zone.IsCardSelection():
		p.cardSelection--
	}
}

func (p *PlayerCards) pushHandPublic(id InstanceID) {
	p.hand = append(p.hand, &id)
}

func (p *PlayerCards) pushHandSecretHole() {
	p.hand = append(p.hand, nil)
}

func (p *PlayerCards) pushField(id InstanceID) {
	p.field = append(p.field, id)
}

// setField replaces the field in place, for in-order reshuffles
// (SortField) that change position but not membership.
func (p *PlayerCards) setField(field []InstanceID) {
	p.field = field
}

func (p *PlayerCards) pushGraveyard(id InstanceID) {
	p.graveyard = append(p.graveyard, id)
}

func (p *PlayerCards) pushDust(id InstanceID) {
	p.dust = append(p.dust, id)
}

func (p *PlayerCards) pushLimboPublic(id InstanceID) {
	p.limbo = append(p.limbo, &id)
}

func (p *PlayerCards) pushLimboSecretHole() {
	p.limbo = append(p.limbo, nil)
}

func (p *PlayerCards) pushCasting(id InstanceID) {
	p.casting = append(p.casting, id)
}

func (p *PlayerCards) incrementDeck() {
	p.deck++
}

func (p *PlayerCards) insertDeckAt(_ int) {
	// Deck contents are never public; only the size is tracked here.
	p.deck++
}

func (p *PlayerCards) incrementCardSelection() {
	p.cardSelection++
}

func (p *PlayerCards) incrementPointers() int {
	p.pointers++
	return p.pointers - 1
}
