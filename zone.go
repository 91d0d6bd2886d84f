package cardgame

// zoneKind discriminates the Zone tagged union.
type zoneKind int

const (
	zoneDeck zoneKind = iota
	zoneHand
	zoneField
	zoneGraveyard
	zoneDust
	zoneAttachment
	zoneLimbo
	zoneCasting
	zoneCardSelection
)

// Zone names where a card sits. Hand, Dust, and Limbo each carry a Public
// flag distinguishing the public sub-zone of that category from the secret
// one; Attachment carries the parent Card it rides on.
type Zone struct {
	kind   zoneKind
	public bool
	parent Card
}

func ZoneDeck() Zone                { return Zone{kind: zoneDeck} }
func ZoneHand(public bool) Zone     { return Zone{kind: zoneHand, public: public} }
func ZoneField() Zone               { return Zone{kind: zoneField} }
func ZoneGraveyard() Zone           { return Zone{kind: zoneGraveyard} }
func ZoneDust(public bool) Zone     { return Zone{kind: zoneDust, public: public} }
func ZoneLimbo(public bool) Zone    { return Zone{kind: zoneLimbo, public: public} }
func ZoneCasting() Zone             { return Zone{kind: zoneCasting} }
func ZoneCardSelection() Zone       { return Zone{kind: zoneCardSelection} }
func ZoneAttachment(parent Card) Zone {
	return Zone{kind: zoneAttachment, parent: parent}
}

func (z Zone) IsDeck() bool          { return z.kind == zoneDeck }
func (z Zone) IsHand() bool          { return z.kind == zoneHand }
func (z Zone) IsPublicHand() bool    { return z.kind == zoneHand && z.public }
func (z Zone) IsSecretHand() bool    { return z.kind == zoneHand && !z.public }
func (z Zone) IsField() bool         { return z.kind == zoneField }
func (z Zone) IsGraveyard() bool     { return z.kind == zoneGraveyard }
func (z Zone) IsDust() bool          { return z.kind == zoneDust }
func (z Zone) IsPublicDust() bool    { return z.kind == zoneDust && z.public }
func (z Zone) IsSecretDust() bool    { return z.kind == zoneDust && !z.public }
func (z Zone) IsAttachment() bool    { return z.kind == zoneAttachment }
func (z Zone) IsLimbo() bool         { return z.kind == zoneLimbo }
func (z Zone) IsPublicLimbo() bool   { return z.kind == zoneLimbo && z.public }
func (z Zone) IsSecretLimbo() bool   { return z.kind == zoneLimbo && !z.public }
func (z Zone) IsCasting() bool       { return z.kind == zoneCasting }
func (z Zone) IsCardSelection() bool { return z.kind == zoneCardSelection }

// Parent returns the attachment parent and true if this is an Attachment
// zone, or the zero Card and false otherwise.
func (z Zone) Parent() (Card, bool) {
	if z.kind != zoneAttachment {
		return Card{}, false
	}
	return z.parent, true
}

// Public reports whether this zone's card bodies are visible in public
// state. Hand, Dust, and Limbo carry an explicit flag; Deck and
// CardSelection are always secret (PlayerCards tracks only their size);
// Field, Graveyard, and Casting are always public.
func (z Zone) Public() bool {
	switch z.kind {
	case zoneHand, zoneDust, zoneLimbo:
		return z.public
	case zoneDeck, zoneCardSelection:
		return false
	default:
		return true
	}
}

func (z Zone) String() string {
	switch z.kind {
	case zoneDeck:
		return "deck"
	case zoneHand:
		return visibilityLabel("hand", z.public)
	case zoneField:
		return "field"
	case zoneGraveyard:
		return "graveyard"
	case zoneDust:
		return visibilityLabel("dust", z.public)
	case zoneAttachment:
		return "attachment of " + z.parent.String()
	case zoneLimbo:
		return visibilityLabel("limbo", z.public)
	case zoneCasting:
		return "casting"
	case zoneCardSelection:
		return "card selection"
	default:
		return "unknown zone"
	}
}

func visibilityLabel(name string, public bool) string {
	if public {
		return "public " + name
	}
	return "secret " + name
}

// Equal reports structural equality: most zone kinds compare by kind and
// public flag; two Attachment zones are equal iff their parent Cards are
// determinably equal, which may fail with ErrIncomparableZones when the
// parents can't be compared without a reveal (see Card.Equal).
func (z Zone) Equal(other Zone) (bool, error) {
	if z.kind != zoneAttachment || other.kind != zoneAttachment {
		return z.kind == other.kind && z.public == other.public, nil
	}

	eq, err := z.parent.Equal(other.parent)
	if err != nil {
		return false, &ErrIncomparableZones{A: z, B: other}
	}
	return eq, nil
}

// NotEqual is the negation of Equal, propagating the same error.
func (z Zone) NotEqual(other Zone) (bool, error) {
	eq, err := z.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}
