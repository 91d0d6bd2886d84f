package cardgame

// Card names a card instance, either transparently (InstanceID) or
// opaquely (OpaquePointer). Exactly one of the two fields is meaningful;
// IsPointer reports which.
type Card struct {
	id        InstanceID
	ptr       OpaquePointer
	isPointer bool
}

// CardID wraps an InstanceID as a Card.
func CardID(id InstanceID) Card {
	return Card{id: id}
}

// CardPointer wraps an OpaquePointer as a Card.
func CardPointer(ptr OpaquePointer) Card {
	return Card{ptr: ptr, isPointer: true}
}

// IsPointer reports whether this Card names its referent opaquely.
func (c Card) IsPointer() bool {
	return c.isPointer
}

// ID returns the underlying InstanceID and true, or the zero value and
// false if this Card is a pointer.
func (c Card) ID() (InstanceID, bool) {
	if c.isPointer {
		return 0, false
	}
	return c.id, true
}

// Pointer returns the underlying OpaquePointer and true, or the zero value
// and false if this Card is an InstanceID.
func (c Card) Pointer() (OpaquePointer, bool) {
	if !c.isPointer {
		return OpaquePointer{}, false
	}
	return c.ptr, true
}

func (c Card) String() string {
	if c.isPointer {
		return c.ptr.String()
	}
	return c.id.String()
}

// Equal reports whether two cards are determinably equal from public data
// alone: two InstanceIDs compare directly, and two structurally identical
// pointers compare equal. Any other combination — a pointer against an ID,
// or two distinct pointers — cannot be compared without a reveal and
// returns ErrIncomparableCards.
func (c Card) Equal(other Card) (bool, error) {
	switch {
	case !c.isPointer && !other.isPointer:
		return c.id == other.id, nil
	case c.isPointer && other.isPointer:
		if c.ptr == other.ptr {
			return true, nil
		}
		return false, &ErrIncomparableCards{A: c, B: other}
	default:
		return false, &ErrIncomparableCards{A: c, B: other}
	}
}

// NotEqual is the negation of Equal, propagating the same error.
func (c Card) NotEqual(other Card) (bool, error) {
	eq, err := c.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}
