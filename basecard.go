package cardgame

// CardState is opaque game-specific per-instance state. The engine never
// inspects it beyond cloning and replacing it wholesale; the rules client
// owns its shape and equality.
type CardState interface {
	// Equal reports whether two CardStates represent the same value. Used
	// only by rules-client code and tests, never by the engine's own
	// invariants.
	Equal(other CardState) bool
}

// BaseCard is the client-supplied, polymorphic definition of a card's
// fixed properties. The engine is agnostic to card semantics beyond these
// two hooks.
type BaseCard interface {
	// Attachment returns the BaseCard of this card's built-in attachment,
	// if it has one. Returning a non-nil value here is what makes NewCard
	// allocate a second InstanceID for the attachment.
	Attachment() BaseCard

	// NewCardState builds the initial CardState for an instance of this
	// base card. parent is nil for a freshly created card. NewCard passes
	// the new parent instance's state when building its built-in
	// attachment's state; CopyCard passes the source card's state when
	// building the clone's; ResetCard passes the state of the card's
	// attachment, if it has one.
	NewCardState(parent CardState) CardState
}
