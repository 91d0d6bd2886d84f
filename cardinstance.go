package cardgame

// CardInstance is a concrete card: its identity, its fixed base
// definition, an optional attachment riding on it, and its mutable,
// game-specific state. There is no public constructor outside the engine;
// instances are built only by CardGame's NewCard, CopyCard and
// NewSecretCards, and by Deserialize.
type CardInstance struct {
	id         InstanceID
	base       BaseCard
	attachment *InstanceID
	state      CardState
}

// ID returns this instance's identity.
func (c CardInstance) ID() InstanceID {
	return c.id
}

// Base returns this instance's fixed base card.
func (c CardInstance) Base() BaseCard {
	return c.base
}

// Attachment returns the InstanceID of the card attached to this one, if
// any.
func (c CardInstance) Attachment() (InstanceID, bool) {
	if c.attachment == nil {
		return 0, false
	}
	return *c.attachment, true
}

// State returns this instance's current CardState.
func (c CardInstance) State() CardState {
	return c.state
}

func (c CardInstance) setAttachment(id *InstanceID) CardInstance {
	c.attachment = id
	return c
}

func (c CardInstance) setState(state CardState) CardInstance {
	c.state = state
	return c
}
