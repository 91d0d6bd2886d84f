package cardgame

// eventKind discriminates the Event tagged union.
type eventKind int

const (
	eventNewCard eventKind = iota
	eventNewPointer
	eventResetCard
	eventModifyCard
	eventMoveCard
	eventSortField
	eventGame
)

// Event is the externally visible record of everything that happens to
// public state during a game. Events never carry secret information —
// only what each connected client is entitled to know given the reveals
// already performed.
type Event struct {
	kind eventKind

	instance    *CardInstance
	location    ExactCardLocation
	pointer     OpaquePointer
	from        ExactCardLocation
	to          ExactCardLocation
	player      Player
	permutation []int
	gameEvent   any
}

// NewCardEvent reports a card's creation in public state. A card that
// moves from secret to public state is reported by MoveCardEvent instead.
func NewCardEvent(instance CardInstance, location ExactCardLocation) Event {
	return Event{kind: eventNewCard, instance: &instance, location: location}
}

// NewPointerEvent reports the creation of an OpaquePointer to an exact
// location. Not emitted for pointers created privately in secret state.
func NewPointerEvent(pointer OpaquePointer, location ExactCardLocation) Event {
	return Event{kind: eventNewPointer, pointer: pointer, location: location}
}

// ResetCardEvent reports a card whose state and attachment were reset to
// their base values.
func ResetCardEvent(instance CardInstance) Event {
	return Event{kind: eventResetCard, instance: &instance}
}

// ModifyCardEvent reports a card whose state changed in place.
func ModifyCardEvent(instance CardInstance) Event {
	return Event{kind: eventModifyCard, instance: &instance}
}

// MoveCardEvent reports a card's movement between zones. instance is nil
// whenever the card's body is secret after the move, so no body is
// disclosed.
func MoveCardEvent(instance *CardInstance, from, to ExactCardLocation) Event {
	return Event{kind: eventMoveCard, instance: instance, from: from, to: to}
}

// SortFieldEvent reports a reordering of a player's field.
func SortFieldEvent(player Player, permutation []int) Event {
	return Event{kind: eventSortField, player: player, permutation: permutation}
}

// GameEventOf reports a game-specific event, opaque to the engine.
func GameEventOf(event any) Event {
	return Event{kind: eventGame, gameEvent: event}
}

// AsNewCard reports the payload if this is a NewCard event.
func (e Event) AsNewCard() (CardInstance, ExactCardLocation, bool) {
	if e.kind != eventNewCard {
		return CardInstance{}, ExactCardLocation{}, false
	}
	return *e.instance, e.location, true
}

// AsNewPointer reports the payload if this is a NewPointer event.
func (e Event) AsNewPointer() (OpaquePointer, ExactCardLocation, bool) {
	if e.kind != eventNewPointer {
		return OpaquePointer{}, ExactCardLocation{}, false
	}
	return e.pointer, e.location, true
}

// AsResetCard reports the payload if this is a ResetCard event.
func (e Event) AsResetCard() (CardInstance, bool) {
	if e.kind != eventResetCard {
		return CardInstance{}, false
	}
	return *e.instance, true
}

// AsModifyCard reports the payload if this is a ModifyCard event.
func (e Event) AsModifyCard() (CardInstance, bool) {
	if e.kind != eventModifyCard {
		return CardInstance{}, false
	}
	return *e.instance, true
}

// AsMoveCard reports the payload if this is a MoveCard event.
func (e Event) AsMoveCard() (*CardInstance, ExactCardLocation, ExactCardLocation, bool) {
	if e.kind != eventMoveCard {
		return nil, ExactCardLocation{}, ExactCardLocation{}, false
	}
	return e.instance, e.from, e.to, true
}

// AsSortField reports the payload if this is a SortField event.
func (e Event) AsSortField() (Player, []int, bool) {
	if e.kind != eventSortField {
		return 0, nil, false
	}
	return e.player, e.permutation, true
}

// AsGameEvent reports the payload if this is a GameEvent.
func (e Event) AsGameEvent() (any, bool) {
	if e.kind != eventGame {
		return nil, false
	}
	return e.gameEvent, true
}
