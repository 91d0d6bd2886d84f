package cardgame

// State is the client-supplied, game-specific global state (turn number,
// phase, scores, and whatever else a particular game tracks outside any
// single card). The engine never inspects it.
type State interface {
	Equal(other State) bool
}

// GameState is the complete public state of a game: the card pool shared
// by both players, each player's public zone catalogue, and the
// game-specific State. It contains no secrets and is what gets
// serialized for spectators or for resuming a game from the transport's
// point of view.
type GameState struct {
	pool                []instanceSlot
	players             [2]PlayerCards
	shuffleDeckOnInsert bool
	state               State
}

// NewGameState creates an empty game in the given initial State.
// shuffleDeckOnInsert is persisted with the game and controls whether
// MoveCard inserts into a deck at a random index or on top.
func NewGameState(state State, shuffleDeckOnInsert bool) *GameState {
	return &GameState{state: state, shuffleDeckOnInsert: shuffleDeckOnInsert}
}

// ShuffleDeckOnInsert reports whether deck insertion draws a uniformly
// random index.
func (g *GameState) ShuffleDeckOnInsert() bool { return g.shuffleDeckOnInsert }

// State returns the game-specific global state.
func (g *GameState) State() State { return g.state }

// SetState replaces the game-specific global state.
func (g *GameState) SetState(state State) { g.state = state }

// Cards returns the public catalogue for player p.
func (g *GameState) Cards(p Player) *PlayerCards { return &g.players[p] }

// Exists reports whether id names a live instance, public or secret. Use
// Owner to learn which player's secret holds it.
func (g *GameState) Exists(id InstanceID) bool {
	return int(id) >= 0 && int(id) < len(g.pool)
}

// Owner returns the player whose secret currently holds id's body, if
// any. Returns false for public instances and for unknown ids.
func (g *GameState) Owner(id InstanceID) (Player, bool) {
	if !g.Exists(id) {
		return 0, false
	}
	return g.pool[id].owner()
}

// PublicInstance returns the CardInstance for id if it is currently
// public. Use InstanceID.Instance to also search a player's secret.
func (g *GameState) PublicInstance(id InstanceID) (CardInstance, bool) {
	if !g.Exists(id) {
		return CardInstance{}, false
	}
	return g.pool[id].instance()
}

// Location finds a card among both players' public catalogues, including
// attachment parents.
func (g *GameState) Location(id InstanceID) (CardLocation, bool) {
	for p := Player0; p <= Player1; p++ {
		cards := &g.players[p]
		if zone, index, ok := cards.Location(id); ok {
			return newCardLocation(p, zone, index), true
		}
	}
	for p := Player0; p <= Player1; p++ {
		if parentID, ok := g.attachmentParent(p, id); ok {
			return newCardLocationNoIndex(p, ZoneAttachment(CardID(parentID))), true
		}
	}
	return CardLocation{}, false
}

// attachmentParent scans player p's public instances for one whose
// attachment is id.
func (g *GameState) attachmentParent(p Player, id InstanceID) (InstanceID, bool) {
	for _, slot := range g.pool {
		inst, ok := slot.instance()
		if !ok {
			continue
		}
		if att, ok := inst.Attachment(); ok && att == id {
			if _, _, ok := g.players[p].Location(inst.ID()); ok {
				return inst.ID(), true
			}
		}
	}
	return 0, false
}

func (g *GameState) allocate(slot instanceSlot) InstanceID {
	id := InstanceID(len(g.pool))
	g.pool = append(g.pool, slot)
	return id
}

func (g *GameState) setSlot(id InstanceID, slot instanceSlot) {
	g.pool[id] = slot
}

func (g *GameState) setInstance(id InstanceID, inst CardInstance) {
	g.pool[id] = publicSlot(inst)
}
