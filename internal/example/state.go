package example

import cardgame "card-movement-simulator"

// DuelState is the game-specific global state the engine's State
// interface wraps: whose turn it is and how many turns have elapsed.
// The engine never looks inside it; only DuelRules does.
type DuelState struct {
	Turn         int
	ActivePlayer cardgame.Player
}

// Equal implements cardgame.State.
func (s *DuelState) Equal(other cardgame.State) bool {
	o, ok := other.(*DuelState)
	return ok && o.Turn == s.Turn && o.ActivePlayer == s.ActivePlayer
}

// NewDuelState starts a fresh game with player 0 to move.
func NewDuelState() *DuelState {
	return &DuelState{ActivePlayer: cardgame.Player0}
}

// EndTurn advances the turn counter and swaps the active player.
func (s *DuelState) EndTurn() {
	s.Turn++
	s.ActivePlayer = s.ActivePlayer.Other()
}
