package cardgame

import "strconv"

// Player identifies one of the two participants in a game.
type Player int

// The only two valid players. The engine does not generalize beyond two —
// see spec.md §1 Non-goals.
const (
	Player0 Player = 0
	Player1 Player = 1
)

// Other returns the opposing player.
func (p Player) Other() Player {
	return 1 - p
}

func (p Player) String() string {
	return "player " + strconv.Itoa(int(p))
}
