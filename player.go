package regretmin

// Player represents the identity of an actor in the game.
type Player uint8

const (
	// Chance is the environment actor. Its moves are supplied by the
	// per-iteration outcome sequence, never chosen by a strategy.
	Chance Player = 0
	// Player1 and Player2 are the two competing players.
	Player1 Player = 1
	Player2 Player = 2
	// NoPlayer is reported by State.NextPlayer at terminal states, and by
	// State.LastPlayer before anyone has moved.
	NoPlayer Player = 3
)

var playerStr = [...]string{
	"Chance",
	"Player1",
	"Player2",
	"NoPlayer",
}

func (p Player) String() string {
	return playerStr[p]
}

// Opponent returns the other competing player. It is only meaningful for
// Player1 and Player2.
func (p Player) Opponent() Player {
	return 3 - p
}
