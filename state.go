package regretmin

// Move is one legal choice at a decision point. The engine treats moves as
// opaque labels and only ever uses them as map keys, so a game must use the
// same label for the same action at every node sharing an information set.
type Move string

// InfoSetKey identifies what a player can distinguish about the state of the
// game when it is their turn to act. The engine never inspects its structure;
// it only requires equality, and that keys are stable for the life of a run.
type InfoSetKey string

// State is the capability a game must implement to be searched by the
// engine. Implementations in games/ show the expected shape.
type State interface {
	// LastPlayer returns the player who made the move that produced this
	// state, or NoPlayer at the initial state.
	LastPlayer() Player

	// NextPlayer returns the player to act: Chance when the environment
	// moves next, or NoPlayer when the state is terminal.
	NextPlayer() Player

	// InfoSet returns p's information set key for this state. It is defined
	// only when it is p's turn to act.
	InfoSet(p Player) InfoSetKey

	// Clone returns an independent deep copy. Sibling branches explored from
	// the same parent state must not observe each other's mutations.
	Clone() State

	// Apply carries out one move, mutating the state in place. It must keep
	// LastPlayer consistent with the move made.
	Apply(m Move)

	// Moves returns the legal moves in a fixed order, or nil at terminal
	// states.
	Moves() []Move

	// Result returns the terminal payoff from p's viewpoint. It is defined
	// only at terminal states and returns an error when the state matches no
	// recognized terminal rule, which is treated as a defect in the game
	// implementation. The engine's utility aggregation assumes zero-sum
	// results for the two competing players but does not enforce it.
	Result(p Player) (float64, error)
}
