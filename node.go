package regretmin

// Node is one node in a single iteration's game tree. Nodes are created as
// the walk expands states, finalized bottom-up as the recursion returns, and
// discarded with the whole tree when the root call returns; nothing is
// retained across iterations.
type Node struct {
	// Move is the move that produced this node; empty at the root.
	Move Move
	// Parent is nil at the root.
	Parent *Node
	// State is the game state this node represents.
	State State
	// LastPlayer is the player who moved into this state.
	LastPlayer Player
	// Children maps each expanded move to the resulting node.
	Children map[Move]*Node

	utility  [2]float64
	resolved bool
}

// NewRoot wraps the initial state for one iteration's traversal.
func NewRoot(state State) *Node {
	return &Node{
		State:      state,
		LastPlayer: state.LastPlayer(),
		Children:   make(map[Move]*Node),
	}
}

func newChild(parent *Node, m Move, state State) *Node {
	return &Node{
		Move:       m,
		Parent:     parent,
		State:      state,
		LastPlayer: state.LastPlayer(),
		Children:   make(map[Move]*Node),
	}
}

// Utility returns p's counterfactual utility for this node's subtree. It is
// meaningful only once Resolved reports true.
func (n *Node) Utility(p Player) float64 {
	return n.utility[p-1]
}

// Resolved reports whether this node's subtree has been fully evaluated.
func (n *Node) Resolved() bool {
	return n.resolved
}

func (n *Node) setUtility(u1, u2 float64) {
	n.utility[0] = u1
	n.utility[1] = u2
	n.resolved = true
}
