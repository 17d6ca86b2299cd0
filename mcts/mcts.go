// Package mcts implements UCT Monte-Carlo tree search over the same game
// states the regret engine consumes. It is a different algorithm family: no
// information sets and no regret bookkeeping. Each iteration selects down
// the tree by the UCB1 bound, expands one untried move, plays a uniformly
// random rollout to a terminal state, and backpropagates the result.
//
// Search assumes two alternating players and results in [0, 1] from the
// scored player's viewpoint.
package mcts

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/fortuna-games/regretmin"
)

// node is one node of the search tree. wins is always from the viewpoint of
// the player who just moved into the node.
type node struct {
	move       regretmin.Move
	parent     *node
	children   []*node
	wins       float64
	visits     float64
	untried    []regretmin.Move
	lastPlayer regretmin.Player
}

func newNode(m regretmin.Move, parent *node, state regretmin.State) *node {
	return &node{
		move:       m,
		parent:     parent,
		untried:    state.Moves(),
		lastPlayer: state.LastPlayer(),
	}
}

// selectChild picks the child maximizing the UCB1 bound
// wins/visits + sqrt(2 ln N / visits).
func (n *node) selectChild() *node {
	var best *node
	bestScore := math.Inf(-1)
	for _, c := range n.children {
		score := c.wins/c.visits + math.Sqrt(2*math.Log(n.visits)/c.visits)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// addChild removes m from the untried moves and attaches a new child for it.
func (n *node) addChild(m regretmin.Move, state regretmin.State) *node {
	for i, um := range n.untried {
		if um == m {
			n.untried = append(n.untried[:i], n.untried[i+1:]...)
			break
		}
	}
	child := newNode(m, n, state)
	n.children = append(n.children, child)
	return child
}

func (n *node) update(result float64) {
	n.visits++
	n.wins += result
}

func (n *node) String() string {
	return fmt.Sprintf("[M:%q W/V:%g/%g U:%v]", n.move, n.wins, n.visits, n.untried)
}

// Search runs iterMax UCT iterations from rootState and returns the most
// visited root move. rng drives expansion and rollout move selection, so a
// fixed seed makes the search reproducible.
func Search(rootState regretmin.State, iterMax int, rng *rand.Rand) (regretmin.Move, error) {
	root := newNode("", nil, rootState)
	if len(root.untried) == 0 {
		return "", errors.New("no legal moves to search")
	}

	for i := 0; i < iterMax; i++ {
		n := root
		state := rootState.Clone()

		// Select down through fully expanded non-terminal nodes.
		for len(n.untried) == 0 && len(n.children) > 0 {
			n = n.selectChild()
			state.Apply(n.move)
		}

		// Expand one untried move, if the node is non-terminal.
		if len(n.untried) > 0 {
			m := n.untried[rng.Intn(len(n.untried))]
			state.Apply(m)
			n = n.addChild(m, state)
		}

		// Rollout to a terminal state with uniformly random moves.
		for moves := state.Moves(); len(moves) > 0; moves = state.Moves() {
			state.Apply(moves[rng.Intn(len(moves))])
		}

		// Backpropagate, scoring each node from its just-moved player's
		// viewpoint.
		for ; n != nil; n = n.parent {
			result, err := state.Result(n.lastPlayer)
			if err != nil {
				return "", errors.Wrap(err, "scoring rollout")
			}
			n.update(result)
		}
	}

	if glog.V(1) {
		glog.Info(root.childrenString())
	}

	if len(root.children) == 0 {
		return "", errors.New("search ran no iterations")
	}
	best := root.children[0]
	for _, c := range root.children[1:] {
		if c.visits > best.visits {
			best = c
		}
	}
	return best.move, nil
}

func (n *node) childrenString() string {
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
