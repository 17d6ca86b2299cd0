package regretmin

import (
	"expvar"

	"github.com/pkg/errors"
)

var (
	nodesVisited         = expvar.NewInt("nodes_visited")
	terminalNodesVisited = expvar.NewInt("nodes_visited/terminal")
	chanceNodesVisited   = expvar.NewInt("nodes_visited/chance")
	playerNodesVisited   = expvar.NewInt("nodes_visited/player")
)

// Walker expands one full game tree per call, updating both players' policy
// tables as the recursion unwinds out of each decision node. It is purely
// sequential: tables are mutated in place, so concurrent Walk calls on the
// same Walker would corrupt the running averages.
type Walker struct {
	tables map[Player]*PolicyTable
}

// NewWalker builds a walker over the two players' policy tables.
func NewWalker(p1, p2 *PolicyTable) *Walker {
	return &Walker{
		tables: map[Player]*PolicyTable{
			Player1: p1,
			Player2: p2,
		},
	}
}

// Table returns player p's policy table, for reading out strategy sums and
// regrets after the iteration loop.
func (w *Walker) Table(p Player) *PolicyTable {
	return w.tables[p]
}

// Walk runs one iteration from root, leaving every visited node's utilities
// finalized; the root's utilities are the iteration's expected values.
//
// sequence supplies the chance outcomes consumed, in order, by chance nodes
// during this one traversal. This is a deterministic substitute for sampling:
// chance nodes do not branch and their outcomes are never probability-
// weighted, so the opponent reach passed to regret updates excludes any
// chance contribution. The regrets computed are therefore not textbook
// vanilla-CFR values under a stochastic chance model; generalizing would
// require enumerating and weighting chance children here.
//
// On error the traversal is aborted; table state touched by the partial
// iteration is not valid and should not be reported.
func (w *Walker) Walk(root *Node, sequence []Move) error {
	return w.walk(root, 1, 1, sequence)
}

func (w *Walker) walk(node *Node, reachP1, reachP2 float64, sequence []Move) error {
	nodesVisited.Add(1)

	player := node.State.NextPlayer()
	switch player {
	case NoPlayer:
		terminalNodesVisited.Add(1)
		return w.walkTerminal(node)
	case Chance:
		chanceNodesVisited.Add(1)
		return w.walkChance(node, reachP1, reachP2, sequence)
	default:
		playerNodesVisited.Add(1)
		return w.walkPlayer(node, player, reachP1, reachP2, sequence)
	}
}

// walkTerminal reads both players' results off the game state. This is the
// only place utilities originate; everything else is weighted aggregation.
func (w *Walker) walkTerminal(node *Node) error {
	u1, err := node.State.Result(Player1)
	if err != nil {
		return errors.Wrapf(err, "terminal result for %v", Player1)
	}
	u2, err := node.State.Result(Player2)
	if err != nil {
		return errors.Wrapf(err, "terminal result for %v", Player2)
	}
	node.setUtility(u1, u2)
	return nil
}

// walkChance consumes exactly one outcome from the front of the sequence and
// applies it as the sole move, passing reach probabilities through unchanged.
func (w *Walker) walkChance(node *Node, reachP1, reachP2 float64, sequence []Move) error {
	if len(sequence) == 0 {
		return errors.New("chance outcome sequence exhausted at a chance node")
	}

	outcome := sequence[0]
	next := node.State.Clone()
	next.Apply(outcome)
	child := newChild(node, outcome, next)
	if err := w.walk(child, reachP1, reachP2, sequence[1:]); err != nil {
		return err
	}
	node.Children[outcome] = child
	node.setUtility(child.Utility(Player1), child.Utility(Player2))
	return nil
}

func (w *Walker) walkPlayer(node *Node, player Player, reachP1, reachP2 float64, sequence []Move) error {
	info := node.State.InfoSet(player)
	table := w.tables[player]

	// Fix the mixing probabilities for this iteration before any child is
	// expanded.
	if err := table.UpdateStrategy(info); err != nil {
		return errors.Wrapf(err, "updating %v strategy", player)
	}

	moves := node.State.Moves()
	actionUtils := make(map[Move]float64, len(moves))
	var u1, u2 float64
	for _, m := range moves {
		prob, err := table.GetStrategy(info, m)
		if err != nil {
			return errors.Wrapf(err, "reading %v strategy", player)
		}

		next := node.State.Clone()
		next.Apply(m)
		child := newChild(node, m, next)
		if player == Player1 {
			err = w.walk(child, reachP1*prob, reachP2, sequence)
		} else {
			err = w.walk(child, reachP1, reachP2*prob, sequence)
		}
		if err != nil {
			return err
		}
		node.Children[m] = child

		// The acting player's probabilities weight both players' utilities:
		// this is a counterfactual value, not acting-player-only bookkeeping.
		u1 += prob * child.Utility(Player1)
		u2 += prob * child.Utility(Player2)
		actionUtils[m] = child.Utility(player)
	}
	node.setUtility(u1, u2)

	oppReach := reachP2
	if player == Player2 {
		oppReach = reachP1
	}
	if err := table.UpdateRegret(info, oppReach, node.Utility(player), actionUtils); err != nil {
		return errors.Wrapf(err, "updating %v regret", player)
	}
	return nil
}
