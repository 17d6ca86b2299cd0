package regretmin_test

import (
	"math"
	"testing"

	"github.com/fortuna-games/regretmin"
	"github.com/fortuna-games/regretmin/games/cointoss"
)

const tol = 1e-9

func newCoinTossWalker(t *testing.T) *regretmin.Walker {
	t.Helper()
	p1, err := regretmin.NewPolicyTable(
		cointoss.InfoSets(regretmin.Player1), cointoss.Actions(regretmin.Player1))
	if err != nil {
		t.Fatal(err)
	}
	p2, err := regretmin.NewPolicyTable(
		cointoss.InfoSets(regretmin.Player2), cointoss.Actions(regretmin.Player2))
	if err != nil {
		t.Fatal(err)
	}
	return regretmin.NewWalker(p1, p2)
}

func runIterations(t *testing.T, w *regretmin.Walker, n int) {
	t.Helper()
	outcomes := []regretmin.Move{cointoss.Heads, cointoss.Tails}
	for i := 0; i < n; i++ {
		root := regretmin.NewRoot(cointoss.New())
		if err := w.Walk(root, []regretmin.Move{outcomes[i%2]}); err != nil {
			t.Fatalf("iteration %d failed: %v", i, err)
		}
	}
}

func TestWalk_OneIterationHeads(t *testing.T) {
	w := newCoinTossWalker(t)
	root := regretmin.NewRoot(cointoss.New())
	if err := w.Walk(root, []regretmin.Move{cointoss.Heads}); err != nil {
		t.Fatal(err)
	}

	// Both strategies are uniform on the first iteration: selling is worth
	// 0.5 and playing is worth 0 to player 1, mixed equally through the
	// chance copy at the root.
	if u := root.Utility(regretmin.Player1); math.Abs(u-0.25) > tol {
		t.Errorf("root utility for Player1 = %v, expected 0.25", u)
	}
	if u := root.Utility(regretmin.Player2); math.Abs(u+0.25) > tol {
		t.Errorf("root utility for Player2 = %v, expected -0.25", u)
	}

	p1 := w.Table(regretmin.Player1)
	p2 := w.Table(regretmin.Player2)

	// Player 2's single information set banked the pre-update uniform
	// strategy.
	sum, err := p2.StrategySum(cointoss.NoInfo)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range []regretmin.Move{cointoss.Heads, cointoss.Tails} {
		if math.Abs(sum[a]-0.5) > tol {
			t.Errorf("Player2 strategy sum for %q = %v, expected 0.5", a, sum[a])
		}
	}

	// Only the realized toss's information set was visited for player 1.
	headInfo := regretmin.InfoSetKey(cointoss.Heads)
	tailInfo := regretmin.InfoSetKey(cointoss.Tails)
	if visits, _ := p1.Visits(headInfo); visits != 1 {
		t.Errorf("Player1 visits at %q = %d, expected 1", headInfo, visits)
	}
	if visits, _ := p1.Visits(tailInfo); visits != 0 {
		t.Errorf("Player1 visits at %q = %d, expected 0", tailInfo, visits)
	}
	if visits, _ := p2.Visits(cointoss.NoInfo); visits != 1 {
		t.Errorf("Player2 visits = %d, expected 1", visits)
	}

	regret, err := p1.Regret(headInfo)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(regret[cointoss.Sell]-0.25) > tol || math.Abs(regret[cointoss.Play]+0.25) > tol {
		t.Errorf("Player1 regret = %v, expected (sell: 0.25, play: -0.25)", regret)
	}

	// Player 2's regret is scaled by player 1's 0.5 reach probability for
	// playing, with no chance contribution.
	regret, err = p2.Regret(cointoss.NoInfo)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(regret[cointoss.Heads]-0.5) > tol || math.Abs(regret[cointoss.Tails]+0.5) > tol {
		t.Errorf("Player2 regret = %v, expected (head: 0.5, tail: -0.5)", regret)
	}
}

func TestWalk_TreeStructure(t *testing.T) {
	w := newCoinTossWalker(t)
	root := regretmin.NewRoot(cointoss.New())
	if err := w.Walk(root, []regretmin.Move{cointoss.Heads}); err != nil {
		t.Fatal(err)
	}

	// Chance node branches once; player 1 branches into sell and play;
	// only play reaches player 2.
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, expected 1", len(root.Children))
	}
	p1Node := root.Children[cointoss.Heads]
	if len(p1Node.Children) != 2 {
		t.Fatalf("player 1 node has %d children, expected 2", len(p1Node.Children))
	}
	sellNode := p1Node.Children[cointoss.Sell]
	if len(sellNode.Children) != 0 {
		t.Errorf("sell node has %d children, expected 0", len(sellNode.Children))
	}
	playNode := p1Node.Children[cointoss.Play]
	if len(playNode.Children) != 2 {
		t.Errorf("play node has %d children, expected 2", len(playNode.Children))
	}
	if playNode.Parent != p1Node || p1Node.Parent != root {
		t.Error("parent links are wrong")
	}
}

func TestWalk_ZeroSumEverywhere(t *testing.T) {
	w := newCoinTossWalker(t)
	root := regretmin.NewRoot(cointoss.New())
	if err := w.Walk(root, []regretmin.Move{cointoss.Tails}); err != nil {
		t.Fatal(err)
	}

	var check func(n *regretmin.Node)
	check = func(n *regretmin.Node) {
		if !n.Resolved() {
			t.Errorf("node for move %q was never finalized", n.Move)
			return
		}
		total := n.Utility(regretmin.Player1) + n.Utility(regretmin.Player2)
		if math.Abs(total) > tol {
			t.Errorf("utilities at move %q sum to %v, expected 0", n.Move, total)
		}
		for _, c := range n.Children {
			check(c)
		}
	}
	check(root)
}

func TestWalk_Deterministic(t *testing.T) {
	w1 := newCoinTossWalker(t)
	w2 := newCoinTossWalker(t)
	runIterations(t, w1, 100)
	runIterations(t, w2, 100)

	for _, p := range []regretmin.Player{regretmin.Player1, regretmin.Player2} {
		for _, info := range cointoss.InfoSets(p) {
			sum1, _ := w1.Table(p).StrategySum(info)
			sum2, _ := w2.Table(p).StrategySum(info)
			reg1, _ := w1.Table(p).Regret(info)
			reg2, _ := w2.Table(p).Regret(info)
			for _, a := range w1.Table(p).Actions() {
				if sum1[a] != sum2[a] {
					t.Errorf("%v %q strategy sum for %q differs: %v != %v", p, info, a, sum1[a], sum2[a])
				}
				if reg1[a] != reg2[a] {
					t.Errorf("%v %q regret for %q differs: %v != %v", p, info, a, reg1[a], reg2[a])
				}
			}
		}
	}
}

func TestWalk_ChanceSequenceExhausted(t *testing.T) {
	w := newCoinTossWalker(t)
	root := regretmin.NewRoot(cointoss.New())
	if err := w.Walk(root, nil); err == nil {
		t.Error("expected error for empty chance sequence")
	}
}

// TestWalk_Convergence runs enough alternating iterations for the normalized
// strategy sums to approach the game's equilibrium: player 2 guesses heads a
// quarter of the time, and player 1 plays on with either toss well over half
// the time. Statistical bounds, not exact values.
func TestWalk_Convergence(t *testing.T) {
	w := newCoinTossWalker(t)
	runIterations(t, w, 10000)

	avg, err := w.Table(regretmin.Player2).AverageStrategy(cointoss.NoInfo)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("Player2 average strategy: %v", avg)
	if math.Abs(avg[cointoss.Heads]-0.25) > 0.03 {
		t.Errorf("Player2 guesses heads with probability %v, expected 0.25 +/- 0.03",
			avg[cointoss.Heads])
	}

	for info, want := range map[regretmin.InfoSetKey]float64{
		regretmin.InfoSetKey(cointoss.Heads): 0.62,
		regretmin.InfoSetKey(cointoss.Tails): 0.64,
	} {
		avg, err := w.Table(regretmin.Player1).AverageStrategy(info)
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("Player1 average strategy at %q: %v", info, avg)
		if math.Abs(avg[cointoss.Play]-want) > 0.06 {
			t.Errorf("Player1 plays on at %q with probability %v, expected %v +/- 0.06",
				info, avg[cointoss.Play], want)
		}
	}
}
