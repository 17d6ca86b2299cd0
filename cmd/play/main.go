// Command play runs a UCT self-play game, giving each side its own
// iteration budget and printing the board as the game progresses.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/golang/glog"

	"github.com/fortuna-games/regretmin"
	"github.com/fortuna-games/regretmin/games/naivepoker"
	"github.com/fortuna-games/regretmin/games/nim"
	"github.com/fortuna-games/regretmin/games/othello"
	"github.com/fortuna-games/regretmin/games/oxo"
	"github.com/fortuna-games/regretmin/mcts"
)

func main() {
	game := flag.String("game", "oxo", "Game to play: nim, oxo, othello, or naivepoker")
	chips := flag.Int("chips", 10, "Starting chips (nim)")
	size := flag.Int("size", 4, "Board size (othello)")
	p1Iters := flag.Int("p1_iters", 100, "UCT iterations per player 1 move")
	p2Iters := flag.Int("p2_iters", 1000, "UCT iterations per player 2 move")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	state, err := newGame(*game, *chips, *size)
	if err != nil {
		glog.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	for len(state.Moves()) > 0 {
		fmt.Print(state)
		iters := *p1Iters
		if mover := state.LastPlayer().Opponent(); mover == regretmin.Player2 {
			iters = *p2Iters
		}

		m, err := mcts.Search(state, iters, rng)
		if err != nil {
			glog.Fatal(err)
		}
		fmt.Printf("Best move: %s\n\n", m)
		state.Apply(m)
	}
	fmt.Print(state)

	result, err := state.Result(state.LastPlayer())
	if err != nil {
		glog.Fatal(err)
	}
	switch result {
	case 1.0:
		fmt.Printf("%v wins!\n", state.LastPlayer())
	case 0.0:
		fmt.Printf("%v wins!\n", state.LastPlayer().Opponent())
	default:
		fmt.Println("Nobody wins!")
	}
}

func newGame(name string, chips, size int) (regretmin.State, error) {
	switch name {
	case "nim":
		return nim.New(chips), nil
	case "oxo":
		return oxo.New(), nil
	case "othello":
		return othello.New(size)
	case "naivepoker":
		return naivepoker.New(), nil
	}
	return nil, fmt.Errorf("unknown game %q", name)
}
