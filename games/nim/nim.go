// Package nim implements the game of Nim: players alternately take one, two,
// or three chips, and the player taking the last chip wins. Any initial pile
// of the form 4n+k for k in 1..3 is a win for the first player by taking k.
package nim

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/fortuna-games/regretmin"
)

// State is a Nim position. It is a perfect-information game: the information
// set is the whole position.
type State struct {
	chips      int
	lastPlayer regretmin.Player
}

// New returns a pile of the given size with player 1 to move.
func New(chips int) *State {
	// Pretend player 2 just moved so that player 1 has the first move.
	return &State{chips: chips, lastPlayer: regretmin.Player2}
}

func (s *State) LastPlayer() regretmin.Player {
	return s.lastPlayer
}

func (s *State) NextPlayer() regretmin.Player {
	if s.chips == 0 {
		return regretmin.NoPlayer
	}
	return s.lastPlayer.Opponent()
}

func (s *State) InfoSet(regretmin.Player) regretmin.InfoSetKey {
	return regretmin.InfoSetKey(strconv.Itoa(s.chips))
}

func (s *State) Clone() regretmin.State {
	c := *s
	return &c
}

func (s *State) Apply(m regretmin.Move) {
	n, err := strconv.Atoi(string(m))
	if err != nil || n < 1 || n > 3 || n > s.chips {
		panic(errors.Errorf("illegal nim move %q with %d chips", m, s.chips))
	}
	s.chips -= n
	s.lastPlayer = s.lastPlayer.Opponent()
}

func (s *State) Moves() []regretmin.Move {
	var moves []regretmin.Move
	for n := 1; n <= 3 && n <= s.chips; n++ {
		moves = append(moves, regretmin.Move(strconv.Itoa(n)))
	}
	return moves
}

func (s *State) Result(p regretmin.Player) (float64, error) {
	if s.chips != 0 {
		return 0, errors.Errorf("result requested with %d chips remaining", s.chips)
	}
	if s.lastPlayer == p {
		// p took the last chip and has won.
		return 1, nil
	}
	return 0, nil
}

func (s *State) String() string {
	return fmt.Sprintf("Chips:%d JustPlayed:%v", s.chips, s.lastPlayer)
}
