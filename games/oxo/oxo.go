// Package oxo implements 3x3 tic-tac-toe. Squares are numbered
//
//	012
//	345
//	678
//
// and results are 1 for a win, 0 for a loss, and 0.5 for a draw.
package oxo

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fortuna-games/regretmin"
)

// empty marks an unowned square.
const empty regretmin.Player = 0

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// State is a tic-tac-toe board. Cells hold 0 for empty or the Player who
// owns the square.
type State struct {
	board      [9]regretmin.Player
	lastPlayer regretmin.Player
}

// New returns an empty board with player 1 (X) to move.
func New() *State {
	return &State{lastPlayer: regretmin.Player2}
}

func (s *State) LastPlayer() regretmin.Player {
	return s.lastPlayer
}

func (s *State) NextPlayer() regretmin.Player {
	if s.winner() != empty || s.full() {
		return regretmin.NoPlayer
	}
	return s.lastPlayer.Opponent()
}

func (s *State) InfoSet(regretmin.Player) regretmin.InfoSetKey {
	return regretmin.InfoSetKey(s.String())
}

func (s *State) Clone() regretmin.State {
	c := *s
	return &c
}

func (s *State) Apply(m regretmin.Move) {
	i, err := strconv.Atoi(string(m))
	if err != nil || i < 0 || i > 8 || s.board[i] != empty {
		panic(errors.Errorf("illegal move %q on board %q", m, s.String()))
	}
	s.lastPlayer = s.lastPlayer.Opponent()
	s.board[i] = s.lastPlayer
}

func (s *State) Moves() []regretmin.Move {
	if s.winner() != empty {
		return nil
	}
	var moves []regretmin.Move
	for i, owner := range s.board {
		if owner == empty {
			moves = append(moves, regretmin.Move(strconv.Itoa(i)))
		}
	}
	return moves
}

func (s *State) Result(p regretmin.Player) (float64, error) {
	if w := s.winner(); w != empty {
		if w == p {
			return 1, nil
		}
		return 0, nil
	}
	if s.full() {
		return 0.5, nil
	}
	return 0, errors.Errorf("result requested on unfinished board %q", s.String())
}

// winner returns the player owning a completed line, or empty when no line
// is complete.
func (s *State) winner() regretmin.Player {
	for _, l := range lines {
		if s.board[l[0]] != empty &&
			s.board[l[0]] == s.board[l[1]] && s.board[l[1]] == s.board[l[2]] {
			return s.board[l[0]]
		}
	}
	return empty
}

func (s *State) full() bool {
	for _, owner := range s.board {
		if owner == empty {
			return false
		}
	}
	return true
}

func (s *State) String() string {
	var sb strings.Builder
	for i, owner := range s.board {
		sb.WriteByte(".XO"[owner])
		if i%3 == 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
