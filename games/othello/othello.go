// Package othello implements Othello on square boards of any even size.
// Each move must sandwich opponent pieces between the piece played and a
// piece already on the board; sandwiched pieces flip. The rules are modified
// to end the game as soon as the player about to move has no legal move
// (there is no pass move), with the majority count winning.
package othello

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/fortuna-games/regretmin"
)

// empty marks an unowned square.
const empty regretmin.Player = 0

var directions = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// State is an Othello position. Cells hold 0 for empty or the Player who
// owns the piece.
type State struct {
	board      [][]regretmin.Player
	size       int
	lastPlayer regretmin.Player
}

// New returns the standard starting position on a size x size board with
// player 1 (X) to move. The size must be even and at least 4.
func New(size int) (*State, error) {
	if size%2 != 0 || size < 4 {
		return nil, errors.Errorf("board size must be even and >= 4, got %d", size)
	}

	s := &State{
		board:      make([][]regretmin.Player, size),
		size:       size,
		lastPlayer: regretmin.Player2,
	}
	for x := range s.board {
		s.board[x] = make([]regretmin.Player, size)
	}
	mid := size / 2
	s.board[mid][mid] = regretmin.Player1
	s.board[mid-1][mid-1] = regretmin.Player1
	s.board[mid][mid-1] = regretmin.Player2
	s.board[mid-1][mid] = regretmin.Player2
	return s, nil
}

func (s *State) LastPlayer() regretmin.Player {
	return s.lastPlayer
}

func (s *State) NextPlayer() regretmin.Player {
	if len(s.Moves()) == 0 {
		return regretmin.NoPlayer
	}
	return s.lastPlayer.Opponent()
}

func (s *State) InfoSet(regretmin.Player) regretmin.InfoSetKey {
	return regretmin.InfoSetKey(s.String())
}

func (s *State) Clone() regretmin.State {
	c := &State{
		board:      make([][]regretmin.Player, s.size),
		size:       s.size,
		lastPlayer: s.lastPlayer,
	}
	for x := range s.board {
		c.board[x] = append([]regretmin.Player(nil), s.board[x]...)
	}
	return c
}

func (s *State) Apply(m regretmin.Move) {
	x, y, err := parseMove(m)
	if err != nil || !s.onBoard(x, y) || s.board[x][y] != empty {
		panic(errors.Errorf("illegal move %q", m))
	}
	flips := s.allSandwiched(x, y)
	if len(flips) == 0 {
		panic(errors.Errorf("move %q sandwiches nothing", m))
	}
	s.lastPlayer = s.lastPlayer.Opponent()
	s.board[x][y] = s.lastPlayer
	for _, c := range flips {
		s.board[c[0]][c[1]] = s.lastPlayer
	}
}

func (s *State) Moves() []regretmin.Move {
	var moves []regretmin.Move
	for x := 0; x < s.size; x++ {
		for y := 0; y < s.size; y++ {
			if s.board[x][y] == empty && s.sandwichExists(x, y) {
				moves = append(moves, formatMove(x, y))
			}
		}
	}
	return moves
}

func (s *State) Result(p regretmin.Player) (float64, error) {
	var mine, theirs int
	for x := 0; x < s.size; x++ {
		for y := 0; y < s.size; y++ {
			switch s.board[x][y] {
			case p:
				mine++
			case p.Opponent():
				theirs++
			}
		}
	}
	switch {
	case mine > theirs:
		return 1, nil
	case theirs > mine:
		return 0, nil
	}
	return 0.5, nil
}

// enemyDirections returns the directions in which (x, y) is adjacent to a
// piece of the player who just moved, the only directions worth probing.
func (s *State) enemyDirections(x, y int) [][2]int {
	var result [][2]int
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		if s.onBoard(nx, ny) && s.board[nx][ny] == s.lastPlayer {
			result = append(result, d)
		}
	}
	return result
}

func (s *State) sandwichExists(x, y int) bool {
	for _, d := range s.enemyDirections(x, y) {
		if len(s.sandwiched(x, y, d[0], d[1])) > 0 {
			return true
		}
	}
	return false
}

func (s *State) allSandwiched(x, y int) [][2]int {
	var result [][2]int
	for _, d := range s.enemyDirections(x, y) {
		result = append(result, s.sandwiched(x, y, d[0], d[1])...)
	}
	return result
}

// sandwiched returns the opponent pieces between (x, y) and the mover's own
// piece in direction (dx, dy), or nothing when the run is unterminated.
func (s *State) sandwiched(x, y, dx, dy int) [][2]int {
	var run [][2]int
	x += dx
	y += dy
	for s.onBoard(x, y) && s.board[x][y] == s.lastPlayer {
		run = append(run, [2]int{x, y})
		x += dx
		y += dy
	}
	if s.onBoard(x, y) && s.board[x][y] == s.lastPlayer.Opponent() {
		return run
	}
	return nil
}

func (s *State) onBoard(x, y int) bool {
	return x >= 0 && x < s.size && y >= 0 && y < s.size
}

func formatMove(x, y int) regretmin.Move {
	return regretmin.Move(fmt.Sprintf("%d,%d", x, y))
}

func parseMove(m regretmin.Move) (x, y int, err error) {
	_, err = fmt.Sscanf(string(m), "%d,%d", &x, &y)
	return x, y, err
}

func (s *State) String() string {
	var sb strings.Builder
	for y := s.size - 1; y >= 0; y-- {
		for x := 0; x < s.size; x++ {
			sb.WriteByte(".XO"[s.board[x][y]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
