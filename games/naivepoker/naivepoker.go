// Package naivepoker implements a three-round high-card game. Player 1 holds
// cards 1, 3, 5 and player 2 holds 2, 4, 6; each round both players commit
// one card and the higher card takes the round. Player 2 leads each round.
package naivepoker

import (
	"fmt"
	"strconv"

	"github.com/fortuna-games/regretmin"
)

// State is a naive-poker position.
type State struct {
	lastPlayer  regretmin.Player
	p1Cards     []int
	p2Cards     []int
	p1Rounds    int
	p2Rounds    int
	waitCompare int // the card led this round, 0 when no card is waiting
}

// New deals the fixed hands, with player 2 leading the first round.
func New() *State {
	return &State{
		lastPlayer: regretmin.Player1,
		p1Cards:    []int{1, 3, 5},
		p2Cards:    []int{2, 4, 6},
	}
}

func (s *State) LastPlayer() regretmin.Player {
	return s.lastPlayer
}

func (s *State) NextPlayer() regretmin.Player {
	if len(s.p1Cards) == 0 && len(s.p2Cards) == 0 {
		return regretmin.NoPlayer
	}
	return s.lastPlayer.Opponent()
}

func (s *State) InfoSet(regretmin.Player) regretmin.InfoSetKey {
	return regretmin.InfoSetKey(s.String())
}

func (s *State) Clone() regretmin.State {
	c := &State{
		lastPlayer:  s.lastPlayer,
		p1Cards:     append([]int(nil), s.p1Cards...),
		p2Cards:     append([]int(nil), s.p2Cards...),
		p1Rounds:    s.p1Rounds,
		p2Rounds:    s.p2Rounds,
		waitCompare: s.waitCompare,
	}
	return c
}

func (s *State) Apply(m regretmin.Move) {
	card, _ := strconv.Atoi(string(m))
	s.lastPlayer = s.lastPlayer.Opponent()
	if s.lastPlayer == regretmin.Player1 {
		s.p1Cards = remove(s.p1Cards, card)
	} else {
		s.p2Cards = remove(s.p2Cards, card)
	}
	if s.waitCompare == 0 {
		s.waitCompare = card
		return
	}
	// Second card of the round: the higher card takes it.
	roundToMover := s.waitCompare < card
	if (s.lastPlayer == regretmin.Player1) == roundToMover {
		s.p1Rounds++
	} else {
		s.p2Rounds++
	}
	s.waitCompare = 0
}

func (s *State) Moves() []regretmin.Move {
	cards := s.p2Cards
	if s.lastPlayer == regretmin.Player2 {
		cards = s.p1Cards
	}
	moves := make([]regretmin.Move, len(cards))
	for i, c := range cards {
		moves[i] = regretmin.Move(strconv.Itoa(c))
	}
	return moves
}

func (s *State) Result(p regretmin.Player) (float64, error) {
	if p == regretmin.Player1 {
		if s.p1Rounds > s.p2Rounds {
			return 1, nil
		}
		return 0, nil
	}
	if s.p2Rounds > s.p1Rounds {
		return 1, nil
	}
	return 0, nil
}

func remove(cards []int, card int) []int {
	for i, c := range cards {
		if c == card {
			return append(cards[:i], cards[i+1:]...)
		}
	}
	return cards
}

func (s *State) String() string {
	return fmt.Sprintf("(%v, %v, %d, %d)", s.p1Cards, s.p2Cards, s.p1Rounds, s.p2Rounds)
}
