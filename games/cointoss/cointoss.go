// Package cointoss implements the two-outcome signaling game used to
// demonstrate the solver. Chance tosses a coin; player 1 observes the
// outcome and either sells the position for half stakes or plays on; player
// 2, observing nothing, then guesses the outcome for full stakes. Payoffs
// are zero-sum.
package cointoss

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/fortuna-games/regretmin"
)

const (
	Heads regretmin.Move = "head"
	Tails regretmin.Move = "tail"
	Sell  regretmin.Move = "sell"
	Play  regretmin.Move = "play"

	// NoInfo is player 2's only information set: they observe nothing
	// before guessing.
	NoInfo regretmin.InfoSetKey = "nothing"
)

// InfoSets returns p's full reachable information-set list, for policy table
// construction. Player 1's information is the observed toss; player 2 has a
// single uninformed set.
func InfoSets(p regretmin.Player) []regretmin.InfoSetKey {
	if p == regretmin.Player1 {
		return []regretmin.InfoSetKey{
			regretmin.InfoSetKey(Heads),
			regretmin.InfoSetKey(Tails),
		}
	}
	return []regretmin.InfoSetKey{NoInfo}
}

// Actions returns p's global action set.
func Actions(p regretmin.Player) []regretmin.Move {
	if p == regretmin.Player1 {
		return []regretmin.Move{Sell, Play}
	}
	return []regretmin.Move{Heads, Tails}
}

// State is one coin-toss game.
type State struct {
	lastPlayer regretmin.Player
	toss       regretmin.Move
	p1Choice   regretmin.Move
	p2Choice   regretmin.Move
}

// New returns the initial state, with the toss still to come.
func New() *State {
	return &State{lastPlayer: regretmin.NoPlayer}
}

func (s *State) LastPlayer() regretmin.Player {
	return s.lastPlayer
}

func (s *State) NextPlayer() regretmin.Player {
	if s.p1Choice == Sell {
		return regretmin.NoPlayer
	}
	switch s.lastPlayer {
	case regretmin.NoPlayer:
		return regretmin.Chance
	case regretmin.Chance:
		return regretmin.Player1
	case regretmin.Player1:
		return regretmin.Player2
	}
	return regretmin.NoPlayer
}

func (s *State) InfoSet(p regretmin.Player) regretmin.InfoSetKey {
	if p == regretmin.Player1 {
		return regretmin.InfoSetKey(s.toss)
	}
	return NoInfo
}

func (s *State) Clone() regretmin.State {
	c := *s
	return &c
}

func (s *State) Apply(m regretmin.Move) {
	switch s.lastPlayer {
	case regretmin.NoPlayer:
		s.lastPlayer = regretmin.Chance
		s.toss = m
	case regretmin.Chance:
		s.lastPlayer = regretmin.Player1
		s.p1Choice = m
	case regretmin.Player1:
		s.lastPlayer = regretmin.Player2
		s.p2Choice = m
	}
}

func (s *State) Moves() []regretmin.Move {
	switch s.lastPlayer {
	case regretmin.NoPlayer:
		return []regretmin.Move{Heads, Tails}
	case regretmin.Chance:
		return []regretmin.Move{Sell, Play}
	case regretmin.Player1:
		if s.p1Choice == Play {
			return []regretmin.Move{Heads, Tails}
		}
	}
	return nil
}

func (s *State) Result(p regretmin.Player) (float64, error) {
	switch {
	case s.lastPlayer == regretmin.Player1 && s.p1Choice == Sell:
		// Selling pays half stakes: won on heads, lost on tails.
		if s.toss == Heads {
			return sided(p, 0.5), nil
		}
		return sided(p, -0.5), nil
	case s.lastPlayer == regretmin.Player2 && s.p1Choice == Play:
		// Full stakes ride on player 2's guess.
		if s.toss == s.p2Choice {
			return sided(p, -1), nil
		}
		return sided(p, 1), nil
	}
	return 0, errors.Errorf("no terminal rule matches %v", s)
}

// sided converts player 1's value v to p's viewpoint. Chance is indifferent.
func sided(p regretmin.Player, v float64) float64 {
	switch p {
	case regretmin.Player1:
		return v
	case regretmin.Player2:
		return -v
	}
	return 0
}

func (s *State) String() string {
	return fmt.Sprintf("toss=%q p1=%q p2=%q last=%v", s.toss, s.p1Choice, s.p2Choice, s.lastPlayer)
}
