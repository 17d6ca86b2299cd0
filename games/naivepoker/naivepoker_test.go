package naivepoker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna-games/regretmin"
)

func TestPlayer2LeadsWithOwnCards(t *testing.T) {
	s := New()
	assert.Equal(t, regretmin.Player2, s.NextPlayer())
	assert.Equal(t, []regretmin.Move{"2", "4", "6"}, s.Moves())

	s.Apply("2")
	assert.Equal(t, regretmin.Player1, s.NextPlayer())
	assert.Equal(t, []regretmin.Move{"1", "3", "5"}, s.Moves())
}

func TestHigherCardTakesRound(t *testing.T) {
	s := New()
	// Round 1: P2 leads 6, P1 answers 1. P2 takes it.
	s.Apply("6")
	s.Apply("1")
	// Round 2: P2 leads 4, P1 answers 3. P2 takes it.
	s.Apply("4")
	s.Apply("3")
	// Round 3: P2 leads 2, P1 answers 5. P1 takes it.
	s.Apply("2")
	s.Apply("5")

	require.Equal(t, regretmin.NoPlayer, s.NextPlayer())
	u1, err := s.Result(regretmin.Player1)
	require.NoError(t, err)
	u2, err := s.Result(regretmin.Player2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, u1)
	assert.Equal(t, 1.0, u2)
}

func TestPlayer1CanWin(t *testing.T) {
	s := New()
	// P1 sacrifices 1 against 6, then takes the last two rounds.
	for _, m := range []regretmin.Move{"6", "1", "2", "3", "4", "5"} {
		s.Apply(m)
	}

	require.Equal(t, regretmin.NoPlayer, s.NextPlayer())
	u1, err := s.Result(regretmin.Player1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, u1)
}

func TestMovesShrinkAsCardsArePlayed(t *testing.T) {
	s := New()
	s.Apply("4")
	assert.Equal(t, []regretmin.Move{"1", "3", "5"}, s.Moves())
	s.Apply("3")
	assert.Equal(t, []regretmin.Move{"2", "6"}, s.Moves())
}

func TestCloneIndependence(t *testing.T) {
	s := New()
	c := s.Clone()
	c.Apply("6")

	assert.Equal(t, []regretmin.Move{"2", "4", "6"}, s.Moves())
	assert.Equal(t, regretmin.Player2, s.NextPlayer())
}
