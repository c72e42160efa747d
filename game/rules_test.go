package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPlayNeutralRuleOfTwo(t *testing.T) {
	// run == 0: anyone may take it up.
	assert.True(t, State{YellowTurn: true}.CanPlayBlack())
	assert.True(t, State{YellowTurn: false}.CanPlayBlack())

	// Last mover was yellow, run 1: yellow may continue (run < 2), red may not.
	s := State{YellowTurn: true, BlackLastWasYellow: true, BlackRun: 1}
	assert.True(t, s.CanPlayBlack())
	s.YellowTurn = false
	assert.False(t, s.CanPlayBlack())

	// Last mover was yellow, run already 2: nobody may extend it further.
	s = State{YellowTurn: true, BlackLastWasYellow: true, BlackRun: 2}
	assert.False(t, s.CanPlayBlack())
}

func TestIsLegalYellowBlockedByOccupancy(t *testing.T) {
	clear := State{YellowTurn: true}
	assert.True(t, clear.IsLegalYellow(0))

	blocked := State{YellowTurn: true, RedPos: 1}
	assert.False(t, blocked.IsLegalYellow(0))
}

func TestApplyYellowFlipsTurnAndResetsRuns(t *testing.T) {
	s := State{YellowTurn: true, BlackLastWasYellow: true, BlackRun: 1}
	n := s.ApplyYellow(0)
	assert.False(t, n.YellowTurn)
	assert.Equal(t, 1, n.YellowPos)
	assert.Equal(t, 0, n.BlackRun)
}

func TestApplyBlackAdvancesRunAndTagsLastMover(t *testing.T) {
	s := State{YellowTurn: true}
	n := s.ApplyBlack(0)
	assert.False(t, n.YellowTurn)
	assert.True(t, n.BlackLastWasYellow)
	assert.Equal(t, 1, n.BlackRun)
}

func TestApplyPassResetsActivePawnToCenter(t *testing.T) {
	s := State{YellowTurn: true, YellowPos: 7}
	n := s.ApplyPass()
	assert.False(t, n.YellowTurn)
	assert.Equal(t, 0, n.YellowPos)

	s = State{YellowTurn: false, RedPos: 9}
	n = s.ApplyPass()
	assert.True(t, n.YellowTurn)
	assert.Equal(t, 0, n.RedPos)
}

func TestApplyDispatchesByTagAndTurn(t *testing.T) {
	yellowToMove := State{YellowTurn: true}
	n := yellowToMove.Apply(ActiveColor, 1)
	assert.Equal(t, 1, n.YellowPos)

	redToMove := State{YellowTurn: false}
	n = redToMove.Apply(ActiveColor, 1)
	assert.Equal(t, 1, n.RedPos)

	n = State{YellowTurn: true}.Apply(BlackPawn, 1)
	assert.True(t, n.BlackLastWasYellow)

	n = State{YellowTurn: true, YellowPos: 5}.Apply(Pass, -1)
	assert.Equal(t, 0, n.YellowPos)
}
