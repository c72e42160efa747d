package game

import (
	"testing"

	"github.com/irisboard/iris/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumeratorFindsFirstActiveMove(t *testing.T) {
	s := State{YellowTurn: true}
	e := NewEnumerator(s)
	require.True(t, e.Next())
	tag, node := e.Move()
	assert.Equal(t, ActiveColor, tag)
	assert.Equal(t, 1, node) // board.NodeNeighbours[0][0] == 1
	assert.Equal(t, 0, e.Index())
}

func TestEnumeratorNeverEmitsPassWhenAnotherMoveExists(t *testing.T) {
	s := State{YellowTurn: true}
	e := NewEnumerator(s)
	for e.Next() {
		tag, _ := e.Move()
		assert.NotEqual(t, Pass, tag)
	}
	assert.True(t, e.AtEnd())
}

func TestEnumeratorFallsBackToPassWhenNoOtherMoveExists(t *testing.T) {
	// Yellow parked on a degree-3 outer node with every neighbor
	// occupied, and every neutral pawn's run exhausted: no band has a
	// legal move, so the only slot left is the trailing pass.
	s := State{
		YellowTurn: true,
		YellowPos:  16,
		RedPos:     6,
		BlackPos:   12,
		WhitePos:   11,
		OrangePos:  0,

		BlackLastWasYellow: true,
		BlackRun:           2,
		WhiteLastWasYellow: true,
		WhiteRun:           2,
		OrangeLastWasYellow: true,
		OrangeRun:           2,
	}

	e := NewEnumerator(s)
	require.True(t, e.Next())
	tag, node := e.Move()
	assert.Equal(t, Pass, tag)
	assert.Equal(t, -1, node)
	assert.Equal(t, board.MaxMvts-1, e.Index())
	assert.False(t, e.Next())
	assert.True(t, e.AtEnd())
}

func TestHasLegalMove(t *testing.T) {
	assert.True(t, State{YellowTurn: true}.HasLegalMove())
}
