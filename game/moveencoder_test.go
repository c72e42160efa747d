package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMoveRoundTripsThroughEnumerator(t *testing.T) {
	parent := State{YellowTurn: true}
	e := NewEnumerator(parent)
	require.True(t, e.Next())
	child := e.State()
	wantTag, wantNode := e.Move()

	tag, node, err := DecodeMove(parent, child)
	require.NoError(t, err)
	assert.Equal(t, wantTag, tag)
	assert.Equal(t, wantNode, node)
}

func TestDecodeMoveIndexRoundTrips(t *testing.T) {
	parent := State{YellowTurn: true}
	e := NewEnumerator(parent)
	require.True(t, e.Next())
	child := e.State()

	index, err := DecodeMoveIndex(parent, child)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
}

func TestDecodeMoveRejectsUnrelatedState(t *testing.T) {
	parent := State{YellowTurn: true}
	unrelated := State{YellowTurn: true, YellowPos: 20, RedPos: 19}

	_, _, err := DecodeMove(parent, unrelated)
	require.Error(t, err)
	assert.IsType(t, ErrMoveNotFound{}, err)
}
