package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualIsFieldwise(t *testing.T) {
	a := State{YellowTurn: true, YellowPos: 3}
	b := a
	assert.True(t, a.Equal(b))

	b.YellowPos = 4
	assert.False(t, a.Equal(b))
}

func TestEndedDetectsOuterRing(t *testing.T) {
	ended, yellowWon := State{YellowPos: 16}.Ended()
	assert.True(t, ended)
	assert.True(t, yellowWon)

	ended, yellowWon = State{RedPos: 20}.Ended()
	assert.True(t, ended)
	assert.False(t, yellowWon)

	ended, _ = State{YellowPos: 0, RedPos: 0}.Ended()
	assert.False(t, ended)
}
