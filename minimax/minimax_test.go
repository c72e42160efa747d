package minimax

import (
	"math/rand"
	"testing"

	"github.com/irisboard/iris/game"
	"github.com/stretchr/testify/assert"
)

func TestMoveReturnsLegalIndex(t *testing.T) {
	s := game.State{YellowTurn: true}
	move := Move(s, 3, rand.New(rand.NewSource(1)))
	assert.GreaterOrEqual(t, move, 0)
}

func TestMoveIsDeterministicForFixedSeed(t *testing.T) {
	s := game.State{YellowTurn: true}
	a := Move(s, 2, rand.New(rand.NewSource(42)))
	b := Move(s, 2, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestEvaluateFavorsFasterWin(t *testing.T) {
	win := game.State{YellowPos: 16}
	slow := evaluate(win, 0)
	fast := evaluate(win, 5)
	assert.Greater(t, fast, slow)
	assert.Less(t, fast, float32(1.0))
}
