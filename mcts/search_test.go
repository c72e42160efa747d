package mcts

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/irisboard/iris/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startState() game.State {
	return game.State{YellowTurn: true}
}

func TestSearchReturnsLegalMove(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	move, tree := Search(startState(), 200, rng)
	assert.GreaterOrEqual(t, move, 0)
	assert.Greater(t, tree.Nodes(), 1)
}

func TestSimulateGrowsTree(t *testing.T) {
	tree := New(startState(), rand.New(rand.NewSource(2)))
	before := tree.Nodes()
	for i := 0; i < 50; i++ {
		tree.Simulate()
	}
	assert.Greater(t, tree.Nodes(), before)
}

func TestAdvanceFreesSiblings(t *testing.T) {
	tree := New(startState(), rand.New(rand.NewSource(3)))
	for i := 0; i < 30; i++ {
		tree.Simulate()
	}
	root := tree.at(tree.Root)
	require.NotEmpty(t, root.children)
	chosen := tree.at(root.children[0]).move
	before := tree.Nodes()
	tree = tree.Advance(chosen)
	assert.Less(t, tree.Nodes(), before+1)
	assert.Equal(t, NoNode, tree.at(tree.Root).parent)
}

func TestUCTPrefersUnvisitedChild(t *testing.T) {
	tree := New(startState(), rand.New(rand.NewSource(4)))
	tree.expand(tree.Root)
	root := tree.at(tree.Root)
	require.NotEmpty(t, root.children)
	score := tree.uct(1, tree.at(root.children[0]))
	assert.True(t, math32.IsInf(score, 1))
}
