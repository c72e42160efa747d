package puct

import (
	"testing"

	"github.com/irisboard/iris/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func startState() game.State {
	return game.State{YellowTurn: true}
}

func TestSearchReturnsLegalMove(t *testing.T) {
	move, err := Search(startState(), UniformEvaluator{}, 50, rand.NewSource(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, move, 0)
}

func TestSimulateGrowsTree(t *testing.T) {
	tree := New(startState(), UniformEvaluator{}, rand.NewSource(2))
	require.NoError(t, tree.runSimulations(40, false))
	assert.Greater(t, tree.Nodes(), 1)
}

func TestGenerateTrainingSampleProducesSamples(t *testing.T) {
	samples, err := GenerateTrainingSample(startState(), UniformEvaluator{}, rand.NewSource(3))
	require.NoError(t, err)
	require.NotEmpty(t, samples)
	for _, s := range samples {
		assert.Len(t, s.Policy, 41)
		assert.NotNil(t, s.Position)
	}
}

func TestRootPolicySumsToAboutOne(t *testing.T) {
	tree := New(startState(), UniformEvaluator{}, rand.NewSource(4))
	require.NoError(t, tree.runSimulations(100, false))
	p := tree.rootPolicy()
	var sum float32
	for _, v := range p {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 0.05)
}
