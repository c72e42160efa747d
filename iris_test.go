package iris

import (
	"math/rand"
	"testing"

	"github.com/irisboard/iris/game"
	"github.com/irisboard/iris/puct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startState() game.State {
	return game.State{YellowTurn: true}
}

func TestRandomMoveReturnsLegalMove(t *testing.T) {
	s := startState()
	tag, node := RandomMove(s, rand.New(rand.NewSource(1)))
	_, _, err := game.DecodeMove(s, s.Apply(tag, node))
	assert.NoError(t, err)
}

func TestRandomMoveIsDeterministicForFixedSeed(t *testing.T) {
	s := startState()
	tag1, node1 := RandomMove(s, rand.New(rand.NewSource(7)))
	tag2, node2 := RandomMove(s, rand.New(rand.NewSource(7)))
	assert.Equal(t, tag1, tag2)
	assert.Equal(t, node1, node2)
}

func TestMinimaxMoveReturnsLegalMove(t *testing.T) {
	s := startState()
	tag, node := MinimaxMove(s, 2, rand.New(rand.NewSource(1)))
	_, _, err := game.DecodeMove(s, s.Apply(tag, node))
	assert.NoError(t, err)
}

func TestMCTSMoveSimsReturnsLegalMove(t *testing.T) {
	s := startState()
	tag, node := MCTSMoveSims(s, 30, rand.New(rand.NewSource(1)))
	_, _, err := game.DecodeMove(s, s.Apply(tag, node))
	assert.NoError(t, err)
}

func TestMCTSMoveTimeReturnsLegalMove(t *testing.T) {
	s := startState()
	tag, node := MCTSMoveTime(s, 0.05, rand.New(rand.NewSource(1)))
	_, _, err := game.DecodeMove(s, s.Apply(tag, node))
	assert.NoError(t, err)
}

func TestPUCTMoveSimsReturnsLegalMove(t *testing.T) {
	s := startState()
	tag, node, err := PUCTMoveSims(s, 20, puct.UniformLoader{}, "", rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	_, _, err = game.DecodeMove(s, s.Apply(tag, node))
	assert.NoError(t, err)
}

func TestPUCTMoveTimeReturnsLegalMove(t *testing.T) {
	s := startState()
	tag, node, err := PUCTMoveTime(s, 0.05, puct.UniformLoader{}, "", rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	_, _, err = game.DecodeMove(s, s.Apply(tag, node))
	assert.NoError(t, err)
}

func TestGenerateTrainingSampleProducesStackedTensors(t *testing.T) {
	s := startState()
	states, policies, values, err := GenerateTrainingSample(s, puct.UniformLoader{}, "", rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.NotNil(t, states)

	n := states.Shape()[0]
	assert.Greater(t, n, 0)
	assert.Equal(t, []int{n, MaxMvts}, policies.Shape())
	assert.Equal(t, []int{n}, values.Shape())
}

func TestEngineReusesLoadedModel(t *testing.T) {
	cfg := Config{Loader: puct.UniformLoader{}}
	engine, err := NewEngine(cfg, "")
	require.NoError(t, err)

	s := startState()
	tag, node, err := engine.MoveSims(s, 20, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	_, _, err = game.DecodeMove(s, s.Apply(tag, node))
	assert.NoError(t, err)
}
