package game

import (
	"testing"

	"github.com/irisboard/iris/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorShape(t *testing.T) {
	tn := State{YellowTurn: true}.Tensor()
	assert.Equal(t, []int{board.NumberRealNodes, NumFeatures}, tn.Shape())
}

func TestTensorOneHotsPawnPositions(t *testing.T) {
	s := State{YellowPos: 3, RedPos: 5, BlackPos: 7, WhitePos: 9, OrangePos: 11}
	tn := s.Tensor()
	data, ok := tn.Data().([]float32)
	require.True(t, ok)

	row := func(n, col int) float32 { return data[n*NumFeatures+col] }
	assert.Equal(t, float32(1.0), row(3, 0))
	assert.Equal(t, float32(1.0), row(5, 1))
	assert.Equal(t, float32(1.0), row(7, 2))
	assert.Equal(t, float32(1.0), row(9, 3))
	assert.Equal(t, float32(1.0), row(11, 4))
}

func TestTensorBroadcastsTurnColumn(t *testing.T) {
	yellowToMove := State{YellowTurn: true}.Tensor()
	data, _ := yellowToMove.Data().([]float32)
	for n := 0; n < board.NumberRealNodes; n++ {
		assert.Zero(t, data[n*NumFeatures+colTurn])
	}

	redToMove := State{YellowTurn: false}.Tensor()
	data, _ = redToMove.Data().([]float32)
	for n := 0; n < board.NumberRealNodes; n++ {
		assert.Equal(t, float32(1.0), data[n*NumFeatures+colTurn])
	}
}

func TestTensorBroadcastsRunColumns(t *testing.T) {
	s := State{BlackLastWasYellow: true, BlackRun: 1}
	tn := s.Tensor()
	data, _ := tn.Data().([]float32)
	for n := 0; n < board.NumberRealNodes; n++ {
		assert.Equal(t, float32(1.0), data[n*NumFeatures+colBlackYellowRun1])
	}
}
