package puct

import (
	"github.com/irisboard/iris/board"
	"github.com/irisboard/iris/game"
)

// Shape describes the tensor dimensions an Evaluator is expected to
// consume and produce: a (Rows x Features) position encoding in, a
// MaxMvts-wide policy plus scalar value out. Valid checks a Shape
// against the engine's fixed encoding. The Evaluator interface itself
// declares no shape and the search does not call Valid; the only check
// made on a loaded Evaluator is the length of each policy it returns
// (see evaluate).
type Shape struct {
	Rows     int
	Features int
	Actions  int
}

// DefaultShape is the shape every Evaluator in this engine must match:
// the fixed board-topology tensor encoding and flat move-index space.
func DefaultShape() Shape {
	return Shape{
		Rows:     board.NumberRealNodes,
		Features: game.NumFeatures,
		Actions:  board.MaxMvts,
	}
}

// Valid reports whether the shape fits the engine: a row count equal
// to the number of board nodes, a positive feature count, and an
// action count matching the engine's flat move index space.
func (s Shape) Valid() bool {
	return s.Rows == board.NumberRealNodes &&
		s.Features > 0 &&
		s.Actions == board.MaxMvts
}

// roundUpPow2 rounds a up to the next power of two (1 for a <= 1).
func roundUpPow2(a int) int {
	if a <= 1 {
		return 1
	}
	n := a - 1
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}
