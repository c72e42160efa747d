package puct

import (
	"github.com/irisboard/iris/board"
	"gorgonia.org/tensor"
)

// UniformEvaluator is an Evaluator that returns a uniform policy and a
// zero value for every position. It performs no inference at all, and
// exists so the search and self-play loop can be exercised without a
// trained model — the same role a stub Dualer plays in driving an
// AlphaZero-style pipeline before a real network exists.
type UniformEvaluator struct{}

// Evaluate implements Evaluator.
func (UniformEvaluator) Evaluate(t *tensor.Dense) ([]float32, float32, error) {
	policy := make([]float32, board.MaxMvts)
	for i := range policy {
		policy[i] = 1.0 / float32(board.MaxMvts)
	}
	return policy, 0, nil
}

// UniformLoader is a Loader that ignores its path argument and always
// returns a UniformEvaluator, letting a CLI tool exercise the PUCT
// search path before any trained model is available.
type UniformLoader struct{}

// Load implements Loader.
func (UniformLoader) Load(path string) (Evaluator, error) {
	return UniformEvaluator{}, nil
}
