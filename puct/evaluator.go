package puct

import (
	"github.com/irisboard/iris/board"
	"github.com/irisboard/iris/game"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Evaluator is the neural forward pass the search is guided by: given
// a position's tensor encoding, it returns a policy over the flat
// MaxMvts move-index space and a scalar value estimate. Constructing
// and training the network behind an Evaluator is outside this
// package; the search only ever calls the pure (tensor) -> (policy,
// value) contract.
type Evaluator interface {
	Evaluate(t *tensor.Dense) (policy []float32, value float32, err error)
}

// ErrEvaluatorLoad wraps a failure to construct or load an Evaluator's
// backing model.
var ErrEvaluatorLoad = errors.New("puct: failed to load evaluator")

// ErrEvaluatorInfer wraps a failure during Evaluator.Evaluate itself,
// as distinct from a load-time failure.
var ErrEvaluatorInfer = errors.New("puct: evaluator inference failed")

// Loader constructs an Evaluator from a serialized model path. It
// exists so CLI tools can depend on an interface rather than a
// concrete evaluator implementation, mirroring the teacher's own
// dualnet.New/Init split between construction and loading.
type Loader interface {
	Load(path string) (Evaluator, error)
}

// evaluate runs eval on state and wraps any failure with
// ErrEvaluatorInfer, attaching the state tensor's shape for
// diagnostics.
func evaluate(eval Evaluator, state State) ([]float32, float32, error) {
	t := state.Tensor()
	policy, value, err := eval.Evaluate(t)
	if err != nil {
		return nil, 0, errors.Wrapf(ErrEvaluatorInfer, "state tensor shape %v: %v", t.Shape(), err)
	}
	if len(policy) != board.MaxMvts {
		return nil, 0, errors.Wrapf(ErrEvaluatorInfer, "policy has %d entries, want %d", len(policy), board.MaxMvts)
	}
	return policy, value, nil
}
