// Package iris ties the board topology, rule engine, and the four
// search engines (random, minimax, classical MCTS, neural-guided PUCT)
// together behind the seven public entry points a host program calls.
package iris

import (
	"math/rand"

	"github.com/irisboard/iris/board"
	"github.com/irisboard/iris/game"
	"github.com/irisboard/iris/puct"
	"github.com/pkg/errors"
)

// Re-exported engine constants, so a host needs only this package for
// the fixed dimensions and tuning values every search shares.
const (
	MaxMvtPerPawn    = board.MaxMvtPerPawn
	MaxMvts          = board.MaxMvts
	NumberRealNodes  = board.NumberRealNodes
	NumberAttributes = game.NumFeatures

	UCTConstant  = 2.0
	PUCTConstant = 2.0

	AlphaDirichlet     = 0.8
	SimulationsPerMove = puct.SimulationsPerMove
	MaxTurnsPerSample  = puct.MaxTurnsPerSample
	ExplorationTurns   = puct.ExplorationTurns
	MaxRolloutDepth    = 20
)

// Config bundles the one piece every PUCT-backed entry point needs that
// can't be derived from a State alone: a way to turn a serialized model
// path into a puct.Evaluator. Model deserialization is a host concern
// (the neural forward pass itself is out of scope here), so Config
// carries the loader once rather than asking every call site to know
// how to build an Evaluator.
type Config struct {
	Loader puct.Loader
}

// Engine wraps a Config with the loaded Evaluator for a specific model
// path, amortizing the load across repeated moves against the same
// model — the role the teacher's constructed AZ value plays once its
// Config has been resolved into a concrete network.
type Engine struct {
	eval puct.Evaluator
}

// NewEngine loads modelPath once via cfg.Loader and returns an Engine
// ready to drive repeated PUCT searches against it.
func NewEngine(cfg Config, modelPath string) (*Engine, error) {
	eval, err := cfg.Loader.Load(modelPath)
	if err != nil {
		return nil, errors.Wrapf(puct.ErrEvaluatorLoad, "model %q: %v", modelPath, err)
	}
	return &Engine{eval: eval}, nil
}

// MoveTime runs a PUCT search against the Engine's loaded model for
// the given time budget and returns the chosen move.
func (e *Engine) MoveTime(s game.State, seconds float64, rng *rand.Rand) (game.PawnTag, int, error) {
	return puctMoveTime(s, seconds, e.eval, rng)
}

// MoveSims runs a PUCT search against the Engine's loaded model for
// the given simulation budget and returns the chosen move.
func (e *Engine) MoveSims(s game.State, n int, rng *rand.Rand) (game.PawnTag, int, error) {
	return puctMoveSims(s, n, e.eval, rng)
}
