package iris

import (
	"math/rand"
	"time"

	"github.com/irisboard/iris/game"
	"github.com/irisboard/iris/mcts"
	"github.com/irisboard/iris/minimax"
	"github.com/irisboard/iris/puct"
	"github.com/pkg/errors"
	xrand "golang.org/x/exp/rand"
	"gorgonia.org/tensor"
)

// resolveRNG returns rng, or a time-seeded one if rng is nil, matching
// every search package's own nil-seeds-from-entropy convention.
func resolveRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}

// puctSource derives a golang.org/x/exp/rand.Source (the type
// puct.Tree needs for its Dirichlet noise) from a caller-supplied
// math/rand.Rand, so every public entry point keeps a single *rand.Rand
// parameter regardless of which RNG package a given search consumes
// internally.
func puctSource(rng *rand.Rand) xrand.Source {
	rng = resolveRNG(rng)
	return xrand.NewSource(uint64(rng.Int63()))
}

// RandomMove picks a uniformly random legal successor of s and returns
// the move that produced it.
func RandomMove(s game.State, rng *rand.Rand) (game.PawnTag, int) {
	rng = resolveRNG(rng)

	var tags []game.PawnTag
	var nodes []int
	it := game.NewEnumerator(s)
	for it.Next() {
		tag, node := it.Move()
		tags = append(tags, tag)
		nodes = append(nodes, node)
	}
	i := rng.Intn(len(tags))
	return tags[i], nodes[i]
}

// MinimaxMove runs depth-limited alpha-beta search from s and returns
// the chosen move.
func MinimaxMove(s game.State, depth int, rng *rand.Rand) (game.PawnTag, int) {
	rng = resolveRNG(rng)
	index := minimax.Move(s, depth, rng)
	return decodeIndex(s, index)
}

// MCTSMoveTime runs classical MCTS from s for the given time budget, in
// seconds, and returns the chosen move.
func MCTSMoveTime(s game.State, seconds float64, rng *rand.Rand) (game.PawnTag, int) {
	rng = resolveRNG(rng)
	index, _ := mcts.SearchTime(s, time.Duration(seconds*float64(time.Second)), rng)
	return decodeIndex(s, index)
}

// MCTSMoveSims runs classical MCTS from s for the given number of
// simulations and returns the chosen move.
func MCTSMoveSims(s game.State, n int, rng *rand.Rand) (game.PawnTag, int) {
	rng = resolveRNG(rng)
	index, _ := mcts.Search(s, n, rng)
	return decodeIndex(s, index)
}

// PUCTMoveTime loads modelPath via loader and runs PUCT search from s
// for the given time budget, in seconds.
func PUCTMoveTime(s game.State, seconds float64, loader puct.Loader, modelPath string, rng *rand.Rand) (game.PawnTag, int, error) {
	eval, err := loader.Load(modelPath)
	if err != nil {
		return game.Pass, 0, errors.Wrapf(puct.ErrEvaluatorLoad, "model %q: %v", modelPath, err)
	}
	return puctMoveTime(s, seconds, eval, rng)
}

// PUCTMoveSims loads modelPath via loader and runs PUCT search from s
// for the given number of simulations.
func PUCTMoveSims(s game.State, n int, loader puct.Loader, modelPath string, rng *rand.Rand) (game.PawnTag, int, error) {
	eval, err := loader.Load(modelPath)
	if err != nil {
		return game.Pass, 0, errors.Wrapf(puct.ErrEvaluatorLoad, "model %q: %v", modelPath, err)
	}
	return puctMoveSims(s, n, eval, rng)
}

func puctMoveTime(s game.State, seconds float64, eval puct.Evaluator, rng *rand.Rand) (game.PawnTag, int, error) {
	index, err := puct.SearchTime(s, eval, time.Duration(seconds*float64(time.Second)), puctSource(rng))
	if err != nil {
		return game.Pass, 0, err
	}
	tag, node := decodeIndex(s, index)
	return tag, node, nil
}

func puctMoveSims(s game.State, n int, eval puct.Evaluator, rng *rand.Rand) (game.PawnTag, int, error) {
	index, err := puct.Search(s, eval, n, puctSource(rng))
	if err != nil {
		return game.Pass, 0, err
	}
	tag, node := decodeIndex(s, index)
	return tag, node, nil
}

// GenerateTrainingSample loads modelPath via loader, self-plays one
// full game from s, and returns the stacked (position, policy, value)
// training tensors for every recorded ply.
func GenerateTrainingSample(s game.State, loader puct.Loader, modelPath string, rng *rand.Rand) (states, policies, values *tensor.Dense, err error) {
	eval, err := loader.Load(modelPath)
	if err != nil {
		return nil, nil, nil, errors.Wrapf(puct.ErrEvaluatorLoad, "model %q: %v", modelPath, err)
	}
	samples, err := puct.GenerateTrainingSample(s, eval, puctSource(rng))
	if err != nil {
		return nil, nil, nil, err
	}
	states, policies, values = puct.StackSamples(samples)
	return states, policies, values, nil
}

// decodeIndex resolves a flat slot index, re-enumerated from s, back to
// its (pawn, node) pair. A slot index not produced by s's own
// enumerator (e.g. -1 from an exhausted search) decodes to Pass.
func decodeIndex(s game.State, index int) (game.PawnTag, int) {
	it := game.NewEnumerator(s)
	for it.Next() {
		if it.Index() == index {
			return it.Move()
		}
	}
	return game.Pass, -1
}
