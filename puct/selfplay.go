package puct

import (
	"github.com/irisboard/iris/board"
	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"
)

// Self-play tuning constants, matching the reference AlphaZero-style
// training loop this package's search is grounded on.
const (
	// MaxTurnsPerSample caps how many plies a single self-play game
	// contributes training samples for, so a stalled game can't grow
	// a sample set unboundedly.
	MaxTurnsPerSample = 100

	// SimulationsPerMove is how many PUCT simulations are run before
	// each self-play move is chosen.
	SimulationsPerMove = 400

	// ExplorationTurns is the last turn, counting from 0, whose move is
	// sampled stochastically (by visit-count policy) rather than chosen
	// greedily; 0 means only the opening move is sampled and every
	// later turn plays the most-visited move.
	ExplorationTurns = 0
)

// Sample is one training example: a position's tensor encoding, the
// search's resulting policy over the flat move-index space, and the
// eventual game outcome from yellow's perspective (+1 yellow win, -1
// red win).
type Sample struct {
	Position *tensor.Dense
	Policy   []float32
	Value    float32
}

// GenerateTrainingSample self-plays a full game from root using eval
// for every position evaluation, and returns one Sample per recorded
// turn. Each position's Value is the eventual game result, the same
// constant applied across every turn of that game, matching how this
// engine's training signal is assembled.
func GenerateTrainingSample(root State, eval Evaluator, src rand.Source) ([]Sample, error) {
	if src == nil {
		src = rand.NewSource(1)
	}
	t := New(root, eval, src)

	var positions []*tensor.Dense
	var policies [][]float32
	turn := 0

	for turn < MaxTurnsPerSample {
		if ended, _ := t.at(t.Root).state.Ended(); ended {
			break
		}
		if err := t.runSimulations(SimulationsPerMove, true); err != nil {
			return nil, err
		}

		policy := t.rootPolicy()
		positions = append(positions, t.at(t.Root).state.Tensor())
		policies = append(policies, policy)

		var next Handle
		if turn <= ExplorationTurns {
			next = t.sampleMove(policy)
		} else {
			next = t.bestMove()
		}
		move := t.at(next).move
		t = t.Advance(move)
		turn++
	}

	var winner float32
	if turn < MaxTurnsPerSample {
		if ended, yellowWon := t.at(t.Root).state.Ended(); ended {
			if err := t.expand(t.Root); err != nil {
				return nil, err
			}
			uniform := make([]float32, board.MaxMvts)
			for i := range uniform {
				uniform[i] = 1.0 / float32(board.MaxMvts)
			}
			positions = append(positions, t.at(t.Root).state.Tensor())
			policies = append(policies, uniform)
			if yellowWon {
				winner = 1.0
			} else {
				winner = -1.0
			}
			turn++
		}
	}

	samples := make([]Sample, len(positions))
	for i := range positions {
		samples[i] = Sample{Position: positions[i], Policy: policies[i], Value: winner}
	}
	return samples, nil
}

// StackSamples concatenates samples' positions, policies, and values
// into three batch tensors, the (Xs, Policies, Values) shape consumed
// by a training loop — the tensor container here plays the same role
// as the batched example tensors assembled for training elsewhere.
func StackSamples(samples []Sample) (positions, policies, values *tensor.Dense) {
	if len(samples) == 0 {
		return nil, nil, nil
	}
	posShape := samples[0].Position.Shape()
	var posBacking, polBacking, valBacking []float32
	for _, s := range samples {
		posBacking = append(posBacking, s.Position.Data().([]float32)...)
		polBacking = append(polBacking, s.Policy...)
		valBacking = append(valBacking, s.Value)
	}
	n := len(samples)
	positions = tensor.New(tensor.WithBacking(posBacking), tensor.WithShape(append([]int{n}, posShape...)...))
	policies = tensor.New(tensor.WithBacking(polBacking), tensor.WithShape(n, board.MaxMvts))
	values = tensor.New(tensor.WithBacking(valBacking), tensor.WithShape(n))
	return
}
