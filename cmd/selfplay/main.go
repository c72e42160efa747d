// Command selfplay generates self-play training samples via
// GenerateTrainingSample and reports shape and value statistics. It
// produces samples only: no gradient step is taken and no model is
// persisted.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	iris "github.com/irisboard/iris"
	"github.com/irisboard/iris/game"
	"github.com/irisboard/iris/puct"
)

var (
	episodes = flag.Int("episodes", 1, "number of self-play games to generate samples from")
	model    = flag.String("model_path", "", "puct model path (stub evaluator if empty)")
	seed     = flag.Int64("seed", 0, "rng seed; 0 seeds from the current time")
)

func main() {
	flag.Parse()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	var totalSamples int
	var yellowWins, redWins, undecided int

	for e := 0; e < *episodes; e++ {
		start := game.State{YellowTurn: true}
		states, policies, values, err := iris.GenerateTrainingSample(start, puct.UniformLoader{}, *model, rng)
		if err != nil {
			log.Fatalf("episode %d: %s", e, err)
		}
		if states == nil {
			undecided++
			continue
		}

		n := states.Shape()[0]
		totalSamples += n

		valData := values.Data().([]float32)
		switch {
		case len(valData) > 0 && valData[0] > 0:
			yellowWins++
		case len(valData) > 0 && valData[0] < 0:
			redWins++
		default:
			undecided++
		}

		log.Printf("episode %d: %d samples, position shape %v, policy shape %v", e, n, states.Shape(), policies.Shape())
	}

	log.Printf("done: %d episodes, %d total samples, yellow won %d, red won %d, undecided %d",
		*episodes, totalSamples, yellowWins, redWins, undecided)
}
