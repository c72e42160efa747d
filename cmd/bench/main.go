// Command bench runs a batch of games between two movers and tallies
// win/loss/draw counts, generalizing the teacher's best-vs-current
// self-play tally to arbitrary mover pairs.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	iris "github.com/irisboard/iris"
	"github.com/irisboard/iris/game"
	"github.com/irisboard/iris/puct"

	multierror "github.com/hashicorp/go-multierror"
)

var (
	player1 = flag.String("p1", "random", "yellow mover: random|minimax|mcts|puct")
	player2 = flag.String("p2", "mcts", "red mover: random|minimax|mcts|puct")
	games   = flag.Int("games", 10, "number of games to play")
	depth   = flag.Int("depth", 4, "minimax search depth")
	sims    = flag.Int("sims", 200, "mcts/puct simulation count per move")
	model   = flag.String("model_path", "", "puct model path (stub evaluator if empty)")
	seed    = flag.Int64("seed", 0, "rng seed; 0 seeds from the current time")
	maxPly  = flag.Int("max_ply", 400, "ply budget before a game is declared a draw")
)

func moveFor(kind string, s game.State, rng *rand.Rand) (game.PawnTag, int, error) {
	switch kind {
	case "random":
		tag, node := iris.RandomMove(s, rng)
		return tag, node, nil
	case "minimax":
		tag, node := iris.MinimaxMove(s, *depth, rng)
		return tag, node, nil
	case "mcts":
		tag, node := iris.MCTSMoveSims(s, *sims, rng)
		return tag, node, nil
	case "puct":
		return iris.PUCTMoveSims(s, *sims, puct.UniformLoader{}, *model, rng)
	default:
		return game.Pass, -1, nil
	}
}

// playOne runs a single game to completion and reports who won, or
// (false, false) on a draw.
func playOne(p1, p2 string, rng *rand.Rand) (ended, p1Won bool, err error) {
	movers := map[bool]string{true: p1, false: p2}
	s := game.State{YellowTurn: true}

	for ply := 0; ply < *maxPly; ply++ {
		if over, yellowWon := s.Ended(); over {
			return true, yellowWon, nil
		}
		mover := movers[s.YellowTurn]
		tag, node, merr := moveFor(mover, s, rng)
		if merr != nil {
			return false, false, merr
		}
		s = s.Apply(tag, node)
	}
	return false, false, nil
}

func main() {
	flag.Parse()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	var wins, losses, draws int
	var errs *multierror.Error

	for g := 0; g < *games; g++ {
		ended, p1Won, err := playOne(*player1, *player2, rng)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		switch {
		case !ended:
			draws++
		case p1Won:
			wins++
		default:
			losses++
		}
	}

	log.Printf("%s vs %s over %d games: wins=%d losses=%d draws=%d", *player1, *player2, *games, wins, losses, draws)
	if errs != nil {
		log.Printf("errors: %s", errs)
	}
}
