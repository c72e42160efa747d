// Command play runs one game of Iris between two configured movers,
// printing each ply and the eventual winner.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	iris "github.com/irisboard/iris"
	"github.com/irisboard/iris/game"
	"github.com/irisboard/iris/puct"
)

var (
	player1 = flag.String("p1", "random", "yellow mover: random|minimax|mcts|puct")
	player2 = flag.String("p2", "mcts", "red mover: random|minimax|mcts|puct")
	depth   = flag.Int("depth", 4, "minimax search depth")
	sims    = flag.Int("sims", 400, "mcts/puct simulation count per move")
	model   = flag.String("model_path", "", "puct model path (stub evaluator if empty)")
	seed    = flag.Int64("seed", 0, "rng seed; 0 seeds from the current time")
	maxPly  = flag.Int("max_ply", 400, "ply budget before the game is declared a draw")
)

func moveFor(kind string, s game.State, rng *rand.Rand) (game.PawnTag, int) {
	switch kind {
	case "random":
		return iris.RandomMove(s, rng)
	case "minimax":
		return iris.MinimaxMove(s, *depth, rng)
	case "mcts":
		return iris.MCTSMoveSims(s, *sims, rng)
	case "puct":
		tag, node, err := iris.PUCTMoveSims(s, *sims, puct.UniformLoader{}, *model, rng)
		if err != nil {
			log.Fatalf("puct move: %s", err)
		}
		return tag, node
	default:
		log.Fatalf("unknown mover %q", kind)
		return game.Pass, -1
	}
}

func main() {
	flag.Parse()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	movers := map[bool]string{true: *player1, false: *player2}
	s := game.State{YellowTurn: true}

	ply := 0
	for ; ply < *maxPly; ply++ {
		if ended, yellowWon := s.Ended(); ended {
			if yellowWon {
				fmt.Println("winner: yellow")
			} else {
				fmt.Println("winner: red")
			}
			return
		}

		mover := movers[s.YellowTurn]
		tag, node := moveFor(mover, s, rng)
		s = s.Apply(tag, node)
		fmt.Printf("ply %d: %s plays tag=%d node=%d\n", ply, mover, tag, node)
	}

	fmt.Println("winner: draw (ply budget exhausted)")
}
