// Package minimax implements depth-limited alpha-beta search over
// Iris positions with reservoir-sampled tie-breaking among
// equally-valued root moves.
package minimax

import (
	"math/rand"
	"time"

	"github.com/irisboard/iris/game"
)

// evaluate scores a terminal or depth-exhausted state from yellow's
// perspective. A win is valued near +-1, nudged toward the extreme by
// how many plies of depth remained, so a faster forced win is always
// preferred to a slower one at equal nominal value.
func evaluate(s game.State, depthRemaining int) float32 {
	switch {
	case s.YellowPos >= 16 && s.YellowPos <= 20:
		return 1.0 - 0.01/float32(depthRemaining+1)
	case s.RedPos >= 16 && s.RedPos <= 20:
		return -1.0 + 0.01/float32(depthRemaining+1)
	default:
		return 0.0
	}
}

// search is the classical alpha-beta recursion, maximizing on yellow's
// turn and minimizing on red's.
func search(depth int, s game.State, alpha, beta float32) float32 {
	if ended, _ := s.Ended(); ended {
		return evaluate(s, depth)
	}
	if depth == 0 {
		return evaluate(s, 0)
	}

	it := game.NewEnumerator(s)
	if s.YellowTurn {
		value := float32(-2.0)
		for it.Next() {
			v := search(depth-1, it.State(), alpha, beta)
			if v > value {
				value = v
			}
			if value > beta {
				break
			}
			if value > alpha {
				alpha = value
			}
		}
		return value
	}

	value := float32(2.0)
	for it.Next() {
		v := search(depth-1, it.State(), alpha, beta)
		if v < value {
			value = v
		}
		if value < alpha {
			break
		}
		if value < beta {
			beta = value
		}
	}
	return value
}

// Move runs alpha-beta search to depth from root and returns the flat
// slot index of the best move, breaking ties among equally-valued
// moves uniformly at random via reservoir sampling. A nil rng seeds
// from the current time.
func Move(root game.State, depth int, rng *rand.Rand) int {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	alpha, beta := float32(-2.0), float32(2.0)
	maximizing := root.YellowTurn

	bestValue := float32(-2.0)
	if !maximizing {
		bestValue = 2.0
	}
	bestMove := -1
	seenBest := 0

	it := game.NewEnumerator(root)
	for it.Next() {
		value := search(depth, it.State(), alpha, beta)
		move := it.Index()

		better := false
		equal := false
		if maximizing {
			better = value > bestValue
			equal = value == bestValue
		} else {
			better = value < bestValue
			equal = value == bestValue
		}

		switch {
		case better:
			bestValue = value
			bestMove = move
			seenBest = 1
			if maximizing {
				if value > beta {
					return bestMove
				}
				if value > alpha {
					alpha = value
				}
			} else {
				if value < alpha {
					return bestMove
				}
				if value < beta {
					beta = value
				}
			}
		case equal:
			seenBest++
			if rng.Float32()*float32(seenBest) <= 1.0 {
				bestMove = move
			}
			if maximizing {
				if value > beta {
					return bestMove
				}
				if value > alpha {
					alpha = value
				}
			} else {
				if value < alpha {
					return bestMove
				}
				if value < beta {
					beta = value
				}
			}
		}
	}
	return bestMove
}
