package mcts

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/irisboard/iris/game"
)

// expand populates h's children by enumerating every legal successor
// of its state, mirroring the flat slot-index space of game.Enumerator
// one-for-one rather than building a separate move list.
func (t *Tree) expand(h Handle) {
	n := t.at(h)
	if n.children != nil {
		return
	}
	it := game.NewEnumerator(n.state)
	for it.Next() {
		tag, node := it.Move()
		child := t.alloc(h, tag, node, it.Index(), it.State())
		n = t.at(h) // alloc may have grown the slice backing n
		n.children = append(n.children, child)
	}
	if n.children == nil {
		n.children = []Handle{}
	}
}

// uct scores a child for selection: exploitation term plus the
// classical exploration bonus weighted by t.UCTConstant.
func (t *Tree) uct(parentVisits int, child *Node) float32 {
	if child.visits == 0 {
		return math32.Inf(1)
	}
	exploit := child.wins / float32(child.visits)
	explore := math32.Sqrt(t.UCTConstant * math32.Log(float32(parentVisits)) / float32(child.visits))
	return exploit + explore
}

// bestChild picks the highest-UCT child of n, breaking ties by
// reservoir sampling over every child tied for the lead (the k-th tied
// child replaces the held pick with probability 1/k) rather than
// keeping whichever one enumeration happened to visit first. Right
// after expand populates a node's children they all sit at visits == 0
// and score +Inf, so this is what makes that first pick uniform.
func (t *Tree) bestChild(n *Node) Handle {
	best := n.children[0]
	bestScore := t.uct(n.visits, t.at(best))
	tied := 1
	for _, c := range n.children[1:] {
		s := t.uct(n.visits, t.at(c))
		switch {
		case s > bestScore:
			bestScore = s
			best = c
			tied = 1
		case s == bestScore:
			tied++
			if t.rng.Float32()*float32(tied) <= 1.0 {
				best = c
			}
		}
	}
	return best
}

// selectLeaf walks from h down to an unexpanded or terminal node,
// picking the highest-UCT child at each step, and returns the path
// taken (for backpropagation) along with the leaf handle.
func (t *Tree) selectLeaf(h Handle) ([]Handle, Handle) {
	path := []Handle{h}
	for {
		n := t.at(h)
		if ended, _ := n.state.Ended(); ended {
			return path, h
		}
		t.expand(h)
		n = t.at(h)
		if len(n.children) == 0 {
			return path, h
		}
		best := t.bestChild(n)
		if t.at(best).visits == 0 {
			path = append(path, best)
			return path, best
		}
		h = best
		path = append(path, h)
	}
}

// rollout plays uniformly random legal moves from s until the game
// ends or MaxRolloutDepth plies have elapsed, and reports the result:
// 1 a yellow win, -1 a red win, 0 if the rollout was cut off undecided.
func (t *Tree) rollout(s State) int {
	for ply := 0; ply < t.MaxRolloutDepth; ply++ {
		if ended, yellowWon := s.Ended(); ended {
			if yellowWon {
				return 1
			}
			return -1
		}
		moves := legalSuccessors(s)
		s = moves[t.rng.Intn(len(moves))]
	}
	return 0
}

func legalSuccessors(s State) []State {
	var out []State
	it := game.NewEnumerator(s)
	for it.Next() {
		out = append(out, it.State())
	}
	return out
}

// backpropagate updates visit/win statistics along path. result is 1
// for a yellow win, -1 for a red win, 0 for a draw. wins is credited to
// the player who moved into each node, i.e. the opposite of that
// node's own YellowTurn (which names who moves next): +1 if that mover
// won, -1 if they lost. A draw leaves wins untouched entirely, it is
// not an average-in of 0.
func (t *Tree) backpropagate(path []Handle, result int) {
	for _, h := range path {
		n := t.at(h)
		n.visits++
		if result == 0 {
			continue
		}
		moverWasYellow := !n.state.YellowTurn
		if (result == 1) == moverWasYellow {
			n.wins++
		} else {
			n.wins--
		}
	}
}

// Simulate runs one MCTS iteration: select, expand, rollout, backprop.
func (t *Tree) Simulate() {
	path, leaf := t.selectLeaf(t.Root)
	n := t.at(leaf)
	var result int
	if ended, yellowWon := n.state.Ended(); ended {
		if yellowWon {
			result = 1
		} else {
			result = -1
		}
	} else {
		result = t.rollout(n.state)
	}
	t.backpropagate(path, result)
}

// Search drives a fixed number of simulations from root and returns
// the chosen move's flat slot index along with the tree built, so
// callers (e.g. self-play) can inspect visit-count statistics. A nil
// rng seeds from the current time.
func Search(root State, sims int, rng *rand.Rand) (int, *Tree) {
	t := New(root, rng)
	for i := 0; i < sims; i++ {
		t.Simulate()
	}
	return t.BestMove(), t
}

// SearchTime drives simulations from root until budget elapses and
// returns the chosen move's flat slot index along with the tree built.
func SearchTime(root State, budget time.Duration, rng *rand.Rand) (int, *Tree) {
	t := New(root, rng)
	deadline := time.Now().Add(budget)
	for time.Now().Before(deadline) {
		t.Simulate()
	}
	return t.BestMove(), t
}
