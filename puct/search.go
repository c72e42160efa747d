package puct

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/irisboard/iris/board"
	"github.com/irisboard/iris/game"
	"golang.org/x/exp/rand"
)

// expand evaluates h's position with the tree's Evaluator, records its
// policy and value, and populates its children by full enumeration.
// A node's policy is stored at full MaxMvts width so a child's score
// can always be looked up by its own flat slot index, matching the
// reference implementation's indexing scheme.
func (t *Tree) expand(h Handle) error {
	n := t.at(h)
	if n.expanded {
		return nil
	}
	n.expanded = true

	policy, value, err := evaluate(t.eval, n.state)
	if err != nil {
		return err
	}
	n.policy = policy
	n.value = value

	if ended, _ := n.state.Ended(); ended {
		return nil
	}

	it := game.NewEnumerator(n.state)
	for it.Next() {
		tag, node := it.Move()
		child := t.alloc(h, tag, node, it.Index(), it.State())
		n = t.at(h)
		n.children = append(n.children, child)
	}
	return nil
}

// puctScore is the AlphaZero selection criterion: exploitation (mean
// value so far) plus an exploration bonus weighted by the parent's
// policy estimate for this child's move.
func (t *Tree) puctScore(parent, child *Node) float32 {
	q := float32(0)
	if child.visits > 0 {
		q = child.wins / float32(child.visits)
	}
	u := parent.policy[child.move] * math32.Sqrt(t.PUCTConstant*float32(parent.visits-1)) / float32(child.visits+1)
	return q + u
}

// selectLeaf walks from h to an unexpanded or terminal node, following
// the highest-PUCT child at each step.
func (t *Tree) selectLeaf(h Handle) ([]Handle, Handle) {
	path := []Handle{h}
	for {
		n := t.at(h)
		if ended, _ := n.state.Ended(); ended || !n.expanded {
			return path, h
		}
		if len(n.children) == 0 {
			return path, h
		}
		best := n.children[0]
		bestScore := math32.Inf(-1)
		for _, c := range n.children {
			s := t.puctScore(n, t.at(c))
			if s > bestScore {
				bestScore = s
				best = c
			}
		}
		h = best
		path = append(path, h)
	}
}

// backpropagate pushes value up the path from leaf to root. The sign
// flips at every node whose state has yellow to move, so that value
// is always interpreted relative to the mover at each ancestor.
func (t *Tree) backpropagate(path []Handle, value float32) {
	for i := len(path) - 1; i >= 0; i-- {
		n := t.at(path[i])
		n.visits++
		if n.state.YellowTurn {
			n.wins -= value
		} else {
			n.wins += value
		}
	}
}

// Simulate runs one PUCT iteration: select, expand, backpropagate.
func (t *Tree) Simulate() error {
	path, leaf := t.selectLeaf(t.Root)
	if err := t.expand(leaf); err != nil {
		return err
	}
	t.backpropagate(path, t.at(leaf).value)
	return nil
}

// rootPolicy is the post-search visit distribution over the root's
// children, normalized the same way as the reference implementation:
// child visits divided by (root visits - 1), the -1 discounting the
// root's own initial expansion visit.
func (t *Tree) rootPolicy() []float32 {
	root := t.at(t.Root)
	p := make([]float32, board.MaxMvts)
	denom := float32(root.visits - 1)
	if denom <= 0 {
		return p
	}
	for _, c := range root.children {
		child := t.at(c)
		p[child.move] = float32(child.visits) / denom
	}
	return p
}

// bestMove returns the root child with the most visits, the "robust
// child" move-selection rule used once self-play is past its early,
// temperature-driven turns.
func (t *Tree) bestMove() Handle {
	root := t.at(t.Root)
	best := root.children[0]
	bestVisits := t.at(best).visits
	for _, c := range root.children {
		if v := t.at(c).visits; v > bestVisits {
			bestVisits = v
			best = c
		}
	}
	return best
}

// sampleMove stochastically samples a root child by walking the
// cumulative distribution of policy over the root's children until a
// uniform draw falls inside a child's slice.
func (t *Tree) sampleMove(policy []float32) Handle {
	root := t.at(t.Root)
	draw := t.rng.Float32()
	var cumulative float32
	for _, c := range root.children {
		cumulative += policy[t.at(c).move]
		if draw <= cumulative {
			return c
		}
	}
	return root.children[len(root.children)-1]
}

// runSimulations expands the root, optionally injects Dirichlet root
// noise (self-play exploration), then runs PUCT simulations until the
// root has accumulated n visits.
func (t *Tree) runSimulations(n int, noise bool) error {
	if !t.at(t.Root).expanded {
		if err := t.expand(t.Root); err != nil {
			return err
		}
		t.backpropagate([]Handle{t.Root}, t.at(t.Root).value)
	}
	if noise {
		addDirichletNoise(t, t.Root, t.rngSrc)
	}
	for t.at(t.Root).visits < n {
		if err := t.Simulate(); err != nil {
			return err
		}
	}
	return nil
}

// Search drives sims simulations from root using eval and returns the
// chosen move's flat slot index. A nil src seeds from the current time.
func Search(root State, eval Evaluator, sims int, src rand.Source) (int, error) {
	t := New(root, eval, src)
	// +1 for the root's own expansion visit, which is not a simulation.
	if err := t.runSimulations(sims+1, false); err != nil {
		return 0, err
	}
	return t.at(t.bestMove()).move, nil
}

// SearchTime drives simulations from root until budget elapses and
// returns the chosen move's flat slot index.
func SearchTime(root State, eval Evaluator, budget time.Duration, src rand.Source) (int, error) {
	t := New(root, eval, src)
	if err := t.expand(t.Root); err != nil {
		return 0, err
	}
	t.backpropagate([]Handle{t.Root}, t.at(t.Root).value)
	deadline := time.Now().Add(budget)
	for time.Now().Before(deadline) {
		if err := t.Simulate(); err != nil {
			return 0, err
		}
	}
	return t.at(t.bestMove()).move, nil
}
