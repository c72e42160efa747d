// Package puct implements the AlphaZero-style PUCT search over Iris
// positions: policy-guided selection driven by an injected Evaluator,
// Dirichlet-noise root exploration for self-play, and a self-play loop
// emitting (state tensor, policy, value) training samples. It mirrors
// the classical mcts package's arena/handle ownership, swapping random
// rollout for neural evaluation at every expansion.
package puct

import (
	"time"

	"github.com/irisboard/iris/game"
	"golang.org/x/exp/rand"
)

// Handle is an arena-relative reference to a Node.
type Handle int32

// NoNode is the sentinel Handle meaning "no such child".
const NoNode Handle = -1

// State is exactly game.State, aliased for readability in this package.
type State = game.State

// Node is one PUCT search-tree vertex. policy is populated at
// expansion time from the Evaluator and indexed by flat slot index of
// each child's move, matching the reference implementation's
// full-width policy vector rather than a per-child compacted one.
type Node struct {
	parent   Handle
	children []Handle

	tag  game.PawnTag
	node int
	move int

	state State

	expanded bool
	visits   int
	wins     float32
	value    float32
	policy   []float32 // length MaxMvts, valid once expanded
}

// Tree is the PUCT search arena, owned the same way as mcts.Tree: a
// flat slice of Nodes addressed by Handle, with a freelist so
// Advance can drop everything outside the chosen subtree in place.
type Tree struct {
	nodes    []Node
	freelist []Handle

	Root   Handle
	rngSrc rand.Source
	rng    *rand.Rand
	eval   Evaluator

	// PUCTConstant is the exploration weight in the PUCT formula
	// u = policy[idx] * sqrt(PUCTConstant*(parentVisits-1)) / (visits+1).
	PUCTConstant float32
}

// New builds a Tree rooted at root, backed by eval for position
// evaluation. A nil src seeds from the current time.
func New(root State, eval Evaluator, src rand.Source) *Tree {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	t := &Tree{
		nodes:        make([]Node, 0, 4096),
		rngSrc:       src,
		rng:          rand.New(src),
		eval:         eval,
		PUCTConstant: 2.0,
	}
	t.Root = t.alloc(NoNode, game.ActiveColor, -1, -1, root)
	return t
}

func (t *Tree) alloc(parent Handle, tag game.PawnTag, node, move int, s State) Handle {
	n := Node{parent: parent, tag: tag, node: node, move: move, state: s}
	if l := len(t.freelist); l > 0 {
		h := t.freelist[l-1]
		t.freelist = t.freelist[:l-1]
		t.nodes[h] = n
		return h
	}
	t.nodes = append(t.nodes, n)
	return Handle(len(t.nodes) - 1)
}

func (t *Tree) at(h Handle) *Node {
	return &t.nodes[h]
}

// Advance re-roots the tree at the child reached by slot index move,
// freeing every sibling subtree.
func (t *Tree) Advance(move int) *Tree {
	root := t.at(t.Root)
	for _, c := range root.children {
		child := t.at(c)
		if child.move == move {
			for _, sib := range root.children {
				if sib != c {
					t.freeSubtree(sib)
				}
			}
			t.at(c).parent = NoNode
			t.Root = c
			return t
		}
	}
	return t
}

func (t *Tree) freeSubtree(h Handle) {
	n := t.at(h)
	for _, c := range n.children {
		t.freeSubtree(c)
	}
	*n = Node{}
	t.freelist = append(t.freelist, h)
}

// Nodes reports how many live nodes the arena currently holds.
func (t *Tree) Nodes() int {
	return len(t.nodes) - len(t.freelist)
}
