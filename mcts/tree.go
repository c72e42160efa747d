// Package mcts implements classical Monte Carlo tree search over Iris
// positions: UCT selection, random-playout expansion and simulation,
// and visit-count backpropagation. It owns its nodes in a flat arena
// indexed by a lightweight integer handle rather than raw pointers, so
// that discarding a subtree after the root advances is a freelist push
// instead of relying on the garbage collector to walk pointer chains.
package mcts

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/irisboard/iris/game"
)

// Handle is an arena-relative reference to a Node. The zero value is
// not a valid handle; use NoNode for "absent".
type Handle int32

// NoNode is the sentinel Handle meaning "no such child".
const NoNode Handle = -1

// State is an alias kept local to this package so search code reads
// naturally; it is exactly game.State.
type State = game.State

// Node is one search-tree vertex: the move that led to it, its state,
// and its accumulated UCT statistics. Nodes never move once allocated;
// only their fields mutate in place, addressed through the owning
// Tree's arena.
type Node struct {
	parent   Handle
	children []Handle

	tag  game.PawnTag
	node int
	move int // flat slot index, for DOT labeling and diagnostics

	state State

	visits int
	wins   float32 // +1/-1/untouched per simulation, from the mover into this node's perspective
}

// Tree is the arena owning every Node reachable from Root. Constructed
// fresh per search root via New, and advanced in place by Advance,
// which detaches the chosen child's subtree and frees everything else.
type Tree struct {
	nodes    []Node
	freelist []Handle

	Root Handle
	rng  *rand.Rand

	// UCTConstant is the exploration weight C in the UCT formula
	// wins/visits + sqrt(C*ln(parentVisits)/visits). 2.0 matches the
	// classical MCTS literature default.
	UCTConstant float32

	// MaxRolloutDepth caps how many plies a random playout simulates
	// before being scored as a draw, bounding worst-case search time
	// on positions that stall out.
	MaxRolloutDepth int
}

// New builds a Tree rooted at root. A nil rng seeds from the current
// time; pass a seeded *rand.Rand for reproducible search.
func New(root State, rng *rand.Rand) *Tree {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t := &Tree{
		nodes:           make([]Node, 0, 4096),
		rng:             rng,
		UCTConstant:     2.0,
		MaxRolloutDepth: 20,
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
// freeing every sibling subtree. If the move wasn't previously
// expanded (e.g. the caller is replaying an opponent's move), a fresh
// single-node tree is returned instead.
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
	it := game.NewEnumerator(root.state)
	for it.Next() {
		if it.Index() == move {
			fresh := New(it.State(), t.rng)
			fresh.UCTConstant = t.UCTConstant
			fresh.MaxRolloutDepth = t.MaxRolloutDepth
			return fresh
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

// BestMove returns the flat slot index of the root child with the most
// visits, the standard robust-child move-selection rule.
func (t *Tree) BestMove() int {
	root := t.at(t.Root)
	best := NoNode
	bestVisits := -1
	for _, c := range root.children {
		if v := t.at(c).visits; v > bestVisits {
			bestVisits = v
			best = c
		}
	}
	if best == NoNode {
		return -1
	}
	return t.at(best).move
}

func (n *Node) String() string {
	return fmt.Sprintf("{move=%d tag=%d visits=%d wins=%.2f}", n.move, n.tag, n.visits, n.wins)
}
