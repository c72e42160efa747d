package game

import "github.com/irisboard/iris/board"

// Flat slot-index band boundaries: the active colored pawn, black,
// white, orange, then a single trailing pass slot.
const (
	bandActive = 0
	bandBlack  = board.MaxMvtPerPawn
	bandWhite  = 2 * board.MaxMvtPerPawn
	bandOrange = 3 * board.MaxMvtPerPawn
	bandPass   = 4 * board.MaxMvtPerPawn
)

// Enumerator lazily walks the legal successors of a state in
// increasing slot-index order. It is stateful and single-pass: once
// advanced past a slot it never revisits it. A zero value is not
// usable; construct with NewEnumerator. Two enumerators both run past
// their last slot compare as equivalent regardless of how they got
// there, matching the "both past end" equality of the index space
// this type walks.
type Enumerator struct {
	parent State
	next   int // first unexamined slot index

	canBlack, canWhite, canOrange bool
	passEmitted                   bool
	anyMoveEmitted                bool

	done bool
	idx  int
	tag  PawnTag
	node int
	succ State
}

// NewEnumerator starts an Enumerator over parent's legal successors.
func NewEnumerator(parent State) *Enumerator {
	return &Enumerator{
		parent:    parent,
		canBlack:  parent.CanPlayBlack(),
		canWhite:  parent.CanPlayWhite(),
		canOrange: parent.CanPlayOrange(),
	}
}

// AtEnd reports whether the enumerator has exhausted the slot space.
// Two enumerators for which AtEnd is true are considered equal
// positions, independent of their internal index.
func (e *Enumerator) AtEnd() bool {
	return e.done
}

// Next advances to the following legal successor and reports whether
// one was found. Call Move/Index/State only after Next returns true.
func (e *Enumerator) Next() bool {
	for i := e.next; i < board.MaxMvts; i++ {
		switch {
		case i < bandBlack:
			k := i - bandActive
			if e.parent.YellowTurn {
				if e.parent.IsLegalYellow(k) {
					e.accept(i, ActiveColor, board.NodeNeighbours[e.parent.YellowPos][k], e.parent.ApplyYellow(k))
					return true
				}
			} else if e.parent.IsLegalRed(k) {
				e.accept(i, ActiveColor, board.NodeNeighbours[e.parent.RedPos][k], e.parent.ApplyRed(k))
				return true
			}

		case i < bandWhite:
			if !e.canBlack {
				i = bandWhite - 1
				continue
			}
			k := i - bandBlack
			if e.parent.IsLegalBlack(k) {
				e.accept(i, BlackPawn, board.NodeNeighbours[e.parent.BlackPos][k], e.parent.ApplyBlack(k))
				return true
			}

		case i < bandOrange:
			if !e.canWhite {
				i = bandOrange - 1
				continue
			}
			k := i - bandWhite
			if e.parent.IsLegalWhite(k) {
				e.accept(i, WhitePawn, board.NodeNeighbours[e.parent.WhitePos][k], e.parent.ApplyWhite(k))
				return true
			}

		case i < bandPass:
			if !e.canOrange {
				i = bandPass - 1
				continue
			}
			k := i - bandOrange
			if e.parent.IsLegalOrange(k) {
				e.accept(i, OrangePawn, board.NodeNeighbours[e.parent.OrangePos][k], e.parent.ApplyOrange(k))
				return true
			}

		default:
			if !e.anyMoveEmitted && !e.passEmitted {
				e.passEmitted = true
				e.accept(i, Pass, -1, e.parent.ApplyPass())
				return true
			}
		}
	}
	e.next = board.MaxMvts
	e.done = true
	return false
}

func (e *Enumerator) accept(i int, tag PawnTag, node int, succ State) {
	e.next = i + 1
	e.anyMoveEmitted = true
	e.idx = i
	e.tag = tag
	e.node = node
	e.succ = succ
}

// Move returns the (pawnTag, node) pair describing the current slot.
// node is -1 for the pass slot.
func (e *Enumerator) Move() (PawnTag, int) {
	return e.tag, e.node
}

// Index returns the flat slot index, 0..MaxMvts-1, of the current move.
func (e *Enumerator) Index() int {
	return e.idx
}

// State returns the successor state reached by the current slot.
func (e *Enumerator) State() State {
	return e.succ
}

// HasLegalMove reports whether s has at least one legal successor
// other than the forced pass.
func (s State) HasLegalMove() bool {
	e := NewEnumerator(s)
	return e.Next() && e.tag != Pass
}
