package game

import "fmt"

// ErrMoveNotFound is returned by DecodeMove when child is not a legal
// successor of parent.
type ErrMoveNotFound struct {
	Parent, Child State
}

func (e ErrMoveNotFound) Error() string {
	return fmt.Sprintf("game: %+v is not a legal successor of %+v", e.Child, e.Parent)
}

// DecodeMove recovers the (pawn, node) move that took parent to child
// by re-enumerating parent's legal successors and matching by state
// equality. This is the only way to name a move: the enumerator, not
// the move, is the primitive, so any caller holding a (parent, child)
// pair recovers the external representation through it.
func DecodeMove(parent, child State) (PawnTag, int, error) {
	e := NewEnumerator(parent)
	for e.Next() {
		if e.State().Equal(child) {
			tag, node := e.Move()
			return tag, node, nil
		}
	}
	return 0, 0, ErrMoveNotFound{Parent: parent, Child: child}
}

// DecodeMoveIndex is DecodeMove's counterpart returning the flat slot
// index instead of the (pawn, node) pair, for callers indexing policy
// vectors by slot rather than by pawn band.
func DecodeMoveIndex(parent, child State) (int, error) {
	e := NewEnumerator(parent)
	for e.Next() {
		if e.State().Equal(child) {
			return e.Index(), nil
		}
	}
	return -1, ErrMoveNotFound{Parent: parent, Child: child}
}
