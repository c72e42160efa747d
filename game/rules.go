package game

import "github.com/irisboard/iris/board"

// canPlayNeutral implements the "rule of two" shared by black, white,
// and orange: a player may move a neutral pawn if they were its last
// mover and have not done so twice in a row yet, or if the pawn's run
// counter is at zero (nobody has an exclusive claim on it).
func canPlayNeutral(yellowTurn, lastWasYellow bool, run int) bool {
	isLastMover := lastWasYellow == yellowTurn
	return (isLastMover && run < 2) || run == 0
}

// CanPlayBlack reports whether the player to move may move the black
// pawn this turn.
func (s State) CanPlayBlack() bool {
	return canPlayNeutral(s.YellowTurn, s.BlackLastWasYellow, s.BlackRun)
}

// CanPlayWhite reports whether the player to move may move the white
// pawn this turn.
func (s State) CanPlayWhite() bool {
	return canPlayNeutral(s.YellowTurn, s.WhiteLastWasYellow, s.WhiteRun)
}

// CanPlayOrange reports whether the player to move may move the
// orange pawn this turn.
func (s State) CanPlayOrange() bool {
	return canPlayNeutral(s.YellowTurn, s.OrangeLastWasYellow, s.OrangeRun)
}

// IsLegalYellow reports whether slot k is a legal move for the yellow
// pawn.
func (s State) IsLegalYellow(k int) bool {
	if k >= board.NodeDegree[s.YellowPos] {
		return false
	}
	c := board.NodeNeighbours[s.YellowPos][k]
	if c != 0 && (s.RedPos == c || s.BlackPos == c || s.WhitePos == c || s.OrangePos == c) {
		return false
	}
	mask := board.Bit(c)
	ok := mask&(^s.RedTiles|board.BitNeighbours[s.RedPos]|board.BitNeighbours[s.OrangePos]) != 0 &&
		mask&(^s.BlackTiles|board.BitNeighbours[s.BlackPos]) != 0 &&
		mask&(^s.WhiteTiles|board.BitNeighbours[s.WhitePos]) != 0
	return ok
}

// IsLegalRed reports whether slot k is a legal move for the red pawn.
func (s State) IsLegalRed(k int) bool {
	if k >= board.NodeDegree[s.RedPos] {
		return false
	}
	c := board.NodeNeighbours[s.RedPos][k]
	if c != 0 && (s.YellowPos == c || s.BlackPos == c || s.WhitePos == c || s.OrangePos == c) {
		return false
	}
	mask := board.Bit(c)
	ok := mask&(^s.YellowTiles|board.BitNeighbours[s.YellowPos]|board.BitNeighbours[s.OrangePos]) != 0 &&
		mask&(^s.BlackTiles|board.BitNeighbours[s.BlackPos]) != 0 &&
		mask&(^s.WhiteTiles|board.BitNeighbours[s.WhitePos]) != 0
	return ok
}

// IsLegalBlack reports whether slot k is a legal move for the black
// pawn, assuming the caller already holds the right to play it.
func (s State) IsLegalBlack(k int) bool {
	if k >= board.NodeDegree[s.BlackPos] {
		return false
	}
	c := board.NodeNeighbours[s.BlackPos][k]
	if c == 0 || c == s.YellowPos || c == s.RedPos || c == s.WhitePos || c == s.OrangePos {
		return false
	}
	return board.Bit(c)&(s.YellowTiles|s.RedTiles) == 0
}

// IsLegalWhite reports whether slot k is a legal move for the white
// pawn, assuming the caller already holds the right to play it.
func (s State) IsLegalWhite(k int) bool {
	if k >= board.NodeDegree[s.WhitePos] {
		return false
	}
	c := board.NodeNeighbours[s.WhitePos][k]
	if c == 0 || c == s.YellowPos || c == s.RedPos || c == s.BlackPos || c == s.OrangePos {
		return false
	}
	return board.Bit(c)&(s.YellowTiles|s.RedTiles) == 0
}

// IsLegalOrange reports whether slot k is a legal move for the orange
// pawn, assuming the caller already holds the right to play it.
func (s State) IsLegalOrange(k int) bool {
	if k >= board.NodeDegree[s.OrangePos] {
		return false
	}
	c := board.NodeNeighbours[s.OrangePos][k]
	if c == 0 || c == s.YellowPos || c == s.RedPos || c == s.BlackPos || c == s.WhitePos {
		return false
	}
	mask := board.Bit(c)
	return mask&(^s.BlackTiles|board.BitNeighbours[s.BlackPos]) != 0 &&
		mask&(^s.WhiteTiles|board.BitNeighbours[s.WhitePos]) != 0
}

// ApplyYellow applies a legal yellow move to slot k and returns the
// resulting state. The caller must have already checked IsLegalYellow.
func (s State) ApplyYellow(k int) State {
	c := board.NodeNeighbours[s.YellowPos][k]
	n := s
	n.YellowTurn = !s.YellowTurn
	n.YellowPos = c
	mask := ^board.Bit(c)
	n.YellowTiles &= mask
	n.RedTiles &= mask
	n.BlackTiles &= mask
	n.WhiteTiles &= mask
	n.BlackRun = resetIfLastMoverWas(s.BlackLastWasYellow, true, s.BlackRun)
	n.WhiteRun = resetIfLastMoverWas(s.WhiteLastWasYellow, true, s.WhiteRun)
	n.OrangeRun = resetIfLastMoverWas(s.OrangeLastWasYellow, true, s.OrangeRun)
	return n
}

// ApplyRed applies a legal red move to slot k and returns the
// resulting state. The caller must have already checked IsLegalRed.
func (s State) ApplyRed(k int) State {
	c := board.NodeNeighbours[s.RedPos][k]
	n := s
	n.YellowTurn = !s.YellowTurn
	n.RedPos = c
	mask := ^board.Bit(c)
	n.YellowTiles &= mask
	n.RedTiles &= mask
	n.BlackTiles &= mask
	n.WhiteTiles &= mask
	n.BlackRun = resetIfLastMoverWas(s.BlackLastWasYellow, false, s.BlackRun)
	n.WhiteRun = resetIfLastMoverWas(s.WhiteLastWasYellow, false, s.WhiteRun)
	n.OrangeRun = resetIfLastMoverWas(s.OrangeLastWasYellow, false, s.OrangeRun)
	return n
}

// resetIfLastMoverWas zeroes a neutral pawn's run counter when its
// last mover matches the player who just moved a colored pawn; the
// rule block a neutral pawn's owner holds expires the instant they
// play a non-neutral move.
func resetIfLastMoverWas(lastWasYellow, mover bool, run int) int {
	if lastWasYellow == mover {
		return 0
	}
	return run
}

// ApplyBlack applies a legal black-pawn move to slot k. The caller
// must have already checked CanPlayBlack and IsLegalBlack.
func (s State) ApplyBlack(k int) State {
	c := board.NodeNeighbours[s.BlackPos][k]
	n := s
	n.YellowTurn = !s.YellowTurn
	n.BlackPos = c
	n.BlackLastWasYellow = s.YellowTurn
	n.BlackRun = s.BlackRun + 1
	n.WhiteRun = resetIfLastMoverWas(s.WhiteLastWasYellow, s.YellowTurn, s.WhiteRun)
	n.OrangeRun = resetIfLastMoverWas(s.OrangeLastWasYellow, s.YellowTurn, s.OrangeRun)
	return n
}

// ApplyWhite applies a legal white-pawn move to slot k. The caller
// must have already checked CanPlayWhite and IsLegalWhite.
func (s State) ApplyWhite(k int) State {
	c := board.NodeNeighbours[s.WhitePos][k]
	n := s
	n.YellowTurn = !s.YellowTurn
	n.WhitePos = c
	n.WhiteLastWasYellow = s.YellowTurn
	n.WhiteRun = s.WhiteRun + 1
	n.BlackRun = resetIfLastMoverWas(s.BlackLastWasYellow, s.YellowTurn, s.BlackRun)
	n.OrangeRun = resetIfLastMoverWas(s.OrangeLastWasYellow, s.YellowTurn, s.OrangeRun)
	return n
}

// ApplyOrange applies a legal orange-pawn move to slot k. The caller
// must have already checked CanPlayOrange and IsLegalOrange.
func (s State) ApplyOrange(k int) State {
	c := board.NodeNeighbours[s.OrangePos][k]
	n := s
	n.YellowTurn = !s.YellowTurn
	n.OrangePos = c
	mask := ^board.Bit(c)
	n.YellowTiles &= mask
	n.RedTiles &= mask
	n.BlackTiles &= mask
	n.WhiteTiles &= mask
	n.OrangeLastWasYellow = s.YellowTurn
	n.OrangeRun = s.OrangeRun + 1
	n.BlackRun = resetIfLastMoverWas(s.BlackLastWasYellow, s.YellowTurn, s.BlackRun)
	n.WhiteRun = resetIfLastMoverWas(s.WhiteLastWasYellow, s.YellowTurn, s.WhiteRun)
	return n
}

// Apply dispatches a (pawn, node) move produced by an Enumerator or a
// search engine to the matching per-pawn transition, resolving
// ActiveColor to yellow or red by whose turn it is. The caller must
// have already checked legality, exactly as each per-pawn Apply*
// requires.
func (s State) Apply(tag PawnTag, node int) State {
	slot := func(pos int) int {
		for k, c := range board.NodeNeighbours[pos] {
			if c == node {
				return k
			}
		}
		return -1
	}
	switch tag {
	case ActiveColor:
		if s.YellowTurn {
			return s.ApplyYellow(slot(s.YellowPos))
		}
		return s.ApplyRed(slot(s.RedPos))
	case BlackPawn:
		return s.ApplyBlack(slot(s.BlackPos))
	case WhitePawn:
		return s.ApplyWhite(slot(s.WhitePos))
	case OrangePawn:
		return s.ApplyOrange(slot(s.OrangePos))
	default:
		return s.ApplyPass()
	}
}

// ApplyPass applies the sentinel pass transition: the active colored
// pawn is reset to the center, the turn flips, and neutral pawns
// update their run counters exactly as they would for a colored move.
func (s State) ApplyPass() State {
	n := s
	n.YellowTurn = !s.YellowTurn
	if s.YellowTurn {
		n.YellowPos = board.Center
	} else {
		n.RedPos = board.Center
	}
	n.BlackRun = resetIfLastMoverWas(s.BlackLastWasYellow, s.YellowTurn, s.BlackRun)
	n.WhiteRun = resetIfLastMoverWas(s.WhiteLastWasYellow, s.YellowTurn, s.WhiteRun)
	n.OrangeRun = resetIfLastMoverWas(s.OrangeLastWasYellow, s.YellowTurn, s.OrangeRun)
	return n
}
