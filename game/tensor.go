package game

import (
	"github.com/irisboard/iris/board"
	"gorgonia.org/tensor"
)

// NumFeatures is the width of a single node's feature row: five
// one-hot pawn-position columns, five tile-pair indicator columns,
// twelve neutral-pawn run/last-user columns (four each for black,
// white, and orange), and one turn column; see the column layout below
// for the exact assignment.
const NumFeatures = 23

// tile-pair column indices, columns 5..9.
const (
	colYellowRed   = 5
	colYellowBlack = 6
	colYellowWhite = 7
	colRedBlack    = 8
	colRedWhite    = 9
)

// neutral-pawn run/last-user column indices, columns 10..21.
const (
	colBlackYellowRun1 = 10
	colBlackYellowRun2 = 11
	colBlackRedRun1    = 12
	colBlackRedRun2    = 13
	colWhiteYellowRun1 = 14
	colWhiteYellowRun2 = 15
	colWhiteRedRun1    = 16
	colWhiteRedRun2    = 17
	colOrangeYellowRun1 = 18
	colOrangeYellowRun2 = 19
	colOrangeRedRun1    = 20
	colOrangeRedRun2    = 21
	colTurn             = 22
)

// Tensor encodes s as a (NumberRealNodes x NumFeatures) float32 dense
// tensor, the fixed input representation consumed by every Evaluator.
// Column 0..4 one-hot the five pawn positions; 5..9 mark tile-pair
// overlaps; 10..21 broadcast each neutral pawn's run/last-user state
// across every row; 22 broadcasts whose turn it is.
func (s State) Tensor() *tensor.Dense {
	backing := make([]float32, board.NumberRealNodes*NumFeatures)
	row := func(n int) []float32 { return backing[n*NumFeatures : (n+1)*NumFeatures] }

	row(s.YellowPos)[0] = 1.0
	row(s.RedPos)[1] = 1.0
	row(s.BlackPos)[2] = 1.0
	row(s.WhitePos)[3] = 1.0
	row(s.OrangePos)[4] = 1.0

	for n := 1; n < board.NumberRealNodes; n++ {
		bit := board.Bit(n)
		r := row(n)
		switch {
		case s.YellowTiles&s.RedTiles&bit != 0:
			r[colYellowRed] = 1.0
		case s.YellowTiles&s.BlackTiles&bit != 0:
			r[colYellowBlack] = 1.0
		case s.YellowTiles&s.WhiteTiles&bit != 0:
			r[colYellowWhite] = 1.0
		case s.RedTiles&s.BlackTiles&bit != 0:
			r[colRedBlack] = 1.0
		case s.RedTiles&s.WhiteTiles&bit != 0:
			r[colRedWhite] = 1.0
		}
	}

	broadcast := func(col int) {
		for n := 0; n < board.NumberRealNodes; n++ {
			row(n)[col] = 1.0
		}
	}
	runColumns := func(lastWasYellow bool, run int, yellow1, yellow2, red1, red2 int) {
		switch {
		case lastWasYellow && run == 1:
			broadcast(yellow1)
		case lastWasYellow && run == 2:
			broadcast(yellow2)
		case !lastWasYellow && run == 1:
			broadcast(red1)
		case !lastWasYellow && run == 2:
			broadcast(red2)
		}
	}
	runColumns(s.BlackLastWasYellow, s.BlackRun, colBlackYellowRun1, colBlackYellowRun2, colBlackRedRun1, colBlackRedRun2)
	runColumns(s.WhiteLastWasYellow, s.WhiteRun, colWhiteYellowRun1, colWhiteYellowRun2, colWhiteRedRun1, colWhiteRedRun2)
	runColumns(s.OrangeLastWasYellow, s.OrangeRun, colOrangeYellowRun1, colOrangeYellowRun2, colOrangeRedRun1, colOrangeRedRun2)

	if !s.YellowTurn {
		broadcast(colTurn)
	}

	return tensor.New(
		tensor.WithBacking(backing),
		tensor.WithShape(board.NumberRealNodes, NumFeatures),
	)
}
