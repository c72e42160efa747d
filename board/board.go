// Package board holds the static topology of the Iris board: a fixed
// graph of 21 nodes, read-only and process-wide once initialized.
package board

// NumberRealNodes is the number of nodes on the board, indices 0..20.
const NumberRealNodes = 21

// MaxMvtPerPawn is the widest neighbor list any node has.
const MaxMvtPerPawn = 10

// MaxMvts is the flat move-index space: 4 pawn bands of MaxMvtPerPawn
// slots plus one sentinel pass index.
const MaxMvts = 4*MaxMvtPerPawn + 1

// Center is the distinguished node every pawn starts from and that a
// passing colored pawn is sent back to.
const Center = 0

// OuterRingStart is the first node of the outer ring (16..20); a
// yellow or red pawn reaching any node in that range ends the game.
const OuterRingStart = 16

// NodeNeighbours is the adjacency list: NodeNeighbours[n][k] is the
// k-th neighbor of node n. Populated once from the board's fixed
// layout and never mutated.
var NodeNeighbours = [][]int{
	{1, 6, 2, 7, 3, 8, 4, 9, 5, 10},
	{0, 5, 10, 11, 6, 2},
	{0, 1, 6, 12, 7, 3},
	{0, 2, 7, 13, 8, 4},
	{0, 3, 8, 14, 9, 5},
	{0, 4, 9, 15, 10, 1},
	{0, 1, 10, 11, 16, 12, 7, 2},
	{0, 2, 6, 12, 17, 13, 8, 3},
	{0, 3, 7, 13, 18, 14, 9, 4},
	{0, 4, 8, 14, 19, 15, 10, 5},
	{0, 5, 9, 15, 20, 11, 6, 1},
	{1, 10, 15, 20, 16, 12, 6},
	{2, 6, 11, 16, 17, 13, 7},
	{3, 7, 12, 17, 18, 14, 8},
	{4, 8, 13, 18, 19, 15, 9},
	{5, 9, 14, 19, 20, 11, 10},
	{6, 11, 12},
	{7, 12, 13},
	{8, 13, 14},
	{9, 14, 15},
	{10, 15, 11},
}

// BitNeighbours is NodeNeighbours re-expressed as a bitmask per node:
// bit k of BitNeighbours[n] is set iff k is a neighbor of n.
var BitNeighbours = []uint32{
	2046, 3173, 4299, 8597, 17193, 34323, 72839, 143693, 287385, 574769,
	1084003, 1152066, 207044, 414088, 828176, 1592864, 6208, 12416, 24832,
	49664, 35840,
}

// NodeDegree is the number of neighbors of each node.
var NodeDegree = []int{
	10, 6, 6, 6, 6, 6, 8, 8, 8, 8, 8, 7, 7, 7, 7, 7, 3, 3, 3, 3, 3,
}

// Bit returns the single-bit mask for node n.
func Bit(n int) uint32 {
	return 1 << uint(n)
}

// OnOuterRing reports whether node n is one of the five winning nodes.
func OnOuterRing(n int) bool {
	return n >= OuterRingStart && n <= OuterRingStart+4
}
