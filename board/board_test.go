package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighbourTablesAgreeInLength(t *testing.T) {
	assert.Len(t, NodeNeighbours, NumberRealNodes)
	assert.Len(t, BitNeighbours, NumberRealNodes)
	assert.Len(t, NodeDegree, NumberRealNodes)
	for n := 0; n < NumberRealNodes; n++ {
		assert.Len(t, NodeNeighbours[n], NodeDegree[n])
	}
}

func TestBitNeighboursMatchNodeNeighbours(t *testing.T) {
	for n := 0; n < NumberRealNodes; n++ {
		var want uint32
		for _, k := range NodeNeighbours[n] {
			want |= Bit(k)
		}
		assert.Equal(t, want, BitNeighbours[n], "node %d", n)
	}
}

func TestOnOuterRing(t *testing.T) {
	for n := OuterRingStart; n < OuterRingStart+5; n++ {
		assert.True(t, OnOuterRing(n))
	}
	assert.False(t, OnOuterRing(Center))
	assert.False(t, OnOuterRing(OuterRingStart-1))
	assert.False(t, OnOuterRing(OuterRingStart+5))
}

func TestMaxMvtsMatchesBandLayout(t *testing.T) {
	assert.Equal(t, 4*MaxMvtPerPawn+1, MaxMvts)
}
