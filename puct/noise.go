package puct

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
)

// dirichletAlpha is the concentration parameter used for root
// exploration noise.
const dirichletAlpha = 0.8

// addDirichletNoise mixes Dirichlet(dirichletAlpha, ..., dirichletAlpha)
// noise into the policy entries of root's children, 0.75 network
// policy to 0.25 noise, so self-play exploration isn't fully
// determined by the network's own priors. Sized dynamically to the
// number of root children, since that varies by position.
func addDirichletNoise(t *Tree, root Handle, src rand.Source) {
	n := t.at(root)
	size := len(n.children)
	if size == 0 {
		return
	}
	alpha := make([]float64, size)
	for i := range alpha {
		alpha[i] = dirichletAlpha
	}
	dist := distmv.NewDirichlet(alpha, src)
	sample := dist.Rand(nil)
	for i, c := range n.children {
		child := t.at(c)
		n.policy[child.move] = 0.75*n.policy[child.move] + 0.25*float32(sample[i])
	}
}
