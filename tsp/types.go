package tsp

// Weights gives the weight (distance) of edge e. The same shape as
// mst.Weights and sssp.Weights, so a caller already holding one of those
// can pass it here unchanged.
type Weights interface {
	Weight(e int) float64
}

// WeightFunc adapts a plain function to Weights.
type WeightFunc func(e int) float64

// Weight implements Weights.
func (f WeightFunc) Weight(e int) float64 { return f(e) }

// Result holds a Hamiltonian tour and its total cost.
type Result struct {
	// Tour lists vertex indices in visit order; Tour[0] == Tour[len(Tour)-1]
	// == the root vertex, and every other vertex of g appears exactly once.
	Tour []int
	// Cost is the sum of w.Weight over the tour's n consecutive edges,
	// looked up by endpoint pair against g's adjacency.
	Cost float64
}
