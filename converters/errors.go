package converters

import "errors"

// Sentinel errors for gonum conversions, one var block of wrapped
// sentinels per failure mode.
var (
	// ErrNilGraph indicates a nil IndexGraph or gonum graph.Graph was passed in.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNoWeightColumn names a source IndexGraph with no "weight" float64
	// edge column. ToGonum does not return it: such a graph's edges are
	// converted with weight 0.
	ErrNoWeightColumn = errors.New("converters: no weight column on source graph")

	// ErrUnknownNode indicates a gonum edge referenced a node ID with no
	// corresponding FromGonum vertex, which should never happen for a
	// consistent graph.Graph implementation.
	ErrUnknownNode = errors.New("converters: edge references unknown node")
)
