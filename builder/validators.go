// Package builder provides validation helpers to enforce
// parameter contracts in GraphConstructor factories.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// method identifies the calling constructor in the formatted error.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validatePartition checks that the two integers n1 and n2 are each ≥ 1.
// Used by CompleteBipartite to enforce non-empty partitions.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MaxPartition || n2 < MaxPartition {
		return builderErrorf(method, "partition sizes must be ≥ 1, got %d and %d", n1, n2)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]. Used by RandomSparse.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, "probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
