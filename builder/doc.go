// Package builder generates random routing scenarios for the solver:
// directed weighted graphs with a 2-D layout, and random seed routes.
//
// Random places n nodes uniformly in the unit square and includes each
// ordered pair as a directed edge independently with a configurable
// probability (an Erdős–Rényi-style trial per ordered pair). Edge
// weights are either drawn uniformly from a configurable range or taken
// from the Euclidean layout distance, so plots of the best route match
// the costs the solver optimized.
//
// Determinism:
//   - Stable node order: index ascending, zero-padded decimal IDs.
//   - Stable edge-trial order: for each from-index ascending, to-index
//     ascending.
//   - Fixed seed ⇒ identical graph, layout, and RandomRoute sequence.
//
// Errors (sentinel):
//
//	– ErrTooFewNodes        if n < 1.
//	– ErrBadEdgeProbability if p ∉ [0,1].
//	– ErrBadWeightRange     if min < 0, max < min, or the range is
//	                        degenerate at 0.
package builder
