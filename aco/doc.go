// Package aco implements an Ant Colony Optimization solver for low-cost
// routes over a directed weighted graph.
//
// The solver keeps a dense N×N pheromone field indexed by node. Each ant
// builds one candidate route by repeated probabilistic next-node
// selection: the attraction of a candidate is pheromone^alpha ×
// (1/edgeDistance)^beta. When a sampled node is not a direct neighbor,
// the shortest path to it is spliced into the route (package dijkstra).
// Completed routes reinforce the field (deposit = rate/distance on each
// edge of the closed route) and the whole field then evaporates by a
// multiplicative factor, once per ant processed — this is how ants
// influence each other within a single iteration.
//
// A bounded elite archive (capacity = ant count) keeps the best routes
// seen so far, sorted ascending by distance, and yields the per-iteration
// convergence history (minimum and mean archive distance).
//
// Two behavioral notes, kept deliberately:
//
//   - Reinforcement closes the route into a cycle (the wrap-around edge
//     from last to first is deposited on when it exists), while
//     RouteDistance scores the open path only. Rewarding cyclic structure
//     even for an open-path objective is part of the solver's tuning.
//   - A route's distance is +Inf when any consecutive pair is not a real
//     edge; such routes still occupy low-priority archive slots until
//     displaced, but never reinforce the field.
//
// Everything is single-threaded and synchronous: ants run strictly
// sequentially because each ant's field update must be visible to the
// next ant's tour construction. One Solve call exclusively owns its
// field and archive; no locking is needed or done.
//
// All randomness flows through a single *rand.Rand configured by
// WithSeed or WithRand, so seeded runs are fully reproducible.
//
// Complexity per iteration: O(ants × N × (N log N)) worst case (tour
// construction dominates; each evaporation pass is O(N²)).
package aco
