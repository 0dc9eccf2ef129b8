// Elite archive: a bounded, distance-sorted list of the best candidate
// routes seen so far in a run. Capacity equals the ant count; slots start
// as (nil route, +Inf) and are displaced by strictly better offers.
package aco

import (
	"math"
	"sort"
)

// Archive keeps up to capacity (route, distance) pairs sorted ascending
// by distance. It is owned by one runner; not safe for concurrent use.
type Archive struct {
	routes []Route
	dists  []float64
}

// NewArchive returns an archive with the given capacity, every slot
// initialized to (nil, +Inf).
//
// Errors: ErrBadCapacity when capacity < 1.
//
// Complexity: O(capacity).
func NewArchive(capacity int) (*Archive, error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}

	a := &Archive{
		routes: make([]Route, capacity),
		dists:  make([]float64, capacity),
	}
	for i := range a.dists {
		a.dists[i] = math.Inf(1)
	}

	return a, nil
}

// Capacity returns the fixed slot count.
func (a *Archive) Capacity() int { return len(a.dists) }

// Offer inserts (route, distance) at the first slot holding a strictly
// greater distance, shifting lower-ranked entries right and dropping the
// last. One insertion at the first qualifying slot keeps the ascending
// order invariant; offers no better than every current slot are ignored.
//
// Complexity: O(capacity).
func (a *Archive) Offer(route Route, distance float64) {
	for i, d := range a.dists {
		if distance >= d {
			continue
		}
		copy(a.routes[i+1:], a.routes[i:len(a.routes)-1])
		copy(a.dists[i+1:], a.dists[i:len(a.dists)-1])
		a.routes[i] = route
		a.dists[i] = distance

		return
	}
}

// Seed replaces the archive content with the supplied routes and their
// distances, truncated to capacity and padded with (nil, +Inf), then
// restores the ascending-distance order. Callers pass distances computed
// by RouteDistance for the same graph the run uses.
//
// Complexity: O(capacity log capacity).
func (a *Archive) Seed(routes []Route, distances []float64) {
	n := len(routes)
	if n > len(a.routes) {
		n = len(a.routes)
	}

	for i := range a.routes {
		if i < n {
			a.routes[i] = routes[i]
			a.dists[i] = distances[i]
			continue
		}
		a.routes[i] = nil
		a.dists[i] = math.Inf(1)
	}

	sort.Stable(byDistance{a})
}

// Best returns the top-ranked route and its distance: (nil, +Inf) while
// the archive is still empty.
//
// Complexity: O(1).
func (a *Archive) Best() (Route, float64) {
	return a.routes[0], a.dists[0]
}

// Min returns the smallest distance held (equals Best's distance; kept
// separate because the convergence history reads it by name).
func (a *Archive) Min() float64 { return a.dists[0] }

// Mean returns the arithmetic mean over all slots. Padding slots count
// as +Inf, so Mean is +Inf until every slot holds a finite route.
//
// Complexity: O(capacity).
func (a *Archive) Mean() float64 {
	var sum float64
	for _, d := range a.dists {
		sum += d
	}

	return sum / float64(len(a.dists))
}

// Distances returns a copy of the current distance column, best first.
func (a *Archive) Distances() []float64 {
	out := make([]float64, len(a.dists))
	copy(out, a.dists)

	return out
}

// Routes returns a copy of the current route column, best first. The
// routes themselves are shared, not deep-copied.
func (a *Archive) Routes() []Route {
	out := make([]Route, len(a.routes))
	copy(out, a.routes)

	return out
}

// byDistance sorts both archive columns together, ascending by distance.
type byDistance struct{ a *Archive }

func (s byDistance) Len() int           { return len(s.a.dists) }
func (s byDistance) Less(i, j int) bool { return s.a.dists[i] < s.a.dists[j] }
func (s byDistance) Swap(i, j int) {
	s.a.dists[i], s.a.dists[j] = s.a.dists[j], s.a.dists[i]
	s.a.routes[i], s.a.routes[j] = s.a.routes[j], s.a.routes[i]
}
