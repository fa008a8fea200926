package raytracer

// Intersection records a ray parameter t and the dense index of the shape
// that produced it. Only the shape owning that index emits it.
type Intersection struct {
	T        float32
	ShapeIdx int
}

// Intersections is a bounded, t-ascending list of Intersection, capped at
// MAX_HITS. Overflow policy (spec.md §4.3): once full, inserting a new
// entry with a larger t than the current largest is a no-op; inserting one
// that sorts before the current largest evicts the largest.
type Intersections struct {
	hits  [MAX_HITS]Intersection
	count int
	isHit bool
}

// Count returns the number of recorded intersections.
func (xs *Intersections) Count() int { return xs.count }

// At returns the i'th intersection in ascending-t order.
func (xs *Intersections) At(i int) Intersection { return xs.hits[i] }

// IsEmpty reports whether the list holds no intersections.
func (xs *Intersections) IsEmpty() bool { return xs.count == 0 }

// IsHit reports whether any inserted intersection had t >= 0.
func (xs *Intersections) IsHit() bool { return xs.isHit }

// Clear resets the list for reuse on the next ray.
func (xs *Intersections) Clear() {
	xs.count = 0
	xs.isHit = false
}

// Add inserts (t, shapeIdx) in ascending-t order, shifting larger entries
// to the right. If the list is already at MAX_HITS capacity, the largest-t
// entry (including the new one, if it is the largest) is dropped.
func (xs *Intersections) Add(t float32, shapeIdx int) {
	if t >= 0 {
		xs.isHit = true
	}

	insertAt := xs.count
	for insertAt > 0 && xs.hits[insertAt-1].T > t {
		insertAt--
	}
	if insertAt >= MAX_HITS {
		// Would be the new largest and there's no room for it.
		return
	}

	last := xs.count
	if last >= MAX_HITS {
		last = MAX_HITS - 1
	} else {
		xs.count++
	}
	for i := last; i > insertAt; i-- {
		xs.hits[i] = xs.hits[i-1]
	}
	xs.hits[insertAt] = Intersection{T: t, ShapeIdx: shapeIdx}
}

// IndexOf returns the position of the first recorded intersection with the
// given shape index, or -1 if none.
func (xs *Intersections) IndexOf(shapeIdx int) int {
	for i := range xs.count {
		if xs.hits[i].ShapeIdx == shapeIdx {
			return i
		}
	}
	return -1
}

// Remove deletes the entry at position i, shifting later entries left.
func (xs *Intersections) Remove(i int) {
	if i < 0 || i >= xs.count {
		return
	}
	for j := i; j < xs.count-1; j++ {
		xs.hits[j] = xs.hits[j+1]
	}
	xs.count--
}

// Last returns the intersection with the largest t, or the zero value if
// the list is empty. Used (verbatim, per spec.md §4.6/§9) by the
// refractive-index stack walk, which reads the shape at the top of the
// whole intersection list rather than the top of its own container stack.
func (xs *Intersections) Last() Intersection {
	if xs.count == 0 {
		return Intersection{}
	}
	return xs.hits[xs.count-1]
}

// GetHit returns the first intersection with t >= 0 (the smallest
// non-negative t, since the list is t-ascending) and true, or the zero
// value and false if there is none.
func (xs *Intersections) GetHit() (Intersection, bool) {
	for i := range xs.count {
		if xs.hits[i].T >= 0 {
			return xs.hits[i], true
		}
	}
	return Intersection{}, false
}
