package component

// Point is an integer pixel position
type Point struct {
	X, Y int
}

// Trail is a bounded FIFO of recent positions backed by a ring buffer
// Iteration order is oldest-first; pushing past capacity evicts the oldest entry
type Trail struct {
	points []Point
	head   int // index of the oldest entry
	count  int
}

// NewTrail creates an empty trail holding at most capacity points
func NewTrail(capacity int) *Trail {
	if capacity < 0 {
		capacity = 0
	}
	return &Trail{points: make([]Point, capacity)}
}

// Push appends p as the newest entry
func (t *Trail) Push(p Point) {
	capacity := len(t.points)
	if capacity == 0 {
		return
	}
	if t.count < capacity {
		t.points[(t.head+t.count)%capacity] = p
		t.count++
		return
	}
	// Full: overwrite oldest, advance head
	t.points[t.head] = p
	t.head = (t.head + 1) % capacity
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the maximum number of stored points
func (t *Trail) Cap() int {
	return len(t.points)
}

// At returns the i-th point, 0 being the oldest
func (t *Trail) At(i int) Point {
	return t.points[(t.head+i)%len(t.points)]
}

// Points returns a copy of the stored points, oldest-first
func (t *Trail) Points() []Point {
	out := make([]Point, t.count)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
