package sonar

import "fmt"

// Tracker counts window increases one reading at a time. Memory is bounded
// by the window size regardless of how many readings are observed.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	size      int
	ring      []int // last size readings; ring[next] is the oldest once full
	next      int
	seen      int
	increases int
}

// NewTracker returns a Tracker for windows of size readings. NewTracker(1)
// answers part 1 and NewTracker(3) answers part 2. It panics if size < 1.
func NewTracker(size int) *Tracker {
	if size < 1 {
		panic(fmt.Sprintf("sonar: window size %d must be positive", size))
	}
	return &Tracker{size: size, ring: make([]int, size)}
}

// Observe feeds the next reading.
func (t *Tracker) Observe(v int) {
	if t.seen >= t.size && v > t.ring[t.next] {
		t.increases++
	}
	t.ring[t.next] = v
	t.next = (t.next + 1) % t.size
	t.seen++
}

// Increases returns the count so far.
func (t *Tracker) Increases() int { return t.increases }

// Seen returns how many readings have been observed.
func (t *Tracker) Seen() int { return t.seen }
