// Package window implements line windowing for the first/last output
// limits.
package window

import "sync"

// Ring is a fixed-capacity circular buffer of lines. Pushing past
// capacity evicts the oldest line, so after consuming a whole stream the
// buffer holds the last Cap lines.
type Ring struct {
	mu     sync.RWMutex
	buffer []string
	size   int
	head   int
	count  int
}

// NewRing creates a ring buffer holding at most size lines.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = 1
	}
	return &Ring{
		buffer: make([]string, size),
		size:   size,
	}
}

// Push appends a line, evicting the oldest when full.
func (r *Ring) Push(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffer[r.head] = line
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// Values returns the buffered lines in arrival order, oldest first.
func (r *Ring) Values() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, r.count)

	if r.count < r.size {
		// Not full yet, lines start at index 0
		copy(out, r.buffer[:r.count])
	} else {
		// Full, oldest line is at head
		copy(out, r.buffer[r.head:])
		copy(out[r.size-r.head:], r.buffer[:r.head])
	}

	return out
}

// Len returns the number of buffered lines.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Cap returns the buffer capacity.
func (r *Ring) Cap() int {
	return r.size
}
