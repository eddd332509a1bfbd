package runner

// History is the bounded, ordered list of recent obstacles.
// When a push exceeds the limit the oldest obstacle is evicted.
type History struct {
	items []Obstacle
	limit int
}

// NewHistory creates an empty history holding at most limit obstacles.
func NewHistory(limit int) History {
	if limit < 1 {
		limit = 1
	}
	return History{
		items: make([]Obstacle, 0, limit),
		limit: limit,
	}
}

// Push appends an obstacle and reports whether the oldest one was evicted.
func (h *History) Push(o Obstacle) bool {
	if h.limit < 1 {
		h.limit = 1
	}
	evicted := false
	if len(h.items) >= h.limit {
		copy(h.items, h.items[1:])
		h.items = h.items[:len(h.items)-1]
		evicted = true
	}
	h.items = append(h.items, o)
	return evicted
}

// Len returns the number of obstacles held.
func (h History) Len() int {
	return len(h.items)
}

// Limit returns the maximum number of obstacles held.
func (h History) Limit() int {
	return h.limit
}

// At returns the i-th obstacle, oldest first.
func (h History) At(i int) Obstacle {
	return h.items[i]
}

// All returns the obstacles oldest first. The slice must not be modified.
func (h History) All() []Obstacle {
	return h.items
}

// Clear removes every obstacle.
func (h *History) Clear() {
	h.items = h.items[:0]
}

// Clone returns an independent copy.
func (h History) Clone() History {
	items := make([]Obstacle, len(h.items), h.limit)
	copy(items, h.items)
	return History{items: items, limit: h.limit}
}
