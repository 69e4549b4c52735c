package gesture

// PositionHistory is a fixed-capacity FIFO of scalar positions. Pushing onto
// a full history evicts the oldest value. The backing array never grows, so
// a push is O(1) and reading the window is O(capacity).
type PositionHistory struct {
	buf  []float64
	head int // index of the oldest value
	size int
}

// NewPositionHistory creates a history with the given capacity.
// Capacities below 1 are clamped to 1.
func NewPositionHistory(capacity int) *PositionHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &PositionHistory{buf: make([]float64, capacity)}
}

// Push appends a position, evicting the oldest when full.
func (h *PositionHistory) Push(x float64) {
	if h.size < len(h.buf) {
		h.buf[(h.head+h.size)%len(h.buf)] = x
		h.size++
		return
	}
	h.buf[h.head] = x
	h.head = (h.head + 1) % len(h.buf)
}

// Len returns the number of stored positions.
func (h *PositionHistory) Len() int {
	return h.size
}

// Cap returns the capacity of the history.
func (h *PositionHistory) Cap() int {
	return len(h.buf)
}

// First returns the oldest position. Returns 0 when empty.
func (h *PositionHistory) First() float64 {
	if h.size == 0 {
		return 0
	}
	return h.buf[h.head]
}

// Last returns the newest position. Returns 0 when empty.
func (h *PositionHistory) Last() float64 {
	if h.size == 0 {
		return 0
	}
	return h.buf[(h.head+h.size-1)%len(h.buf)]
}

// Values returns the stored positions oldest first. The returned slice is
// freshly allocated and safe for the caller to keep.
func (h *PositionHistory) Values() []float64 {
	out := make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.buf[(h.head+i)%len(h.buf)]
	}
	return out
}

// Clear discards all stored positions. Capacity is unchanged.
func (h *PositionHistory) Clear() {
	h.head = 0
	h.size = 0
}
