package chain

// window is a fixed-capacity ring buffer over state indices, sized
// order+1 at construction and never resized. Pushing overwrites the
// oldest entry, which makes the drop-oldest/append-newest contract of
// the advance operation O(1) and rules out unbounded growth.
type window struct {
	buf  []int // fixed capacity: order+1
	head int   // index of the oldest entry
}

// newWindow builds a full window of the given size where every entry
// is fill.
func newWindow(size, fill int) *window {
	w := &window{buf: make([]int, size)}
	w.reset(fill)

	return w
}

// push drops the oldest entry and appends v as the newest.
func (w *window) push(v int) {
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
}

// at returns the entry n steps before the newest one; at(0) is the
// newest entry. The caller guarantees 0 <= n < len(buf).
func (w *window) at(n int) int {
	size := len(w.buf)

	return w.buf[((w.head-1-n)%size+size)%size]
}

// latest writes the newest len(dst) entries into dst, oldest first,
// and returns dst. Used to assemble the sampling context.
func (w *window) latest(dst []int) []int {
	for i := range dst {
		dst[i] = w.at(len(dst) - 1 - i)
	}

	return dst
}

// reset refills every entry with fill, restoring the initial window.
func (w *window) reset(fill int) {
	for i := range w.buf {
		w.buf[i] = fill
	}
	w.head = 0
}
