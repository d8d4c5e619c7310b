package diablo

import "github.com/hajimehoshi/ebiten/v2"

// RenderCommand is one queued draw at a ground-plane depth.
type RenderCommand struct {
	depth float64
	order int // submission order, breaks depth ties
	draw  func(*ebiten.Image)
}

// RenderQueue collects world drawables each frame and flushes them in depth
// order, so nearer entities occlude farther ones. Depth ties keep their
// submission order.
type RenderQueue struct {
	commands []RenderCommand
	sortBuf  []RenderCommand
}

// NewRenderQueue creates an empty render queue.
func NewRenderQueue() *RenderQueue {
	return &RenderQueue{}
}

// Add queues a draw at the given depth.
func (q *RenderQueue) Add(depth float64, draw func(*ebiten.Image)) {
	q.commands = append(q.commands, RenderCommand{
		depth: depth,
		order: len(q.commands),
		draw:  draw,
	})
}

// Len returns the number of queued commands.
func (q *RenderQueue) Len() int {
	return len(q.commands)
}

// Flush draws every queued command back to front and clears the queue.
// Command and scratch buffers are retained across frames.
func (q *RenderQueue) Flush(dst *ebiten.Image) {
	q.mergeSort()
	for i := range q.commands {
		q.commands[i].draw(dst)
	}
	q.commands = q.commands[:0]
}

// commandLessOrEqual reports whether a sorts at or before b.
// Using <= on order ensures stability.
func commandLessOrEqual(a, b RenderCommand) bool {
	if a.depth != b.depth {
		return a.depth < b.depth
	}
	return a.order <= b.order
}

// mergeSort sorts q.commands in-place using q.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches its
// high-water mark.
func (q *RenderQueue) mergeSort() {
	n := len(q.commands)
	if n <= 1 {
		return
	}
	if cap(q.sortBuf) < n {
		q.sortBuf = make([]RenderCommand, n)
	}
	q.sortBuf = q.sortBuf[:n]

	a := q.commands
	b := q.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(q.commands, q.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
