// Package ring provides a fixed-capacity circular window over the most recent items.
//
// The lexer uses it to detect multi-character terminators (such as "*/") without
// re-scanning consumed input; the ring tracer keeps its last N events in it.
package ring

// Window хранит последние Cap() вставленных элементов.
// Пока окно не заполнено, Insert дописывает в конец; после этого перезаписывает
// самый старый слот и сдвигает head по кругу.
type Window[T any] struct {
	items    []T
	capacity int
	head     int // следующая позиция записи
}

// New creates a window that remembers up to capacity items.
// Capacity <= 0 gives a degenerate window that never holds anything.
func New[T any](capacity int) *Window[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Window[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Insert records item as the newest element.
func (w *Window[T]) Insert(item T) {
	if w.capacity == 0 {
		return
	}
	if len(w.items) < w.capacity {
		w.items = append(w.items, item)
	} else {
		w.items[w.head] = item
	}
	w.head++
	if w.head == w.capacity {
		w.head = 0
	}
}

// Unroll returns the buffered items oldest first, regardless of where they sit physically.
func (w *Window[T]) Unroll() []T {
	out := make([]T, 0, len(w.items))
	if len(w.items) < w.capacity {
		// ещё не было переворота: head == len(items)
		return append(out, w.items...)
	}
	out = append(out, w.items[w.head:]...)
	return append(out, w.items[:w.head]...)
}

// At returns the i-th item in chronological order (0 is the oldest).
func (w *Window[T]) At(i int) T {
	if len(w.items) < w.capacity {
		return w.items[i]
	}
	return w.items[(w.head+i)%w.capacity]
}

// Len reports how many items are buffered.
func (w *Window[T]) Len() int { return len(w.items) }

// Cap reports the window capacity.
func (w *Window[T]) Cap() int { return w.capacity }

// Full reports whether Len() == Cap().
func (w *Window[T]) Full() bool { return len(w.items) == w.capacity }

// Reset drops all buffered items, keeping the capacity.
func (w *Window[T]) Reset() {
	clear(w.items)
	w.items = w.items[:0]
	w.head = 0
}

// Equal reports whether the window is full and holds exactly want, oldest first.
func Equal[T comparable](w *Window[T], want []T) bool {
	if w.capacity == 0 || len(want) != w.capacity || !w.Full() {
		return false
	}
	for i := range want {
		if w.At(i) != want[i] {
			return false
		}
	}
	return true
}
