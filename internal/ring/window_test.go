package ring

import (
	"slices"
	"testing"
)

func TestWindowHeadWraps(t *testing.T) {
	w := New[int](3)
	wantHeads := []int{1, 2, 0, 1, 2, 0}
	for i, want := range wantHeads {
		w.Insert(i%3 + 1)
		if w.head != want {
			t.Fatalf("insert #%d: head = %d, want %d", i+1, w.head, want)
		}
	}
}

func TestWindowUnrollKeepsLastK(t *testing.T) {
	for k := 1; k <= 6; k++ {
		for n := k; n <= 3*k+2; n++ {
			w := New[int](k)
			for i := range n {
				w.Insert(i)
			}
			got := w.Unroll()
			want := make([]int, 0, k)
			for i := n - k; i < n; i++ {
				want = append(want, i)
			}
			if !slices.Equal(got, want) {
				t.Fatalf("k=%d n=%d: Unroll() = %v, want %v", k, n, got, want)
			}
		}
	}
}

func TestWindowPartiallyFilled(t *testing.T) {
	w := New[rune](4)
	w.Insert('a')
	w.Insert('b')
	if got := string(w.Unroll()); got != "ab" {
		t.Fatalf("Unroll() = %q, want %q", got, "ab")
	}
	if w.Full() {
		t.Fatalf("window with 2 of 4 items reported full")
	}
	if w.At(1) != 'b' {
		t.Fatalf("At(1) = %q, want 'b'", w.At(1))
	}
}

func TestWindowZeroCapacity(t *testing.T) {
	w := New[int](0)
	w.Insert(1)
	w.Insert(2)
	if got := w.Unroll(); len(got) != 0 {
		t.Fatalf("Unroll() on zero-capacity window = %v, want empty", got)
	}
	if Equal(w, nil) {
		t.Fatalf("zero-capacity window must never match")
	}
	neg := New[int](-5)
	if neg.Cap() != 0 {
		t.Fatalf("negative capacity must clamp to 0, got %d", neg.Cap())
	}
}

func TestEqualTerminator(t *testing.T) {
	term := []rune("*/")
	w := New[rune](len(term))
	for _, r := range " comment *" {
		w.Insert(r)
		if Equal(w, term) {
			t.Fatalf("matched terminator too early after %q", r)
		}
	}
	w.Insert('/')
	if !Equal(w, term) {
		t.Fatalf("expected terminator match, window = %q", string(w.Unroll()))
	}
}

func TestWindowReset(t *testing.T) {
	w := New[int](2)
	w.Insert(1)
	w.Insert(2)
	w.Insert(3)
	w.Reset()
	if w.Len() != 0 || w.head != 0 {
		t.Fatalf("Reset left len=%d head=%d", w.Len(), w.head)
	}
	w.Insert(7)
	if got := w.Unroll(); !slices.Equal(got, []int{7}) {
		t.Fatalf("Unroll() after reset = %v", got)
	}
}
