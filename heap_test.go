package diverseseq

import "testing"

func TestBottomKHeapKeepsSmallest(t *testing.T) {
	h := newBottomKHeap(3)
	for _, v := range []uint64{5, 1, 9, 3, 7, 2, 8} {
		h.offer(v)
	}
	got := h.sorted()
	want := []uint64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("sorted() = %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("got[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestBottomKHeapIgnoresDuplicates(t *testing.T) {
	h := newBottomKHeap(5)
	for _, v := range []uint64{1, 2, 2, 2, 3} {
		h.offer(v)
	}
	got := h.sorted()
	if len(got) != 3 {
		t.Fatalf("sorted() = %v, want 3 unique entries", got)
	}
}

func TestBottomKHeapUnderCapacity(t *testing.T) {
	h := newBottomKHeap(10)
	h.offer(4)
	h.offer(1)
	got := h.sorted()
	want := []uint64{1, 4}
	if len(got) != len(want) {
		t.Fatalf("sorted() = %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("got[%d] = %d, want %d", i, got[i], w)
		}
	}
}
