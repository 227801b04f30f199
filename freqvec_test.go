package diverseseq

import (
	"math"
	"testing"
)

func TestFreqVecAddSub(t *testing.T) {
	a := NewFreqVecFrom([]int64{1, 2, 3})
	b := NewFreqVecFrom([]int64{4, 5, 6})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := []int64{5, 7, 9}
	for i, w := range want {
		if sum.At(i) != w {
			t.Errorf("sum[%d] = %d, want %d", i, sum.At(i), w)
		}
	}

	diff, err := b.Sub(a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	want = []int64{3, 3, 3}
	for i, w := range want {
		if diff.At(i) != w {
			t.Errorf("diff[%d] = %d, want %d", i, diff.At(i), w)
		}
	}
}

func TestFreqVecLengthMismatch(t *testing.T) {
	a := NewFreqVec[int64](2)
	b := NewFreqVec[int64](3)
	if _, err := a.Add(b); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if _, err := a.Sub(b); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestFreqVecInPlace(t *testing.T) {
	a := NewFreqVecFrom([]int64{1, 1, 1})
	b := NewFreqVecFrom([]int64{1, 2, 3})

	if _, err := a.AddInPlace(b); err != nil {
		t.Fatalf("AddInPlace: %v", err)
	}
	want := []int64{2, 3, 4}
	for i, w := range want {
		if a.At(i) != w {
			t.Errorf("a[%d] = %d, want %d", i, a.At(i), w)
		}
	}

	if _, err := a.SubInPlace(b); err != nil {
		t.Fatalf("SubInPlace: %v", err)
	}
	want = []int64{1, 1, 1}
	for i, w := range want {
		if a.At(i) != w {
			t.Errorf("a[%d] = %d, want %d", i, a.At(i), w)
		}
	}
}

func TestFreqVecDivScalar(t *testing.T) {
	a := NewFreqVecFrom([]int64{2, 4, 6})
	freq := a.DivScalar(4)
	want := []float64{0.5, 1, 1.5}
	for i, w := range want {
		if freq.At(i) != w {
			t.Errorf("freq[%d] = %v, want %v", i, freq.At(i), w)
		}
	}
}

func TestFreqVecDivScalarByZero(t *testing.T) {
	a := NewFreqVecFrom([]int64{2, 4, 6})
	freq := a.DivScalar(0)
	for i := 0; i < freq.Len(); i++ {
		if freq.At(i) != 0 {
			t.Errorf("freq[%d] = %v, want 0", i, freq.At(i))
		}
	}
}

func TestFreqVecDiv(t *testing.T) {
	a := NewFreqVecFrom([]int64{2, 3, 9})
	b := NewFreqVecFrom([]int64{1, 3, 3})
	got, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	want := []float64{2, 1, 3}
	for i, w := range want {
		if got.At(i) != w {
			t.Errorf("got[%d] = %v, want %v", i, got.At(i), w)
		}
	}
}

func TestFreqVecDivByZeroVector(t *testing.T) {
	a := NewFreqVecFrom([]int64{2, 3, 9})
	zero := NewFreqVec[int64](3)
	got, err := a.Div(zero)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	for i := 0; i < got.Len(); i++ {
		if got.At(i) != 0 {
			t.Errorf("got[%d] = %v, want 0", i, got.At(i))
		}
	}
}

func TestFreqVecDivLengthMismatch(t *testing.T) {
	a := NewFreqVec[int64](2)
	b := NewFreqVec[int64](3)
	if _, err := a.Div(b); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestFreqVecAddSubScalar(t *testing.T) {
	a := NewFreqVecFrom([]int64{1, 2, 3})

	sum := a.AddScalar(10)
	want := []int64{11, 12, 13}
	for i, w := range want {
		if sum.At(i) != w {
			t.Errorf("sum[%d] = %d, want %d", i, sum.At(i), w)
		}
	}

	diff := a.SubScalar(1)
	want = []int64{0, 1, 2}
	for i, w := range want {
		if diff.At(i) != w {
			t.Errorf("diff[%d] = %d, want %d", i, diff.At(i), w)
		}
	}
}

func TestFreqVecFromMap(t *testing.T) {
	v := NewFreqVecFromMap(map[int]int64{2: 3, 3: 9}, 4)
	if v.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", v.Len())
	}
	want := []int64{0, 0, 3, 9}
	for i, w := range want {
		if v.At(i) != w {
			t.Errorf("v[%d] = %d, want %d", i, v.At(i), w)
		}
	}

	scaled := v.DivScalar(3)
	wantScaled := []float64{0, 0, 1, 3}
	for i, w := range wantScaled {
		if scaled.At(i) != w {
			t.Errorf("scaled[%d] = %v, want %v", i, scaled.At(i), w)
		}
	}
}

func TestFreqVecSum(t *testing.T) {
	a := NewFreqVecFrom([]int64{1, 2, 3, 4})
	if got := a.Sum(); got != 10 {
		t.Errorf("Sum() = %d, want 10", got)
	}
}

func TestFreqVecIterNonzero(t *testing.T) {
	a := NewFreqVecFrom([]float64{0, 1.5, 0, 2.5, 1e-13})
	var seen []int
	a.IterNonzero(func(i int, v float64) { seen = append(seen, i) })
	want := []int{1, 3}
	if len(seen) != len(want) {
		t.Fatalf("IterNonzero visited %v, want %v", seen, want)
	}
	for i, w := range want {
		if seen[i] != w {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], w)
		}
	}
}

func TestFreqVecEntropyUniform(t *testing.T) {
	v := NewFreqVecFrom([]float64{0.25, 0.25, 0.25, 0.25})
	got := v.Entropy()
	want := 2.0 // log2(4)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Entropy() = %v, want %v", got, want)
	}
}

func TestFreqVecEntropyDegenerate(t *testing.T) {
	v := NewFreqVecFrom([]float64{1, 0, 0, 0})
	if got := v.Entropy(); math.Abs(got) > 1e-9 {
		t.Errorf("Entropy() = %v, want 0", got)
	}
}

func TestFreqVecClone(t *testing.T) {
	a := NewFreqVecFrom([]int64{1, 2, 3})
	b := a.Clone()
	b.Set(0, 99)
	if a.At(0) == 99 {
		t.Fatal("Clone shares backing storage with the original")
	}
}
