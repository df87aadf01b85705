package main

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

// makeRandomInts 값이 [1, n]인 난수 배열 (카운팅 정렬 전제 만족)
func makeRandomInts(rng *rand.Rand, n int) []int {
	ints := make([]int, n)
	for i := range ints {
		ints[i] = rng.Intn(n) + 1
	}
	return ints
}

func sortedCopy(in []int, dir Direction) []int {
	want := slices.Clone(in)
	slices.Sort(want)
	if dir == Descending {
		slices.Reverse(want)
	}
	return want
}

func isOrdered(arr []int, dir Direction) bool {
	before := dir.before()
	for i := 0; i+1 < len(arr); i++ {
		if before(arr[i+1], arr[i]) {
			return false
		}
	}
	return true
}

func TestSortPermutationAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := []int{0, 1, 2, 3, 16, 257, 1000}

	for _, algo := range allAlgorithms {
		for _, dir := range algo.Directions() {
			for _, n := range sizes {
				for _, dist := range allDistributions {
					in := make([]int, n)
					fillArray(in, dist, rng)
					got := slices.Clone(in)

					if err := algo.Sort(got, dir); err != nil {
						t.Fatalf("%s %s n=%d %s: %v", algo, dir, n, dist, err)
					}
					if !isOrdered(got, dir) {
						t.Errorf("%s %s n=%d %s: not ordered", algo, dir, n, dist)
					}
					if diff := cmp.Diff(sortedCopy(in, dir), got); diff != "" {
						t.Errorf("%s %s n=%d %s: not a permutation of input (-want +got):\n%s", algo, dir, n, dist, diff)
					}
				}
			}
		}
	}
}

func TestSortManyDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := make([]int, 500)
	for i := range in {
		in[i] = rng.Intn(4) + 1
	}

	for _, algo := range allAlgorithms {
		for _, dir := range algo.Directions() {
			got := slices.Clone(in)
			if err := algo.Sort(got, dir); err != nil {
				t.Fatalf("%s %s: %v", algo, dir, err)
			}
			if diff := cmp.Diff(sortedCopy(in, dir), got); diff != "" {
				t.Errorf("%s %s (-want +got):\n%s", algo, dir, diff)
			}
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, algo := range allAlgorithms {
		for _, dir := range algo.Directions() {
			arr := makeRandomInts(rng, 300)
			if err := algo.Sort(arr, dir); err != nil {
				t.Fatalf("%s %s: %v", algo, dir, err)
			}
			once := slices.Clone(arr)
			if err := algo.Sort(arr, dir); err != nil {
				t.Fatalf("%s %s: %v", algo, dir, err)
			}
			if diff := cmp.Diff(once, arr); diff != "" {
				t.Errorf("%s %s: sorting sorted input changed it (-once +twice):\n%s", algo, dir, diff)
			}
		}
	}
}

func TestSortSmallExample(t *testing.T) {
	for _, algo := range allAlgorithms {
		arr := []int{5, 3, 3, 1, 4}
		if err := algo.Sort(arr, Ascending); err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if diff := cmp.Diff([]int{1, 3, 3, 4, 5}, arr); diff != "" {
			t.Errorf("%s ASC (-want +got):\n%s", algo, diff)
		}

		if !slices.Contains(algo.Directions(), Descending) {
			continue
		}
		arr = []int{5, 3, 3, 1, 4}
		if err := algo.Sort(arr, Descending); err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if diff := cmp.Diff([]int{5, 4, 3, 3, 1}, arr); diff != "" {
			t.Errorf("%s DESC (-want +got):\n%s", algo, diff)
		}
	}
}

func TestCountingSortDescendingUnsupported(t *testing.T) {
	arr := []int{2, 1}
	err := CountingSort.Sort(arr, Descending)
	if !errors.Is(err, ErrUnsupportedDirection) {
		t.Fatalf("got %v, want ErrUnsupportedDirection", err)
	}
	if diff := cmp.Diff([]int{2, 1}, arr); diff != "" {
		t.Errorf("array modified (-want +got):\n%s", diff)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"SelectionSort", SelectionSort},
		{"insertion", InsertionSort},
		{" mergesort ", MergeSort},
		{"QUICK", QuickSort},
		{"heap", HeapSort},
		{"counting", CountingSort},
	}
	for _, tt := range tests {
		got, err := parseAlgorithm(tt.in)
		if err != nil {
			t.Errorf("parseAlgorithm(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseAlgorithm(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := parseAlgorithm("bogo"); err == nil {
		t.Error("parseAlgorithm(bogo) succeeded")
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"asc": Ascending, "Descending": Descending, "DESC": Descending} {
		got, err := parseDirection(in)
		if err != nil || got != want {
			t.Errorf("parseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseDirection("sideways"); err == nil {
		t.Error("parseDirection(sideways) succeeded")
	}
}
