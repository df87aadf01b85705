package main

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Algorithm 벤치마크 대상 정렬 알고리즘
type Algorithm int

const (
	SelectionSort Algorithm = iota
	InsertionSort
	MergeSort
	QuickSort
	HeapSort
	CountingSort
)

// allAlgorithms 드라이버가 순회하는 순서
var allAlgorithms = []Algorithm{
	SelectionSort,
	InsertionSort,
	MergeSort,
	QuickSort,
	HeapSort,
	CountingSort,
}

var algoNames = map[Algorithm]string{
	SelectionSort: "SelectionSort",
	InsertionSort: "InsertionSort",
	MergeSort:     "MergeSort",
	QuickSort:     "QuickSort",
	HeapSort:      "HeapSort",
	CountingSort:  "CountingSort",
}

func (a Algorithm) String() string {
	if name, ok := algoNames[a]; ok {
		return name
	}
	return "UnknownSort"
}

// Directions 지원하는 정렬 방향. 카운팅 정렬은 오름차순만 가능.
func (a Algorithm) Directions() []Direction {
	if a == CountingSort {
		return []Direction{Ascending}
	}
	return allDirections
}

// Sort arr를 dir 방향으로 제자리 정렬
func (a Algorithm) Sort(arr []int, dir Direction) error {
	before := dir.before()

	switch a {
	case SelectionSort:
		selectionSort(arr, before)
	case InsertionSort:
		insertionSort(arr, before)
	case MergeSort:
		mergeSort(arr, before)
	case QuickSort:
		quickSort(arr, before)
	case HeapSort:
		heapSort(arr, before)
	case CountingSort:
		if dir != Ascending {
			return errors.Wrapf(ErrUnsupportedDirection, "%s %s", a, dir)
		}
		return countingSort(arr)
	default:
		return errors.Newf("unknown algorithm %d", int(a))
	}
	return nil
}

func parseAlgorithm(name string) (Algorithm, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, algo := range allAlgorithms {
		full := strings.ToLower(algo.String())
		if want == full || want == strings.TrimSuffix(full, "sort") {
			return algo, nil
		}
	}
	return 0, errors.Newf("unknown algorithm %q", name)
}
