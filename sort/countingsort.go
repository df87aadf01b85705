package main

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrKeyOutOfRange 카운팅 정렬 키가 [1, N] 밖에 있음
	ErrKeyOutOfRange = errors.New("key out of range")
	// ErrUnsupportedDirection 알고리즘이 해당 정렬 방향을 지원하지 않음
	ErrUnsupportedDirection = errors.New("unsupported sort direction")
)

// countingSort 분포 계수 정렬. 모든 값이 [1, len(arr)] 안에 있어야 한다.
// 범위를 벗어난 값이 있으면 배열을 건드리지 않고 ErrKeyOutOfRange를 반환.
func countingSort(arr []int) error {
	return countingSortFunc[int](arr, func(v int) int { return v })
}

// countingSortFunc key(e)는 [1, len(arr)] 범위여야 한다. 안정 정렬.
func countingSortFunc[E any](arr []E, key func(E) int) error {
	n := len(arr)
	for i, e := range arr {
		if k := key(e); k < 1 || k > n {
			return errors.Wrapf(ErrKeyOutOfRange, "arr[%d] = %d, want [1, %d]", i, k, n)
		}
	}

	// count[k-1] = 키 k의 빈도 -> 누적합 후 "k 이하인 원소 수"
	count := make([]int, n)
	for _, e := range arr {
		count[key(e)-1]++
	}
	for k := 1; k < n; k++ {
		count[k] += count[k-1]
	}

	// 뒤에서부터 배치해야 같은 키의 입력 순서가 유지된다
	scratch := make([]E, n)
	for i := n - 1; i >= 0; i-- {
		k := key(arr[i]) - 1
		count[k]--
		scratch[count[k]] = arr[i]
	}

	copy(arr, scratch)
	return nil
}
