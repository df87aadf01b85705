package main

// insertionSort 삽입정렬 (안정 정렬)
func insertionSort(arr []int, before lessFunc) {
	insertionSortFunc[int](arr, before)
}

// insertionSortFunc 원소를 왼쪽으로 이동시킨 횟수를 반환한다.
// 이미 정렬된 입력이면 0.
func insertionSortFunc[E any](arr []E, before func(a, b E) bool) (shifts int) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i

		// 같은 값은 넘어가지 않으므로 안정성 유지
		for j > 0 && before(key, arr[j-1]) {
			arr[j] = arr[j-1]
			j--
			shifts++
		}
		arr[j] = key
	}
	return shifts
}
