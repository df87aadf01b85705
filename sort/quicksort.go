package main

// quickSort 구간의 마지막 원소를 피벗으로 쓰는 호어식 퀵소트.
// 이미 정렬된 입력에서는 O(N^2), 재귀 깊이 N.
func quickSort(arr []int, before lessFunc) {
	quickSortRange(arr, 0, len(arr)-1, before)
}

func quickSortRange(arr []int, l, r int, before lessFunc) {
	if r <= l {
		return
	}

	pivot := arr[r]
	i, j := l-1, r

	for {
		// 왼쪽 스캔은 피벗 자신(arr[r])에서 반드시 멈춘다
		i++
		for before(arr[i], pivot) {
			i++
		}

		// 오른쪽 스캔은 구간 시작에서 멈춘다
		j--
		for j > l && before(pivot, arr[j]) {
			j--
		}

		if i >= j {
			break
		}
		arr[i], arr[j] = arr[j], arr[i]
	}

	// 교차 지점에 피벗 배치
	arr[i], arr[r] = arr[r], arr[i]

	quickSortRange(arr, l, i-1, before)
	quickSortRange(arr, i+1, r, before)
}
