package main

// mergeSort 머지소트. 보조 버퍼 하나를 전체 재귀 트리에서 공유한다.
//
// 같은 값끼리의 순서는 보장하지 않는다: 한쪽이 먼저 소진되면 커서가
// 반대편 구간을 뒤에서부터 읽게 되어 동일 키의 상대 순서가 뒤바뀔 수 있다.
func mergeSort(arr []int, before lessFunc) {
	if len(arr) < 2 {
		return
	}
	scratch := make([]int, len(arr))
	mergeSortRange(arr, scratch, 0, len(arr)-1, before)
}

func mergeSortRange(arr, scratch []int, l, r int, before lessFunc) {
	if r <= l {
		return
	}

	m := (l + r) / 2
	mergeSortRange(arr, scratch, l, m, before)
	mergeSortRange(arr, scratch, m+1, r, before)

	// 왼쪽은 그대로, 오른쪽은 뒤집어서 복사 -> scratch[l..r]은 가운데가 극값인 바이토닉 수열
	copy(scratch[l:m+1], arr[l:m+1])
	for j := m + 1; j <= r; j++ {
		scratch[r+m+1-j] = arr[j]
	}

	// 양 끝에서 가운데로 모이는 커서 두 개로 병합. 동률이면 왼쪽 커서가 이긴다.
	i, j := l, r
	for k := l; k <= r; k++ {
		if before(scratch[j], scratch[i]) {
			arr[k] = scratch[j]
			j--
		} else {
			arr[k] = scratch[i]
			i++
		}
	}
}
