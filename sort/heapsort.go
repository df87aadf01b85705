package main

// heapSort 힙정렬. 오름차순이면 최대 힙, 내림차순이면 최소 힙.
func heapSort(arr []int, before lessFunc) {
	n := len(arr)

	for k := n/2 - 1; k >= 0; k-- {
		downheap(arr, n, k, before)
	}

	for n > 1 {
		n--
		arr[0], arr[n] = arr[n], arr[0]
		downheap(arr, n, 0, before)
	}
}

// downheap arr[:heapSize]에서 root를 힙 순서가 맞을 때까지 아래로 내린다.
func downheap(arr []int, heapSize, root int, before lessFunc) {
	v := arr[root]
	k := root

	for {
		child := 2*k + 1
		if child >= heapSize {
			break
		}
		if child+1 < heapSize && before(arr[child], arr[child+1]) {
			child++
		}
		if !before(v, arr[child]) {
			break
		}
		arr[k] = arr[child]
		k = child
	}

	arr[k] = v
}
