package main

// selectionSort 남은 구간에서 극값을 찾아 맨 앞과 교환. 안정 정렬 아님.
func selectionSort(arr []int, before lessFunc) {
	for insertIdx := 0; insertIdx < len(arr); insertIdx++ {
		extIdx := insertIdx
		for i := insertIdx + 1; i < len(arr); i++ {
			if before(arr[i], arr[extIdx]) {
				extIdx = i
			}
		}
		arr[insertIdx], arr[extIdx] = arr[extIdx], arr[insertIdx]
	}
}
