package sortcore

// InsertionSort arr[left..right] 구간 삽입정렬 (안정 정렬).
// 비교: 검사한 원소마다 1회 (이동을 멈추게 한 비교 포함)
// 교환: 시프트마다 1회 + key 최종 배치 1회
func InsertionSort(arr []int, left, right int, c *Counters) {
	for i := left + 1; i <= right; i++ {
		key := arr[i]
		j := i - 1

		for j >= left {
			c.Comparisons++
			if arr[j] <= key {
				break
			}
			arr[j+1] = arr[j]
			c.Exchanges++
			j--
		}
		arr[j+1] = key
		c.Exchanges++
	}
}
