package sortcore

import (
	"github.com/cockroachdb/errors"
)

// ErrNotSorted 정렬 결과가 비내림차순이 아님 (알고리즘 결함 또는 호출측 오용)
var ErrNotSorted = errors.New("output is not non-decreasing")

// IsSorted 비내림차순 여부 선형 검사
func IsSorted(arr []int) bool {
	return firstDescent(arr) < 0
}

// Verify 정렬 후 검증. 실패하면 처음 깨진 위치를 담은 ErrNotSorted 를 반환.
func Verify(arr []int) error {
	if i := firstDescent(arr); i >= 0 {
		return errors.Wrapf(ErrNotSorted, "arr[%d]=%d > arr[%d]=%d", i-1, arr[i-1], i, arr[i])
	}
	return nil
}

func firstDescent(arr []int) int {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			return i
		}
	}
	return -1
}
