package bloomfilter

// dupFPR 중복 추정용 오탐률. 1% 중복 제한보다 충분히 작아야 한다.
const dupFPR = 0.0001

// EstimateDuplicates 삽입 시점에 이미 있다고 판정된 값의 개수.
// 오탐만 있고 미탐은 없으므로 실제 중복 개수의 상한이다.
func EstimateDuplicates(values []int) int {
	if len(values) < 2 {
		return 0
	}
	bf := New(uint64(len(values)), dupFPR)
	dups := 0
	for _, v := range values {
		if bf.ContainsInt(v) {
			dups++
			continue
		}
		bf.AddInt(v)
	}
	return dups
}

// DuplicateRatio 추정 중복 비율 (0..1)
func DuplicateRatio(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(EstimateDuplicates(values)) / float64(len(values))
}
