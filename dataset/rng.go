package dataset

// LCG 재현 가능한 31비트 선형 합동 생성기
type LCG struct {
	state uint32
}

func NewLCG(seed int64) *LCG {
	return &LCG{state: uint32(seed & 0x7FFFFFFF)}
}

// Next 다음 31비트 값
func (g *LCG) Next() uint32 {
	g.state = (1103515245*g.state + 12345) & 0x7FFFFFFF
	return g.state
}

// RandInt [lo, hi] 구간 정수 (양끝 포함)
func (g *LCG) RandInt(lo, hi int) int {
	span := hi - lo + 1
	return lo + int(g.Next())%span
}

// Shuffle Fisher–Yates 제자리 셔플
func Shuffle(arr []int, g *LCG) {
	for i := len(arr) - 1; i > 0; i-- {
		j := g.RandInt(0, i)
		arr[i], arr[j] = arr[j], arr[i]
	}
}
