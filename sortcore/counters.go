package sortcore

// Counters 한 번의 정렬 실행 동안 누적되는 비교/교환 횟수.
// 실행마다 새로 만들고 포인터로 전체 호출 경로에 넘긴다. 실행 도중 리셋하지 않는다.
type Counters struct {
	Comparisons int64 `json:"comparisons"`
	Exchanges   int64 `json:"exchanges"`
}

// Add 다른 카운터 값을 누적
func (c *Counters) Add(other Counters) {
	c.Comparisons += other.Comparisons
	c.Exchanges += other.Exchanges
}
