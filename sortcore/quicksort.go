package sortcore

import (
	"github.com/cockroachdb/errors"
)

// ErrUnknownVariant 정의되지 않은 퀵소트 변형
var ErrUnknownVariant = errors.New("unknown quicksort variant")

// Variant 퀵소트 피벗/종료 정책
type Variant int

const (
	// FirstStop12 첫 원소 피벗, 크기 2 이하 구간은 직접 처리
	FirstStop12 Variant = iota
	// FirstIns100 첫 원소 피벗, 크기 100 이하 구간은 삽입정렬
	FirstIns100
	// FirstIns50 첫 원소 피벗, 크기 50 이하 구간은 삽입정렬
	FirstIns50
	// Median3Stop12 세 값의 중앙값 피벗, 크기 2 이하 구간은 직접 처리
	Median3Stop12
)

// policy 변형별 정책 레코드.
// cutoff 이하 크기의 구간은 분할하지 않고 finish 로 마무리한다.
type policy struct {
	name   string
	cutoff int
	finish func(arr []int, l, r int, c *Counters)
	pivot  func(arr []int, l, r int, c *Counters) int
}

var policies = [...]policy{
	FirstStop12:   {name: "first_stop12", cutoff: 2, finish: tinySort, pivot: firstPivot},
	FirstIns100:   {name: "first_ins100", cutoff: 100, finish: InsertionSort, pivot: firstPivot},
	FirstIns50:    {name: "first_ins50", cutoff: 50, finish: InsertionSort, pivot: firstPivot},
	Median3Stop12: {name: "median3_stop12", cutoff: 2, finish: tinySort, pivot: medianOfThree},
}

// Variants 정의된 모든 변형 (표 순서)
func Variants() []Variant {
	return []Variant{FirstStop12, FirstIns100, FirstIns50, Median3Stop12}
}

func (v Variant) valid() bool {
	return v >= 0 && int(v) < len(policies)
}

func (v Variant) String() string {
	if !v.valid() {
		return "unknown"
	}
	return policies[v].name
}

// ParseVariant 이름으로 변형 찾기
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if policies[v].name == name {
			return v, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownVariant, "%q", name)
}

// span 분할 대기중인 [l, r] 구간 (양끝 포함)
type span struct {
	l, r int
}

// Quicksort 재귀 없이 명시적 스택으로 arr 전체를 제자리 정렬.
func Quicksort(arr []int, v Variant, c *Counters) error {
	if !v.valid() {
		return errors.Wrapf(ErrUnknownVariant, "%d", int(v))
	}
	if len(arr) <= 1 {
		return nil
	}
	p := &policies[v]

	stack := []span{{0, len(arr) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		l, r := s.l, s.r
		if l >= r {
			continue
		}

		if r-l+1 <= p.cutoff {
			p.finish(arr, l, r, c)
			continue
		}

		// 피벗은 위치가 아니라 값으로 잡아둔다
		pivot := p.pivot(arr, l, r, c)
		split := hoarePartition(arr, l, r, pivot, c)

		// 오른쪽을 먼저 넣어 왼쪽부터 처리
		stack = append(stack, span{split + 1, r}, span{l, split})
	}
	return nil
}

// tinySort 크기 2 이하 구간: 비교 1회, 필요시 교환 1회
func tinySort(arr []int, l, r int, c *Counters) {
	if r-l <= 0 {
		return
	}
	c.Comparisons++
	if arr[l] > arr[r] {
		arr[l], arr[r] = arr[r], arr[l]
		c.Exchanges++
	}
}

func firstPivot(arr []int, l, _ int, _ *Counters) int {
	return arr[l]
}

// medianOfThree (l, m, r) 세 값을 정렬한 뒤 중앙값을 l 로 옮기고 그 값을 반환.
// 비교는 항상 3회, 마지막 l 위치로의 교환은 항상 센다.
func medianOfThree(arr []int, l, r int, c *Counters) int {
	m := (l + r) / 2

	c.Comparisons++
	if arr[m] < arr[l] {
		arr[m], arr[l] = arr[l], arr[m]
		c.Exchanges++
	}
	c.Comparisons++
	if arr[r] < arr[m] {
		arr[r], arr[m] = arr[m], arr[r]
		c.Exchanges++
	}
	c.Comparisons++
	if arr[m] < arr[l] {
		arr[m], arr[l] = arr[l], arr[m]
		c.Exchanges++
	}

	// 중앙값을 첫 번째 위치로
	arr[l], arr[m] = arr[m], arr[l]
	c.Exchanges++
	return arr[l]
}

// hoarePartition 주어진 피벗 값 기준 2-way Hoare 분할.
// 반환값 j 에 대해 [l..j], [j+1..r] 두 구간이 [l..r] 을 빠짐없이 덮는다.
func hoarePartition(arr []int, l, r, pivot int, c *Counters) int {
	i := l - 1
	j := r + 1
	for {
		for {
			i++
			c.Comparisons++
			if arr[i] >= pivot {
				break
			}
		}
		for {
			j--
			c.Comparisons++
			if arr[j] <= pivot {
				break
			}
		}
		if i >= j {
			return j
		}
		arr[i], arr[j] = arr[j], arr[i]
		c.Exchanges++
	}
}
