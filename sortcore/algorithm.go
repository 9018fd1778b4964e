package sortcore

import (
	"github.com/cockroachdb/errors"
)

// ErrUnknownAlgorithm 알고리즘 표에 없는 이름
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// NaturalMergeName 연결 리스트 자연 병합 정렬의 표시 이름
const NaturalMergeName = "nat_merge_linked"

// Algorithm 드라이버가 호출하는 다섯 가지 정렬 진입점 중 하나
type Algorithm struct {
	Name    string
	variant Variant
	linked  bool
}

// Result 한 번의 실행 결과
type Result struct {
	Sorted   []int
	Counters Counters
}

var algorithms = []Algorithm{
	{Name: "qsort_first_stop12", variant: FirstStop12},
	{Name: "qsort_first_ins100", variant: FirstIns100},
	{Name: "qsort_first_ins50", variant: FirstIns50},
	{Name: "qsort_median3_stop12", variant: Median3Stop12},
	{Name: NaturalMergeName, linked: true},
}

// Algorithms 전체 알고리즘 표 (복사본)
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// LookupAlgorithm 이름으로 알고리즘 찾기
func LookupAlgorithm(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Linked 연결 리스트 기반 여부
func (a Algorithm) Linked() bool {
	return a.linked
}

// Run input 은 건드리지 않고 새 카운터로 정렬한 뒤 결과를 검증.
// 검증에 실패해도 Result 는 채워서 돌려준다 (에러는 ErrNotSorted 로 표시).
func (a Algorithm) Run(input []int) (Result, error) {
	var res Result
	if a.linked {
		head := FromSlice(input)
		head = NaturalMergeSort(head, &res.Counters)
		res.Sorted = ToSlice(head)
	} else {
		res.Sorted = make([]int, len(input))
		copy(res.Sorted, input)
		if err := Quicksort(res.Sorted, a.variant, &res.Counters); err != nil {
			return res, err
		}
	}

	if err := Verify(res.Sorted); err != nil {
		return res, errors.Wrapf(err, "%s", a.Name)
	}
	return res, nil
}
