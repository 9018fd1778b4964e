package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"sortlab/bloomfilter"
)

// DefaultSeedBase 무작위 입력 시드 기준값 (실제 시드는 seedBase + n)
const DefaultSeedBase int64 = 123456789

// MaxDuplicateRatio 생성 데이터셋의 중복 허용 상한
const MaxDuplicateRatio = 0.01

var (
	ErrUnknownOrder      = errors.New("unknown input order")
	ErrTooManyDuplicates = errors.New("dataset exceeds duplicate limit")
	ErrNonPositiveSize   = errors.New("dataset size must be positive")
)

// Order 입력 데이터 정렬 상태
type Order int

const (
	Asc Order = iota
	Desc
	Rand
)

var orderNames = [...]string{Asc: "asc", Desc: "desc", Rand: "rand"}

// Orders 전체 입력 순서
func Orders() []Order {
	return []Order{Asc, Desc, Rand}
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "unknown"
	}
	return orderNames[o]
}

func ParseOrder(name string) (Order, error) {
	for _, o := range Orders() {
		if orderNames[o] == name {
			return o, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOrder, "%q", name)
}

// Label 출력 파일에 쓰이는 "{n}_{order}" 라벨
func Label(n int, o Order) string {
	return fmt.Sprintf("%d_%s", n, o)
}

// FileName 입력 파일 이름 "{n}_{order}.txt"
func FileName(n int, o Order) string {
	return Label(n, o) + ".txt"
}

// Generate 1..n 값으로 오름차순/내림차순/셔플 데이터 생성 (중복 없음)
func Generate(n int, o Order, seedBase int64) ([]int, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrNonPositiveSize, "%d", n)
	}
	data := make([]int, n)
	switch o {
	case Asc:
		for i := range data {
			data[i] = i + 1
		}
	case Desc:
		for i := range data {
			data[i] = n - i
		}
	case Rand:
		for i := range data {
			data[i] = i + 1
		}
		Shuffle(data, NewLCG(seedBase+int64(n)))
	default:
		return nil, errors.Wrapf(ErrUnknownOrder, "%d", int(o))
	}
	return data, nil
}

// GenerateAll 모든 크기/순서 조합의 입력 파일을 dir 에 쓰고 경로 목록을 반환
func GenerateAll(dir string, sizes []int, orders []Order, seedBase int64) ([]string, error) {
	paths := make([]string, 0, len(sizes)*len(orders))
	for _, n := range sizes {
		for _, o := range orders {
			data, err := Generate(n, o, seedBase)
			if err != nil {
				return paths, err
			}
			if ratio := bloomfilter.DuplicateRatio(data); ratio > MaxDuplicateRatio {
				return paths, errors.Wrapf(ErrTooManyDuplicates, "%s: %.4f", Label(n, o), ratio)
			}

			path := filepath.Join(dir, FileName(n, o))
			if err := WriteInts(path, data); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}
