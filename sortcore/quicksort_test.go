package sortcore

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomData(seed int64, size, limit int) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, size)
	for i := range data {
		data[i] = r.Intn(limit) - limit/2
	}
	return data
}

func sortedCopy(arr []int) []int {
	out := append([]int(nil), arr...)
	sort.Ints(out)
	return out
}

func TestQuicksortScenarios(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		input   []int
		want    []int
	}{
		{"three first_stop12", FirstStop12, []int{3, 1, 2}, []int{1, 2, 3}},
		{"reverse median3", Median3Stop12, []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"duplicates first_stop12", FirstStop12, []int{2, 2, 2}, []int{2, 2, 2}},
		{"duplicates first_ins100", FirstIns100, []int{2, 2, 2}, []int{2, 2, 2}},
		{"duplicates first_ins50", FirstIns50, []int{2, 2, 2}, []int{2, 2, 2}},
		{"duplicates median3", Median3Stop12, []int{2, 2, 2}, []int{2, 2, 2}},
		{"negatives", Median3Stop12, []int{0, -3, 7, -3, 1}, []int{-3, -3, 0, 1, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Counters
			require.NoError(t, Quicksort(tt.input, tt.variant, &c))
			assert.Equal(t, tt.want, tt.input)
		})
	}
}

func TestQuicksortSmallInputsCountNothing(t *testing.T) {
	for _, v := range Variants() {
		for _, input := range [][]int{nil, {}, {7}} {
			var c Counters
			require.NoError(t, Quicksort(input, v, &c))
			assert.Zero(t, c.Comparisons, v.String())
			assert.Zero(t, c.Exchanges, v.String())
		}
	}
}

func TestQuicksortFirstStop12Counts(t *testing.T) {
	// 한 번 분할 후 [2,1] 은 직접 처리, [3] 은 버려진다
	arr := []int{3, 1, 2}
	var c Counters
	require.NoError(t, Quicksort(arr, FirstStop12, &c))
	require.Equal(t, []int{1, 2, 3}, arr)
	assert.Equal(t, Counters{Comparisons: 6, Exchanges: 2}, c)

	dup := []int{2, 2, 2}
	c = Counters{}
	require.NoError(t, Quicksort(dup, FirstStop12, &c))
	assert.Equal(t, Counters{Comparisons: 5, Exchanges: 1}, c)
}

func TestQuicksortRandomAgainstStdlib(t *testing.T) {
	for _, size := range []int{2, 3, 10, 49, 50, 51, 100, 101, 1000, 5000} {
		input := randomData(int64(size), size, 200)
		want := sortedCopy(input)
		for _, v := range Variants() {
			arr := append([]int(nil), input...)
			var c Counters
			require.NoError(t, Quicksort(arr, v, &c))
			require.Equal(t, want, arr, "size=%d variant=%s", size, v)
		}
	}
}

func TestQuicksortOrderedInputs(t *testing.T) {
	const n = 2000
	asc := make([]int, n)
	desc := make([]int, n)
	for i := 0; i < n; i++ {
		asc[i] = i + 1
		desc[i] = n - i
	}
	for _, v := range Variants() {
		a := append([]int(nil), asc...)
		d := append([]int(nil), desc...)
		var c Counters
		require.NoError(t, Quicksort(a, v, &c))
		require.NoError(t, Quicksort(d, v, &c))
		require.Equal(t, asc, a)
		require.Equal(t, asc, d)
	}
}

func TestQuicksortIdempotentAndDeterministic(t *testing.T) {
	input := randomData(7, 3000, 1000)
	for _, v := range Variants() {
		first := append([]int(nil), input...)
		var c1 Counters
		require.NoError(t, Quicksort(first, v, &c1))

		again := append([]int(nil), first...)
		var c2 Counters
		require.NoError(t, Quicksort(again, v, &c2))
		assert.Equal(t, first, again)

		repeat := append([]int(nil), input...)
		var c3 Counters
		require.NoError(t, Quicksort(repeat, v, &c3))
		assert.Equal(t, c1, c3, v.String())
	}
}

func TestQuicksortAllEqualTerminates(t *testing.T) {
	arr := make([]int, 500)
	for i := range arr {
		arr[i] = 42
	}
	for _, v := range Variants() {
		var c Counters
		require.NoError(t, Quicksort(arr, v, &c))
		assert.True(t, IsSorted(arr))
	}
}

func TestMedianOfThreeCountsFinalSwap(t *testing.T) {
	// 이미 정렬된 세 값이어도 중앙값 이동은 교환으로 센다
	arr := []int{1, 2, 3}
	var c Counters
	pivot := medianOfThree(arr, 0, 2, &c)
	assert.Equal(t, 2, pivot)
	assert.Equal(t, []int{2, 1, 3}, arr)
	assert.Equal(t, Counters{Comparisons: 3, Exchanges: 1}, c)
}

func TestHoarePartitionCoversRange(t *testing.T) {
	arr := []int{9, 4, 7, 1, 8, 2, 6}
	var c Counters
	split := hoarePartition(arr, 0, len(arr)-1, arr[0], &c)
	require.GreaterOrEqual(t, split, 0)
	require.Less(t, split, len(arr)-1)
	for i := 0; i <= split; i++ {
		for j := split + 1; j < len(arr); j++ {
			assert.LessOrEqual(t, arr[i], arr[j])
		}
	}
}

func TestVariantNames(t *testing.T) {
	for _, name := range []string{"first_stop12", "first_ins100", "first_ins50", "median3_stop12"} {
		v, err := ParseVariant(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.String())
	}

	_, err := ParseVariant("median5")
	require.True(t, errors.Is(err, ErrUnknownVariant))

	err = Quicksort([]int{2, 1}, Variant(9), &Counters{})
	require.True(t, errors.Is(err, ErrUnknownVariant))
	assert.Equal(t, "unknown", Variant(-1).String())
}
