package kvdb

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storeBackends = []string{BackendBbolt, BackendBadger, BackendPebble}

func testRecord(alg, input string, cmp int64) Record {
	return Record{
		Algorithm:   alg,
		Input:       input,
		Size:        50,
		Order:       "rand",
		Comparisons: cmp,
		Exchanges:   cmp / 2,
		Sorted:      true,
		DurationNS:  int64(time.Millisecond),
		AllocBytes:  4096,
		RecordedAt:  time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestStoreBackends(t *testing.T) {
	for _, backend := range storeBackends {
		t.Run(backend, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), backend)
			s, err := Open(backend, dir)
			require.NoError(t, err)

			a := testRecord("qsort_first_stop12", "50_rand", 300)
			b := testRecord("nat_merge_linked", "50_rand", 200)
			require.NoError(t, s.Put(a))
			require.NoError(t, s.Put(b))

			got, err := s.Get(a.Key())
			require.NoError(t, err)
			assert.Equal(t, a, got)

			_, err = s.Get("qsort_first_ins50/50_asc")
			assert.True(t, errors.Is(err, ErrNotFound))

			// 같은 키는 덮어쓴다
			a.Comparisons = 301
			require.NoError(t, s.Put(a))

			all, err := s.List()
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, b, all[0])
			assert.Equal(t, a, all[1])
			require.NoError(t, s.Close())

			// 다시 열어도 기록이 남아 있다
			s, err = Open(backend, dir)
			require.NoError(t, err)
			defer s.Close()
			got, err = s.Get(a.Key())
			require.NoError(t, err)
			assert.Equal(t, int64(301), got.Comparisons)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("leveldb", t.TempDir())
	assert.True(t, errors.Is(err, ErrUnknownBackend))
	_, err = Open(BackendNone, t.TempDir())
	assert.True(t, errors.Is(err, ErrUnknownBackend))
	assert.True(t, ValidBackend(BackendNone))
	assert.False(t, ValidBackend("leveldb"))
}

func TestRecordKey(t *testing.T) {
	r := testRecord("qsort_median3_stop12", "1000_desc", 1)
	assert.Equal(t, "qsort_median3_stop12/1000_desc", r.Key())
	assert.Equal(t, time.Millisecond, r.Duration())
}

func TestPrefixUpperBound(t *testing.T) {
	assert.Equal(t, []byte("run0"), prefixUpperBound([]byte("run/")))
	assert.Equal(t, []byte{0x02}, prefixUpperBound([]byte{0x01, 0xff}))
	assert.Nil(t, prefixUpperBound([]byte{0xff}))
}

// 백엔드별 기록 쓰기/읽기 벤치마크
func benchmarkStore(b *testing.B, backend string) {
	s, err := Open(backend, filepath.Join(b.TempDir(), backend))
	require.NoError(b, err)
	defer s.Close()

	keys := make([]string, 1000)
	for i := range keys {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(i))
		keys[i] = fmt.Sprintf("%x", buf)
		require.NoError(b, s.Put(testRecord("qsort_first_stop12", keys[i], int64(i))))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := "qsort_first_stop12/" + keys[i%len(keys)]
		if _, err := s.Get(key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBboltGet(b *testing.B)  { benchmarkStore(b, BackendBbolt) }
func BenchmarkBadgerGet(b *testing.B) { benchmarkStore(b, BackendBadger) }
func BenchmarkPebbleGet(b *testing.B) { benchmarkStore(b, BackendPebble) }
