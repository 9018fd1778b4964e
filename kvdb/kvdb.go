package kvdb

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	BackendNone   = "none"
	BackendBbolt  = "bbolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"

	bucketName = "runs"
	keyPrefix  = "run/"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Record 한 번의 (알고리즘, 입력) 실행 기록
type Record struct {
	Algorithm   string    `json:"algorithm"`
	Input       string    `json:"input"`
	Size        int       `json:"size"`
	Order       string    `json:"order"`
	Comparisons int64     `json:"comparisons"`
	Exchanges   int64     `json:"exchanges"`
	Sorted      bool      `json:"sorted"`
	DurationNS  int64     `json:"duration_ns"`
	AllocBytes  uint64    `json:"alloc_bytes"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Key "algorithm/input"
func (r Record) Key() string {
	return r.Algorithm + "/" + r.Input
}

// Duration 실행 시간
func (r Record) Duration() time.Duration {
	return time.Duration(r.DurationNS)
}

// Store 실행 기록 저장소
type Store interface {
	Put(rec Record) error
	Get(key string) (Record, error)
	List() ([]Record, error)
	Close() error
}

// Backends 사용 가능한 저장소 백엔드 (none 은 저장하지 않음)
func Backends() []string {
	return []string{BackendNone, BackendBbolt, BackendBadger, BackendPebble}
}

// ValidBackend 알려진 백엔드 이름인지
func ValidBackend(name string) bool {
	for _, b := range Backends() {
		if b == name {
			return true
		}
	}
	return false
}

// Open 백엔드 이름으로 저장소 열기. bbolt 는 dir 아래 단일 파일을 쓴다.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendBbolt:
		return openBbolt(dir)
	case BackendBadger:
		return openBadger(dir)
	case BackendPebble:
		return openPebble(dir)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
}

func encode(rec Record) ([]byte, []byte, error) {
	val, err := json.Marshal(rec)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode %s", rec.Key())
	}
	return []byte(keyPrefix + rec.Key()), val, nil
}

func decode(val []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return rec, errors.Wrap(err, "decode record")
	}
	return rec, nil
}

func notFound(key string) error {
	return errors.Wrapf(ErrNotFound, "%q", key)
}
