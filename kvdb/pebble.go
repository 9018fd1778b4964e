package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebble(dir string) (Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open pebble")
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Put(rec Record) error {
	key, val, err := encode(rec)
	if err != nil {
		return err
	}
	return s.db.Set(key, val, pebble.Sync)
}

func (s *pebbleStore) Get(key string) (Record, error) {
	val, closer, err := s.db.Get([]byte(keyPrefix + key))
	if errors.Is(err, pebble.ErrNotFound) {
		return Record{}, notFound(key)
	}
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()
	return decode(val)
}

// prefixUpperBound prefix 로 시작하는 모든 키보다 큰 최소 키
func prefixUpperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (s *pebbleStore) List() ([]Record, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixUpperBound([]byte(keyPrefix)),
	})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []Record
	for it.First(); it.Valid(); it.Next() {
		rec, err := decode(it.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, it.Error()
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
