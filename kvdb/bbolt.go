package kvdb

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

const bboltDBFile = "runs.db"

type bboltStore struct {
	db *bbolt.DB
}

func openBbolt(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "mkdir %s", dir)
	}
	db, err := bbolt.Open(filepath.Join(dir, bboltDBFile), 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open bbolt")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &bboltStore{db: db}, nil
}

func (s *bboltStore) Put(rec Record) error {
	key, val, err := encode(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put(key, val)
	})
}

func (s *bboltStore) Get(key string) (Record, error) {
	var rec Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket([]byte(bucketName)).Get([]byte(keyPrefix + key))
		if val == nil {
			return notFound(key)
		}
		var err error
		rec, err = decode(val)
		return err
	})
	return rec, err
}

func (s *bboltStore) List() ([]Record, error) {
	var out []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		// bbolt 커서는 키 순서대로 끝에서 멈춘다
		c := tx.Bucket([]byte(bucketName)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			rec, err := decode(v)
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

func (s *bboltStore) Close() error {
	return s.db.Close()
}
