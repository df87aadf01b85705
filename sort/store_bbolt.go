package main

import (
	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

type bboltStore struct {
	db *bbolt.DB
}

func openBboltStore(path string) (*bboltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	return &bboltStore{db: db}, nil
}

func (s *bboltStore) writeBatch(pairs []kvPair) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return errors.Wrap(err, "create bucket")
		}
		for _, p := range pairs {
			if err := b.Put(p.key, p.value); err != nil {
				return errors.Wrap(err, "bbolt put")
			}
		}
		return nil
	})
}

func (s *bboltStore) scan(fn func(key, value []byte) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		// bbolt 커서는 키 순서로 순회
		return b.ForEach(fn)
	})
}

func (s *bboltStore) Close() error {
	return s.db.Close()
}
