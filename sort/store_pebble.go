package main

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebbleStore(dir string) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) writeBatch(pairs []kvPair) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	for _, p := range pairs {
		if err := batch.Set(p.key, p.value, nil); err != nil {
			return errors.Wrap(err, "pebble set")
		}
	}
	return errors.Wrap(batch.Commit(pebble.Sync), "pebble commit")
}

func (s *pebbleStore) scan(fn func(key, value []byte) error) error {
	it, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return errors.Wrap(err, "pebble iterator")
	}

	for it.First(); it.Valid(); it.Next() {
		if err := fn(it.Key(), it.Value()); err != nil {
			it.Close()
			return err
		}
	}
	return it.Close()
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
