// Package store persists encoded examples in badger, grouped by run.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/chessenc"
)

const (
	examplePrefix = "ex/"
	runPrefix     = "run/"
)

// ErrRunNotFound is returned when a run has no metadata stored.
var ErrRunNotFound = errors.New("run not found")

// Run describes one encoding pass.
type Run struct {
	ID       uuid.UUID       `json:"id"`
	Config   chessenc.Config `json:"config"`
	Source   string          `json:"source"`
	Examples int             `json:"examples"`
	Skipped  int             `json:"skipped"`
}

// Store wraps a badger database of examples.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store in dir. An empty dir keeps everything in
// memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open store %q", dir)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func runKey(run uuid.UUID) []byte { return []byte(runPrefix + run.String()) }

func examplesPrefix(run uuid.UUID) []byte {
	return []byte(examplePrefix + run.String() + "/")
}

func exampleKey(run uuid.UUID, idx int) []byte {
	return []byte(fmt.Sprintf("%s%s/%010d", examplePrefix, run, idx))
}

// SaveRun records the metadata of a run.
func (s *Store) SaveRun(r Run) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(r.ID), data)
	})
}

// LoadRun returns the metadata of run.
func (s *Store) LoadRun(run uuid.UUID) (Run, error) {
	var r Run
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(runKey(run))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(ErrRunNotFound, "%v", run)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	return r, err
}

// Put stores ex as the idx-th example of run.
func (s *Store) Put(run uuid.UUID, idx int, ex chessenc.Example) error {
	data, err := json.Marshal(ex)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(exampleKey(run, idx), data)
	})
}

// PutAll stores examples as the examples of run, numbered from 0.
func (s *Store) PutAll(run uuid.UUID, examples []chessenc.Example) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for i, ex := range examples {
		data, err := json.Marshal(ex)
		if err != nil {
			return err
		}
		if err := wb.Set(exampleKey(run, i), data); err != nil {
			return errors.Wrapf(err, "example %d", i)
		}
	}
	return wb.Flush()
}

// Each calls fn with every example of run in index order. It stops at the
// first error returned by fn.
func (s *Store) Each(run uuid.UUID, fn func(idx int, ex chessenc.Example) error) error {
	prefix := examplesPrefix(run)
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var idx int
			if _, err := fmt.Sscanf(string(item.Key()[len(prefix):]), "%d", &idx); err != nil {
				return errors.Wrapf(err, "bad key %q", item.Key())
			}
			var ex chessenc.Example
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &ex)
			}); err != nil {
				return err
			}
			if err := fn(idx, ex); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns every example of run in index order.
func (s *Store) Load(run uuid.UUID) ([]chessenc.Example, error) {
	var retVal []chessenc.Example
	err := s.Each(run, func(_ int, ex chessenc.Example) error {
		retVal = append(retVal, ex)
		return nil
	})
	return retVal, err
}

// Count returns the number of examples stored for run.
func (s *Store) Count(run uuid.UUID) (int, error) {
	prefix := examplesPrefix(run)
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}
