package magicstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Entry records one verified magic multiplier found by the search.
type Entry struct {
	Magic uint64    `json:"magic"`
	Bits  int       `json:"bits"`  // popcount of the relevant mask
	Tries uint64    `json:"tries"` // candidates tested before this one
	Found time.Time `json:"found"`
}

// Store wraps BadgerDB for persisting search results.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the search cache in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
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

func key(piece string, sq int) []byte {
	return []byte(fmt.Sprintf("%s/%02d", piece, sq))
}

// Save stores the entry for a piece/square pair.
func (s *Store) Save(piece string, sq int, e *Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(piece, sq), data)
	})
}

// Load returns the entry for a piece/square pair, or nil when the
// square has not been searched yet.
func (s *Store) Load(piece string, sq int) (*Entry, error) {
	var entry *Entry

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(piece, sq))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			entry = &Entry{}
			return json.Unmarshal(val, entry)
		})
	})

	return entry, err
}

// LoadAll returns the cached entries for a piece, indexed by square;
// unsearched squares are nil.
func (s *Store) LoadAll(piece string) ([64]*Entry, error) {
	var entries [64]*Entry
	for sq := 0; sq < 64; sq++ {
		e, err := s.Load(piece, sq)
		if err != nil {
			return entries, err
		}
		entries[sq] = e
	}
	return entries, nil
}
