package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
	"jdoc/internal/domain"
)

var (
	bucketHistory = []byte("history")
	bucketKeys    = []byte("history_keys")
	bucketMeta    = []byte("meta")
)

// BoltStore keeps generated comments in a bbolt database. Entries are keyed
// by creation time so a reverse cursor walk lists them newest first.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketHistory, bucketKeys, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &BoltStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func entryKey(entry domain.HistoryEntry) []byte {
	key := make([]byte, 8, 8+len(entry.ID))
	binary.BigEndian.PutUint64(key, uint64(entry.CreatedAt.UnixNano()))
	return append(key, entry.ID...)
}

// Record stores entry, filling in ID and CreatedAt when unset. A later entry
// with the same cache key replaces the earlier one for Lookup.
func (s *BoltStore) Record(entry domain.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		key := entryKey(entry)
		if err := tx.Bucket(bucketHistory).Put(key, data); err != nil {
			return err
		}
		if entry.Key == "" {
			return nil
		}
		return tx.Bucket(bucketKeys).Put([]byte(entry.Key), key)
	})
}

func (s *BoltStore) Lookup(key string) (domain.HistoryEntry, bool, error) {
	var entry domain.HistoryEntry
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		ref := tx.Bucket(bucketKeys).Get([]byte(key))
		if ref == nil {
			return nil
		}
		data := tx.Bucket(bucketHistory).Get(ref)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &entry); err != nil {
			return fmt.Errorf("corrupt history entry: %w", err)
		}
		found = true
		return nil
	})
	return entry, found, err
}

func (s *BoltStore) List(limit int) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketHistory).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var entry domain.HistoryEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("corrupt history entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

func (s *BoltStore) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketHistory).Stats().KeyN
		return nil
	})
	return n, err
}

// Clear removes every entry. Schema metadata is kept.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketHistory, bucketKeys} {
			if err := tx.DeleteBucket(b); err != nil && err != bbolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
