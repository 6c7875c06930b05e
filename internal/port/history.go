package port

import "jdoc/internal/domain"

// HistoryStore records generated comments.
type HistoryStore interface {
	// Lookup returns the newest entry recorded under key.
	Lookup(key string) (domain.HistoryEntry, bool, error)

	Record(entry domain.HistoryEntry) error

	// List returns up to limit entries, newest first. limit <= 0 means all.
	List(limit int) ([]domain.HistoryEntry, error)

	Clear() error

	Close() error
}
