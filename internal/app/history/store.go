// Package history holds the read-only list of past transcriptions and the
// search, pagination and acknowledgment logic the dashboard runs over it.
package history

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	apperrors "voxscribe/internal/app/errors"
	"voxscribe/internal/app/metrics"
	"voxscribe/internal/app/model"
)

// Store is an in-memory, read-only history. All methods are safe for
// concurrent use because the backing slice is never written after
// construction.
type Store struct {
	entries []model.HistoryEntry
	logger  *zap.Logger
	metrics *metrics.Collector
}

// NewStore copies entries into a new store. Order is preserved as given.
func NewStore(entries []model.HistoryEntry, logger *zap.Logger, m *metrics.Collector) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		entries: append([]model.HistoryEntry(nil), entries...),
		logger:  logger,
		metrics: m,
	}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns a copy of every entry in store order.
func (s *Store) All() []model.HistoryEntry {
	return append([]model.HistoryEntry(nil), s.entries...)
}

// Search returns the entries whose source name or text contains query,
// ignoring case, in store order. An empty query matches everything.
func (s *Store) Search(query string) []model.HistoryEntry {
	needle := strings.ToLower(query)
	matches := lo.Filter(s.entries, func(e model.HistoryEntry, _ int) bool {
		return strings.Contains(strings.ToLower(e.SourceName), needle) ||
			strings.Contains(strings.ToLower(e.Text), needle)
	})
	s.metrics.SearchExecuted(len(matches))
	return matches
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (model.HistoryEntry, error) {
	entry, ok := lo.Find(s.entries, func(e model.HistoryEntry) bool {
		return e.ID == id
	})
	if !ok {
		return model.HistoryEntry{}, apperrors.Wrapf(apperrors.ErrEntryNotFound, "id %s", id)
	}
	return entry, nil
}

// Ack is a transient acknowledgment for a user action on an entry.
type Ack struct {
	Title       string
	Description string
	Entry       model.HistoryEntry
}

// View acknowledges opening an entry.
func (s *Store) View(id string) (Ack, error) {
	entry, err := s.Get(id)
	if err != nil {
		return Ack{}, err
	}
	return Ack{
		Title:       "Opening transcription",
		Description: fmt.Sprintf("Viewing details for %s", entry.SourceName),
		Entry:       entry,
	}, nil
}

// Delete acknowledges a delete request. The store is not modified.
func (s *Store) Delete(id string) (Ack, error) {
	entry, err := s.Get(id)
	if err != nil {
		return Ack{}, err
	}
	s.logger.Info("Delete acknowledged without mutation",
		zap.String("id", entry.ID),
		zap.String("source_name", entry.SourceName),
	)
	return Ack{
		Title:       "Transcription deleted",
		Description: fmt.Sprintf("%s has been removed from your history.", entry.SourceName),
		Entry:       entry,
	}, nil
}
