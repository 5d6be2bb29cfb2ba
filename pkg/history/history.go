// Package history keeps pre-edit snapshots of achievements files so a bad
// delete can be undone. Snapshots are stored in a local pebble database and
// keyed by ksuid, which makes listing naturally time-ordered.
package history

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ErrSnapshotNotFound is returned when no snapshot has the requested id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Entry describes one stored snapshot.
type Entry struct {
	ID   ksuid.KSUID
	Size int
}

// Store is a snapshot store backed by a pebble database.
type Store struct {
	db *pebble.DB
}

// Open opens (creating if necessary) the snapshot store at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	return &Store{db: db}, nil
}

// Snapshot stores the exact file bytes under a fresh id and returns the id.
func (s *Store) Snapshot(data []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.db.Set(id.Bytes(), data, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store snapshot: %w", err)
	}
	return id, nil
}

// Get returns the bytes of the snapshot with the given id.
func (s *Store) Get(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// List returns all snapshots in key order, which for ksuid keys is oldest
// first at one-second granularity.
func (s *Store) List() ([]Entry, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			// Not one of ours; the store directory is private, so treat
			// foreign keys as corruption rather than skipping them.
			return nil, fmt.Errorf("malformed snapshot key %x: %w", iter.Key(), err)
		}
		entries = append(entries, Entry{ID: id, Size: len(iter.Value())})
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the snapshot with the given id.
func (s *Store) Delete(id ksuid.KSUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(id.Bytes(), pebble.Sync)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ParseID parses a snapshot id from its string form.
func ParseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("invalid snapshot id %q: %w", s, err)
	}
	return id, nil
}
