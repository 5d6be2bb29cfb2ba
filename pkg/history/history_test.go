package history

import (
	"bytes"
	"path/filepath"
	"sort"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SnapshotAndGet(t *testing.T) {
	store := openTestStore(t)

	data := []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00}
	id, err := store.Snapshot(data)
	require.NoError(t, err)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(ksuid.New())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestStore_ListOrder(t *testing.T) {
	store := openTestStore(t)

	var ids []ksuid.KSUID
	for i := 0; i < 3; i++ {
		id, err := store.Snapshot([]byte{byte(i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Listing follows key order; ksuid keys created in the same second only
	// sort by their random payload, so compare against the sorted ids.
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i].Bytes(), ids[j].Bytes()) < 0
	})
	for i, entry := range entries {
		assert.Equal(t, ids[i], entry.ID)
		assert.Equal(t, 1, entry.Size)
	}
}

func TestStore_Delete(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Snapshot([]byte("before-edit"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(id))

	_, err = store.Get(id)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	err = store.Delete(id)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestParseID(t *testing.T) {
	id := ksuid.New()

	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-ksuid")
	assert.Error(t, err)
}
