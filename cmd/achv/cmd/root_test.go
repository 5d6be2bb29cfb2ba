package cmd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveforge/achv/pkg/codec"
	"github.com/saveforge/achv/pkg/history"
)

// achievementsFixture is a version-2 file with two records: lazy-bastard
// (unlocked, no payload) and steamrolled (locked, no payload).
func achievementsFixture() []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian

	write := func(v interface{}) { _ = binary.Write(&buf, le, v) }

	write(uint16(2))
	write(uint32(2))

	write(uint16(len("lazy-bastard")))
	buf.WriteString("lazy-bastard")
	write(uint64(81234567))
	write(uint32(0))

	write(uint16(len("steamrolled")))
	buf.WriteString("steamrolled")
	write(uint64(0))
	write(uint32(0))

	return buf.Bytes()
}

// setTestStdio points the command tree at buffers and restores the real
// streams when the test finishes.
func setTestStdio(t *testing.T, in io.Reader) (out, errOut *bytes.Buffer) {
	t.Helper()
	out = &bytes.Buffer{}
	errOut = &bytes.Buffer{}

	prevIn, prevOut, prevErr := stdin, stdout, stderr
	SetStdio(in, out, errOut)
	t.Cleanup(func() { SetStdio(prevIn, prevOut, prevErr) })
	return out, errOut
}

func TestRunList(t *testing.T) {
	out, errOut := setTestStdio(t, bytes.NewReader(achievementsFixture()))

	require.NoError(t, runList())

	assert.Equal(t, "lazy-bastard\nsteamrolled\n", errOut.String())
	assert.Empty(t, out.Bytes(), "list must not write to standard output")
}

func TestRunDump(t *testing.T) {
	out, errOut := setTestStdio(t, bytes.NewReader(achievementsFixture()))

	require.NoError(t, runDump())

	dump := errOut.String()
	assert.Contains(t, dump, "achievements file v2, 2 records")
	assert.Contains(t, dump, "lazy-bastard")
	assert.Contains(t, dump, "unlocked at 81234567")
	assert.Contains(t, dump, "steamrolled")
	assert.Contains(t, dump, "locked")
	assert.Empty(t, out.Bytes(), "dump must not write to standard output")
}

func TestRunDelete(t *testing.T) {
	out, _ := setTestStdio(t, bytes.NewReader(achievementsFixture()))

	require.NoError(t, runDelete("lazy-bastard", ""))

	file, err := codec.Decode(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"steamrolled"}, file.IDs())

	// Round two on the edited bytes: the id is gone now.
	out2, _ := setTestStdio(t, bytes.NewReader(out.Bytes()))
	err = runDelete("lazy-bastard", "")
	assert.ErrorIs(t, err, codec.ErrNotFound)
	assert.Empty(t, out2.Bytes(), "failed delete must not write to standard output")
}

func TestRunDelete_NoOutputOnDecodeError(t *testing.T) {
	out, _ := setTestStdio(t, bytes.NewReader([]byte{0x02, 0x00, 0xff}))

	err := runDelete("anything", "")
	assert.ErrorIs(t, err, codec.ErrTruncatedInput)
	assert.Empty(t, out.Bytes())
}

func TestRunDelete_Backup(t *testing.T) {
	backupDir := filepath.Join(t.TempDir(), "history")
	out, errOut := setTestStdio(t, bytes.NewReader(achievementsFixture()))

	require.NoError(t, runDelete("steamrolled", backupDir))
	assert.Contains(t, errOut.String(), "Saved snapshot")

	// The snapshot preserves the pre-edit bytes exactly.
	store, err := history.Open(backupDir)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	snapshot, err := store.Get(entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, achievementsFixture(), snapshot)

	// Standard output still carries the edited file.
	file, err := codec.Decode(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"lazy-bastard"}, file.IDs())
}

func TestRootDispatch(t *testing.T) {
	t.Run("no arguments behaves like dump", func(t *testing.T) {
		_, errOut := setTestStdio(t, bytes.NewReader(achievementsFixture()))

		rootCmd.SetArgs([]string{})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, errOut.String(), "achievements file v2")
	})

	t.Run("list subcommand", func(t *testing.T) {
		_, errOut := setTestStdio(t, bytes.NewReader(achievementsFixture()))

		rootCmd.SetArgs([]string{"list"})
		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "lazy-bastard\nsteamrolled\n", errOut.String())
	})

	t.Run("delete without id fails", func(t *testing.T) {
		setTestStdio(t, bytes.NewReader(achievementsFixture()))

		rootCmd.SetArgs([]string{"delete"})
		err := rootCmd.Execute()
		assert.Error(t, err)
	})

	t.Run("delete with id writes edited file", func(t *testing.T) {
		out, _ := setTestStdio(t, bytes.NewReader(achievementsFixture()))

		rootCmd.SetArgs([]string{"delete", "steamrolled"})
		require.NoError(t, rootCmd.Execute())

		file, err := codec.Decode(out.Bytes())
		require.NoError(t, err)
		assert.Equal(t, []string{"lazy-bastard"}, file.IDs())
	})

	t.Run("decode error propagates", func(t *testing.T) {
		setTestStdio(t, bytes.NewReader([]byte("not an achievements file")))

		rootCmd.SetArgs([]string{"list"})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.True(t, errors.Is(err, codec.ErrUnsupportedVersion) || errors.Is(err, codec.ErrTruncatedInput))
	})
}
