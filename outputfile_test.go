// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package outputfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/outputfile/diffutil"
	"github.com/jongio/outputfile/testutil"
)

const (
	world = "Hello World.\n"
	mars  = "Hello Mars.\n"
)

// mtimeGap makes successive writes distinguishable by modification time.
const mtimeGap = 50 * time.Millisecond

func writeSession(t *testing.T, path, content string, opts ...Option) *OutputFile {
	t.Helper()
	f, err := Open(path, opts...)
	require.NoError(t, err)
	defer f.Discard()
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f
}

func TestOpenAttributes(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Discard()

	assert.Equal(t, path, f.Path())
	assert.False(t, f.Mkdir())
	assert.Equal(t, ExistingKeepTimestamp, f.Existing())
	assert.Equal(t, StateOpen, f.State())
	assert.False(t, f.Closed())
	assert.False(t, f.State().Terminal())
}

func TestCreate(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	f := writeSession(t, path, world)

	assert.Equal(t, StateCreated, f.State())
	assert.True(t, f.Closed())
	assert.Equal(t, world, testutil.ReadFile(t, path))
}

func TestIdenticalKeepsTimestamp(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	var changes []string
	diffout := func(diff string) { changes = append(changes, diff) }

	f := writeSession(t, path, world, WithDiffout(diffout))
	require.Equal(t, StateCreated, f.State())
	mtime := testutil.Mtime(t, path)
	require.Empty(t, changes)

	// Unchanged content must not modify the timestamp, no matter how often
	// it is rewritten.
	for i := 0; i < 3; i++ {
		time.Sleep(mtimeGap)

		f := writeSession(t, path, world, WithDiffout(diffout))
		assert.Equal(t, StateIdentical, f.State())
		assert.Equal(t, world, testutil.ReadFile(t, path))
		assert.True(t, mtime.Equal(testutil.Mtime(t, path)), "mtime changed on identical content")
		assert.Empty(t, changes)
	}
}

func TestUpdateChangesContentAndDiffs(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	var changes []string
	diffout := func(diff string) { changes = append(changes, diff) }

	writeSession(t, path, world, WithDiffout(diffout))
	mtime := testutil.Mtime(t, path)
	require.Empty(t, changes)

	time.Sleep(mtimeGap)

	f := writeSession(t, path, mars, WithDiffout(diffout))
	assert.Equal(t, StateUpdated, f.State())
	assert.Equal(t, mars, testutil.ReadFile(t, path))
	assert.True(t, testutil.Mtime(t, path).After(mtime), "mtime not refreshed on update")

	require.Len(t, changes, 1)
	assert.Equal(t, diffutil.Unified(world, mars), changes[0])
	assert.True(t, strings.HasPrefix(changes[0], "--- \n+++ \n"))
	assert.Contains(t, changes[0], "-Hello World.")
	assert.Contains(t, changes[0], "+Hello Mars.")
}

func TestDiscardLeavesFileUntouched(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")
	testutil.WriteFile(t, path, world)
	mtime := testutil.Mtime(t, path)

	time.Sleep(mtimeGap)

	f, err := Open(path)
	require.NoError(t, err)
	_, err = f.WriteString(mars)
	require.NoError(t, err)
	f.Discard()

	assert.Equal(t, StateFailed, f.State())
	assert.True(t, f.Closed())
	assert.Equal(t, world, testutil.ReadFile(t, path))
	assert.True(t, mtime.Equal(testutil.Mtime(t, path)), "mtime changed on discard")
}

func TestDiscardAfterCloseIsNoop(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	f, err := Open(path)
	require.NoError(t, err)
	_, err = f.WriteString(world)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Equal(t, StateCreated, f.State())

	f.Discard()
	assert.Equal(t, StateCreated, f.State())
	assert.Equal(t, world, testutil.ReadFile(t, path))
}

func TestCloseIdempotent(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	f := writeSession(t, path, world)
	mtime := testutil.Mtime(t, path)

	time.Sleep(mtimeGap)
	require.NoError(t, f.Close())

	assert.Equal(t, StateCreated, f.State())
	assert.True(t, mtime.Equal(testutil.Mtime(t, path)))
}

func TestWriteAfterClose(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	f := writeSession(t, path, world)

	_, err := f.WriteString(mars)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = f.Write([]byte(mars))
	assert.ErrorIs(t, err, ErrClosed)

	assert.Equal(t, StateCreated, f.State())
	assert.Equal(t, world, testutil.ReadFile(t, path))
}

func TestFlushIsNoop(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Discard()

	_, err = f.WriteString(world)
	require.NoError(t, err)
	require.NoError(t, f.Flush())

	// Content stays buffered: nothing on disk before Close.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, f.Close())
	require.NoError(t, f.Flush())
	assert.Equal(t, world, testutil.ReadFile(t, path))
}

func TestExistingKeep(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	// No existing file: behaves like a normal create.
	f := writeSession(t, path, world, WithExisting(ExistingKeep))
	require.Equal(t, StateCreated, f.State())
	mtime := testutil.Mtime(t, path)

	time.Sleep(mtimeGap)

	// Identical and differing content are both discarded.
	f = writeSession(t, path, world, WithExisting(ExistingKeep))
	assert.Equal(t, StateExisting, f.State())

	f = writeSession(t, path, mars, WithExisting(ExistingKeep))
	assert.Equal(t, StateExisting, f.State())
	assert.Equal(t, world, testutil.ReadFile(t, path))
	assert.True(t, mtime.Equal(testutil.Mtime(t, path)))
}

func TestExistingOverwrite(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	f := writeSession(t, path, world, WithExisting(ExistingOverwrite))
	require.Equal(t, StateCreated, f.State())
	mtime := testutil.Mtime(t, path)

	time.Sleep(mtimeGap)

	// Identical content still rewrites and refreshes the timestamp.
	f = writeSession(t, path, world, WithExisting(ExistingOverwrite))
	assert.Equal(t, StateOverwritten, f.State())
	assert.Equal(t, world, testutil.ReadFile(t, path))
	assert.True(t, testutil.Mtime(t, path).After(mtime), "mtime not refreshed on overwrite")

	// Differing content is a regular update.
	f = writeSession(t, path, mars, WithExisting(ExistingOverwrite))
	assert.Equal(t, StateUpdated, f.State())
	assert.Equal(t, mars, testutil.ReadFile(t, path))
}

func TestExistingError(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	// No existing file: allowed.
	f := writeSession(t, path, world, WithExisting(ExistingError))
	require.Equal(t, StateCreated, f.State())
	mtime := testutil.Mtime(t, path)

	// Existing file: rejected before any write is possible.
	_, err := Open(path, WithExisting(ExistingError))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)

	assert.Equal(t, world, testutil.ReadFile(t, path))
	assert.True(t, mtime.Equal(testutil.Mtime(t, path)))
}

func TestMkdirGating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "file.txt")

	_, err := Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), filepath.Dir(path))

	f := writeSession(t, path, world, WithMkdir())
	assert.True(t, f.Mkdir())
	assert.Equal(t, StateCreated, f.State())
	assert.Equal(t, world, testutil.ReadFile(t, path))
}

func TestOptionErrors(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	_, err := Open(path, WithExisting(Existing("truncate")))
	assert.Error(t, err)

	_, err = Open(path, WithExistingName("KEEP"))
	assert.Error(t, err, "policy names are case-sensitive")

	f, err := Open(path, WithExistingName("keep"))
	require.NoError(t, err)
	defer f.Discard()
	assert.Equal(t, ExistingKeep, f.Existing())
}

func TestWriteFile(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	state, err := WriteFile(path, []byte(world))
	require.NoError(t, err)
	assert.Equal(t, StateCreated, state)

	state, err = WriteFile(path, []byte(world))
	require.NoError(t, err)
	assert.Equal(t, StateIdentical, state)

	state, err = WriteFile(path, []byte(mars))
	require.NoError(t, err)
	assert.Equal(t, StateUpdated, state)
	assert.Equal(t, mars, testutil.ReadFile(t, path))
}

func TestDo(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	state, err := Do(path, func(w io.Writer) error {
		_, err := fmt.Fprint(w, world)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, StateCreated, state)
	assert.Equal(t, world, testutil.ReadFile(t, path))
}

func TestDoPropagatesError(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")
	testutil.WriteFile(t, path, world)
	mtime := testutil.Mtime(t, path)

	boom := errors.New("template exploded")
	state, err := Do(path, func(w io.Writer) error {
		_, _ = fmt.Fprint(w, mars)
		return boom
	})

	// The caller's error comes back unchanged and the file is untouched.
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateFailed, state)
	assert.Equal(t, world, testutil.ReadFile(t, path))
	assert.True(t, mtime.Equal(testutil.Mtime(t, path)))
}

func TestParseExisting(t *testing.T) {
	tests := []struct {
		name    string
		want    Existing
		wantErr bool
	}{
		{"error", ExistingError, false},
		{"keep", ExistingKeep, false},
		{"overwrite", ExistingOverwrite, false},
		{"keep_timestamp", ExistingKeepTimestamp, false},
		{"Keep", "", true},
		{"keep-timestamp", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExisting(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateOpen, "open"},
		{StateCreated, "created"},
		{StateIdentical, "identical"},
		{StateUpdated, "updated"},
		{StateOverwritten, "overwritten"},
		{StateExisting, "existing"},
		{StateFailed, "failed"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestEmptyContent(t *testing.T) {
	path := testutil.TempFilePath(t, "file.txt")

	// A session with no writes creates an empty file.
	f, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, StateCreated, f.State())
	assert.Equal(t, "", testutil.ReadFile(t, path))

	f, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, StateIdentical, f.State())
}
