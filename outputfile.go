// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package outputfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jongio/outputfile/diffutil"
	"github.com/jongio/outputfile/fileutil"
	"github.com/jongio/outputfile/logutil"
)

// ErrClosed is returned by Write after the file has been finalized.
// It wraps os.ErrClosed for errors.Is checks.
var ErrClosed = fmt.Errorf("write on closed output file: %w", os.ErrClosed)

// OutputFile buffers writes in memory and commits them to the target path at
// close time, only touching the file when the content actually changed.
// It implements io.Writer and io.StringWriter. An OutputFile is owned by a
// single caller and is not safe for concurrent use.
type OutputFile struct {
	path     string
	mkdir    bool
	existing Existing
	diffout  Diffout

	buf     bytes.Buffer
	state   State
	closed  bool
	existed bool
}

// Open stages a write to path. The existing-file policy and the parent
// directory are checked up front, before any byte is written:
//
//   - the target exists and the policy is ExistingError: Open fails with an
//     error wrapping os.ErrExist
//   - the parent directory is missing and WithMkdir was not given: Open
//     fails with an error wrapping os.ErrNotExist naming the directory
//   - the parent directory is missing and WithMkdir was given: it is created
//
// The target file itself is never created or modified by Open.
func Open(path string, opts ...Option) (*OutputFile, error) {
	f := &OutputFile{
		path:     path,
		existing: ExistingKeepTimestamp,
		state:    StateOpen,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	f.existed = fileutil.Exists(path)
	if f.existed && f.existing == ExistingError {
		return nil, fmt.Errorf("%s: %w", path, os.ErrExist)
	}

	dir := filepath.Dir(path)
	if !fileutil.Exists(dir) {
		if !f.mkdir {
			return nil, fmt.Errorf("output directory %q: %w", dir, os.ErrNotExist)
		}
		if err := fileutil.EnsureDir(dir); err != nil {
			return nil, err
		}
	}

	logutil.Debug("output file opened", "path", path, "existing", f.existing, "existed", f.existed)
	return f, nil
}

// Path returns the target path.
func (f *OutputFile) Path() string { return f.path }

// Mkdir reports whether parent directory creation was requested.
func (f *OutputFile) Mkdir() bool { return f.mkdir }

// Existing returns the existing-file policy.
func (f *OutputFile) Existing() Existing { return f.existing }

// State returns the current state. It is StateOpen until the file is
// finalized and one of the terminal states afterwards.
func (f *OutputFile) State() State { return f.state }

// Closed reports whether the file has been finalized.
func (f *OutputFile) Closed() bool { return f.closed }

// Write appends p to the in-memory buffer. No filesystem access happens
// until Close. Writing to a finalized file returns ErrClosed.
func (f *OutputFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	return f.buf.Write(p)
}

// WriteString appends s to the in-memory buffer.
func (f *OutputFile) WriteString(s string) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	return f.buf.WriteString(s)
}

// Flush is a no-op: content stays buffered until Close. It exists so that
// OutputFile can stand in for flushable writers in generator pipelines.
func (f *OutputFile) Flush() error {
	return nil
}

// Close finalizes the file, committing the buffered content to the target if
// it differs from what is on disk (see the package documentation for the
// per-policy behavior). Close is idempotent; a second call changes nothing
// and performs no filesystem action.
func (f *OutputFile) Close() error {
	return f.finalize(false)
}

// Discard abandons the session: the buffer is dropped, the state becomes
// StateFailed and the target file is left exactly as it was. Discard after a
// successful Close is a no-op, which makes it safe to defer unconditionally:
//
//	f, err := outputfile.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer f.Discard()
//	// ... writes that may fail ...
//	return f.Close()
func (f *OutputFile) Discard() {
	_ = f.finalize(true)
}

// finalize runs the terminal state decision exactly once.
func (f *OutputFile) finalize(failed bool) error {
	if f.closed {
		return nil
	}
	f.closed = true
	defer f.buf.Reset()

	if failed {
		f.state = StateFailed
		logutil.Debug("output file discarded", "path", f.path)
		return nil
	}

	if f.existed && f.existing == ExistingKeep {
		f.state = StateExisting
		logutil.Debug("output file kept", "path", f.path)
		return nil
	}

	data := f.buf.Bytes()
	old, found, err := fileutil.ReadIfExists(f.path)
	if err != nil {
		f.state = StateFailed
		return fmt.Errorf("read existing %s: %w", f.path, err)
	}

	switch {
	case !found:
		if err := f.commit(data); err != nil {
			return err
		}
		f.state = StateCreated
	case bytes.Equal(old, data):
		if f.existing == ExistingOverwrite {
			if err := f.commit(data); err != nil {
				return err
			}
			f.state = StateOverwritten
		} else {
			// Content and modification time stay untouched.
			f.state = StateIdentical
		}
	default:
		if f.diffout != nil {
			f.diffout(diffutil.Unified(string(old), string(data)))
		}
		if err := f.commit(data); err != nil {
			return err
		}
		f.state = StateUpdated
	}

	logutil.Debug("output file closed", "path", f.path, "state", f.state)
	return nil
}

// commit replaces the target file content atomically.
func (f *OutputFile) commit(data []byte) error {
	if err := fileutil.AtomicWriteFile(f.path, data, fileutil.FilePermission); err != nil {
		f.state = StateFailed
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// WriteFile is the staged analogue of os.WriteFile: it stages data to path
// in a single call and returns the terminal state.
func WriteFile(path string, data []byte, opts ...Option) (State, error) {
	f, err := Open(path, opts...)
	if err != nil {
		return StateFailed, err
	}
	defer f.Discard()
	if _, err := f.Write(data); err != nil {
		return StateFailed, err
	}
	if err := f.Close(); err != nil {
		return f.State(), err
	}
	return f.State(), nil
}

// Do opens a staged file, passes it to fn and commits on success. If fn
// returns an error the buffer is discarded, the target is left untouched and
// the error is returned unchanged alongside StateFailed.
func Do(path string, fn func(w io.Writer) error, opts ...Option) (State, error) {
	f, err := Open(path, opts...)
	if err != nil {
		return StateFailed, err
	}
	defer f.Discard()
	if err := fn(f); err != nil {
		f.Discard()
		return f.State(), err
	}
	if err := f.Close(); err != nil {
		return f.State(), err
	}
	return f.State(), nil
}
