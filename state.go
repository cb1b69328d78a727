// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package outputfile

// State describes what happened to the target file.
// An OutputFile starts in StateOpen and reaches exactly one terminal state
// when it is finalized; the state never changes afterwards.
type State int

const (
	// StateOpen means the file is still accepting writes.
	StateOpen State = iota
	// StateCreated means the target did not exist and was written.
	StateCreated
	// StateIdentical means the buffered content matched the existing file;
	// content and modification time were left untouched.
	StateIdentical
	// StateUpdated means the existing file was rewritten with new content.
	StateUpdated
	// StateOverwritten means the existing file was rewritten even though the
	// content was identical (ExistingOverwrite policy).
	StateOverwritten
	// StateExisting means the existing file was kept and the buffered content
	// was discarded (ExistingKeep policy).
	StateExisting
	// StateFailed means the session was abandoned; the target was not touched.
	StateFailed
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateCreated:
		return "created"
	case StateIdentical:
		return "identical"
	case StateUpdated:
		return "updated"
	case StateOverwritten:
		return "overwritten"
	case StateExisting:
		return "existing"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is final.
func (s State) Terminal() bool {
	return s != StateOpen
}
