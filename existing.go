// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package outputfile

import "fmt"

// Existing selects how a pre-existing target file is handled.
type Existing string

const (
	// ExistingError fails Open when the target already exists.
	ExistingError Existing = "error"
	// ExistingKeep leaves an existing file untouched; buffered writes are
	// discarded at close and the state becomes StateExisting.
	ExistingKeep Existing = "keep"
	// ExistingOverwrite always rewrites the target at close, refreshing the
	// modification time even for identical content.
	ExistingOverwrite Existing = "overwrite"
	// ExistingKeepTimestamp rewrites the target only when the content
	// differs, preserving the modification time otherwise. This is the
	// default policy.
	ExistingKeepTimestamp Existing = "keep_timestamp"
)

// ParseExisting converts a policy name into an Existing value.
// Names are case-sensitive: "error", "keep", "overwrite", "keep_timestamp".
func ParseExisting(name string) (Existing, error) {
	e := Existing(name)
	if !e.valid() {
		return "", fmt.Errorf("unknown existing policy %q", name)
	}
	return e, nil
}

func (e Existing) valid() bool {
	switch e {
	case ExistingError, ExistingKeep, ExistingOverwrite, ExistingKeepTimestamp:
		return true
	}
	return false
}

// String returns the policy name.
func (e Existing) String() string {
	return string(e)
}
