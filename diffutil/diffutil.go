// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package diffutil renders unified diffs between two content versions.
// It is the diff capability behind outputfile's Diffout callback, but can be
// used on its own by tools that want to report content changes.
package diffutil

import (
	"bytes"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// header is the file header of a content diff. The names are deliberately
// empty: the diff describes content versions, not file identities.
const header = "--- \n+++ \n"

// Unified returns the unified diff of old versus new with three lines of
// context. The header lines carry no file names. An empty string is returned
// when the inputs are identical.
func Unified(old, new string) string {
	body, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:       Lines(old),
		B:       Lines(new),
		Context: 3,
	})
	if err != nil || body == "" {
		// The only error source is the underlying writer, which is an
		// in-memory buffer here.
		return ""
	}
	// difflib omits the ---/+++ header when both file names are empty.
	return header + body
}

// Lines splits content into lines, preserving line endings, the way diff
// algorithms expect their input. Empty content yields no lines; a last line
// without a trailing newline is kept as-is.
func Lines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Changed reports whether two byte slices differ. Small convenience used by
// callers that only need the yes/no answer without rendering a diff.
func Changed(old, new []byte) bool {
	return !bytes.Equal(old, new)
}
