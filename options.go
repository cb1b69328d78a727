// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package outputfile

import "fmt"

// Diffout receives a unified diff when an existing file is rewritten with
// different content. It is invoked at most once per session, before the
// rewrite, and only when the state becomes StateUpdated.
type Diffout func(diff string)

// Option configures an OutputFile at Open time.
type Option func(*OutputFile) error

// WithMkdir creates the target's parent directories if they do not exist.
func WithMkdir() Option {
	return func(f *OutputFile) error {
		f.mkdir = true
		return nil
	}
}

// WithExisting sets the policy for pre-existing target files.
func WithExisting(existing Existing) Option {
	return func(f *OutputFile) error {
		if !existing.valid() {
			return fmt.Errorf("unknown existing policy %q", existing)
		}
		f.existing = existing
		return nil
	}
}

// WithExistingName sets the existing-file policy by name.
// It accepts the same names as ParseExisting.
func WithExistingName(name string) Option {
	return func(f *OutputFile) error {
		existing, err := ParseExisting(name)
		if err != nil {
			return err
		}
		f.existing = existing
		return nil
	}
}

// WithDiffout registers a callback receiving the unified diff on update.
func WithDiffout(diffout Diffout) Option {
	return func(f *OutputFile) error {
		f.diffout = diffout
		return nil
	}
}
