// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diffutil

import (
	"strings"
	"testing"
)

func TestUnifiedIdentical(t *testing.T) {
	content := "a\nb\nc\n"
	if got := Unified(content, content); got != "" {
		t.Errorf("Unified() on identical content = %q, want empty", got)
	}
	if got := Unified("", ""); got != "" {
		t.Errorf("Unified() on empty content = %q, want empty", got)
	}
}

func TestUnifiedChange(t *testing.T) {
	diff := Unified("Hello World.\n", "Hello Mars.\n")

	if !strings.HasPrefix(diff, "--- \n+++ \n") {
		t.Fatalf("diff missing empty-name header:\n%s", diff)
	}
	if !strings.Contains(diff, "@@ -1 +1 @@\n") {
		t.Errorf("diff missing hunk header:\n%s", diff)
	}
	if !strings.Contains(diff, "-Hello World.\n") {
		t.Errorf("diff missing removed line:\n%s", diff)
	}
	if !strings.Contains(diff, "+Hello Mars.\n") {
		t.Errorf("diff missing added line:\n%s", diff)
	}
}

func TestUnifiedContext(t *testing.T) {
	old := "1\n2\n3\n4\n5\n6\n7\n8\n9\n"
	new := "1\n2\n3\n4\nX\n6\n7\n8\n9\n"

	diff := Unified(old, new)

	// Three lines of context on each side of the change.
	for _, want := range []string{" 2\n", " 4\n", "-5\n", "+X\n", " 8\n"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff missing %q:\n%s", want, diff)
		}
	}
	if strings.Contains(diff, " 1\n") {
		t.Errorf("diff contains line outside context window:\n%s", diff)
	}
}

func TestUnifiedMissingTrailingNewline(t *testing.T) {
	diff := Unified("a", "b")
	if !strings.Contains(diff, "-a") || !strings.Contains(diff, "+b") {
		t.Errorf("last line without newline not diffed:\n%s", diff)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single", "a\n", []string{"a\n"}},
		{"no trailing newline", "a\nb", []string{"a\n", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("Lines(%q) = %q, want %q", tt.content, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Lines(%q)[%d] = %q, want %q", tt.content, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestChanged(t *testing.T) {
	if Changed([]byte("a"), []byte("a")) {
		t.Error("Changed() = true for equal content")
	}
	if !Changed([]byte("a"), []byte("b")) {
		t.Error("Changed() = false for differing content")
	}
	if Changed(nil, []byte{}) {
		t.Error("Changed() = true for nil vs empty")
	}
}
