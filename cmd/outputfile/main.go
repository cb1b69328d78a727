// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command outputfile stages file writes from the shell: content only hits
// the target when it actually changed, so mtime-watching build systems don't
// see spurious updates. See the write and apply subcommands.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
