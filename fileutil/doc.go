// Package fileutil provides the filesystem plumbing behind staged file
// output: atomic whole-file replacement and directory management.
//
// # Atomic Write Operations
//
// AtomicWriteFile ensures that files are never left in a partial state by
// writing to a temporary file first, then atomically renaming it to the
// target path. This approach includes:
//
//   - Unique temporary file names to avoid concurrent writer collisions
//   - Explicit sync operations to ensure data is flushed to disk
//   - Retry logic (5 attempts with 20ms backoff) for rename operations
//   - Automatic cleanup of temporary files on failure
//
// # File Permissions
//
// The package uses secure default permissions:
//
//   - DirPermission (0750): rwxr-x--- - Owner can read/write/execute, group can read/execute
//   - FilePermission (0644): rw-r--r-- - Owner can read/write, others can read only
//
// # Example Usage
//
//	// Replace a file's content atomically
//	if err := fileutil.AtomicWriteFile("output.txt", data, fileutil.FilePermission); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Ensure the output directory exists
//	if err := fileutil.EnsureDir("./gen/api"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read prior content, tolerating a missing file
//	old, found, err := fileutil.ReadIfExists("output.txt")
package fileutil
