// Package outputfile provides a timestamp-preserving, write-if-changed file
// writer for code generators and templating tools.
//
// Writing a file normally updates its modification time even when the new
// content is byte-identical to what is already on disk, which causes build
// systems that watch mtimes to rebuild downstream targets for no reason.
// OutputFile buffers all writes in memory and only touches the target file at
// close time, after comparing the buffered content against the existing file.
//
// # Basic Usage
//
//	f, err := outputfile.Open("gen/api.go")
//	if err != nil {
//	    return err
//	}
//	defer f.Discard()
//
//	fmt.Fprintf(f, "package api\n")
//	// ... more writes ...
//
//	if err := f.Close(); err != nil {
//	    return err
//	}
//	fmt.Println(f.State()) // created, identical, updated, ...
//
// Discard is a no-op after a successful Close. If an error path skips Close,
// the deferred Discard drops the buffer and the target file is left exactly
// as it was, content and timestamp included.
//
// # Convenience Wrappers
//
// WriteFile is the staged analogue of os.WriteFile:
//
//	state, err := outputfile.WriteFile("gen/api.go", data)
//
// Do runs a writer function with commit-on-success, discard-on-error
// semantics:
//
//	state, err := outputfile.Do("gen/api.go", func(w io.Writer) error {
//	    return tmpl.Execute(w, model)
//	})
//
// # Existing File Policies
//
// The Existing policy decides how a pre-existing target is handled:
//
//   - ExistingKeepTimestamp (default): rewrite only when content differs
//   - ExistingKeep: never modify an existing file
//   - ExistingOverwrite: always rewrite, like a plain file write would
//   - ExistingError: fail Open when the target already exists
//
// # Diff Reporting
//
// A Diffout callback receives a unified diff whenever an existing file is
// rewritten with different content:
//
//	f, err := outputfile.Open(path, outputfile.WithDiffout(func(diff string) {
//	    fmt.Print(diff)
//	}))
//
// # Atomicity
//
// Commits replace the whole file by writing to a temporary file in the target
// directory and renaming it into place, so concurrent readers never observe
// partially written content. There is no cross-process locking: two writers
// targeting the same path must be serialized by the caller.
package outputfile
