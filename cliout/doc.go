// Package cliout provides outcome reporting for tools built on outputfile,
// with ANSI colors and Unicode symbols.
//
// # Basic Usage
//
//	import "github.com/jongio/outputfile/cliout"
//
//	// Print a per-file outcome line
//	cliout.Status(state, path)
//
//	// Print a run summary
//	cliout.Summary(states)
//
//	// Print a colored unified diff
//	cliout.Diff(diff)
//
// # Color and Unicode Detection
//
// Color output is disabled automatically when NO_COLOR is set or stdout is
// not a terminal; NoColor and ForceColor override the detection. Unicode
// symbols fall back to ASCII on legacy Windows consoles.
package cliout
