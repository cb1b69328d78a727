// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/jongio/outputfile"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolArrow   = "→"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIArrow   = "->"
	ASCIIDot     = "*"
)

var (
	// mu protects global state variables
	mu sync.RWMutex

	// noColor disables all color output
	noColor = detectNoColor()

	// out is the destination for all output; overridable for tests.
	out io.Writer = os.Stdout
)

// supportsUnicode detects if the terminal supports Unicode symbols
var supportsUnicode = detectUnicodeSupport()

// detectNoColor checks the NO_COLOR convention and whether stdout is a TTY.
func detectNoColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code terminal, and modern PowerShell support Unicode
	if os.Getenv("WT_SESSION") != "" || os.Getenv("TERM_PROGRAM") != "" {
		return true
	}
	return os.Getenv("PSModulePath") != ""
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// SetOutput redirects all output. Useful for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

func getOut() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// colorize wraps text in a color code unless colors are disabled.
func colorize(color, text string) string {
	mu.RLock()
	nc := noColor
	mu.RUnlock()
	if nc {
		return text
	}
	return color + text + Reset
}

// symbol returns the Unicode symbol or its ASCII fallback.
func symbol(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// stateStyle returns the symbol and color for a terminal state.
func stateStyle(state outputfile.State) (string, string) {
	switch state {
	case outputfile.StateCreated:
		return symbol(SymbolCheck, ASCIICheck), Green
	case outputfile.StateUpdated:
		return symbol(SymbolArrow, ASCIIArrow), Cyan
	case outputfile.StateOverwritten:
		return symbol(SymbolCheck, ASCIICheck), Yellow
	case outputfile.StateIdentical:
		return symbol(SymbolDot, ASCIIDot), Gray
	case outputfile.StateExisting:
		return symbol(SymbolWarning, ASCIIWarning), Yellow
	case outputfile.StateFailed:
		return symbol(SymbolCross, ASCIICross), Red
	default:
		return symbol(SymbolDot, ASCIIDot), Gray
	}
}

// Status prints a per-file outcome line:
//
//	✓ created      gen/api.go
//	• identical    gen/client.go
func Status(state outputfile.State, path string) {
	sym, color := stateStyle(state)
	fmt.Fprintf(getOut(), "%s %-12s %s\n", colorize(color, sym), state, path)
}

// Success prints a success message with a check symbol.
func Success(format string, args ...interface{}) {
	fmt.Fprintf(getOut(), "%s %s\n", colorize(Green, symbol(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func Info(format string, args ...interface{}) {
	fmt.Fprintf(getOut(), "%s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a warning symbol.
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(getOut(), "%s %s\n", colorize(Yellow, symbol(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Error prints an error message with a cross symbol.
func Error(format string, args ...interface{}) {
	fmt.Fprintf(getOut(), "%s %s\n", colorize(Red, symbol(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Summary prints a one-line count of outcomes, in state order:
//
//	3 created, 5 identical, 1 updated, 1 failed
//
// States with a zero count are omitted.
func Summary(states []outputfile.State) {
	order := []outputfile.State{
		outputfile.StateCreated,
		outputfile.StateIdentical,
		outputfile.StateUpdated,
		outputfile.StateOverwritten,
		outputfile.StateExisting,
		outputfile.StateFailed,
	}
	counts := make(map[outputfile.State]int, len(order))
	for _, s := range states {
		counts[s]++
	}

	var parts []string
	for _, s := range order {
		if n := counts[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "no files")
	}
	fmt.Fprintln(getOut(), strings.Join(parts, ", "))
}

// Diff prints a unified diff with colored +/- lines.
func Diff(diff string) {
	w := getOut()
	for rest := diff; rest != ""; {
		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i+1]
			rest = rest[i+1:]
		} else {
			rest = ""
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, colorize(Green, text))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, colorize(Red, text))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, colorize(Cyan, text))
		default:
			fmt.Fprintln(w, text)
		}
	}
}
