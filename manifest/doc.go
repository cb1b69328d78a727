// Package manifest applies YAML-described batches of staged file writes.
//
// Generators that emit many files per run can describe their output in a
// manifest and let Apply stage every file through outputfile, so unchanged
// files keep their timestamps and only real changes hit the disk:
//
//	existing: keep_timestamp
//	mkdir: true
//	files:
//	  - path: gen/api.go
//	    source: build/api.go.out
//	  - path: gen/version.txt
//	    content: |
//	      1.4.0
//	  - path: config/defaults.yaml
//	    source: build/defaults.yaml
//	    existing: keep
//
// Each entry takes either literal content or a source file, and can override
// the manifest-level existing policy and mkdir default. Apply returns one
// Result per entry and keeps going past individual failures.
package manifest
