// Package pkg provides the core libraries for typomap keyboard
// distance generation.
//
// # Overview
//
// typomap converts named keyboard layouts into fixed-size distance
// matrices and serializes them as compact KYBD files that
// memory-constrained spell-correction engines load at startup. The pkg
// directory is organized into five main areas:
//
//  1. [layout] - Layout definitions, registry, and key geometry
//  2. [distance] - Distance-class matrix computation
//  3. [kybd] - The KYBD binary file format (encode/decode)
//  4. [gen] - Batch generation of layout files
//  5. [render] / [api] - Graphviz visualization and the dev HTTP server
//
// # Architecture
//
// The typical data flow through typomap:
//
//	Layout name (registry or TOML file)
//	         ↓
//	    [layout] package (rows → staggered half-key positions)
//	         ↓
//	    [distance] package (26x26 Chebyshev distance classes)
//	         ↓
//	    [kybd] package (681-byte KYBD file)
//
// # Quick Start
//
// Generate the KYBD file for a built-in layout:
//
//	import (
//	    "github.com/typomap/typomap/pkg/distance"
//	    "github.com/typomap/typomap/pkg/kybd"
//	    "github.com/typomap/typomap/pkg/layout"
//	)
//
//	m := distance.Classify(layout.Positions(layout.QWERTY))
//	err := kybd.WriteFile("keyboard_qwerty.bin", m)
//
// Batch-generate every registered layout:
//
//	g := gen.New(layout.Builtin(), nil)
//	results, err := g.Generate(ctx, g.Registry.Names(), "./keyboard_layouts")
//
// # Main Packages
//
// [layout] - Named layout definitions (qwerty, azerty, qwertz, dvorak,
// colemak built in), TOML loading for user-defined layouts, and the
// half-key-unit position model that encodes physical row stagger.
//
// [distance] - The 26x26 distance-class matrix: {0,1,2,255} buckets
// over Chebyshev distance in half-key units. Pure and deterministic so
// generated files are byte-for-byte reproducible.
//
// [kybd] - Byte-exact KYBD encoding (magic "KYBD", version 1, 676
// matrix bytes; 681 bytes total) with atomic file writes and
// structured decode errors.
//
// [gen] - Concurrent batch generation with per-layout success/failure
// reporting.
//
// [render] - Adjacency graphs via Graphviz, keys pinned to their
// physical positions.
//
// [api] - chi router serving layouts over HTTP for engine development.
//
// [errors] - Structured error codes (UNKNOWN_LAYOUT, IO_FAILURE,
// MALFORMED_FILE, TRUNCATED_FILE, ...) shared by all packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/distance/...   # Specific package
//
// [layout]: https://pkg.go.dev/github.com/typomap/typomap/pkg/layout
// [distance]: https://pkg.go.dev/github.com/typomap/typomap/pkg/distance
// [kybd]: https://pkg.go.dev/github.com/typomap/typomap/pkg/kybd
// [gen]: https://pkg.go.dev/github.com/typomap/typomap/pkg/gen
// [render]: https://pkg.go.dev/github.com/typomap/typomap/pkg/render
// [api]: https://pkg.go.dev/github.com/typomap/typomap/pkg/api
// [errors]: https://pkg.go.dev/github.com/typomap/typomap/pkg/errors
package pkg
