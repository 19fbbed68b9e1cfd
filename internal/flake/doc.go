// Package flake reads Nix flake lock files and reduces them to the set of
// inputs and their last-modified instants.
//
// The package implements:
//   - Reading the lock file from disk
//   - Decoding the lock document with key order preserved
//   - Parsing inputs with one of two schemas (all nodes, or root inputs)
//   - Finding the most recently changed input
//
// Usage:
//
//	inputs, err := flake.Load(path, flake.SchemaNodes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(flake.FormatDateTime(inputs.Latest().Local()))
package flake
