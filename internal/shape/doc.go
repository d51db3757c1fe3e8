// Package shape defines the inferred structural type of JSON documents.
//
// A Shape is a closed sum over the kinds listed in Kind. Shapes arrive already
// inferred and are never mutated by code generation. The package also provides
// the lattice join used to merge element shapes, pointer lookup for selecting a
// sub-shape, and a YAML/JSON descriptor format for loading shapes from disk.
package shape
