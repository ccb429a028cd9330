// Package document provides the generic configuration tree parsed from
// YAML input.
//
// A document node is one of three shapes:
//   - Scalar: a string, integer, float or boolean leaf
//   - Sequence: an ordered list of nodes
//   - Mapping: exactly one key/value pair
//
// The tree carries no grammar tags; the confgen package infers what a
// node means purely from its shape and position. Mappings with more
// than one key are rejected at decode time, since every construct in
// the configuration format is written as a single-key map and a
// multi-key map can only come from a malformed document.
package document
