// Package confgen compiles a generic configuration tree into syslog-ng
// configuration text.
//
// The input format carries no grammar tags, so every node is
// classified purely by shape and position: its runtime type, its
// parent key, and the traversal context stack. Classification is a
// priority-ordered, total decision (see Classify); emission walks the
// tree once, top to bottom, and either produces the full text or fails
// with a typed error and no partial output.
//
// Two behaviors are intentional quirks of the target grammar, kept
// verbatim from the format this compiler emits:
//   - boolean leaf parameters invert polarity: true emits "no",
//     false emits "yes"
//   - string parameters are double-quoted only when they contain one
//     of the characters $ @ : / .
package confgen
