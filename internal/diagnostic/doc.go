// Package diagnostic provides structured warnings and errors reported
// alongside generated code.
//
// Key capabilities:
//   - Hints that never matched a node
//   - Hints shadowed by an earlier hint at the same node
//   - Hints that matched a node they cannot apply to
//   - Invalid hint declarations, combined into one error
package diagnostic
