// Package unpacker reconstructs the full original-edge node sequence from
// a BidirQuery result: it first walks the two parent arrays to the meeting
// node to get the overlay (possibly-shortcut) path, then expands every
// shortcut edge into its constituent original edges using an explicit
// stack, never recursion, so shortcut nesting depth cannot overflow the
// call stack.
package unpacker
