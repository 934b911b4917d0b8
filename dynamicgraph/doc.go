// Package dynamicgraph implements the mutable adjacency graph the
// contractor mutates while contracting nodes.
//
// Each node owns a contiguous run [FirstEdge, FirstEdge+EdgeCount) of a
// single flat edge array; slots outside every node's run are "dummy"
// (target == sentinel). InsertEdge grows a node's run by first trying to
// claim the dummy slot immediately after the run, falling back to the
// dummy slot immediately before it, and only relocating the whole run to
// the tail (with 10% slack) when neither neighbor is free. DeleteEdge
// swaps the removed slot with the run's last live slot and marks the
// vacated tail dummy, giving amortized O(1) adjacency mutation during a
// continent-scale contraction run.
package dynamicgraph
