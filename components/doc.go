// Package components finds connected components of the node-based import
// graph and flags the small ones as tiny, so phantom-node resolution can
// avoid snapping onto a component too small to reasonably reach anything.
//
// The pass runs before edge-expansion, on the node-based graph, and treats
// the graph as undirected: Forward-only and Backward-only edges both still
// connect their two endpoints, since component membership is about
// physical reachability, not direction of travel.
package components
