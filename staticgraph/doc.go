// Package staticgraph implements StaticGraph, the immutable compressed
// sparse-row (CSR) directed graph the query path runs against.
//
// A StaticGraph never mutates after Build: node i's out-edges occupy the
// half-open range [FirstOut[i], FirstOut[i+1]) of a single flat edge
// slice, so traversal is a plain slice scan with no pointer chasing — the
// layout persisted verbatim as the node_array/edge_array of the .hsgr
// file. Construction groups a sorted edge list by source, then writes
// prefix-summed offsets before copying edge data into place.
package staticgraph
