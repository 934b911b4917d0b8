// Package chway is a contraction-hierarchy road-routing engine: it turns a
// preprocessed street graph into point-to-point shortest-path answers.
//
// The pipeline, leaves first:
//
//	bulkvector/    — segmented growable vector with page-wise destructive consume
//	staticgraph/   — immutable CSR graph used by the query path
//	dynamicgraph/  — mutable adjacency graph used during contraction
//	restriction/   — turn-restriction map with the is-only uniqueness invariant
//	edgebased/     — node-based graph -> edge-based graph + turn instructions
//	contractor/    — priority-driven node contraction with witness search
//	chquery/       — bidirectional CH Dijkstra with stall-on-demand
//	unpacker/      — iterative shortcut unpacking
//	rtree/         — packed Hilbert R-tree spatial index
//	phantom/       — nearest-edge snap to a routable phantom node
//	polyline/      — signed-delta base64 geometry codec
//	persist/       — on-disk dataset artifacts (.hsgr/.nodes/.edges/...)
//	facade/        — uniform read interface over file-backed or shared-memory data
//	shm/           — two-generation shared-memory hot swap
//	components/    — tiny-component tagging over the import graph
//	request/       — external command-descriptor surface
//	chstatus/      — error-kind taxonomy and HTTP-status mapping
//	chlog/         — structured logging
//	chmetrics/     — optional Prometheus instrumentation
//	config/        — key -> filesystem path configuration
//	cmd/chway-contract/ — the preprocessing entrypoint
package chway
