// Package chquery implements BidirQuery: bidirectional Dijkstra search
// over the contracted upward graph, with stall-on-demand pruning and an
// alternative-route variant. Per-query scratch (distance tables, parent
// arrays, priority queues) is pooled and reset lazily through dirty lists,
// so a query touches only as much memory as it explores.
package chquery
