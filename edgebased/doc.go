// Package edgebased implements the edge-based graph factory: it turns a
// node-based ImportEdge list plus barrier/traffic-light sets and turn
// restrictions into the edge-based node and edge lists the contractor
// consumes. Each directed segment of the input graph becomes a node; each
// legal turn between two segments becomes an edge carrying the turn's
// weight and instruction code, so turn costs and restrictions are plain
// edge weights by the time the contractor sees them.
package edgebased
