// Package model defines the shared value types passed between every stage
// of the routing pipeline: raw import data (Coordinate, NodeInfo,
// ImportEdge, TurnRestriction), the edge-based representation produced by
// package edgebased (EdgeBasedNode, EdgeBasedEdge), the packed edge a
// StaticGraph stores (QueryEdge), and the closed set of turn-instruction
// codes a route carries to its caller.
//
// None of these types own a mutex or a map: they are plain structs meant
// to be held in slices (often inside a bulkvector.Vector) and copied by
// value, leaving concurrency control to the container that holds them.
package model
