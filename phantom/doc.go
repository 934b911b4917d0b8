// Package phantom implements the phantom-node resolver: it snaps a query
// coordinate onto the nearest indexed road segment and synthesizes the
// PhantomNode the bidirectional search seeds itself from, without ever
// mutating the graph.
package phantom
