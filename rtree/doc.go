// Package rtree implements a packed, bulk-loaded R-tree over road-segment
// MBRs and the best-first nearest-segment search used to snap a query
// coordinate onto the graph. Leaves are sorted once along a Hilbert curve
// (latitude passed through a Mercator projection first, so curve locality
// tracks ground distance) and grouped bottom-up into fixed-size pages.
package rtree
