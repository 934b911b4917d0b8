// Package polyline implements the signed-delta base-64 geometry codec: the
// encoding Google Maps calls "polyline", at a wire precision of 10^5
// decimal degrees even though Coordinate stores 10^6 (values are divided
// by 10 at encode time).
//
// Encode/Decode round-trip at the wire precision: encode(decode(s)) == s
// for any string this package emits, the lossy step being the one-time ÷10
// at encode, not the codec itself. JSONArray renders the same geometry as
// the unencoded geojson form.
package polyline
