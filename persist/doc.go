// Package persist implements the seven on-disk dataset artifacts: `.hsgr`
// (the contracted StaticGraph), `.nodes` (NodeInfo), `.edges`
// (OriginalEdgeData), `.names` (the name-strings blob), `.ramIndex` /
// `.fileIndex` (the R-tree), and `.timestamp`. All multi-byte integers are
// little-endian, written through encoding/binary.
//
// `.hsgr` is headed by a UUID + CRC32 checksum pair: the checksum failing
// to verify is a DataCorruption error; the UUID failing to match the
// compile-time one is a warning unless the caller opts into strict mode.
package persist
