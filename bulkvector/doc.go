// Package bulkvector implements Vector, a segmented append-only sequence
// used wherever the import/contraction pipeline must hold hundreds of
// millions of elements temporarily.
//
// A flat growable slice re-allocates and copies its entire backing array
// as it grows, and a single lingering reference keeps the whole thing
// alive even after a consumer has moved 99% of the data elsewhere. Vector
// instead grows by appending fixed-size blocks, so ConsumeTo can release
// each block to the garbage collector the moment its contents have been
// handed to the sink, rather than waiting for the whole vector to be
// consumed. The intended use is large, one-pass storage for data that is
// read exactly once by the next pipeline stage.
package bulkvector
