// Package restriction implements the (from,via) -> bucket index used by
// the edge-based graph factory to answer two questions during edge-based
// edge emission:
//
//   - IsRestricted(u, v, w): is the turn from edge (u,v) onto edge (v,w)
//     forbidden?
//   - EmanatingIsOnly(u, v): if an is-only restriction starts at (u,v),
//     which node must the turn continue to?
//
// Each (from, via) pair owns one bucket of (to, isOnly) entries; inserting
// an is-only restriction into a bucket that already holds one is a no-op
// (only one is-only restriction can apply per source), and inserting an
// is-only restriction into a bucket that only held is-not entries clears
// them first, since an is-only restriction supersedes every is-not
// restriction sharing the same source.
package restriction
