// Package contractor builds the contraction hierarchy: it assigns every
// node a rank by repeatedly contracting the lowest-priority independent
// set, replacing u->v->w paths through a contracted node v with shortcut
// edges when no cheaper witness path survives, and emits the upward-only
// forward and backward overlays as staticgraph.StaticGraph instances.
package contractor
