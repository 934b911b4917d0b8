// Package facade assembles the seven persisted dataset artifacts into the
// capability interfaces the query and phantom-snapping layers consume: one
// Dataset aggregating the graph, coordinate list, name table, and spatial
// index behind narrow read interfaces, loaded once per dataset generation.
//
// Two constructors are provided: OpenFileFacade mmaps each artifact
// read-only via golang.org/x/sys/unix, and NewSharedMemoryFacade wraps a
// Dataset in a shm.Region for the two-generation hot-swap.
package facade
