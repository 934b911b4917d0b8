// Package chstatus implements the error-kind taxonomy: a small closed Kind
// enum, a Classify function that maps a package's sentinel errors onto it,
// and the HTTP-status table the (external, not-implemented-here) server
// layer consults. No package in this module panics or propagates an
// unclassified error across its own API boundary; chstatus is the single
// place that taxonomy is defined.
package chstatus
