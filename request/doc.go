// Package request defines the external command-descriptor surface: the
// field shapes for `viaroute`, `nearest`, `locate`, `timestamp`, and
// `hello`, dispatched by string descriptor from an external HTTP request
// parser. This package owns only the request/response structs and the
// Command closed-string-set; parsing query strings into these structs,
// routing HTTP verbs, and writing JSON responses all remain the external
// HTTP layer's job.
package request
