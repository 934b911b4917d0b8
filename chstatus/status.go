package chstatus

import (
	"errors"
	"net/http"

	"github.com/katalvlaran/chway/chquery"
	"github.com/katalvlaran/chway/contractor"
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/unpacker"
)

// Kind is the closed error-kind taxonomy every query-path failure is
// classified into before it crosses the HTTP boundary.
type Kind uint8

const (
	// KindNone means no error occurred.
	KindNone Kind = iota
	// KindInvalidInput covers a malformed request or an out-of-range
	// coordinate.
	KindInvalidInput
	// KindNoRoute covers a bidirectional search with no meeting node, or a
	// phantom-node resolution that found no candidate within bounds.
	KindNoRoute
	// KindDataCorruption covers a missing file, a fatal UUID mismatch, or a
	// checksum mismatch.
	KindDataCorruption
	// KindResourceExhaustion covers an mmap or shared-memory-creation
	// failure.
	KindResourceExhaustion
	// KindTransientUnavailability covers a shared-memory swap in progress
	// beyond a bounded wait.
	KindTransientUnavailability
	// KindInternal is the fallback for an error this package cannot
	// classify; treated as DataCorruption-severity by HTTPStatus.
	KindInternal
)

// String renders a short label for logging and JSON status bodies.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidInput:
		return "invalid_input"
	case KindNoRoute:
		return "no_route"
	case KindDataCorruption:
		return "data_corruption"
	case KindResourceExhaustion:
		return "resource_exhaustion"
	case KindTransientUnavailability:
		return "transient_unavailability"
	default:
		return "internal"
	}
}

// HTTPStatus maps a Kind onto its HTTP status code. NoRoute is
// deliberately HTTP 200 — the failure is carried in the JSON body's status
// code 207; a route not being found is not a transport error.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNone:
		return http.StatusOK
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNoRoute:
		return http.StatusOK
	case KindDataCorruption:
		return http.StatusInternalServerError
	case KindResourceExhaustion:
		return http.StatusServiceUnavailable
	case KindTransientUnavailability:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Classify maps an error from any package in this module onto its Kind.
// Unwraps with errors.Is/errors.As so a wrapped sentinel (fmt.Errorf("...:
// %w", err)) still classifies correctly. An error this function doesn't
// recognize classifies as KindInternal rather than panicking — the query
// path never propagates an unclassified error.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	switch {
	case errors.Is(err, model.ErrLatOutOfRange),
		errors.Is(err, model.ErrLonOutOfRange):
		return KindInvalidInput

	case errors.Is(err, chquery.ErrNoRoute),
		errors.Is(err, ErrNoPhantomCandidate):
		return KindNoRoute

	case errors.Is(err, unpacker.ErrBrokenPath),
		errors.Is(err, ErrChecksumMismatch):
		return KindDataCorruption

	case errors.Is(err, ErrUUIDMismatch):
		// A UUID mismatch is a warning, not fatal, at load time; when it
		// does surface as an error (a caller opted into strict mode) it is
		// still data-integrity, not a request-shape problem.
		return KindDataCorruption

	case errors.Is(err, contractor.ErrNoNodes):
		return KindInvalidInput

	case errors.Is(err, ErrMmapFailed),
		errors.Is(err, ErrSharedMemoryCreate):
		return KindResourceExhaustion

	case errors.Is(err, ErrSwapTimeout):
		return KindTransientUnavailability

	default:
		return KindInternal
	}
}

// Sentinel errors for failure modes that originate in chstatus's own
// consumers (persist, facade, shm) rather than in a lower package, kept
// here so Classify has a single, closed switch to maintain.
var (
	// ErrNoPhantomCandidate is returned by phantom-node resolution when no
	// segment lies within the search bound.
	ErrNoPhantomCandidate = errors.New("chstatus: no phantom node candidate within bounds")
	// ErrChecksumMismatch is returned by persist.Read* when a CRC32
	// checksum fails to verify.
	ErrChecksumMismatch = errors.New("chstatus: dataset checksum mismatch")
	// ErrUUIDMismatch is returned by persist.Read* in strict mode when the
	// on-disk UUID doesn't match the compile-time one.
	ErrUUIDMismatch = errors.New("chstatus: dataset UUID mismatch")
	// ErrMmapFailed is returned by the facade layer when mmap fails.
	ErrMmapFailed = errors.New("chstatus: mmap failed")
	// ErrSharedMemoryCreate is returned by shm.Create when the shared
	// region cannot be allocated.
	ErrSharedMemoryCreate = errors.New("chstatus: shared memory region creation failed")
	// ErrSwapTimeout is returned when a query waits beyond a bounded
	// duration for a shared-memory generation swap to settle.
	ErrSwapTimeout = errors.New("chstatus: shared memory swap wait exceeded bound")
)
