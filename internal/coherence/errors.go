package coherence

import "errors"

// Sentinel errors returned by System.Read and System.Write.
//
// These classify precondition violations: the engine fails fast and does
// not attempt recovery, and no state is mutated. Callers should use
// [errors.Is] to check error types.
var (
	// ErrInvalidCache indicates cacheID is outside [0, NumCaches).
	ErrInvalidCache = errors.New("coherence: invalid cache id")

	// ErrInvalidAddress indicates address is outside [0, NumAddresses).
	ErrInvalidAddress = errors.New("coherence: invalid address")

	// ErrNegativeValue indicates a write was attempted with value < 0.
	ErrNegativeValue = errors.New("coherence: negative value")
)
