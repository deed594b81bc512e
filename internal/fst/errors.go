package fst

import "errors"

// Error taxonomy for the FST engine. The public API at the module root
// (package gofst) re-exports these same values unchanged, so the
// sentinels here are what errors.Is checks match.
var (
	// ErrOrder is returned by Builder.Push when a key is not strictly
	// greater than the previously pushed key.
	ErrOrder = errors.New("fst: keys must be pushed in strictly ascending order")

	// ErrDuplicateKey is returned by Builder.Push when a key equals the
	// previously pushed key.
	ErrDuplicateKey = errors.New("fst: duplicate key")

	// ErrValue is returned when an output value cannot be represented,
	// including addition overflow past 2^64-1 while Reader.Get sums the
	// outputs along a key's path.
	ErrValue = errors.New("fst: value out of range")

	// ErrFormat is returned by NewReader/decodeNode when the image footer or a
	// node is truncated, malformed, or fails its checksum.
	ErrFormat = errors.New("fst: malformed image")

	// ErrIteratorDone is returned by Iterator.Next/Seek once the cursor
	// has been exhausted or has advanced past its configured bound.
	ErrIteratorDone = errors.New("fst: iterator exhausted")

	// ErrFrozen is returned by Push/Finish when a Builder is reused
	// after Finish has already been called.
	ErrFrozen = errors.New("fst: builder already finished")
)
