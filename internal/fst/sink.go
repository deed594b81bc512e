package fst

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// MemorySentinel is the path value that instructs Build to return the
// finished image as an owned byte slice instead of writing it to disk
// (§6). File I/O and path handling are otherwise opaque to the core;
// this is the one sentinel the core itself interprets.
const MemorySentinel = ":memory:"

// WriteSink delivers a finished image to its destination: either
// handed back to the caller (":memory:") or written atomically to a
// path on disk, mirroring the temp-file-then-rename durability pattern
// opencoff/go-chd's DBWriter uses for its own constant-DB files, via
// natefinch/atomic rather than a hand-rolled rename dance.
func WriteSink(path string, data []byte) ([]byte, error) {
	if path == MemorySentinel || path == "" {
		return data, nil
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// ReadSink loads an image previously written by WriteSink. Callers that
// already hold the bytes (an in-memory build, or their own mmap) don't
// need this -- it exists for the "path" half of the path/sink
// abstraction in §6.
func ReadSink(path string) ([]byte, error) {
	return os.ReadFile(path)
}
