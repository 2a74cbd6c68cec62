// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon() creates read-write anonymous mappings outside the Go garbage
// collector's control. The off-heap buffer uses these for its raw element
// blocks, so block release is explicit (Close) rather than GC-driven.
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: Uses VirtualAlloc with demand-paged commit
//
// # Thread Safety
//
// A Mapping is safe for concurrent read access. The Close() method is
// idempotent and protected by atomic operations. However, callers must
// ensure no goroutines access Bytes() after Close() returns.
package mmap
