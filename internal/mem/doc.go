// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation for small raw blocks. Blocks are
// typed as bytes, so element types stored in them must not contain
// pointers (the garbage collector does not trace the block contents).
package mem
