// Package testutil provides testing utilities for dsgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe random number generator for
// reproducible stress tests.
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Perm(10000)  // distinct values in random order
//	rng.Shuffle(len(values), func(i, j int) {
//	    values[i], values[j] = values[j], values[i]
//	})
package testutil
