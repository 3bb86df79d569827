// Package arena implements the storage.Allocator contract with a chunked
// bump allocator. Allocation advances an offset into the current chunk in
// O(1); when the chunk is exhausted a new one is appended. Individual
// deallocation only reclaims the most recent allocation, so the arena is
// built for phase-oriented workloads where everything is released at once
// with Reset.
//
// A buffer that sits at the bump tail grows in place without copying,
// which makes the arena a good backing allocator for ranges that are
// extended immediately after allocation.
package arena
