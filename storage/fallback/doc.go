// Package fallback composes two storage backends of the same contract:
// every request tries the First backend and transparently falls back to the
// Second on failure. Handles are tagged with the backend that produced them
// and every later operation dispatches on that tag.
//
// The range composite additionally migrates live data across the boundary:
// a grow that First cannot satisfy allocates the full new capacity in
// Second, byte-copies the preserved prefix, and frees the First buffer; a
// shrink back below First's reach migrates the other way. Growth of an
// already-migrated buffer stays in Second.
//
// The two backends may count capacity in different integer widths; any
// capacity crossing the boundary is overflow-checked into the target width
// and the operation fails with storage.ErrAllocationFailed when it does not
// fit.
package fallback
