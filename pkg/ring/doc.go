// Package ring implements a filesystem-backed ring buffer for small opaque
// binary items.
//
// Each item lives as one regular file in a single flat directory, identified
// by a short Name drawn from a fixed alphabet (canonically the 256 single
// byte values rendered as two lowercase hex digits, giving a 256-slot ring).
// Producers push arbitrary byte blobs; consumers list occupied slots, fetch
// an item by name, and delete or vacuum broken slots.
//
// The ring is lossy at capacity: when every slot is occupied, a push fails
// ([EventTooManyItemsAlready]) rather than overwriting an existing item.
//
// Every request is dispatched through [Ring.Handle], which maps a [Request]
// to the relevant component (reader, writer, deleter, lister, or vacuum) and
// returns an [Event]. No in-memory catalog of slot state is kept across
// requests; every request re-derives slot state from the filesystem.
package ring
