// Package model defines the shared value types used throughout the folio
// library.
//
// All types in this package are plain values with no behavior beyond simple
// accessors. They are produced by one stage of the reconstruction pipeline
// and consumed by the next; none of them carry identity or mutable shared
// state, and all of them are safe to copy.
package model
