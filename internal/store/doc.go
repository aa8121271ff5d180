// Package store defines the persistence interfaces consumed by the API
// layer, together with the filter/page types that describe a bounded
// fetch and the sentinel errors implementations must return.
package store
