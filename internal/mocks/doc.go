// Package mocks provides hand-rolled mock implementations of the
// application's interfaces for testing. Each mock offers overridable
// function fields plus a usable in-memory default.
package mocks
