// Package store defines interfaces for reading the reference catalog.
// These interfaces keep handlers and services independent of where the
// catalog comes from; the shipped implementation is an in-memory store over
// the embedded dataset (internal/platform/memory).
//
// The catalog is read-only at runtime, so the interfaces expose lookups only.
package store
