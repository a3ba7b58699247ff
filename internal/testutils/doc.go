// Package testutils provides shared helpers for tests: a catalog service
// over the embedded catalog and small HTTP request and assertion helpers.
package testutils
