// Package memory provides in-memory implementations of the store interfaces,
// backed by a validated catalog loaded at startup.
package memory
