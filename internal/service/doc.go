// Package service contains the application's use cases over the reference
// catalog: listing categories, looking one up by id, searching endpoints and
// reading the catalog's document metadata.
//
// Services depend on the store interfaces (internal/store), never on a
// concrete store, and translate store errors into service sentinel errors
// that the API layer maps to HTTP responses.
package service
