// Package domain contains the core entities of the API reference catalog:
// endpoint examples, the categories that group them, and the catalog
// document that carries both. Entities are plain values with validation;
// they know nothing about storage or HTTP.
package domain
