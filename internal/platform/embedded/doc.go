// Package embedded holds the reference catalog compiled into the binary and
// decodes it into domain values.
//
// The catalog lives in catalog.yaml next to this file. Request and response
// examples are stored as YAML literal blocks so they keep their exact line
// breaks and indentation.
package embedded
