package embedded

import _ "embed"

//go:embed catalog.yaml
var catalogYAML []byte

// Raw returns a copy of the embedded catalog document.
func Raw() []byte {
	return append([]byte(nil), catalogYAML...)
}
