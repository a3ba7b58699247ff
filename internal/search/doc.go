// Package search narrows the catalog to the endpoints matching a free-text
// query. Matching is plain case-insensitive substring containment over an
// endpoint's title, path, method and description: no ranking, no fuzzy
// matching, no tokenization.
package search
