package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/phrazzld/apiref/internal/domain"
)

// IsBlank reports whether the query selects everything.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// fold returns the case-folded form of s used for comparisons.
// A fresh Caser is used per call since Caser values are not safe for
// concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Matches reports whether the endpoint's title, path, method or description
// contains query, ignoring case. A blank query matches every endpoint.
//
// Method is compared by substring like the other fields, so "GET" also
// matches an endpoint whose title or description contains "get".
func Matches(e domain.Endpoint, query string) bool {
	if IsBlank(query) {
		return true
	}
	return matchesFolded(e, fold(query))
}

func matchesFolded(e domain.Endpoint, q string) bool {
	return strings.Contains(fold(e.Title), q) ||
		strings.Contains(fold(e.Endpoint), q) ||
		strings.Contains(fold(e.Method), q) ||
		strings.Contains(fold(e.Description), q)
}

// Filter returns the categories reduced to their matching endpoints, in the
// original order. Categories left without endpoints are dropped. A blank
// query returns categories unchanged.
//
// The input is never modified; surviving categories are shallow copies with
// a freshly allocated endpoint slice.
func Filter(categories []domain.Category, query string) []domain.Category {
	if IsBlank(query) {
		return categories
	}

	q := fold(query)
	result := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		var matched []domain.Endpoint
		for _, e := range c.Endpoints {
			if matchesFolded(e, q) {
				matched = append(matched, e)
			}
		}
		if len(matched) == 0 {
			continue
		}
		c.Endpoints = matched
		result = append(result, c)
	}
	return result
}

// Count returns the total number of endpoints in categories.
func Count(categories []domain.Category) int {
	return domain.CountEndpoints(categories)
}
