// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method plus
// default return values used when the function field is nil.
//
// Usage:
//
//	svc := &mocks.MockCatalogService{
//	    GetCategoryFn: func(ctx context.Context, id string) (*domain.Category, error) {
//	        return nil, service.ErrCategoryNotFound
//	    },
//	}
//
// When adding a new mock to this package, create a file named after the
// interface being mocked and add a compile-time assertion that the mock
// satisfies it.
package mocks
