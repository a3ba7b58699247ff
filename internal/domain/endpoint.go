package domain

// Endpoint describes one documented API operation. Method is a free-text
// label ("GET", "SOAP", "HL7 v2.x", ...) rather than an HTTP verb enum, and
// Request/Response hold literal example text.
type Endpoint struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Method       string   `json:"method" yaml:"method" validate:"required"`
	Endpoint     string   `json:"endpoint" yaml:"endpoint" validate:"required"`
	Description  string   `json:"description" yaml:"description"`
	Category     string   `json:"category" yaml:"category"`
	Request      string   `json:"request" yaml:"request"`
	Response     string   `json:"response" yaml:"response"`
	SearchParams []string `json:"searchParams,omitempty" yaml:"searchParams,omitempty"`
}

// Clone returns a deep copy of the endpoint.
func (e Endpoint) Clone() Endpoint {
	if e.SearchParams != nil {
		e.SearchParams = append([]string(nil), e.SearchParams...)
	}
	return e
}

// Category groups related endpoints under a named, colored section.
type Category struct {
	ID          string     `json:"id" yaml:"id" validate:"required"`
	Name        string     `json:"name" yaml:"name" validate:"required"`
	Description string     `json:"description" yaml:"description"`
	Color       string     `json:"color" yaml:"color" validate:"omitempty,hexcolor"`
	Endpoints   []Endpoint `json:"endpoints" yaml:"endpoints" validate:"dive"`
}

// Clone returns a deep copy of the category, endpoints included.
func (c Category) Clone() Category {
	endpoints := make([]Endpoint, len(c.Endpoints))
	for i, e := range c.Endpoints {
		endpoints[i] = e.Clone()
	}
	c.Endpoints = endpoints
	return c
}

// CloneCategories deep-copies an ordered list of categories.
func CloneCategories(categories []Category) []Category {
	if categories == nil {
		return nil
	}
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.Clone()
	}
	return out
}

// CountEndpoints returns the number of endpoints across all categories.
func CountEndpoints(categories []Category) int {
	total := 0
	for _, c := range categories {
		total += len(c.Endpoints)
	}
	return total
}
