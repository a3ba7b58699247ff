package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ServiceRoot names a base URL the documented API is reachable at.
type ServiceRoot struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	URL  string `json:"url" yaml:"url" validate:"required,url"`
}

// SecurityNote summarizes the transport and authentication requirements for
// one family of documented APIs.
type SecurityNote struct {
	Title string   `json:"title" yaml:"title" validate:"required"`
	Items []string `json:"items" yaml:"items"`
}

// Document carries the descriptive metadata shown around the catalog.
type Document struct {
	Title        string         `json:"title" yaml:"title" validate:"required"`
	Subtitle     string         `json:"subtitle" yaml:"subtitle"`
	Summary      string         `json:"summary" yaml:"summary"`
	Version      string         `json:"version" yaml:"version"`
	ServiceRoots []ServiceRoot  `json:"serviceRoots,omitempty" yaml:"serviceRoots,omitempty" validate:"dive"`
	Security     []SecurityNote `json:"security,omitempty" yaml:"security,omitempty" validate:"dive"`
}

// Catalog is the complete, ordered reference dataset. It is built once at
// startup and treated as immutable afterwards.
type Catalog struct {
	Document   Document   `json:"document" yaml:"document"`
	Categories []Category `json:"categories" yaml:"categories" validate:"dive"`
}

// Validate checks field-level rules and the uniqueness of category and
// endpoint ids across the whole catalog.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return ErrEmptyCatalog
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	categoryIDs := make(map[string]struct{}, len(c.Categories))
	endpointIDs := make(map[string]string)
	for _, cat := range c.Categories {
		if _, seen := categoryIDs[cat.ID]; seen {
			return fmt.Errorf("%w: %q", ErrDuplicateCategoryID, cat.ID)
		}
		categoryIDs[cat.ID] = struct{}{}

		for _, e := range cat.Endpoints {
			if owner, seen := endpointIDs[e.ID]; seen {
				return fmt.Errorf("%w: %q in %q and %q", ErrDuplicateEndpointID, e.ID, owner, cat.ID)
			}
			endpointIDs[e.ID] = cat.ID
		}
	}

	return nil
}

// FindCategory returns the category with the given id.
func (c *Catalog) FindCategory(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// FindEndpoint returns the endpoint with the given id and the id of the
// category holding it.
func (c *Catalog) FindEndpoint(id string) (Endpoint, string, bool) {
	for _, cat := range c.Categories {
		for _, e := range cat.Endpoints {
			if e.ID == id {
				return e, cat.ID, true
			}
		}
	}
	return Endpoint{}, "", false
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	doc := c.Document
	if c.Document.ServiceRoots != nil {
		doc.ServiceRoots = append([]ServiceRoot(nil), c.Document.ServiceRoots...)
	}
	if c.Document.Security != nil {
		doc.Security = make([]SecurityNote, len(c.Document.Security))
		for i, n := range c.Document.Security {
			if n.Items != nil {
				n.Items = append([]string(nil), n.Items...)
			}
			doc.Security[i] = n
		}
	}
	return &Catalog{
		Document:   doc,
		Categories: CloneCategories(c.Categories),
	}
}
