package view

import (
	"fmt"

	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/search"
)

// methodBadges maps endpoint methods to badge CSS classes.
var methodBadges = map[string]string{
	"GET":      "badge-get",
	"POST":     "badge-post",
	"PUT":      "badge-put",
	"DELETE":   "badge-delete",
	"HL7 v2.x": "badge-hl7",
	"SOAP":     "badge-soap",
}

// MethodBadge returns the badge CSS class for a method.
// Unknown methods get a neutral badge.
func MethodBadge(method string) string {
	if class, ok := methodBadges[method]; ok {
		return class
	}
	return "badge-other"
}

// SidebarEntry is one category link in the page sidebar.
type SidebarEntry struct {
	ID     string
	Name   string
	Active bool
	Href   string
}

// EndpointCard is an endpoint as shown on the page.
type EndpointCard struct {
	domain.Endpoint
	Path       string
	Anchor     string
	Badge      string
	Expanded   bool
	ToggleHref string
}

// CategorySection is a category as shown on the page.
type CategorySection struct {
	ID          string
	Name        string
	Description string
	Color       string
	Anchor      string
	Active      bool
	Endpoints   []EndpointCard
}

// Page is everything the page template needs.
type Page struct {
	Document     domain.Document
	Query        string
	Open         []string
	Active       string
	Searching    bool
	Total        int
	Sidebar      []SidebarEntry
	Sections     []CategorySection
	HeaderOffset int
	ClearHref    string
}

// NewPage builds the page model for state over the full category list.
// The sidebar always lists every category; sections show the filtered view.
func NewPage(doc domain.Document, categories []domain.Category, state *State, headerOffset int) *Page {
	if state == nil {
		state = NewState()
	}

	filtered := search.Filter(categories, state.Query)
	page := &Page{
		Document:     doc,
		Query:        state.Query,
		Open:         state.Expanded(),
		Active:       state.Active,
		Searching:    state.Searching(),
		Total:        search.Count(filtered),
		HeaderOffset: headerOffset,
		ClearHref:    (&State{Active: state.Active}).Href(""),
	}

	page.Sidebar = make([]SidebarEntry, 0, len(categories))
	for _, c := range categories {
		page.Sidebar = append(page.Sidebar, SidebarEntry{
			ID:     c.ID,
			Name:   c.Name,
			Active: c.ID == state.Active,
			Href:   state.CategoryHref(c.ID),
		})
	}

	page.Sections = make([]CategorySection, 0, len(filtered))
	for _, c := range filtered {
		section := CategorySection{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Color:       c.Color,
			Anchor:      CategoryAnchor(c.ID),
			Active:      c.ID == state.Active,
			Endpoints:   make([]EndpointCard, 0, len(c.Endpoints)),
		}
		for _, e := range c.Endpoints {
			section.Endpoints = append(section.Endpoints, EndpointCard{
				Endpoint:   e,
				Path:       e.Endpoint,
				Anchor:     EndpointAnchor(e.ID),
				Badge:      MethodBadge(e.Method),
				Expanded:   state.IsExpanded(e.ID),
				ToggleHref: state.ToggleHref(e.ID),
			})
		}
		page.Sections = append(page.Sections, section)
	}

	return page
}

// Empty reports whether a search matched nothing.
func (p *Page) Empty() bool {
	return p.Searching && len(p.Sections) == 0
}

// Banner is the search summary line, or "" when not searching.
func (p *Page) Banner() string {
	if !p.Searching {
		return ""
	}
	noun := "endpoints"
	if p.Total == 1 {
		noun = "endpoint"
	}
	return fmt.Sprintf("Found %d %s matching \"%s\"", p.Total, noun, p.Query)
}
