package view

import (
	"net/url"
	"sort"
	"strings"
)

// Query parameter names used to carry State in page links.
const (
	ParamQuery  = "q"
	ParamOpen   = "open"
	ParamActive = "active"
)

// State is the view state of the reference page.
// The zero value is an empty state with nothing expanded.
type State struct {
	Query  string
	Active string

	expanded map[string]struct{}
}

// NewState returns an empty State.
func NewState() *State {
	return &State{}
}

// Toggle flips whether the endpoint id is expanded and reports the new value.
// Toggling the same id twice restores the previous state.
func (s *State) Toggle(id string) bool {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
		return false
	}
	if s.expanded == nil {
		s.expanded = make(map[string]struct{})
	}
	s.expanded[id] = struct{}{}
	return true
}

// IsExpanded reports whether the endpoint id is expanded.
func (s *State) IsExpanded(id string) bool {
	_, ok := s.expanded[id]
	return ok
}

// Expanded returns the expanded endpoint ids in sorted order.
func (s *State) Expanded() []string {
	ids := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetActive records id as the active category.
func (s *State) SetActive(id string) {
	s.Active = id
}

// Searching reports whether the query holds anything besides whitespace.
func (s *State) Searching() bool {
	return strings.TrimSpace(s.Query) != ""
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := &State{Query: s.Query, Active: s.Active}
	if len(s.expanded) > 0 {
		c.expanded = make(map[string]struct{}, len(s.expanded))
		for id := range s.expanded {
			c.expanded[id] = struct{}{}
		}
	}
	return c
}

// FromQuery reads a State from URL query values. Empty ids are ignored.
func FromQuery(values url.Values) *State {
	s := &State{
		Query:  values.Get(ParamQuery),
		Active: values.Get(ParamActive),
	}
	for _, id := range values[ParamOpen] {
		if id == "" || s.IsExpanded(id) {
			continue
		}
		s.Toggle(id)
	}
	return s
}

// Values encodes s as URL query values. Empty fields are omitted.
func (s *State) Values() url.Values {
	values := url.Values{}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	for _, id := range s.Expanded() {
		values.Add(ParamOpen, id)
	}
	if s.Active != "" {
		values.Set(ParamActive, s.Active)
	}
	return values
}

// Href returns a relative link that reproduces s, anchored at fragment
// when fragment is non-empty.
func (s *State) Href(fragment string) string {
	href := "?" + s.Values().Encode()
	if fragment != "" {
		href += "#" + fragment
	}
	return href
}

// ToggleHref returns the link for the state after toggling endpoint id.
// s is left unchanged.
func (s *State) ToggleHref(id string) string {
	next := s.Clone()
	next.Toggle(id)
	return next.Href(EndpointAnchor(id))
}

// CategoryHref returns the link for the state with category id active.
func (s *State) CategoryHref(id string) string {
	next := s.Clone()
	next.SetActive(id)
	return next.Href(CategoryAnchor(id))
}

// CategoryAnchor is the element id of a category section.
func CategoryAnchor(id string) string {
	return "category-" + id
}

// EndpointAnchor is the element id of an endpoint card.
func EndpointAnchor(id string) string {
	return "endpoint-" + id
}
