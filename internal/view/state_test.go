package view

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	s := NewState()

	assert.True(t, s.Toggle("create-patient"))
	assert.True(t, s.IsExpanded("create-patient"))

	assert.False(t, s.Toggle("create-patient"))
	assert.False(t, s.IsExpanded("create-patient"))
	assert.Empty(t, s.Expanded())
}

func TestToggleIsInvolution(t *testing.T) {
	s := NewState()
	s.Toggle("a")
	s.Toggle("b")
	before := s.Expanded()

	for _, id := range []string{"a", "c", "zz"} {
		s.Toggle(id)
		s.Toggle(id)
		assert.Equal(t, before, s.Expanded(), "toggling %q twice", id)
	}
}

func TestMultipleExpanded(t *testing.T) {
	var s State
	s.Toggle("pix-a40")
	s.Toggle("get-patient")
	s.Toggle("xca-query")

	assert.Equal(t, []string{"get-patient", "pix-a40", "xca-query"}, s.Expanded())
}

func TestCloneIsIndependent(t *testing.T) {
	s := &State{Query: "merge", Active: "pix"}
	s.Toggle("pix-a40")

	c := s.Clone()
	c.Toggle("pix-a01")
	c.Query = "other"

	assert.Equal(t, []string{"pix-a40"}, s.Expanded())
	assert.Equal(t, "merge", s.Query)
	assert.Equal(t, []string{"pix-a01", "pix-a40"}, c.Expanded())
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantQuery  string
		wantOpen   []string
		wantActive string
	}{
		{name: "empty", raw: "", wantOpen: []string{}},
		{name: "query only", raw: "q=a40", wantQuery: "a40", wantOpen: []string{}},
		{
			name:       "all fields",
			raw:        "q=GET&open=get-patient&open=get-provider&active=administrative",
			wantQuery:  "GET",
			wantOpen:   []string{"get-patient", "get-provider"},
			wantActive: "administrative",
		},
		{name: "duplicate and empty ids", raw: "open=x&open=&open=x", wantOpen: []string{"x"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.raw)
			require.NoError(t, err)

			s := FromQuery(values)
			assert.Equal(t, tc.wantQuery, s.Query)
			assert.Equal(t, tc.wantOpen, s.Expanded())
			assert.Equal(t, tc.wantActive, s.Active)
		})
	}
}

func TestValuesRoundTrip(t *testing.T) {
	s := &State{Query: "v2.x & more", Active: "pix"}
	s.Toggle("pix-a08")
	s.Toggle("pix-a01")

	back := FromQuery(s.Values())
	assert.Equal(t, s.Query, back.Query)
	assert.Equal(t, s.Active, back.Active)
	assert.Equal(t, s.Expanded(), back.Expanded())

	assert.Empty(t, NewState().Values())
}

func TestToggleHref(t *testing.T) {
	s := &State{Query: "a40"}

	href := s.ToggleHref("pix-a40")
	assert.Equal(t, "?open=pix-a40&q=a40#endpoint-pix-a40", href)
	assert.False(t, s.IsExpanded("pix-a40"), "link building must not change the state")

	s.Toggle("pix-a40")
	assert.Equal(t, "?q=a40#endpoint-pix-a40", s.ToggleHref("pix-a40"))
}

func TestCategoryHref(t *testing.T) {
	s := &State{Active: "pix"}
	assert.Equal(t, "?active=notifications#category-notifications", s.CategoryHref("notifications"))
	assert.Equal(t, "pix", s.Active)
}

func TestSearching(t *testing.T) {
	assert.False(t, (&State{}).Searching())
	assert.False(t, (&State{Query: " \t"}).Searching())
	assert.True(t, (&State{Query: "x"}).Searching())
}
