package view

// DefaultHeaderOffset is the height in pixels reserved for the sticky page
// header when deciding which category is in view.
const DefaultHeaderOffset = 100

// Section is the rendered geometry of one category section, in document
// coordinates.
type Section struct {
	CategoryID string
	Top        float64
	Height     float64
}

// Contains reports whether y falls in [Top, Top+Height).
func (s Section) Contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Viewport reports scroll position and section layout.
type Viewport interface {
	ScrollY() float64
	Sections() []Section
}

// StaticViewport is a Viewport with fixed values.
type StaticViewport struct {
	Y      float64
	Layout []Section
}

// ScrollY implements Viewport.
func (v StaticViewport) ScrollY() float64 { return v.Y }

// Sections implements Viewport.
func (v StaticViewport) Sections() []Section { return v.Layout }

// ActiveSection returns the first section, in order, that contains
// scrollY+offset. The track function in templates/page.html applies the
// same rule in the browser; change both together.
func ActiveSection(sections []Section, scrollY, offset float64) (string, bool) {
	probe := scrollY + offset
	for _, s := range sections {
		if s.Contains(probe) {
			return s.CategoryID, true
		}
	}
	return "", false
}

// ScrollTarget returns the scroll position that brings the category's
// section just below the header. The sidebar click handler in
// templates/page.html computes the same top-offset.
func ScrollTarget(sections []Section, categoryID string, offset float64) (float64, bool) {
	for _, s := range sections {
		if s.CategoryID == categoryID {
			return s.Top - offset, true
		}
	}
	return 0, false
}

// Track updates the active category from the viewport. When no section
// contains the probe point the active category is left as it was.
// It reports whether the active category changed.
func (s *State) Track(v Viewport, offset float64) bool {
	id, ok := ActiveSection(v.Sections(), v.ScrollY(), offset)
	if !ok || id == s.Active {
		return false
	}
	s.Active = id
	return true
}

// SelectCategory makes id the active category and returns the scroll
// position for its section. ok is false when the viewport has no section
// for id; the active category is still updated.
func (s *State) SelectCategory(id string, v Viewport, offset float64) (target float64, ok bool) {
	s.SetActive(id)
	return ScrollTarget(v.Sections(), id, offset)
}
