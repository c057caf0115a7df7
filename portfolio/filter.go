package portfolio

import "strings"

// FilterAll shows every project.
const FilterAll = "all"

// ProjectFilter tracks the active filter button and which project cards it
// leaves visible.
type ProjectFilter struct {
	projects []Project
	buttons  []string
	active   string
	visible  []bool
}

// NewProjectFilter creates a filter with "all" active.
func NewProjectFilter(projects []Project, buttons []string) *ProjectFilter {
	f := &ProjectFilter{
		projects: projects,
		buttons:  buttons,
		visible:  make([]bool, len(projects)),
	}
	f.Select(FilterAll)
	return f
}

// Select activates a filter and returns the indices of visible projects.
// A project matches when the filter is "all", equals its category, or is
// contained in one of its tags (case-insensitive).
func (f *ProjectFilter) Select(filter string) []int {
	f.active = strings.ToLower(strings.TrimSpace(filter))
	if f.active == "" {
		f.active = FilterAll
	}

	var shown []int
	for i, p := range f.projects {
		f.visible[i] = Matches(p, f.active)
		if f.visible[i] {
			shown = append(shown, i)
		}
	}
	return shown
}

// Matches reports whether project p passes filter.
func Matches(p Project, filter string) bool {
	filter = strings.ToLower(filter)
	if filter == FilterAll || strings.ToLower(p.Category) == filter {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), filter) {
			return true
		}
	}
	return false
}

// Active returns the active filter.
func (f *ProjectFilter) Active() string {
	return f.active
}

// IsActive reports whether button is the pressed filter button.
func (f *ProjectFilter) IsActive(button string) bool {
	return strings.ToLower(button) == f.active
}

// Buttons returns the filter button labels.
func (f *ProjectFilter) Buttons() []string {
	return f.buttons
}

// Visible reports whether project i is currently shown.
func (f *ProjectFilter) Visible(i int) bool {
	return i >= 0 && i < len(f.visible) && f.visible[i]
}
