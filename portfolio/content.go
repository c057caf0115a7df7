// Package portfolio holds the page content model and the independent
// controllers behind the interactive page: project filter, navigation,
// card tilt, visibility tracking, reveal animations, and the theme toggle.
//
// Each controller owns only the state it is handed; none of them draws.
package portfolio

import (
	"strings"

	"github.com/devakorn/portfolio/config"
)

// Project is one project card.
type Project struct {
	Title    string
	Category string
	Tags     []string
}

// Skill is one skill bar.
type Skill struct {
	Name  string
	Level int // 0-100
}

// Section is one page section laid out top to bottom.
type Section struct {
	ID     string
	Title  string
	Offset float64 // Top edge in page px
	Height float64
}

// Content is the whole page content.
type Content struct {
	Name     string
	Tagline  string
	About    string
	Sections []Section
	Projects []Project
	Skills   []Skill
	Filters  []string
}

// ContentFrom builds the page content from a loaded config.
func ContentFrom(cfg *config.Config) Content {
	c := Content{
		Name:    cfg.Content.Name,
		Tagline: cfg.Content.Tagline,
		About:   cfg.Content.About,
		Filters: append([]string(nil), cfg.Content.Filters...),
	}
	for _, s := range cfg.Content.Sections {
		c.Sections = append(c.Sections, Section{
			ID:     s.ID,
			Title:  s.Title,
			Offset: cfg.Derived.SectionOffset[s.ID],
			Height: s.Height,
		})
	}
	for _, p := range cfg.Content.Projects {
		c.Projects = append(c.Projects, Project{
			Title:    p.Title,
			Category: strings.ToLower(p.Category),
			Tags:     append([]string(nil), p.Tags...),
		})
	}
	for _, s := range cfg.Content.Skills {
		c.Skills = append(c.Skills, Skill{Name: s.Name, Level: clampLevel(s.Level)})
	}
	return c
}

// Section returns the section with the given id.
func (c Content) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// PageHeight returns the bottom edge of the last section.
func (c Content) PageHeight() float64 {
	if len(c.Sections) == 0 {
		return 0
	}
	last := c.Sections[len(c.Sections)-1]
	return last.Offset + last.Height
}

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
