package portfolio

// Fixed layout metrics in px.
const (
	NavHeight      = 60.0
	maxContent     = 1000.0
	minMargin      = 40.0
	skillRowHeight = 56.0
	cardHeight     = 200.0
	cardGap        = 24.0
	minCardW       = 340.0
	sectionPad     = 48.0 // Space kept below a section's last element
	buttonWidth    = 100.0
	buttonHeight   = 32.0
	buttonGap      = 10.0
	inputHeight    = 36.0
)

// ContactLayout places the contact form controls.
type ContactLayout struct {
	Name, Email, Message Rect
	Submit               Rect
	Status               Rect
}

// PageLayout is the page laid out for one window size. Section, skill,
// card, and contact rectangles are in page coordinates; nav, top button,
// and theme button rectangles are in window coordinates.
type PageLayout struct {
	Width    float64
	Margin   float64
	ContentW float64
	Height   float64

	Sections map[string]Rect
	Hero     Point // Baseline of the name in the hero section
	Skills   []Rect
	Filters  []Rect
	Cards    []Rect // By project index; zero Rect when filtered out
	Contact  ContactLayout
	Placed   []Section // Sections at their laid-out offsets and heights

	NavLinks    []Rect
	MenuButton  Rect
	ThemeButton Rect
	TopButton   Rect
	Compact     bool // Narrow window: nav links collapse into the menu
}

// Layout arranges content for a width×height window. filter decides which
// project cards get a slot; nil shows every card. A section whose content
// runs past its configured height grows, and the sections below it move
// down by the same amount.
func Layout(c Content, filter *ProjectFilter, width, height float64) PageLayout {
	l := PageLayout{
		Width:    width,
		Margin:   minMargin,
		Sections: make(map[string]Rect, len(c.Sections)),
		Cards:    make([]Rect, len(c.Projects)),
	}
	if width-2*minMargin > maxContent {
		l.Margin = (width - maxContent) / 2
	}
	l.ContentW = max(0, width-2*l.Margin)

	shift := 0.0
	for _, s := range c.Sections {
		top := s.Offset + shift
		bottom := top
		switch s.ID {
		case "home":
			l.Hero = Point{X: l.Margin, Y: top + s.Height*0.4}
		case "skills":
			bottom = l.placeSkills(c, top)
		case "projects":
			bottom = l.placeProjects(c, filter, top)
		case "contact":
			bottom = l.placeContact(top)
		}

		h := s.Height
		if need := bottom + sectionPad - top; need > h {
			shift += need - h
			h = need
		}
		l.Sections[s.ID] = Rect{X: l.Margin, Y: top, W: l.ContentW, H: h}
		l.Placed = append(l.Placed, Section{ID: s.ID, Title: s.Title, Offset: top, Height: h})
		l.Height = top + h
	}

	l.Compact = width < 800
	right := width - l.Margin
	l.ThemeButton = Rect{X: right - 40, Y: 14, W: 32, H: 32}
	right -= 50
	if l.Compact {
		l.MenuButton = Rect{X: right - 40, Y: 14, W: 32, H: 32}
		for i := range c.Sections {
			l.NavLinks = append(l.NavLinks, Rect{
				X: width - 220,
				Y: NavHeight + float64(i)*40,
				W: 220,
				H: 40,
			})
		}
	} else {
		const linkW = 96.0
		start := right - float64(len(c.Sections))*linkW
		for i := range c.Sections {
			l.NavLinks = append(l.NavLinks, Rect{X: start + float64(i)*linkW, Y: 14, W: linkW, H: 32})
		}
	}
	l.TopButton = Rect{X: width - 70, Y: height - 70, W: 44, H: 44}
	return l
}

// placeSkills lays out one bar per skill and returns the bottom edge.
func (l *PageLayout) placeSkills(c Content, top float64) float64 {
	bottom := top
	for i := range c.Skills {
		r := Rect{X: l.Margin, Y: top + 110 + float64(i)*skillRowHeight, W: l.ContentW, H: 12}
		l.Skills = append(l.Skills, r)
		bottom = r.Y + r.H
	}
	return bottom
}

// CardColumns returns how many cards fit side by side in contentW.
func CardColumns(contentW float64) int {
	return max(1, int((contentW+cardGap)/(minCardW+cardGap)))
}

// placeProjects lays out the filter buttons and the visible cards and
// returns the bottom edge.
func (l *PageLayout) placeProjects(c Content, filter *ProjectFilter, top float64) float64 {
	y := top + 90
	bottom := y
	for i := range c.Filters {
		r := Rect{X: l.Margin + float64(i)*(buttonWidth+buttonGap), Y: y, W: buttonWidth, H: buttonHeight}
		l.Filters = append(l.Filters, r)
		bottom = y + buttonHeight
	}

	cols := CardColumns(l.ContentW)
	cw := (l.ContentW - float64(cols-1)*cardGap) / float64(cols)
	slot := 0
	for i := range c.Projects {
		if filter != nil && !filter.Visible(i) {
			continue
		}
		col, row := slot%cols, slot/cols
		l.Cards[i] = Rect{
			X: l.Margin + float64(col)*(cw+cardGap),
			Y: y + buttonHeight + 30 + float64(row)*(cardHeight+cardGap),
			W: cw,
			H: cardHeight,
		}
		bottom = max(bottom, l.Cards[i].Y+cardHeight)
		slot++
	}
	return bottom
}

// placeContact lays out the form and returns the bottom edge.
func (l *PageLayout) placeContact(top float64) float64 {
	fw := min(l.ContentW, 600)
	y := top + 100
	l.Contact = ContactLayout{
		Name:    Rect{X: l.Margin, Y: y, W: fw, H: inputHeight},
		Email:   Rect{X: l.Margin, Y: y + 70, W: fw, H: inputHeight},
		Message: Rect{X: l.Margin, Y: y + 140, W: fw, H: 120},
		Submit:  Rect{X: l.Margin, Y: y + 290, W: 160, H: 40},
		Status:  Rect{X: l.Margin, Y: y + 345, W: fw, H: 24},
	}
	return l.Contact.Status.Y + l.Contact.Status.H
}

// CardAt returns the index of the card under page point (x, y), or -1.
func (l PageLayout) CardAt(x, y float64) int {
	for i, r := range l.Cards {
		if r.W > 0 && r.Contains(x, y) {
			return i
		}
	}
	return -1
}
