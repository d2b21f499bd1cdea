package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View renders the panel box and records its dimensions; the recorded box
// is what interaction starts and reconciliation passes measure against.
// The drop shadow fringe is drawn outside the box and is not part of the
// measured geometry.
func (p *Panel) View() string {
	st := lipgloss.NewStyle().Background(p.resolved.Background)
	frame := 0
	if p.resolved.BorderWidth > 0 {
		st = st.
			Border(p.resolved.Border).
			BorderForeground(p.resolved.BorderForeground).
			BorderBackground(p.resolved.Background)
		frame = 2
	}

	if w, ok := p.geo.Size.Width.Fixed(); ok {
		st = st.Width(max(w-frame, 0))
	} else if p.geo.Size.Width.IsFull() {
		st = st.Width(max(p.vp.Width-frame, 0))
	}
	if h, ok := p.geo.Size.Height.Fixed(); ok {
		st = st.Height(max(h-frame, 0))
	} else if p.geo.Size.Height.IsFull() {
		st = st.Height(max(p.vp.Height-frame, 0))
	}

	block := st.Render(p.body())
	p.renderedW = lipgloss.Width(block)
	p.renderedH = lipgloss.Height(block)

	if !p.resolved.Shadow.None() {
		block = p.addShadow(block)
	}
	return block
}

// body assembles the title bar and content. The title row doubles as the
// drag affordance label; it is truncated, never wrapped.
func (p *Panel) body() string {
	if p.cfg.Title == "" {
		return p.content
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Background(p.resolved.Background).
		Render(p.titleText())
	if p.content == "" {
		return title
	}
	return title + "\n" + p.content
}

func (p *Panel) titleText() string {
	if w, ok := p.geo.Size.Width.Fixed(); ok {
		return runewidth.Truncate(p.cfg.Title, max(w-2, 1), "…")
	}
	return p.cfg.Title
}

// addShadow appends a dim fringe along the right and bottom edges. The
// first shadow layer's offsets decide the fringe direction; terminal cells
// cap the offset at one cell each way.
func (p *Panel) addShadow(block string) string {
	layer := p.resolved.Shadow.Layers[0]
	right := layer.OffsetX >= 0
	down := layer.OffsetY >= 0
	if !right && !down {
		return block
	}

	sh := lipgloss.NewStyle().Foreground(p.resolved.ShadowColor)
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)

	if right {
		for i := range lines {
			if i == 0 {
				lines[i] += " "
			} else {
				lines[i] += sh.Render("▒")
			}
		}
	}
	if down {
		bottom := " " + sh.Render(strings.Repeat("▒", width))
		lines = append(lines, bottom)
	}
	return strings.Join(lines, "\n")
}
