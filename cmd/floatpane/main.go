// Command floatpane is a demo host for the floating panel widget: two
// panels over a dotted backdrop, draggable by their body and resizable
// from the eight border grips. One panel embeds a text input to show drag
// rejection over interactive content. Pass -config to describe the panels
// in YAML and edit the file live.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jmallory/floatpane/pkg/config"
	"github.com/jmallory/floatpane/pkg/geometry"
	"github.com/jmallory/floatpane/pkg/panel"
	"github.com/jmallory/floatpane/pkg/style"
)

func main() {
	configPath := flag.String("config", "", "YAML panel configuration (watched for changes)")
	flag.Parse()

	var (
		configs []panel.Config
		cw      *config.Watcher
		err     error
	)
	if *configPath != "" {
		configs, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cw, err = config.Watch(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
			os.Exit(1)
		}
		defer cw.Close()
	} else {
		configs = defaultConfigs()
	}

	m := newModel(configs, cw)

	// Seed the viewport before the first WindowSizeMsg arrives so panels
	// are measurable from the first frame.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.resize(w, h)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running floatpane: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigs() []panel.Config {
	backdrop := style.ParseColor("gray-900").RGB
	return []panel.Config{
		{
			Title:     "scratch",
			X:         8,
			Y:         3,
			Width:     geometry.Cells(44),
			Height:    geometry.Cells(12),
			MinWidth:  28,
			MinHeight: 8,
			Confine:   true,
			Stacking:  2,
			Style: style.Tokens{
				Color:       "slate-800/70",
				Border:      "slate-500/40",
				Radius:      "lg",
				BorderWidth: 1,
				Shadow:      "xl/50",
				Blur:        "md",
			},
			Backdrop: backdrop,
		},
		{
			Title:    "palette",
			X:        40,
			Y:        10,
			Width:    geometry.Cells(30),
			Height:   geometry.Cells(9),
			MaxWidth: geometry.LimitCells(60),
			Confine:  true,
			Stacking: 1,
			Style: style.Tokens{
				Color:       "indigo-900/80",
				Border:      "indigo-400/40",
				Radius:      "xl",
				BorderWidth: 1,
				Shadow:      "lg/60",
				Saturation:  120,
			},
			Backdrop: backdrop,
		},
	}
}

// inputRow is the panel-relative row the text input occupies in the first
// panel: border, title, label, then the input line.
const inputRow = 3

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "type here, drag anywhere else"
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}
