// Package interaction owns the pointer state machine that turns normalized
// pointer events into geometry updates. It is transport-agnostic: hosts map
// their input source (bubbletea mouse messages, touch streams) into Event
// records at ingress and feed them in; the machine drives the geometry
// resolvers and hands results back through a callback.
package interaction

import "github.com/jmallory/floatpane/pkg/geometry"

// Event is a normalized pointer event. Coordinates are in viewport cells.
type Event struct {
	X, Y   int
	Target Target
	// Touch marks touch-originated input, which defers drag entry behind
	// the hold timer.
	Touch bool
}

// Target describes what sat under the pointer at press time, so embedded
// controls keep receiving their own clicks instead of starting a drag.
type Target struct {
	Tag       string   // control tag: "input", "button", ...; empty for passive content
	Editable  bool     // editable content counts as interactive
	Ancestors []string // enclosing control tags, innermost first
}

// interactiveTags are the controls that swallow drag starts.
var interactiveTags = map[string]bool{
	"input":    true,
	"textarea": true,
	"button":   true,
	"select":   true,
	"a":        true,
}

// nestedTags reject a drag even when the press lands on passive content
// inside them.
var nestedTags = map[string]bool{
	"a":      true,
	"button": true,
}

// Interactive reports whether a drag started on this target must be
// rejected.
func (t Target) Interactive() bool {
	if t.Editable || interactiveTags[t.Tag] {
		return true
	}
	for _, tag := range t.Ancestors {
		if nestedTags[tag] {
			return true
		}
	}
	return false
}

// Kind identifies what a session manipulates: the panel position (drag) or
// one of the eight resize grips.
type Kind struct {
	resize bool
	dir    geometry.Direction
}

// Drag is the position-moving interaction kind.
var Drag = Kind{}

// Resize returns the interaction kind for the given grip direction.
func Resize(dir geometry.Direction) Kind {
	return Kind{resize: true, dir: dir}
}

// IsDrag reports whether the kind moves the panel.
func (k Kind) IsDrag() bool { return !k.resize }

// Dir returns the resize grip direction; meaningful only when !IsDrag().
func (k Kind) Dir() geometry.Direction { return k.dir }

func (k Kind) String() string {
	if k.IsDrag() {
		return "drag"
	}
	return "resize-" + k.dir.String()
}
