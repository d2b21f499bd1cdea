package panel

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay splices a rendered block over a base view at cell position
// (x, y). Both strings may carry ANSI styling; rows of the base outside the
// block pass through untouched. Rows of the block that fall outside the
// base are dropped, matching a panel part-way off an unconfined viewport.
func Overlay(base, block string, x, y int) string {
	if block == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], line, x)
	}
	return strings.Join(baseLines, "\n")
}

func spliceLine(base, over string, x int) string {
	if x < 0 {
		over = ansi.TruncateLeft(over, -x, "")
		x = 0
	}
	overW := ansi.StringWidth(over)
	if overW == 0 {
		return base
	}

	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+overW, "")
	return left + over + right
}
