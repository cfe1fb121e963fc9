package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a percentage in
// 0..100. Green from 66%, yellow from 33%, red below.
func RenderProgress(pct int, width int) string {
	return fmt.Sprintf("[%s] %3d%%", RenderCompactBar(pct, width), clampPct(pct))
}

// RenderCompactBar is the colored bar alone.
func RenderCompactBar(pct int, width int) string {
	pct = clampPct(pct)
	width = max(width, 2)
	filled := pct * width / 100

	style := StyleGreen
	switch {
	case pct < 33:
		style = StyleRed
	case pct < 66:
		style = StyleYellow
	}
	return style.Render(strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled))
}

func clampPct(pct int) int {
	return min(max(pct, 0), 100)
}
