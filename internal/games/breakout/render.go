package breakout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// BrickPalette colours bricks by row, cycling when there are more rows.
var BrickPalette = []core.Color{
	core.ColorBrightRed,
	core.ColorRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
}

const (
	paddleColor = core.ColorBrightMagenta
	ballColor   = core.ColorOrange
	borderColor = core.ColorGray
	hudColor    = core.ColorBrightWhite
)

// layout maps canvas units onto screen cells.
// Row 0 holds the HUD; the canvas is drawn inside a border below it.
type layout struct {
	area   core.Rect // interior cells covered by the canvas
	sx, sy float64   // cells per canvas unit
}

func newLayout(screenW, screenH int, canvas config.BreakoutCanvas) layout {
	area := core.NewRect(1, 2, max(screenW-2, 0), max(screenH-3, 0))
	return layout{
		area: area,
		sx:   float64(area.W) / canvas.Width,
		sy:   float64(area.H) / canvas.Height,
	}
}

// cell returns the screen cell containing a canvas point.
func (l layout) cell(x, y float64) (col, row int) {
	return l.area.X + int(math.Floor(x*l.sx)), l.area.Y + int(math.Floor(y*l.sy))
}

// span returns the half-open cell range [from, to) covering a canvas segment.
// A segment always covers at least one cell.
func span(origin int, start, length, scale float64) (from, to int) {
	from = origin + int(math.Round(start*scale))
	to = origin + int(math.Round((start+length)*scale))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// canvasX converts a screen column into the canvas X at the column centre.
func (l layout) canvasX(col int) float64 {
	return (float64(col-l.area.X) + 0.5) / l.sx
}

// fill paints a canvas rectangle, clipped to the play area.
func (l layout) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	y0, y1 := span(l.area.Y, b.Y, b.H, l.sy)
	l.fillRows(dst, b, y0, y1, r, c)
}

// fillRows paints the columns of b over screen rows [y0, y1).
func (l layout) fillRows(dst *core.Screen, b core.Box, y0, y1 int, r rune, c core.Color) {
	x0, x1 := span(l.area.X, b.X, b.W, l.sx)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if l.area.Contains(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

// brickRows maps every brick row to its own screen rows. When the canvas is
// scaled so far down that rows would share a cell, later rows are pushed
// below the previous one.
func (l layout) brickRows(s *State, cols int) [][2]int {
	if cols <= 0 || len(s.Bricks) == 0 {
		return nil
	}
	rows := make([][2]int, (len(s.Bricks)+cols-1)/cols)
	next := l.area.Y
	for row := range rows {
		b := s.Bricks[row*cols]
		y0, y1 := span(l.area.Y, b.Y, b.Height, l.sy)
		if y0 < next {
			y1 += next - y0
			y0 = next
		}
		rows[row] = [2]int{y0, y1}
		next = y1
	}
	return rows
}

// renderState paints a state. It only reads s.
func renderState(dst *core.Screen, s *State, l layout, cols int, paused bool) {
	renderHUD(dst, s)
	dst.DrawBox(core.NewRect(l.area.X-1, l.area.Y-1, l.area.W+2, l.area.H+2), borderColor)

	rows := l.brickRows(s, cols)
	for i, brick := range s.Bricks {
		if !brick.Alive {
			continue
		}
		row := i / cols
		l.fillRows(dst, brick.Box(), rows[row][0], rows[row][1], BrickChar, BrickPalette[row%len(BrickPalette)])
	}

	l.fill(dst, s.Paddle.Box(), PaddleChar, paddleColor)

	if x, y := l.cell(s.Ball.X, s.Ball.Y); l.area.Contains(x, y) {
		dst.SetColored(x, y, BallChar, ballColor)
	}

	renderOverlay(dst, s, paused)
}

// renderHUD draws the score and brick count on the top row.
func renderHUD(dst *core.Screen, s *State) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), hudColor)

	bricks := fmt.Sprintf("Bricks: %d/%d", s.AliveBricks(), len(s.Bricks))
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(bricks)-1, 0, bricks, hudColor)
}

// renderOverlay dims the scene and draws a status box for every status but Playing.
func renderOverlay(dst *core.Screen, s *State, paused bool) {
	var title, subtitle string
	switch {
	case s.Status == StatusIdle:
		title, subtitle = "BREAKOUT", "Press SPACE or click to start"
	case s.Status == StatusWon:
		title, subtitle = "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", s.Score)
	case s.Status == StatusLost:
		title, subtitle = "GAME OVER", fmt.Sprintf("Final Score: %d  |  Press R to restart", s.Score)
	case paused:
		title, subtitle = "PAUSED", "Press P to resume"
	default:
		return
	}
	dst.Tint(core.ColorGray)
	drawCenteredBox(dst, title, subtitle)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, hudColor)
	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, hudColor)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
