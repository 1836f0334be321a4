package cloch

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/cloch-fhada/internal/core"
)

// Layout constants for the terminal renderer.
const (
	cellW      = 2               // Screen columns per board cell
	boardBoxW  = Width*cellW + 2 // Board plus frame
	boardBoxH  = Height + 2      // Board plus frame
	panelW     = 26              // Stats/controls column
	legendW    = 30              // Optional legend column
	minScreenW = boardBoxW + panelW + 2
	minScreenH = boardBoxH + 1 // Title row
)

var printer = message.NewPrinter(language.English)

// FormatScore renders a score with thousands separators.
func FormatScore(n int) string {
	return printer.Sprintf("%d", n)
}

// MinScreenSize returns the smallest screen the renderer can draw on.
func MinScreenSize() (int, int) {
	return minScreenW, minScreenH
}

// Render draws the session into dst: title, board with the falling piece,
// stats, current piece, controls and the status message. A legend column
// is added when the screen is wide enough.
func Render(dst *core.Screen, s Session) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorAmber)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorStone)
		return
	}

	total := boardBoxW + 1 + panelW
	if dst.Width() >= total+legendW+1 {
		total += legendW + 1
	}
	x0 := core.Clamp((dst.Width()-total)/2, 0, dst.Width())

	dst.DrawTextCentered(0, "CLOCH FHADA · Celtic Stone Puzzle", core.ColorAmber)

	renderBoard(dst, s, x0, 1)
	renderPanel(dst, s, x0+boardBoxW+1, 1)
	if total > boardBoxW+1+panelW {
		renderLegend(dst, x0+boardBoxW+1+panelW+1, 1)
	}
}

func renderBoard(dst *core.Screen, s Session, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, boardBoxW, boardBoxH), core.ColorAmber)

	display := s.DisplayBoard()
	for y := range Height {
		for x := range Width {
			sx := x0 + 1 + x*cellW
			sy := y0 + 1 + y
			k := display[y][x]
			if k == KindNone {
				dst.SetCell(sx, sy, ' ', core.ColorStone)
				dst.SetCell(sx+1, sy, '·', core.ColorStone)
				continue
			}
			dst.SetCell(sx, sy, '█', k.Color())
			dst.SetCell(sx+1, sy, '█', k.Color())
		}
	}

	// Overlay messages sit in the middle of the well.
	mid := y0 + boardBoxH/2
	switch s.Status {
	case StatusIdle:
		drawInBox(dst, x0, mid-1, "Press Enter", core.ColorEmerald)
		drawInBox(dst, x0, mid, "to Start Game", core.ColorEmerald)
	case StatusPaused:
		drawInBox(dst, x0, mid-1, "Paused", core.ColorAmber)
		drawInBox(dst, x0, mid, "The ritual is", core.ColorAmber)
		drawInBox(dst, x0, mid+1, "on hold...", core.ColorAmber)
	case StatusGameOver:
		drawInBox(dst, x0, mid-2, "Game Over!", core.ColorRed)
		drawInBox(dst, x0, mid-1, "The ancient stones", core.ColorRed)
		drawInBox(dst, x0, mid, "have fallen...", core.ColorRed)
		drawInBox(dst, x0, mid+2, "Enter: New Game", core.ColorEmerald)
	}
}

// drawInBox centers text horizontally inside the board frame.
func drawInBox(dst *core.Screen, x0, y int, text string, c core.Color) {
	n := len([]rune(text))
	x := x0 + (boardBoxW-n)/2
	dst.DrawTextColor(x, y, text, c)
}

func renderPanel(dst *core.Screen, s Session, x0, y0 int) {
	y := y0
	dst.DrawTextColor(x0, y, "Scór", core.ColorAmber)
	y++
	dst.DrawTextColor(x0, y, "Score: ", core.ColorEmerald)
	dst.DrawText(x0+8, y, FormatScore(s.Score))
	y++
	dst.DrawTextColor(x0, y, "Level: ", core.ColorEmerald)
	dst.DrawText(x0+8, y, fmt.Sprintf("%d", s.Level))
	y++
	dst.DrawTextColor(x0, y, "Lines: ", core.ColorEmerald)
	dst.DrawText(x0+8, y, fmt.Sprintf("%d", s.Lines))
	y += 2

	dst.DrawTextColor(x0, y, "Current Piece", core.ColorAmber)
	y++
	if s.Active != nil {
		info := s.Active.Kind.Info()
		dst.DrawTextColor(x0, y, "["+info.Name+"]", core.ColorEmerald)
		y++
		sh := s.Active.Shape
		for r := range sh.Rows() {
			for c := range sh.Cols() {
				if sh.Filled(r, c) {
					dst.SetCell(x0+c*cellW, y+r, '█', info.Color)
					dst.SetCell(x0+c*cellW+1, y+r, '█', info.Color)
				}
			}
		}
	} else {
		dst.DrawTextColor(x0, y, "-", core.ColorStone)
	}
	// Tallest orientation is the vertical Spear.
	y = y0 + 11

	dst.DrawTextColor(x0, y, "Controls", core.ColorAmber)
	y++
	for _, line := range []string{
		"←/→      Move",
		"↓        Soft Drop",
		"↑/Space  Rotate",
		"P        Pause",
		"Enter    New Game",
		"Q        Quit",
	} {
		dst.DrawText(x0, y, line)
		y++
	}
	y++

	if s.Status == StatusGameOver {
		dst.DrawTextColor(x0, y, "Final Score: "+FormatScore(s.Score), core.ColorRed)
	}
}

func renderLegend(dst *core.Screen, x0, y0 int) {
	dst.DrawTextColor(x0, y0, "Legend", core.ColorAmber)
	for i, k := range Kinds {
		info := k.Info()
		y := y0 + 1 + i
		dst.SetCell(x0, y, '█', info.Color)
		dst.SetCell(x0+1, y, '█', info.Color)
		dst.DrawText(x0+3, y, info.Name)
		dst.DrawTextColor(x0+3+len(info.Name), y, " - "+info.Motto, core.ColorStone)
	}
}
