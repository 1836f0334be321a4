package cloch

import (
	"strings"

	"github.com/vovakirdan/cloch-fhada/internal/config"
	"github.com/vovakirdan/cloch-fhada/internal/core"
)

// Board dimensions. They never change during a game.
const (
	Width  = config.BoardWidth
	Height = config.BoardHeight
)

// bounds is the board area as a rectangle.
var bounds = core.NewRect(0, 0, Width, Height)

// Board is the grid of locked cells, row 0 at the top.
// It is an array so that assignment copies it; every write
// operation returns a new board and leaves the receiver intact.
type Board [Height][Width]Kind

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return bounds.Contains(x, y)
}

// IsCellFree reports whether (x, y) is on the board and unoccupied.
func (b Board) IsCellFree(x, y int) bool {
	return InBounds(x, y) && b[y][x] == KindNone
}

// Place returns a copy of the board with every occupied cell of the piece
// written at pos. Cells that fall outside the board are skipped.
func (b Board) Place(p Piece, pos core.Point) Board {
	for _, off := range p.Shape.Offsets() {
		x, y := pos.X+off.X, pos.Y+off.Y
		if InBounds(x, y) {
			b[y][x] = p.Kind
		}
	}
	return b
}

// IsRowFull reports whether every cell of row y is occupied.
func (b Board) IsRowFull(y int) bool {
	for x := range Width {
		if b[y][x] == KindNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, keeps the remaining rows in order
// and inserts as many empty rows at the top. It returns the new board and
// the number of rows removed.
func (b Board) ClearFullRows() (Board, int) {
	var out Board
	write := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if b.IsRowFull(y) {
			continue
		}
		out[write] = b[y]
		write--
	}
	// Rows 0..write stay zero-valued, i.e. empty.
	return out, write + 1
}

// String renders the board as rows of kind letters, '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for y, row := range b.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row)
	}
	return sb.String()
}

// Rows returns one string per board row.
func (b Board) Rows() []string {
	rows := make([]string, Height)
	for y := range Height {
		var sb strings.Builder
		for x := range Width {
			sb.WriteString(b[y][x].String())
		}
		rows[y] = sb.String()
	}
	return rows
}

// ParseBoard builds a board from rows of kind letters; any other rune is
// treated as empty. Missing rows are filled from the top, so a short
// slice describes the bottom of the board. Extra rows and columns are
// ignored.
func ParseBoard(rows ...string) Board {
	var b Board
	if len(rows) > Height {
		rows = rows[len(rows)-Height:]
	}
	offset := Height - len(rows)
	for i, row := range rows {
		x := 0
		for _, r := range row {
			if x >= Width {
				break
			}
			b[offset+i][x] = ParseKind(r)
			x++
		}
	}
	return b
}
