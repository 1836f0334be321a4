package cloch

import (
	"github.com/vovakirdan/cloch-fhada/internal/core"
)

// Kind identifies one of the seven standing-stone pieces.
// KindNone marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every playable kind in catalog order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// PieceInfo is the static catalog entry for a kind.
type PieceInfo struct {
	Kind  Kind
	Name  string     // Celtic name shown in the HUD
	Motto string     // Legend text
	Color core.Color // Display tag
	shape Shape
}

var catalog = map[Kind]PieceInfo{
	KindI: {
		Kind: KindI, Name: "Spear", Motto: "Swift and straight", Color: core.ColorEmerald,
		shape: Shape{{1, 1, 1, 1}},
	},
	KindO: {
		Kind: KindO, Name: "Shield", Motto: "Strong foundation", Color: core.ColorAmber,
		shape: Shape{{1, 1}, {1, 1}},
	},
	KindT: {
		Kind: KindT, Name: "Triskele", Motto: "Sacred symbol", Color: core.ColorPurple,
		shape: Shape{{0, 1, 0}, {1, 1, 1}},
	},
	KindS: {
		Kind: KindS, Name: "Serpent", Motto: "Winding path", Color: core.ColorGreen,
		shape: Shape{{0, 1, 1}, {1, 1, 0}},
	},
	KindZ: {
		Kind: KindZ, Name: "Lightning", Motto: "Storm's fury", Color: core.ColorRed,
		shape: Shape{{1, 1, 0}, {0, 1, 1}},
	},
	KindJ: {
		Kind: KindJ, Name: "Crook", Motto: "Shepherd's tool", Color: core.ColorBlue,
		shape: Shape{{1, 0, 0}, {1, 1, 1}},
	},
	KindL: {
		Kind: KindL, Name: "Flail", Motto: "Harvest's end", Color: core.ColorOrange,
		shape: Shape{{0, 0, 1}, {1, 1, 1}},
	},
}

// Info returns the catalog entry. KindNone and unknown kinds yield a zero entry.
func (k Kind) Info() PieceInfo {
	return catalog[k]
}

// Shape returns a copy of the canonical orientation.
func (k Kind) Shape() Shape {
	return catalog[k].shape.Clone()
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	return catalog[k].Color
}

// String returns the identity letter, or "." for an empty cell.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "."
	}
}

// ParseKind maps an identity letter back to its kind.
func ParseKind(r rune) Kind {
	for _, k := range Kinds {
		if rune(k.String()[0]) == r {
			return k
		}
	}
	return KindNone
}

// Shape is a rectangular 0/1 matrix, row-major.
// Shapes are treated as immutable once built.
type Shape [][]uint8

// Rows returns the matrix height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the matrix width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Filled reports whether the cell at row r, column c is occupied.
func (s Shape) Filled(r, c int) bool {
	return s[r][c] != 0
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// Rotate returns the shape turned 90° clockwise: an R×C matrix becomes
// C×R with new[i][j] = old[R-1-j][i].
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := range cols {
		out[i] = make([]uint8, rows)
		for j := range rows {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Offsets returns the (dx, dy) of every occupied cell.
func (s Shape) Offsets() []core.Point {
	var out []core.Point
	for dy, row := range s {
		for dx, cell := range row {
			if cell != 0 {
				out = append(out, core.Point{X: dx, Y: dy})
			}
		}
	}
	return out
}

// Piece is a kind paired with its current orientation.
// Rotation replaces the shape; the kind never changes.
type Piece struct {
	Kind  Kind
	Shape Shape
}

// NewPiece returns the kind in its canonical orientation.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Shape: k.Shape()}
}

// Rotated returns the piece turned clockwise.
func (p Piece) Rotated() Piece {
	return Piece{Kind: p.Kind, Shape: p.Shape.Rotate()}
}
