package cloch

import "github.com/vovakirdan/cloch-fhada/internal/core"

// CanPlace reports whether the piece fits at pos: every occupied shape cell
// must be on the board and land on a free cell. Empty shape cells are not
// checked, so they may hang outside the board.
func CanPlace(p Piece, pos core.Point, b Board) bool {
	for _, off := range p.Shape.Offsets() {
		if !b.IsCellFree(pos.X+off.X, pos.Y+off.Y) {
			return false
		}
	}
	return true
}
