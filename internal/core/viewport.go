package core

// Viewport maps between a logical playfield and a grid of cells.
type Viewport struct {
	FieldW, FieldH int // Playfield size in logical units
	Cols, Rows     int // Grid size in cells
}

// ToCell returns the cell that contains playfield position p.
func (v Viewport) ToCell(p Vec) Point {
	if v.FieldW <= 0 || v.FieldH <= 0 {
		return Point{}
	}
	return Point{
		X: int(p.X * float64(v.Cols) / float64(v.FieldW)),
		Y: int(p.Y * float64(v.Rows) / float64(v.FieldH)),
	}
}

// ToField returns the playfield point at the center of cell c.
func (v Viewport) ToField(c Point) Point {
	if v.Cols <= 0 || v.Rows <= 0 {
		return Point{}
	}
	return Point{
		X: int((float64(c.X) + 0.5) * float64(v.FieldW) / float64(v.Cols)),
		Y: int((float64(c.Y) + 0.5) * float64(v.FieldH) / float64(v.Rows)),
	}
}
