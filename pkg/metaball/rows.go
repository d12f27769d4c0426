package metaball

// Rows renders coords as size text rows, using on for occupied cells and off
// for the rest. Coordinates outside the grid are ignored.
func Rows(coords []Coord, size int32, on, off byte) []string {
	if size <= 0 {
		return nil
	}
	cells := make([][]byte, size)
	for y := range cells {
		row := make([]byte, size)
		for x := range row {
			row[x] = off
		}
		cells[y] = row
	}
	for _, c := range coords {
		if c.X < 0 || c.Y < 0 || c.X >= size || c.Y >= size {
			continue
		}
		cells[c.Y][c.X] = on
	}
	rows := make([]string, size)
	for y, row := range cells {
		rows[y] = string(row)
	}
	return rows
}
