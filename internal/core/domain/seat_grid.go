package domain

// SeatGrid holds the seat layout for one showing. The grid is replaced
// wholesale when a new showing is chosen; indices stay stable in between.
// SeatGrid is not safe for concurrent use.
type SeatGrid struct {
	rows [][]Seat
}

func NewSeatGrid() *SeatGrid {
	return &SeatGrid{}
}

// Initialize replaces the entire grid with rowsPerSection[i] seats in row i,
// numbered 1..rowsPerSection[i], all unselected and unsold. A zero section
// count or empty rowsPerSection yields an empty grid.
func (g *SeatGrid) Initialize(sectionCount int, rowsPerSection []int) {
	rows := make([][]Seat, 0, sectionCount)
	for row := 0; row < sectionCount && row < len(rowsPerSection); row++ {
		line := make([]Seat, 0, rowsPerSection[row])
		for number := 1; number <= rowsPerSection[row]; number++ {
			line = append(line, NewSeat(row, number))
		}
		rows = append(rows, line)
	}
	g.rows = rows
}

// Seat returns the seat at the given coordinate or ErrSeatNotFound when the
// coordinate is outside the grid.
func (g *SeatGrid) Seat(row, number int) (Seat, error) {
	if row < 0 || row >= len(g.rows) {
		return Seat{}, ErrSeatNotFound
	}
	for _, s := range g.rows[row] {
		if s.Number == number {
			return s, nil
		}
	}
	return Seat{}, ErrSeatNotFound
}

func (g *SeatGrid) Select(seat Seat) error {
	return g.setSelected(seat, true)
}

func (g *SeatGrid) Deselect(seat Seat) error {
	return g.setSelected(seat, false)
}

func (g *SeatGrid) setSelected(seat Seat, selected bool) error {
	for i := range g.rows {
		for j := range g.rows[i] {
			if !g.rows[i][j].IsIdentical(seat) {
				continue
			}
			if g.rows[i][j].Sold {
				return ErrSeatUnavailable
			}
			g.rows[i][j].Selected = selected
			return nil
		}
	}
	return ErrSeatNotFound
}

// Update replaces the stored record for the matching seat wholesale. It is
// used to sync copies mutated outside the grid, including sold state.
func (g *SeatGrid) Update(seat Seat) error {
	for i := range g.rows {
		for j := range g.rows[i] {
			if g.rows[i][j].IsIdentical(seat) {
				g.rows[i][j] = seat
				return nil
			}
		}
	}
	return ErrSeatNotFound
}

// AllSeats returns a copy of the grid as rows of seats.
func (g *SeatGrid) AllSeats() [][]Seat {
	out := make([][]Seat, len(g.rows))
	for i, row := range g.rows {
		out[i] = append([]Seat(nil), row...)
	}
	return out
}

// SelectedSeats returns selected seats in grid traversal order, not in the
// order they were selected.
func (g *SeatGrid) SelectedSeats() []Seat {
	var selected []Seat
	for _, row := range g.rows {
		for _, s := range row {
			if s.Selected {
				selected = append(selected, s)
			}
		}
	}
	return selected
}
