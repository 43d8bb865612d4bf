package domain

import "fmt"

// Row labels in grid order. "I" is skipped, matching common cinema
// row labelling.
var rowLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H", "J"}

type Seat struct {
	Row      int    `json:"row"`
	Number   int    `json:"number"`
	Selected bool   `json:"selected"`
	Sold     bool   `json:"sold"`
	Type     string `json:"type,omitempty"`
}

func NewSeat(row, number int) Seat {
	return Seat{Row: row, Number: number}
}

// Code is the user-facing seat label, e.g. "A1" or "C7".
func (s Seat) Code() string {
	if s.Row >= 0 && s.Row < len(rowLetters) {
		return fmt.Sprintf("%s%d", rowLetters[s.Row], s.Number)
	}
	return fmt.Sprintf("%d-%d", s.Row, s.Number)
}

// IsIdentical reports whether two seats refer to the same physical seat,
// regardless of their selection state.
func (s Seat) IsIdentical(other Seat) bool {
	return s.Code() == other.Code()
}
