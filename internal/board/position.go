package board

import "fmt"

// Size is the number of rows and columns of the grid.
const Size = 3

// Position is a coordinate into the grid. A Position obtained from this
// package is always in range, so indexing with it never fails.
type Position struct {
	row int
	col int
}

// Named positions, row then column. They are read-only by convention; never assign to them.
var (
	Pos00 = Position{0, 0}
	Pos01 = Position{0, 1}
	Pos02 = Position{0, 2}
	Pos10 = Position{1, 0}
	Pos11 = Position{1, 1}
	Pos12 = Position{1, 2}
	Pos20 = Position{2, 0}
	Pos21 = Position{2, 1}
	Pos22 = Position{2, 2}
)

// NewPosition - returns the position at row, col, or false if either index is outside [0, 3).
func NewPosition(row, col int) (Position, bool) {
	if !inRange(row) || !inRange(col) {
		return Position{}, false
	}

	return Position{row: row, col: col}, true
}

// PositionFromNumber - maps the human-facing numbers 1-9 onto the grid in row-major order.
func PositionFromNumber(num int) (Position, bool) {
	if num < 1 || num > Size*Size {
		return Position{}, false
	}

	idx := num - 1

	return NewPosition(idx/Size, idx%Size)
}

// AllPositions returns every position in row-major order.
func AllPositions() []Position {
	positions := make([]Position, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			positions = append(positions, Position{row: row, col: col})
		}
	}

	return positions
}

func (that Position) Row() int {
	return that.row
}

func (that Position) Col() int {
	return that.col
}

// Number is the inverse of PositionFromNumber.
func (that Position) Number() int {
	return that.row*Size + that.col + 1
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.row, that.col)
}

func inRange(idx int) bool {
	return idx >= 0 && idx < Size
}
