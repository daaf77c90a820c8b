package board

import (
	"fmt"
	"io"
	"os"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

const (
	boardLayout = "[[%s, %s, %s],\n [%s, %s, %s],\n [%s, %s, %s]]"
	legend      = "[[1, 2, 3],\n [4, 5, 6],\n [7, 8, 9]]"
)

// PositionTakenError is returned by Claim when the target cell is occupied.
// It holds a copy of the cell, not a reference into the board.
type PositionTakenError struct {
	Position Position
	Occupant Cell
}

func (that *PositionTakenError) Error() string {
	return fmt.Sprintf("Position %s is already taken by '%s'", that.Position, that.Occupant)
}

func (that *PositionTakenError) Is(target error) bool {
	return target == apperror.ErrPositionTaken
}

// Board is the 3x3 grid. Cells can be read freely but only changed through Claim.
type Board struct {
	cells [Size][Size]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Get returns a copy of the cell at pos.
func (that *Board) Get(pos Position) Cell {
	return that.cells[pos.row][pos.col]
}

// Claim - occupies an empty cell. An occupied cell is never overwritten.
func (that *Board) Claim(pos Position, player Player) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, player)
	}

	if current := that.Get(pos); !current.IsEmpty() {
		return &PositionTakenError{Position: pos, Occupant: current}
	}

	that.set(pos, Occupied(player))

	return nil
}

func (that *Board) set(pos Position, cell Cell) {
	that.cells[pos.row][pos.col] = cell
}

func (that *Board) String() string {
	marks := make([]any, 0, Size*Size)
	for _, pos := range AllPositions() {
		marks = append(marks, that.Get(pos))
	}

	return fmt.Sprintf(boardLayout, marks...)
}

// Fprint writes the rendered board followed by a newline.
func (that *Board) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, that.String()); err != nil {
		return fmt.Errorf("failed to print board: %w", err)
	}

	return nil
}

func (that *Board) Print() error {
	return that.Fprint(os.Stdout)
}

// Legend returns the layout of the numbers accepted by PositionFromNumber.
func Legend() string {
	return legend
}

func FprintLegend(w io.Writer) error {
	if _, err := fmt.Fprintln(w, legend); err != nil {
		return fmt.Errorf("failed to print legend: %w", err)
	}

	return nil
}

func PrintLegend() error {
	return FprintLegend(os.Stdout)
}
