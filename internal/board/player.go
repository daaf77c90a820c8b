package board

// Player is one of the two marks that can occupy a cell.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

const (
	markX     = "X"
	markO     = "O"
	markEmpty = "_"
)

// Valid reports whether the player is X or O.
func (that Player) Valid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return markX
	case PlayerO:
		return markO
	default:
		return "?"
	}
}

// Cell is a single square of the grid. The zero value is an empty cell.
type Cell struct {
	occupant Player
}

// EmptyCell is a cell nobody has claimed.
var EmptyCell = Cell{}

// Occupied returns a cell held by the given player.
func Occupied(player Player) Cell {
	return Cell{occupant: player}
}

func (that Cell) IsEmpty() bool {
	return that.occupant == 0
}

// Player returns the occupant, or false for an empty cell.
func (that Cell) Player() (Player, bool) {
	if that.IsEmpty() {
		return 0, false
	}
	return that.occupant, true
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return markEmpty
	}
	return that.occupant.String()
}
