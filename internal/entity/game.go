package entity

import (
	"fmt"
	"strings"
)

// BoardSize is the length of a side of the board.
const BoardSize = 3

const cellCount = BoardSize * BoardSize

// WinCombos holds every line of the board as row-major indexes:
// rows first, then columns, then the two diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Cell is either Empty or occupied by one player.
type Cell struct {
	occupant PlayerID
}

// Empty is the zero Cell.
var Empty = Cell{}

// Occupied - returns a cell holding the mark of the given player.
func Occupied(player PlayerID) Cell {
	return Cell{occupant: player}
}

func (that Cell) IsEmpty() bool {
	return that.occupant == NoPlayer
}

// Occupant - returns the player holding the cell, false for an empty cell.
func (that Cell) Occupant() (PlayerID, bool) {
	return that.occupant, that.occupant != NoPlayer
}

// Position is a cell coordinate on the board.
type Position struct {
	Row int
	Col int
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Index - returns the row-major index of an in-bounds position.
func (that Position) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// PositionFromIndex - converts a row-major index back to a position.
func PositionFromIndex(index int) Position {
	return Position{Row: index / BoardSize, Col: index % BoardSize}
}

// Board is the 3x3 grid stored row-major. It is a value: assigning or passing
// a Board copies every cell.
type Board [cellCount]Cell

// At - returns the cell at pos. Out-of-bounds positions read as Empty.
func (that Board) At(pos Position) Cell {
	if !pos.InBounds() {
		return Empty
	}
	return that[pos.Index()]
}

// Place - returns a copy of the board with pos occupied by player. The caller
// checks bounds and emptiness.
func (that Board) Place(pos Position, player PlayerID) Board {
	that[pos.Index()] = Occupied(player)
	return that
}

// EmptyPositions - returns the empty cells in row-major order.
func (that Board) EmptyPositions() []Position {
	positions := make([]Position, 0, cellCount)
	for i, cell := range that {
		if cell.IsEmpty() {
			positions = append(positions, PositionFromIndex(i))
		}
	}
	return positions
}

// MoveCount - returns the number of occupied cells.
func (that Board) MoveCount() int {
	count := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

func (that Board) IsFull() bool {
	return that.MoveCount() == cellCount
}

// Outcome - computes the state of the game from the board alone. Every line is
// checked before fullness, so a board completed by a winning move is a win.
func (that Board) Outcome() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a.IsEmpty() || a != b || b != c {
			continue
		}

		winner, _ := a.Occupant()
		return Win(winner)
	}

	if that.IsFull() {
		return Tie()
	}

	return InProgress()
}

func (that Board) String() string {
	var builder strings.Builder
	for row := range BoardSize {
		for col := range BoardSize {
			switch player, _ := that.At(Position{Row: row, Col: col}).Occupant(); player {
			case First:
				builder.WriteByte('X')
			case Second:
				builder.WriteByte('O')
			default:
				builder.WriteByte('.')
			}
		}
		if row < BoardSize-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// Status is the kind of an Outcome.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWin
	StatusTie
)

func (that Status) String() string {
	switch that {
	case StatusWin:
		return "win"
	case StatusTie:
		return "tie"
	default:
		return "in progress"
	}
}

// Outcome is InProgress, Win(player) or Tie. Winner is set only for a win.
type Outcome struct {
	Status Status
	Winner PlayerID
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(player PlayerID) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func Tie() Outcome {
	return Outcome{Status: StatusTie}
}

// IsOver - reports whether no further move is accepted.
func (that Outcome) IsOver() bool {
	return that.Status != StatusInProgress
}

// IsWinFor - reports whether the outcome is a win for player.
func (that Outcome) IsWinFor(player PlayerID) bool {
	return that.Status == StatusWin && that.Winner == player
}

func (that Outcome) String() string {
	if that.Status == StatusWin {
		return fmt.Sprintf("%s (%s)", that.Status, that.Winner)
	}
	return that.Status.String()
}
