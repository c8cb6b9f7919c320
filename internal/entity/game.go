package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusTie     Status = "tie"
)

const BoardSize = 9

// Status describes where a game stands.
type Status string

// Line is a triple of board indexes.
type Line [3]int

// Board holds the cells row-major: index = row*3 + col.
type Board [BoardSize]Player

// winCombos is ordered rows, columns, diagonals.
var winCombos = [...]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinCombos returns a copy of the winning lines table.
func WinCombos() [len(winCombos)]Line {
	return winCombos
}

func (that Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if cell == EmptyCell {
			sb.WriteString(" ")
		} else {
			sb.WriteString(cell.Mark())
		}

		if i%3 == 2 {
			sb.WriteString("\n")
		} else {
			sb.WriteString("|")
		}
	}

	return sb.String()
}

// Outcome is derived from the board on every request.
type Outcome struct {
	Status Status
	Winner Player
	Line   Line
}

// IsDecided reports whether the game can no longer continue.
func (that Outcome) IsDecided() bool {
	return that.Status == StatusWon || that.Status == StatusTie
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWon:
		return that.Winner.String() + " wins"
	case StatusTie:
		return "tie"
	default:
		return "in progress"
	}
}

// Game keeps the board and the player whose move is accepted next.
// A Game is not safe for concurrent use.
type Game struct {
	turn  Player
	board Board
}

// NewGame - creates an empty board with Player1 to move.
func NewGame() *Game {
	return &Game{
		turn: Player1,
	}
}

func (that *Game) Turn() Player {
	return that.turn
}

// Board returns a copy of the cells.
func (that *Game) Board() Board {
	return that.board
}

// AvailableCells returns the empty cell indexes in ascending order.
func (that *Game) AvailableCells() []int {
	cells := make([]int, 0, len(that.board))
	for i, cell := range that.board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Game) MoveCount() int {
	return len(that.board) - len(that.AvailableCells())
}

// IsFull reports whether there are no more moves.
func (that *Game) IsFull() bool {
	for _, cell := range that.board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// WinningLine returns the first line, in table order, held entirely by one player.
func (that *Game) WinningLine() (Line, bool) {
	for _, combo := range winCombos {
		player1Count, player2Count := 0, 0

		for _, index := range combo {
			switch that.board[index] {
			case Player1:
				player1Count++
			case Player2:
				player2Count++
			}
		}

		if player1Count == len(combo) || player2Count == len(combo) {
			return combo, true
		}
	}

	return Line{}, false
}

func (that *Game) Outcome() Outcome {
	if line, ok := that.WinningLine(); ok {
		return Outcome{
			Status: StatusWon,
			Winner: that.board[line[0]],
			Line:   line,
		}
	}

	if that.IsFull() {
		return Outcome{Status: StatusTie}
	}

	return Outcome{Status: StatusOngoing}
}

func (that *Game) HasEnded() bool {
	return that.Outcome().IsDecided()
}

// MakeTurn - places the mark of the current player on cell and passes the turn.
// A rejected move leaves the game untouched.
func (that *Game) MakeTurn(cell int) error {
	if that.HasEnded() {
		return apperror.ErrGameEnded
	}

	if cell < 0 || cell >= len(that.board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfBounds, cell)
	}

	if that.board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrIndexTaken, cell)
	}

	that.board[cell] = that.turn
	that.turn = that.turn.Other()

	return nil
}
