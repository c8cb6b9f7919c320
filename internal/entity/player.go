package entity

import "fmt"

// Player identifies one of the two sides. The zero value marks an empty cell.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

const (
	MarkX     = "X"
	MarkO     = "O"
	EmptyMark = ""
)

// EmptyCell is the content of a cell nobody has played yet.
const EmptyCell = NoPlayer

// Other returns the opponent of the player.
func (that Player) Other() Player {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Mark - returns the symbol drawn on the board for the player.
func (that Player) Mark() string {
	switch that {
	case Player1:
		return MarkX
	case Player2:
		return MarkO
	default:
		return EmptyMark
	}
}

func (that Player) String() string {
	switch that {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "nobody"
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.Mark()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	switch mark := string(text); mark {
	case MarkX:
		*that = Player1
	case MarkO:
		*that = Player2
	case EmptyMark:
		*that = NoPlayer
	default:
		return fmt.Errorf("unknown player mark %q", mark)
	}

	return nil
}
