package entity

import "time"

// Result is the summary kept for a finished game.
type Result struct {
	ID         string    `json:"id"`
	Status     Status    `json:"status"`
	Winner     Player    `json:"winner,omitempty"`
	Line       []int     `json:"line,omitempty"`
	Moves      int       `json:"moves"`
	Board      Board     `json:"board"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewResult - captures the outcome of game. The caller checks that the game has ended.
func NewResult(id string, game *Game, finishedAt time.Time) *Result {
	outcome := game.Outcome()

	result := &Result{
		ID:         id,
		Status:     outcome.Status,
		Winner:     outcome.Winner,
		Moves:      game.MoveCount(),
		Board:      game.Board(),
		FinishedAt: finishedAt.UTC(),
	}

	if outcome.Status == StatusWon {
		result.Line = outcome.Line[:]
	}

	return result
}

// Stats is the tally of recorded results.
type Stats struct {
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
	Ties        int `json:"ties"`
	Total       int `json:"total"`
}

func (that *Stats) Add(result *Result) {
	switch {
	case result.Status == StatusTie:
		that.Ties++
	case result.Winner == Player1:
		that.Player1Wins++
	case result.Winner == Player2:
		that.Player2Wins++
	}

	that.Total++
}
