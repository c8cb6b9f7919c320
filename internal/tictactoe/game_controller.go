package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type Option func(*GameController)

// WithColor forces colored marks on or off. Without it the terminal is detected.
func WithColor(enabled bool) Option {
	return func(that *GameController) {
		for _, c := range []*color.Color{that.markX, that.markO} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// GameController runs a game on a line-oriented terminal.
type GameController struct {
	logger *slog.Logger

	in  io.Reader
	out io.Writer

	markX *color.Color
	markO *color.Color
}

func NewGameController(logger *slog.Logger, in io.Reader, out io.Writer, opts ...Option) *GameController {
	controller := &GameController{
		logger: logger.With("component", "game_controller"),
		in:     in,
		out:    out,
		markX:  color.New(color.FgRed),
		markO:  color.New(color.FgBlue),
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Play - asks for moves until game has ended and announces the result.
func (that *GameController) Play(ctx context.Context, game *entity.Game) (entity.Outcome, error) {
	log := that.logger.With("method", "Play")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	that.printf("Welcome to Tic Tac Toe! (Player 1 is %s, Player 2 is %s).\n",
		that.colorMark(entity.Player1), that.colorMark(entity.Player2))
	that.printf("Please enter a number from 1 to 9 to make a move.\n")

	for !game.HasEnded() {
		that.printf("\n")
		that.printBoard(game)
		that.printf("\n")
		that.printf("%s's turn.\n", game.Turn())

		var raw string
		select {
		case <-ctx.Done():
			return game.Outcome(), fmt.Errorf("game interrupted: %w", ctx.Err())
		case line, ok := <-lines:
			if !ok {
				return game.Outcome(), ErrInputClosed
			}
			raw = line
		}

		cell, err := parseInput(raw)
		if err != nil {
			that.printf("%s is not a number. Please try again.\n", strings.TrimSpace(raw))
			continue
		}

		player := game.Turn()
		if err = game.MakeTurn(cell); err != nil {
			log.Debug("move rejected", "player", player.Mark(), "cell", cell, "error", err)
			that.printMoveError(game, cell, err)
			continue
		}

		log.Debug("move accepted", "player", player.Mark(), "cell", cell)
	}

	that.printf("\n")
	that.printBoard(game)
	that.printf("\n")

	outcome := game.Outcome()
	if outcome.Status == entity.StatusTie {
		that.printf("It's a tie!\n")
	} else {
		that.printf("%s wins!\n", outcome.Winner)
	}

	log.Info("game finished", "outcome", outcome.String(), "moves", game.MoveCount())

	return outcome, nil
}

func (that *GameController) printMoveError(game *entity.Game, cell int, err error) {
	switch {
	case errors.Is(err, apperror.ErrIndexTaken):
		available := game.AvailableCells()
		spaces := make([]string, 0, len(available))
		for _, index := range available {
			spaces = append(spaces, strconv.Itoa(index+1))
		}

		that.printf("That space is already taken.\n")
		that.printf("Please try again choosing any of these spaces: %s\n", strings.Join(spaces, ", "))
	case errors.Is(err, apperror.ErrOutOfBounds):
		that.printf("%d is not in the range 1-9. Please try again.\n", cell+1)
	case errors.Is(err, apperror.ErrGameEnded):
		that.printf("The game has ended. Please start a new game.\n")
	default:
		that.printf("%v. Please try again.\n", err)
	}
}

func (that *GameController) printBoard(game *entity.Game) {
	var sb strings.Builder

	for i, cell := range game.Board() {
		if cell == entity.EmptyCell {
			sb.WriteString(" ")
		} else {
			sb.WriteString(that.colorMark(cell))
		}

		if i%3 == 2 {
			sb.WriteString("\n")
		} else {
			sb.WriteString("|")
		}
	}

	that.printf("%s", sb.String())
}

func (that *GameController) colorMark(player entity.Player) string {
	switch player {
	case entity.Player1:
		return that.markX.Sprint(player.Mark())
	case entity.Player2:
		return that.markO.Sprint(player.Mark())
	default:
		return player.Mark()
	}
}

func (that *GameController) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

// readLines feeds input lines until EOF or until ctx is done.
func (that *GameController) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Warn("failed to read input", "error", err)
		}
	}()

	return lines
}

// parseInput converts a 1-indexed move into a board index.
func parseInput(raw string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to parse move: %w", err)
	}

	return number - 1, nil
}
