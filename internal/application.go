package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/board"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/input"
)

var (
	ErrClaimNotRejected    = errors.New("claim on an occupied cell was not rejected")
	ErrInvalidIndexAllowed = errors.New("out-of-range position was accepted")
)

// Session pairs a board with the source of the next move.
type Session struct {
	board  *board.Board
	input  input.MoveInput
	out    io.Writer
	logger *slog.Logger
}

func NewSession(logger *slog.Logger, b *board.Board, moveInput input.MoveInput, out io.Writer) *Session {
	return &Session{
		board:  b,
		input:  moveInput,
		out:    out,
		logger: logger.With("component", "session"),
	}
}

// PlayMove - asks for one move and reports the chosen position.
func (that *Session) PlayMove() (board.Position, error) {
	pos, err := that.input.GetMove(that.board)
	if err != nil {
		return board.Position{}, fmt.Errorf("could not get move: %w", err)
	}

	that.logger.Info("move chosen", "position", pos.String(), "number", pos.Number())

	if _, err = fmt.Fprintf(that.out, "\nYou have chosen position: %s\n", pos); err != nil {
		return board.Position{}, fmt.Errorf("failed to report move: %w", err)
	}

	return pos, nil
}

// RunApp - runs a single interactive move for the configured player.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	user := input.NewUser(conf.PlayerName, in, out, logger)
	session := NewSession(logger, board.NewBoard(), user, out)

	if _, err := session.PlayMove(); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Debug("session finished")

	return nil
}

// RunDemo - exercises the board end to end and prints each step.
func RunDemo(logger *slog.Logger, out io.Writer) error {
	log := logger.With("component", "demo")

	b := board.NewBoard()

	if err := b.Fprint(out); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, b.Get(board.Pos20)); err != nil {
		return fmt.Errorf("failed to print cell: %w", err)
	}

	if err := b.Claim(board.Pos20, board.PlayerX); err != nil {
		return fmt.Errorf("could not claim %s: %w", board.Pos20, err)
	}

	if err := b.Claim(board.Pos11, board.PlayerO); err != nil {
		return fmt.Errorf("could not claim %s: %w", board.Pos11, err)
	}

	err := b.Claim(board.Pos11, board.PlayerX)
	if err == nil {
		return ErrClaimNotRejected
	}

	if !errors.Is(err, apperror.ErrPositionTaken) {
		return fmt.Errorf("unexpected claim error: %w", err)
	}

	log.Debug("conflicting claim rejected", "error", err)

	if _, err = fmt.Fprintf(out, "%s, as expected\n", err); err != nil {
		return fmt.Errorf("failed to print error: %w", err)
	}

	if _, ok := board.NewPosition(10, 0); ok {
		return ErrInvalidIndexAllowed
	}

	if _, err = fmt.Fprintln(out, "Invalid Index, as expected"); err != nil {
		return fmt.Errorf("failed to print message: %w", err)
	}

	if err = b.Fprint(out); err != nil {
		return err
	}

	pos, _ := board.NewPosition(2, 0)
	if _, err = fmt.Fprintln(out, b.Get(pos)); err != nil {
		return fmt.Errorf("failed to print cell: %w", err)
	}

	return nil
}
