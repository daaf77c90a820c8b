package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/board"
	"github.com/rocketscienceinc/tictactoe-board/internal/logging"
)

const prompt = "> "

const (
	msgNotANumber  = "Invalid input: not a number"
	msgOutOfRange  = "Invalid input: needs to be between 1 - 9"
	msgInputMoveTo = "Input your move (1-9):"
)

// MoveInput produces the next position a player wants to claim.
type MoveInput interface {
	GetMove(b *board.Board) (board.Position, error)
}

// User reads moves typed by a human.
type User struct {
	Name string

	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewUser - a nil logger discards log output.
func NewUser(name string, in io.Reader, out io.Writer, logger *slog.Logger) *User {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &User{
		Name:   name,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.With("component", "input", "player", name),
	}
}

// GetMove - shows the board and blocks until a number between 1 and 9 is entered.
// Occupancy is not checked here, Board.Claim reports conflicts.
func (that *User) GetMove(b *board.Board) (board.Position, error) {
	if err := that.greet(b); err != nil {
		return board.Position{}, err
	}

	for {
		if _, err := fmt.Fprint(that.out, prompt); err != nil {
			return board.Position{}, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := that.readLine()
		if err != nil {
			return board.Position{}, err
		}

		num, err := strconv.Atoi(line)
		if err != nil {
			that.logger.Debug("rejected move", "input", line, "reason", "not a number")
			if err = that.println(msgNotANumber); err != nil {
				return board.Position{}, err
			}
			continue
		}

		pos, ok := board.PositionFromNumber(num)
		if !ok {
			that.logger.Debug("rejected move", "input", line, "reason", "out of range")
			if err = that.println(msgOutOfRange); err != nil {
				return board.Position{}, err
			}
			continue
		}

		that.logger.Debug("accepted move", "position", pos.String())

		return pos, nil
	}
}

func (that *User) greet(b *board.Board) error {
	if err := that.println(fmt.Sprintf("It is %s's turn", that.Name)); err != nil {
		return err
	}

	if err := that.println("Here is the board:"); err != nil {
		return err
	}

	if err := b.Fprint(that.out); err != nil {
		return err
	}

	if err := that.println(msgInputMoveTo); err != nil {
		return err
	}

	return board.FprintLegend(that.out)
}

// readLine returns the next line without its terminator. Lines of any length are
// accepted, a final line without a newline is still returned before EOF.
func (that *User) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if err == nil || (errors.Is(err, io.EOF) && line != "") {
		return strings.TrimSpace(line), nil
	}

	if errors.Is(err, io.EOF) {
		that.logger.Info("input closed while waiting for a move")
	} else {
		that.logger.Error("failed to read move", "error", err)
	}

	return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
}

func (that *User) println(msg string) error {
	if _, err := fmt.Fprintln(that.out, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
