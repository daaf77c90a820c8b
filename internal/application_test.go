package application

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/board"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errKeyboardUnplugged = errors.New("keyboard unplugged")

type mockMoveInput struct {
	mock.Mock
}

func (m *mockMoveInput) GetMove(b *board.Board) (board.Position, error) {
	args := m.Called(b)
	return args.Get(0).(board.Position), args.Error(1)
}

func TestSession_PlayMove(t *testing.T) {
	t.Run("Reports the chosen position", func(t *testing.T) {
		// Given: an input that picks the center
		b := board.NewBoard()
		moveInput := new(mockMoveInput)
		moveInput.On("GetMove", b).Return(board.Pos11, nil).Once()

		var out bytes.Buffer
		session := NewSession(logging.NewNop(), b, moveInput, &out)

		// When: playing a move
		pos, err := session.PlayMove()

		// Then: the position is returned and printed
		require.NoError(t, err)
		assert.Equal(t, board.Pos11, pos)
		assert.Equal(t, "\nYou have chosen position: (1, 1)\n", out.String())
		moveInput.AssertExpectations(t)
	})

	t.Run("Does not claim the chosen cell", func(t *testing.T) {
		// Given: an input returning a position
		b := board.NewBoard()
		moveInput := new(mockMoveInput)
		moveInput.On("GetMove", b).Return(board.Pos02, nil).Once()
		session := NewSession(logging.NewNop(), b, moveInput, &bytes.Buffer{})

		// When: playing a move
		_, err := session.PlayMove()

		// Then: the board is untouched
		require.NoError(t, err)
		assert.True(t, b.Get(board.Pos02).IsEmpty())
	})

	t.Run("Input failure is wrapped", func(t *testing.T) {
		// Given: an input that fails
		b := board.NewBoard()
		moveInput := new(mockMoveInput)
		moveInput.On("GetMove", b).Return(board.Position{}, errKeyboardUnplugged).Once()

		var out bytes.Buffer
		session := NewSession(logging.NewNop(), b, moveInput, &out)

		// When: playing a move
		_, err := session.PlayMove()

		// Then: the cause is preserved and nothing is reported
		require.ErrorIs(t, err, errKeyboardUnplugged)
		assert.Empty(t, out.String())
	})
}

func TestRunApp(t *testing.T) {
	t.Run("Plays one move for the configured player", func(t *testing.T) {
		// Given: a config naming Alice and a valid line on stdin
		conf := &config.Config{PlayerName: "Alice"}
		var out bytes.Buffer

		// When: running the app
		err := RunApp(logging.NewNop(), conf, strings.NewReader("8\n"), &out)

		// Then: Alice is prompted and (2, 1) is chosen
		require.NoError(t, err)
		assert.Contains(t, out.String(), "It is Alice's turn")
		assert.True(t, strings.HasSuffix(out.String(), "You have chosen position: (2, 1)\n"))
	})

	t.Run("Closed input fails", func(t *testing.T) {
		conf := &config.Config{PlayerName: "Alice"}

		err := RunApp(logging.NewNop(), conf, strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestRunDemo(t *testing.T) {
	// When: running the demo
	var out bytes.Buffer
	err := RunDemo(logging.NewNop(), &out)

	// Then: every step prints as expected
	require.NoError(t, err)

	expected := "[[_, _, _],\n [_, _, _],\n [_, _, _]]\n" +
		"_\n" +
		"Position (1, 1) is already taken by 'O', as expected\n" +
		"Invalid Index, as expected\n" +
		"[[_, _, _],\n [_, O, _],\n [X, _, _]]\n" +
		"X\n"
	assert.Equal(t, expected, out.String())
}
