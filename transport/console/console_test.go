package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxolabs/oxo-console/internal/entity"
	"github.com/oxolabs/oxo-console/internal/game"
	"github.com/oxolabs/oxo-console/internal/repository"
)

// fakeRepo keeps the snapshot in memory.
type fakeRepo struct {
	snapshot entity.Snapshot
	stored   bool
}

func (that *fakeRepo) Store(_ context.Context, snapshot entity.Snapshot) error {
	that.snapshot = snapshot
	that.stored = true

	return nil
}

func (that *fakeRepo) Load(_ context.Context) (entity.Snapshot, error) {
	if !that.stored {
		return "", repository.ErrSnapshotNotFound
	}

	return that.snapshot, nil
}

// pickFirst always picks the first available cell, which makes whole games
// deterministic.
func pickFirst(_ int) int {
	return 0
}

func newTestConsole(input string, opts ...game.Option) (*Console, *fakeRepo, *bytes.Buffer) {
	repo := &fakeRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := game.New(logger, repo, opts...)
	out := &bytes.Buffer{}

	return New(logger, engine, strings.NewReader(input), out), repo, out
}

func TestConsole_GetMenuChoice(t *testing.T) {
	menu := []string{"1. One", "2. Two", "3. Three"}

	t.Run("Returns the 1-based choice", func(t *testing.T) {
		cons, _, _ := newTestConsole("2\n")

		// When: the player picks the second entry
		choice, err := cons.GetMenuChoice(menu)

		// Then: the choice counts from one
		require.NoError(t, err)
		assert.Equal(t, 2, choice)
	})

	t.Run("Fails on an empty menu", func(t *testing.T) {
		cons, _, _ := newTestConsole("1\n")

		// When: there is nothing to choose from
		_, err := cons.GetMenuChoice(nil)

		// Then: an ErrEmptyMenu error should be returned
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyMenu)
	})

	t.Run("Re-prompts until the input is a menu entry", func(t *testing.T) {
		cons, _, out := newTestConsole("x\n0\n9\n3\n")

		// When: the player types junk before a valid entry
		choice, err := cons.GetMenuChoice(menu)

		// Then: the junk is rejected and the valid entry is returned
		require.NoError(t, err)
		assert.Equal(t, 3, choice)
		assert.Contains(t, out.String(), "Please enter a number between 1 and 3")
	})

	t.Run("Returns EOF when the input ends", func(t *testing.T) {
		cons, _, _ := newTestConsole("")

		// When: there is no input at all
		_, err := cons.GetMenuChoice(menu)

		// Then: the EOF is passed on
		require.Error(t, err)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Quits from the menu", func(t *testing.T) {
		cons, _, out := newTestConsole("4\n")

		// When: the player quits right away
		err := cons.Run(ctx)

		// Then: the menu was shown and nothing was played
		require.NoError(t, err)
		assert.Contains(t, out.String(), "1. Start a new game")
		assert.NotContains(t, out.String(), "Your move")
	})

	t.Run("Starts a new game and leaves it", func(t *testing.T) {
		cons, _, out := newTestConsole("1\nq\n")

		// When: the player starts a game and quits it
		err := cons.Run(ctx)

		// Then: a blank board was shown with every cell address
		require.NoError(t, err)
		for _, address := range []string{"1", "5", "9"} {
			assert.Contains(t, out.String(), "["+address+"]")
		}
	})

	t.Run("Plays a move and saves the game", func(t *testing.T) {
		cons, repo, out := newTestConsole("1\n5\ns\nq\n", game.WithPicker(pickFirst))

		// When: the player takes the center, the computer answers, and the
		// game is saved
		err := cons.Run(ctx)

		// Then: the saved snapshot holds both moves
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Game saved.")
		assert.Equal(t, entity.Snapshot("O   X    "), repo.snapshot)
	})

	t.Run("Rejects a taken cell and keeps playing", func(t *testing.T) {
		cons, _, out := newTestConsole("1\n5\n5\nq\n", game.WithPicker(pickFirst))

		// When: the player tries the center twice
		err := cons.Run(ctx)

		// Then: the second try is rejected and the game goes on
		require.NoError(t, err)
		assert.Contains(t, out.String(), "That cell is taken, try another one.")
	})

	t.Run("Rejects input that is not a cell", func(t *testing.T) {
		cons, _, out := newTestConsole("1\n0\n10\nabc\nq\n")

		// When: the player types addresses off the board
		err := cons.Run(ctx)

		// Then: each one is rejected with a hint
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Please enter a cell between 1 and 9, s or q.")
	})

	t.Run("Resumes the saved game", func(t *testing.T) {
		cons, repo, out := newTestConsole("2\nq\n")
		repo.snapshot = "XX O O   "
		repo.stored = true

		// When: the player resumes and quits
		err := cons.Run(ctx)

		// Then: the saved marks are on the board
		require.NoError(t, err)
		assert.Contains(t, out.String(), "[X]")
		assert.Contains(t, out.String(), "[O]")
	})

	t.Run("Resumes a finished save as a new game", func(t *testing.T) {
		cons, repo, out := newTestConsole("2\nq\n")
		repo.snapshot = "OOO      "
		repo.stored = true

		// When: the player resumes a game that is already over
		err := cons.Run(ctx)

		// Then: a fresh board is played instead
		require.NoError(t, err)
		assert.Contains(t, out.String(), "The saved game is already over, starting a new one.")
		assert.NotContains(t, out.String(), "[O]")
	})

	t.Run("Plays the whole demo game", func(t *testing.T) {
		cons, _, out := newTestConsole("3\n", game.WithPicker(pickFirst))

		// When: the demo runs with a deterministic picker
		err := cons.Run(ctx)

		// Then: X fills cells 1, 3, 5, 7 and takes the diagonal
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Winner is: X")
	})

	t.Run("Demo always ends in a win or a draw", func(t *testing.T) {
		cons, _, out := newTestConsole("3\n")

		// When: the demo runs with the real random picker
		err := cons.Run(ctx)

		// Then: some result is always reached
		require.NoError(t, err)
		ended := strings.Contains(out.String(), "Winner is:") ||
			strings.Contains(out.String(), "It's a draw")
		assert.True(t, ended, "demo should end with a result, got: %s", out.String())
	})
}

func TestRenderBoard(t *testing.T) {
	t.Run("Shows addresses for blank cells", func(t *testing.T) {
		rendered := RenderBoard(entity.Board{})

		for _, address := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
			assert.Contains(t, rendered, "["+address+"]")
		}
		assert.Len(t, strings.Split(rendered, "\n"), 3)
	})

	t.Run("Shows the marks on played cells", func(t *testing.T) {
		board := entity.Board{"X", "", "", "", "O", "", "", "", ""}

		rendered := RenderBoard(board)

		assert.Contains(t, rendered, "[X]")
		assert.Contains(t, rendered, "[O]")
		assert.NotContains(t, rendered, "[1]")
		assert.Contains(t, rendered, "[2]")
	})
}

func TestRenderResult(t *testing.T) {
	t.Run("Names the winner", func(t *testing.T) {
		assert.Contains(t, renderResult(entity.PlayerX), "Winner is: X")
		assert.Contains(t, renderResult(entity.PlayerO), "Winner is: O")
	})

	t.Run("Calls the draw", func(t *testing.T) {
		assert.Contains(t, renderResult(entity.ResultDraw), "It's a draw")
	})
}
