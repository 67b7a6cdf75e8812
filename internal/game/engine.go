package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/oxolabs/oxo-console/internal/apperror"
	"github.com/oxolabs/oxo-console/internal/entity"
	"github.com/oxolabs/oxo-console/internal/repository"
)

// NoMove is returned by GenerateMove when the board has no blank cells left.
const NoMove = -1

type snapshotRepo interface {
	Store(ctx context.Context, snapshot entity.Snapshot) error
	Load(ctx context.Context) (entity.Snapshot, error)
}

// Picker picks one index out of n choices. It is called with n >= 1 and must
// return a value in [0, n).
type Picker func(n int) int

type Option func(*Engine)

// WithPicker - replaces the cell picker. Tests use it to make computer moves
// deterministic.
func WithPicker(picker Picker) Option {
	return func(that *Engine) {
		that.picker = picker
	}
}

// Engine - drives a single game. The user plays X, the computer plays O, and
// the board is the entire game state.
type Engine struct {
	logger *slog.Logger

	repo   snapshotRepo
	picker Picker

	board entity.Board
}

// New - returns an engine holding a blank board.
func New(logger *slog.Logger, repo snapshotRepo, opts ...Option) *Engine {
	engine := &Engine{
		logger: logger,
		repo:   repo,
		picker: rand.Intn, //nolint: gosec // it's ok
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Board - returns the current board.
func (that *Engine) Board() entity.Board {
	return that.board
}

// NewGame - resets the board to all blanks and returns it.
func (that *Engine) NewGame() entity.Board {
	that.board = entity.Board{}

	return that.board
}

// UserMove - places X in cell. It returns PlayerX when the move completes a
// winning line and "" otherwise. On error the board is left untouched.
func (that *Engine) UserMove(cell int) (string, error) {
	if cell < 0 || cell >= entity.BoardCells {
		return "", fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.board[cell] != entity.EmptyCell {
		return "", fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.board[cell] = entity.PlayerX

	if that.board.HasWinningLine() {
		return entity.PlayerX, nil
	}

	return "", nil
}

// ComputerMove - places O in a blank cell picked uniformly at random. It
// returns PlayerO when the move completes a winning line, ResultDraw when
// the board is already full, and "" otherwise.
func (that *Engine) ComputerMove() string {
	cell := that.GenerateMove()
	if cell == NoMove {
		return entity.ResultDraw
	}

	that.board[cell] = entity.PlayerO

	if that.board.HasWinningLine() {
		return entity.PlayerO
	}

	return ""
}

// GenerateMove - picks one of the blank cells uniformly at random, without
// placing anything. It returns NoMove when the board is full.
func (that *Engine) GenerateMove() int {
	availableCells := that.board.BlankCells()
	if len(availableCells) == 0 {
		return NoMove
	}

	return availableCells[that.picker(len(availableCells))]
}

// SaveGame - stores the current board in the save slot, replacing whatever
// was saved before.
func (that *Engine) SaveGame(ctx context.Context) error {
	if err := that.repo.Store(ctx, that.board.Snapshot()); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// RestoreGame - loads the saved board and makes it current. A missing,
// unreadable or malformed snapshot is not an error the caller sees: the
// engine logs the reason and starts a new game instead.
func (that *Engine) RestoreGame(ctx context.Context) entity.Board {
	log := that.logger.With("method", "RestoreGame")

	snapshot, err := that.repo.Load(ctx)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		log.Info("no saved game, starting a new one")

		return that.NewGame()
	}

	if err != nil {
		log.Warn("failed to load saved game, starting a new one", "error", err)

		return that.NewGame()
	}

	board, err := snapshot.Board()
	if err != nil {
		log.Warn("saved game is malformed, starting a new one", "error", err)

		return that.NewGame()
	}

	that.board = board

	return that.board
}
