package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/oxolabs/oxo-console/internal/apperror"
	"github.com/oxolabs/oxo-console/internal/entity"
	"github.com/oxolabs/oxo-console/internal/game"
)

var ErrEmptyMenu = errors.New("menu has no entries")

type gameEngine interface {
	Board() entity.Board
	NewGame() entity.Board
	UserMove(cell int) (string, error)
	ComputerMove() string
	GenerateMove() int

	SaveGame(ctx context.Context) error
	RestoreGame(ctx context.Context) entity.Board
}

// Console - the interactive menu and game loop on top of a line-oriented
// terminal.
type Console struct {
	logger *slog.Logger
	engine gameEngine

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, engine gameEngine, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger,
		engine: engine,

		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run - shows the main menu until the player quits or the input ends.
func (that *Console) Run(ctx context.Context) error {
	menu := []string{
		"1. Start a new game",
		"2. Resume the saved game",
		"3. Watch a demo game",
		"4. Quit",
	}

	fmt.Fprintln(that.out, renderTitle())

	for {
		choice, err := that.GetMenuChoice(menu)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		switch choice {
		case 1:
			that.engine.NewGame()

			if err := that.playGame(ctx); err != nil {
				return err
			}
		case 2:
			that.resumeGame(ctx)

			if err := that.playGame(ctx); err != nil {
				return err
			}
		case 3:
			that.playDemo()
		case 4:
			return nil
		}
	}
}

// GetMenuChoice - prints the menu and reads input until a valid entry is
// picked. The returned choice is 1-based.
func (that *Console) GetMenuChoice(menu []string) (int, error) {
	if len(menu) == 0 {
		return 0, ErrEmptyMenu
	}

	for {
		fmt.Fprintln(that.out)
		for _, entry := range menu {
			fmt.Fprintln(that.out, entry)
		}

		line, err := that.readLine(fmt.Sprintf("Choose [1-%d]: ", len(menu)))
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(menu) {
			fmt.Fprintf(that.out, "Please enter a number between 1 and %d\n", len(menu))
			continue
		}

		return choice, nil
	}
}

// resumeGame - restores the saved board, falling back to a new game when the
// saved one is already over.
func (that *Console) resumeGame(ctx context.Context) {
	board := that.engine.RestoreGame(ctx)

	if board.HasWinningLine() || board.IsFull() {
		fmt.Fprintln(that.out, "The saved game is already over, starting a new one.")
		that.engine.NewGame()
	}
}

// playGame - runs one game on the current board until it ends or the player
// leaves.
func (that *Console) playGame(ctx context.Context) error {
	log := that.logger.With("method", "playGame")

	for {
		fmt.Fprintln(that.out, RenderBoard(that.engine.Board()))

		// The user has no cell left to play, so the computer call just
		// reports the draw.
		if that.engine.Board().IsFull() {
			fmt.Fprintln(that.out, renderResult(that.engine.ComputerMove()))
			return nil
		}

		input, err := that.readLine("Your move [1-9], s to save, q to quit: ")
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		switch input {
		case "q":
			return nil
		case "s":
			if err = that.engine.SaveGame(ctx); err != nil {
				log.Error("failed to save game", "error", err)
				fmt.Fprintln(that.out, "Could not save the game.")

				continue
			}

			fmt.Fprintln(that.out, "Game saved.")

			continue
		}

		cell, err := strconv.Atoi(input)
		if err != nil || cell < 1 || cell > entity.BoardCells {
			fmt.Fprintln(that.out, "Please enter a cell between 1 and 9, s or q.")
			continue
		}

		result, err := that.engine.UserMove(cell - 1)
		if errors.Is(err, apperror.ErrCellOccupied) {
			fmt.Fprintln(that.out, "That cell is taken, try another one.")
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make move: %w", err)
		}

		if result == "" {
			result = that.engine.ComputerMove()
		}

		if result != "" {
			fmt.Fprintln(that.out, RenderBoard(that.engine.Board()))
			fmt.Fprintln(that.out, renderResult(result))

			return nil
		}
	}
}

// playDemo - lets the engine play both sides until the game ends.
func (that *Console) playDemo() {
	log := that.logger.With("method", "playDemo")

	that.engine.NewGame()

	var result string
	for result == "" {
		fmt.Fprintln(that.out, RenderBoard(that.engine.Board()))

		cell := that.engine.GenerateMove()
		if cell == game.NoMove {
			result = that.engine.ComputerMove()
			break
		}

		result, _ = that.engine.UserMove(cell)
		if result == "" {
			result = that.engine.ComputerMove()
		}
	}

	log.Info("demo game finished", "result", result)

	fmt.Fprintln(that.out, RenderBoard(that.engine.Board()))
	fmt.Fprintln(that.out, renderResult(result))
}

func (that *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}
