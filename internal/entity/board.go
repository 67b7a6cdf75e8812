package entity

import (
	"errors"
	"fmt"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	// ResultDraw is returned by a computer move that finds no blank cell left.
	ResultDraw = "D"

	EmptyCell = ""

	// BoardCells is the fixed board size; snapshots of any other length are invalid.
	BoardCells = 9

	blankChar = ' '
)

var (
	ErrInvalidSnapshot = errors.New("snapshot is not a valid board")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is the 9-cell grid in row-major order: rows {0,1,2} {3,4,5} {6,7,8}.
type Board [BoardCells]string

// Snapshot is the persisted form of a board: exactly nine characters,
// one of ' ', 'X', 'O' per cell, no header and no delimiter.
type Snapshot string

// HasWinningLine - reports whether any of the 8 fixed triples holds three
// identical non-blank symbols. It does not report which line or whose.
func (that Board) HasWinningLine() bool {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return true
		}
	}

	return false
}

// BlankCells - returns the indices of all blank cells, in board order.
func (that Board) BlankCells() []int {
	blanks := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			blanks = append(blanks, i)
		}
	}

	return blanks
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Snapshot - encodes the board for persistence, blank cells as spaces.
func (that Board) Snapshot() Snapshot {
	buf := make([]byte, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			buf[i] = blankChar
			continue
		}
		buf[i] = cell[0]
	}

	return Snapshot(buf)
}

// Board - decodes a stored snapshot back into a board. Only the length is
// validated; a snapshot that is not exactly nine characters must never
// replace a live board.
func (that Snapshot) Board() (Board, error) {
	if len(that) != BoardCells {
		return Board{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidSnapshot, len(that), BoardCells)
	}

	var board Board
	for i := 0; i < BoardCells; i++ {
		if that[i] == blankChar {
			board[i] = EmptyCell
			continue
		}
		board[i] = string(that[i])
	}

	return board, nil
}
