package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// BoardSize is the number of ranks and files on the board.
const BoardSize = 8

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// Position addresses a single square, 0..63, encoded as rank<<3|file.
// The natural ordering of Position values (a1, b1, ..., h8) is the
// iteration order used everywhere deterministic enumeration matters.
type Position uint8

// NewPosition creates a position from 0-based rank and file.
// Passing an off-board coordinate is a programming error.
func NewPosition(rank, file int) Position {
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		panic(fmt.Sprintf("chess: position out of range: rank %d, file %d", rank, file))
	}
	return Position(rank<<3 | file)
}

// Rank returns the 0-based rank of the position.
func (p Position) Rank() int {
	return int(p >> 3)
}

// File returns the 0-based file of the position.
func (p Position) File() int {
	return int(p & 0b111)
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	return string([]byte{byte('a' + p.File()), byte('1' + p.Rank())})
}

// ParseSquare converts an algebraic square name ("a1".."h8") to a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	return NewPosition(int(s[1]-'1'), int(s[0]-'a')), nil
}

// Direction is a fixed step across the board. Directions are the sole
// building block of every piece's movement shape; boundary checking
// happens once, in Step, and nowhere else.
type Direction struct {
	rank, file int
}

var (
	Up        = Direction{1, 0}
	Down      = Direction{-1, 0}
	Left      = Direction{0, -1}
	Right     = Direction{0, 1}
	UpLeft    = Direction{1, -1}
	UpRight   = Direction{1, 1}
	DownLeft  = Direction{-1, -1}
	DownRight = Direction{-1, 1}
)

// KnightJumps are the knight's offsets, in enumeration order.
var KnightJumps = [8]Direction{
	{2, -1}, {2, 1},
	{1, -2}, {-1, -2},
	{-2, -1}, {-2, 1},
	{1, 2}, {-1, 2},
}

// KingSteps are the king's single-square offsets, in enumeration order.
var KingSteps = [8]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// DiagonalDirections are the bishop's sliding directions, in enumeration order.
var DiagonalDirections = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}

// StraightDirections are the rook's sliding directions, in enumeration order.
var StraightDirections = [4]Direction{Up, Left, Down, Right}

// QueenDirections are the queen's sliding directions, in enumeration order.
var QueenDirections = [8]Direction{Up, Left, Down, Right, UpLeft, UpRight, DownLeft, DownRight}

// PawnAdvance returns the forward direction for pawns of the given colour.
// White pawns move up in rank, black pawns down.
func PawnAdvance(colour Colour) Direction {
	if colour == White {
		return Up
	}
	return Down
}

// Step moves one step in the given direction. It returns false instead
// of wrapping when the step leaves the board.
func (p Position) Step(d Direction) (Position, bool) {
	rank := p.Rank() + d.rank
	file := p.File() + d.file
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		return 0, false
	}
	return Position(rank<<3 | file), true
}
