package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// MoveSet holds the legal destinations of the piece standing on From.
// The To list may be empty; there is always a piece at From.
type MoveSet struct {
	From chess.Position
	To   []chess.Position
}

// LegalMoves returns, for every piece of the given colour in ascending
// square order, its legal destinations in generation order. A move is
// legal when it matches the piece's movement shape and does not leave
// the mover's own king attacked.
func (g Game) LegalMoves(colour chess.Colour) []MoveSet {
	pieces := g.board.Pieces(colour)
	sets := make([]MoveSet, 0, len(pieces))
	for _, pp := range pieces {
		sets = append(sets, MoveSet{From: pp.Pos, To: g.destinations(pp.Pos, pp.Piece)})
	}
	return sets
}

// destinations computes the legal destinations for one piece.
func (g Game) destinations(from chess.Position, piece chess.Piece) []chess.Position {
	colour := piece.Colour()
	switch piece.Type() {
	case chess.Pawn:
		return g.pawnDestinations(from, colour)
	case chess.Knight:
		return g.offsetDestinations(from, colour, chess.KnightJumps[:])
	case chess.Bishop:
		return g.slideDestinations(from, colour, chess.DiagonalDirections[:])
	case chess.Rook:
		return g.slideDestinations(from, colour, chess.StraightDirections[:])
	case chess.Queen:
		return g.slideDestinations(from, colour, chess.QueenDirections[:])
	case chess.King:
		return g.kingDestinations(from, colour)
	}
	return nil
}

// leavesKingSafe simulates the candidate move and reports whether the
// mover's king is still safe afterwards. Promotions are simulated as
// queen promotions: the chosen piece cannot change whether the king is
// attacked, so one stand-in covers all four.
func (g Game) leavesKingSafe(from, to chess.Position, colour chess.Colour) bool {
	var after Game
	if g.IsPromotion(from, to) {
		after = g.Promote(from, to, chess.Queen)
	} else {
		after = g.Move(from, to)
	}
	return !after.InCheck(colour)
}

// pawnDestinations generates pawn moves: single push, double push from
// the starting rank, and diagonal captures including en passant
// against the tracked marker square.
func (g Game) pawnDestinations(from chess.Position, colour chess.Colour) []chess.Position {
	var moves []chess.Position
	advance := chess.PawnAdvance(colour)
	forward, ok := from.Step(advance)
	if !ok {
		return nil
	}

	if g.board.Vacant(forward) {
		if g.leavesKingSafe(from, forward, colour) {
			moves = append(moves, forward)
		}
		if from.Rank() == colour.PawnStartRank() {
			forwardTwo, ok := forward.Step(advance)
			if ok && g.board.Vacant(forwardTwo) && g.leavesKingSafe(from, forwardTwo, colour) {
				moves = append(moves, forwardTwo)
			}
		}
	}

	for _, side := range [2]chess.Direction{chess.Left, chess.Right} {
		target, ok := forward.Step(side)
		if !ok {
			continue
		}
		capturable := false
		if other, occupied := g.board.Get(target); occupied {
			capturable = other.Colour() != colour
		} else if g.epValid {
			// en passant: the enemy pawn that just advanced two ranks
			// stands beside us; we capture by moving behind it
			if adjacent, ok := from.Step(side); ok && adjacent == g.epSquare {
				if pawn, occupied := g.board.Get(adjacent); occupied && pawn.Colour() != colour {
					capturable = true
				}
			}
		}
		if capturable && g.leavesKingSafe(from, target, colour) {
			moves = append(moves, target)
		}
	}
	return moves
}

// offsetDestinations generates fixed-offset moves (knight jumps and
// single king steps): on-board squares not occupied by a friendly
// piece, filtered for king safety.
func (g Game) offsetDestinations(from chess.Position, colour chess.Colour, offsets []chess.Direction) []chess.Position {
	var moves []chess.Position
	for _, d := range offsets {
		to, ok := from.Step(d)
		if !ok {
			continue
		}
		if other, occupied := g.board.Get(to); occupied && other.Colour() == colour {
			continue
		}
		if g.leavesKingSafe(from, to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slideDestinations generates sliding moves: walk each direction one
// square at a time, adding empty squares and stopping at the first
// occupied one, which is included only if it holds an enemy piece.
func (g Game) slideDestinations(from chess.Position, colour chess.Colour, directions []chess.Direction) []chess.Position {
	var moves []chess.Position
	for _, d := range directions {
		for to, ok := from.Step(d); ok; to, ok = to.Step(d) {
			if other, occupied := g.board.Get(to); occupied {
				if other.Colour() != colour && g.leavesKingSafe(from, to, colour) {
					moves = append(moves, to)
				}
				break
			}
			if g.leavesKingSafe(from, to, colour) {
				moves = append(moves, to)
			}
		}
	}
	return moves
}

// kingDestinations generates the king's single steps plus castling,
// queenside then kingside. Castling is gated here — right still held,
// squares between king and rook vacant, king's start, transit and
// destination squares unattacked — rather than passed through the
// simulation filter, so that generation never recurses through itself.
func (g Game) kingDestinations(from chess.Position, colour chess.Colour) []chess.Position {
	moves := g.offsetDestinations(from, colour, chess.KingSteps[:])
	if g.castling.CanCastleQueenside(colour) {
		if to, ok := g.castleDestination(from, colour, chess.Left, 3); ok {
			moves = append(moves, to)
		}
	}
	if g.castling.CanCastleKingside(colour) {
		if to, ok := g.castleDestination(from, colour, chess.Right, 2); ok {
			moves = append(moves, to)
		}
	}
	return moves
}

// castleDestination checks the board-dependent castling conditions for
// one side and returns the king's destination square two files over.
// betweenSquares is the number of squares separating king and rook.
func (g Game) castleDestination(from chess.Position, colour chess.Colour, side chess.Direction, betweenSquares int) (chess.Position, bool) {
	pos := from
	for i := 0; i < betweenSquares; i++ {
		next, ok := pos.Step(side)
		if !ok || !g.board.Vacant(next) {
			return 0, false
		}
		pos = next
	}
	enemy := colour.Opposite()
	if g.attacks(enemy, from) {
		return 0, false
	}
	transit, _ := from.Step(side)
	destination, _ := transit.Step(side)
	if g.attacks(enemy, transit) || g.attacks(enemy, destination) {
		return 0, false
	}
	return destination, true
}
