package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPieceChars maps piece types to their FEN letters (uppercase).
var fenPieceChars = map[chess.PieceType]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// pieceTypeFromFENChar converts a FEN letter to a piece type.
func pieceTypeFromFENChar(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}

// fenLetter returns the FEN letter for a coloured piece.
func fenLetter(piece chess.Piece) byte {
	letter := fenPieceChars[piece.Type()]
	if piece.Colour() == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// GameFromFEN creates a game from a FEN string. The halfmove clock and
// fullmove number fields are accepted but not tracked.
func GameFromFEN(fen string) (Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Game{}, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	g := Game{castling: NewCastlingRights()}

	if err := parsePiecePositions(&g.board, parts[0]); err != nil {
		return Game{}, err
	}
	if err := parseSideToMove(&g, parts); err != nil {
		return Game{}, err
	}
	parseCastlingRights(&g, parts)
	if err := parseEnPassant(&g, parts); err != nil {
		return Game{}, err
	}

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if !hasOneKing(g.board, colour) {
			return Game{}, errors.Wrapf(errors.ErrInvalidFEN, "%v must have exactly one king", colour)
		}
	}
	return g, nil
}

// hasOneKing reports whether the board holds exactly one king of the
// given colour.
func hasOneKing(board Board, colour chess.Colour) bool {
	king := chess.NewPiece(colour, chess.King)
	count := 0
	for pos := chess.Position(0); pos < chess.NumSquares; pos++ {
		if board[pos] == king {
			count++
		}
	}
	return count == 1
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *Board, positions string) error {
	rank, file := chess.BoardSize-1, 0
	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			pieceType := pieceTypeFromFENChar(byte(c))
			if pieceType == chess.NoPieceType {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			if rank < 0 || file >= chess.BoardSize {
				return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board[chess.NewPosition(rank, file)] = chess.NewPiece(colour, pieceType)
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, parts []string) error {
	g.turn = chess.White
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.turn = chess.White
	case "b":
		g.turn = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A colour
// with no flags at all is modelled as having moved its king; the
// distinction from "both rooks moved" cannot be observed through the
// rights queries.
func parseCastlingRights(g *Game, parts []string) {
	field := "-"
	if len(parts) >= 3 {
		field = parts[2]
	}
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		kingside, queenside := "K", "Q"
		if colour == chess.Black {
			kingside, queenside = "k", "q"
		}
		switch {
		case !strings.Contains(field, kingside) && !strings.Contains(field, queenside):
			g.castling = g.castling.MoveKing(colour)
		case !strings.Contains(field, kingside):
			g.castling = g.castling.MoveKingsideRook(colour)
		case !strings.Contains(field, queenside):
			g.castling = g.castling.MoveQueensideRook(colour)
		}
	}
}

// parseEnPassant parses the en passant target square field. FEN names
// the square the capturing pawn moves to; the game tracks the landing
// square of the pawn that just advanced, one rank further on.
func parseEnPassant(g *Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	skipped, err := chess.ParseSquare(parts[3])
	if err != nil {
		return errors.Wrap(errors.ErrInvalidFEN, "en passant square")
	}
	mover := g.turn.Opposite()
	landing, ok := skipped.Step(chess.PawnAdvance(mover))
	if !ok {
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant square %v", skipped)
	}
	g.epSquare, g.epValid = landing, true
	return nil
}

// FEN returns the FEN string for the game. The halfmove clock and
// fullmove number are not tracked and are emitted as "0 1".
func (g Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, g.board)
	sb.WriteByte(' ')
	if g.turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, g.castling)
	sb.WriteByte(' ')
	writeEnPassant(&sb, g)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.Get(chess.NewPosition(rank, file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights CastlingRights) {
	hasCastling := false
	if rights.CanCastleKingside(chess.White) {
		sb.WriteByte('K')
		hasCastling = true
	}
	if rights.CanCastleQueenside(chess.White) {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if rights.CanCastleKingside(chess.Black) {
		sb.WriteByte('k')
		hasCastling = true
	}
	if rights.CanCastleQueenside(chess.Black) {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder,
// converting the tracked landing square back to FEN's skipped square.
func writeEnPassant(sb *strings.Builder, g Game) {
	if !g.epValid {
		sb.WriteByte('-')
		return
	}
	skipped, ok := g.epSquare.Step(chess.PawnAdvance(g.turn))
	if !ok {
		sb.WriteByte('-')
		return
	}
	fmt.Fprintf(sb, "%v", skipped)
}
