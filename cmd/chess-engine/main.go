// chess-engine is a command-line front end for the chess rules engine
// and its alpha-beta search: it replays scripted moves from a starting
// position, then lets the engine play against itself for a bounded
// number of plies.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

const programVersion = "0.1.0"

var (
	fen     = flag.String("fen", engine.InitialFEN, "starting position in FEN")
	moves   = flag.String("moves", "", "space-separated coordinate moves to pre-play, e.g. \"e2e4 e7e5\"")
	depth   = flag.Int("depth", 3, "search depth in plies beyond the immediate replies")
	plies   = flag.Int("plies", 0, "number of engine self-play plies (0 = only suggest one move)")
	workers = flag.Int("workers", 1, "worker goroutines for root-move evaluation")
	quiet   = flag.Bool("quiet", false, "print only moves and the final position")
	version = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	g, err := engine.GameFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-engine: %v\n", err)
		os.Exit(1)
	}

	g, err = preplay(g, *moves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-engine: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Println(boardString(g))
	}

	if *plies <= 0 {
		suggest(g)
		return
	}
	selfPlay(g, *plies)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays scripted moves, then plays the engine against itself.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

// preplay applies a whitespace-separated list of coordinate moves.
func preplay(g engine.Game, script string) (engine.Game, error) {
	for i, text := range strings.Fields(script) {
		move, err := parseMove(g, text)
		if err != nil {
			return engine.Game{}, &errors.MoveError{Err: err, Ply: i + 1, MoveText: text}
		}
		g = search.Apply(g, move)
	}
	return g, nil
}

// parseMove parses a coordinate move ("e2e4", promotions "e7e8q") and
// checks it against the current legal moves.
func parseMove(g engine.Game, text string) (search.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return search.Move{}, errors.Wrapf(errors.ErrIllegalMove, "malformed move %q", text)
	}
	from, err := chess.ParseSquare(text[:2])
	if err != nil {
		return search.Move{}, err
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return search.Move{}, err
	}
	promotion := chess.NoPieceType
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promotion = chess.Queen
		case 'r':
			promotion = chess.Rook
		case 'b':
			promotion = chess.Bishop
		case 'n':
			promotion = chess.Knight
		default:
			return search.Move{}, errors.Wrapf(errors.ErrIllegalMove, "unknown promotion piece %q", text[4])
		}
	}
	if g.IsPromotion(from, to) && promotion == chess.NoPieceType {
		promotion = chess.Queen
	}

	want := search.Move{From: from, To: to, Promotion: promotion}
	for _, legal := range search.Moves(g) {
		if legal == want {
			return want, nil
		}
	}
	return search.Move{}, errors.ErrIllegalMove
}

// choose picks the engine's move, fanning out over workers when asked.
func choose(g engine.Game) search.Move {
	if *workers > 1 {
		return search.ChooseParallel(g, *depth, *workers)
	}
	return search.Choose(g, *depth)
}

// suggest prints the engine's preferred move for the side to move.
func suggest(g engine.Game) {
	if outcome, over := g.Status(); over {
		fmt.Printf("Game over: %v\n", outcome)
		return
	}
	fmt.Printf("%v plays %v\n", g.Turn(), choose(g))
}

// selfPlay lets the engine play both sides for at most maxPlies plies.
func selfPlay(g engine.Game, maxPlies int) {
	for ply := 1; ply <= maxPlies; ply++ {
		outcome, over := g.Status()
		if over {
			fmt.Printf("Game over: %v\n", outcome)
			return
		}
		move := choose(g)
		fmt.Printf("%3d. %v plays %v\n", ply, g.Turn(), move)
		g = search.Apply(g, move)
		if !*quiet {
			fmt.Println(boardString(g))
		}
	}
	if outcome, over := g.Status(); over {
		fmt.Printf("Game over: %v\n", outcome)
	} else if *quiet {
		fmt.Println(boardString(g))
	}
}

// pieceGlyphs maps piece types to their display letters (uppercase).
var pieceGlyphs = map[chess.PieceType]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// boardString renders the position with rank 8 at the top, White's
// pieces uppercase.
func boardString(g engine.Game) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			glyph := byte('.')
			if piece, ok := g.PieceAt(chess.NewPosition(rank, file)); ok {
				glyph = pieceGlyphs[piece.Type()]
				if piece.Colour() == chess.Black {
					glyph += 'a' - 'A'
				}
			}
			sb.WriteByte(' ')
			sb.WriteByte(glyph)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h")
	return sb.String()
}
