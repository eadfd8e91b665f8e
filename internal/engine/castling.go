package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// sideRights tracks one colour's castling eligibility. A king move is
// terminal; rook flags only matter while the king has not moved.
// Flags never re-set once cleared.
type sideRights struct {
	kingMoved          bool
	queensideRookMoved bool
	kingsideRookMoved  bool
}

// CastlingRights is the per-colour castling state machine. It is a
// plain value: transitions return a new CastlingRights. It tracks only
// whether the relevant pieces have moved; board occupancy and attack
// constraints are the move generator's concern.
type CastlingRights struct {
	white, black sideRights
}

// NewCastlingRights grants both colours both castling options.
func NewCastlingRights() CastlingRights {
	return CastlingRights{}
}

func (r CastlingRights) side(colour chess.Colour) sideRights {
	if colour == chess.White {
		return r.white
	}
	return r.black
}

func (r CastlingRights) withSide(colour chess.Colour, s sideRights) CastlingRights {
	if colour == chess.White {
		r.white = s
	} else {
		r.black = s
	}
	return r
}

// MoveKing records that the colour's king has moved, permanently
// forfeiting both castling options.
func (r CastlingRights) MoveKing(colour chess.Colour) CastlingRights {
	return r.withSide(colour, sideRights{kingMoved: true})
}

// MoveQueensideRook records that the colour's queenside rook has left
// its starting corner.
func (r CastlingRights) MoveQueensideRook(colour chess.Colour) CastlingRights {
	s := r.side(colour)
	if !s.kingMoved {
		s.queensideRookMoved = true
	}
	return r.withSide(colour, s)
}

// MoveKingsideRook records that the colour's kingside rook has left
// its starting corner.
func (r CastlingRights) MoveKingsideRook(colour chess.Colour) CastlingRights {
	s := r.side(colour)
	if !s.kingMoved {
		s.kingsideRookMoved = true
	}
	return r.withSide(colour, s)
}

// CanCastleQueenside reports whether the colour still holds its
// queenside castling right.
func (r CastlingRights) CanCastleQueenside(colour chess.Colour) bool {
	s := r.side(colour)
	return !s.kingMoved && !s.queensideRookMoved
}

// CanCastleKingside reports whether the colour still holds its
// kingside castling right.
func (r CastlingRights) CanCastleKingside(colour chess.Colour) bool {
	s := r.side(colour)
	return !s.kingMoved && !s.kingsideRookMoved
}
