// Package render draws a Board as an SVG document, the engine's one
// external presentation surface. It is deliberately separate from the
// core package: chess has no opinion on pixels, and nothing in
// movegen.go or game.go imports this package.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	chess "github.com/rdhart/chesscore"
)

const (
	squareSize  = 64
	boardPixels = squareSize * 8
)

var (
	lightSquare = "#eeeed2"
	darkSquare  = "#769656"
)

// glyphs maps a piece to its Unicode chess symbol, drawn as SVG text
// rather than embedded artwork.
var glyphs = map[chess.Piece]string{
	chess.WhiteKing: "♔", chess.WhiteQueen: "♕", chess.WhiteRook: "♖",
	chess.WhiteBishop: "♗", chess.WhiteKnight: "♘", chess.WhitePawn: "♙",
	chess.BlackKing: "♚", chess.BlackQueen: "♛", chess.BlackRook: "♜",
	chess.BlackBishop: "♝", chess.BlackKnight: "♞", chess.BlackPawn: "♟",
}

// SVG writes board as an 8x8 SVG diagram to w. perspective chooses
// which side sits at the bottom: chess.White draws rank 1 at the
// bottom (the usual orientation), chess.Black flips the board.
func SVG(w io.Writer, board *chess.Board, perspective chess.Color) {
	canvas := svg.New(w)
	canvas.Start(boardPixels, boardPixels)
	defer canvas.End()

	for _, sq := range chess.AllSquares() {
		x, y := squareOrigin(sq, perspective)
		color := lightSquare
		if (int(sq.File())+int(sq.Rank()))%2 == 0 {
			color = darkSquare
		}
		canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)

		piece, ok := board.PieceAt(sq)
		if !ok {
			continue
		}
		glyph, ok := glyphs[piece]
		if !ok {
			continue
		}
		canvas.Text(x+squareSize/2, y+squareSize*3/4, glyph,
			"text-anchor:middle;font-size:40px")
	}
}

// squareOrigin returns the top-left pixel of sq under perspective,
// SVG's y axis running top to bottom (so rank 8 is drawn at y=0 when
// White is at the bottom).
func squareOrigin(sq chess.Square, perspective chess.Color) (x, y int) {
	file := int(sq.File())
	rank := int(sq.Rank())
	if perspective == chess.Black {
		file = 7 - file
		rank = 7 - rank
	}
	x = file * squareSize
	y = (7 - rank) * squareSize
	return x, y
}
