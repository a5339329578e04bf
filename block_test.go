package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateCyclesThroughFourOrientations(t *testing.T) {
	for piece := PieceT; piece <= PieceI; piece++ {
		block := Block{Piece: piece, Rotation: R0}
		seen := map[Rotation]bool{block.Rotation: true}
		for i := 0; i < 3; i++ {
			block = block.Rotate()
			seen[block.Rotation] = true
		}
		assert.Len(t, seen, 4, "piece %s should visit all four rotations", piece)
		assert.Equal(t, Block{Piece: piece, Rotation: R0}, block.Rotate(), "fourth rotation wraps back to start")
	}
}

func TestShapeCellsStayInsideBoundingBox(t *testing.T) {
	for piece := PieceT; piece <= PieceI; piece++ {
		for rotation := R0; rotation <= R3; rotation++ {
			shape := Block{Piece: piece, Rotation: rotation}.Shape()
			assert.Equal(t, piece.Element(), shape.Element)
			for _, cell := range shape.Cells {
				assert.GreaterOrEqual(t, cell.Row, 0)
				assert.Less(t, cell.Row, shape.Rows)
				assert.GreaterOrEqual(t, cell.Column, 0)
				assert.Less(t, cell.Column, shape.Columns)
			}
		}
	}
}

func TestSquareBlockLooksTheSameInEveryRotation(t *testing.T) {
	base := Block{Piece: PieceO, Rotation: R0}.Shape()
	for rotation := R1; rotation <= R3; rotation++ {
		assert.Equal(t, base, Block{Piece: PieceO, Rotation: rotation}.Shape())
	}
}

func TestWideRotationsCarryWallKicks(t *testing.T) {
	assert.Equal(t, 2, Block{Piece: PieceI, Rotation: R0}.Shape().WallKick)
	assert.Equal(t, 0, Block{Piece: PieceI, Rotation: R1}.Shape().WallKick)
	assert.Equal(t, 1, Block{Piece: PieceT, Rotation: R0}.Shape().WallKick)
	assert.Equal(t, 0, Block{Piece: PieceO, Rotation: R0}.Shape().WallKick)
}

func TestPieceElementIsNeverEmptySpace(t *testing.T) {
	for piece := PieceT; piece <= PieceI; piece++ {
		assert.False(t, piece.Element().IsEmpty())
	}
}
