package main

// Piece is one of the seven tetromino kinds.
type Piece int

const (
	PieceT Piece = iota
	PieceJ
	PieceZ
	PieceO
	PieceS
	PieceL
	PieceI
)

const pieceCount = 7

func (p Piece) String() string {
	switch p {
	case PieceT:
		return "T"
	case PieceJ:
		return "J"
	case PieceZ:
		return "Z"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceL:
		return "L"
	case PieceI:
		return "I"
	default:
		return "?"
	}
}

// Rotation is one of the four orientations of a piece. Rotations cycle
// R0 -> R1 -> R2 -> R3 -> R0.
type Rotation int

const (
	R0 Rotation = iota
	R1
	R2
	R3
)

// Element is the content of a single playing-field cell. The zero value is
// empty space, so a zeroed grid starts out fully empty.
type Element int

const (
	EmptySpace Element = iota
	ElementT
	ElementJ
	ElementZ
	ElementO
	ElementS
	ElementL
	ElementI
)

func (e Element) IsEmpty() bool {
	return e == EmptySpace
}

func (e Element) String() string {
	switch e {
	case EmptySpace:
		return "#"
	case ElementT:
		return "T"
	case ElementJ:
		return "J"
	case ElementZ:
		return "Z"
	case ElementO:
		return "O"
	case ElementS:
		return "S"
	case ElementL:
		return "L"
	case ElementI:
		return "I"
	default:
		return "?"
	}
}

// Element returns the cell element a piece leaves behind when it lands.
func (p Piece) Element() Element {
	return Element(int(p) + 1)
}

// Block is a piece together with its current orientation. It is an immutable
// value; Rotate and Shape derive new data without touching the receiver.
type Block struct {
	Piece    Piece
	Rotation Rotation
}

// Rotate returns the block advanced to its next orientation. It performs no
// collision checking; callers validate the result against the grid before
// committing it.
func (b Block) Rotate() Block {
	return Block{Piece: b.Piece, Rotation: (b.Rotation + 1) % 4}
}

// Shape returns the concrete 4-cell footprint of the block inside its
// bounding box.
func (b Block) Shape() Shape {
	return shapeTable[b.Piece][b.Rotation]
}

// Cell is a (row, column) coordinate inside a shape's bounding box.
type Cell struct {
	Row    int
	Column int
}

// Shape describes the occupied cells of a block, the element those cells are
// made of, and how far the block may be nudged sideways when a rotation
// presses it against a wall.
type Shape struct {
	Element  Element
	WallKick int
	Rows     int
	Columns  int
	Cells    [4]Cell
}

var shapeTable = [pieceCount][4]Shape{
	PieceT: {
		R0: {Element: ElementT, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 0}, {0, 1}, {0, 2}, {1, 1}}},
		R1: {Element: ElementT, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
		R2: {Element: ElementT, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 1}, {1, 0}, {1, 1}, {1, 2}}},
		R3: {Element: ElementT, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 1}, {1, 1}, {1, 2}, {2, 1}}},
	},
	PieceJ: {
		R0: {Element: ElementJ, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{1, 0}, {1, 1}, {1, 2}, {2, 2}}},
		R1: {Element: ElementJ, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 1}, {1, 1}, {2, 1}, {2, 0}}},
		R2: {Element: ElementJ, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 0}, {1, 0}, {1, 1}, {1, 2}}},
		R3: {Element: ElementJ, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 1}, {0, 2}, {1, 1}, {2, 1}}},
	},
	PieceZ: {
		R0: {Element: ElementZ, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{1, 0}, {1, 1}, {2, 1}, {2, 2}}},
		R1: {Element: ElementZ, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 2}, {1, 1}, {1, 2}, {2, 1}}},
		R2: {Element: ElementZ, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{1, 0}, {1, 1}, {2, 1}, {2, 2}}},
		R3: {Element: ElementZ, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 2}, {1, 1}, {1, 2}, {2, 1}}},
	},
	PieceO: {
		// O has no visual rotation, so all four orientations share one shape.
		R0: {Element: ElementO, WallKick: 0, Rows: 2, Columns: 2, Cells: [4]Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		R1: {Element: ElementO, WallKick: 0, Rows: 2, Columns: 2, Cells: [4]Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		R2: {Element: ElementO, WallKick: 0, Rows: 2, Columns: 2, Cells: [4]Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		R3: {Element: ElementO, WallKick: 0, Rows: 2, Columns: 2, Cells: [4]Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	},
	PieceS: {
		R0: {Element: ElementS, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{1, 1}, {1, 2}, {2, 0}, {2, 1}}},
		R1: {Element: ElementS, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 1}, {1, 1}, {1, 2}, {2, 2}}},
		R2: {Element: ElementS, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{1, 1}, {1, 2}, {2, 0}, {2, 1}}},
		R3: {Element: ElementS, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 1}, {1, 1}, {1, 2}, {2, 2}}},
	},
	PieceL: {
		R0: {Element: ElementL, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{1, 0}, {1, 1}, {1, 2}, {2, 0}}},
		R1: {Element: ElementL, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
		R2: {Element: ElementL, WallKick: 1, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 2}, {1, 0}, {1, 1}, {1, 2}}},
		R3: {Element: ElementL, WallKick: 0, Rows: 3, Columns: 3, Cells: [4]Cell{{0, 1}, {1, 1}, {2, 1}, {2, 2}}},
	},
	PieceI: {
		R0: {Element: ElementI, WallKick: 2, Rows: 4, Columns: 4, Cells: [4]Cell{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		R1: {Element: ElementI, WallKick: 0, Rows: 4, Columns: 4, Cells: [4]Cell{{0, 2}, {1, 2}, {2, 2}, {3, 2}}},
		R2: {Element: ElementI, WallKick: 2, Rows: 4, Columns: 4, Cells: [4]Cell{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		R3: {Element: ElementI, WallKick: 0, Rows: 4, Columns: 4, Cells: [4]Cell{{0, 2}, {1, 2}, {2, 2}, {3, 2}}},
	},
}
