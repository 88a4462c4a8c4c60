// Package model holds the passive data describing one variant-Sudoku
// instance: the grid itself plus the optional sub-structure for each
// supported variant. Nothing in this package talks to a solver; it only
// describes a puzzle and validates that its shape is internally
// consistent.
package model

// Cell identifies a grid position by row (Y) then column (X), both
// zero-based.
type Cell struct {
	Y int `json:"y"`
	X int `json:"x"`
}

// Path is an ordered sequence of cells, used by Arrow, Thermo and
// Palindrome.
type Path []Cell

// Parity restricts the parity of a cell's digit.
type Parity int

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// BorderMark labels the marker (if any) drawn on a border between two
// adjacent cells, used by the XV variant.
type BorderMark int

const (
	MarkNone BorderMark = iota
	MarkX
	MarkV
)

// Blocks describes a wall-based region layout: true means a wall sits
// between the two adjacent cells it separates. Connected wall-free
// components of size exactly N form a complete set.
type Blocks struct {
	// Horizontal[y][x] is the wall between cell (y,x) and (y+1,x). Shape (N-1)xN.
	Horizontal [][]bool `json:"horizontalBorder"`
	// Vertical[y][x] is the wall between cell (y,x) and (y,x+1). Shape Nx(N-1).
	Vertical [][]bool `json:"verticalBorder"`
}

// OddEven restricts the parity of each cell's digit. CellKind[y][x] is
// one of ParityNone/ParityOdd/ParityEven.
type OddEven struct {
	CellKind [][]Parity `json:"cellKind"`
}

// XV describes X/V sum markers on cell borders.
type XV struct {
	// Horizontal[y][x] marks the border between (y,x) and (y+1,x). Shape (N-1)xN.
	Horizontal [][]BorderMark `json:"horizontalBorder"`
	// Vertical[y][x] marks the border between (y,x) and (y,x+1). Shape Nx(N-1).
	Vertical [][]BorderMark `json:"verticalBorder"`
	AllShown bool           `json:"allShown"`
}

// Diagonal marks which of the two main diagonals form complete sets.
type Diagonal struct {
	MainDiagonal bool `json:"mainDiagonal"`
	AntiDiagonal bool `json:"antiDiagonal"`
}

// KillerCage is one region of the Killer variant: its cells, and an
// optional sum target (nil means "no sum constraint for this cage").
type KillerCage struct {
	Cells []Cell `json:"cells"`
	Sum   *int   `json:"extraValue,omitempty"`
}

// Killer is the set of killer cages plus whether each cage's cells must
// additionally be pairwise distinct.
type Killer struct {
	Cages    []KillerCage `json:"cages"`
	Distinct bool         `json:"distinct"`
}

// Consecutive describes white-dot markers between adjacent cells: a true
// entry means the two cells must differ by exactly one.
type Consecutive struct {
	// Horizontal[y][x] marks the border between (y,x) and (y+1,x). Shape (N-1)xN.
	Horizontal [][]bool `json:"horizontalBorder"`
	// Vertical[y][x] marks the border between (y,x) and (y,x+1). Shape Nx(N-1).
	Vertical [][]bool `json:"verticalBorder"`
	AllShown bool     `json:"allShown"`
}

// Skyscrapers holds the optional visibility clue for each side of the
// grid, indexed along that side. A nil entry means "no clue".
type Skyscrapers struct {
	Up    []*int `json:"up,omitempty"`
	Down  []*int `json:"down,omitempty"`
	Left  []*int `json:"left,omitempty"`
	Right []*int `json:"right,omitempty"`
}

// XSums holds the optional X-sum clue for each side of the grid.
type XSums struct {
	Up    []*int `json:"up,omitempty"`
	Down  []*int `json:"down,omitempty"`
	Left  []*int `json:"left,omitempty"`
	Right []*int `json:"right,omitempty"`
}

// ForbiddenCandidates marks, per cell and per digit, whether that digit
// is disallowed there regardless of any other constraint.
type ForbiddenCandidates struct {
	// IsForbidden[y][x][i] true means digit i+1 must not appear at (y,x).
	IsForbidden [][][]bool `json:"isForbidden"`
}

// Region is a group of cells used by ExtraRegions.
type Region struct {
	Cells []Cell `json:"cells"`
}

// Puzzle is the immutable input record: the grid's side length, its
// given-digit overlay, and the optional data for each active variant. A
// nil field means that variant is not in play.
type Puzzle struct {
	N                   int                  `json:"n"`
	GivenNumbers        [][]int              `json:"givenNumbers"`
	Blocks              *Blocks              `json:"blocks,omitempty"`
	OddEven             *OddEven             `json:"oddEven,omitempty"`
	NonConsecutive      bool                 `json:"nonConsecutive,omitempty"`
	XV                  *XV                  `json:"xv,omitempty"`
	Diagonal            *Diagonal            `json:"diagonal,omitempty"`
	Arrow               []Path               `json:"arrow,omitempty"`
	Thermo              []Path               `json:"thermo,omitempty"`
	Killer              *Killer              `json:"killer,omitempty"`
	Consecutive         *Consecutive         `json:"consecutive,omitempty"`
	Skyscrapers         *Skyscrapers         `json:"skyscrapers,omitempty"`
	XSums               *XSums               `json:"xSums,omitempty"`
	ExtraRegions        []Region             `json:"extraRegions,omitempty"`
	Palindrome          []Path               `json:"palindrome,omitempty"`
	ForbiddenCandidates *ForbiddenCandidates `json:"forbiddenCandidates,omitempty"`
	AntiKnight          bool                 `json:"antiKnight,omitempty"`
	NoTouch             bool                 `json:"noTouch,omitempty"`
}

// InBounds reports whether c is a valid position on an N×N grid.
func (c Cell) InBounds(n int) bool {
	return c.Y >= 0 && c.Y < n && c.X >= 0 && c.X < n
}
