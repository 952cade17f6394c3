package game

import (
	"github.com/mzolotov/termsnake/internal/core"
)

// CellKind is the symbolic content of one board cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellBorder
	CellFood
	CellSnakeHead
	CellSnakeBody
)

// Board owns the square grid dimensions and a per-cell symbolic buffer used
// only for rendering. The buffer is fully derived each frame from the snake
// and the food; authoritative state lives in Snake.body and Food.pos.
type Board struct {
	size  int // width == height, in cells
	cells [][]CellKind
}

// NewBoard creates a square board of the given size in cells.
func NewBoard(size int) *Board {
	b := &Board{size: size}
	b.cells = make([][]CellKind, size)
	for y := range b.cells {
		b.cells[y] = make([]CellKind, size)
	}
	return b
}

// Size returns the board edge length in cells.
func (b *Board) Size() int {
	return b.size
}

// Inside reports whether p lies strictly inside the border ring.
// This is the sole wall-collision test.
func (b *Board) Inside(p core.Point) bool {
	return p.X > 0 && p.X < b.size-1 && p.Y > 0 && p.Y < b.size-1
}

// Rebuild derives the symbolic buffer from scratch: border ring, cleared
// interior, then food and snake stamped in that order, so a snake cell
// visually overrides a food cell at the same position.
func (b *Board) Rebuild(snake *Snake, food *Food) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if x == 0 || y == 0 || x == b.size-1 || y == b.size-1 {
				b.cells[y][x] = CellBorder
			} else {
				b.cells[y][x] = CellEmpty
			}
		}
	}

	b.stamp(food.Pos(), CellFood)
	for i, p := range snake.Body() {
		if i == 0 {
			b.stamp(p, CellSnakeHead)
		} else {
			b.stamp(p, CellSnakeBody)
		}
	}
}

// stamp sets one cell, ignoring out-of-range positions.
func (b *Board) stamp(p core.Point, k CellKind) {
	if p.X < 0 || p.X >= b.size || p.Y < 0 || p.Y >= b.size {
		return
	}
	b.cells[p.Y][p.X] = k
}

// At returns the symbolic content of the cell at p.
func (b *Board) At(p core.Point) CellKind {
	if p.X < 0 || p.X >= b.size || p.Y < 0 || p.Y >= b.size {
		return CellEmpty
	}
	return b.cells[p.Y][p.X]
}

// Each grid cell renders as two terminal columns so a square board looks
// square in a terminal, where character cells are about twice as tall as
// they are wide.
var cellGlyphs = map[CellKind]struct {
	runes [2]rune
	color core.Color
}{
	CellEmpty:     {[2]rune{' ', ' '}, core.ColorDefault},
	CellBorder:    {[2]rune{'█', '█'}, core.ColorYellow},
	CellFood:      {[2]rune{'●', ' '}, core.ColorBrightRed},
	CellSnakeHead: {[2]rune{'█', '█'}, core.ColorBrightGreen},
	CellSnakeBody: {[2]rune{'▓', '▓'}, core.ColorGreen},
}

// Draw writes the current buffer into dst with the given offset in screen
// cells. It is a pure read of the buffer: calling it any number of times
// with no intervening Rebuild produces identical output.
func (b *Board) Draw(dst *core.Screen, offsetX, offsetY int) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			g := cellGlyphs[b.cells[y][x]]
			dst.SetCell(offsetX+x*2, offsetY+y, g.runes[0], g.color)
			dst.SetCell(offsetX+x*2+1, offsetY+y, g.runes[1], g.color)
		}
	}
}
