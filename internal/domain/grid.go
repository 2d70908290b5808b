package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid は size×size の2048盤面を表す
// セルは行優先の1次元スライスで保持し、0は空きマスを意味する
type Grid struct {
	size  int
	cells []int
}

// MaxSize は盤面の一辺の上限
const MaxSize = 64

// NewGrid は空のGridを生成する
func NewGrid(size int) (*Grid, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Grid{size: size, cells: make([]int, size*size)}, nil
}

// NewGridFromCells はセルの値を指定してGridを生成する（cellsはコピーされる）
func NewGridFromCells(size int, cells []int) (*Grid, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	// size*size を計算する前に確認する
	if len(cells)/size != size || len(cells)%size != 0 {
		return nil, fmt.Errorf("%w: %d cells for size %d", ErrInvalidSize, len(cells), size)
	}
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	for i, v := range cells {
		if !validTile(v) {
			return nil, fmt.Errorf("%w: %d at index %d", ErrInvalidTile, v, i)
		}
	}
	copy(g.cells, cells)
	return g, nil
}

// validTile は0または2以上の2の累乗かどうかを返す
func validTile(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// Size は盤面の一辺の長さを返す
func (g *Grid) Size() int {
	return g.size
}

// Index は(row, col)を1次元のインデックスに変換する
func (g *Grid) Index(row, col int) int {
	return row*g.size + col
}

// Position はインデックスを(row, col)に変換する
func (g *Grid) Position(index int) (row, col int) {
	return index / g.size, index % g.size
}

// InBounds はインデックスが盤面内かどうかを返す
func (g *Grid) InBounds(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// SameRow は2つのインデックスが同じ行を指すかどうかを返す（範囲チェックはしない）
func (g *Grid) SameRow(i, j int) bool {
	return i/g.size == j/g.size
}

// SameColumn は2つのインデックスが同じ列を指すかどうかを返す（範囲チェックはしない）
func (g *Grid) SameColumn(i, j int) bool {
	return i%g.size == j%g.size
}

func (g *Grid) checkBounds(indices ...int) error {
	for _, i := range indices {
		if !g.InBounds(i) {
			return fmt.Errorf("%w: %d (size %d)", ErrOutOfBounds, i, g.size)
		}
	}
	return nil
}

// CellAt は指定したインデックスのセル値を取得する
func (g *Grid) CellAt(index int) (int, error) {
	if err := g.checkBounds(index); err != nil {
		return 0, err
	}
	return g.cells[index], nil
}

// IsEmpty は指定したセルが空きマスかどうかを返す
func (g *Grid) IsEmpty(index int) bool {
	return g.InBounds(index) && g.cells[index] == 0
}

// EmptyCells は空きマスのインデックスを昇順で返す
func (g *Grid) EmptyCells() []int {
	var empty []int
	for i, v := range g.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// HighestValue は盤面の最大タイル値を返す
func (g *Grid) HighestValue() int {
	highest := 0
	for _, v := range g.cells {
		highest = max(highest, v)
	}
	return highest
}

// SwapCells は2つのセルの値を入れ替える
func (g *Grid) SwapCells(i, j int) error {
	if err := g.checkBounds(i, j); err != nil {
		return err
	}
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	return nil
}

// MergeCells はセルiをセルjに合体させ、合体後の値（獲得スコア）を返す
// 2つのセルは同じ値かつ空でないこと
func (g *Grid) MergeCells(i, j int) (int, error) {
	if err := g.checkBounds(i, j); err != nil {
		return 0, err
	}
	if i == j || g.cells[i] == 0 || g.cells[i] != g.cells[j] {
		return 0, fmt.Errorf("%w: %d at %d, %d at %d", ErrInvalidMerge, g.cells[i], i, g.cells[j], j)
	}
	merged := g.cells[j] * 2
	g.cells[j] = merged
	g.cells[i] = 0
	return merged, nil
}

// SetValue は指定したセルに値を設定する
func (g *Grid) SetValue(index, value int) error {
	if err := g.checkBounds(index); err != nil {
		return err
	}
	if !validTile(value) {
		return fmt.Errorf("%w: %d", ErrInvalidTile, value)
	}
	g.cells[index] = value
	return nil
}

// Line は n 番目の行または列のインデックスを dir 方向の走査順で返す
// 先頭（位置0）がタイルの寄せられる端になる
func (g *Grid) Line(dir Direction, n int) []int {
	if !dir.IsValid() || n < 0 || n >= g.size {
		return nil
	}
	line := make([]int, g.size)
	last := g.size - 1
	for k := range line {
		switch dir {
		case Left:
			line[k] = g.Index(n, k)
		case Right:
			line[k] = g.Index(n, last-k)
		case Up:
			line[k] = g.Index(k, n)
		case Down:
			line[k] = g.Index(last-k, n)
		}
	}
	return line
}

// mergeable は2つのセルが same の関係にあり、盤面内で、同じ値を持つかどうかを返す
func (g *Grid) mergeable(i, j int, same func(i, j int) bool) bool {
	if !same(i, j) || !g.InBounds(i) || !g.InBounds(j) {
		return false
	}
	return g.cells[i] != 0 && g.cells[i] == g.cells[j]
}

// Clone はGridのコピーを返す
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Cells はセルの値を行優先で返す（コピー）
func (g *Grid) Cells() []int {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Equal は2つのGridが等しいかどうかを返す
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// CellWidth は最大タイルを表示するのに必要なセル幅を返す
func (g *Grid) CellWidth() int {
	return max(5, len(strconv.Itoa(g.HighestValue()))+1)
}

// Format はGridをASCIIアートとして整形する
// paint が nil でなければ、右詰めされた各タイルの文字列に適用される
func (g *Grid) Format(paint func(value int, text string) string) string {
	width := g.CellWidth()
	line := "+" + strings.Repeat(strings.Repeat("-", width+1)+"+", g.size)

	var sb strings.Builder
	sb.WriteString(line + "\n")
	for r := 0; r < g.size; r++ {
		sb.WriteString("|")
		for c := 0; c < g.size; c++ {
			v := g.cells[g.Index(r, c)]
			if v == 0 {
				sb.WriteString(strings.Repeat(" ", width+1) + "|")
				continue
			}
			text := fmt.Sprintf("%*d", width, v)
			if paint != nil {
				text = paint(v, text)
			}
			sb.WriteString(text + " |")
		}
		sb.WriteString("\n" + line + "\n")
	}
	return sb.String()
}

// String はGridをASCIIアートとして表示する
func (g *Grid) String() string {
	return g.Format(nil)
}
