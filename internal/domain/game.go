package domain

import (
	"fmt"
	"math/rand"
)

// SpawnValues はスワイプ後に空きマスに出現しうる値（等確率）
var SpawnValues = []int{2, 4}

// Config はゲームの設定
type Config struct {
	Size         int
	Goal         int
	InitialTiles int
}

// DefaultConfig はデフォルトの設定を返す
func DefaultConfig() Config {
	return Config{
		Size:         4,
		Goal:         2048,
		InitialTiles: 2,
	}
}

// Validate は設定が正しいかどうかを検証する
func (c Config) Validate() error {
	switch {
	case c.Size < 1 || c.Size > MaxSize:
		return fmt.Errorf("%w: size %d", ErrInvalidConfig, c.Size)
	case c.Goal < 1:
		return fmt.Errorf("%w: goal %d", ErrInvalidConfig, c.Goal)
	case c.InitialTiles < 0 || c.InitialTiles > c.Size*c.Size:
		return fmt.Errorf("%w: %d initial tiles on size %d", ErrInvalidConfig, c.InitialTiles, c.Size)
	}
	return nil
}

// Game は2048ゲームの状態を管理する
// 同時に呼び出さないこと（呼び出し側で直列化する）
type Game struct {
	grid  *Grid
	score int
	moves int
	goal  int
	rng   *rand.Rand
}

// NewGame は新しいゲームを開始する
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	grid, err := NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	g := &Game{
		grid: grid,
		goal: cfg.Goal,
		rng:  rng,
	}
	// 初期配置
	for i := 0; i < cfg.InitialTiles; i++ {
		if err := g.InsertRandomNumber(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Grid は現在の盤面のコピーを返す
func (g *Game) Grid() *Grid {
	return g.grid.Clone()
}

// Score は現在のスコアを返す
func (g *Game) Score() int {
	return g.score
}

// Moves は盤面が変化した手の数を返す
func (g *Game) Moves() int {
	return g.moves
}

// Goal は勝利となるタイルの値を返す
func (g *Game) Goal() int {
	return g.goal
}

// Apply は入力された方向にスワイプする。ゲームオーバー後の入力は無視する
func (g *Game) Apply(dir Direction) (bool, error) {
	if g.IsGameOver() {
		return false, nil
	}
	return g.Move(dir)
}

// Move は指定した方向にスワイプを実行する
// 盤面が変化した場合はtrueを返し、手数を1増やしてタイルを1つ配置する
// 変化しない場合やエラーの場合、状態は一切変わらない
func (g *Game) Move(dir Direction) (bool, error) {
	next, gained, changed, err := slide(g.grid, dir)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	// スポーンに失敗した場合もコミットしない
	if err := spawn(next, g.rng); err != nil {
		return false, err
	}
	g.grid = next
	g.score += gained
	g.moves++
	return true, nil
}

func (g *Game) MoveUp() (bool, error)    { return g.Move(Up) }
func (g *Game) MoveDown() (bool, error)  { return g.Move(Down) }
func (g *Game) MoveLeft() (bool, error)  { return g.Move(Left) }
func (g *Game) MoveRight() (bool, error) { return g.Move(Right) }

// IsGameOver は空きマスがなく、隣接する同じ値のペアもないかどうかを返す
func (g *Game) IsGameOver() bool {
	if len(g.grid.EmptyCells()) > 0 {
		return false
	}
	size := g.grid.Size()
	for i := 0; i < size*size; i++ {
		if g.grid.mergeable(i, i+1, g.grid.SameRow) || g.grid.mergeable(i, i+size, g.grid.SameColumn) {
			return false
		}
	}
	return true
}

// IsGameWon は目標のタイルに到達したかどうかを返す
func (g *Game) IsGameWon() bool {
	return g.grid.HighestValue() >= g.goal
}

// InsertRandomNumber は空きマスの1つにランダムに2か4を配置する
func (g *Game) InsertRandomNumber() error {
	return spawn(g.grid, g.rng)
}

func spawn(grid *Grid, rng *rand.Rand) error {
	empty := grid.EmptyCells()
	if len(empty) == 0 {
		return ErrNoEmptyCell
	}

	index := empty[rng.Intn(len(empty))]
	value := SpawnValues[rng.Intn(len(SpawnValues))]
	return grid.SetValue(index, value)
}

// slide は src のコピーを dir 方向にスワイプし、結果・獲得スコア・変化の有無を返す（spawnなし）
func slide(src *Grid, dir Direction) (*Grid, int, bool, error) {
	if !dir.IsValid() {
		return nil, 0, false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	g := src.Clone()
	total := 0
	changed := false
	for n := 0; n < g.size; n++ {
		score, lineChanged, err := g.scanLine(g.Line(dir, n))
		if err != nil {
			return nil, 0, false, fmt.Errorf("swipe %s line %d: %w", dir, n, err)
		}
		total += score
		changed = changed || lineChanged
	}
	return g, total, changed, nil
}

// mustSlide は slide の失敗を不変条件の違反として扱う
func mustSlide(src *Grid, dir Direction) (*Grid, bool) {
	g, _, changed, err := slide(src, dir)
	if err != nil {
		panic(err)
	}
	return g, changed
}

// scanLine は1行/1列を line[0] 側に詰めてマージし、獲得スコアと変化の有無を返す
// gap はそれまでに見つかった空きマス（とマージで空いたマス）の数で、常に pos 以下になる
// マージで作られたタイルは同じ走査の中で再びマージされない
func (g *Grid) scanLine(line []int) (int, bool, error) {
	gap := 0
	locked := 0 // これより前の位置はマージ済みで固定（gapだけの走査と違い、[2,2,4]は[4,4]になる）
	score := 0
	changed := false

	for pos, index := range line {
		if g.cells[index] == 0 {
			gap++
			continue
		}

		to := pos - gap
		if err := g.SwapCells(index, line[to]); err != nil {
			return 0, false, err
		}

		if to-1 >= locked && g.cells[line[to-1]] == g.cells[line[to]] {
			merged, err := g.MergeCells(line[to], line[to-1])
			if err != nil {
				return 0, false, err
			}
			score += merged
			gap++
			locked = to
			changed = true
		} else if gap > 0 {
			changed = true
		}
	}
	return score, changed, nil
}
