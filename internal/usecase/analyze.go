package usecase

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
)

// AnalyzeConfig は盤面解析の設定
type AnalyzeConfig struct {
	MaxDepth    int
	UseParallel bool
	Renderer    *Renderer
}

type analyzer interface {
	solver
	Analyze(g *domain.Grid) map[domain.Direction]float64
}

// Analyze は保存された状態の盤面を表示し、各方向の評価値と推奨手を出力する
// 推奨手がなければ false を返す
func Analyze(w io.Writer, state domain.State, config AnalyzeConfig) (domain.Direction, bool, error) {
	// 解析ではスポーンしないので乱数は使われない
	game, err := domain.Restore(state, rand.New(rand.NewSource(0)))
	if err != nil {
		return 0, false, err
	}
	if config.Renderer == nil {
		config.Renderer = NewRenderer(false)
	}

	grid := game.Grid()
	fmt.Fprint(w, config.Renderer.Render(grid))
	fmt.Fprintln(w, gotext.Get("Score: %d, Moves: %d", game.Score(), game.Moves()))

	if game.IsGameOver() {
		fmt.Fprintln(w, gotext.Get("Game Over!"))
		return 0, false, nil
	}

	evaluator := domain.NewHeuristicEvaluator()
	var a analyzer = domain.NewSolver(evaluator, config.MaxDepth)
	if config.UseParallel {
		a = domain.NewParallelSolver(evaluator, config.MaxDepth)
	}

	scores := a.Analyze(grid)
	best, ok := a.BestMove(grid)
	if !ok {
		fmt.Fprintln(w, gotext.Get("No valid moves available!"))
		return 0, false, nil
	}

	fmt.Fprintln(w, gotext.Get("Move scores (depth %d):", config.MaxDepth))
	for _, dir := range domain.Directions {
		score, ok := scores[dir]
		if !ok {
			fmt.Fprintf(w, "  %-5s: %s\n", dir, gotext.Get("invalid"))
			continue
		}
		marker := ""
		if dir == best {
			marker = " " + gotext.Get("<-- best")
		}
		fmt.Fprintf(w, "  %-5s: %.2f%s\n", dir, score, marker)
	}
	fmt.Fprintln(w, gotext.Get("Recommended move: %s", best))

	return best, true, nil
}
