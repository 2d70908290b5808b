package usecase

import (
	"fmt"
	"io"
	"time"

	"github.com/leonelquinteros/gotext"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
)

// AutoPlayConfig は自動プレイの設定
type AutoPlayConfig struct {
	MaxDepth    int
	Delay       time.Duration
	UseParallel bool
	Verbose     bool
	// MaxMoves が0より大きければ、その手数で打ち切る
	MaxMoves  int
	StopOnWin bool
	Renderer  *Renderer
}

// DefaultAutoPlayConfig はデフォルトの設定を返す
func DefaultAutoPlayConfig() AutoPlayConfig {
	return AutoPlayConfig{
		MaxDepth:    3,
		Delay:       100 * time.Millisecond,
		UseParallel: false,
		Verbose:     true,
		Renderer:    NewRenderer(false),
	}
}

// Result は自動プレイの結果
type Result struct {
	Score   int
	Moves   int
	MaxTile int
	Won     bool
}

type solver interface {
	BestMove(g *domain.Grid) (domain.Direction, bool)
}

// AutoPlay は自動でゲームをプレイする
func AutoPlay(w io.Writer, game *domain.Game, config AutoPlayConfig) (Result, error) {
	if config.Renderer == nil {
		config.Renderer = NewRenderer(false)
	}

	evaluator := domain.NewHeuristicEvaluator()
	var s solver = domain.NewSolver(evaluator, config.MaxDepth)
	mode := "Sequential"
	if config.UseParallel {
		s = domain.NewParallelSolver(evaluator, config.MaxDepth)
		mode = "Parallel"
	}

	if config.Verbose {
		fmt.Fprintln(w, gotext.Get("=== %d AutoPlay ===", game.Goal()))
		fmt.Fprintln(w, gotext.Get("Depth: %d, Mode: %s", config.MaxDepth, mode))
		fmt.Fprintln(w)
	}

	for !game.IsGameOver() {
		if config.MaxMoves > 0 && game.Moves() >= config.MaxMoves {
			break
		}
		if config.StopOnWin && game.IsGameWon() {
			break
		}

		grid := game.Grid()
		if config.Verbose {
			fmt.Fprint(w, config.Renderer.Render(grid))
			fmt.Fprintln(w, gotext.Get("Score: %d, Moves: %d", game.Score(), game.Moves()))
		}

		dir, ok := s.BestMove(grid)
		if !ok {
			break
		}
		if config.Verbose {
			fmt.Fprintln(w, gotext.Get("Move: %s", dir))
			fmt.Fprintln(w)
		}

		if _, err := game.Apply(dir); err != nil {
			return Result{}, fmt.Errorf("usecase: autoplay move %s: %w", dir, err)
		}

		if config.Delay > 0 {
			time.Sleep(config.Delay)
		}
	}

	result := Result{
		Score:   game.Score(),
		Moves:   game.Moves(),
		MaxTile: game.Grid().HighestValue(),
		Won:     game.IsGameWon(),
	}

	// 最終結果は常に表示
	fmt.Fprint(w, config.Renderer.Render(game.Grid()))
	if game.IsGameOver() {
		fmt.Fprintln(w, gotext.Get("=== Game Over ==="))
	}
	fmt.Fprintln(w, gotext.Get("Final Score: %d", result.Score))
	fmt.Fprintln(w, gotext.Get("Total Moves: %d", result.Moves))
	fmt.Fprintln(w, gotext.Get("Max Tile: %d", result.MaxTile))

	return result, nil
}
