package domain

import (
	"sync"
)

// ParallelSolver はトップレベルの手を並列に評価するソルバー
type ParallelSolver struct {
	*Solver
}

// NewParallelSolver は新しいParallelSolverを生成する
func NewParallelSolver(evaluator Evaluator, maxDepth int) *ParallelSolver {
	return &ParallelSolver{Solver: NewSolver(evaluator, maxDepth)}
}

// BestMove は現在の盤面から最良の手を返す
func (s *ParallelSolver) BestMove(g *Grid) (Direction, bool) {
	return pickBest(s.Analyze(g))
}

// Analyze は各方向の期待スコアを並列に計算する
func (s *ParallelSolver) Analyze(g *Grid) map[Direction]float64 {
	type result struct {
		dir   Direction
		score float64
	}

	// 有効な手を事前にフィルタリング
	var moves []Direction
	var boards []*Grid
	for _, dir := range Directions {
		next, changed := mustSlide(g, dir)
		if changed {
			moves = append(moves, dir)
			boards = append(boards, next)
		}
	}

	results := make([]result, len(moves))
	var wg sync.WaitGroup
	for i, dir := range moves {
		wg.Add(1)
		go func(idx int, d Direction) {
			defer wg.Done()
			results[idx] = result{dir: d, score: s.expectedScore(boards[idx], s.maxDepth-1)}
		}(i, dir)
	}
	wg.Wait()

	scores := make(map[Direction]float64, len(results))
	for _, r := range results {
		scores[r.dir] = r.score
	}
	return scores
}
