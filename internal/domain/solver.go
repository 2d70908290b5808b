package domain

import "math"

// 期待値計算でサンプリングする空きマスの最大数
const defaultMaxSample = 6

// Solver はExpectimaxアルゴリズムで最良の手を探索する
type Solver struct {
	evaluator Evaluator
	maxDepth  int
	maxSample int
}

// NewSolver は新しいSolverを生成する
func NewSolver(evaluator Evaluator, maxDepth int) *Solver {
	return &Solver{
		evaluator: evaluator,
		maxDepth:  max(1, maxDepth),
		maxSample: defaultMaxSample,
	}
}

// BestMove は現在の盤面から最良の手を返す
// 有効な手がない場合はfalseを返す
func (s *Solver) BestMove(g *Grid) (Direction, bool) {
	return pickBest(s.Analyze(g))
}

// Analyze は盤面が変化する各方向について期待スコアを返す
func (s *Solver) Analyze(g *Grid) map[Direction]float64 {
	scores := make(map[Direction]float64, len(Directions))
	for _, dir := range Directions {
		next, changed := mustSlide(g, dir)
		if !changed {
			continue
		}
		scores[dir] = s.expectedScore(next, s.maxDepth-1)
	}
	return scores
}

// pickBest は最もスコアの高い方向を返す（同点は Directions の順で先のもの）
func pickBest(scores map[Direction]float64) (Direction, bool) {
	bestDir := Direction(-1)
	bestScore := math.Inf(-1)
	for _, dir := range Directions {
		score, ok := scores[dir]
		if ok && (bestDir == Direction(-1) || score > bestScore) {
			bestDir, bestScore = dir, score
		}
	}
	return bestDir, bestDir.IsValid()
}

// sampleCells は空きマスが多い場合に均等な間隔で選んだ一部を返す
func (s *Solver) sampleCells(empty []int) []int {
	if len(empty) <= s.maxSample {
		return empty
	}
	sample := make([]int, 0, s.maxSample)
	step := max(1, len(empty)/s.maxSample)
	for i := 0; i < len(empty) && len(sample) < s.maxSample; i += step {
		sample = append(sample, empty[i])
	}
	return sample
}

// expectedScore はスポーンの期待値を計算する
func (s *Solver) expectedScore(g *Grid, depth int) float64 {
	empty := g.EmptyCells()
	if len(empty) == 0 || depth <= 0 {
		return s.evaluator.Evaluate(g)
	}

	cells := s.sampleCells(empty)
	weight := 1.0 / float64(len(SpawnValues))

	total := 0.0
	for _, index := range cells {
		for _, value := range SpawnValues {
			spawned := g.Clone()
			spawned.cells[index] = value
			total += weight * s.searchMax(spawned, depth)
		}
	}
	return total / float64(len(cells))
}

// searchMax はプレイヤーの最善手を探索
func (s *Solver) searchMax(g *Grid, depth int) float64 {
	if depth <= 0 {
		return s.evaluator.Evaluate(g)
	}

	best := math.Inf(-1)
	moved := false
	for _, dir := range Directions {
		next, changed := mustSlide(g, dir)
		if !changed {
			continue
		}
		moved = true
		best = max(best, s.expectedScore(next, depth-1))
	}

	if !moved {
		return s.evaluator.Evaluate(g)
	}
	return best
}
