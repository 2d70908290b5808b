package domain

import "math"

// Evaluator はGridを評価してスコアを返すインターフェース
type Evaluator interface {
	Evaluate(g *Grid) float64
}

// WeightedEvaluator は複数のEvaluatorを係数付きで組み合わせる
type WeightedEvaluator struct {
	evaluators []Evaluator
	weights    []float64
}

// NewWeightedEvaluator は係数付きEvaluatorを生成する
func NewWeightedEvaluator(evaluators []Evaluator, weights []float64) *WeightedEvaluator {
	return &WeightedEvaluator{
		evaluators: evaluators,
		weights:    weights,
	}
}

// NewHeuristicEvaluator は自動プレイ用の標準的な重み付けを返す
func NewHeuristicEvaluator() *WeightedEvaluator {
	return NewWeightedEvaluator(
		[]Evaluator{
			&EmptyCellsEvaluator{},
			&MonotonicityEvaluator{},
			&SmoothnessEvaluator{},
			&MaxTileEvaluator{},
			&MergeableEvaluator{},
		},
		[]float64{2.7, 1.0, 0.1, 1.0, 0.5},
	)
}

// Evaluate は全てのEvaluatorの重み付き和を返す
func (w *WeightedEvaluator) Evaluate(g *Grid) float64 {
	score := 0.0
	for i, ev := range w.evaluators {
		score += w.weights[i] * ev.Evaluate(g)
	}
	return score
}

// EmptyCellsEvaluator は空きマス数で評価する
type EmptyCellsEvaluator struct{}

func (e *EmptyCellsEvaluator) Evaluate(g *Grid) float64 {
	return float64(len(g.EmptyCells()))
}

// MonotonicityEvaluator は単調性で評価する（角から降順に並ぶほど高評価）
type MonotonicityEvaluator struct{}

func (e *MonotonicityEvaluator) Evaluate(g *Grid) float64 {
	// 4つの角それぞれを基準にした単調性を計算し、最大を返す
	best := math.Inf(-1)
	for _, rowDir := range []Direction{Left, Right} {
		for _, colDir := range []Direction{Up, Down} {
			best = max(best, e.calcMonotonicity(g, rowDir, colDir))
		}
	}
	return best
}

func (e *MonotonicityEvaluator) calcMonotonicity(g *Grid, rowDir, colDir Direction) float64 {
	score := 0.0
	for _, dir := range []Direction{rowDir, colDir} {
		for n := 0; n < g.Size(); n++ {
			line := g.Line(dir, n)
			for k := 0; k+1 < len(line); k++ {
				if g.cells[line[k]] >= g.cells[line[k+1]] {
					score += 1
				}
			}
		}
	}
	return score
}

// SmoothnessEvaluator は隣接タイルの値の差で評価する（差が小さいほど高評価）
type SmoothnessEvaluator struct{}

func (e *SmoothnessEvaluator) Evaluate(g *Grid) float64 {
	penalty := 0.0
	for _, dir := range []Direction{Left, Up} {
		for n := 0; n < g.Size(); n++ {
			line := g.Line(dir, n)
			for k := 0; k+1 < len(line); k++ {
				a, b := g.cells[line[k]], g.cells[line[k+1]]
				if a == 0 || b == 0 {
					continue
				}
				penalty += math.Abs(math.Log2(float64(a)) - math.Log2(float64(b)))
			}
		}
	}
	// ペナルティなので負の値を返す
	return -penalty
}

// MaxTileEvaluator は最大タイルの値（log2）で評価する
type MaxTileEvaluator struct{}

func (e *MaxTileEvaluator) Evaluate(g *Grid) float64 {
	highest := g.HighestValue()
	if highest == 0 {
		return 0
	}
	return math.Log2(float64(highest))
}

// MergeableEvaluator は隣接する同じ値のペア数で評価する
type MergeableEvaluator struct{}

func (e *MergeableEvaluator) Evaluate(g *Grid) float64 {
	count := 0.0
	size := g.Size()
	for i := range g.cells {
		if g.mergeable(i, i+1, g.SameRow) {
			count++
		}
		if g.mergeable(i, i+size, g.SameColumn) {
			count++
		}
	}
	return count
}
