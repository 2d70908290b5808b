package domain

import (
	"fmt"
	"math/rand"
)

// State はゲームの状態を永続化するための構造体
type State struct {
	Goal  int        `json:"goal"`
	Score int        `json:"score"`
	Moves int        `json:"moves"`
	Board BoardState `json:"board"`
}

// BoardState は盤面のサイズとセル（行優先）
type BoardState struct {
	Size  int   `json:"size"`
	Cells []int `json:"cells"`
}

// Snapshot は現在の状態を返す
func (g *Game) Snapshot() State {
	return State{
		Goal:  g.goal,
		Score: g.score,
		Moves: g.moves,
		Board: BoardState{
			Size:  g.grid.Size(),
			Cells: g.grid.Cells(),
		},
	}
}

// Restore は State からゲームを復元する
func Restore(state State, rng *rand.Rand) (*Game, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidState)
	}
	if state.Goal < 1 || state.Score < 0 || state.Moves < 0 {
		return nil, fmt.Errorf("%w: goal %d, score %d, moves %d", ErrInvalidState, state.Goal, state.Score, state.Moves)
	}
	grid, err := NewGridFromCells(state.Board.Size, state.Board.Cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return &Game{
		grid:  grid,
		score: state.Score,
		moves: state.Moves,
		goal:  state.Goal,
		rng:   rng,
	}, nil
}
