package domain

import "errors"

var (
	// ErrOutOfBounds は盤面の範囲外のインデックスにアクセスした場合のエラー
	ErrOutOfBounds = errors.New("domain: index out of bounds")

	// ErrInvalidMerge は値が異なる、または空のセル同士をマージしようとした場合のエラー
	ErrInvalidMerge = errors.New("domain: cells cannot be merged")

	// ErrInvalidTile はタイルの値が0または2以上の2の累乗でない場合のエラー
	ErrInvalidTile = errors.New("domain: invalid tile value")

	// ErrInvalidSize は盤面のサイズが不正な場合のエラー
	ErrInvalidSize = errors.New("domain: invalid grid size")

	// ErrNoEmptyCell は空きマスがないのにタイルを配置しようとした場合のエラー
	ErrNoEmptyCell = errors.New("domain: no empty cell")

	// ErrInvalidDirection はUp/Down/Left/Right以外の方向が指定された場合のエラー
	ErrInvalidDirection = errors.New("domain: invalid direction")

	// ErrInvalidConfig はゲームの設定が不正な場合のエラー
	ErrInvalidConfig = errors.New("domain: invalid config")

	// ErrInvalidState は復元しようとした状態が不正な場合のエラー
	ErrInvalidState = errors.New("domain: invalid state")
)
