package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
)

// DefaultPath はセーブファイルのデフォルトのパス
const DefaultPath = "numbermerge_save.json"

const indent = "    "

// ErrNoSave はセーブファイルが存在しない場合のエラー
var ErrNoSave = errors.New("persistence: no saved game")

// Store はゲームの状態をJSONファイルに保存・読み込みする
type Store struct {
	path string
}

// NewStore は path に保存するStoreを生成する
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path はセーブファイルのパスを返す
func (s *Store) Path() string {
	return s.path
}

// Save は状態を書き込む
// 一時ファイルに書いてからリネームするので、途中で失敗しても既存のセーブは壊れない
func (s *Store) Save(state domain.State) error {
	data, err := json.MarshalIndent(state, "", indent)
	if err != nil {
		return fmt.Errorf("persistence: encode state: %w", err)
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp*")
	if err != nil {
		return fmt.Errorf("persistence: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("persistence: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persistence: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("persistence: rename to %s: %w", s.path, err)
	}
	return nil
}

// Load は保存された状態を読み込む
// 値の検証は domain.Restore で行う
func (s *Store) Load() (domain.State, error) {
	var state domain.State

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, fmt.Errorf("%w: %s", ErrNoSave, s.path)
	}
	if err != nil {
		return state, fmt.Errorf("persistence: read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("persistence: decode %s: %w", s.path, err)
	}
	return state, nil
}

// Exists はセーブファイルが存在するかどうかを返す
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Remove はセーブファイルを削除する
func (s *Store) Remove() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoSave, s.path)
	}
	if err != nil {
		return fmt.Errorf("persistence: remove %s: %w", s.path, err)
	}
	return nil
}
