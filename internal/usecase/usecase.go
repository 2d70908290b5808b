package usecase

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
	"github.com/nnaakkaaii/numbermerge/internal/persistence"
)

// PlayConfig はCLIプレイの設定
type PlayConfig struct {
	Renderer *Renderer
	// Store が nil でなければ save コマンドと終了時に状態を保存する
	Store *persistence.Store
}

// DefaultPlayConfig はデフォルトの設定を返す
func DefaultPlayConfig() PlayConfig {
	return PlayConfig{
		Renderer: NewRenderer(false),
	}
}

// PlayGame はCLIで2048ゲームを実行する
func PlayGame(r io.Reader, w io.Writer, game *domain.Game, config PlayConfig) error {
	if config.Renderer == nil {
		config.Renderer = NewRenderer(false)
	}
	reader := bufio.NewReader(r)

	fmt.Fprintln(w, gotext.Get("=== %d ===", game.Goal()))
	fmt.Fprintln(w, gotext.Get("Controls: w=Up, s=Down, a=Left, d=Right, save=Save, q=Quit"))
	fmt.Fprintln(w)

	announced := game.IsGameWon()
	for {
		fmt.Fprint(w, config.Renderer.Render(game.Grid()))
		fmt.Fprintln(w, gotext.Get("Score: %d, Moves: %d", game.Score(), game.Moves()))

		if game.IsGameWon() && !announced {
			announced = true
			fmt.Fprintln(w, gotext.Get("You reached %d! Keep going or q to quit.", game.Goal()))
		}

		if game.IsGameOver() {
			fmt.Fprintln(w, gotext.Get("Game Over!"))
			return discardSave(config.Store)
		}

		fmt.Fprint(w, gotext.Get("Move: "))
		input, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("usecase: read input: %w", err)
		}

		input = strings.TrimSpace(strings.ToLower(input))
		switch {
		case isQuit(input):
			if err := save(w, game, config.Store); err != nil {
				return err
			}
			fmt.Fprintln(w, gotext.Get("Quit."))
			return nil
		case input == "save":
			if config.Store == nil {
				fmt.Fprintln(w, gotext.Get("Saving is disabled."))
				continue
			}
			if err := save(w, game, config.Store); err != nil {
				return err
			}
			continue
		}

		dir, ok := ParseDirection(input)
		if !ok {
			fmt.Fprintln(w, gotext.Get("Invalid input. Use w/a/s/d, save, or q to quit."))
			continue
		}

		moved, err := game.Apply(dir)
		if err != nil {
			return fmt.Errorf("usecase: move %s: %w", dir, err)
		}
		if !moved {
			fmt.Fprintln(w, gotext.Get("Cannot move in that direction."))
		}
		fmt.Fprintln(w)
	}
}

func save(w io.Writer, game *domain.Game, store *persistence.Store) error {
	if store == nil {
		return nil
	}
	if err := store.Save(game.Snapshot()); err != nil {
		return err
	}
	fmt.Fprintln(w, gotext.Get("Saved to %s", store.Path()))
	return nil
}

// discardSave は終わったゲームのセーブを削除する
func discardSave(store *persistence.Store) error {
	if store == nil {
		return nil
	}
	if err := store.Remove(); err != nil && !errors.Is(err, persistence.ErrNoSave) {
		return err
	}
	return nil
}
