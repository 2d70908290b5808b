package usecase

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
)

var quitWords = newWordSet("q", "quit", "exit")

func newWordSet(words ...string) mapset.Set[string] {
	set := mapset.New[string]()
	for _, w := range words {
		set.Put(w)
	}
	return set
}

// ParseDirection は入力文字列を方向に変換する
func ParseDirection(input string) (domain.Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "w", "k", "up":
		return domain.Up, true
	case "s", "j", "down":
		return domain.Down, true
	case "a", "h", "left":
		return domain.Left, true
	case "d", "l", "right":
		return domain.Right, true
	default:
		return 0, false
	}
}

// isQuit は入力が終了コマンドかどうかを返す
func isQuit(input string) bool {
	return quitWords.Has(strings.ToLower(strings.TrimSpace(input)))
}
