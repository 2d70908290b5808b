package usecase

import (
	"github.com/gookit/color"

	"github.com/nnaakkaaii/numbermerge/internal/domain"
)

// タイルの値ごとの色
var tileStyles = map[int]color.Style{
	2:    {color.FgWhite},
	4:    {color.FgLightWhite},
	8:    {color.FgYellow},
	16:   {color.FgLightYellow},
	32:   {color.FgRed},
	64:   {color.FgLightRed},
	128:  {color.FgCyan, color.OpBold},
	256:  {color.FgLightCyan, color.OpBold},
	512:  {color.FgBlue, color.OpBold},
	1024: {color.FgMagenta, color.OpBold},
	2048: {color.FgGreen, color.OpBold},
}

var bigTileStyle = color.Style{color.FgLightGreen, color.OpBold, color.OpUnderscore}

// Renderer は盤面をテキストに描画する
type Renderer struct {
	useColor bool
}

// NewRenderer は新しいRendererを生成する
func NewRenderer(useColor bool) *Renderer {
	return &Renderer{useColor: useColor}
}

// Render は盤面を描画した文字列を返す
func (r *Renderer) Render(g *domain.Grid) string {
	if !r.useColor {
		return g.String()
	}
	return g.Format(paintTile)
}

// Width は描画した盤面の1行の幅を返す
func (r *Renderer) Width(g *domain.Grid) int {
	return 1 + g.Size()*(g.CellWidth()+2)
}

func paintTile(value int, text string) string {
	style, ok := tileStyles[value]
	if !ok {
		style = bigTileStyle
	}
	return style.Sprint(text)
}
