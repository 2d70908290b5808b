package domain

// Direction はスワイプの方向を表す
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions は全ての方向を探索順に並べたもの
var Directions = []Direction{Up, Down, Left, Right}

// IsValid は定義済みの方向かどうかを返す
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
