package entity

import "snake-classic/game/types"

// Kind identifies what a renderer is drawing.
type Kind int

const (
	KindSnake Kind = iota
	KindFood
)

type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	Green = Color{0, 255, 0}
	Red   = Color{255, 0, 0}
)

// KindColor returns the body color used to draw entities of kind k.
func KindColor(k Kind) Color {
	switch k {
	case KindSnake:
		return Green
	case KindFood:
		return Red
	default:
		return Black
	}
}

// Food is the single apple on the field.
type Food struct {
	Position types.Cell
}

func (f Food) Kind() Kind {
	return KindFood
}
