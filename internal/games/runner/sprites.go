package runner

import "github.com/vovakirdan/birthday-runner/internal/core"

// Visual characters for rendering
const (
	GroundChar = '═'
)

// sprite describes how a visual handle is drawn in the terminal.
// The body fills the entity rectangle; the mark sits on its top row.
type sprite struct {
	Body      rune
	BodyColor core.Color
	Mark      rune
	MarkColor core.Color
}

var sprites = map[VisualID]sprite{
	VisualPlayerStage1: {Body: '█', BodyColor: core.ColorBrightGreen, Mark: '◆', MarkColor: core.ColorBrightWhite},
	VisualPlayerStage2: {Body: '█', BodyColor: core.ColorBrightYellow, Mark: '★', MarkColor: core.ColorOrange},
	VisualEnemy:        {Body: '▓', BodyColor: core.ColorRed, Mark: '▼', MarkColor: core.ColorBrightWhite},
	VisualChicken:      {Body: '▒', BodyColor: core.ColorOrange, Mark: '♥', MarkColor: core.ColorRed},
}

var unknownSprite = sprite{Body: '?', BodyColor: core.ColorDefault, Mark: '?', MarkColor: core.ColorDefault}

func spriteFor(v VisualID) sprite {
	if sp, ok := sprites[v]; ok {
		return sp
	}
	return unknownSprite
}
