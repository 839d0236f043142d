package crossing

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Terminal board layout. Each 101px column becomes TileW cells and each
// 83px row becomes TileH lines.
const (
	BoardCols = 5
	BoardRows = 6
	TileW     = 10
	TileH     = 3

	columnPx = 101.0
	rowPx    = 83.0
	rowBias  = 40.0 // Sprite y values sit above their row's top edge

	boardTop = 2 // Lines reserved for the HUD
)

// Row backgrounds, top to bottom.
var rowStyles = [BoardRows]struct {
	fill  rune
	color core.Color
}{
	{'~', core.ColorBlue},  // water
	{'·', core.ColorGray},  // stone
	{'·', core.ColorGray},  // stone
	{'·', core.ColorGray},  // stone
	{'"', core.ColorGreen}, // grass
	{'"', core.ColorGreen}, // grass
}

// glyph is the terminal look of a sprite.
type glyph struct {
	text   string
	color  core.Color
	offset int // Cells from the sprite's x to the first glyph cell
}

var glyphs = map[string]glyph{
	SpriteEnemy:  {text: "~{ooo}>", color: core.ColorBrightRed, offset: 1},
	SpritePlayer: {text: `\o/`, color: core.ColorBrightYellow, offset: 4},
	"gem-green":  {text: "<◆>", color: core.ColorBrightGreen, offset: 4},
	"gem-orange": {text: "<◆>", color: core.ColorOrange, offset: 4},
	"gem-blue":   {text: "<◆>", color: core.ColorBrightBlue, offset: 4},
	"rock":       {text: "(●)", color: core.ColorWhite, offset: 4},
	"key":        {text: "o─╖", color: core.ColorBrightYellow, offset: 4},
	"heart":      {text: "<♥>", color: core.ColorBrightRed, offset: 4},
	"star":       {text: "<*>", color: core.ColorYellow, offset: 4},
}

// screenRenderer draws sprites onto a Screen at a board origin.
type screenRenderer struct {
	dst     *core.Screen
	originX int
	originY int
}

// CellFor converts a board position into screen cells relative to the board origin.
func CellFor(x, y float64) (int, int) {
	cx := int(math.Floor(x * TileW / columnPx))
	row := int(math.Floor((y + rowBias) / rowPx))
	return cx, row*TileH + TileH/2
}

// Draw implements Renderer.
func (r screenRenderer) Draw(sprite string, x, y float64) {
	g, ok := glyphs[sprite]
	if !ok {
		g = glyph{text: "?", offset: 4}
	}
	cx, cy := CellFor(x, y)

	// Clip to the board so wrapping enemies slide in from the edge.
	i := 0
	for _, ch := range g.text {
		col := cx + g.offset + i
		if col >= 0 && col < BoardCols*TileW {
			r.dst.SetColor(r.originX+col, r.originY+cy, ch, g.color)
		}
		i++
	}
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := BoardCols * TileW
	originX := max(0, (dst.Width()-boardW)/2)
	originY := boardTop

	g.drawBoard(dst, originX, originY)
	g.session.Render(screenRenderer{dst: dst, originX: originX, originY: originY})
	g.drawHUD(dst, originX)

	switch {
	case g.session.State().GameOver:
		st := g.session.State()
		g.drawCenteredMessage(dst,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d", st.Score, st.Level),
			"R: restart  Tab: scores  Q: quit",
		)
	case g.showHelp:
		g.drawCenteredMessage(dst,
			"HOW TO PLAY",
			"Reach the water to score 1 point.",
			"Every 5 points a new bug joins and",
			"the level goes up. Bugs cost a life.",
			"",
			"Gem +2   Rock +1   Star +10",
			"Heart +1 life   Key +5 and may",
			"remove the newest bug.",
			"",
			"Press ? to close",
		)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBoard paints the row backgrounds.
func (g *Game) drawBoard(dst *core.Screen, originX, originY int) {
	for row, style := range rowStyles {
		r := core.NewRect(originX, originY+row*TileH, BoardCols*TileW, TileH)
		dst.DrawRectColor(r, style.fill, style.color)
	}
}

// drawHUD renders the counters above the board.
func (g *Game) drawHUD(dst *core.Screen, originX int) {
	st := g.session.State()
	hud := fmt.Sprintf(" Score: %d   Lives: %d   Level: %d ", st.Score, st.Lives, st.Level)
	dst.DrawTextColor(originX, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i, l)
	}
}
