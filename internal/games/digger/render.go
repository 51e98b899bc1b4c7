package digger

import (
	"fmt"

	"github.com/vovakirdan/tui-digger/internal/core"
)

// Each tile is drawn two columns wide so the field looks square.
const tileCols = 2

// glyph is the two-rune picture of one tile.
type glyph struct {
	text  string
	color core.Color
}

var (
	glyphEarth     = glyph{"░░", core.ColorBrown}
	glyphTunnel    = glyph{"  ", core.ColorDefault}
	glyphEmerald   = glyph{"◆ ", core.ColorBrightGreen}
	glyphBag       = glyph{"$$", core.ColorYellow}
	glyphWobble    = glyph{"$~", core.ColorBrightYellow}
	glyphFalling   = glyph{"$↓", core.ColorOrange}
	glyphTreasure  = glyph{"**", core.ColorBrightYellow}
	glyphBonusItem = glyph{"♦♦", core.ColorMagenta}
	glyphGround    = glyph{"oo", core.ColorRed}
	glyphDigger    = glyph{"@@", core.ColorBrightRed}
	glyphScared    = glyph{"oo", core.ColorCyan}
	glyphShot      = glyph{"••", core.ColorBrightCyan}
)

var playerGlyphs = map[Direction]string{
	DirUp:    "^D",
	DirDown:  "vD",
	DirLeft:  "<D",
	DirRight: "D>",
}

// MinScreen returns the smallest screen that fits a w×h field with its HUD.
func MinScreen(w, h int) (cols, rows int) {
	return w*tileCols + 2, h + 4
}

// Render draws the current world into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.world.Snapshot())
}

// RenderSnapshot draws a snapshot: HUD on the top row, the bordered field
// below it and a status line at the bottom. Overlays cover the menu, pause
// and game-over states.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	minW, minH := MinScreen(s.W, s.H)
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorGray)
		return
	}

	renderHUD(dst, s)

	field := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(minW, s.H+2)
	field.Y = 1
	dst.DrawBox(field, core.ColorGray)
	ox, oy := field.X+1, field.Y+1

	put := func(c Coord, gl glyph) {
		dst.DrawText(ox+c.X*tileCols, oy+c.Y, gl.text, gl.color)
	}

	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := C(x, y)
			if s.Cell(c) == Earth {
				put(c, glyphEarth)
			} else {
				put(c, glyphTunnel)
			}
		}
	}
	for _, c := range s.Emeralds {
		put(c, glyphEmerald)
	}
	if s.BonusItem != nil {
		put(*s.BonusItem, glyphBonusItem)
	}
	for _, b := range s.Bags {
		switch b.State {
		case BagResting:
			put(b.Pos, glyphBag)
		case BagWobbling:
			put(b.Pos, glyphWobble)
		case BagFalling:
			put(b.Pos, glyphFalling)
		case BagTreasure:
			put(b.Pos, glyphTreasure)
		}
	}
	for _, c := range s.Creatures {
		switch {
		case s.BonusActive:
			put(c.Tile, glyphScared)
		case c.Kind == CreatureDigger:
			put(c.Tile, glyphDigger)
		default:
			put(c.Tile, glyphGround)
		}
	}
	for _, sh := range s.Shots {
		put(sh.Tile, glyphShot)
	}
	if s.Player.Alive {
		put(s.Player.Tile, glyph{playerGlyphs[s.Player.Facing], core.ColorBrightGreen})
	}

	renderStatus(dst, s, field.Bottom())
	renderOverlay(dst, s)
}

func renderHUD(dst *core.Screen, s Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %06d", s.Score), core.ColorWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", s.Lives), core.ColorBrightRed)
	level := fmt.Sprintf("Level: %d", s.Level)
	dst.DrawText(dst.Width()-len(level)-1, 0, level, core.ColorWhite)
}

func renderStatus(dst *core.Screen, s Snapshot, y int) {
	var status string
	color := core.ColorGray
	switch {
	case s.BonusActive:
		status = fmt.Sprintf("BONUS %.1fs  next kill %d", s.BonusLeft, s.NextKill)
		color = core.ColorBrightCyan
	case s.BonusItem != nil:
		status = "Bonus item in the centre!"
		color = core.ColorMagenta
	default:
		status = fmt.Sprintf("Emeralds: %d  Creatures: %d/%d", len(s.Emeralds), s.Spawned, s.Quota)
	}
	if s.Streak > 1 {
		status += fmt.Sprintf("  streak %d", s.Streak)
	}
	dst.DrawTextCentered(y, status, color)
}

func renderOverlay(dst *core.Screen, s Snapshot) {
	switch s.Round {
	case RoundMenu:
		drawCenteredBox(dst, "DIGGER", "ENTER to start  |  Q to quit")
	case RoundPaused:
		resume, quit := "> Resume", "  Quit"
		if s.Pause == PauseQuit {
			resume, quit = "  Resume", "> Quit"
		}
		drawCenteredBox(dst, "PAUSED", resume, quit)
	case RoundGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", s.Score))
	}
}

// drawCenteredBox draws a centered message box with a title and one or
// more lines below it.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, len(lines)+4)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-len([]rune(l)))/2, box.Y+3+i, l, core.ColorWhite)
	}
}
