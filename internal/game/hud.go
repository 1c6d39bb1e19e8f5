package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the 7x13 bitmap font, scaled up per use.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	overlayColor    = color.NRGBA{R: 120, G: 53, B: 15, A: 190}
	nameplateColor  = color.NRGBA{R: 255, G: 237, B: 213, A: 160}
	nameTextColor   = color.RGBA{R: 120, G: 53, B: 15, A: 255}
	overlayText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	overlaySubText  = color.RGBA{R: 254, G: 243, B: 199, A: 255}
	scoreFlashColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// drawText draws s with its anchor at (x, y), scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, col color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = align
	text.Draw(dst, s, hudFace, op)
}

func (g *Game) drawScoreboard(screen *ebiten.Image, snap Snapshot) {
	cx := float64(g.offX) + ArenaWidth/2
	top := float64(g.offY) + 12

	playerCol := color.Color(playerFootColor)
	opponentCol := color.Color(opponentFootColor)
	if g.scoreFlash > 0 && g.scoreFlash%10 < 5 {
		playerCol, opponentCol = scoreFlashColor, scoreFlashColor
	}

	columns := []struct {
		x     float64
		score int
		name  string
		col   color.Color
	}{
		{cx - 90, snap.Match.PlayerScore, playerName, playerCol},
		{cx + 90, snap.Match.OpponentScore, opponentName, opponentCol},
	}
	for _, c := range columns {
		drawText(screen, fmt.Sprint(c.score), c.x, top, 4, c.col, text.AlignCenter)

		nameW := float32(len(c.name)*7 + 8)
		vector.FillRect(screen, float32(c.x)-nameW/2, float32(top)+56, nameW, 16, nameplateColor, false)
		drawText(screen, c.name, c.x, top+57, 1, nameTextColor, text.AlignCenter)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap Snapshot) {
	var lines []string
	switch snap.Match.Phase {
	case PhasePaused:
		lines = []string{
			"Beach Foot Pong",
			"Move the mouse to control your foot",
			"Click or press SPACE to start",
		}
	case PhaseOver:
		title := "You win!"
		if snap.Match.Winner == SideOpponent {
			title = "The AI wins!"
		}
		lines = []string{
			title,
			fmt.Sprintf("Final score: %d - %d", snap.Match.PlayerScore, snap.Match.OpponentScore),
			"Press R to play again",
		}
	default:
		return
	}

	ox, oy := float32(g.offX), float32(g.offY)
	vector.FillRect(screen, ox, oy, float32(ArenaWidth), float32(ArenaHeight), overlayColor, false)

	cx := float64(g.offX) + ArenaWidth/2
	cy := float64(g.offY) + ArenaHeight/2
	drawText(screen, lines[0], cx, cy-60, 3, overlayText, text.AlignCenter)
	for i, l := range lines[1:] {
		drawText(screen, l, cx, cy+float64(i)*26, 1.5, overlaySubText, text.AlignCenter)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap Snapshot) {
	sound := "on"
	if !snap.SoundEnabled {
		sound = "off"
	}
	lines := []string{
		fmt.Sprintf("AI difficulty %d/%d  [1-5] or -/=", snap.Difficulty, MaxDifficulty),
		fmt.Sprintf("sound %s  [M]", sound),
		"SPACE pause/resume  R reset",
		"C copy report  H hide  ESC quit",
	}

	const lineH = 16
	const charW = 6
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)
	bx := float32(g.offX) + 6
	by := float32(g.offY) + float32(ArenaHeight) - boxH - 6

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 40, G: 24, B: 8, A: 200}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 180, G: 110, B: 50, A: 200}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(bx)+padX, int(by)+padY+i*lineH)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	if g.statusLeft <= 0 || g.status == "" {
		return
	}
	x := float64(g.offX) + ArenaWidth/2
	y := float64(g.offY) + ArenaHeight - 28
	drawText(screen, g.status, x, y, 1.5, overlayText, text.AlignCenter)
}
