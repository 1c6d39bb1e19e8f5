package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the court.
const borderWidth = 24

// statusTicks is how long a status line stays up (~2s at 60TPS).
const statusTicks = 120

var (
	windowColor       = color.RGBA{R: 56, G: 150, B: 200, A: 255}
	courtColor        = color.RGBA{R: 0xd9, G: 0xc4, B: 0x9a, A: 0xff}
	centerLineColor   = color.NRGBA{R: 139, G: 69, B: 19, A: 102}
	netTickColor      = color.NRGBA{R: 139, G: 69, B: 19, A: 51}
	courtBorderColor  = color.RGBA{R: 217, G: 119, B: 6, A: 255}
	playerFootColor   = color.RGBA{R: 234, G: 88, B: 12, A: 255}
	opponentFootColor = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	footOutlineColor  = color.RGBA{R: 69, G: 26, B: 3, A: 255}
	ballFillColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ballStrokeColor   = color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}
)

// Game is the Ebitengine front end. It samples the pointer and keys, steps
// the session once per frame and draws the snapshot.
type Game struct {
	width  int
	height int
	offX   int // pixel offset from window left to court left
	offY   int // pixel offset from window top to court top

	session  *Session
	feed     *EventFeed
	reporter *MatchReporter
	simLog   *SimLog

	pointerY float64
	showHUD  bool

	status      string
	statusLeft  int
	scoreFlash  int
	windowScale float64
}

// New builds the front end around a fresh session. tone may be nil.
func New(cfg Config, tone ToneFunc) *Game {
	cfg = cfg.Normalized()
	g := &Game{
		width:       borderWidth + int(ArenaWidth) + borderWidth + feedPanelWidth,
		height:      borderWidth + int(ArenaHeight) + borderWidth,
		offX:        borderWidth,
		offY:        borderWidth,
		feed:        NewEventFeed(),
		reporter:    NewMatchReporter(),
		simLog:      NewSimLog(false),
		pointerY:    ArenaHeight / 2,
		showHUD:     true,
		windowScale: cfg.Scale,
	}
	g.session = NewSession(cfg)
	g.session.SetTone(tone)
	g.session.AttachLog(g.simLog)
	g.session.AddObserver(g.reporter)
	g.session.AddObserver(g)
	return g
}

// WindowSize is the initial window size in device-independent pixels.
func (g *Game) WindowSize() (int, int) {
	return int(float64(g.width) * g.windowScale), int(float64(g.height) * g.windowScale)
}

// Close tears the session down; the next Update ends the game loop.
func (g *Game) Close() {
	g.session.Close()
}

func (g *Game) Update() error {
	if g.session.Closed() {
		return ebiten.Termination
	}
	g.handleInput()

	events := g.session.Step(Input{PointerY: g.pointerY})
	g.reporter.Consume(events)
	g.feed.AddEvents(events)

	if g.statusLeft > 0 {
		g.statusLeft--
	}
	if g.scoreFlash > 0 {
		g.scoreFlash--
	}
	return nil
}

func (g *Game) handleInput() {
	// Pointer: keep the last position inside the window, in arena units.
	_, cy := ebiten.CursorPosition()
	g.pointerY = float64(cy - g.offY)

	phase := g.session.Match().Phase

	// Space/P: pause or resume. Ignored once the match is over.
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		switch phase {
		case PhasePaused:
			g.session.Resume()
		case PhaseRunning:
			g.session.Pause()
		}
	}
	// Click on the pause screen starts play.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && phase == PhasePaused {
		g.session.Resume()
	}

	// R: reset the match.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		g.feed.Add(g.session.Tick(), SideNone, "match reset")
	}

	// 1-5: difficulty; -/= step it.
	snap := g.session.Snapshot()
	levelKeys := [MaxDifficulty]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	for i, k := range levelKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.session.SetDifficulty(i + 1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.session.SetDifficulty(snap.Difficulty - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.session.SetDifficulty(snap.Difficulty + 1)
	}

	// M: mute toggle.
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.session.SetSoundEnabled(!snap.SoundEnabled)
	}

	// C: copy the match report to the clipboard.
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		report := matchDebugReport(g.reporter, g.simLog, snap.Tick, snap.Match, 600)
		if err := setClipboardText(report); err != nil {
			log.Printf("copy report: %v", err)
			g.setStatus("clipboard unavailable")
		} else {
			g.setStatus("report copied to clipboard")
		}
	}

	// H: toggle HUD key legend.
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	// Escape: tear down.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Close()
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusLeft = statusTicks
}

// ScoreChanged implements ScoreObserver.
func (g *Game) ScoreChanged(Match) {
	g.scoreFlash = 30
}

// GameOver implements ScoreObserver.
func (g *Game) GameOver(winner Side, _ Match) {
	g.setStatus(winner.Name() + " wins the match")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowColor)
	snap := g.session.Snapshot()

	g.drawCourt(screen)
	g.drawParticles(screen, snap.Particles)
	g.drawFoot(screen, snap.Player, playerFootColor)
	g.drawFoot(screen, snap.Opponent, opponentFootColor)
	g.drawBall(screen, snap.Ball)

	g.drawScoreboard(screen, snap)
	g.drawOverlay(screen, snap)
	if g.showHUD {
		g.drawHUD(screen, snap)
	}
	g.drawStatus(screen)

	g.feed.Draw(screen, g.offX+int(ArenaWidth)+borderWidth, g.height)
}

func (g *Game) drawCourt(screen *ebiten.Image) {
	ox, oy := float32(g.offX), float32(g.offY)
	w, h := float32(ArenaWidth), float32(ArenaHeight)

	vector.FillRect(screen, ox, oy, w, h, courtColor, false)
	vector.StrokeRect(screen, ox-2, oy-2, w+4, h+4, 4, courtBorderColor, false)

	// Centre line and net ticks.
	cx := ox + w/2
	vector.StrokeLine(screen, cx, oy, cx, oy+h, 3, centerLineColor, false)
	for y := float32(0); y < h; y += 20 {
		vector.StrokeLine(screen, cx-10, oy+y, cx+10, oy+y, 1, netTickColor, false)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image, particles []Particle) {
	ox, oy := float32(g.offX), float32(g.offY)
	for _, p := range particles {
		c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(clamp(p.Life, 0, 1) * 255)}
		vector.FillRect(screen, ox+float32(p.X)-2, oy+float32(p.Y)-2, 4, 4, c, false)
	}
}

func (g *Game) drawFoot(screen *ebiten.Image, p Paddle, col color.RGBA) {
	x := float32(g.offX) + float32(p.X-p.Width/2)
	y := float32(g.offY) + float32(p.Y-p.Height/2)
	w, h := float32(p.Width), float32(p.Height)
	vector.FillRect(screen, x, y, w, h, col, true)
	vector.StrokeRect(screen, x, y, w, h, 2, footOutlineColor, true)
	// Toe line so the foot reads as a foot.
	vector.StrokeLine(screen, x+4, y+h*0.75, x+w-4, y+h*0.75, 1, footOutlineColor, true)
}

func (g *Game) drawBall(screen *ebiten.Image, b Ball) {
	cx := float32(g.offX) + float32(b.X)
	cy := float32(g.offY) + float32(b.Y)
	r := float32(b.Size / 2)
	vector.FillCircle(screen, cx, cy, r, ballFillColor, true)
	vector.StrokeCircle(screen, cx, cy, r, 3, ballStrokeColor, true)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
