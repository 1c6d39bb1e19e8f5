package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// Input is sampled by the front end once per frame.
type Input struct {
	PointerY float64 // last known pointer y, in arena units
}

// ToneFunc plays a tone. Implementations must return promptly.
type ToneFunc func(freqHz float64, d time.Duration)

// ScoreObserver is told about every point and about the end of the match.
type ScoreObserver interface {
	ScoreChanged(m Match)
	GameOver(winner Side, m Match)
}

// Snapshot is a copy of everything the renderer draws.
type Snapshot struct {
	Tick         int
	Player       Paddle
	Opponent     Paddle
	Ball         Ball
	Particles    []Particle
	Match        Match
	Difficulty   int
	SoundEnabled bool
}

// command is a control event waiting for the next tick boundary.
type command struct {
	key   string
	value string
	apply func(*Session)
}

// Session owns one match: both feet, the ball, the particles and the score.
//
// Step, Snapshot and the collaborator setters must be called from a single
// goroutine (the frame loop). The control methods (Pause, Resume, Reset,
// SetDifficulty, SetSoundEnabled, Close) are safe from any goroutine; they are
// queued and take effect at the start of the next Step, never mid-tick.
type Session struct {
	width  float64
	height float64

	player    Paddle
	opponent  Paddle
	ball      Ball
	particles *ParticleSystem
	match     Match

	difficulty int
	soundOn    bool
	tick       int
	rng        *rand.Rand

	tone      ToneFunc
	observers []ScoreObserver
	simLog    *SimLog

	events []Event // scratch, reused every tick

	mu      sync.Mutex
	pending []command
	closed  bool
}

// NewSession creates a paused session with the ball already served in a
// random direction.
func NewSession(cfg Config) *Session {
	cfg = cfg.Normalized()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		width:      ArenaWidth,
		height:     ArenaHeight,
		player:     newFoot(playerFootX, ArenaHeight),
		opponent:   newFoot(opponentFootX, ArenaHeight),
		ball:       newBall(ArenaWidth, ArenaHeight),
		particles:  NewParticleSystem(),
		match:      Match{Phase: PhasePaused},
		difficulty: cfg.Difficulty,
		soundOn:    cfg.SoundEnabled,
		rng:        rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay only
	}
	s.ball.Relaunch(s.width, s.height, s.serveDir(), s.rng)
	return s
}

// SetTone registers the audio collaborator.
func (s *Session) SetTone(fn ToneFunc) { s.tone = fn }

// AddObserver registers a score observer.
func (s *Session) AddObserver(o ScoreObserver) { s.observers = append(s.observers, o) }

// AttachLog records every simulation event into sl.
func (s *Session) AttachLog(sl *SimLog) { s.simLog = sl }

// Pause stops the simulation. Ignored unless running.
func (s *Session) Pause() {
	s.enqueue("pause", "", func(s *Session) {
		if s.match.Phase == PhaseRunning {
			s.match.Phase = PhasePaused
		}
	})
}

// Resume starts or continues the simulation. Ignored once the match is over.
func (s *Session) Resume() {
	s.enqueue("resume", "", func(s *Session) {
		if s.match.Phase == PhasePaused {
			s.match.Phase = PhaseRunning
		}
	})
}

// Reset zeroes the score, clears the winner, re-centres the feet, serves a
// fresh ball and leaves the session paused.
func (s *Session) Reset() {
	s.enqueue("reset", "", (*Session).applyReset)
}

// SetDifficulty changes the opponent's speed. Values outside 1..5 are clamped.
func (s *Session) SetDifficulty(d int) {
	d = clampDifficulty(d)
	s.enqueue("difficulty", strconv.Itoa(d), func(s *Session) {
		s.difficulty = d
	})
}

// SetSoundEnabled turns tone playback on or off.
func (s *Session) SetSoundEnabled(on bool) {
	s.enqueue("sound", strconv.FormatBool(on), func(s *Session) {
		s.soundOn = on
	})
}

// Close tears the session down. Pending commands are dropped, later control
// calls are ignored and Step becomes a no-op. Collaborators are released on
// the next Step.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.pending = nil
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) enqueue(key, value string, apply func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = append(s.pending, command{key: key, value: value, apply: apply})
}

// drainCommands applies queued control events. It returns false once the
// session is closed.
func (s *Session) drainCommands() bool {
	s.mu.Lock()
	cmds := s.pending
	s.pending = nil
	closed := s.closed
	s.mu.Unlock()

	if closed {
		s.release()
		return false
	}
	for _, c := range cmds {
		c.apply(s)
		if s.simLog != nil {
			s.simLog.Add(s.tick, SideNone.label(), "control", c.key, c.value+" "+s.match.Phase.String(), 0)
		}
	}
	return true
}

func (s *Session) release() {
	s.tone = nil
	s.observers = nil
	s.particles.Clear()
}

// Step runs one tick. Queued control events are applied first; if the
// session is then not running nothing else changes. Otherwise the feet move,
// the ball moves and collides, points are scored and particles age, in that
// order. The returned events are this tick's side effects; they have already
// been dispatched to the tone and score collaborators.
func (s *Session) Step(in Input) []Event {
	if !s.drainCommands() {
		return nil
	}
	if s.match.Phase != PhaseRunning {
		return nil
	}

	s.tick++
	s.events = s.events[:0]

	FollowPointer(&s.player, in.PointerY, s.height)
	TrackBall(&s.opponent, s.ball, s.width, s.height, s.difficulty)

	s.ball.Integrate()

	if s.ball.HitsWall(s.height) {
		s.ball.ReflectY()
		s.emit(Event{Kind: EventWallBounce, X: s.ball.X, Y: s.ball.Y, Speed: s.ball.Speed()})
		s.effects(wallToneHz, wallBurstColor)
	}

	// Both feet are always tested; a ball touching both gets both responses.
	s.checkFoot(SidePlayer, s.player, 1)
	s.checkFoot(SideOpponent, s.opponent, -1)

	switch {
	case s.ball.X < 0:
		s.scorePoint(SideOpponent, 1)
	case s.ball.X > s.width:
		s.scorePoint(SidePlayer, -1)
	}

	s.particles.Update()

	if s.simLog != nil {
		s.simLog.AddVerbose(s.tick, SideNone.label(), "ball", "position",
			fmt.Sprintf("(%.2f,%.2f)", s.ball.X, s.ball.Y), s.ball.Speed())
		s.simLog.AddVerbose(s.tick, SidePlayer.label(), "move", "position",
			fmt.Sprintf("%.2f", s.player.Y), s.player.Y)
		s.simLog.AddVerbose(s.tick, SideOpponent.label(), "move", "position",
			fmt.Sprintf("%.2f", s.opponent.Y), s.opponent.Y)
	}

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Session) checkFoot(side Side, p Paddle, dir float64) {
	if !s.ball.Touches(p) {
		return
	}
	s.ball.Deflect(p, dir)
	s.emit(Event{Kind: EventPaddleHit, Side: side, X: s.ball.X, Y: s.ball.Y, Speed: s.ball.Speed()})
	s.effects(paddleToneHz, paddleBurstColor)
}

// effects spawns the tone and particle burst that accompany a collision.
func (s *Session) effects(freq float64, col color.RGBA) {
	s.emit(Event{Kind: EventTone, FreqHz: freq, Duration: toneDuration})
	s.particles.Burst(s.ball.X, s.ball.Y, col)
	s.emit(Event{Kind: EventBurst, X: s.ball.X, Y: s.ball.Y, Color: col})
}

// scorePoint awards the point and serves the next rally toward dir. The
// serve happens even when the point ended the match.
func (s *Session) scorePoint(scorer Side, dir float64) {
	over := s.match.award(scorer)
	s.emit(Event{Kind: EventPoint, Side: scorer, Match: s.match})
	if over {
		s.emit(Event{Kind: EventGameOver, Side: scorer, Match: s.match})
	}
	s.ball.Relaunch(s.width, s.height, dir, s.rng)
}

func (s *Session) applyReset() {
	s.match.reset()
	s.particles.Clear()
	s.player = newFoot(playerFootX, s.height)
	s.opponent = newFoot(opponentFootX, s.height)
	s.ball.Relaunch(s.width, s.height, s.serveDir(), s.rng)
	for _, o := range s.observers {
		o.ScoreChanged(s.match)
	}
}

// serveDir picks the opening serve direction at random.
func (s *Session) serveDir() float64 {
	if s.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// emit records an event and dispatches it to the collaborators.
func (s *Session) emit(e Event) {
	e.Tick = s.tick
	s.events = append(s.events, e)
	s.record(e)

	switch e.Kind {
	case EventTone:
		s.playTone(e.FreqHz, e.Duration)
	case EventPoint:
		for _, o := range s.observers {
			o.ScoreChanged(e.Match)
		}
	case EventGameOver:
		for _, o := range s.observers {
			o.GameOver(e.Side, e.Match)
		}
	}
}

// playTone forwards to the audio collaborator. Failures never reach the loop.
func (s *Session) playTone(freq float64, d time.Duration) {
	if !s.soundOn || s.tone == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tone %.0fHz failed: %v", freq, r)
		}
	}()
	s.tone(freq, d)
}

func (s *Session) record(e Event) {
	if s.simLog == nil {
		return
	}
	label := e.Side.label()
	switch e.Kind {
	case EventWallBounce:
		s.simLog.Add(e.Tick, label, "ball", "wall_bounce", fmt.Sprintf("(%.1f,%.1f)", e.X, e.Y), e.Speed)
	case EventPaddleHit:
		s.simLog.Add(e.Tick, label, "ball", "paddle_hit", fmt.Sprintf("speed=%.3f", e.Speed), e.Speed)
	case EventPoint:
		s.simLog.Add(e.Tick, label, "score", "point",
			fmt.Sprintf("%d-%d", e.Match.PlayerScore, e.Match.OpponentScore), float64(e.Match.Score(e.Side)))
	case EventGameOver:
		s.simLog.Add(e.Tick, label, "score", "game_over",
			fmt.Sprintf("%s wins %d-%d", e.Side, e.Match.PlayerScore, e.Match.OpponentScore), float64(e.Match.Score(e.Side)))
	case EventTone:
		s.simLog.AddVerbose(e.Tick, label, "fx", "tone", fmt.Sprintf("%.0fHz", e.FreqHz), e.FreqHz)
	case EventBurst:
		s.simLog.AddVerbose(e.Tick, label, "fx", "burst", fmt.Sprintf("(%.1f,%.1f)", e.X, e.Y), burstSize)
	}
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:         s.tick,
		Player:       s.player,
		Opponent:     s.opponent,
		Ball:         s.ball,
		Particles:    s.particles.Particles(),
		Match:        s.match,
		Difficulty:   s.difficulty,
		SoundEnabled: s.soundOn,
	}
}

// Match returns the current score and phase.
func (s *Session) Match() Match { return s.match }

// Tick returns the number of simulated ticks so far.
func (s *Session) Tick() int { return s.tick }
