package game

// TestSim is a headless harness around a Session, used by tests and the
// headless report. It has no Ebiten dependency, seeds deterministically and
// logs to a SimLog.
type TestSim struct {
	Session  *Session
	SimLog   *SimLog
	Reporter *MatchReporter
	Events   []Event // every event emitted so far

	cfg     Config
	pilot   Pilot
	paused  bool
	verbose bool
}

// Pilot produces the player's input for the next tick from the current state.
type Pilot func(Snapshot) Input

// FixedPointer is a pilot that holds the pointer at y.
func FixedPointer(y float64) Pilot {
	return func(Snapshot) Input { return Input{PointerY: y} }
}

// Autopilot points at the ball while it travels toward the player and
// drifts back to the centre otherwise. lag delays the tracked ball y by
// that many ticks of motion, which makes the player beatable.
func Autopilot(lag float64) Pilot {
	return func(s Snapshot) Input {
		if s.Ball.VX < 0 {
			return Input{PointerY: s.Ball.Y - s.Ball.VY*lag}
		}
		return Input{PointerY: ArenaHeight / 2}
	}
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // applied before the session exists
	simOptState                      // applied to the built session
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Seed = seed
	}}
}

// WithDifficulty sets the opponent difficulty (clamped to 1..5).
func WithDifficulty(d int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Difficulty = d
	}}
}

// WithSound sets whether tones are played.
func WithSound(on bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.SoundEnabled = on
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithPilot sets how the player's pointer moves. The default holds the
// pointer at the centre line.
func WithPilot(p Pilot) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.pilot = p
	}}
}

// WithPaused leaves the session paused instead of resuming it.
func WithPaused() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.paused = true
	}}
}

// WithBall places the ball.
func WithBall(x, y, vx, vy float64) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		b := &ts.Session.ball
		b.X, b.Y, b.VX, b.VY = x, y, vx, vy
	}}
}

// WithFeet places both feet.
func WithFeet(playerY, opponentY float64) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Session.player.Y = playerY
		ts.Session.opponent.Y = opponentY
	}}
}

// WithScore sets the score.
func WithScore(player, opponent int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Session.match.PlayerScore = player
		ts.Session.match.OpponentScore = opponent
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (seed, difficulty, sound, verbose, pilot)
//  2. Build and wire the Session
//  3. State placement (ball, feet, score)
//  4. Resume unless WithPaused
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:   DefaultConfig(),
		pilot: FixedPointer(ArenaHeight / 2),
	}
	ts.cfg.Seed = 1
	ts.cfg.SoundEnabled = false
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}

	ts.SimLog = NewSimLog(ts.verbose)
	ts.Reporter = NewMatchReporter()
	ts.Session = NewSession(ts.cfg)
	ts.Session.AttachLog(ts.SimLog)
	ts.Session.AddObserver(ts.Reporter)

	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	if !ts.paused {
		ts.Session.Resume()
	}
	return ts
}

// Step runs one tick using the pilot's input and returns its events.
func (ts *TestSim) Step() []Event {
	in := ts.pilot(ts.Session.Snapshot())
	events := ts.Session.Step(in)
	ts.Events = append(ts.Events, events...)
	ts.Reporter.Consume(events)
	return events
}

// RunTicks advances the simulation n frames.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunUntil advances the simulation up to maxTicks frames, stopping early if
// predicate returns true. Returns the session tick at which the predicate was
// satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Session.Tick()
		}
	}
	return -1
}

// RunUntilOver plays until a side wins or maxTicks frames pass.
func (ts *TestSim) RunUntilOver(maxTicks int) int {
	return ts.RunUntil(func(ts *TestSim) bool {
		return ts.Session.Match().Phase == PhaseOver
	}, maxTicks)
}

// CountEvents returns how many recorded events are of kind k.
func (ts *TestSim) CountEvents(k EventKind) int {
	n := 0
	for _, e := range ts.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
