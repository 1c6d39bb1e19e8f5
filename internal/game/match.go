package game

// Side identifies a participant. SideNone doubles as "no winner yet".
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// label is the short tag used in SimLog lines.
func (s Side) label() string {
	switch s {
	case SidePlayer:
		return "P"
	case SideOpponent:
		return "O"
	default:
		return "--"
	}
}

// Name is the scoreboard name for the side.
func (s Side) Name() string {
	switch s {
	case SidePlayer:
		return playerName
	case SideOpponent:
		return opponentName
	default:
		return ""
	}
}

// Phase is the frame-loop state.
type Phase int

const (
	PhasePaused Phase = iota
	PhaseRunning
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Match is the score and phase of a session.
type Match struct {
	PlayerScore   int
	OpponentScore int
	Phase         Phase
	Winner        Side
}

// Score returns the points held by s.
func (m Match) Score(s Side) int {
	switch s {
	case SidePlayer:
		return m.PlayerScore
	case SideOpponent:
		return m.OpponentScore
	default:
		return 0
	}
}

// award gives s one point and ends the match if that reaches WinningScore.
// It reports whether the match ended on this point.
func (m *Match) award(s Side) bool {
	switch s {
	case SidePlayer:
		m.PlayerScore++
	case SideOpponent:
		m.OpponentScore++
	default:
		return false
	}
	if m.Phase != PhaseOver && m.Score(s) >= WinningScore {
		m.Phase = PhaseOver
		m.Winner = s
		return true
	}
	return false
}

// reset zeroes the scores, clears the winner and pauses.
func (m *Match) reset() {
	*m = Match{Phase: PhasePaused}
}
