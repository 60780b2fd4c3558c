package game

type Phase int

const (
	PhaseIntro Phase = iota
	PhaseHunting
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseHunting:
		return "hunting"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State tracks score, level and game over for one hunt.
// It is owned by a single goroutine and not safe for concurrent use.
type State struct {
	score     int
	level     int
	highscore int
	gameOver  bool

	levelListeners    []func(level int)
	gameOverListeners []func()
}

func NewState(highscore int) *State {
	return &State{level: 1, highscore: highscore}
}

// OnLevelChange registers fn to run whenever the level changes.
func (s *State) OnLevelChange(fn func(level int)) {
	s.levelListeners = append(s.levelListeners, fn)
}

// OnGameOver registers fn to run once when the player dies.
func (s *State) OnGameOver(fn func()) {
	s.gameOverListeners = append(s.gameOverListeners, fn)
}

func (s *State) Score() int     { return s.score }
func (s *State) Level() int     { return s.level }
func (s *State) Highscore() int { return s.highscore }

func (s *State) IsGameOver() bool {
	return s.gameOver
}

// AddScore adds points, levels up every PointsPerLevel points and raises the highscore.
// It is ignored after game over.
func (s *State) AddScore(amount int) {
	if s.gameOver {
		return
	}
	s.score += amount

	if lvl := LevelForScore(s.score); lvl != s.level {
		s.level = lvl
		for _, fn := range s.levelListeners {
			fn(lvl)
		}
	}

	if s.score > s.highscore {
		s.highscore = s.score
	}
}

// PlayerDied ends the hunt. Later calls are ignored.
func (s *State) PlayerDied() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	for _, fn := range s.gameOverListeners {
		fn()
	}
}

// Restart clears the round and keeps the highscore.
func (s *State) Restart() {
	s.score = 0
	s.gameOver = false
	if s.level != 1 {
		s.level = 1
		for _, fn := range s.levelListeners {
			fn(1)
		}
	}
}

// LevelForScore is the level reached with score points.
func LevelForScore(score int) int {
	return score/PointsPerLevel + 1
}
