package session

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ghosthunt/ghosthunt-server/internal/arena"
	"github.com/ghosthunt/ghosthunt-server/internal/bow"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
	"github.com/ghosthunt/ghosthunt-server/internal/store"
	"github.com/ghosthunt/ghosthunt-server/internal/ws"
)

const storeTimeout = 5 * time.Second

// ErrNotPrepared is returned for input that arrives before Prepare built the arena.
var ErrNotPrepared = errors.New("no active hunt")

// Session is one player's hunt: the arena, its game loop and the client it reports to.
type Session struct {
	Code       string
	PlayerName string

	client *ws.Client
	scores store.HighscoreStore
	cfg    arena.Config
	rng    *rand.Rand

	arena    *arena.Arena
	huntTime time.Duration
	over     *ws.GameOver // set by the arena, reported once by the loop

	stopCh  chan struct{}
	done    chan struct{}
	running bool

	cancelOpen context.CancelFunc
	opened     chan struct{}
	closed     bool

	mu sync.Mutex
}

// New creates a session. Call Open, or Prepare then Start, to run it.
func New(code, playerName string, client *ws.Client, cfg arena.Config, scores store.HighscoreStore) *Session {
	return &Session{
		Code:       code,
		PlayerName: playerName,
		client:     client,
		scores:     scores,
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		opened:     make(chan struct{}),
	}
}

// Open prepares and starts the session in the background so a slow highscore
// store never blocks the caller. Input that arrives before the arena exists is
// ignored. Stop cancels an Open still in flight.
func (s *Session) Open() {
	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.closed || s.cancelOpen != nil {
		s.mu.Unlock()
		cancel()
		return
	}
	s.cancelOpen = cancel
	s.mu.Unlock()

	go func() {
		defer close(s.opened)
		defer cancel()
		s.Prepare(ctx)
		if ctx.Err() == nil {
			s.Start()
		}
	}()
}

// Opened is closed once a background Open has finished or given up.
func (s *Session) Opened() <-chan struct{} {
	return s.opened
}

// ClientID returns the ID of the owning client.
func (s *Session) ClientID() string {
	return s.client.ID
}

// Prepare builds the arena with the player's stored highscore and sends hunt_info.
func (s *Session) Prepare(ctx context.Context) {
	best := 0
	if s.scores != nil {
		loadCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		b, err := s.scores.Best(loadCtx, s.PlayerName)
		cancel()
		if ctx.Err() != nil {
			slog.Debug("hunt closed while loading highscore", "session", s.Code)
			return
		}
		if err != nil {
			slog.Error("failed to load highscore", "session", s.Code, "player", s.PlayerName, "error", err)
		} else {
			best = b
		}
	}

	s.mu.Lock()
	s.arena = arena.New(s.cfg, s.rng, best, s.hooks())
	s.huntTime = 0
	s.over = nil
	info := s.huntInfo()
	s.mu.Unlock()

	s.send(ws.TypeHuntInfo, info)
	slog.Info("hunt prepared", "session", s.Code, "player", s.PlayerName, "highscore", best)
}

// Start runs the game loop. Must be called after Prepare.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.closed {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	go s.gameLoop()
}

// Stop ends the game loop and waits for it to exit. Safe to call more than once.
func (s *Session) Stop() {
	s.mu.Lock()
	s.closed = true
	cancelOpen := s.cancelOpen
	s.mu.Unlock()
	if cancelOpen != nil {
		cancelOpen()
		<-s.opened
	}

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	done := s.done
	s.mu.Unlock()

	<-done
	slog.Info("hunt stopped", "session", s.Code)
}

// Restart starts a new round in the same session.
func (s *Session) Restart() {
	s.mu.Lock()
	if s.arena == nil {
		s.mu.Unlock()
		return
	}
	s.arena.Restart()
	s.huntTime = 0
	s.over = nil
	info := s.huntInfo()
	s.mu.Unlock()

	s.send(ws.TypeHuntInfo, info)
	slog.Info("hunt restarted", "session", s.Code)
}

func (s *Session) huntInfo() ws.HuntInfo {
	return ws.HuntInfo{
		Code:       s.Code,
		PlayerName: s.PlayerName,
		Highscore:  s.arena.State().Highscore(),
		IntroDelay: s.cfg.IntroDelay.Seconds(),
		Bounds:     s.arena.Bounds(),
	}
}

// Snapshot returns the current arena state.
func (s *Session) Snapshot() arena.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.arena == nil {
		return arena.Snapshot{}
	}
	return s.arena.Snapshot()
}

// gameLoop runs the arena at TickRate until Stop.
func (s *Session) gameLoop() {
	defer close(s.done)

	ticker := time.NewTicker(game.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.step(game.TickInterval)
		}
	}
}

// step advances the hunt, broadcasts the snapshot and reports a finished hunt once.
func (s *Session) step(dt time.Duration) {
	s.mu.Lock()
	if s.arena == nil {
		s.mu.Unlock()
		return
	}
	s.arena.Tick(dt)
	if !s.arena.State().IsGameOver() {
		s.huntTime += dt
	}
	snap := s.arena.Snapshot()
	over := s.over
	s.over = nil
	huntTime := s.huntTime
	level := s.arena.State().Level()
	s.mu.Unlock()

	s.send(ws.TypeGameState, snap)

	if over != nil {
		s.send(ws.TypeGameOver, over)
		s.saveScore(over.Score, level, huntTime)
	}
}

func (s *Session) saveScore(score, level int, huntTime time.Duration) {
	if s.scores == nil || score == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := s.scores.Submit(ctx, store.NewEntry(s.PlayerName, score, level, huntTime)); err != nil {
		slog.Error("failed to save highscore", "session", s.Code, "score", score, "error", err)
		return
	}
	slog.Info("highscore saved", "session", s.Code, "player", s.PlayerName, "score", score)
}

// hooks forwards arena notifications to the client. They run with s.mu held.
func (s *Session) hooks() arena.Hooks {
	return arena.Hooks{
		PullChanged: func(level float64) {
			s.send(ws.TypePullChanged, ws.PullChanged{Level: level})
		},
		ArrowReleased: func(a arena.ArrowView) {
			s.send(ws.TypeArrowReleased, a)
		},
		GhostKilled: func(ghostID string, score int) {
			slog.Debug("ghost killed", "session", s.Code, "ghost", ghostID, "score", score)
		},
		LevelUp: func(level int) {
			s.send(ws.TypeLevelUp, ws.LevelUp{Level: level})
			slog.Info("level up", "session", s.Code, "level", level)
		},
		GameOver: func(score, highscore int) {
			s.over = &ws.GameOver{
				Score:     score,
				Highscore: highscore,
				NewRecord: score > 0 && score == highscore,
			}
			slog.Info("hunt over", "session", s.Code, "score", score, "highscore", highscore)
		},
	}
}

// hand wraps a client hand. With haptics its vibrations are forwarded as haptic messages.
func (s *Session) hand(name string, haptics bool) bow.Hand {
	if !haptics {
		return arena.NewHand(name, nil)
	}
	return arena.NewHand(name, arena.HapticFunc(func(intensity float64, d time.Duration) {
		s.send(ws.TypeHaptic, ws.Haptic{Hand: name, Intensity: intensity, Duration: d.Seconds()})
	}))
}

func (s *Session) send(msgType string, payload any) {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		slog.Error("failed to build message", "session", s.Code, "type", msgType, "error", err)
		return
	}
	s.client.SendMessage(msg)
}

// GrabBow picks up the bow.
func (s *Session) GrabBow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.arena != nil {
		s.arena.GrabBow()
	}
}

// DropBow puts the bow down.
func (s *Session) DropBow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.arena != nil {
		s.arena.DropBow()
	}
}

// GrabString starts drawing with the named hand.
func (s *Session) GrabString(handName string, haptics bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.arena == nil {
		return ErrNotPrepared
	}
	return s.arena.GrabString(s.hand(handName, haptics))
}

// MoveHand updates the bow pose and the drawing hand.
func (s *Session) MoveHand(hand, bowPos, bowAim geom.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.arena == nil {
		return
	}
	s.arena.AimBow(bowPos, bowAim)
	s.arena.MoveHand(hand)
}

// ReleaseString fires the notched arrow, if any.
func (s *Session) ReleaseString() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.arena != nil {
		s.arena.ReleaseString()
	}
}

// MoveHead updates the player's head position.
func (s *Session) MoveHead(pos geom.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.arena != nil {
		s.arena.MoveHead(pos)
	}
}
