package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ghosthunt/ghosthunt-server/internal/arena"
	"github.com/ghosthunt/ghosthunt-server/internal/game"
	"github.com/ghosthunt/ghosthunt-server/internal/geom"
	"github.com/ghosthunt/ghosthunt-server/internal/store"
	"github.com/ghosthunt/ghosthunt-server/internal/store/mocks"
	"github.com/ghosthunt/ghosthunt-server/internal/ws"
)

// mockClient creates a ws.Client with a buffered Send channel for testing.
func mockClient(id string) *ws.Client {
	return &ws.Client{
		ID:   id,
		Send: make(chan []byte, 256),
	}
}

// drainMessages reads all pending messages from a client's send channel.
func drainMessages(client *ws.Client) []ws.Message {
	var msgs []ws.Message
	for {
		select {
		case data := <-client.Send:
			var msg ws.Message
			if err := json.Unmarshal(data, &msg); err == nil {
				msgs = append(msgs, msg)
			}
		default:
			return msgs
		}
	}
}

// findMessageByType finds the first message of a given type.
func findMessageByType(msgs []ws.Message, msgType string) *ws.Message {
	for _, m := range msgs {
		if m.Type == msgType {
			return &m
		}
	}
	return nil
}

func countMessages(msgs []ws.Message, msgType string) int {
	n := 0
	for _, m := range msgs {
		if m.Type == msgType {
			n++
		}
	}
	return n
}

func testConfig() arena.Config {
	cfg := arena.DefaultConfig()
	cfg.IntroDelay = time.Hour
	return cfg
}

func setupTestSession(t *testing.T, scores store.HighscoreStore) (*Session, *ws.Client) {
	t.Helper()
	c := mockClient("client1")
	s := New("TEST", "mira", c, testConfig(), scores)
	s.Prepare(context.Background())
	return s, c
}

// killPlayer drops a ghost right next to the player's head.
func killPlayer(s *Session) {
	s.MoveHead(geom.V(0, 1.7, 0))
	s.mu.Lock()
	s.arena.Spawn(geom.V(0, 0.4, 0.5), geom.Identity)
	s.mu.Unlock()
}

func TestPrepare_SendsHuntInfoWithStoredBest(t *testing.T) {
	ctrl := gomock.NewController(t)
	scores := mocks.NewMockHighscoreStore(ctrl)
	scores.EXPECT().Best(gomock.Any(), "mira").Return(5, nil)

	_, c := setupTestSession(t, scores)

	msg := findMessageByType(drainMessages(c), ws.TypeHuntInfo)
	require.NotNil(t, msg, "should receive hunt_info")

	var info ws.HuntInfo
	require.NoError(t, json.Unmarshal(msg.Data, &info))
	assert.Equal(t, "TEST", info.Code)
	assert.Equal(t, "mira", info.PlayerName)
	assert.Equal(t, 5, info.Highscore)
	assert.InDelta(t, game.SurfaceHalfWidth, info.Bounds.Max.X, 1e-9)
}

func TestPrepare_StoreErrorStartsFromZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	scores := mocks.NewMockHighscoreStore(ctrl)
	scores.EXPECT().Best(gomock.Any(), "mira").Return(0, errors.New("connection refused"))

	s, _ := setupTestSession(t, scores)

	assert.Zero(t, s.Snapshot().Highscore)
}

func TestStep_BroadcastsGameState(t *testing.T) {
	s, c := setupTestSession(t, nil)
	drainMessages(c)

	s.step(game.TickInterval)

	msg := findMessageByType(drainMessages(c), ws.TypeGameState)
	require.NotNil(t, msg, "should receive game_state")

	var snap arena.Snapshot
	require.NoError(t, json.Unmarshal(msg.Data, &snap))
	assert.Equal(t, "intro", snap.Phase)
	assert.Equal(t, 1, snap.Level)
}

func TestGameOver_ReportedOnceAndSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	scores := mocks.NewMockHighscoreStore(ctrl)
	scores.EXPECT().Best(gomock.Any(), "mira").Return(0, nil)
	scores.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *store.Entry) error {
		assert.Equal(t, "mira", e.PlayerName)
		assert.Equal(t, 3, e.Score)
		assert.Equal(t, 1, e.Level)
		return nil
	}).Times(1)

	s, c := setupTestSession(t, scores)
	s.mu.Lock()
	s.arena.State().AddScore(3)
	s.mu.Unlock()
	killPlayer(s)
	drainMessages(c)

	s.step(game.TickInterval)
	s.step(game.TickInterval)

	msgs := drainMessages(c)
	assert.Equal(t, 1, countMessages(msgs, ws.TypeGameOver))

	var over ws.GameOver
	require.NoError(t, json.Unmarshal(findMessageByType(msgs, ws.TypeGameOver).Data, &over))
	assert.Equal(t, 3, over.Score)
	assert.Equal(t, 3, over.Highscore)
	assert.True(t, over.NewRecord)
}

func TestGameOver_ZeroScoreNotSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	scores := mocks.NewMockHighscoreStore(ctrl)
	scores.EXPECT().Best(gomock.Any(), "mira").Return(4, nil)

	s, c := setupTestSession(t, scores)
	killPlayer(s)
	s.step(game.TickInterval)

	msg := findMessageByType(drainMessages(c), ws.TypeGameOver)
	require.NotNil(t, msg)

	var over ws.GameOver
	require.NoError(t, json.Unmarshal(msg.Data, &over))
	assert.Equal(t, 4, over.Highscore)
	assert.False(t, over.NewRecord)
}

func TestRestart_SendsHuntInfo(t *testing.T) {
	s, c := setupTestSession(t, nil)
	killPlayer(s)
	s.step(game.TickInterval)
	drainMessages(c)

	s.Restart()

	require.NotNil(t, findMessageByType(drainMessages(c), ws.TypeHuntInfo))
	snap := s.Snapshot()
	assert.Equal(t, "intro", snap.Phase)
	assert.Zero(t, snap.Score)
}

func TestBowInput_SendsPullAndRelease(t *testing.T) {
	s, c := setupTestSession(t, nil)
	end := testConfig().Anchors.End

	s.GrabBow()
	s.step(time.Second)
	require.NoError(t, s.GrabString("right", true))
	s.MoveHand(end, geom.V(0, 1.5, 0), geom.Forward)
	s.ReleaseString()

	msgs := drainMessages(c)
	assert.NotNil(t, findMessageByType(msgs, ws.TypePullChanged))
	assert.NotNil(t, findMessageByType(msgs, ws.TypeArrowReleased))

	haptic := findMessageByType(msgs, ws.TypeHaptic)
	require.NotNil(t, haptic)
	var h ws.Haptic
	require.NoError(t, json.Unmarshal(haptic.Data, &h))
	assert.Equal(t, "right", h.Hand)
	assert.InDelta(t, 0.3, h.Intensity, 1e-9)

	assert.Len(t, s.Snapshot().Arrows, 1)
}

func TestBowInput_NoHapticsWhenUnsupported(t *testing.T) {
	s, c := setupTestSession(t, nil)

	s.GrabBow()
	s.GrabString("right", false)
	s.MoveHand(testConfig().Anchors.End, geom.Zero, geom.Forward)

	assert.Zero(t, countMessages(drainMessages(c), ws.TypeHaptic))
}

func TestGrabString_WithoutBowFails(t *testing.T) {
	s, _ := setupTestSession(t, nil)
	assert.ErrorIs(t, s.GrabString("right", false), arena.ErrBowNotHeld)
}

func TestGrabString_OtherHandHoldsString(t *testing.T) {
	s, _ := setupTestSession(t, nil)
	s.GrabBow()
	require.NoError(t, s.GrabString("left", false))

	assert.ErrorIs(t, s.GrabString("right", false), arena.ErrStringHeld)
}

func TestInputBeforePrepareIsIgnored(t *testing.T) {
	s := New("TEST", "mira", mockClient("c"), testConfig(), nil)

	s.GrabBow()
	s.MoveHead(geom.Up)
	s.ReleaseString()
	s.Restart()
	s.step(game.TickInterval)
	assert.ErrorIs(t, s.GrabString("right", false), ErrNotPrepared)
}

func TestGameLoop_BroadcastsGameState(t *testing.T) {
	s, c := setupTestSession(t, nil)
	s.Start()
	defer s.Stop()

	// Wait for at least one tick
	time.Sleep(game.TickInterval + 20*time.Millisecond)

	require.NotNil(t, findMessageByType(drainMessages(c), ws.TypeGameState))
}

func TestStop_DoubleStopSafe(t *testing.T) {
	s, _ := setupTestSession(t, nil)
	s.Start()
	s.Start()

	time.Sleep(game.TickInterval + 10*time.Millisecond)

	s.Stop()
	s.Stop()
}
