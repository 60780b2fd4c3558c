package handler

import (
	"encoding/json"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ghosthunt/ghosthunt-server/internal/session"
	"github.com/ghosthunt/ghosthunt-server/internal/ws"
)

const maxPlayerNameLength = 32

// HuntHandler handles session lifecycle messages.
type HuntHandler struct {
	sm     *session.Manager
	router *Router
}

// NewHuntHandler creates a new hunt handler.
func NewHuntHandler(sm *session.Manager, router *Router) *HuntHandler {
	return &HuntHandler{
		sm:     sm,
		router: router,
	}
}

// HandleStartHunt opens a session for the client, replacing any running one.
func (h *HuntHandler) HandleStartHunt(client *ws.Client, msg ws.Message) {
	var req ws.StartHuntRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("player_name is required"))
		return
	}
	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		client.SendMessage(ws.NewErrorMessage("player_name is required"))
		return
	}
	if utf8.RuneCountInString(name) > maxPlayerNameLength {
		client.SendMessage(ws.NewErrorMessage("player_name is too long"))
		return
	}

	h.endSession(client)

	client.Name = name
	s := h.sm.Create(client, name)
	h.router.RegisterSession(client.ID, s.Code)

	slog.Info("hunt started", "player", name, "session", s.Code)
}

// HandleRestart starts a new round in the client's session.
func (h *HuntHandler) HandleRestart(client *ws.Client, _ ws.Message) {
	s := h.router.SessionFor(client.ID)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("no active hunt"))
		return
	}
	s.Restart()
}

// HandleLeave ends the client's session.
func (h *HuntHandler) HandleLeave(client *ws.Client, _ ws.Message) {
	if !h.endSession(client) {
		client.SendMessage(ws.NewErrorMessage("no active hunt"))
	}
}

// HandleDisconnect handles client disconnection.
func (h *HuntHandler) HandleDisconnect(client *ws.Client) {
	h.endSession(client)
}

func (h *HuntHandler) endSession(client *ws.Client) bool {
	s := h.router.SessionFor(client.ID)
	h.router.UnregisterSession(client.ID)
	if s == nil {
		return false
	}
	h.sm.Remove(s.Code)
	slog.Info("hunt ended", "player", s.PlayerName, "session", s.Code)
	return true
}
