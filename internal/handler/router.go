package handler

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ghosthunt/ghosthunt-server/internal/session"
	"github.com/ghosthunt/ghosthunt-server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	sm    *session.Manager
	hunt  *HuntHandler
	input *InputHandler

	// sessionMap tracks client ID -> session code, shared across handlers.
	sessionMap map[string]string
	mu         sync.RWMutex
}

// NewRouter creates a new message router.
func NewRouter(sm *session.Manager) *Router {
	r := &Router{
		sm:         sm,
		sessionMap: make(map[string]string),
	}
	r.hunt = NewHuntHandler(sm, r)
	r.input = NewInputHandler(r)
	return r
}

// RegisterSession maps a client ID to a session code.
func (r *Router) RegisterSession(clientID, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessionMap[clientID] = code
}

// UnregisterSession removes a client's session mapping.
func (r *Router) UnregisterSession(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessionMap, clientID)
}

// SessionFor returns the session owned by a client, or nil.
func (r *Router) SessionFor(clientID string) *session.Session {
	r.mu.RLock()
	code, ok := r.sessionMap[clientID]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return r.sm.Get(code)
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Session messages
	case ws.TypeStartHunt:
		r.hunt.HandleStartHunt(cm.Client, msg)
	case ws.TypeRestart:
		r.hunt.HandleRestart(cm.Client, msg)
	case ws.TypeLeave:
		r.hunt.HandleLeave(cm.Client, msg)

	// Input messages
	case ws.TypeGrabBow:
		r.input.HandleGrabBow(cm.Client, msg)
	case ws.TypeDropBow:
		r.input.HandleDropBow(cm.Client, msg)
	case ws.TypeGrabString:
		r.input.HandleGrabString(cm.Client, msg)
	case ws.TypeHandMove:
		r.input.HandleHandMove(cm.Client, msg)
	case ws.TypeReleaseString:
		r.input.HandleReleaseString(cm.Client, msg)
	case ws.TypeHeadMove:
		r.input.HandleHeadMove(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.hunt.HandleDisconnect(client)
}
