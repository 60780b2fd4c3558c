package handler

import (
	"encoding/json"
	"math"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
	"github.com/ghosthunt/ghosthunt-server/internal/session"
	"github.com/ghosthunt/ghosthunt-server/internal/ws"
)

// maxCoordinate bounds every position a client may report, in meters.
const maxCoordinate = 100

// InputHandler handles controller and headset input.
type InputHandler struct {
	router *Router
}

// NewInputHandler creates a new input handler.
func NewInputHandler(router *Router) *InputHandler {
	return &InputHandler{router: router}
}

func (h *InputHandler) session(client *ws.Client) *session.Session {
	s := h.router.SessionFor(client.ID)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("no active hunt"))
	}
	return s
}

// validVec reports whether v is finite and inside the play volume.
func validVec(v geom.Vec3) bool {
	for _, c := range [...]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) > maxCoordinate {
			return false
		}
	}
	return true
}

// HandleGrabBow handles picking up the bow.
func (h *InputHandler) HandleGrabBow(client *ws.Client, _ ws.Message) {
	if s := h.session(client); s != nil {
		s.GrabBow()
	}
}

// HandleDropBow handles putting the bow down.
func (h *InputHandler) HandleDropBow(client *ws.Client, _ ws.Message) {
	if s := h.session(client); s != nil {
		s.DropBow()
	}
}

// HandleGrabString handles a hand grabbing the bow string.
func (h *InputHandler) HandleGrabString(client *ws.Client, msg ws.Message) {
	var req ws.GrabStringRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || (req.Hand != "left" && req.Hand != "right") {
		client.SendMessage(ws.NewErrorMessage("hand must be left or right"))
		return
	}
	s := h.session(client)
	if s == nil {
		return
	}
	if err := s.GrabString(req.Hand, req.Haptics); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
	}
}

// HandleHandMove handles drawing hand and bow pose updates.
func (h *InputHandler) HandleHandMove(client *ws.Client, msg ws.Message) {
	var req ws.HandMoveRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid hand data"))
		return
	}
	if !validVec(req.Hand) || !validVec(req.BowPos) || !validVec(req.BowAim) {
		client.SendMessage(ws.NewErrorMessage("position out of bounds"))
		return
	}
	if s := h.session(client); s != nil {
		s.MoveHand(req.Hand, req.BowPos, req.BowAim)
	}
}

// HandleReleaseString handles letting go of the string.
func (h *InputHandler) HandleReleaseString(client *ws.Client, _ ws.Message) {
	if s := h.session(client); s != nil {
		s.ReleaseString()
	}
}

// HandleHeadMove handles headset position updates.
func (h *InputHandler) HandleHeadMove(client *ws.Client, msg ws.Message) {
	var req ws.HeadMoveRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid head data"))
		return
	}
	if !validVec(req.Position) {
		client.SendMessage(ws.NewErrorMessage("position out of bounds"))
		return
	}
	if s := h.session(client); s != nil {
		s.MoveHead(req.Position)
	}
}
