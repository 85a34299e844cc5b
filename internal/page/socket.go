package page

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// socketRequest is the incoming WebSocket message format.
type socketRequest struct {
	Type    string `json:"type"` // "send"
	Content string `json:"content"`
}

// socketMessage is the outgoing WebSocket message format.
type socketMessage struct {
	Type    string `json:"type"` // "patch" or "error"
	Patch   *Patch `json:"patch,omitempty"`
	Content string `json:"content,omitempty"`
}

// socketConn serializes writes from the patch pump and the read loop.
type socketConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *socketConn) send(msg socketMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", "page", p.ID(), "error", err)
		return
	}
	defer conn.Close()
	sc := &socketConn{conn: conn}

	patches, unsubscribe := p.Subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case patch, ok := <-patches:
				if !ok {
					conn.Close()
					return
				}
				if err := sc.send(socketMessage{Type: "patch", Patch: &patch}); err != nil {
					h.logger.Debug("websocket write", "page", p.ID(), "error", err)
					conn.Close()
					return
				}
			}
		}
	}()

	if err := h.readLoop(r.Context(), p, conn, sc.send); err != nil {
		h.logger.Debug("websocket closed", "page", p.ID(), "error", err)
	}
}

// messageReader is the read side of a websocket connection.
type messageReader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

// readLoop handles incoming messages until reading or writing fails.
func (h *Handler) readLoop(ctx context.Context, p *Page, rd messageReader, send func(socketMessage) error) error {
	for {
		_, msg, err := rd.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read", "page", p.ID(), "error", err)
			}
			return err
		}

		var req socketRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			if err := send(socketMessage{Type: "error", Content: "invalid message format"}); err != nil {
				return err
			}
			continue
		}

		switch req.Type {
		case "send":
			p.Touch(time.Now())
			out, patch := p.SendChat(ctx, req.Content)
			if out.Err != nil {
				h.logger.Debug("chat turn failed", "page", p.ID(), "error", out.Err)
			}
			if !patch.Empty() {
				if err := send(socketMessage{Type: "patch", Patch: &patch}); err != nil {
					return err
				}
			}
		default:
			if err := send(socketMessage{Type: "error", Content: "unknown message type: " + req.Type}); err != nil {
				return err
			}
		}
	}
}
