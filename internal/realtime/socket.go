package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Frames past maxFrameSize close the connection with 1009. Anything between
// MaxMessageBytes and this limit gets an error frame instead.
const maxFrameSize = 64 << 10

// Upgrader accepts connections from any origin.
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Serve runs conn as a member of roomID until the peer goes away. It blocks
// in the read loop; writes happen on a separate goroutine.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, roomID string) {
	client := NewClient(DefaultSendBuffer)
	h.Join(roomID, client)

	go h.writePump(conn, client)
	h.readPump(ctx, conn, client, roomID)
}

func (h *Hub) readPump(ctx context.Context, conn *websocket.Conn, c *Client, roomID string) {
	defer func() {
		h.Disconnect(roomID, c)
		conn.Close()
	}()

	conn.SetReadLimit(maxFrameSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn().Err(err).Str("room_id", roomID).Msg("chat connection closed unexpectedly")
			}
			return
		}

		if err := h.OnMessage(ctx, c, roomID, raw); err != nil {
			if !errors.Is(err, ErrMalformedMessage) && !errors.Is(err, ErrMessageTooLarge) {
				h.logger.Error().Err(err).Str("room_id", roomID).Msg("failed to handle chat message")
			}
			frame, _ := json.Marshal(errorFrame{Type: "error", Error: err.Error()})
			c.Deliver(frame)
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Outbound():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
