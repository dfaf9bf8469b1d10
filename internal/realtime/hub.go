// Package realtime fans chat messages out to the websocket clients of a room.
// The hub is process-local: clients connected to another instance are not
// reached.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/domain"
)

// ErrMalformedMessage is returned by OnMessage for payloads that are not a
// chat message. The connection stays open.
var ErrMalformedMessage = errors.New("malformed chat message")

// ErrMessageTooLarge is returned by OnMessage for payloads over
// MaxMessageBytes. The connection stays open.
var ErrMessageTooLarge = fmt.Errorf("chat message exceeds %d bytes", MaxMessageBytes)

// MaxMessageBytes caps the size of a single chat payload.
const MaxMessageBytes = 8 << 10

// DefaultSendBuffer is the outbound queue size of a client.
const DefaultSendBuffer = 256

// MessageSaver persists chat lines before they are fanned out.
type MessageSaver interface {
	SaveMessage(ctx context.Context, roomID, userID, username, content string) (*domain.Message, error)
}

// Client is one connection's outbound queue plus the identity it announced
// in its first message.
type Client struct {
	mu       sync.Mutex
	send     chan []byte
	closed   bool
	userID   string
	username string
}

// NewClient returns a client with an outbound queue of the given size.
func NewClient(buffer int) *Client {
	if buffer <= 0 {
		buffer = DefaultSendBuffer
	}
	return &Client{send: make(chan []byte, buffer)}
}

// Outbound is closed when the client leaves or is dropped.
func (c *Client) Outbound() <-chan []byte { return c.send }

// Deliver queues msg without blocking. It reports false when the queue is full
// or already closed.
func (c *Client) Deliver(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) identify(userID, username string) {
	c.mu.Lock()
	c.userID, c.username = userID, username
	c.mu.Unlock()
}

func (c *Client) identity() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID, c.username
}

type room struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
}

// Hub tracks the clients of every room.
type Hub struct {
	mu     sync.Mutex
	rooms  map[string]*room
	saver  MessageSaver
	logger zerolog.Logger
}

func NewHub(saver MessageSaver, logger zerolog.Logger) *Hub {
	return &Hub{
		rooms:  map[string]*room{},
		saver:  saver,
		logger: logger,
	}
}

// Join adds c to roomID, creating the room on first use.
func (h *Hub) Join(roomID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rooms[roomID]
	if !ok {
		r = &room{clients: map[*Client]struct{}{}}
		h.rooms[roomID] = r
	}
	r.mu.Lock()
	r.clients[c] = struct{}{}
	size := len(r.clients)
	r.mu.Unlock()
	h.logger.Debug().Str("room_id", roomID).Int("clients", size).Msg("client joined room")
}

// Leave removes c from roomID and closes its outbound queue. Calling it again
// is a no-op.
func (h *Hub) Leave(roomID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[roomID]; ok {
		r.mu.Lock()
		delete(r.clients, c)
		empty := len(r.clients) == 0
		r.mu.Unlock()
		if empty {
			delete(h.rooms, roomID)
		}
	}
	c.close()
}

// Broadcast queues payload for every client of roomID except from. Clients
// whose queue is full are dropped from the room.
func (h *Hub) Broadcast(roomID string, from *Client, payload []byte) {
	r := h.lockRoom(roomID)
	if r == nil {
		return
	}
	defer r.mu.Unlock()
	for c := range r.clients {
		if c == from {
			continue
		}
		if !c.Deliver(payload) {
			delete(r.clients, c)
			c.close()
			h.logger.Warn().Str("room_id", roomID).Msg("dropping slow chat client")
		}
	}
}

// RoomSize reports how many clients are in roomID.
func (h *Hub) RoomSize(roomID string) int {
	r := h.lockRoom(roomID)
	if r == nil {
		return 0
	}
	defer r.mu.Unlock()
	return len(r.clients)
}

// lockRoom returns roomID's room with its lock held, or nil. The hub lock is
// held until the room lock is taken, so Leave cannot prune the room and a
// later Join cannot replace it in between.
func (h *Hub) lockRoom(roomID string) *room {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rooms[roomID]
	if !ok {
		return nil
	}
	r.mu.Lock()
	return r
}

type inboundMessage struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

// OnMessage stores a chat line received from c and relays the raw payload to
// the rest of the room.
func (h *Hub) OnMessage(ctx context.Context, c *Client, roomID string, raw []byte) error {
	if len(raw) > MaxMessageBytes {
		return ErrMessageTooLarge
	}
	var in inboundMessage
	if err := json.Unmarshal(raw, &in); err != nil {
		return ErrMalformedMessage
	}
	if in.UserID == "" || strings.TrimSpace(in.Content) == "" {
		return ErrMalformedMessage
	}
	c.identify(in.UserID, in.Username)

	if _, err := h.saver.SaveMessage(ctx, roomID, in.UserID, in.Username, in.Content); err != nil {
		return fmt.Errorf("save chat message: %w", err)
	}
	h.Broadcast(roomID, c, raw)
	return nil
}

type leaveNotice struct {
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Disconnect removes c from roomID and, if c ever identified itself, tells the
// remaining members.
func (h *Hub) Disconnect(roomID string, c *Client) {
	h.Leave(roomID, c)

	userID, username := c.identity()
	if userID == "" {
		return
	}
	notice, err := json.Marshal(leaveNotice{
		Type:      "leave",
		UserID:    userID,
		Username:  username,
		Content:   username + " left the chat",
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to encode leave notice")
		return
	}
	h.Broadcast(roomID, c, notice)
}
