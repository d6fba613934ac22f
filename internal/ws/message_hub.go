package ws

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dileepkakara/portfolio/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 64
)

const (
	EventMessageCreated = "message_created"
	EventMessageDeleted = "message_deleted"
)

// MessageEvent is pushed to admin dashboards when the inbox changes.
type MessageEvent struct {
	Type    string                `json:"type"`
	Message models.ContactMessage `json:"message"`
}

// MessageHub fans contact message events out to connected admin clients.
// The client set is owned by Run.
type MessageHub struct {
	register   chan *messageClient
	unregister chan *messageClient
	broadcast  chan []byte
	done       chan struct{}
	clients    map[*messageClient]struct{}
	count      atomic.Int64
	log        *zap.Logger
}

func NewMessageHub(log *zap.Logger) *MessageHub {
	return &MessageHub{
		register:   make(chan *messageClient),
		unregister: make(chan *messageClient),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		clients:    make(map[*messageClient]struct{}),
		log:        log,
	}
}

// Run serves the hub until ctx is cancelled, then disconnects every client.
func (h *MessageHub) Run(ctx context.Context) {
	defer func() {
		for client := range h.clients {
			h.drop(client)
		}
		close(h.done)
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.count.Store(int64(len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					h.log.Warn("dropping slow websocket client")
					h.drop(client)
				}
			}
		}
	}
}

func (h *MessageHub) drop(client *messageClient) {
	delete(h.clients, client)
	close(client.send)
	client.conn.Close()
	h.count.Store(int64(len(h.clients)))
}

// Clients reports how many clients are connected.
func (h *MessageHub) Clients() int {
	if h == nil {
		return 0
	}
	return int(h.count.Load())
}

// Broadcast queues an event without blocking. Events are dropped when the
// hub is stopped or its queue is full.
func (h *MessageHub) Broadcast(event MessageEvent) {
	if h == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("marshal message event", zap.Error(err))
		return
	}
	select {
	case <-h.done:
	case h.broadcast <- data:
	default:
		h.log.Warn("message event dropped", zap.String("type", event.Type))
	}
}

func (h *MessageHub) join(client *messageClient) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *MessageHub) leave(client *messageClient) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

type messageClient struct {
	hub  *MessageHub
	conn *websocket.Conn
	send chan []byte
}

func newMessageClient(hub *MessageHub, conn *websocket.Conn) *messageClient {
	return &messageClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *messageClient) readPump() {
	defer c.hub.leave(c)
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *messageClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
