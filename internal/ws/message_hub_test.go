package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/dileepkakara/portfolio/internal/models"
)

func startHub(t *testing.T) (*MessageHub, *httptest.Server, context.CancelFunc, chan struct{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewMessageHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	r := gin.New()
	r.GET("/stream", MessagesHandler(hub))
	srv := httptest.NewServer(r)
	return hub, srv, cancel, stopped
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestMessageHubDeliversEvents(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	hub, srv, cancel, stopped := startHub(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(MessageEvent{
		Type:    EventMessageCreated,
		Message: models.ContactMessage{ID: "m-1", Name: "Ana", Email: "ana@example.com", Message: "Hi"},
	})

	var got MessageEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, EventMessageCreated, got.Type)
	assert.Equal(t, "m-1", got.Message.ID)
	assert.Equal(t, "Ana", got.Message.Name)

	cancel()
	<-stopped
	assert.Equal(t, 0, hub.Clients())
	conn.Close()
	srv.Close()
}

func TestMessageHubUnregistersClosedClients(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	hub, srv, cancel, stopped := startHub(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-stopped
	srv.Close()
}

func TestBroadcastAfterStopDoesNotBlock(t *testing.T) {
	hub := NewMessageHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hub.Run(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Broadcast(MessageEvent{Type: EventMessageDeleted})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked after hub stopped")
	}
}

func TestNilHubIsSafe(t *testing.T) {
	var hub *MessageHub
	hub.Broadcast(MessageEvent{Type: EventMessageCreated})
	assert.Equal(t, 0, hub.Clients())
}
