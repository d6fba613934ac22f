package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	// Origins are not checked; the route sits behind bearer auth.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// MessagesHandler upgrades an authenticated admin request and streams
// message events until either side disconnects.
func MessagesHandler(hub *MessageHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.log.Debug("websocket upgrade failed", zap.Error(err))
			return
		}
		client := newMessageClient(hub, conn)
		if !hub.join(client) {
			conn.Close()
			return
		}

		go client.writePump()
		client.readPump()
	}
}
