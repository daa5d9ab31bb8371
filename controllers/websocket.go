package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	clientsMu sync.Mutex
	clients   = make(map[*websocket.Conn]struct{})
)

// HandleWebSocket subscribes a dashboard client to alert broadcasts.
// The connection is read only to detect close.
func HandleWebSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	clientsMu.Lock()
	clients[conn] = struct{}{}
	clientsMu.Unlock()

	defer func() {
		clientsMu.Lock()
		delete(clients, conn)
		clientsMu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastAlert pushes an alert event to every connected client.
func BroadcastAlert(event models.AlertEvent) {
	notification := map[string]interface{}{
		"message": "Abnormal cargo condition detected!",
		"alert":   event,
	}
	msg, _ := json.Marshal(notification)

	clientsMu.Lock()
	defer clientsMu.Unlock()
	for conn := range clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
