package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/aokimidori/kakigori-pos/hub"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // trusted single-venue deployment, no origin lockdown
	},
}

type StreamController struct {
	Hub *hub.Hub
}

func NewStreamController(h *hub.Hub) *StreamController {
	return &StreamController{Hub: h}
}

// Stream -> websocket endpoint. The session runs on this handler's goroutine
// until the client disconnects.
func (sc *StreamController) Stream(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	sc.Hub.ServeSession(ws)
}
