package board

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"parkwash/internal/middleware"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler accepts upgrades from the listed origins; "*" or an empty list
// allows any origin.
func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	anyOrigin := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			anyOrigin = true
		}
		allowed[strings.TrimRight(o, "/")] = true
	}

	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return anyOrigin || origin == "" || allowed[origin]
			},
		},
	}
}

func (h *Handler) WebSocket(c *gin.Context) {
	employeeID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	role := c.GetString(middleware.ContextRole)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("board_ws_upgrade_failed employee_id=%d err=%v", employeeID, err)
		return
	}

	h.hub.ServeWS(conn, employeeID, role == "washer")
}
