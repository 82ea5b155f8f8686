package board

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// Event is a washing job change pushed to the dispatch board.
type Event struct {
	Type     string    `json:"type"`
	JobID    int64     `json:"job_id"`
	Status   string    `json:"status"`
	Plate    string    `json:"plate,omitempty"`
	WasherID *int64    `json:"washer_id,omitempty"`
	Payload  any       `json:"payload,omitempty"`
	At       time.Time `json:"at"`
}

const (
	EventJobCreated   = "job_created"
	EventJobAssigned  = "job_assigned"
	EventJobCompleted = "job_completed"
)

// connection is one open board screen. Washers see new jobs and their own
// assignments; everyone else sees every event.
type connection struct {
	employeeID int64
	washerOnly bool
	conn       *websocket.Conn
	send       chan []byte
}

func (c *connection) wants(e *Event) bool {
	if !c.washerOnly {
		return true
	}
	if e.Type == EventJobCreated {
		return true
	}
	return e.WasherID != nil && *e.WasherID == c.employeeID
}

// Hub fans job events out to every connected board.
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*connection]struct{}),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
}

// Connections reports how many boards are attached.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Publish never blocks: a board that falls behind misses the event and
// catches up from the REST listing.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("board_publish_failed type=%s job_id=%d err=%v", e.Type, e.JobID, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		if !c.wants(&e) {
			continue
		}
		select {
		case c.send <- data:
		default:
		}
	}
}

// ServeWS registers the connection and blocks until the client goes away.
func (h *Hub) ServeWS(conn *websocket.Conn, employeeID int64, washerOnly bool) {
	c := &connection{
		employeeID: employeeID,
		washerOnly: washerOnly,
		conn:       conn,
		send:       make(chan []byte, 64),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

// readPump only drains control frames; boards do not send commands.
func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("board_ws_closed employee_id=%d err=%v", c.employeeID, err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *connection) {
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
