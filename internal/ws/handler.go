package ws

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"balatro-spectator/internal/middleware"
	"balatro-spectator/internal/service/advisor"
	"balatro-spectator/internal/service/input"
	"balatro-spectator/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	MessageState          = "state"
	MessageRecommendation = "recommendation"
	MessageError          = "error"
)

type Handler struct {
	advisor *advisor.Service
}

func NewHandler(advisorSvc *advisor.Service) *Handler {
	return &Handler{advisor: advisorSvc}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // overlays are served from arbitrary origins
	},
}

// OutgoingMessage is one frame sent to a spectator. Seq increases per
// connection; error frames answering a bad payload carry seq 0.
type OutgoingMessage struct {
	Type string      `json:"type"`
	Seq  int64       `json:"seq"`
	Data interface{} `json:"data"`
}

// HandleSpectate streams recommendations: each inbound {"type":"state"} frame
// is answered with one recommendation or error frame, in order.
func (h *Handler) HandleSpectate(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	clientName := c.GetString(middleware.ContextClientKey)
	logger.Log.Info("New spectator connection", zap.String("client", clientName))

	cl := newClient(conn, clientName, h.advisor)
	cl.run()
}

type client struct {
	conn      *websocket.Conn
	name      string
	advisor   *advisor.Service
	outbound  chan OutgoingMessage
	done      chan struct{}
	stopped   chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
	seq       atomic.Int64
	pingEvery time.Duration
}

func newClient(conn *websocket.Conn, name string, advisorSvc *advisor.Service) *client {
	conn.SetReadLimit(1 << 20)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	return &client{
		conn:      conn,
		name:      name,
		advisor:   advisorSvc,
		outbound:  make(chan OutgoingMessage, 16),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
		pingEvery: 25 * time.Second,
	}
}

func (c *client) run() {
	go c.writePump()
	c.readPump()
}

func (c *client) readPump() {
	defer func() {
		c.cancel()
		close(c.done)
		c.conn.Close()
	}()

	for {
		mt, message, err := c.conn.ReadMessage()
		if err != nil {
			logger.Log.Info("WS read error", zap.Error(err), zap.String("client", c.name))
			return
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}

		var incoming struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(message, &incoming); err != nil {
			c.send(OutgoingMessage{Type: MessageError, Data: gin.H{"message": "invalid payload"}})
			continue
		}
		if incoming.Type != MessageState {
			continue
		}

		state, err := input.DecodeState(bytes.NewReader(incoming.Data))
		if err != nil {
			c.send(OutgoingMessage{Type: MessageError, Seq: c.seq.Add(1), Data: gin.H{"message": err.Error()}})
			continue
		}
		rec, err := c.advisor.Recommend(c.ctx, state)
		if err != nil {
			c.send(OutgoingMessage{Type: MessageError, Seq: c.seq.Add(1), Data: gin.H{"message": err.Error()}})
			continue
		}
		c.send(OutgoingMessage{Type: MessageRecommendation, Seq: c.seq.Add(1), Data: rec})
	}
}

func (c *client) send(msg OutgoingMessage) {
	select {
	case c.outbound <- msg:
	case <-c.stopped:
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.pingEvery)
	defer func() {
		ticker.Stop()
		close(c.stopped)
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.outbound:
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.Log.Info("WS write error", zap.Error(err), zap.String("client", c.name))
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
