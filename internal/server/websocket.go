package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/deckcalc/internal/estimate"
	"github.com/muurk/deckcalc/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next message or pong from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

// wsError is the reply for a message that produced no estimate
type wsError struct {
	Error string `json:"error"`
}

func (h *handlers) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
}

// checkOrigin applies the CORS origin list to browser websocket clients.
// Requests without an Origin header (CLIs, tests) and same-host origins
// are always accepted.
func (h *handlers) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || allowsAnyOrigin(h.origins) {
		return true
	}
	for _, o := range h.origins {
		if o == origin {
			return true
		}
	}
	u, err := url.Parse(origin)
	return err == nil && u.Host == r.Host
}

// stream serves a stream of estimates. Each text message is a Request
// JSON; each reply is an Estimate JSON or an error object.
func (h *handlers) stream(c *gin.Context) {
	conn, err := h.upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		logging.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	remoteAddr := conn.RemoteAddr().String()
	logging.Info("WebSocket connected", zap.String("remote_addr", remoteAddr))

	done := make(chan struct{})
	defer func() {
		close(done)
		_ = conn.Close()
		logging.Info("WebSocket closed", zap.String("remote_addr", remoteAddr))
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go keepAlive(conn, done)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("WebSocket read error",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		logging.LogWebSocketMessage(remoteAddr, "received", msgType, data)

		if msgType != websocket.TextMessage {
			if err := writeJSON(conn, wsError{Error: "expected a text message"}); err != nil {
				return
			}
			continue
		}

		if err := writeJSON(conn, h.estimateMessage(data)); err != nil {
			logging.Warn("WebSocket write failed",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			return
		}
	}
}

// estimateMessage answers one websocket request
func (h *handlers) estimateMessage(data []byte) any {
	var req estimate.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return wsError{Error: "invalid request: " + err.Error()}
	}

	est, err := h.calc.Calculate(req)
	if err != nil {
		var vErr *estimate.ValidationError
		if !errors.As(err, &vErr) {
			logging.Error("Calculation failed", zap.Error(err))
		}
		return wsError{Error: err.Error()}
	}
	return est
}

func writeJSON(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}

// keepAlive pings the peer until done is closed. WriteControl may run
// concurrently with the reader loop's writes.
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
