package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ClientMessage is what the page sends.
// Key carries a DOM KeyboardEvent.key value; Type "restart" is the restart button.
type ClientMessage struct {
	Type string `json:"type,omitempty"`
	Key  string `json:"key,omitempty"`
}

// ServerMessage wraps a snapshot with the session id.
type ServerMessage struct {
	Session string `json:"session"`
	snake.Snapshot
}

// handleWS upgrades the request and runs one game until either side leaves.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	id := uuid.New().String()
	logger := s.logger.With("session", id)
	logger.Info("session started", "remote", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := snake.NewEngine(snake.EngineConfig{
		Rules:    s.config.Rules,
		Interval: s.config.Interval,
		Seed:     seed,
		Logger:   logger,
	})

	go func() {
		if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("engine stopped", "error", err)
		}
	}()
	go readLoop(conn, engine, logger, cancel)

	writeLoop(ctx, conn, engine, id, logger)

	final := engine.Snapshot()
	logger.Info("session ended", "score", final.Score, "gameOver", final.GameOver)
}

// readLoop forwards client input to the engine. It is the only reader of conn.
func readLoop(conn *websocket.Conn, engine *snake.Engine, logger *log.Logger, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("read failed", "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		if msg.Type == "restart" {
			engine.Confirm()
			continue
		}
		engine.Apply(core.ActionFromKey(msg.Key))
	}
}

// writeLoop sends every published snapshot and keeps the connection alive.
// It is the only writer of conn.
func writeLoop(ctx context.Context, conn *websocket.Conn, engine *snake.Engine, id string, logger *log.Logger) {
	snaps, unsubscribe := engine.Subscribe()
	defer unsubscribe()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return

		case snap, ok := <-snaps:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ServerMessage{Session: id, Snapshot: snap}); err != nil {
				logger.Debug("write failed", "error", err)
				return
			}

		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logger.Debug("ping failed", "error", err)
				return
			}
		}
	}
}
