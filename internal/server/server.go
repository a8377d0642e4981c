// Package server exposes running games to spectators over HTTP and
// websockets. It is read-only: moves are only accepted from the local
// console.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"upturn/internal/session"
)

const writeWait = 5 * time.Second

type Server struct {
	router  *gin.Engine
	manager *session.Manager
	log     *zap.Logger

	watchMu  sync.RWMutex
	watchers map[string]map[*watcher]struct{}
}

type Config struct {
	Manager *session.Manager
	Logger  *zap.Logger
}

func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{
		router:   router,
		manager:  cfg.Manager,
		log:      logger,
		watchers: make(map[string]map[*watcher]struct{}),
	}
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/games/:id", s.handleSnapshot)
	router.GET("/games/:id/board", s.handleBoard)
	router.GET("/ws", s.handleWS)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	s.log.Info("spectator server listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) handleSnapshot(c *gin.Context) {
	snap, ok := s.manager.Snapshot(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": session.ErrUnknownGame.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleBoard(c *gin.Context) {
	text, ok := s.manager.Render(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, session.ErrUnknownGame.Error()+"\n")
		return
	}
	c.String(http.StatusOK, text)
}

type watcher struct {
	conn *websocket.Conn
	send chan []byte
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) handleWS(c *gin.Context) {
	gameID := c.Query("gameId")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gameId required"})
		return
	}
	snap, ok := s.manager.Snapshot(gameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": session.ErrUnknownGame.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	w := &watcher{conn: conn, send: make(chan []byte, 16)}
	s.subscribe(gameID, w)
	w.push(encode(snap))

	go w.writePump()
	go s.readPump(gameID, w)
}

// Broadcast pushes a snapshot to everyone watching its game. It is meant to
// be the session manager's change hook.
func (s *Server) Broadcast(snap session.Snapshot) {
	s.watchMu.RLock()
	defer s.watchMu.RUnlock()
	set := s.watchers[snap.ID]
	if len(set) == 0 {
		return
	}
	data := encode(snap)
	for w := range set {
		w.push(data)
	}
}

func (s *Server) subscribe(gameID string, w *watcher) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	set, ok := s.watchers[gameID]
	if !ok {
		set = make(map[*watcher]struct{})
		s.watchers[gameID] = set
	}
	set[w] = struct{}{}
}

func (s *Server) unsubscribe(gameID string, w *watcher) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	if set, ok := s.watchers[gameID]; ok {
		if _, present := set[w]; present {
			delete(set, w)
			close(w.send)
		}
		if len(set) == 0 {
			delete(s.watchers, gameID)
		}
	}
}

func encode(snap session.Snapshot) []byte {
	data, _ := json.Marshal(map[string]any{"type": "state", "game": snap})
	return data
}

// push never blocks; a spectator that falls behind misses updates.
func (w *watcher) push(data []byte) {
	select {
	case w.send <- data:
	default:
	}
}

func (w *watcher) writePump() {
	defer w.conn.Close()
	for msg := range w.send {
		_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := w.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = w.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump discards anything spectators send and unsubscribes on close.
func (s *Server) readPump(gameID string, w *watcher) {
	defer s.unsubscribe(gameID, w)
	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			return
		}
	}
}
