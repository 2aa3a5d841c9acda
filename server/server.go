package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/milliondoubt/protocol"
	"github.com/minaorangina/milliondoubt/store"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GameRes summarises one game for spectators
type GameRes struct {
	GameID     string            `json:"game_id"`
	Players    []protocol.Player `json:"players"`
	Over       bool              `json:"over"`
	WinnerID   string            `json:"winner_id,omitempty"`
	EventCount int               `json:"event_count"`
}

type ListGamesRes struct {
	Games []GameRes `json:"games"`
}

type GetEventsRes struct {
	GameID string           `json:"game_id"`
	Events []protocol.Event `json:"events"`
}

// GameServer lets spectators follow games. It never accepts moves.
type GameServer struct {
	store  store.GameStore
	logger *zap.Logger
	http.Server
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(str store.GameStore, logger *zap.Logger) *GameServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &GameServer{
		store:  str,
		logger: logger,
	}

	router := http.NewServeMux()
	router.Handle("/games", http.HandlerFunc(s.HandleListGames))
	router.Handle("/games/", http.HandlerFunc(s.HandleGame))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
	)
	accessLog := zap.NewStdLog(logger.Named("http")).Writer()

	s.Handler = handlers.LoggingHandler(accessLog, cors(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleListGames lists every game the store knows about
func (g *GameServer) HandleListGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	payload := ListGamesRes{Games: []GameRes{}}
	for _, id := range g.store.GameIDs() {
		if record, ok := g.store.FindGame(id); ok {
			payload.Games = append(payload.Games, summarise(record))
		}
	}

	g.writeJSON(w, http.StatusOK, payload)
}

// HandleGame routes /games/{id}, /games/{id}/events and /games/{id}/ws
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID, resource := splitGamePath(r.URL.Path)
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	switch resource {
	case "":
		g.handleFindGame(w, gameID)
	case "events":
		g.handleEvents(w, r, gameID)
	case "ws":
		g.handleWS(w, r, gameID)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *GameServer) handleFindGame(w http.ResponseWriter, gameID string) {
	record, ok := g.store.FindGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	g.writeJSON(w, http.StatusOK, summarise(record))
}

func (g *GameServer) handleEvents(w http.ResponseWriter, r *http.Request, gameID string) {
	since := 0
	if raw := r.URL.Query().Get("since"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("since must be a non-negative integer"))
			return
		}
		since = n
	}

	events, err := g.store.Events(gameID, since)
	if errors.Is(err, store.ErrUnknownGameID) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}
	if err != nil {
		g.logger.Error("could not read events", zap.String("game_id", gameID), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.writeJSON(w, http.StatusOK, GetEventsRes{GameID: gameID, Events: spectatorView(events)})
}

func (g *GameServer) handleWS(w http.ResponseWriter, r *http.Request, gameID string) {
	backlog, events, cancel, err := g.store.Subscribe(gameID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		g.logger.Warn("could not upgrade to websocket", zap.String("game_id", gameID), zap.Error(err))
		return
	}
	defer conn.Close()

	logger := g.logger.With(zap.String("game_id", gameID), zap.String("remote", r.RemoteAddr))
	logger.Debug("spectator joined")

	// spectators only listen; reading detects when they leave
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for _, e := range backlog {
		if done, err := sendEvent(conn, e); err != nil || done {
			closeConn(conn, logger, err)
			return
		}
	}

	for {
		select {
		case <-gone:
			logger.Debug("spectator left")
			return
		case e, ok := <-events:
			if !ok {
				closeConn(conn, logger, errors.New("spectator fell behind"))
				return
			}
			if done, err := sendEvent(conn, e); err != nil || done {
				closeConn(conn, logger, err)
				return
			}
		}
	}
}

// sendEvent writes one event and reports whether it ended the game
func sendEvent(conn *websocket.Conn, e protocol.Event) (bool, error) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(spectatorView([]protocol.Event{e})[0]); err != nil {
		return false, err
	}
	return e.Kind == protocol.EventGameOver, nil
}

func closeConn(conn *websocket.Conn, logger *zap.Logger, err error) {
	code, text := websocket.CloseNormalClosure, "game over"
	if err != nil {
		logger.Warn("closing spectator connection", zap.Error(err))
		code, text = websocket.CloseGoingAway, err.Error()
	}

	conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text),
		time.Now().Add(writeWait),
	)
}

func (g *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error("could not encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func splitGamePath(path string) (string, string) {
	rest := strings.Trim(strings.TrimPrefix(path, "/games/"), "/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
