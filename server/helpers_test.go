package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/milliondoubt/deck"
	utils "github.com/minaorangina/milliondoubt/internal"
	"github.com/minaorangina/milliondoubt/protocol"
	"github.com/minaorangina/milliondoubt/store"
	"go.uber.org/zap/zaptest"
)

func newBasicStore() *store.InMemoryGameStore {
	return store.NewInMemoryGameStore()
}

func someGameEvents(gameID string) []protocol.Event {
	down := deck.MustCard(deck.Queen, deck.Hearts)
	down.TurnFaceDown()

	return []protocol.Event{
		{Kind: protocol.EventHandDealt, GameID: gameID, PlayerID: "p1", HandSize: 7, Round: 1, Phase: 1},
		{Kind: protocol.EventHandDealt, GameID: gameID, PlayerID: "p2", HandSize: 7, Round: 1, Phase: 1},
		{
			Kind:     protocol.EventPlayAccepted,
			GameID:   gameID,
			PlayerID: "p1",
			Cards:    []deck.Card{deck.MustCard(deck.Five, deck.Spades), down},
			Round:    1,
			Phase:    1,
		},
	}
}

func newStoreWithGame(t *testing.T, gameID string) *store.InMemoryGameStore {
	t.Helper()

	str := newBasicStore()
	err := str.AddGame(gameID, []protocol.Player{
		{PlayerID: "p1", Name: "Ada"},
		{PlayerID: "p2", Name: "Ben"},
	})
	utils.AssertNoError(t, err)

	for _, e := range someGameEvents(gameID) {
		str.Record(e)
	}

	return str
}

func newTestServer(t *testing.T, str store.GameStore) *GameServer {
	return NewServer(str, zaptest.NewLogger(t))
}

func newGetRequest(path string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, path, nil)
	return request
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not open a ws connection on %s %v", url, err)
	}

	return ws
}

func wsURL(server *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + path
}

func readEvent(t *testing.T, ws *websocket.Conn) protocol.Event {
	t.Helper()

	ws.SetReadDeadline(time.Now().Add(time.Second))

	var e protocol.Event
	err := ws.ReadJSON(&e)
	utils.AssertNoError(t, err)

	return e
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func decodeBody(t *testing.T, body *bytes.Buffer, into interface{}) {
	t.Helper()

	bodyBytes, err := ioutil.ReadAll(body)
	utils.AssertNoError(t, err)

	err = json.Unmarshal(bodyBytes, into)
	if err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
}
