package engine

import (
	"math/rand"
	"sync"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/game"
	"github.com/minaorangina/milliondoubt/protocol"
)

type SpyGame struct {
	startCalled bool
	mu          *sync.Mutex
}

func NewSpyGame() *SpyGame {
	return &SpyGame{mu: &sync.Mutex{}}
}

func (g *SpyGame) AwaitingResponse() protocol.Cmd {
	return protocol.Null
}

func (g *SpyGame) Start(info []protocol.Player) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.startCalled = true
	return nil
}

func (g *SpyGame) Next() ([]protocol.OutboundMessage, error) {
	return nil, nil
}

func (g *SpyGame) ReceiveResponse(messages []protocol.InboundMessage) ([]protocol.OutboundMessage, error) {
	return nil, nil
}

func (g *SpyGame) GameOver() bool {
	return false
}

func (g *SpyGame) Events() []protocol.Event {
	return nil
}

// recorder is a Sink that keeps everything it is given
type recorder struct {
	events []protocol.Event
}

func (r *recorder) HandleEvent(e protocol.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []protocol.EventKind {
	kinds := []protocol.EventKind{}
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func c(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.MustCard(rank, suit)
}

// gameWithHands is a game where p1 attacks first with the given hands
func gameWithHands(p1, p2 deck.Deck) game.Game {
	return game.New(game.Opts{
		GameID:        "engine-test",
		Rng:           rand.New(rand.NewSource(1)),
		Hands:         map[string]deck.Deck{"p1": p1, "p2": p2},
		FirstPlayerID: "p1",
	})
}
