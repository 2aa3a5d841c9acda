package game

import (
	"math/rand"
	"testing"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
	"github.com/stretchr/testify/require"
)

func c(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.MustCard(rank, suit)
}

func joker() deck.Card {
	return deck.MustJoker(deck.RedJoker)
}

func down(card deck.Card) deck.Card {
	card.TurnFaceDown()
	return card
}

func twoPlayers() []protocol.Player {
	return []protocol.Player{
		{PlayerID: "p1", Name: "Ada"},
		{PlayerID: "p2", Name: "Ben"},
	}
}

// gameWithHands starts a game where p1 attacks first with the given hands
func gameWithHands(t *testing.T, p1, p2 deck.Deck) *milliondoubt {
	t.Helper()

	g := New(Opts{
		GameID:        "test-game",
		Rng:           rand.New(rand.NewSource(1)),
		Hands:         map[string]deck.Deck{"p1": p1, "p2": p2},
		FirstPlayerID: "p1",
	})
	require.NoError(t, g.Start(twoPlayers()))
	g.Events()

	return g
}

// attack plays the cards at indices, turning the selected positions in
// faceDown over, and returns the messages sent after the play is judged.
func attack(t *testing.T, g *milliondoubt, indices, faceDown []int) []protocol.OutboundMessage {
	t.Helper()

	playerID := g.CurrentPlayer.PlayerID

	_, err := g.Next()
	require.NoError(t, err)
	require.Equal(t, protocol.PlayCards, g.AwaitingResponse())

	_, err = g.ReceiveResponse([]protocol.InboundMessage{
		{PlayerID: playerID, Command: protocol.PlayCards, Decision: indices},
	})
	require.NoError(t, err)

	msgs, err := g.ReceiveResponse([]protocol.InboundMessage{
		{PlayerID: playerID, Command: protocol.FaceDown, Decision: faceDown},
	})
	require.NoError(t, err)

	return msgs
}

func respond(t *testing.T, g *milliondoubt, playerID string, cmd protocol.Cmd, call bool) []protocol.OutboundMessage {
	t.Helper()

	msgs, err := g.ReceiveResponse([]protocol.InboundMessage{
		{PlayerID: playerID, Command: cmd, Call: call},
	})
	require.NoError(t, err)

	return msgs
}

func eventKinds(events []protocol.Event) []protocol.EventKind {
	kinds := []protocol.EventKind{}
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func effects(events []protocol.Event) []protocol.Effect {
	out := []protocol.Effect{}
	for _, e := range events {
		if e.Kind == protocol.EventEffectTriggered {
			out = append(out, e.Effect)
		}
	}
	return out
}

func findMessage(msgs []protocol.OutboundMessage, playerID string) (protocol.OutboundMessage, bool) {
	for _, m := range msgs {
		if m.PlayerID == playerID {
			return m, true
		}
	}
	return protocol.OutboundMessage{}, false
}
