package server

import (
	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
	"github.com/minaorangina/milliondoubt/store"
)

func summarise(record store.GameRecord) GameRes {
	players := record.Players
	if players == nil {
		players = []protocol.Player{}
	}

	return GameRes{
		GameID:     record.ID,
		Players:    players,
		Over:       record.Over,
		WinnerID:   record.WinnerID,
		EventCount: len(record.Events),
	}
}

// spectatorView masks every face-down card. Spectators own no cards.
func spectatorView(events []protocol.Event) []protocol.Event {
	out := make([]protocol.Event, 0, len(events))
	for _, e := range events {
		if len(e.Cards) > 0 {
			e.Cards = deck.Deck(e.Cards).Masked()
		}
		out = append(out, e)
	}
	return out
}
