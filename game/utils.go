package game

import (
	"github.com/minaorangina/milliondoubt/deck"
)

// withoutCards returns d minus any card sharing an identity with one in cards
func withoutCards(d deck.Deck, cards []deck.Card) deck.Deck {
	out := deck.Deck{}
	for _, c := range d {
		if !deck.Deck(cards).Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

func hasFaceUpRank(cards []deck.Card, rank deck.Rank) bool {
	for _, c := range cards {
		if c.FaceUp() && !c.IsJoker() && c.Rank() == rank {
			return true
		}
	}
	return false
}
