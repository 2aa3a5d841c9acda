package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/milliondoubt/deck"
)

var (
	ErrCardCountDrift = errors.New("card count drifted")
	ErrDuplicateCard  = errors.New("card present in more than one place")
)

// zones returns every zone that owns cards. The topcard is a copy and is
// not included.
func (s *milliondoubt) zones() map[string]deck.Deck {
	zones := map[string]deck.Deck{
		"deck":      s.Deck,
		"field":     s.Field,
		"graveyard": s.Graveyard,
	}
	for _, info := range s.PlayerInfo {
		if hand, ok := s.Hands[info.PlayerID]; ok {
			zones["hand:"+info.PlayerID] = *hand
		}
	}
	return zones
}

// CheckInvariant confirms that every card is owned by exactly one zone
func (s *milliondoubt) CheckInvariant() error {
	visited := map[deck.Identity]string{}
	total := 0

	for name, zone := range s.zones() {
		for _, c := range zone {
			if other, ok := visited[c.Identity()]; ok {
				return fmt.Errorf("%w: %s in %s and %s", ErrDuplicateCard, c, other, name)
			}
			visited[c.Identity()] = name
			total++
		}
	}

	if total != deck.FullSize {
		return fmt.Errorf("%w: have %d, want %d", ErrCardCountDrift, total, deck.FullSize)
	}

	return nil
}

// MustCheckInvariant panics if a card has been lost or duplicated
func (s *milliondoubt) MustCheckInvariant() {
	if err := s.CheckInvariant(); err != nil {
		panic(err)
	}
}
