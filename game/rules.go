package game

import (
	"github.com/minaorangina/milliondoubt/deck"
)

// Constraints is the standing state of the field a play is checked against.
// It is captured when a play is made so a later doubt judges the play by the
// rules that applied at the time.
type Constraints struct {
	FieldEmpty bool
	// Length is the number of cards every play must match
	Length int
	// Reference holds the face-up cards of the most recent play that had any
	Reference       []deck.Card
	RestrictedSuits []deck.Suit
	Revolution      bool
}

// IsLegal decides whether cards may be played onto a field in the given state.
// With visibleOnly set, face-down cards are given the benefit of the doubt.
func IsLegal(cards []deck.Card, c Constraints, visibleOnly bool) bool {
	if len(cards) == 0 {
		return false
	}

	if c.FieldEmpty {
		if len(cards) == 1 {
			return true
		}
		return IsCombination(cards, visibleOnly)
	}

	if len(cards) != c.Length {
		return false
	}

	if len(cards) >= 2 && !IsCombination(cards, visibleOnly) {
		return false
	}

	if !strongEnough(cards, c, visibleOnly) {
		return false
	}

	return followsSuits(cards, c.RestrictedSuits, visibleOnly)
}

// IsBluff decides, with every card revealed, whether a play should not have
// been accepted.
func IsBluff(cards []deck.Card, c Constraints) bool {
	if c.FieldEmpty {
		if len(cards) < 2 {
			return false
		}
		return !IsCombination(cards, false)
	}

	return !IsLegal(cards, c, false)
}

func considered(cards []deck.Card, visibleOnly bool) []deck.Card {
	out := []deck.Card{}
	for _, c := range cards {
		if !hidden(c, visibleOnly) {
			out = append(out, c)
		}
	}
	return out
}

func strongEnough(cards []deck.Card, c Constraints, visibleOnly bool) bool {
	reference, ok := deck.MinStrength(c.Reference, c.Revolution)
	if !ok {
		return true
	}

	played, ok := deck.MinStrength(considered(cards, visibleOnly), c.Revolution)
	if !ok {
		return true
	}

	return played >= reference
}

func followsSuits(cards []deck.Card, restricted []deck.Suit, visibleOnly bool) bool {
	if len(restricted) == 0 {
		return true
	}

	for _, c := range considered(cards, visibleOnly) {
		if c.IsJoker() {
			continue
		}
		if !containsSuit(restricted, c.Suit()) {
			return false
		}
	}

	return true
}

// lockedSuits returns the suits present in both previous and current
// that are not already restricted.
func lockedSuits(previous, current, restricted []deck.Suit) []deck.Suit {
	locked := []deck.Suit{}
	for _, s := range current {
		if containsSuit(previous, s) && !containsSuit(restricted, s) && !containsSuit(locked, s) {
			locked = append(locked, s)
		}
	}
	return locked
}

// faceUpSuits returns the distinct suits of the face-up standard cards
func faceUpSuits(cards []deck.Card) []deck.Suit {
	suits := []deck.Suit{}
	for _, c := range cards {
		if !c.FaceUp() || c.IsJoker() {
			continue
		}
		if !containsSuit(suits, c.Suit()) {
			suits = append(suits, c.Suit())
		}
	}
	return suits
}

func containsSuit(suits []deck.Suit, target deck.Suit) bool {
	for _, s := range suits {
		if s == target {
			return true
		}
	}
	return false
}
