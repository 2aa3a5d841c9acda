package game

import (
	"sort"

	"github.com/minaorangina/milliondoubt/deck"
)

// Combination is the shape of a set of played cards
type Combination int

const (
	Invalid Combination = iota
	Single
	Pair
	Multiple // 3+ cards of one rank
	Stairs   // 3+ consecutive ranks of one suit
)

var combinationNames = []string{"Invalid", "Single", "Pair", "Multiple", "Stairs"}

func (c Combination) String() string {
	return combinationNames[c]
}

const (
	minMultiple = 3
	minStairs   = 3
	maxStairs   = 13
)

// Classify works out what kind of combination cards form.
// With visibleOnly set, face-down cards are opaque: they never falsify a
// combination and stand in for any card a run is missing.
func Classify(cards []deck.Card, visibleOnly bool) Combination {
	switch {
	case len(cards) == 0:
		return Invalid
	case len(cards) == 1:
		return Single
	case isPair(cards, visibleOnly):
		return Pair
	case isMultiple(cards, visibleOnly):
		return Multiple
	case isStairs(cards, visibleOnly):
		return Stairs
	}
	return Invalid
}

// IsCombination reports whether 2+ cards form a pair, multiple or stairs
func IsCombination(cards []deck.Card, visibleOnly bool) bool {
	switch Classify(cards, visibleOnly) {
	case Pair, Multiple, Stairs:
		return true
	}
	return false
}

func hidden(c deck.Card, visibleOnly bool) bool {
	return visibleOnly && !c.FaceUp()
}

func isPair(cards []deck.Card, visibleOnly bool) bool {
	if len(cards) != 2 {
		return false
	}

	a, b := cards[0], cards[1]
	if a.IsJoker() || b.IsJoker() {
		return true
	}
	if hidden(a, visibleOnly) || hidden(b, visibleOnly) {
		return true
	}

	return a.Rank() == b.Rank()
}

func isMultiple(cards []deck.Card, visibleOnly bool) bool {
	if len(cards) < minMultiple {
		return false
	}

	var (
		reference deck.Rank
		found     bool
	)
	for _, c := range cards {
		if c.IsJoker() || hidden(c, visibleOnly) {
			continue
		}
		if !found {
			reference, found = c.Rank(), true
			continue
		}
		if c.Rank() != reference {
			return false
		}
	}

	return true
}

func isStairs(cards []deck.Card, visibleOnly bool) bool {
	if len(cards) < minStairs || len(cards) > maxStairs {
		return false
	}

	known := []deck.Card{}
	wildcards := 0
	for _, c := range cards {
		if c.IsJoker() || hidden(c, visibleOnly) {
			wildcards++
			continue
		}
		known = append(known, c)
	}

	sort.SliceStable(known, func(i, j int) bool {
		if known[i].Rank() != known[j].Rank() {
			return known[i].Rank() < known[j].Rank()
		}
		return known[i].FaceUp() && !known[j].FaceUp()
	})

	if len(known) == 0 {
		return true
	}

	suit := known[0].Suit()
	for _, c := range known[1:] {
		if c.Suit() != suit {
			return false
		}
	}

	needed := 0
	for i := 0; i < len(known)-1; i++ {
		gap := int(known[i+1].Rank()-known[i].Rank()) - 1
		if gap < 0 {
			// two cards of the same rank
			return false
		}
		needed += gap
		if needed > wildcards {
			return false
		}
	}

	return true
}
