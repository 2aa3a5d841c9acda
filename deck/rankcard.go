package deck

import "fmt"

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankSymbols = []string{"?", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

const (
	NullRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"", "Spades", "Hearts", "Diamonds", "Clubs"}

var suitSymbols = []string{"", "♠", "♥", "♦", "♣"}

const (
	NullSuit Suit = iota
	Spades
	Hearts
	Diamonds
	Clubs
)

// Suits lists the four real suits in deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// JokerTag distinguishes the two jokers. A standard card has NoJoker.
type JokerTag int

var jokerNames = []string{"", "Black Joker", "Red Joker"}

const (
	NoJoker JokerTag = iota
	BlackJoker
	RedJoker
)

func (r Rank) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Symbol returns the short form of the rank, e.g. "Q"
func (r Rank) Symbol() string {
	if !r.valid() {
		return "?"
	}
	return rankSymbols[r]
}

func (r Rank) valid() bool {
	return r >= Ace && r <= King
}

func (s Suit) String() string {
	if !s.valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the suit glyph, e.g. "♠"
func (s Suit) Symbol() string {
	if !s.valid() {
		return ""
	}
	return suitSymbols[s]
}

func (s Suit) valid() bool {
	return s >= Spades && s <= Clubs
}

func (j JokerTag) String() string {
	if !j.valid() {
		return ""
	}
	return jokerNames[j]
}

func (j JokerTag) valid() bool {
	return j == BlackJoker || j == RedJoker
}

func parseRank(name string) (Rank, bool) {
	for i, n := range rankNames {
		if i > 0 && n == name {
			return Rank(i), true
		}
	}
	return NullRank, false
}

func parseSuit(name string) (Suit, bool) {
	for i, n := range suitNames {
		if i > 0 && n == name {
			return Suit(i), true
		}
	}
	return NullSuit, false
}

func parseJoker(name string) (JokerTag, bool) {
	for i, n := range jokerNames {
		if i > 0 && n == name {
			return JokerTag(i), true
		}
	}
	return NoJoker, false
}
