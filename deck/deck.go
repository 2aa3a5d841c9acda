package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// FullSize is the number of cards in a full deck: 52 standard cards and 2 jokers
const FullSize = 54

var (
	ErrIndexOutOfRange = errors.New("card index out of range")
	ErrDuplicateIndex  = errors.New("card index selected more than once")
)

// Deck is an ordered zone of cards: the deck itself, a hand, the field
// or the graveyard.
type Deck []Card

// New creates a full deck of cards, face up
func New() Deck {
	cards := Deck{}
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, MustCard(rank, suit))
		}
	}
	cards = append(cards, MustJoker(BlackJoker), MustJoker(RedJoker))
	return cards
}

// Shuffle shuffles the deck of cards using rng
func (d *Deck) Shuffle(rng *rand.Rand) {
	actualDeck := (*d)
	rng.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return subSlice
}

// Add appends cards to the zone
func (d *Deck) Add(cards ...Card) {
	*d = append(*d, cards...)
}

// CheckIndices validates a selection of indices into d
func (d Deck) CheckIndices(indices []int) error {
	seen := map[int]struct{}{}
	for _, idx := range indices {
		if idx < 0 || idx >= len(d) {
			return fmt.Errorf("%w: %d (have %d cards)", ErrIndexOutOfRange, idx, len(d))
		}
		if _, ok := seen[idx]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}
		seen[idx] = struct{}{}
	}
	return nil
}

// Pick returns copies of the cards at indices, in selection order
func (d Deck) Pick(indices []int) ([]Card, error) {
	if err := d.CheckIndices(indices); err != nil {
		return nil, err
	}
	picked := make([]Card, 0, len(indices))
	for _, idx := range indices {
		picked = append(picked, d[idx])
	}
	return picked, nil
}

// Move transfers the cards at indices from d to dst, in selection order.
// Both zones are left untouched if the selection is invalid.
func (d *Deck) Move(dst *Deck, indices ...int) error {
	moving, err := d.Pick(indices)
	if err != nil {
		return err
	}

	remove := map[int]struct{}{}
	for _, idx := range indices {
		remove[idx] = struct{}{}
	}

	kept := make(Deck, 0, len(*d)-len(indices))
	for i, c := range *d {
		if _, ok := remove[i]; !ok {
			kept = append(kept, c)
		}
	}

	*d = kept
	dst.Add(moving...)
	return nil
}

// MoveAll transfers every card from d to dst
func (d *Deck) MoveAll(dst *Deck) {
	dst.Add((*d)...)
	*d = Deck{}
}

// Clone returns an independent copy of the zone
func (d Deck) Clone() Deck {
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

// SortByStrength orders the zone from weakest to strongest.
// Equal strengths keep suit order, jokers last.
func (d Deck) SortByStrength(revolution bool) {
	sort.SliceStable(d, func(i, j int) bool {
		si, sj := Strength(d[i], revolution), Strength(d[j], revolution)
		if si != sj {
			return si < sj
		}
		if d[i].suit != d[j].suit {
			return d[i].suit < d[j].suit
		}
		return d[i].joker < d[j].joker
	})
}

// TurnFaceUp reveals every card in the zone
func (d Deck) TurnFaceUp() {
	for i := range d {
		d[i].TurnFaceUp()
	}
}

// FaceUpCards returns the cards currently face up
func (d Deck) FaceUpCards() []Card {
	out := []Card{}
	for _, c := range d {
		if c.faceUp {
			out = append(out, c)
		}
	}
	return out
}

// HasFaceDown reports whether any card in the zone is face down
func (d Deck) HasFaceDown() bool {
	for _, c := range d {
		if !c.faceUp {
			return true
		}
	}
	return false
}

// Masked returns the zone as seen by someone who does not own it:
// face-down cards are replaced by Back.
func (d Deck) Masked() []Card {
	out := make([]Card, 0, len(d))
	for _, c := range d {
		if c.faceUp {
			out = append(out, c)
		} else {
			out = append(out, Back)
		}
	}
	return out
}

// Contains reports whether a card with the same identity is in the zone
func (d Deck) Contains(card Card) bool {
	for _, c := range d {
		if c.Same(card) {
			return true
		}
	}
	return false
}
