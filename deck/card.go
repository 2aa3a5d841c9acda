package deck

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrInvalidCard = errors.New("designate one and only one of (rank, suit) or joker")
	ErrUnknownCard = errors.New("unknown card")
)

// Card represents a playing card: either a standard card with a suit and a
// rank, or one of the two jokers. Identity never changes once constructed;
// only the face orientation does.
type Card struct {
	rank   Rank
	suit   Suit
	joker  JokerTag
	faceUp bool
}

// Identity is the orientation-independent identity of a Card.
type Identity struct {
	Rank  Rank
	Suit  Suit
	Joker JokerTag
}

// Back is the placeholder shown in place of a face-down card.
// It never belongs to a zone.
var Back = Card{}

// NewCard constructs a face-up standard card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.valid() || !suit.valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit, faceUp: true}, nil
}

// NewJoker constructs a face-up joker
func NewJoker(tag JokerTag) (Card, error) {
	if !tag.valid() {
		return Card{}, fmt.Errorf("%w: joker %d", ErrInvalidCard, tag)
	}
	return Card{joker: tag, faceUp: true}, nil
}

// MustCard is NewCard for values known to be valid. It panics otherwise.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// MustJoker is NewJoker for values known to be valid. It panics otherwise.
func MustJoker(tag JokerTag) Card {
	c, err := NewJoker(tag)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns a card's rank. Jokers have NullRank.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns a card's suit. Jokers have NullSuit.
func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Joker() JokerTag {
	return c.joker
}

func (c Card) IsJoker() bool {
	return c.joker != NoJoker
}

// IsBack reports whether c is the face-down placeholder
func (c Card) IsBack() bool {
	return c.joker == NoJoker && c.rank == NullRank
}

func (c Card) FaceUp() bool {
	return c.faceUp
}

func (c *Card) Flip() {
	c.faceUp = !c.faceUp
}

func (c *Card) TurnFaceUp() {
	c.faceUp = true
}

func (c *Card) TurnFaceDown() {
	c.faceUp = false
}

// Identity returns the card's identity, ignoring its orientation
func (c Card) Identity() Identity {
	return Identity{Rank: c.rank, Suit: c.suit, Joker: c.joker}
}

// Same reports whether two cards share an identity
func (c Card) Same(other Card) bool {
	return c.Identity() == other.Identity()
}

func (c Card) String() string {
	switch {
	case c.IsJoker():
		return c.joker.String()
	case c.IsBack():
		return "Face-down card"
	}
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// Symbol returns a compact form such as "♠Q", "JK" or "##" for a face-down
// placeholder. Orientation is ignored: the owner of a card always sees it.
func (c Card) Symbol() string {
	switch {
	case c.IsJoker():
		return "JK"
	case c.IsBack():
		return "##"
	}
	return c.suit.Symbol() + c.rank.Symbol()
}

type cardJSON struct {
	Rank   string `json:"rank,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Joker  string `json:"joker,omitempty"`
	FaceUp bool   `json:"faceUp"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	out := cardJSON{FaceUp: c.faceUp}
	if c.IsJoker() {
		out.Joker = c.joker.String()
	} else if !c.IsBack() {
		out.Rank = c.rank.String()
		out.Suit = c.suit.String()
	}
	return json.Marshal(out)
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var in cardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if in.Joker == "" && in.Rank == "" && in.Suit == "" {
		*c = Back
		c.faceUp = in.FaceUp
		return nil
	}

	var (
		card Card
		err  error
	)
	if in.Joker != "" {
		tag, ok := parseJoker(in.Joker)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCard, in.Joker)
		}
		card, err = NewJoker(tag)
	} else {
		rank, rankOK := parseRank(in.Rank)
		suit, suitOK := parseSuit(in.Suit)
		if !rankOK || !suitOK {
			return fmt.Errorf("%w: %q of %q", ErrUnknownCard, in.Rank, in.Suit)
		}
		card, err = NewCard(rank, suit)
	}
	if err != nil {
		return err
	}

	card.faceUp = in.FaceUp
	*c = card
	return nil
}
