package protocol

import (
	"github.com/minaorangina/milliondoubt/deck"
)

// InboundMessage is a decision from a Player to the Game
type InboundMessage struct {
	PlayerID string `json:"playerID"`
	Command  Cmd    `json:"command"`
	// Decision holds card indices for PlayCards and FaceDown
	Decision []int `json:"decision"`
	// Call is the yes/no answer for Doubt and Burst
	Call bool `json:"call"`
}

// OutboundMessage is a message from the Game to a Player
type OutboundMessage struct {
	PlayerID        string      `json:"playerID"`
	Command         Cmd         `json:"command"`
	Message         string      `json:"message"`
	Hand            []deck.Card `json:"hand"`
	Field           []deck.Card `json:"field"`
	Reference       []deck.Card `json:"reference,omitempty"`
	Selected        []deck.Card `json:"selected,omitempty"`
	RequiredLength  int         `json:"requiredLength,omitempty"`
	Revolution      bool        `json:"revolution"`
	RestrictedSuits []deck.Suit `json:"restrictedSuits,omitempty"`
	OpponentCount   int         `json:"opponentCount"`
	DeckCount       int         `json:"deckCount"`
	Round           int         `json:"round"`
	Phase           int         `json:"phase"`
	ShouldRespond   bool        `json:"shouldRespond"`
	CurrentTurn     Player      `json:"currentTurn,omitempty"`
	Winner          Player      `json:"winner,omitempty"`
	Error           string      `json:"error,omitempty"`
}

// HandView is what a player may see when choosing a play
type HandView struct {
	Hand []deck.Card
	// RequiredLength is zero when the field is empty
	RequiredLength  int
	Field           []deck.Card
	Reference       []deck.Card
	Revolution      bool
	RestrictedSuits []deck.Suit
	OpponentCount   int
}

// HandView extracts the play-selection view from a PlayCards request
func (m OutboundMessage) HandView() HandView {
	return HandView{
		Hand:            m.Hand,
		RequiredLength:  m.RequiredLength,
		Field:           m.Field,
		Reference:       m.Reference,
		Revolution:      m.Revolution,
		RestrictedSuits: m.RestrictedSuits,
		OpponentCount:   m.OpponentCount,
	}
}
