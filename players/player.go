package players

import (
	"errors"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoDecision      = errors.New("player has no decision to make")
	ErrScriptExhausted = errors.New("test player has run out of scripted decisions")
	ErrDuplicatePlayer = errors.New("player already added")
	ErrPlayerNotFound  = errors.New("player not found")
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player makes the decisions for one seat at the table.
// A decision that returns an error may be asked for again.
type Player interface {
	ID() string
	Name() string
	// ChoosePlay returns indices into view.Hand, or none to pass
	ChoosePlay(view protocol.HandView) ([]int, error)
	// ChooseFaceDown returns indices into selected to play face down
	ChooseFaceDown(selected []deck.Card) ([]int, error)
	// DecideDoubt is shown the opponent's play with face-down cards masked
	DecideDoubt(played []deck.Card) (bool, error)
	// DecideBurst is shown the size of the opponent's hand
	DecideBurst(opponentCount int) (bool, error)
}

// Players represents all players in the game
type Players []Player

// NewPlayers returns a set of Players
func NewPlayers(p ...Player) Players {
	return Players(p)
}

// AddPlayer adds a player to a set of Players
func AddPlayer(ps Players, p Player) (Players, error) {
	if _, ok := ps.Find(p.ID()); ok {
		return ps, ErrDuplicatePlayer
	}
	return append(ps, p), nil
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if got := p.ID(); got == id {
			return p, true
		}
	}
	return nil, false
}

// Info lists the players as the game knows them
func (ps Players) Info() []protocol.Player {
	info := []protocol.Player{}
	for _, p := range ps {
		info = append(info, protocol.Player{PlayerID: p.ID(), Name: p.Name()})
	}
	return info
}
