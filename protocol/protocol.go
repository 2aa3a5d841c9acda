package protocol

import (
	"errors"
	"fmt"
)

var ErrUnknownCmd = errors.New("unknown command")

// Player identifies a participant in a game
type Player struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	Error
	// informational: it is someone else's turn
	Turn
	PlayCards // choose cards to play, or none to pass
	FaceDown  // choose which of the selected cards go face down
	Doubt     // decide whether to doubt the opponent's play
	Burst     // decide whether to call burst on the opponent
	EndOfTurn
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:      "Null",
	Error:     "Error",
	Turn:      "Turn",
	PlayCards: "PlayCards",
	FaceDown:  "FaceDown",
	Doubt:     "Doubt",
	Burst:     "Burst",
	EndOfTurn: "EndOfTurn",
	GameOver:  "GameOver",
}

var NameToCmd = map[string]Cmd{
	"Null":      Null,
	"Error":     Error,
	"Turn":      Turn,
	"PlayCards": PlayCards,
	"FaceDown":  FaceDown,
	"Doubt":     Doubt,
	"Burst":     Burst,
	"EndOfTurn": EndOfTurn,
	"GameOver":  GameOver,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// MarshalText writes a command by name
func (c Cmd) MarshalText() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCmd, int(c))
	}
	return []byte(name), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCmd, text)
	}
	*c = cmd
	return nil
}
