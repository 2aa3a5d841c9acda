package protocol

import "github.com/minaorangina/milliondoubt/deck"

// EventKind identifies a game event sent to observers
type EventKind string

const (
	EventHandDealt       EventKind = "hand_dealt"
	EventPlayAccepted    EventKind = "play_accepted"
	EventPlayRejected    EventKind = "play_rejected"
	EventPassed          EventKind = "passed"
	EventEffectTriggered EventKind = "effect_triggered"
	EventDoubtCalled     EventKind = "doubt_called"
	EventBluffCaught     EventKind = "bluff_caught"
	EventFalseDoubt      EventKind = "false_doubt"
	EventBurst           EventKind = "burst"
	EventGameOver        EventKind = "game_over"
)

// Effect names a special effect
type Effect string

const (
	EffectEightCut         Effect = "eight_cut"
	EffectJackBack         Effect = "jack_back"
	EffectJackBackReverted Effect = "jack_back_reverted"
	EffectRevolution       Effect = "revolution"
	EffectSuitLock         Effect = "suit_lock"
)

// Event is a record of something that happened in a game.
// Cards keep their orientation; anything shown to a player must mask
// face-down cards it does not own.
type Event struct {
	Kind     EventKind   `json:"kind"`
	GameID   string      `json:"gameID,omitempty"`
	PlayerID string      `json:"playerID,omitempty"`
	Cards    []deck.Card `json:"cards,omitempty"`
	Effect   Effect      `json:"effect,omitempty"`
	Suits    []deck.Suit `json:"suits,omitempty"`
	// HandSize is the dealt hand size for HandDealt and the loser's
	// remaining cards for Burst and GameOver
	HandSize int    `json:"handSize,omitempty"`
	Round    int    `json:"round"`
	Phase    int    `json:"phase"`
	Reason   string `json:"reason,omitempty"`
}
