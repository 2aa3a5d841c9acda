package game

import (
	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
)

const revolutionLength = 4

// applyEffects triggers the special effects of an accepted play.
// It reports whether the play cut the field.
func (s *milliondoubt) applyEffects(play deck.Deck) bool {
	var cut bool

	if hasFaceUpRank(play, deck.Eight) {
		s.emit(protocol.Event{Kind: protocol.EventEffectTriggered, PlayerID: s.CurrentPlayer.PlayerID, Effect: protocol.EffectEightCut})
		s.fieldClear()
		cut = true
	}

	if hasFaceUpRank(play, deck.Jack) {
		s.Revolution = !s.Revolution
		s.ElevenBack = !s.ElevenBack
		s.emit(protocol.Event{Kind: protocol.EventEffectTriggered, PlayerID: s.CurrentPlayer.PlayerID, Effect: protocol.EffectJackBack})
	}

	if len(play) >= revolutionLength {
		s.Revolution = !s.Revolution
		s.emit(protocol.Event{Kind: protocol.EventEffectTriggered, PlayerID: s.CurrentPlayer.PlayerID, Effect: protocol.EffectRevolution})
	}

	return cut
}

// lockSuits restricts the field to suits followed twice in a row
func (s *milliondoubt) lockSuits() {
	locked := lockedSuits(s.PreviousSuits, s.TopcardSuits, s.RestrictedSuits)
	if len(locked) == 0 {
		return
	}

	s.RestrictedSuits = append(s.RestrictedSuits, locked...)
	s.emit(protocol.Event{
		Kind:     protocol.EventEffectTriggered,
		PlayerID: s.CurrentPlayer.PlayerID,
		Effect:   protocol.EffectSuitLock,
		Suits:    locked,
	})
}

// fieldClear ends the trick: the field goes to the graveyard and every
// per-trick constraint is reset. A pending jack-back is undone.
func (s *milliondoubt) fieldClear() {
	s.Field.TurnFaceUp()
	s.Field.MoveAll(&s.Graveyard)

	s.Topcard = deck.Deck{}
	s.Reference = nil
	s.TopcardSuits = nil
	s.PreviousSuits = nil
	s.RestrictedSuits = nil
	s.Round++

	if s.ElevenBack {
		s.Revolution = !s.Revolution
		s.ElevenBack = false
		s.emit(protocol.Event{Kind: protocol.EventEffectTriggered, Effect: protocol.EffectJackBackReverted})
	}
}
