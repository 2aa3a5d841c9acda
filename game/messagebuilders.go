package game

import (
	"fmt"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
)

func (s *milliondoubt) buildBaseMessage(playerID string) protocol.OutboundMessage {
	msg := protocol.OutboundMessage{
		PlayerID:        playerID,
		CurrentTurn:     s.CurrentPlayer,
		Field:           s.Field.Masked(),
		Reference:       append([]deck.Card{}, s.Reference...),
		Revolution:      s.Revolution,
		RestrictedSuits: s.RestrictedSuits,
		DeckCount:       len(s.Deck),
		Round:           s.Round,
		Phase:           s.Phase,
	}

	if hand, ok := s.Hands[playerID]; ok {
		msg.Hand = hand.Clone()
	}
	if opponent, ok := s.Hands[s.opponent(playerID).PlayerID]; ok {
		msg.OpponentCount = len(*opponent)
	}

	return msg
}

func (s *milliondoubt) buildTurnMessage(playerID string) protocol.OutboundMessage {
	msg := s.buildBaseMessage(playerID)
	msg.Command = protocol.Turn
	msg.Message = fmt.Sprintf("It's %s's turn!", s.CurrentPlayer.Name)

	return msg
}

// buildPlayMessages asks the attacker for a play. problem is shown to the
// attacker when a previous attempt was refused.
func (s *milliondoubt) buildPlayMessages(problem string) []protocol.OutboundMessage {
	currentPlayerMsg := s.buildBaseMessage(s.CurrentPlayer.PlayerID)
	currentPlayerMsg.Command = protocol.PlayCards
	currentPlayerMsg.RequiredLength = s.requiredLength()
	currentPlayerMsg.ShouldRespond = true
	currentPlayerMsg.Error = problem

	switch {
	case currentPlayerMsg.RequiredLength == 0:
		currentPlayerMsg.Message = "It's your turn! The field is empty: lead with anything."
	default:
		currentPlayerMsg.Message = fmt.Sprintf("It's your turn! Play %d cards, or pass.", currentPlayerMsg.RequiredLength)
	}

	toSend := []protocol.OutboundMessage{currentPlayerMsg}
	for _, info := range s.PlayerInfo {
		if info.PlayerID != s.CurrentPlayer.PlayerID {
			toSend = append(toSend, s.buildTurnMessage(info.PlayerID))
		}
	}

	return toSend
}

func (s *milliondoubt) buildFaceDownMessages(problem string) []protocol.OutboundMessage {
	msg := s.buildBaseMessage(s.CurrentPlayer.PlayerID)
	msg.Command = protocol.FaceDown
	msg.Message = "Choose which of these cards to play face down."
	msg.Selected = s.pending.cards.Clone()
	msg.ShouldRespond = true
	msg.Error = problem

	return []protocol.OutboundMessage{msg}
}

func (s *milliondoubt) buildDoubtMessages() []protocol.OutboundMessage {
	doubter := s.opponent(s.CurrentPlayer.PlayerID)

	doubterMsg := s.buildBaseMessage(doubter.PlayerID)
	doubterMsg.Command = protocol.Doubt
	doubterMsg.Message = fmt.Sprintf("%s played %d cards. Doubt?", s.CurrentPlayer.Name, len(s.Topcard))
	doubterMsg.Selected = s.Topcard.Masked()
	doubterMsg.ShouldRespond = true

	attackerMsg := s.buildBaseMessage(s.CurrentPlayer.PlayerID)
	attackerMsg.Command = protocol.Turn
	attackerMsg.Message = fmt.Sprintf("Waiting for %s to decide whether to doubt.", doubter.Name)

	return []protocol.OutboundMessage{doubterMsg, attackerMsg}
}

func (s *milliondoubt) buildBurstMessages() []protocol.OutboundMessage {
	caller, target := s.pending.burstCaller, s.pending.burstTarget

	callerMsg := s.buildBaseMessage(caller.PlayerID)
	callerMsg.Command = protocol.Burst
	callerMsg.Message = fmt.Sprintf("%s is holding %d cards. Call burst?", target.Name, len(*s.Hands[target.PlayerID]))
	callerMsg.ShouldRespond = true

	targetMsg := s.buildBaseMessage(target.PlayerID)
	targetMsg.Command = protocol.Turn
	targetMsg.Message = fmt.Sprintf("You're holding too many cards. %s may call burst!", caller.Name)

	return []protocol.OutboundMessage{callerMsg, targetMsg}
}

func (s *milliondoubt) buildEndOfTurnMessages() []protocol.OutboundMessage {
	toSend := []protocol.OutboundMessage{}
	for _, info := range s.PlayerInfo {
		msg := s.buildBaseMessage(info.PlayerID)
		msg.Command = protocol.EndOfTurn
		toSend = append(toSend, msg)
	}

	return toSend
}

func (s *milliondoubt) buildGameOverMessages() []protocol.OutboundMessage {
	toSend := []protocol.OutboundMessage{}
	for _, info := range s.PlayerInfo {
		msg := s.buildBaseMessage(info.PlayerID)
		msg.Command = protocol.GameOver
		msg.Winner = s.Winner

		result := "lost :("
		if info.PlayerID == s.Winner.PlayerID {
			result = "won!"
		}
		msg.Message = fmt.Sprintf("Game over! You %s", result)

		toSend = append(toSend, msg)
	}

	return toSend
}

func (s *milliondoubt) buildErrorMessage(playerID string, err error) protocol.OutboundMessage {
	msg := s.buildBaseMessage(playerID)
	msg.Command = protocol.Error
	msg.Message = fmt.Sprintf("game error: %q", err.Error())
	msg.Error = err.Error()

	return msg
}
