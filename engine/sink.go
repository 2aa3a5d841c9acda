package engine

import (
	"strings"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
	"go.uber.org/zap"
)

// Sink receives every event a game emits, in order
type Sink interface {
	HandleEvent(e protocol.Event)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(e protocol.Event)

func (f SinkFunc) HandleEvent(e protocol.Event) {
	f(e)
}

// MultiSink fans events out to several sinks
type MultiSink []Sink

func (ms MultiSink) HandleEvent(e protocol.Event) {
	for _, s := range ms {
		s.HandleEvent(e)
	}
}

// ZapSink writes events to a structured log. The log is a full record of
// the game, so face-down cards are written as they are.
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) HandleEvent(e protocol.Event) {
	fields := []zap.Field{
		zap.String("game_id", e.GameID),
		zap.String("kind", string(e.Kind)),
		zap.Int("round", e.Round),
		zap.Int("phase", e.Phase),
	}

	if e.PlayerID != "" {
		fields = append(fields, zap.String("player_id", e.PlayerID))
	}
	if len(e.Cards) > 0 {
		fields = append(fields, zap.String("cards", symbols(e.Cards)))
	}
	if e.Effect != "" {
		fields = append(fields, zap.String("effect", string(e.Effect)))
	}
	if len(e.Suits) > 0 {
		suits := []string{}
		for _, suit := range e.Suits {
			suits = append(suits, suit.String())
		}
		fields = append(fields, zap.Strings("suits", suits))
	}
	if e.HandSize > 0 {
		fields = append(fields, zap.Int("hand_size", e.HandSize))
	}
	if e.Reason != "" {
		fields = append(fields, zap.String("reason", e.Reason))
	}

	s.logger.Info("game event", fields...)
}

func symbols(cards []deck.Card) string {
	out := []string{}
	for _, c := range cards {
		text := c.Symbol()
		if !c.FaceUp() {
			text += "(down)"
		}
		out = append(out, text)
	}
	return strings.Join(out, " ")
}
