package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minaorangina/milliondoubt/game"
	"github.com/minaorangina/milliondoubt/players"
	"github.com/minaorangina/milliondoubt/protocol"
	"go.uber.org/zap"
)

var (
	ErrNoGame               = errors.New("engine has no game")
	ErrWrongNumberOfPlayers = errors.New("exactly 2 players required")
	ErrNoRequest            = errors.New("game is awaiting a response but asked nobody")
	ErrUnexpectedCommand    = errors.New("unexpected command")
)

// DefaultMaxAttempts is how many tries a player gets at a decision before
// the engine passes or declines for them
const DefaultMaxAttempts = 5

// GameEngine runs a game between players until it is over
type GameEngine interface {
	ID() string
	Players() players.Players
	Start() error
	Run(ctx context.Context) (protocol.Player, error)
}

type gameEngine struct {
	id          string
	players     players.Players
	game        game.Game
	sink        Sink
	logger      *zap.Logger
	maxAttempts int
}

// GameEngineOpts configures a GameEngine. MaxAttempts of zero takes the
// default; a negative value allows unlimited attempts.
type GameEngineOpts struct {
	GameID      string
	Players     players.Players
	Game        game.Game
	Sink        Sink
	Logger      *zap.Logger
	MaxAttempts int
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.Game == nil {
		return nil, ErrNoGame
	}
	if len(opts.Players) != 2 {
		return nil, ErrWrongNumberOfPlayers
	}

	engine := &gameEngine{
		id:          opts.GameID,
		players:     opts.Players,
		game:        opts.Game,
		sink:        opts.Sink,
		logger:      opts.Logger,
		maxAttempts: opts.MaxAttempts,
	}

	if engine.sink == nil {
		engine.sink = MultiSink{}
	}
	if engine.logger == nil {
		engine.logger = zap.NewNop()
	}
	if engine.maxAttempts == 0 {
		engine.maxAttempts = DefaultMaxAttempts
	}
	engine.logger = engine.logger.With(zap.String("game_id", engine.id))

	return engine, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) Players() players.Players {
	return ge.players
}

// Start deals the game
func (ge *gameEngine) Start() error {
	info := ge.players.Info()

	for _, p := range ge.players {
		if i, ok := p.(interface{ Introduce([]protocol.Player) }); ok {
			i.Introduce(info)
		}
	}

	if err := ge.game.Start(info); err != nil {
		return err
	}
	ge.flush()

	ge.logger.Info("game started",
		zap.String("player_1", info[0].Name),
		zap.String("player_2", info[1].Name),
	)
	return nil
}

// Run plays turns until the game is over and returns the winner
func (ge *gameEngine) Run(ctx context.Context) (protocol.Player, error) {
	var msgs []protocol.OutboundMessage

	for !ge.game.GameOver() {
		if err := ctx.Err(); err != nil {
			return protocol.Player{}, err
		}

		var err error
		msgs, err = ge.game.Next()
		if err != nil {
			return protocol.Player{}, err
		}
		ge.flush()

		msgs, err = ge.resolve(ctx, msgs)
		if err != nil {
			return protocol.Player{}, err
		}
	}

	winner := winnerOf(msgs)
	ge.logger.Info("game over", zap.String("winner", winner.Name))
	return winner, nil
}

// resolve answers the game's requests until it needs nothing more this turn
func (ge *gameEngine) resolve(ctx context.Context, msgs []protocol.OutboundMessage) ([]protocol.OutboundMessage, error) {
	attempts := 0

	for ge.game.AwaitingResponse() != protocol.Null {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, ok := findRequest(msgs)
		if !ok {
			return nil, ErrNoRequest
		}

		attempts++
		fallback := ge.maxAttempts > 0 && attempts > ge.maxAttempts

		var resp protocol.InboundMessage
		if fallback {
			ge.logger.Warn("out of attempts, deciding for player",
				zap.String("player_id", req.PlayerID),
				zap.Stringer("command", req.Command),
			)
			resp = fallbackResponse(req)
		} else {
			var err error
			resp, err = ge.ask(req)
			switch {
			case errors.Is(err, players.ErrNoDecision), errors.Is(err, io.EOF):
				// no more input is coming
				resp = fallbackResponse(req)
			case err != nil:
				ge.logger.Warn("player could not decide",
					zap.String("player_id", req.PlayerID),
					zap.Stringer("command", req.Command),
					zap.Int("attempt", attempts),
					zap.Error(err),
				)
				continue
			}
		}

		next, err := ge.game.ReceiveResponse([]protocol.InboundMessage{resp})
		ge.flush()

		if err != nil {
			if !recoverable(err) {
				return nil, err
			}
			ge.logger.Debug("decision refused",
				zap.String("player_id", req.PlayerID),
				zap.Stringer("command", req.Command),
				zap.Ints("decision", resp.Decision),
				zap.Error(err),
			)
			msgs = next
			continue
		}

		ge.logger.Debug("decision accepted",
			zap.String("player_id", req.PlayerID),
			zap.Stringer("command", req.Command),
			zap.Ints("decision", resp.Decision),
			zap.Bool("call", resp.Call),
		)

		// a play is not settled until its face-down cards are chosen
		if req.Command != protocol.PlayCards {
			attempts = 0
		}
		msgs = next
	}

	return msgs, nil
}

func (ge *gameEngine) ask(req protocol.OutboundMessage) (protocol.InboundMessage, error) {
	resp := protocol.InboundMessage{PlayerID: req.PlayerID, Command: req.Command}

	p, ok := ge.players.Find(req.PlayerID)
	if !ok {
		return resp, fmt.Errorf("%w: %s", players.ErrPlayerNotFound, req.PlayerID)
	}

	var err error
	switch req.Command {
	case protocol.PlayCards:
		resp.Decision, err = p.ChoosePlay(req.HandView())
	case protocol.FaceDown:
		resp.Decision, err = p.ChooseFaceDown(req.Selected)
	case protocol.Doubt:
		resp.Call, err = p.DecideDoubt(req.Selected)
	case protocol.Burst:
		resp.Call, err = p.DecideBurst(req.OpponentCount)
	default:
		err = fmt.Errorf("%w: %s", ErrUnexpectedCommand, req.Command)
	}

	return resp, err
}

// flush passes the game's new events to the sink
func (ge *gameEngine) flush() {
	for _, e := range ge.game.Events() {
		ge.sink.HandleEvent(e)
	}
}

// fallbackResponse passes, plays face up, or declines
func fallbackResponse(req protocol.OutboundMessage) protocol.InboundMessage {
	return protocol.InboundMessage{
		PlayerID: req.PlayerID,
		Command:  req.Command,
		Decision: []int{},
	}
}

func recoverable(err error) bool {
	return errors.Is(err, game.ErrInvalidSelection) || errors.Is(err, game.ErrIllegalPlay)
}

func findRequest(msgs []protocol.OutboundMessage) (protocol.OutboundMessage, bool) {
	for _, m := range msgs {
		if m.ShouldRespond {
			return m, true
		}
	}
	return protocol.OutboundMessage{}, false
}

func winnerOf(msgs []protocol.OutboundMessage) protocol.Player {
	for _, m := range msgs {
		if m.Command == protocol.GameOver {
			return m.Winner
		}
	}
	return protocol.Player{}
}
