package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
)

var (
	ErrNilGame                = errors.New("game is nil")
	ErrWrongNumberOfPlayers   = errors.New("exactly 2 players required")
	ErrNoPlayers              = errors.New("game has no players")
	ErrAlreadyStarted         = errors.New("game has already started")
	ErrGameUnexpectedResponse = errors.New("game received unexpected response")
	ErrGameAwaitingResponse   = errors.New("game is awaiting a response")
	ErrInvalidSelection       = errors.New("invalid card selection")
	ErrIllegalPlay            = errors.New("illegal play")
	ErrInvalidGameState       = errors.New("invalid game state")
	ErrGameOver               = errors.New("game is already over")
	ErrInvalidHands           = errors.New("invalid starting hands")
)

const (
	numPlayers = 2

	DefaultHandSize       = 7
	DefaultBurstThreshold = 11
)

// Game is a turn-by-turn game driven by messages
type Game interface {
	Start(playerInfo []protocol.Player) error
	Next() ([]protocol.OutboundMessage, error)
	ReceiveResponse([]protocol.InboundMessage) ([]protocol.OutboundMessage, error)
	AwaitingResponse() protocol.Cmd
	GameOver() bool
	// Events drains the events recorded since the last call
	Events() []protocol.Event
}

// play is the attacker's play in progress
type play struct {
	indices     []int
	cards       deck.Deck
	constraints Constraints
	repeatTurn  bool
	burstCaller protocol.Player
	burstTarget protocol.Player
}

type milliondoubt struct {
	ID              string
	Deck            deck.Deck
	Hands           map[string]*deck.Deck
	Field           deck.Deck
	Topcard         deck.Deck
	Graveyard       deck.Deck
	PlayerInfo      []protocol.Player
	CurrentTurnIdx  int
	CurrentPlayer   protocol.Player
	Round           int
	Phase           int
	Revolution      bool
	ElevenBack      bool
	Skip            bool
	Reference       []deck.Card
	TopcardSuits    []deck.Suit
	PreviousSuits   []deck.Suit
	RestrictedSuits []deck.Suit
	Winner          protocol.Player
	State           TurnState
	ExpectedCommand protocol.Cmd

	handSize       int
	burstThreshold int
	firstPlayerID  string
	presetHands    map[string]deck.Deck
	rng            *rand.Rand
	pending        *play
	events         []protocol.Event
}

// Opts configures a new game. Zero values take the defaults.
type Opts struct {
	GameID         string
	HandSize       int
	BurstThreshold int
	Rng            *rand.Rand
	// Deck replaces the shuffled deck. Cards are dealt from the end.
	Deck deck.Deck
	// Hands deals fixed hands by player ID instead of dealing from the deck
	Hands map[string]deck.Deck
	// FirstPlayerID skips the coin flip
	FirstPlayerID string
	Revolution    bool
}

// New constructs a game of Million Doubt, ready to Start
func New(opts Opts) *milliondoubt {
	s := &milliondoubt{
		ID:             opts.GameID,
		Hands:          map[string]*deck.Deck{},
		Field:          deck.Deck{},
		Topcard:        deck.Deck{},
		Graveyard:      deck.Deck{},
		PlayerInfo:     []protocol.Player{},
		Revolution:     opts.Revolution,
		handSize:       opts.HandSize,
		burstThreshold: opts.BurstThreshold,
		firstPlayerID:  opts.FirstPlayerID,
		presetHands:    opts.Hands,
		rng:            opts.Rng,
		State:          dealing,
	}

	if s.handSize <= 0 {
		s.handSize = DefaultHandSize
	}
	if s.burstThreshold <= 0 {
		s.burstThreshold = DefaultBurstThreshold
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if opts.Deck != nil {
		s.Deck = opts.Deck.Clone()
	} else {
		s.Deck = deck.New()
		s.Deck.Shuffle(s.rng)
	}

	return s
}

func (s *milliondoubt) AwaitingResponse() protocol.Cmd {
	return s.ExpectedCommand
}

func (s *milliondoubt) GameOver() bool {
	return s.State == gameOver
}

func (s *milliondoubt) Events() []protocol.Event {
	events := s.events
	s.events = nil
	return events
}

func (s *milliondoubt) Start(playerInfo []protocol.Player) error {
	if s == nil {
		return ErrNilGame
	}
	if s.State != dealing {
		return ErrAlreadyStarted
	}
	if len(playerInfo) != numPlayers {
		return ErrWrongNumberOfPlayers
	}

	s.PlayerInfo = playerInfo

	if err := s.deal(); err != nil {
		return err
	}

	s.State = decidingAttacker
	s.CurrentTurnIdx = s.rng.Intn(numPlayers)
	for i, info := range s.PlayerInfo {
		if info.PlayerID == s.firstPlayerID {
			s.CurrentTurnIdx = i
		}
	}
	s.CurrentPlayer = s.PlayerInfo[s.CurrentTurnIdx]

	s.Round, s.Phase = 1, 1
	s.State = awaitingPlay

	return nil
}

func (s *milliondoubt) deal() error {
	if s.presetHands != nil {
		for _, info := range s.PlayerInfo {
			cards, ok := s.presetHands[info.PlayerID]
			if !ok {
				return fmt.Errorf("%w: no hand for player %s", ErrInvalidHands, info.PlayerID)
			}
			s.Deck = withoutCards(s.Deck, cards)
			hand := cards.Clone()
			s.Hands[info.PlayerID] = &hand
		}
		if err := s.CheckInvariant(); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidHands, err)
		}
	} else {
		if len(s.Deck) < s.handSize*numPlayers {
			return fmt.Errorf("%w: deck too small to deal %d cards each", ErrInvalidHands, s.handSize)
		}
		for _, info := range s.PlayerInfo {
			hand := deck.Deck(s.Deck.Deal(s.handSize))
			hand.SortByStrength(s.Revolution)
			s.Hands[info.PlayerID] = &hand
		}
	}

	for _, info := range s.PlayerInfo {
		hand := s.Hands[info.PlayerID]
		hand.TurnFaceUp()
		s.emit(protocol.Event{
			Kind:     protocol.EventHandDealt,
			PlayerID: info.PlayerID,
			Cards:    hand.Clone(),
			HandSize: len(*hand),
		})
	}

	return nil
}

func (s *milliondoubt) Next() ([]protocol.OutboundMessage, error) {
	if s == nil {
		return nil, ErrNilGame
	}
	if len(s.Hands) == 0 {
		return nil, ErrNoPlayers
	}
	if s.ExpectedCommand != protocol.Null {
		return nil, ErrGameAwaitingResponse
	}
	if s.State == gameOver {
		return s.buildGameOverMessages(), nil
	}

	if s.State != awaitingPlay {
		// this shouldn't happen
		return nil, fmt.Errorf("%w: %s", ErrInvalidGameState, s.State)
	}

	s.ExpectedCommand = protocol.PlayCards
	return s.buildPlayMessages(""), nil
}

func (s *milliondoubt) ReceiveResponse(inboundMsgs []protocol.InboundMessage) ([]protocol.OutboundMessage, error) {
	if s == nil {
		return nil, ErrNilGame
	}
	if len(s.Hands) == 0 {
		return nil, ErrNoPlayers
	}
	if s.State == gameOver {
		return s.buildGameOverMessages(), ErrGameOver
	}
	if s.ExpectedCommand == protocol.Null {
		return nil, ErrGameUnexpectedResponse
	}
	if len(inboundMsgs) != 1 {
		return nil, fmt.Errorf("expected one message, got %d", len(inboundMsgs))
	}

	msg := inboundMsgs[0]
	respondent := s.respondent()
	if msg.PlayerID != respondent.PlayerID {
		err := fmt.Errorf("%w: unexpected message from player %s", ErrGameUnexpectedResponse, msg.PlayerID)
		return []protocol.OutboundMessage{s.buildErrorMessage(msg.PlayerID, err)}, err
	}
	if msg.Command != s.ExpectedCommand {
		err := fmt.Errorf("%w: got %s, want %s", ErrGameUnexpectedResponse, msg.Command, s.ExpectedCommand)
		return []protocol.OutboundMessage{s.buildErrorMessage(msg.PlayerID, err)}, err
	}

	switch s.ExpectedCommand {
	case protocol.PlayCards:
		return s.receivePlay(msg)
	case protocol.FaceDown:
		return s.receiveFaceDown(msg)
	case protocol.Doubt:
		return s.receiveDoubt(msg)
	case protocol.Burst:
		return s.receiveBurst(msg)
	}

	return nil, fmt.Errorf("%w: awaiting %s", ErrInvalidGameState, s.ExpectedCommand)
}

// respondent is the player the game is waiting on
func (s *milliondoubt) respondent() protocol.Player {
	switch s.ExpectedCommand {
	case protocol.Doubt:
		return s.opponent(s.CurrentPlayer.PlayerID)
	case protocol.Burst:
		return s.pending.burstCaller
	}
	return s.CurrentPlayer
}

func (s *milliondoubt) receivePlay(msg protocol.InboundMessage) ([]protocol.OutboundMessage, error) {
	if len(msg.Decision) == 0 {
		return s.pass(), nil
	}

	hand := s.Hands[s.CurrentPlayer.PlayerID]
	if err := hand.CheckIndices(msg.Decision); err != nil {
		err = fmt.Errorf("%w: %s", ErrInvalidSelection, err)
		return s.buildPlayMessages(err.Error()), err
	}

	if required := s.requiredLength(); required > 0 && len(msg.Decision) != required {
		err := fmt.Errorf("%w: play %d cards, not %d", ErrInvalidSelection, required, len(msg.Decision))
		return s.buildPlayMessages(err.Error()), err
	}

	cards, _ := hand.Pick(msg.Decision)
	s.pending = &play{
		indices: append([]int{}, msg.Decision...),
		cards:   cards,
	}

	s.State = awaitingFaceDown
	s.ExpectedCommand = protocol.FaceDown
	return s.buildFaceDownMessages(""), nil
}

func (s *milliondoubt) receiveFaceDown(msg protocol.InboundMessage) ([]protocol.OutboundMessage, error) {
	if err := s.pending.cards.CheckIndices(msg.Decision); err != nil {
		err = fmt.Errorf("%w: %s", ErrInvalidSelection, err)
		return s.buildFaceDownMessages(err.Error()), err
	}

	cards := s.pending.cards.Clone()
	for _, idx := range msg.Decision {
		cards[idx].TurnFaceDown()
	}

	constraints := s.constraints()
	if !IsLegal(cards, constraints, true) {
		s.emit(protocol.Event{
			Kind:     protocol.EventPlayRejected,
			PlayerID: s.CurrentPlayer.PlayerID,
			Cards:    cards.Clone(),
			Reason:   ErrIllegalPlay.Error(),
		})

		s.pending = nil
		s.State = awaitingPlay
		s.ExpectedCommand = protocol.PlayCards
		return s.buildPlayMessages(ErrIllegalPlay.Error()), ErrIllegalPlay
	}

	s.accept(cards, constraints)

	if s.doubtOffered() {
		s.State = awaitingDoubt
		s.ExpectedCommand = protocol.Doubt
		return s.buildDoubtMessages(), nil
	}

	return s.settle(), nil
}

// accept moves a legal play from the attacker's hand to the field
func (s *milliondoubt) accept(cards deck.Deck, constraints Constraints) {
	hand := s.Hands[s.CurrentPlayer.PlayerID]
	// indices were checked when the play was chosen
	if err := hand.CheckIndices(s.pending.indices); err != nil {
		panic(fmt.Errorf("%w: accepted play no longer fits the hand: %s", ErrInvalidGameState, err))
	}
	for i, idx := range s.pending.indices {
		(*hand)[idx] = cards[i]
	}
	if err := hand.Move(&s.Field, s.pending.indices...); err != nil {
		panic(fmt.Errorf("%w: moving accepted play: %s", ErrInvalidGameState, err))
	}

	s.pending.cards = cards
	s.pending.constraints = constraints
	s.Skip = false

	s.Topcard = cards.Clone()
	if faceUp := cards.FaceUpCards(); len(faceUp) > 0 {
		s.Reference = faceUp
	}
	s.PreviousSuits = s.TopcardSuits
	s.TopcardSuits = faceUpSuits(cards)

	s.emit(protocol.Event{
		Kind:     protocol.EventPlayAccepted,
		PlayerID: s.CurrentPlayer.PlayerID,
		Cards:    cards.Clone(),
	})

	if s.applyEffects(cards) {
		s.pending.repeatTurn = true
	}
}

// doubtOffered decides whether the defender may doubt the play just accepted.
// Only a face-down card can hide a bluff, and a single card onto an empty
// field can never be one.
func (s *milliondoubt) doubtOffered() bool {
	if s.pending == nil || len(s.Field) == 0 {
		return false
	}
	if s.pending.constraints.FieldEmpty && len(s.pending.cards) == 1 {
		return false
	}
	return s.Topcard.HasFaceDown()
}

func (s *milliondoubt) receiveDoubt(msg protocol.InboundMessage) ([]protocol.OutboundMessage, error) {
	if !msg.Call {
		return s.settle(), nil
	}

	s.emit(protocol.Event{
		Kind:     protocol.EventDoubtCalled,
		PlayerID: msg.PlayerID,
		Cards:    s.Topcard.Clone(),
	})

	return s.resolveDoubt(), nil
}

// resolveDoubt reveals the field. The loser of the doubt takes every card
// on it, and the attacker leads the next trick either way.
func (s *milliondoubt) resolveDoubt() []protocol.OutboundMessage {
	attacker := s.CurrentPlayer
	doubter := s.opponent(attacker.PlayerID)

	s.Field.TurnFaceUp()
	revealed := s.Topcard.Clone()
	revealed.TurnFaceUp()

	receiver := doubter
	if IsBluff(revealed, s.pending.constraints) {
		receiver = attacker
		s.emit(protocol.Event{Kind: protocol.EventBluffCaught, PlayerID: attacker.PlayerID, Cards: revealed})
	} else {
		s.Phase--
		s.emit(protocol.Event{Kind: protocol.EventFalseDoubt, PlayerID: doubter.PlayerID, Cards: revealed})
	}

	hand := s.Hands[receiver.PlayerID]
	s.Field.MoveAll(hand)
	hand.SortByStrength(s.Revolution)

	s.fieldClear()
	s.pending.repeatTurn = true

	if len(*hand) >= s.burstThreshold {
		s.pending.burstCaller = s.opponent(receiver.PlayerID)
		s.pending.burstTarget = receiver
		s.State = awaitingBurst
		s.ExpectedCommand = protocol.Burst
		return s.buildBurstMessages()
	}

	return s.endTurn()
}

func (s *milliondoubt) receiveBurst(msg protocol.InboundMessage) ([]protocol.OutboundMessage, error) {
	if !msg.Call {
		return s.endTurn(), nil
	}

	loser := s.pending.burstTarget
	s.emit(protocol.Event{
		Kind:     protocol.EventBurst,
		PlayerID: msg.PlayerID,
		HandSize: len(*s.Hands[loser.PlayerID]),
	})

	return s.finish(s.pending.burstCaller), nil
}

// settle lets an undoubted play stand
func (s *milliondoubt) settle() []protocol.OutboundMessage {
	if len(s.Field) > 0 {
		s.lockSuits()
	}
	return s.endTurn()
}

func (s *milliondoubt) pass() []protocol.OutboundMessage {
	s.emit(protocol.Event{Kind: protocol.EventPassed, PlayerID: s.CurrentPlayer.PlayerID})

	s.Skip = true
	s.fieldClear()
	s.Phase++
	s.turn()

	s.pending = nil
	s.State = awaitingPlay
	s.ExpectedCommand = protocol.Null
	return s.buildEndOfTurnMessages()
}

func (s *milliondoubt) endTurn() []protocol.OutboundMessage {
	attacker := s.CurrentPlayer
	for _, p := range []protocol.Player{attacker, s.opponent(attacker.PlayerID)} {
		if len(*s.Hands[p.PlayerID]) == 0 {
			return s.finish(p)
		}
	}

	s.Phase++
	if !s.pending.repeatTurn {
		s.turn()
	}

	s.pending = nil
	s.State = awaitingPlay
	s.ExpectedCommand = protocol.Null
	return s.buildEndOfTurnMessages()
}

func (s *milliondoubt) finish(winner protocol.Player) []protocol.OutboundMessage {
	s.Winner = winner
	s.pending = nil
	s.State = gameOver
	s.ExpectedCommand = protocol.Null

	s.emit(protocol.Event{
		Kind:     protocol.EventGameOver,
		PlayerID: winner.PlayerID,
		HandSize: len(*s.Hands[s.opponent(winner.PlayerID).PlayerID]),
	})

	return s.buildGameOverMessages()
}

func (s *milliondoubt) turn() {
	s.CurrentTurnIdx = (s.CurrentTurnIdx + 1) % len(s.PlayerInfo)
	s.CurrentPlayer = s.PlayerInfo[s.CurrentTurnIdx]
}

func (s *milliondoubt) opponent(playerID string) protocol.Player {
	for _, p := range s.PlayerInfo {
		if p.PlayerID != playerID {
			return p
		}
	}
	return protocol.Player{}
}

func (s *milliondoubt) requiredLength() int {
	if len(s.Field) == 0 {
		return 0
	}
	return len(s.Topcard)
}

// constraints snapshots the field for judging a play
func (s *milliondoubt) constraints() Constraints {
	return Constraints{
		FieldEmpty:      len(s.Field) == 0,
		Length:          s.requiredLength(),
		Reference:       append([]deck.Card{}, s.Reference...),
		RestrictedSuits: append([]deck.Suit{}, s.RestrictedSuits...),
		Revolution:      s.Revolution,
	}
}

func (s *milliondoubt) emit(e protocol.Event) {
	e.GameID = s.ID
	e.Round = s.Round
	e.Phase = s.Phase
	s.events = append(s.events, e)
}
