package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/milliondoubt/protocol"
)

var (
	ErrUnknownGameID     = errors.New("unknown game ID")
	ErrGameAlreadyExists = errors.New("game already exists")
)

// subscriberBuffer is how far a subscriber may fall behind before it is
// dropped
const subscriberBuffer = 64

type GameStore interface {
	AddGame(gameID string, players []protocol.Player) error
	FindGame(gameID string) (GameRecord, bool)
	GameIDs() []string
	Record(e protocol.Event)
	Events(gameID string, since int) ([]protocol.Event, error)
	Subscribe(gameID string) ([]protocol.Event, <-chan protocol.Event, func(), error)
}

// GameRecord is everything known about one game
type GameRecord struct {
	ID       string            `json:"id"`
	Players  []protocol.Player `json:"players"`
	Over     bool              `json:"over"`
	WinnerID string            `json:"winnerID,omitempty"`
	Events   []protocol.Event  `json:"-"`
}

// InMemoryGameStore keeps the event log of every game by game ID
type InMemoryGameStore struct {
	mu          sync.RWMutex
	Games       map[string]*GameRecord
	subscribers map[string]map[chan protocol.Event]struct{}
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games:       map[string]*GameRecord{},
		subscribers: map[string]map[chan protocol.Event]struct{}{},
	}
}

// AddGame registers a game and its players before any events arrive
func (s *InMemoryGameStore) AddGame(gameID string, players []protocol.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameAlreadyExists, gameID)
	}

	s.Games[gameID] = &GameRecord{ID: gameID, Players: players}
	return nil
}

// FindGame returns a copy of the game's record
func (s *InMemoryGameStore) FindGame(gameID string) (GameRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Games[gameID]
	if !ok {
		return GameRecord{}, false
	}

	record := *game
	record.Events = append([]protocol.Event{}, game.Events...)
	return record, true
}

func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := []string{}
	for id := range s.Games {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Record appends an event to its game's log, creating the game if needed,
// and passes it to the game's subscribers
func (s *InMemoryGameStore) Record(e protocol.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.Games[e.GameID]
	if !ok {
		game = &GameRecord{ID: e.GameID}
		s.Games[e.GameID] = game
	}

	game.Events = append(game.Events, e)
	if e.Kind == protocol.EventGameOver {
		game.Over = true
		game.WinnerID = e.PlayerID
	}

	for ch := range s.subscribers[e.GameID] {
		select {
		case ch <- e:
		default:
			// too slow
			delete(s.subscribers[e.GameID], ch)
			close(ch)
		}
	}
}

// HandleEvent lets the store sit behind a game engine as a sink
func (s *InMemoryGameStore) HandleEvent(e protocol.Event) {
	s.Record(e)
}

// Events returns the game's events from index since onwards
func (s *InMemoryGameStore) Events(gameID string, since int) ([]protocol.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}

	if since < 0 {
		since = 0
	}
	if since > len(game.Events) {
		since = len(game.Events)
	}

	return append([]protocol.Event{}, game.Events[since:]...), nil
}

// Subscribe returns the game's events so far, a channel of the events that
// follow and a function to stop receiving them. The channel is closed when
// the subscription ends.
func (s *InMemoryGameStore) Subscribe(gameID string) ([]protocol.Event, <-chan protocol.Event, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.Games[gameID]
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	backlog := append([]protocol.Event{}, game.Events...)

	ch := make(chan protocol.Event, subscriberBuffer)
	if s.subscribers[gameID] == nil {
		s.subscribers[gameID] = map[chan protocol.Event]struct{}{}
	}
	s.subscribers[gameID][ch] = struct{}{}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.subscribers[gameID][ch]; ok {
			delete(s.subscribers[gameID], ch)
			close(ch)
		}
	}

	return backlog, ch, cancel, nil
}
