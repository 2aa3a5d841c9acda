package players

import (
	"bytes"
	"sync"

	"github.com/minaorangina/milliondoubt/deck"
	"github.com/minaorangina/milliondoubt/protocol"
)

// TestPlayer replays scripted decisions in order. It records what it was
// asked so tests can inspect it.
type TestPlayer struct {
	id        string
	name      string
	Plays     [][]int
	FaceDowns [][]int
	Doubts    []bool
	Bursts    []bool
	Views     []protocol.HandView
	Shown     [][]deck.Card
}

func NewTestPlayer(id, name string) *TestPlayer {
	return &TestPlayer{id: id, name: name}
}

func (tp *TestPlayer) ID() string {
	return tp.id
}

func (tp *TestPlayer) Name() string {
	return tp.name
}

func (tp *TestPlayer) ChoosePlay(view protocol.HandView) ([]int, error) {
	tp.Views = append(tp.Views, view)
	if len(tp.Plays) == 0 {
		return nil, ErrScriptExhausted
	}
	next := tp.Plays[0]
	tp.Plays = tp.Plays[1:]
	return next, nil
}

func (tp *TestPlayer) ChooseFaceDown(selected []deck.Card) ([]int, error) {
	if len(tp.FaceDowns) == 0 {
		return []int{}, nil
	}
	next := tp.FaceDowns[0]
	tp.FaceDowns = tp.FaceDowns[1:]
	return next, nil
}

func (tp *TestPlayer) DecideDoubt(played []deck.Card) (bool, error) {
	tp.Shown = append(tp.Shown, played)
	if len(tp.Doubts) == 0 {
		return false, ErrScriptExhausted
	}
	next := tp.Doubts[0]
	tp.Doubts = tp.Doubts[1:]
	return next, nil
}

func (tp *TestPlayer) DecideBurst(opponentCount int) (bool, error) {
	if len(tp.Bursts) == 0 {
		return false, ErrScriptExhausted
	}
	next := tp.Bursts[0]
	tp.Bursts = tp.Bursts[1:]
	return next, nil
}

func APlayer(id, name string) Player {
	return NewTestPlayer(id, name)
}

func SomePlayers() Players {
	player1 := NewTestPlayer(NewID(), "Harry")
	player2 := NewTestPlayer(NewID(), "Sally")
	return NewPlayers(player1, player2)
}

// TestBuffer is used in tests for io
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Read(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Read(p)
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}
