package players

import (
	"io"
	"strings"
	"testing"

	"github.com/minaorangina/milliondoubt/deck"
	utils "github.com/minaorangina/milliondoubt/internal"
	"github.com/minaorangina/milliondoubt/protocol"
	"github.com/stretchr/testify/assert"
)

func someHand() []deck.Card {
	return []deck.Card{
		deck.MustCard(deck.Three, deck.Clubs),
		deck.MustCard(deck.Nine, deck.Hearts),
		deck.MustCard(deck.Queen, deck.Spades),
	}
}

func faceDown(c deck.Card) deck.Card {
	c.TurnFaceDown()
	return c
}

func TestHumanChoosePlay(t *testing.T) {
	t.Run("chooses cards by letter", func(t *testing.T) {
		out := NewTestBuffer()
		h := NewHuman("p1", "Ada", strings.NewReader("ac\n"), out)

		play, err := h.ChoosePlay(protocol.HandView{Hand: someHand(), OpponentCount: 7})

		utils.AssertNoError(t, err)
		assert.Equal(t, []int{0, 2}, play)
		assert.Contains(t, out.String(), "Ada, here is your hand")
		assert.Contains(t, out.String(), "Your opponent holds 7 cards")
		assert.Contains(t, out.String(), "lead with")
	})

	t.Run("an empty line passes", func(t *testing.T) {
		h := NewHuman("p1", "Ada", strings.NewReader("\n"), io.Discard)

		play, err := h.ChoosePlay(protocol.HandView{Hand: someHand(), RequiredLength: 2})

		utils.AssertNoError(t, err)
		assert.Empty(t, play)
	})

	t.Run("refuses the wrong number of cards", func(t *testing.T) {
		out := NewTestBuffer()
		h := NewHuman("p1", "Ada", strings.NewReader("a\n"), out)

		_, err := h.ChoosePlay(protocol.HandView{Hand: someHand(), RequiredLength: 2})

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, out.String(), "you need to choose 2 cards")
	})

	t.Run("refuses letters outside the hand", func(t *testing.T) {
		h := NewHuman("p1", "Ada", strings.NewReader("az\n"), io.Discard)

		_, err := h.ChoosePlay(protocol.HandView{Hand: someHand()})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("a closed input is an error", func(t *testing.T) {
		h := NewHuman("p1", "Ada", strings.NewReader(""), io.Discard)

		_, err := h.ChoosePlay(protocol.HandView{Hand: someHand()})
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("a last line without a newline still counts", func(t *testing.T) {
		h := NewHuman("p1", "Ada", strings.NewReader("b"), io.Discard)

		play, err := h.ChoosePlay(protocol.HandView{Hand: someHand()})
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{1}, play)
	})
}

func TestHumanDecisions(t *testing.T) {
	t.Run("chooses face-down cards", func(t *testing.T) {
		h := NewHuman("p1", "Ada", strings.NewReader("b\n"), io.Discard)

		faceDowns, err := h.ChooseFaceDown(someHand()[:2])
		utils.AssertNoError(t, err)
		assert.Equal(t, []int{1}, faceDowns)
	})

	t.Run("doubt sees masked cards", func(t *testing.T) {
		out := NewTestBuffer()
		h := NewHuman("p1", "Ada", strings.NewReader("y\n"), out)

		doubt, err := h.DecideDoubt([]deck.Card{deck.Back, deck.MustCard(deck.Nine, deck.Hearts)})
		utils.AssertNoError(t, err)
		assert.True(t, doubt)
		assert.Contains(t, out.String(), "##")
	})

	t.Run("burst needs a yes or a no", func(t *testing.T) {
		h := NewHuman("p1", "Ada", strings.NewReader("perhaps\nn\n"), io.Discard)

		_, err := h.DecideBurst(12)
		assert.ErrorIs(t, err, ErrInvalidInput)

		burst, err := h.DecideBurst(12)
		utils.AssertNoError(t, err)
		assert.False(t, burst)
	})
}

func TestHumanHandleEvent(t *testing.T) {
	queen := deck.MustCard(deck.Queen, deck.Hearts)

	t.Run("the opponent's face-down cards stay hidden", func(t *testing.T) {
		out := NewTestBuffer()
		h := NewHuman("p1", "Ada", strings.NewReader(""), out)
		h.Introduce([]protocol.Player{{PlayerID: "p1", Name: "Ada"}, {PlayerID: "p2", Name: "Ben"}})

		h.HandleEvent(protocol.Event{
			Kind:     protocol.EventPlayAccepted,
			PlayerID: "p2",
			Cards:    []deck.Card{faceDown(queen)},
		})

		assert.Contains(t, out.String(), "Ben played")
		assert.NotContains(t, out.String(), "Q")
	})

	t.Run("your own face-down cards are shown", func(t *testing.T) {
		out := NewTestBuffer()
		h := NewHuman("p1", "Ada", strings.NewReader(""), out)

		h.HandleEvent(protocol.Event{
			Kind:     protocol.EventPlayAccepted,
			PlayerID: "p1",
			Cards:    []deck.Card{faceDown(queen)},
		})

		assert.Contains(t, out.String(), "You played")
		assert.Contains(t, out.String(), "Q")
	})

	t.Run("the opponent's deal is not shown", func(t *testing.T) {
		out := NewTestBuffer()
		h := NewHuman("p1", "Ada", strings.NewReader(""), out)

		h.HandleEvent(protocol.Event{Kind: protocol.EventHandDealt, PlayerID: "p2", Cards: someHand(), HandSize: 3})
		assert.Empty(t, out.String())
	})
}
