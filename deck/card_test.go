package deck

import (
	"encoding/json"
	"testing"

	utils "github.com/minaorangina/milliondoubt/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Lowest rank", MustCard(Ace, Spades), "Ace of Spades"},
		{"Specific card", MustCard(Queen, Hearts), "Queen of Hearts"},
		{"Highest rank", MustCard(King, Clubs), "King of Clubs"},
		{"Joker", MustJoker(RedJoker), "Red Joker"},
		{"Placeholder", Back, "Face-down card"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			utils.AssertEqual(t, c.card.String(), c.expected)
		})
	}

	t.Run("out of range is a construction error", func(t *testing.T) {
		_, err := NewCard(King+1, Spades)
		assert.ErrorIs(t, err, ErrInvalidCard)

		_, err = NewCard(Four, NullSuit)
		assert.ErrorIs(t, err, ErrInvalidCard)

		_, err = NewCard(NullRank, Hearts)
		assert.ErrorIs(t, err, ErrInvalidCard)

		_, err = NewJoker(NoJoker)
		assert.ErrorIs(t, err, ErrInvalidCard)
	})

	t.Run("Must constructors panic on bad input", func(t *testing.T) {
		assert.Panics(t, func() { MustCard(NullRank, Clubs) })
		assert.Panics(t, func() { MustJoker(JokerTag(7)) })
	})

	t.Run("exactly one of rank+suit or joker is set", func(t *testing.T) {
		six := MustCard(Six, Diamonds)
		assert.False(t, six.IsJoker())
		assert.Equal(t, Six, six.Rank())
		assert.Equal(t, Diamonds, six.Suit())

		joker := MustJoker(BlackJoker)
		assert.True(t, joker.IsJoker())
		assert.Equal(t, NullRank, joker.Rank())
		assert.Equal(t, NullSuit, joker.Suit())
	})

	t.Run("identity ignores orientation", func(t *testing.T) {
		up := MustCard(Two, Hearts)
		down := up
		down.Flip()

		assert.True(t, up.FaceUp())
		assert.False(t, down.FaceUp())
		assert.True(t, up.Same(down))
		assert.Equal(t, up.Identity(), down.Identity())
		assert.False(t, MustJoker(BlackJoker).Same(MustJoker(RedJoker)))
	})
}

func TestCardJSON(t *testing.T) {
	t.Run("standard card keeps its orientation", func(t *testing.T) {
		c := MustCard(Jack, Clubs)
		c.TurnFaceDown()

		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.JSONEq(t, `{"rank":"Jack","suit":"Clubs","faceUp":false}`, string(data))

		var got Card
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, c, got)
	})

	t.Run("joker", func(t *testing.T) {
		data, err := json.Marshal(MustJoker(RedJoker))
		require.NoError(t, err)

		var got Card
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, MustJoker(RedJoker), got)
	})

	t.Run("placeholder", func(t *testing.T) {
		data, err := json.Marshal(Back)
		require.NoError(t, err)

		var got Card
		require.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, got.IsBack())
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		var got Card
		err := json.Unmarshal([]byte(`{"rank":"Fourteen","suit":"Spades"}`), &got)
		assert.ErrorIs(t, err, ErrUnknownCard)
	})
}
